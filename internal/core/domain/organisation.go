package domain

import (
	"fmt"
	"strings"
)

// unknownDescription is the description of values outside the tables.
const unknownDescription = "Unknown"

// Organisation is an Eventor state organisation group.
// The value is the organisation id used in API queries.
type Organisation int

// Organisations known to Eventor Australia.
const (
	OrganisationAll Organisation = 2
	OrganisationACT Organisation = 4
	OrganisationNSW Organisation = 5
	OrganisationQLD Organisation = 6
	OrganisationSA  Organisation = 7
	OrganisationTAS Organisation = 8
	OrganisationVIC Organisation = 9
	OrganisationWA  Organisation = 10
)

type organisationInfo struct {
	short       string
	description string
}

var organisationOrder = []Organisation{
	OrganisationAll,
	OrganisationACT,
	OrganisationNSW,
	OrganisationQLD,
	OrganisationSA,
	OrganisationTAS,
	OrganisationVIC,
	OrganisationWA,
}

var organisationInfos = map[Organisation]organisationInfo{
	OrganisationAll: {"All", "All Organisations"},
	OrganisationACT: {"ACT", "Australian Capital Territory (ACT)"},
	OrganisationNSW: {"NSW", "New South Wales (NSW)"},
	OrganisationQLD: {"Qld", "Queensland"},
	OrganisationSA:  {"SA", "South Australia (SA)"},
	OrganisationTAS: {"Tas", "Tasmania"},
	OrganisationVIC: {"Vic", "Victoria"},
	OrganisationWA:  {"WA", "Western Australia (WA)"},
}

// Organisations returns every organisation in display order.
func Organisations() []Organisation {
	return append([]Organisation(nil), organisationOrder...)
}

// Code returns the Eventor organisation id.
func (o Organisation) Code() int {
	return int(o)
}

// Valid reports whether o is a known organisation.
func (o Organisation) Valid() bool {
	_, ok := organisationInfos[o]
	return ok
}

// String returns the short name used in file names and anchors.
func (o Organisation) String() string {
	if info, ok := organisationInfos[o]; ok {
		return info.short
	}
	return fmt.Sprintf("Organisation(%d)", int(o))
}

// Description returns the heading text for the organisation.
func (o Organisation) Description() string {
	if info, ok := organisationInfos[o]; ok {
		return info.description
	}
	return unknownDescription
}

// ParseOrganisation looks up an organisation by short name, ignoring case.
func ParseOrganisation(s string) (Organisation, error) {
	for _, o := range organisationOrder {
		if strings.EqualFold(o.String(), strings.TrimSpace(s)) {
			return o, nil
		}
	}
	return 0, fmt.Errorf("%w: organisation %q", ErrUnsupportedValue, s)
}
