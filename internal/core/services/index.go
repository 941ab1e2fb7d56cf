package services

import (
	"fmt"
	"io"

	"golang.org/x/net/html"

	"github.com/custodia-labs/eventor-calendars/internal/core/domain"
)

// IndexBuilder walks organisations, classification sets and discipline sets
// in order, writing the HTML index and collecting the combinations to pull.
type IndexBuilder struct {
	organisations []domain.Organisation
}

// NewIndexBuilder creates an index builder over the given organisations.
// If organisations is empty, every organisation is used.
func NewIndexBuilder(organisations []domain.Organisation) *IndexBuilder {
	if len(organisations) == 0 {
		organisations = domain.Organisations()
	}
	return &IndexBuilder{organisations: organisations}
}

// Build writes the index to page and returns the combinations in the same
// order as their list items. Nothing is returned if a write fails.
func (b *IndexBuilder) Build(page io.Writer) ([]domain.Combination, error) {
	w := &pageWriter{w: page}
	classSets := domain.ClassificationSets()
	disciplineSets := domain.DisciplineSets()

	combos := make([]domain.Combination, 0, len(b.organisations)*len(classSets)*len(disciplineSets))
	for _, org := range b.organisations {
		a := domain.Name{Organisation: org}.Anchor()
		w.heading(a, "h1", org.Description())

		for _, classes := range classSets {
			a := domain.Name{Organisation: org, Classifications: classes}.Anchor()
			w.heading(a, "h2", domain.TextList(domain.Names(classes)))
			w.printf("<ul>\n")

			for _, disciplines := range disciplineSets {
				c := domain.Combination{
					Organisation:    org,
					Classifications: classes,
					Disciplines:     disciplines,
				}
				w.item(c.Name().Path(), domain.TextList(domain.Descriptions(disciplines)))
				combos = append(combos, c)
			}

			w.printf("</ul>\n")
		}
	}

	if w.err != nil {
		return nil, fmt.Errorf("writing index: %w", w.err)
	}
	return combos, nil
}

// pageWriter keeps the first write error and drops later writes.
type pageWriter struct {
	w   io.Writer
	err error
}

func (p *pageWriter) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *pageWriter) heading(anchor, tag, text string) {
	anchor = html.EscapeString(anchor)
	p.printf("<a id=\"%s\" href=\"#%s\">\n", anchor, anchor)
	p.printf("  <%s>%s</%s>\n", tag, html.EscapeString(text), tag)
	p.printf("</a>\n")
}

func (p *pageWriter) item(path, text string) {
	p.printf("  <li><a href=\"./%s\">%s</a></li>\n", html.EscapeString(path), html.EscapeString(text))
}
