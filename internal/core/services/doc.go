// Package services implements the driving port interfaces.
//
// IndexBuilder walks the organisation, classification and discipline tables
// once, writing the HTML index and returning the calendars to fetch.
// PullService then fetches those calendars in order through the driven
// ports. SettingsService resolves configuration into domain.PullSettings.
package services
