// Package domain contains core business entities and rules.
package domain

import "time"

// DateLayout is the ISO date format used for all date rendering and parsing.
const DateLayout = "2006-01-02"

// Author represents a quoted author.
// This is a domain entity - it has no knowledge of external systems.
type Author struct {
	// ID is the store-generated identifier.
	ID int64

	// FirstName and LastName are required.
	FirstName string
	LastName  string

	// BirthDate is required.
	BirthDate time.Time

	// DeathDate is nil for living authors or when unknown.
	DeathDate *time.Time

	Sex        string
	Profession string
	Country    string

	// Portrait is a URL or path to an image.
	Portrait string

	Biography string
}

// BirthDateISO returns the birth date as YYYY-MM-DD.
func (a *Author) BirthDateISO() string {
	return a.BirthDate.Format(DateLayout)
}

// DeathDateISO returns the death date as YYYY-MM-DD, or the empty
// string when no death date is recorded.
func (a *Author) DeathDateISO() string {
	if a.DeathDate == nil {
		return ""
	}

	return a.DeathDate.Format(DateLayout)
}

// AuthorOption is the slim author projection used to populate
// selection widgets on quote forms.
type AuthorOption struct {
	ID        int64
	FirstName string
	LastName  string
}

// DisplayName renders the option label shown in select widgets.
func (o AuthorOption) DisplayName() string {
	return o.FirstName + " " + o.LastName
}
