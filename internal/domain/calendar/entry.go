// Package calendar holds the recurrence template catalog and the pure
// scheduling logic that turns templates into concrete due dates.
package calendar

import (
	"fmt"
	"time"

	vo "fiscalis/internal/domain/calendar/valueobjects"
)

// Obligation family tags carried by calendar entries.
const (
	FamilyVAT    = "vat"
	FamilyIncome = "income_tax"
	FamilySocial = "social_contribution"
)

// Entry represents one row of the recurrence template catalog: a declarative
// description of a recurring fiscal obligation. Entries are mutated by
// administrators through the calendar-management side; the engine only reads
// them, but a catalog mutation is one of its regeneration triggers.
type Entry struct {
	id            uint
	category      string
	subcategory   string
	tag           string
	kind          string
	frequency     vo.Frequency
	anchorDay     int
	anchorMonth   time.Month
	detail        string
	comment       string
	formReference string
	link          string
	createdAt     time.Time
	updatedAt     time.Time
}

// NewEntry creates a new calendar entry
func NewEntry(category, tag, kind string, frequency vo.Frequency, anchorDay int, anchorMonth time.Month, detail string) (*Entry, error) {
	if category == "" {
		return nil, fmt.Errorf("entry category is required")
	}
	if tag == "" {
		return nil, fmt.Errorf("entry tag is required")
	}
	if !frequency.IsValid() {
		return nil, fmt.Errorf("invalid frequency: %s", frequency)
	}
	if anchorDay < 1 || anchorDay > 31 {
		return nil, fmt.Errorf("anchor day must be between 1 and 31, got %d", anchorDay)
	}
	if frequency == vo.FrequencyAnnual && (anchorMonth < time.January || anchorMonth > time.December) {
		return nil, fmt.Errorf("annual entry requires an anchor month")
	}

	now := time.Now()
	return &Entry{
		category:    category,
		tag:         tag,
		kind:        kind,
		frequency:   frequency,
		anchorDay:   anchorDay,
		anchorMonth: anchorMonth,
		detail:      detail,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructEntry reconstructs a calendar entry from persistence. Unlike
// NewEntry it tolerates a missing anchor day so that a malformed catalog row
// degrades to an empty schedule instead of failing the whole catalog read.
func ReconstructEntry(
	id uint,
	category, subcategory, tag, kind string,
	frequency vo.Frequency,
	anchorDay int,
	anchorMonth time.Month,
	detail, comment, formReference, link string,
	createdAt, updatedAt time.Time,
) (*Entry, error) {
	if id == 0 {
		return nil, fmt.Errorf("calendar entry ID cannot be zero")
	}
	if !frequency.IsValid() {
		return nil, fmt.Errorf("invalid frequency: %s", frequency)
	}

	return &Entry{
		id:            id,
		category:      category,
		subcategory:   subcategory,
		tag:           tag,
		kind:          kind,
		frequency:     frequency,
		anchorDay:     anchorDay,
		anchorMonth:   anchorMonth,
		detail:        detail,
		comment:       comment,
		formReference: formReference,
		link:          link,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

// ID returns the entry ID
func (e *Entry) ID() uint {
	return e.id
}

// SetID writes back the auto-generated ID after persistence
func (e *Entry) SetID(id uint) {
	e.id = id
}

// Category returns the applicable business category
func (e *Entry) Category() string {
	return e.category
}

// Subcategory returns the applicable business subcategory
func (e *Entry) Subcategory() string {
	return e.subcategory
}

// Tag returns the obligation family tag
func (e *Entry) Tag() string {
	return e.tag
}

// Kind returns the human type classification
func (e *Entry) Kind() string {
	return e.kind
}

// Frequency returns the recurrence frequency
func (e *Entry) Frequency() vo.Frequency {
	return e.frequency
}

// AnchorDay returns the day-of-month anchor; zero means unset
func (e *Entry) AnchorDay() int {
	return e.anchorDay
}

// AnchorMonth returns the month anchor for annual entries; zero means unset
func (e *Entry) AnchorMonth() time.Month {
	return e.anchorMonth
}

// Detail returns the free-text detail
func (e *Entry) Detail() string {
	return e.detail
}

// Comment returns the free-text comment
func (e *Entry) Comment() string {
	return e.comment
}

// FormReference returns the administrative form reference
func (e *Entry) FormReference() string {
	return e.formReference
}

// Link returns the reference link
func (e *Entry) Link() string {
	return e.link
}

// CreatedAt returns the creation timestamp
func (e *Entry) CreatedAt() time.Time {
	return e.createdAt
}

// UpdatedAt returns the last update timestamp
func (e *Entry) UpdatedAt() time.Time {
	return e.updatedAt
}
