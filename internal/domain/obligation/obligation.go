package obligation

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	vo "fiscalis/internal/domain/obligation/valueobjects"
)

// Metadata keys written into every machine-generated obligation. The marker
// plus the calendar entry identity are the sole basis for recognizing and
// purging generated records later.
const (
	MetadataKeyGenerated       = "generated_from_calendar"
	MetadataKeyCalendarEntryID = "calendar_entry_id"
	MetadataKeyTrigger         = "trigger"
	MetadataKeyGeneratedAt     = "generated_at"
)

// Obligation represents one concrete, dated obligation for a business. The
// engine creates obligations and never edits them afterwards; status and
// priority changes belong to obligation management.
type Obligation struct {
	id                    uint
	uuid                  string
	businessID            uint
	title                 string
	description           string
	tag                   string
	dueDate               time.Time
	status                vo.Status
	priority              vo.Priority
	period                string
	link                  string
	generatedFromCalendar bool
	calendarEntryID       uint
	metadata              map[string]interface{}
	createdAt             time.Time
	updatedAt             time.Time
}

// NewGeneratedObligation creates an obligation draft produced by the
// generation engine. The draft starts pending and carries the generation
// marker plus the originating calendar entry and trigger context in its
// metadata.
func NewGeneratedObligation(
	businessID uint,
	title, tag string,
	dueDate time.Time,
	priority vo.Priority,
	period, description, link string,
	calendarEntryID uint,
	trigger string,
	generatedAt time.Time,
) (*Obligation, error) {
	if businessID == 0 {
		return nil, fmt.Errorf("business ID is required")
	}
	if title == "" {
		return nil, fmt.Errorf("obligation title is required")
	}
	if tag == "" {
		return nil, fmt.Errorf("obligation tag is required")
	}
	if dueDate.IsZero() {
		return nil, fmt.Errorf("due date is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	if calendarEntryID == 0 {
		return nil, fmt.Errorf("calendar entry ID is required")
	}

	now := time.Now()
	return &Obligation{
		uuid:                  uuid.NewString(),
		businessID:            businessID,
		title:                 title,
		description:           description,
		tag:                   tag,
		dueDate:               dueDate,
		status:                vo.StatusPending,
		priority:              priority,
		period:                period,
		link:                  link,
		generatedFromCalendar: true,
		calendarEntryID:       calendarEntryID,
		metadata: map[string]interface{}{
			MetadataKeyGenerated:       true,
			MetadataKeyCalendarEntryID: calendarEntryID,
			MetadataKeyTrigger:         trigger,
			MetadataKeyGeneratedAt:     generatedAt.UTC().Format(time.RFC3339),
		},
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructObligation reconstructs an obligation from persistence
func ReconstructObligation(
	id uint,
	uuidStr string,
	businessID uint,
	title, description, tag string,
	dueDate time.Time,
	status vo.Status,
	priority vo.Priority,
	period, link string,
	generatedFromCalendar bool,
	calendarEntryID uint,
	metadata map[string]interface{},
	createdAt, updatedAt time.Time,
) (*Obligation, error) {
	if id == 0 {
		return nil, fmt.Errorf("obligation ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid obligation status: %s", status)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid obligation priority: %s", priority)
	}

	if metadata == nil {
		metadata = make(map[string]interface{})
	}

	return &Obligation{
		id:                    id,
		uuid:                  uuidStr,
		businessID:            businessID,
		title:                 title,
		description:           description,
		tag:                   tag,
		dueDate:               dueDate,
		status:                status,
		priority:              priority,
		period:                period,
		link:                  link,
		generatedFromCalendar: generatedFromCalendar,
		calendarEntryID:       calendarEntryID,
		metadata:              metadata,
		createdAt:             createdAt,
		updatedAt:             updatedAt,
	}, nil
}

// ID returns the obligation ID
func (o *Obligation) ID() uint {
	return o.id
}

// SetID writes back the auto-generated ID after persistence
func (o *Obligation) SetID(id uint) {
	o.id = id
}

// UUID returns the obligation UUID
func (o *Obligation) UUID() string {
	return o.uuid
}

// BusinessID returns the owning business ID
func (o *Obligation) BusinessID() uint {
	return o.businessID
}

// Title returns the human title
func (o *Obligation) Title() string {
	return o.title
}

// Description returns the description
func (o *Obligation) Description() string {
	return o.description
}

// Tag returns the obligation family tag
func (o *Obligation) Tag() string {
	return o.tag
}

// DueDate returns the concrete due date
func (o *Obligation) DueDate() time.Time {
	return o.dueDate
}

// Status returns the lifecycle status
func (o *Obligation) Status() vo.Status {
	return o.status
}

// Priority returns the generation-time priority
func (o *Obligation) Priority() vo.Priority {
	return o.priority
}

// Period returns the declared-period label
func (o *Obligation) Period() string {
	return o.period
}

// Link returns the reference link
func (o *Obligation) Link() string {
	return o.link
}

// GeneratedFromCalendar reports whether the record was machine-generated
func (o *Obligation) GeneratedFromCalendar() bool {
	return o.generatedFromCalendar
}

// CalendarEntryID returns the originating calendar entry; zero for records
// not generated by the engine
func (o *Obligation) CalendarEntryID() uint {
	return o.calendarEntryID
}

// Metadata returns the structured metadata blob
func (o *Obligation) Metadata() map[string]interface{} {
	return o.metadata
}

// CreatedAt returns the creation timestamp
func (o *Obligation) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last update timestamp
func (o *Obligation) UpdatedAt() time.Time {
	return o.updatedAt
}
