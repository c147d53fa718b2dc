// Package audit holds the append-only audit trail the engine reports every
// trigger outcome to, so failed runs are never silent.
package audit

import (
	"fmt"
	"time"
)

// Audit entry kinds written by the generation engine.
const (
	KindNewBusinessRun   = "generation.new_business"
	KindCatalogChangeRun = "generation.catalog_change"
	KindScheduleTickRun  = "generation.schedule_tick"
	KindManualRun        = "generation.manual"
)

// Entry is one immutable audit record.
type Entry struct {
	id        uint
	kind      string
	actor     string
	payload   map[string]interface{}
	createdAt time.Time
}

// NewEntry creates a new audit entry
func NewEntry(kind, actor string, payload map[string]interface{}) (*Entry, error) {
	if kind == "" {
		return nil, fmt.Errorf("audit kind is required")
	}
	if actor == "" {
		return nil, fmt.Errorf("audit actor is required")
	}
	if payload == nil {
		payload = make(map[string]interface{})
	}

	return &Entry{
		kind:      kind,
		actor:     actor,
		payload:   payload,
		createdAt: time.Now(),
	}, nil
}

// ReconstructEntry reconstructs an audit entry from persistence
func ReconstructEntry(id uint, kind, actor string, payload map[string]interface{}, createdAt time.Time) (*Entry, error) {
	if id == 0 {
		return nil, fmt.Errorf("audit entry ID cannot be zero")
	}
	if payload == nil {
		payload = make(map[string]interface{})
	}

	return &Entry{
		id:        id,
		kind:      kind,
		actor:     actor,
		payload:   payload,
		createdAt: createdAt,
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

// Kind returns the entry kind
func (e *Entry) Kind() string {
	return e.kind
}

// Actor returns the actor identity
func (e *Entry) Actor() string {
	return e.actor
}

// Payload returns the structured payload
func (e *Entry) Payload() map[string]interface{} {
	return e.payload
}

// CreatedAt returns the creation timestamp
func (e *Entry) CreatedAt() time.Time {
	return e.createdAt
}
