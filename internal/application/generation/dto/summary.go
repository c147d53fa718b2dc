package dto

import (
	"strconv"
	"time"
)

// BusinessResult is the per-business detail of a generation run.
type BusinessResult struct {
	BusinessID         uint   `json:"business_id"`
	BusinessName       string `json:"business_name"`
	ObligationsCreated int    `json:"obligations_created"`
	DuplicatesSkipped  int    `json:"duplicates_skipped"`
}

// RunSummary aggregates the outcome of one generation run. It is ephemeral:
// the engine returns it to the caller and records it as an audit payload, but
// never persists it as a first-class entity.
type RunSummary struct {
	RunID                string           `json:"run_id"`
	Trigger              string           `json:"trigger"`
	Actor                string           `json:"actor"`
	WindowStart          time.Time        `json:"window_start"`
	WindowEnd            time.Time        `json:"window_end"`
	BusinessesConsidered int              `json:"businesses_considered"`
	ObligationsCreated   int              `json:"obligations_created"`
	DuplicatesSkipped    int              `json:"duplicates_skipped"`
	PerBusiness          []BusinessResult `json:"per_business"`
	Errors               map[uint]string  `json:"errors,omitempty"`
	StartedAt            time.Time        `json:"started_at"`
	FinishedAt           time.Time        `json:"finished_at"`
}

// AuditPayload flattens the summary into the structured payload shape the
// audit trail stores.
func (s *RunSummary) AuditPayload() map[string]interface{} {
	errs := make(map[string]interface{}, len(s.Errors))
	for businessID, msg := range s.Errors {
		errs[strconv.FormatUint(uint64(businessID), 10)] = msg
	}

	return map[string]interface{}{
		"run_id":                s.RunID,
		"trigger":               s.Trigger,
		"actor":                 s.Actor,
		"window_start":          s.WindowStart.Format(time.RFC3339),
		"window_end":            s.WindowEnd.Format(time.RFC3339),
		"businesses_considered": s.BusinessesConsidered,
		"obligations_created":   s.ObligationsCreated,
		"duplicates_skipped":    s.DuplicatesSkipped,
		"errors":                errs,
		"started_at":            s.StartedAt.Format(time.RFC3339),
		"finished_at":           s.FinishedAt.Format(time.RFC3339),
	}
}
