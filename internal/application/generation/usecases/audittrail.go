package usecases

import (
	"context"

	"fiscalis/internal/application/generation/dto"
	"fiscalis/internal/domain/audit"
	"fiscalis/internal/shared/logger"
)

// recordSummary appends a successful trigger outcome to the audit trail. An
// audit write failure is logged but never fails the run that produced it.
func recordSummary(ctx context.Context, auditLog audit.Repository, log logger.Interface, kind, actor string, summary *dto.RunSummary) {
	entry, err := audit.NewEntry(kind, actor, summary.AuditPayload())
	if err != nil {
		log.Errorw("failed to build audit entry", "kind", kind, "error", err)
		return
	}
	if err := auditLog.Append(ctx, entry); err != nil {
		log.Errorw("failed to append audit entry", "kind", kind, "error", err)
	}
}

// recordFailure appends a failed trigger outcome to the audit trail.
func recordFailure(ctx context.Context, auditLog audit.Repository, log logger.Interface, kind, actor string, runErr error) {
	if actor == "" {
		actor = "unknown"
	}
	entry, err := audit.NewEntry(kind, actor, map[string]interface{}{
		"error": runErr.Error(),
	})
	if err != nil {
		log.Errorw("failed to build audit entry", "kind", kind, "error", err)
		return
	}
	if err := auditLog.Append(ctx, entry); err != nil {
		log.Errorw("failed to append audit entry", "kind", kind, "error", err)
	}
}
