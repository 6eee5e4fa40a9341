package port

import (
	"context"

	"github.com/google/uuid"

	"mattervault/internal/domain"
	"mattervault/internal/query"
)

// AuditRepository defines the contract for the append-only audit trail.
type AuditRepository interface {
	// RecordActivity appends one audit record. Records are immutable once
	// written.
	RecordActivity(ctx context.Context, rec *domain.ActivityRecord) error

	// RecordTransfer writes the From and To perspectives of one document
	// transfer in a single transaction. Either both records commit or
	// neither does; concurrent readers never observe one without the other.
	RecordTransfer(ctx context.Context, t *domain.Transfer) error

	// QueryBySubject returns a lazy source over the subject's audit
	// entries, ordered by created_at ascending by default.
	QueryBySubject(subjectID uuid.UUID) query.Source[domain.AuditEntry]

	// GetTransferPair reconstructs one logical transfer from its two
	// mirrored records.
	GetTransferPair(ctx context.Context, transferID uuid.UUID) (*domain.TransferFromRecord, *domain.TransferToRecord, error)
}
