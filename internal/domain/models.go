package domain

import (
	"time"

	"github.com/google/uuid"
)

// Matter represents a legal matter grouping related documents.
type Matter struct {
	ID          uuid.UUID    `db:"id" json:"id"`
	Name        string       `db:"name" json:"name"`
	Reference   string       `db:"reference" json:"reference"`
	Description string       `db:"description" json:"description"`
	Status      MatterStatus `db:"status" json:"status"`
	CreatedBy   uuid.UUID    `db:"created_by" json:"created_by"`
	CreatedAt   time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at" json:"updated_at"`
}

// Document represents a managed document belonging to a matter.
type Document struct {
	ID           uuid.UUID      `db:"id" json:"id"`
	MatterID     uuid.UUID      `db:"matter_id" json:"matter_id"`
	Title        string         `db:"title" json:"title"`
	Description  string         `db:"description" json:"description"`
	DocumentType string         `db:"document_type" json:"document_type"`
	Status       DocumentStatus `db:"status" json:"status"`
	CreatedBy    uuid.UUID      `db:"created_by" json:"created_by"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at" json:"updated_at"`
}

// Revision represents one immutable version of a document's content.
// The content itself lives in object storage under StorageKey.
type Revision struct {
	ID          uuid.UUID `db:"id" json:"id"`
	DocumentID  uuid.UUID `db:"document_id" json:"document_id"`
	Number      int       `db:"number" json:"number"`
	StorageKey  string    `db:"storage_key" json:"storage_key"`
	ContentType string    `db:"content_type" json:"content_type"`
	FileSize    int64     `db:"file_size" json:"file_size"`
	CreatedBy   uuid.UUID `db:"created_by" json:"created_by"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// User represents an actor who performs activities on matters and documents.
type User struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Email       string    `db:"email" json:"email"`
	FirstName   string    `db:"first_name" json:"first_name"`
	LastName    string    `db:"last_name" json:"last_name"`
	DateOfBirth time.Time `db:"date_of_birth" json:"date_of_birth"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Activity is one entry in the fixed vocabulary of auditable operations.
type Activity struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"` // at most 50 characters, enforced by schema
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// ActivityRecord is one append-only audit entry: who performed which
// activity on which subject, and when. The surrogate ID keeps two events
// recorded at the same instant distinct.
type ActivityRecord struct {
	ID          uuid.UUID   `db:"id" json:"id"`
	SubjectKind SubjectKind `db:"subject_kind" json:"subject_kind"`
	SubjectID   uuid.UUID   `db:"subject_id" json:"subject_id"`
	ActivityID  uuid.UUID   `db:"activity_id" json:"activity_id"`
	UserID      uuid.UUID   `db:"user_id" json:"user_id"`
	CreatedAt   time.Time   `db:"created_at" json:"created_at"`
}

// AuditEntry is the read model for audit listings and exports: an
// ActivityRecord joined with the activity and actor names it references.
type AuditEntry struct {
	ID            uuid.UUID   `db:"id" json:"id"`
	SubjectKind   SubjectKind `db:"subject_kind" json:"subject_kind"`
	SubjectID     uuid.UUID   `db:"subject_id" json:"subject_id"`
	ActivityID    uuid.UUID   `db:"activity_id" json:"activity_id"`
	ActivityName  string      `db:"activity_name" json:"activity_name"`
	UserID        uuid.UUID   `db:"user_id" json:"user_id"`
	UserFirstName string      `db:"user_first_name" json:"user_first_name"`
	UserLastName  string      `db:"user_last_name" json:"user_last_name"`
	CreatedAt     time.Time   `db:"created_at" json:"created_at"`
}

// TransferFromRecord is the origin-matter perspective of a document
// transfer. Its mirror is TransferToRecord; both share TransferID,
// ActivityID, UserID and CreatedAt and are written in one transaction.
type TransferFromRecord struct {
	ID         uuid.UUID `db:"id" json:"id"`
	TransferID uuid.UUID `db:"transfer_id" json:"transfer_id"`
	MatterID   uuid.UUID `db:"matter_id" json:"matter_id"`
	DocumentID uuid.UUID `db:"document_id" json:"document_id"`
	ActivityID uuid.UUID `db:"activity_id" json:"activity_id"`
	UserID     uuid.UUID `db:"user_id" json:"user_id"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// TransferToRecord is the destination-matter perspective of a document
// transfer.
type TransferToRecord struct {
	ID         uuid.UUID `db:"id" json:"id"`
	TransferID uuid.UUID `db:"transfer_id" json:"transfer_id"`
	MatterID   uuid.UUID `db:"matter_id" json:"matter_id"`
	DocumentID uuid.UUID `db:"document_id" json:"document_id"`
	ActivityID uuid.UUID `db:"activity_id" json:"activity_id"`
	UserID     uuid.UUID `db:"user_id" json:"user_id"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// Transfer describes one logical document move between matters. Recording
// it produces exactly one TransferFromRecord and one TransferToRecord.
type Transfer struct {
	TransferID   uuid.UUID
	FromMatterID uuid.UUID
	ToMatterID   uuid.UUID
	DocumentID   uuid.UUID
	ActivityID   uuid.UUID
	UserID       uuid.UUID
	CreatedAt    time.Time
}
