package domain

// MatterStatus represents the lifecycle of a matter.
type MatterStatus string

const (
	MatterStatusOpen     MatterStatus = "open"
	MatterStatusOnHold   MatterStatus = "on_hold"
	MatterStatusClosed   MatterStatus = "closed"
	MatterStatusArchived MatterStatus = "archived"
)

// ValidMatterStatuses enumerates accepted matter statuses.
var ValidMatterStatuses = map[MatterStatus]bool{
	MatterStatusOpen:     true,
	MatterStatusOnHold:   true,
	MatterStatusClosed:   true,
	MatterStatusArchived: true,
}

// DocumentStatus represents the lifecycle of a document.
type DocumentStatus string

const (
	DocumentStatusDraft      DocumentStatus = "draft"
	DocumentStatusActive     DocumentStatus = "active"
	DocumentStatusSuperseded DocumentStatus = "superseded"
	DocumentStatusDeleted    DocumentStatus = "deleted"
)

// ValidDocumentStatuses enumerates accepted document statuses.
var ValidDocumentStatuses = map[DocumentStatus]bool{
	DocumentStatusDraft:      true,
	DocumentStatusActive:     true,
	DocumentStatusSuperseded: true,
	DocumentStatusDeleted:    true,
}

// SubjectKind identifies which entity type an audit record points at.
type SubjectKind string

const (
	SubjectMatter   SubjectKind = "matter"
	SubjectDocument SubjectKind = "document"
	SubjectRevision SubjectKind = "revision"
)

// ValidSubjectKinds enumerates accepted audit subject kinds.
var ValidSubjectKinds = map[SubjectKind]bool{
	SubjectMatter:   true,
	SubjectDocument: true,
	SubjectRevision: true,
}

// Well-known activity names seeded by migration. The vocabulary is fixed;
// services look activities up by name at startup.
const (
	ActivityMatterCreated    = "matter.created"
	ActivityMatterUpdated    = "matter.updated"
	ActivityMatterClosed     = "matter.closed"
	ActivityDocumentCreated  = "document.created"
	ActivityDocumentUpdated  = "document.updated"
	ActivityDocumentDeleted  = "document.deleted"
	ActivityDocumentMoved    = "document.moved"
	ActivityRevisionUploaded = "revision.uploaded"
	ActivityRevisionFetched  = "revision.fetched"
)
