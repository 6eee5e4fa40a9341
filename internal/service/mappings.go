package service

import (
	"fmt"

	"mattervault/internal/domain"
	"mattervault/internal/query"
)

// Shape names for the field-mapping registry. The Dto side is what
// clients sort by; the entity side names the storage shape the paths
// belong to.
const (
	shapeMatterDto = "MatterDto"
	shapeMatter    = "Matter"

	shapeDocumentDto = "DocumentDto"
	shapeDocument    = "Document"

	shapeUserDto = "UserDto"
	shapeUser    = "User"

	shapeAuditDto = "AuditEntryDto"
	shapeAudit    = "AuditEntry"
)

// NewFieldRegistry builds the process-wide field-mapping registry. It is
// called once at startup; a registration error is a configuration defect
// and aborts boot.
func NewFieldRegistry() (*query.Registry, error) {
	r := query.NewRegistry()

	if err := r.Register(shapeMatterDto, shapeMatter, query.ShapeMapping{
		Entries: map[string]query.MappingEntry{
			"id":        {Paths: []string{"id"}},
			"name":      {Paths: []string{"name"}},
			"reference": {Paths: []string{"reference"}},
			"status":    {Paths: []string{"status"}},
			"createdAt": {Paths: []string{"created_at"}},
		},
		Tiebreaker: "id",
	}); err != nil {
		return nil, fmt.Errorf("registering matter mappings: %w", err)
	}

	if err := r.Register(shapeDocumentDto, shapeDocument, query.ShapeMapping{
		Entries: map[string]query.MappingEntry{
			"id":           {Paths: []string{"id"}},
			"title":        {Paths: []string{"title"}},
			"documentType": {Paths: []string{"document_type"}},
			"status":       {Paths: []string{"status"}},
			"createdAt":    {Paths: []string{"created_at"}},
			"updatedAt":    {Paths: []string{"updated_at"}},
			// A document's age runs opposite to its creation time.
			"age": {Paths: []string{"created_at"}, Reverse: true},
		},
		Tiebreaker: "id",
	}); err != nil {
		return nil, fmt.Errorf("registering document mappings: %w", err)
	}

	if err := r.Register(shapeUserDto, shapeUser, query.ShapeMapping{
		Entries: map[string]query.MappingEntry{
			"id":    {Paths: []string{"id"}},
			"email": {Paths: []string{"email"}},
			// One client-facing name, two storage orderings.
			"name": {Paths: []string{"last_name", "first_name"}},
			// Older users have earlier birth dates.
			"age":       {Paths: []string{"date_of_birth"}, Reverse: true},
			"createdAt": {Paths: []string{"created_at"}},
		},
		Tiebreaker: "id",
	}); err != nil {
		return nil, fmt.Errorf("registering user mappings: %w", err)
	}

	if err := r.Register(shapeAuditDto, shapeAudit, query.ShapeMapping{
		Entries: map[string]query.MappingEntry{
			"id":          {Paths: []string{"ar.id"}},
			"subjectKind": {Paths: []string{"ar.subject_kind"}},
			"activity":    {Paths: []string{"a.name"}},
			"user":        {Paths: []string{"u.last_name", "u.first_name"}},
			"createdAt":   {Paths: []string{"ar.created_at"}},
		},
		Tiebreaker: "ar.id",
	}); err != nil {
		return nil, fmt.Errorf("registering audit mappings: %w", err)
	}

	return r, nil
}

// Per-type shaping tables, built once and reused for every request.

var matterShaper = query.NewShaper[domain.Matter](
	query.FieldAccessor[domain.Matter]{Name: "id", Get: func(m domain.Matter) any { return m.ID }},
	query.FieldAccessor[domain.Matter]{Name: "name", Get: func(m domain.Matter) any { return m.Name }},
	query.FieldAccessor[domain.Matter]{Name: "reference", Get: func(m domain.Matter) any { return m.Reference }},
	query.FieldAccessor[domain.Matter]{Name: "description", Get: func(m domain.Matter) any { return m.Description }},
	query.FieldAccessor[domain.Matter]{Name: "status", Get: func(m domain.Matter) any { return m.Status }},
	query.FieldAccessor[domain.Matter]{Name: "createdAt", Get: func(m domain.Matter) any { return m.CreatedAt }},
	query.FieldAccessor[domain.Matter]{Name: "updatedAt", Get: func(m domain.Matter) any { return m.UpdatedAt }},
)

var documentShaper = query.NewShaper[domain.Document](
	query.FieldAccessor[domain.Document]{Name: "id", Get: func(d domain.Document) any { return d.ID }},
	query.FieldAccessor[domain.Document]{Name: "matterId", Get: func(d domain.Document) any { return d.MatterID }},
	query.FieldAccessor[domain.Document]{Name: "title", Get: func(d domain.Document) any { return d.Title }},
	query.FieldAccessor[domain.Document]{Name: "description", Get: func(d domain.Document) any { return d.Description }},
	query.FieldAccessor[domain.Document]{Name: "documentType", Get: func(d domain.Document) any { return d.DocumentType }},
	query.FieldAccessor[domain.Document]{Name: "status", Get: func(d domain.Document) any { return d.Status }},
	query.FieldAccessor[domain.Document]{Name: "createdAt", Get: func(d domain.Document) any { return d.CreatedAt }},
	query.FieldAccessor[domain.Document]{Name: "updatedAt", Get: func(d domain.Document) any { return d.UpdatedAt }},
)

var userShaper = query.NewShaper[domain.User](
	query.FieldAccessor[domain.User]{Name: "id", Get: func(u domain.User) any { return u.ID }},
	query.FieldAccessor[domain.User]{Name: "email", Get: func(u domain.User) any { return u.Email }},
	query.FieldAccessor[domain.User]{Name: "firstName", Get: func(u domain.User) any { return u.FirstName }},
	query.FieldAccessor[domain.User]{Name: "lastName", Get: func(u domain.User) any { return u.LastName }},
	query.FieldAccessor[domain.User]{Name: "name", Get: func(u domain.User) any { return u.FirstName + " " + u.LastName }},
	query.FieldAccessor[domain.User]{Name: "dateOfBirth", Get: func(u domain.User) any { return u.DateOfBirth }},
	query.FieldAccessor[domain.User]{Name: "createdAt", Get: func(u domain.User) any { return u.CreatedAt }},
)

var auditShaper = query.NewShaper[domain.AuditEntry](
	query.FieldAccessor[domain.AuditEntry]{Name: "id", Get: func(e domain.AuditEntry) any { return e.ID }},
	query.FieldAccessor[domain.AuditEntry]{Name: "subjectKind", Get: func(e domain.AuditEntry) any { return e.SubjectKind }},
	query.FieldAccessor[domain.AuditEntry]{Name: "subjectId", Get: func(e domain.AuditEntry) any { return e.SubjectID }},
	query.FieldAccessor[domain.AuditEntry]{Name: "activityId", Get: func(e domain.AuditEntry) any { return e.ActivityID }},
	query.FieldAccessor[domain.AuditEntry]{Name: "activity", Get: func(e domain.AuditEntry) any { return e.ActivityName }},
	query.FieldAccessor[domain.AuditEntry]{Name: "userId", Get: func(e domain.AuditEntry) any { return e.UserID }},
	query.FieldAccessor[domain.AuditEntry]{Name: "user", Get: func(e domain.AuditEntry) any { return e.UserFirstName + " " + e.UserLastName }},
	query.FieldAccessor[domain.AuditEntry]{Name: "createdAt", Get: func(e domain.AuditEntry) any { return e.CreatedAt }},
)
