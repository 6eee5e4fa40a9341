package port

import (
	"context"

	"github.com/google/uuid"

	"mattervault/internal/domain"
	"mattervault/internal/query"
)

// MatterRepository defines the contract for matter persistence.
type MatterRepository interface {
	Create(ctx context.Context, matter *domain.Matter) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Matter, error)
	// List returns a lazy source over all matters; ordering, slicing and
	// materialization happen through the query engine.
	List() query.Source[domain.Matter]
	Update(ctx context.Context, matter *domain.Matter) error
	Delete(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// DocumentRepository defines the contract for document persistence.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	ListByMatter(matterID uuid.UUID) query.Source[domain.Document]
	Update(ctx context.Context, doc *domain.Document) error
	Delete(ctx context.Context, id uuid.UUID) error
	MoveToMatter(ctx context.Context, docID, toMatterID uuid.UUID) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// RevisionRepository defines the contract for revision persistence.
// Revisions are append-only; there is no update or delete.
type RevisionRepository interface {
	Create(ctx context.Context, rev *domain.Revision) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Revision, error)
	ListByDocument(ctx context.Context, docID uuid.UUID) ([]domain.Revision, error)
	NextNumber(ctx context.Context, docID uuid.UUID) (int, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// UserRepository defines the contract for user persistence.
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List() query.Source[domain.User]
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// ActivityRepository defines the contract for the fixed activity
// vocabulary. The vocabulary is seeded by migration and read-only at
// runtime.
type ActivityRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Activity, error)
	GetByName(ctx context.Context, name string) (*domain.Activity, error)
	ListAll(ctx context.Context) ([]domain.Activity, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
