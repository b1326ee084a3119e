package repo

import (
	"context"

	"github.com/Beka01247/bistro-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MenuRepository interface {
	Create(ctx context.Context, item *domain.MenuItem) error
	CreateMany(ctx context.Context, items []domain.MenuItem) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.MenuItem, error)
	// List returns every item, or only one category when category is non-empty.
	List(ctx context.Context, category string) ([]domain.MenuItem, error)
	Update(ctx context.Context, item *domain.MenuItem) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}
