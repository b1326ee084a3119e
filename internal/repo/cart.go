package repo

import (
	"context"

	"github.com/Beka01247/bistro-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CartRepository interface {
	Create(ctx context.Context, entry *domain.CartEntry) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.CartEntry, error)
	ListByEmail(ctx context.Context, email string) ([]domain.CartEntry, error)
	List(ctx context.Context) ([]domain.CartEntry, error)
	UpdateQuantity(ctx context.Context, id primitive.ObjectID, quantity int) (*domain.CartEntry, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*domain.CartEntry, error)
	DeleteMany(ctx context.Context, ids []primitive.ObjectID) (int64, error)
}
