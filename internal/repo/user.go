package repo

import (
	"context"

	"github.com/Beka01247/bistro-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, page domain.Page) ([]domain.User, error)
	SetRole(ctx context.Context, id primitive.ObjectID, role domain.Role) (*domain.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	Count(ctx context.Context) (int64, error)
}
