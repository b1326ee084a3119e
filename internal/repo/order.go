package repo

import (
	"context"

	"github.com/Beka01247/bistro-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Order, error)
	GetByTransactionID(ctx context.Context, transactionID string) (*domain.Order, error)
	List(ctx context.Context, page domain.Page) ([]domain.Order, error)
	// MarkPaid flips paidStatus of an unpaid order and returns it. An order
	// that is missing or already paid is ErrNotFound.
	MarkPaid(ctx context.Context, transactionID string) (*domain.Order, error)
	// DeleteByTransactionID removes the order and returns what was removed.
	DeleteByTransactionID(ctx context.Context, transactionID string) (*domain.Order, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*domain.Order, error)
	Count(ctx context.Context) (int64, error)
	CountPaid(ctx context.Context) (int64, error)
	PaidRevenue(ctx context.Context) (float64, error)
}
