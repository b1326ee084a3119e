package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Beka01247/bistro-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OrderRepository struct {
	collection *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{
		collection: db.Collection(collectionOrders),
	}
}

func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	order.UpdatedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, order); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("order %s: %w", order.TransactionID, domain.ErrConflict)
		}
		return fmt.Errorf("failed to create order: %w", err)
	}

	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Order, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *OrderRepository) GetByTransactionID(ctx context.Context, transactionID string) (*domain.Order, error) {
	return r.findOne(ctx, bson.M{"transaction_id": transactionID})
}

func (r *OrderRepository) findOne(ctx context.Context, filter bson.M) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var order domain.Order
	err := r.collection.FindOne(ctx, filter).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("order: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return &order, nil
}

func (r *OrderRepository) List(ctx context.Context, page domain.Page) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions(page.Skip(), page.Limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer cursor.Close(ctx)

	orders := []domain.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}

	return orders, nil
}

func (r *OrderRepository) MarkPaid(ctx context.Context, transactionID string) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"paidStatus": true,
			"updated_at": time.Now(),
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var order domain.Order
	// only an unpaid order transitions, so a repeated callback matches nothing
	filter := bson.M{"transaction_id": transactionID, "paidStatus": false}
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("unpaid order %s: %w", transactionID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to mark order paid: %w", err)
	}

	return &order, nil
}

func (r *OrderRepository) DeleteByTransactionID(ctx context.Context, transactionID string) (*domain.Order, error) {
	return r.deleteOne(ctx, bson.M{"transaction_id": transactionID})
}

func (r *OrderRepository) Delete(ctx context.Context, id primitive.ObjectID) (*domain.Order, error) {
	return r.deleteOne(ctx, bson.M{"_id": id})
}

func (r *OrderRepository) deleteOne(ctx context.Context, filter bson.M) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var order domain.Order
	err := r.collection.FindOneAndDelete(ctx, filter).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("order: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to delete order: %w", err)
	}

	return &order, nil
}

func (r *OrderRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	n, err := r.collection.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}

	return n, nil
}

func (r *OrderRepository) CountPaid(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	n, err := r.collection.CountDocuments(ctx, bson.M{"paidStatus": true})
	if err != nil {
		return 0, fmt.Errorf("failed to count paid orders: %w", err)
	}

	return n, nil
}

func (r *OrderRepository) PaidRevenue(ctx context.Context) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"paidStatus": true}}},
		{{Key: "$group", Value: bson.M{
			"_id":          nil,
			"totalRevenue": bson.M{"$sum": "$total_amount"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate revenue: %w", err)
	}
	defer cursor.Close(ctx)

	var result []struct {
		TotalRevenue float64 `bson:"totalRevenue"`
	}
	if err := cursor.All(ctx, &result); err != nil {
		return 0, fmt.Errorf("failed to decode revenue: %w", err)
	}

	if len(result) == 0 {
		return 0, nil
	}

	return result[0].TotalRevenue, nil
}
