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

type CartRepository struct {
	collection *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{
		collection: db.Collection(collectionCarts),
	}
}

func (r *CartRepository) Create(ctx context.Context, entry *domain.CartEntry) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	entry.CreatedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("failed to create cart entry: %w", err)
	}

	return nil
}

func (r *CartRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.CartEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var entry domain.CartEntry
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("cart entry %s: %w", id.Hex(), domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get cart entry: %w", err)
	}

	return &entry, nil
}

func (r *CartRepository) ListByEmail(ctx context.Context, email string) ([]domain.CartEntry, error) {
	return r.find(ctx, bson.M{"email": email})
}

func (r *CartRepository) List(ctx context.Context) ([]domain.CartEntry, error) {
	return r.find(ctx, bson.M{})
}

func (r *CartRepository) find(ctx context.Context, filter bson.M) ([]domain.CartEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.collection.Find(ctx, filter, findOptions(0, 0))
	if err != nil {
		return nil, fmt.Errorf("failed to list cart entries: %w", err)
	}
	defer cursor.Close(ctx)

	entries := []domain.CartEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode cart entries: %w", err)
	}

	return entries, nil
}

func (r *CartRepository) UpdateQuantity(ctx context.Context, id primitive.ObjectID, quantity int) (*domain.CartEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"quantity": quantity}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var entry domain.CartEntry
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("cart entry %s: %w", id.Hex(), domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update cart entry: %w", err)
	}

	return &entry, nil
}

func (r *CartRepository) Delete(ctx context.Context, id primitive.ObjectID) (*domain.CartEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var entry domain.CartEntry
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("cart entry %s: %w", id.Hex(), domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to delete cart entry: %w", err)
	}

	return &entry, nil
}

func (r *CartRepository) DeleteMany(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	result, err := r.collection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, fmt.Errorf("failed to delete cart entries: %w", err)
	}

	return result.DeletedCount, nil
}
