package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/Beka01247/bistro-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ReviewRepository struct {
	collection *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{
		collection: db.Collection(collectionReviews),
	}
}

func (r *ReviewRepository) List(ctx context.Context, limit int) ([]domain.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions(0, limit))
	if err != nil {
		return nil, fmt.Errorf("failed to get reviews: %w", err)
	}
	defer cursor.Close(ctx)

	reviews := []domain.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}

	return reviews, nil
}
