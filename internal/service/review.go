package service

import (
	"context"
	"time"

	"github.com/Beka01247/bistro-api/internal/cache"
	"github.com/Beka01247/bistro-api/internal/domain"
	"github.com/Beka01247/bistro-api/internal/repo"
)

const reviewsTTL = 10 * time.Minute

type ReviewService struct {
	reviews repo.ReviewRepository
	cache   cache.Cache
}

func NewReviewService(reviews repo.ReviewRepository, c cache.Cache) *ReviewService {
	return &ReviewService{
		reviews: reviews,
		cache:   c,
	}
}

func (s *ReviewService) List(ctx context.Context, limit int) ([]domain.Review, error) {
	return cache.GetOrLoad(s.cache, cache.ReviewsKey(limit), reviewsTTL, func() ([]domain.Review, error) {
		return s.reviews.List(ctx, limit)
	})
}
