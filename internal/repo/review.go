package repo

import (
	"context"

	"github.com/Beka01247/bistro-api/internal/domain"
)

type ReviewRepository interface {
	// List returns the newest reviews first. A zero limit returns all of them.
	List(ctx context.Context, limit int) ([]domain.Review, error)
}
