package repo

import (
	"context"

	"github.com/Beka01247/bistro-api/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
}
