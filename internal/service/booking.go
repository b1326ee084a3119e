package service

import (
	"context"

	"github.com/Beka01247/bistro-api/internal/domain"
	"github.com/Beka01247/bistro-api/internal/repo"
	"go.uber.org/zap"
)

type BookingService struct {
	bookings repo.BookingRepository
	logger   *zap.SugaredLogger
}

func NewBookingService(bookings repo.BookingRepository, logger *zap.SugaredLogger) *BookingService {
	return &BookingService{
		bookings: bookings,
		logger:   logger,
	}
}

func (s *BookingService) Create(ctx context.Context, booking *domain.Booking) error {
	if err := s.bookings.Create(ctx, booking); err != nil {
		return err
	}

	s.logger.Infow("booking created", "booking_id", booking.ID.Hex(), "date", booking.Date, "time", booking.Time)

	return nil
}
