package main

import (
	"net/http"

	"github.com/Beka01247/bistro-api/internal/domain"
)

type CreateBookingRequest struct {
	Name   string `json:"name" validate:"required,max=200"`
	Email  string `json:"email" validate:"required,email"`
	Phone  string `json:"phone" validate:"max=50"`
	Date   string `json:"date" validate:"required"`
	Time   string `json:"time" validate:"required"`
	Guests int    `json:"guests" validate:"omitempty,gte=1,lte=100"`
	Note   string `json:"note" validate:"max=2000"`
}

// createBookingHandler godoc
//
//	@Summary		Book a table
//	@Tags			bookings
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateBookingRequest	true	"Booking"
//	@Success		201		{object}	domain.Booking
//	@Failure		400		{object}	map[string]string
//	@Router			/booking [post]
func (app *application) createBookingHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	booking := &domain.Booking{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Date:   req.Date,
		Time:   req.Time,
		Guests: req.Guests,
		Note:   req.Note,
	}
	if err := app.bookingService.Create(r.Context(), booking); err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusCreated, booking); err != nil {
		app.internalServerError(w, r, err)
	}
}
