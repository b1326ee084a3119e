package main

import (
	"errors"
	"net/http"
	"strconv"
)

// listReviewsHandler godoc
//
//	@Summary		List reviews
//	@Description	Newest reviews first
//	@Tags			reviews
//	@Produce		json
//	@Param			limit	query		int	false	"Maximum number of reviews, all when omitted"
//	@Success		200		{array}		domain.Review
//	@Failure		400		{object}	map[string]string
//	@Router			/review [get]
func (app *application) listReviewsHandler(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			app.badRequestResponse(w, r, errors.New("limit must be a positive integer"))
			return
		}
		limit = min(n, maxPageLimit)
	}

	reviews, err := app.reviewService.List(r.Context(), limit)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusOK, reviews); err != nil {
		app.internalServerError(w, r, err)
	}
}
