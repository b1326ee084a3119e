package main

import "net/http"

// generalStatsHandler godoc
//
//	@Summary		Admin statistics
//	@Description	User, menu and order counts plus revenue of paid orders
//	@Tags			admin
//	@Produce		json
//	@Success		200	{object}	domain.GeneralStats
//	@Failure		401	{object}	map[string]string
//	@Failure		403	{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/general [get]
func (app *application) generalStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := app.statsService.General(r.Context())
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusOK, stats); err != nil {
		app.internalServerError(w, r, err)
	}
}
