package main

import (
	"net/http"
)

type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

// createTokenHandler godoc
//
//	@Summary		Issue access token
//	@Description	Signs a short-lived token for a signed-in user
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		TokenRequest	true	"Token request"
//	@Success		200		{object}	TokenResponse
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/jwt [post]
func (app *application) createTokenHandler(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	token, err := app.authenticator.GenerateToken(req.Email, req.Name)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusOK, TokenResponse{Token: token}); err != nil {
		app.internalServerError(w, r, err)
	}
}
