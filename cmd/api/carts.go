package main

import (
	"net/http"

	"github.com/Beka01247/bistro-api/internal/domain"
	"github.com/go-chi/chi"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AddCartItemRequest names the menu item; its title and price come from the
// menu, not the client.
type AddCartItemRequest struct {
	Email    string `json:"email" validate:"required,email"`
	MenuID   string `json:"menuId" validate:"required"`
	Quantity int    `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

// listCartsHandler godoc
//
//	@Summary		List cart entries
//	@Description	Entries of one user when email is given, otherwise all of them
//	@Tags			carts
//	@Produce		json
//	@Param			email	query		string	false	"Owner email"
//	@Success		200		{array}		domain.CartEntry
//	@Router			/carts [get]
func (app *application) listCartsHandler(w http.ResponseWriter, r *http.Request) {
	var (
		entries []domain.CartEntry
		err     error
	)

	if email := r.URL.Query().Get("email"); email != "" {
		entries, err = app.cartService.ListByEmail(r.Context(), email)
	} else {
		entries, err = app.cartService.List(r.Context())
	}
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusOK, entries); err != nil {
		app.internalServerError(w, r, err)
	}
}

// addCartItemHandler godoc
//
//	@Summary		Add item to cart
//	@Tags			carts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		AddCartItemRequest	true	"Cart entry"
//	@Success		201		{object}	domain.CartEntry
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Router			/carts [post]
func (app *application) addCartItemHandler(w http.ResponseWriter, r *http.Request) {
	var req AddCartItemRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	entry := &domain.CartEntry{
		Email:    req.Email,
		MenuID:   req.MenuID,
		Quantity: req.Quantity,
	}
	if err := app.cartService.Add(r.Context(), entry); err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusCreated, entry); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateCartItemHandler godoc
//
//	@Summary		Change cart entry quantity
//	@Tags			carts
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Cart entry ID"
//	@Param			request	body		UpdateCartItemRequest	true	"Quantity"
//	@Success		200		{object}	domain.CartEntry
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Router			/carts/{id} [patch]
func (app *application) updateCartItemHandler(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		app.badRequestResponse(w, r, domain.ErrInvalidID)
		return
	}

	var req UpdateCartItemRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	entry, err := app.cartService.UpdateQuantity(r.Context(), id, *req.Quantity)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusOK, entry); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteCartItemHandler godoc
//
//	@Summary		Remove cart entry
//	@Tags			carts
//	@Param			id	path	string	true	"Cart entry ID"
//	@Success		204
//	@Failure		400	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Router			/carts/{id} [delete]
func (app *application) deleteCartItemHandler(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		app.badRequestResponse(w, r, domain.ErrInvalidID)
		return
	}

	if err := app.cartService.Remove(r.Context(), id); err != nil {
		app.serviceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
