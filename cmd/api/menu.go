package main

import (
	"net/http"

	"github.com/Beka01247/bistro-api/internal/domain"
	"github.com/go-chi/chi"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateMenuItemRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Category    string  `json:"category" validate:"required,max=100"`
	Price       float64 `json:"price" validate:"gte=0"`
	Description string  `json:"description" validate:"max=2000"`
	Image       string  `json:"image" validate:"omitempty,url"`
}

// UpdateMenuItemRequest changes only the fields that are present.
type UpdateMenuItemRequest struct {
	Title       *string  `json:"title" validate:"omitempty,min=1,max=200"`
	Category    *string  `json:"category" validate:"omitempty,min=1,max=100"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	Image       *string  `json:"image" validate:"omitempty,url"`
}

type ImportMenuRequest struct {
	SpreadsheetID string `json:"spreadsheet_id" validate:"required"`
}

// listMenuHandler godoc
//
//	@Summary		List menu
//	@Description	Lists the menu, optionally one category
//	@Tags			menu
//	@Produce		json
//	@Param			category	query		string	false	"Category"
//	@Success		200			{array}		domain.MenuItem
//	@Failure		500			{object}	map[string]string
//	@Router			/menu [get]
func (app *application) listMenuHandler(w http.ResponseWriter, r *http.Request) {
	items, err := app.menuService.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusOK, items); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getMenuItemHandler godoc
//
//	@Summary		Get menu item by ID
//	@Tags			menu
//	@Produce		json
//	@Param			id	path		string	true	"Menu item ID"
//	@Success		200	{object}	domain.MenuItem
//	@Failure		400	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Router			/menu/{id} [get]
func (app *application) getMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		app.badRequestResponse(w, r, domain.ErrInvalidID)
		return
	}

	item, err := app.menuService.Get(r.Context(), id)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusOK, item); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createMenuItemHandler godoc
//
//	@Summary		Create menu item
//	@Tags			menu
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateMenuItemRequest	true	"Menu item"
//	@Success		201		{object}	domain.MenuItem
//	@Failure		400		{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/menu [post]
func (app *application) createMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateMenuItemRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	item := &domain.MenuItem{
		Title:       req.Title,
		Category:    req.Category,
		Price:       req.Price,
		Description: req.Description,
		Image:       req.Image,
	}
	if err := app.menuService.Create(r.Context(), item); err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusCreated, item); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateMenuItemHandler godoc
//
//	@Summary		Update menu item
//	@Tags			menu
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Menu item ID"
//	@Param			request	body		UpdateMenuItemRequest	true	"Changed fields"
//	@Success		200		{object}	domain.MenuItem
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/menu/{id} [patch]
func (app *application) updateMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		app.badRequestResponse(w, r, domain.ErrInvalidID)
		return
	}

	var req UpdateMenuItemRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	item, err := app.menuService.Get(r.Context(), id)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Image != nil {
		item.Image = *req.Image
	}

	if err := app.menuService.Update(r.Context(), item); err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusOK, item); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteMenuItemHandler godoc
//
//	@Summary		Delete menu item
//	@Tags			menu
//	@Param			id	path	string	true	"Menu item ID"
//	@Success		204
//	@Failure		400	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/menu/{id} [delete]
func (app *application) deleteMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		app.badRequestResponse(w, r, domain.ErrInvalidID)
		return
	}

	if err := app.menuService.Delete(r.Context(), id); err != nil {
		app.serviceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// importMenuHandler godoc
//
//	@Summary		Import menu from Google Sheets
//	@Description	Appends every row of the sheet (title, category, price, description, image) to the menu
//	@Tags			menu
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ImportMenuRequest	true	"Spreadsheet"
//	@Success		201		{object}	map[string]int
//	@Failure		400		{object}	map[string]string
//	@Failure		501		{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/menu/import [post]
func (app *application) importMenuHandler(w http.ResponseWriter, r *http.Request) {
	var req ImportMenuRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	n, err := app.menuService.Import(r.Context(), req.SpreadsheetID)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusCreated, map[string]int{"imported": n}); err != nil {
		app.internalServerError(w, r, err)
	}
}
