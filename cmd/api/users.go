package main

import (
	"net/http"

	"github.com/Beka01247/bistro-api/internal/domain"
	"github.com/go-chi/chi"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"max=200"`
	PhotoURL string `json:"photoURL" validate:"omitempty,url"`
}

type CreateUserResponse struct {
	Message    string  `json:"message,omitempty"`
	InsertedID *string `json:"insertedId"`
}

type AdminStatusResponse struct {
	Admin bool `json:"admin"`
}

// createUserHandler godoc
//
//	@Summary		Register user
//	@Description	Stores a user on first sign-in; repeated calls are a no-op
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateUserRequest	true	"User"
//	@Success		200		{object}	CreateUserResponse	"user already exists"
//	@Success		201		{object}	CreateUserResponse
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/users [post]
func (app *application) createUserHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	user, created, err := app.userService.Register(r.Context(), &domain.User{
		Email:    req.Email,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if !created {
		if err := writeJson(w, http.StatusOK, CreateUserResponse{Message: "user already exists"}); err != nil {
			app.internalServerError(w, r, err)
		}
		return
	}

	id := user.ID.Hex()
	if err := writeJson(w, http.StatusCreated, CreateUserResponse{InsertedID: &id}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listUsersHandler godoc
//
//	@Summary		List users
//	@Tags			users
//	@Produce		json
//	@Param			page	query		int	false	"Page, from 1"
//	@Param			limit	query		int	false	"Page size, at most 100"
//	@Success		200		{array}		domain.User
//	@Failure		400		{object}	map[string]string
//	@Failure		401		{object}	map[string]string
//	@Failure		403		{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/users [get]
func (app *application) listUsersHandler(w http.ResponseWriter, r *http.Request) {
	page, err := readPage(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	users, err := app.userService.List(r.Context(), page)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusOK, users); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteUserHandler godoc
//
//	@Summary		Delete user
//	@Tags			users
//	@Param			id	path	string	true	"User ID"
//	@Success		204
//	@Failure		400	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/users/{id} [delete]
func (app *application) deleteUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		app.badRequestResponse(w, r, domain.ErrInvalidID)
		return
	}

	if err := app.userService.Delete(r.Context(), id); err != nil {
		app.serviceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// makeAdminHandler godoc
//
//	@Summary		Promote user to admin
//	@Tags			users
//	@Produce		json
//	@Param			id	path		string	true	"User ID"
//	@Success		200	{object}	domain.User
//	@Failure		400	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/users/admin/{id} [patch]
func (app *application) makeAdminHandler(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		app.badRequestResponse(w, r, domain.ErrInvalidID)
		return
	}

	user, err := app.userService.MakeAdmin(r.Context(), id)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusOK, user); err != nil {
		app.internalServerError(w, r, err)
	}
}

// adminStatusHandler godoc
//
//	@Summary		Check own admin role
//	@Tags			users
//	@Produce		json
//	@Param			email	path		string	true	"Email of the token holder"
//	@Success		200		{object}	AdminStatusResponse
//	@Failure		401		{object}	map[string]string
//	@Failure		403		{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/user/admin/{email} [get]
func (app *application) adminStatusHandler(w http.ResponseWriter, r *http.Request) {
	claims := getClaimsFromCtx(r)

	isAdmin, err := app.userService.IsAdmin(r.Context(), claims.Email)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusOK, AdminStatusResponse{Admin: isAdmin}); err != nil {
		app.internalServerError(w, r, err)
	}
}
