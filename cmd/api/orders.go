package main

import (
	"context"
	"net/http"

	"github.com/Beka01247/bistro-api/internal/domain"
	"github.com/Beka01247/bistro-api/internal/report"
	"github.com/Beka01247/bistro-api/internal/service"
	"github.com/go-chi/chi"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CartItemRef struct {
	ProductID string `json:"productId" validate:"required"`
}

type PlaceOrderRequest struct {
	CartItems   []CartItemRef `json:"cartItems" validate:"required,min=1,max=100,dive"`
	Name        string        `json:"name" validate:"required,max=200"`
	Email       string        `json:"email" validate:"required,email"`
	Address     string        `json:"address" validate:"max=500"`
	PhoneNumber string        `json:"phoneNumber" validate:"max=50"`
}

type PlaceOrderResponse struct {
	URL           string `json:"url"`
	TransactionID string `json:"transactionId"`
	Total         string `json:"total"`
}

// placeOrderHandler godoc
//
//	@Summary		Place order
//	@Description	Prices the referenced cart entries and opens a payment session. The order is stored after the response is sent.
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		PlaceOrderRequest	true	"Order"
//	@Success		200		{object}	PlaceOrderResponse
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Failure		502		{object}	map[string]string
//	@Router			/order [post]
func (app *application) placeOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ids := make([]string, len(req.CartItems))
	for i, item := range req.CartItems {
		ids[i] = item.ProductID
	}

	checkout, err := app.orderService.PlaceOrder(r.Context(), service.PlaceOrderInput{
		CartItemIDs: ids,
		Name:        req.Name,
		Email:       req.Email,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	response := PlaceOrderResponse{
		URL:           checkout.GatewayURL,
		TransactionID: checkout.TransactionID,
		Total:         checkout.Total.StringFixed(2),
	}
	if err := writeJson(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}

	// the client holds its redirect; storing must outlive the request
	app.orderService.Commit(context.WithoutCancel(r.Context()), checkout)
}

// listOrdersHandler godoc
//
//	@Summary		List orders
//	@Tags			orders
//	@Produce		json
//	@Param			page	query		int	false	"Page, from 1"
//	@Param			limit	query		int	false	"Page size, at most 100"
//	@Success		200		{array}		domain.Order
//	@Failure		400		{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/order [get]
func (app *application) listOrdersHandler(w http.ResponseWriter, r *http.Request) {
	page, err := readPage(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	orders, err := app.orderService.List(r.Context(), page)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusOK, orders); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getOrderHandler godoc
//
//	@Summary		Get order by ID
//	@Tags			orders
//	@Produce		json
//	@Param			id	path		string	true	"Order ID"
//	@Success		200	{object}	domain.Order
//	@Failure		400	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/order/{id} [get]
func (app *application) getOrderHandler(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		app.badRequestResponse(w, r, domain.ErrInvalidID)
		return
	}

	order, err := app.orderService.Get(r.Context(), id)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusOK, order); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteOrderHandler godoc
//
//	@Summary		Delete order
//	@Tags			orders
//	@Param			id	path	string	true	"Order ID"
//	@Success		204
//	@Failure		400	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/order/{id} [delete]
func (app *application) deleteOrderHandler(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		app.badRequestResponse(w, r, domain.ErrInvalidID)
		return
	}

	if err := app.orderService.Delete(r.Context(), id); err != nil {
		app.serviceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// exportOrdersHandler godoc
//
//	@Summary		Export orders
//	@Description	Every order as an xlsx workbook
//	@Tags			orders
//	@Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Success		200	{file}		file
//	@Failure		500	{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/order/export [get]
func (app *application) exportOrdersHandler(w http.ResponseWriter, r *http.Request) {
	orders, err := app.orderService.Export(r.Context())
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", report.ContentTypeXLSX)
	w.Header().Set("Content-Disposition", "attachment; filename=orders.xlsx")

	if err := report.WriteOrders(w, orders); err != nil {
		// headers are gone by now
		app.logger.Errorw("failed to write order export", "error", err)
	}
}
