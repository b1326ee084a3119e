package main

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi"
)

type PaymentResultResponse struct {
	TransactionID string `json:"transactionId"`
	PaidStatus    bool   `json:"paidStatus"`
}

// paymentSuccessHandler godoc
//
//	@Summary		Payment success callback
//	@Description	Called by the payment gateway. Marks the order paid and sends the browser to the frontend.
//	@Tags			payment
//	@Param			tranId	path	string	true	"Transaction ID"
//	@Success		303
//	@Success		200	{object}	PaymentResultResponse
//	@Failure		404	{object}	map[string]string
//	@Router			/payment/success/{tranId} [post]
func (app *application) paymentSuccessHandler(w http.ResponseWriter, r *http.Request) {
	tranID := chi.URLParam(r, "tranId")

	order, err := app.orderService.ConfirmPayment(r.Context(), tranID)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	app.paymentResult(w, r, "success", PaymentResultResponse{TransactionID: tranID, PaidStatus: order.PaidStatus})
}

// paymentFailedHandler godoc
//
//	@Summary		Payment failure callback
//	@Description	Called by the payment gateway on failure or cancellation. Removes the order.
//	@Tags			payment
//	@Param			tranId	path	string	true	"Transaction ID"
//	@Success		303
//	@Success		200	{object}	PaymentResultResponse
//	@Failure		404	{object}	map[string]string
//	@Router			/payment/failed/{tranId} [post]
func (app *application) paymentFailedHandler(w http.ResponseWriter, r *http.Request) {
	tranID := chi.URLParam(r, "tranId")

	if _, err := app.orderService.CancelPayment(r.Context(), tranID); err != nil {
		app.serviceError(w, r, err)
		return
	}

	app.paymentResult(w, r, "failed", PaymentResultResponse{TransactionID: tranID})
}

// paymentResult redirects the browser to the frontend result page, or answers
// with JSON when no frontend is configured.
func (app *application) paymentResult(w http.ResponseWriter, r *http.Request, outcome string, result PaymentResultResponse) {
	if app.config.frontendURL == "" {
		if err := writeJson(w, http.StatusOK, result); err != nil {
			app.internalServerError(w, r, err)
		}
		return
	}

	target := strings.TrimRight(app.config.frontendURL, "/") + "/payment/" + outcome + "/" + url.PathEscape(result.TransactionID)
	http.Redirect(w, r, target, http.StatusSeeOther)
}
