package payment

import "context"

// SessionRequest is everything the gateway needs to open a hosted checkout.
type SessionRequest struct {
	TransactionID   string
	TotalAmount     string
	Currency        string
	SuccessURL      string
	FailURL         string
	CancelURL       string
	IPNURL          string
	ProductName     string
	ProductCategory string
	ProductProfile  string
	ShippingMethod  string

	CustomerName    string
	CustomerEmail   string
	CustomerAddress string
	CustomerPhone   string

	ShipName     string
	ShipAddress1 string
	ShipAddress2 string
	ShipCity     string
	ShipState    string
	ShipPostcode string
	ShipCountry  string
}

type Session struct {
	GatewayURL string
	SessionKey string
}

type Gateway interface {
	CreateSession(ctx context.Context, req SessionRequest) (*Session, error)
}
