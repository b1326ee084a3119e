package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Beka01247/bistro-api/internal/domain"
)

const (
	sandboxURL = "https://sandbox.sslcommerz.com"
	liveURL    = "https://securepay.sslcommerz.com"

	initPath = "/gwprocess/v4/api.php"
)

type Config struct {
	StoreID       string
	StorePassword string
	Live          bool
	// BaseURL overrides the sandbox/live host.
	BaseURL string
	Timeout time.Duration
}

type SSLCommerz struct {
	storeID  string
	password string
	baseURL  string
	client   *http.Client
}

type initResponse struct {
	Status         string `json:"status"`
	FailedReason   string `json:"failedreason"`
	SessionKey     string `json:"sessionkey"`
	GatewayPageURL string `json:"GatewayPageURL"`
}

func NewSSLCommerz(cfg Config) *SSLCommerz {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = sandboxURL
		if cfg.Live {
			baseURL = liveURL
		}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &SSLCommerz{
		storeID:  cfg.StoreID,
		password: cfg.StorePassword,
		baseURL:  strings.TrimRight(baseURL, "/"),
		client:   &http.Client{Timeout: timeout},
	}
}

func (s *SSLCommerz) CreateSession(ctx context.Context, req SessionRequest) (*Session, error) {
	form := url.Values{}
	form.Set("store_id", s.storeID)
	form.Set("store_passwd", s.password)
	form.Set("total_amount", req.TotalAmount)
	form.Set("currency", req.Currency)
	form.Set("tran_id", req.TransactionID)
	form.Set("success_url", req.SuccessURL)
	form.Set("fail_url", req.FailURL)
	form.Set("cancel_url", req.CancelURL)
	if req.IPNURL != "" {
		form.Set("ipn_url", req.IPNURL)
	}
	form.Set("shipping_method", req.ShippingMethod)
	form.Set("product_name", req.ProductName)
	form.Set("product_category", req.ProductCategory)
	form.Set("product_profile", req.ProductProfile)
	form.Set("cus_name", req.CustomerName)
	form.Set("cus_email", req.CustomerEmail)
	form.Set("cus_add1", req.CustomerAddress)
	form.Set("cus_phone", req.CustomerPhone)
	form.Set("ship_name", req.ShipName)
	form.Set("ship_add1", req.ShipAddress1)
	form.Set("ship_add2", req.ShipAddress2)
	form.Set("ship_city", req.ShipCity)
	form.Set("ship_state", req.ShipState)
	form.Set("ship_postcode", req.ShipPostcode)
	form.Set("ship_country", req.ShipCountry)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+initPath, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build gateway request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to reach gateway: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read gateway response: %v", domain.ErrUpstream, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: gateway returned %d", domain.ErrUpstream, resp.StatusCode)
	}

	var parsed initResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: malformed gateway response: %v", domain.ErrUpstream, err)
	}

	if !strings.EqualFold(parsed.Status, "SUCCESS") {
		return nil, fmt.Errorf("%w: gateway status %q: %s", domain.ErrUpstream, parsed.Status, parsed.FailedReason)
	}

	if parsed.GatewayPageURL == "" {
		return nil, fmt.Errorf("%w: gateway returned empty redirect URL", domain.ErrUpstream)
	}

	return &Session{
		GatewayURL: parsed.GatewayPageURL,
		SessionKey: parsed.SessionKey,
	}, nil
}
