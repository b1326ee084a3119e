package payment

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Beka01247/bistro-api/internal/domain"
)

func TestCreateSession(t *testing.T) {
	var got map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != initPath {
			t.Errorf("path = %s, want %s", r.URL.Path, initPath)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("ParseForm: %v", err)
		}
		got = map[string]string{}
		for k := range r.PostForm {
			got[k] = r.PostForm.Get(k)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"SUCCESS","sessionkey":"sk-1","GatewayPageURL":"https://pay.example/checkout/sk-1"}`))
	}))
	defer srv.Close()

	gw := NewSSLCommerz(Config{StoreID: "store", StorePassword: "pw", BaseURL: srv.URL})
	session, err := gw.CreateSession(context.Background(), SessionRequest{
		TransactionID: "tx-1",
		TotalAmount:   "15.50",
		Currency:      "BDT",
		SuccessURL:    "http://api/payment/success/tx-1",
		FailURL:       "http://api/payment/failed/tx-1",
		ProductName:   "Soup, Salad",
		CustomerEmail: "a@b.com",
	})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	if session.GatewayURL != "https://pay.example/checkout/sk-1" || session.SessionKey != "sk-1" {
		t.Errorf("session = %+v", session)
	}

	want := map[string]string{
		"store_id":     "store",
		"store_passwd": "pw",
		"total_amount": "15.50",
		"currency":     "BDT",
		"tran_id":      "tx-1",
		"success_url":  "http://api/payment/success/tx-1",
		"fail_url":     "http://api/payment/failed/tx-1",
		"product_name": "Soup, Salad",
		"cus_email":    "a@b.com",
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("form[%s] = %q, want %q", k, got[k], v)
		}
	}
	if _, ok := got["ipn_url"]; ok {
		t.Error("ipn_url sent without being configured")
	}

	if _, err := gw.CreateSession(context.Background(), SessionRequest{
		TransactionID: "tx-2",
		IPNURL:        "http://api/payment/ipn",
	}); err != nil {
		t.Fatalf("CreateSession with IPN: %v", err)
	}
	if got["ipn_url"] != "http://api/payment/ipn" {
		t.Errorf("form[ipn_url] = %q", got["ipn_url"])
	}
}

func TestCreateSessionFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"gateway failed", http.StatusOK, `{"status":"FAILED","failedreason":"Store Credential Error"}`},
		{"missing url", http.StatusOK, `{"status":"SUCCESS"}`},
		{"malformed", http.StatusOK, `<html>oops</html>`},
		{"http error", http.StatusInternalServerError, `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			gw := NewSSLCommerz(Config{BaseURL: srv.URL})
			_, err := gw.CreateSession(context.Background(), SessionRequest{TransactionID: "tx"})
			if !errors.Is(err, domain.ErrUpstream) {
				t.Errorf("err = %v, want ErrUpstream", err)
			}
		})
	}
}

func TestCreateSessionUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	gw := NewSSLCommerz(Config{BaseURL: url})
	if _, err := gw.CreateSession(context.Background(), SessionRequest{}); !errors.Is(err, domain.ErrUpstream) {
		t.Errorf("err = %v, want ErrUpstream", err)
	}
}

func TestBaseURLSelection(t *testing.T) {
	if got := NewSSLCommerz(Config{}).baseURL; got != sandboxURL {
		t.Errorf("default base = %s, want sandbox", got)
	}
	if got := NewSSLCommerz(Config{Live: true}).baseURL; got != liveURL {
		t.Errorf("live base = %s, want live", got)
	}
}
