package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateAndValidate(t *testing.T) {
	a := NewJWTAuthenticator("secret", "bistro", time.Hour)

	token, err := a.GenerateToken("a@b.com", "Alice")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := a.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Email != "a@b.com" || claims.Name != "Alice" {
		t.Errorf("claims = %+v", claims)
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != time.Hour {
		t.Errorf("token validity = %v, want 1h", got)
	}
}

func TestValidateRejects(t *testing.T) {
	a := NewJWTAuthenticator("secret", "bistro", time.Hour)
	good, _ := a.GenerateToken("a@b.com", "")

	expired := NewJWTAuthenticator("secret", "bistro", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expiredToken, _ := expired.GenerateToken("a@b.com", "")

	otherSecret, _ := NewJWTAuthenticator("other", "bistro", time.Hour).GenerateToken("a@b.com", "")
	otherIssuer, _ := NewJWTAuthenticator("secret", "someone-else", time.Hour).GenerateToken("a@b.com", "")

	noneToken, _ := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		Email: "a@b.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "bistro",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{"empty", "", ErrMissingToken},
		{"garbage", "not-a-jwt", ErrInvalidToken},
		{"expired", expiredToken, ErrInvalidToken},
		{"wrong secret", otherSecret, ErrInvalidToken},
		{"wrong issuer", otherIssuer, ErrInvalidToken},
		{"alg none", noneToken, ErrInvalidToken},
		{"tampered", good + "x", ErrInvalidToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.ValidateToken(tt.token)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}
