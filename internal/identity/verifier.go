package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/artfolio/artfolio-api/internal/adapter"
	"github.com/artfolio/artfolio-api/internal/domain"
)

// ErrInvalidToken is returned when the verification service rejects a token
var ErrInvalidToken = errors.New("invalid identity token")

// Verifier validates identity tokens against the external verification
// service and resolves them to a wallet address
//
//go:generate mockgen -source=verifier.go -destination=../mocks/identity_verifier.go -package=mocks -mock_names=Verifier=MockVerifier
type Verifier interface {
	// Verify validates the token and returns the wallet address it proves
	// ownership of
	Verify(ctx context.Context, token string) (string, error)
}

// verificationPayload is the verification service's response shape
type verificationPayload struct {
	Address string `json:"address"`
}

// HTTPVerifier implements Verifier against the verification service's REST API
type HTTPVerifier struct {
	httpClient adapter.HTTPClient
	apiURL     string
	json       adapter.JSON
}

// NewVerifier creates a new identity verifier
func NewVerifier(httpClient adapter.HTTPClient, apiURL string, json adapter.JSON) Verifier {
	return &HTTPVerifier{
		httpClient: httpClient,
		apiURL:     apiURL,
		json:       json,
	}
}

// Verify validates the token and returns the wallet address it proves
// ownership of. Any upstream rejection maps to ErrInvalidToken; transport
// failures are surfaced as-is.
func (v *HTTPVerifier) Verify(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrInvalidToken
	}

	reqURL := fmt.Sprintf("%s/validate", v.apiURL)
	headers := map[string]string{
		"Authorization": "Bearer " + token,
	}

	respBody, err := v.httpClient.PostBytes(ctx, reqURL, "application/json", strings.NewReader("{}"), headers)
	if err != nil {
		if _, ok := domain.AsUpstreamError(err); ok {
			return "", ErrInvalidToken
		}
		return "", fmt.Errorf("failed to call verification service: %w", err)
	}

	var payload verificationPayload
	if err := v.json.Unmarshal(respBody, &payload); err != nil {
		return "", fmt.Errorf("failed to unmarshal verification response: %w", err)
	}

	if !domain.ValidAddress(payload.Address) {
		return "", ErrInvalidToken
	}

	return payload.Address, nil
}
