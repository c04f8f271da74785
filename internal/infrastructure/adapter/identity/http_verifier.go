package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/cardpay-admin/internal/domain/error"
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/identity"
)

// VerifyPath is where the verification endpoint lives under the base URL
const VerifyPath = "/api/verify"

// TokenHeader carries the access token on verification requests
const TokenHeader = "x-access-token"

// HTTPVerifier asks a remote endpoint whether a token is still valid
type HTTPVerifier struct {
	baseURL string
	client  *http.Client
}

var _ identity.Verifier = (*HTTPVerifier)(nil)

// NewHTTPVerifier creates a verifier for baseURL. A zero timeout leaves
// the request bounded only by ctx.
func NewHTTPVerifier(baseURL string, timeout time.Duration) *HTTPVerifier {
	return &HTTPVerifier{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// Verify calls GET {baseURL}/api/verify with the token header
func (v *HTTPVerifier) Verify(ctx context.Context, token string) (*identity.Verification, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.baseURL+VerifyPath, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrNetworkFailure, err)
	}
	req.Header.Set(TokenHeader, token)
	req.Header.Set("Accept", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrNetworkFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: verification returned status %d", errs.ErrSessionInvalid, resp.StatusCode)
	}

	var verification identity.Verification
	if err := json.NewDecoder(resp.Body).Decode(&verification); err != nil {
		return nil, fmt.Errorf("%w: undecodable verification response: %v", errs.ErrSessionInvalid, err)
	}
	return &verification, nil
}
