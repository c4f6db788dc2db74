// Package drive implements the Google Drive video path: a service-account
// token issuer, resumable upload sessions, device-tagged listing and
// ownership-checked deletion.
package drive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/weddingspa/service/internal/upstream"
)

const (
	// FileScope grants access to files created by the service account.
	FileScope = "https://www.googleapis.com/auth/drive.file"

	assertionTTL = time.Hour
	jwtBearer    = "urn:ietf:params:oauth:grant-type:jwt-bearer"
	authProvider = "google-oauth"
)

// ErrNoCredentials is returned when the service-account JSON is not configured.
var ErrNoCredentials = errors.New("drive: service account credentials are not configured")

// TokenSource yields bearer tokens for the Drive API.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

type serviceAccount struct {
	ClientEmail  string `json:"client_email"`
	PrivateKey   string `json:"private_key"`
	PrivateKeyID string `json:"private_key_id"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// TokenIssuer signs a one-hour assertion with the service account key and
// exchanges it for an access token. Every call performs a fresh exchange.
type TokenIssuer struct {
	credentials string
	tokenURL    string
	http        *http.Client
	now         func() time.Time
}

// NewTokenIssuer creates a TokenIssuer. A nil httpClient falls back to upstream.NewHTTPClient.
func NewTokenIssuer(credentialsJSON, tokenURL string, httpClient *http.Client) *TokenIssuer {
	if httpClient == nil {
		httpClient = upstream.NewHTTPClient()
	}
	return &TokenIssuer{
		credentials: credentialsJSON,
		tokenURL:    tokenURL,
		http:        httpClient,
		now:         time.Now,
	}
}

// Token returns a bearer access token for FileScope.
func (i *TokenIssuer) Token(ctx context.Context) (string, error) {
	assertion, err := i.assertion()
	if err != nil {
		return "", err
	}

	form := url.Values{
		"grant_type": {jwtBearer},
		"assertion":  {assertion},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, i.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("drive: build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := i.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("drive: token exchange: %w", err)
	}
	defer resp.Body.Close()

	if err := upstream.Check(authProvider, resp); err != nil {
		return "", fmt.Errorf("drive: token exchange: %w", err)
	}
	var tr tokenResponse
	if err := upstream.DecodeJSON(authProvider, resp, &tr); err != nil {
		return "", err
	}
	if tr.AccessToken == "" {
		return "", errors.New("drive: token exchange returned no access token")
	}
	return tr.AccessToken, nil
}

// assertion builds the signed RS256 JWT sent to the token endpoint.
func (i *TokenIssuer) assertion() (string, error) {
	if i.credentials == "" {
		return "", ErrNoCredentials
	}
	var sa serviceAccount
	if err := json.Unmarshal([]byte(i.credentials), &sa); err != nil {
		return "", fmt.Errorf("drive: parse credentials: %w", err)
	}
	if sa.ClientEmail == "" || sa.PrivateKey == "" {
		return "", fmt.Errorf("drive: credentials lack client_email or private_key")
	}

	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(sa.PrivateKey))
	if err != nil {
		return "", fmt.Errorf("drive: parse private key: %w", err)
	}

	now := i.now()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{
		"iss":   sa.ClientEmail,
		"scope": FileScope,
		"aud":   i.tokenURL,
		"iat":   now.Unix(),
		"exp":   now.Add(assertionTTL).Unix(),
	})
	if sa.PrivateKeyID != "" {
		token.Header["kid"] = sa.PrivateKeyID
	}

	signed, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("drive: sign assertion: %w", err)
	}
	return signed, nil
}
