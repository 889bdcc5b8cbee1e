// Package identity implements the IdentityClient port against the identity
// microservice's HTTP API. The marketplace never stores credentials itself;
// user lookup and registration are delegated here.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"smallsquare/internal/core/domain/model/kernel"
	"smallsquare/internal/core/ports"
	"smallsquare/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

const defaultTimeout = 10 * time.Second

// Client talks to the identity microservice over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an identity client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// userResponse mirrors the identity service's user payload. The role comes
// back as a nested object carrying its name.
type userResponse struct {
	ID   string       `json:"id"`
	Role roleResponse `json:"role"`
}

type roleResponse struct {
	Name string `json:"name"`
}

// signUpRequest mirrors the identity service's registration payload.
type signUpRequest struct {
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// signUpResponse carries the access token issued for the new user.
type signUpResponse struct {
	AccessToken string `json:"accessToken"`
}

// GetUser fetches a user by id. A 404 from the identity service maps to an
// ObjectNotFoundError so callers can distinguish "no such user" from outages.
func (c *Client) GetUser(ctx context.Context, id kernel.UUID) (ports.IdentityUser, error) {
	endpoint, err := url.JoinPath(c.baseURL, "users", id.String())
	if err != nil {
		return ports.IdentityUser{}, fmt.Errorf("build identity user url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ports.IdentityUser{}, fmt.Errorf("build identity user request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.IdentityUser{}, fmt.Errorf("call identity service: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return ports.IdentityUser{}, errs.NewObjectNotFoundError("userId", id.String())
	default:
		return ports.IdentityUser{}, fmt.Errorf("identity service returned status %d", resp.StatusCode)
	}

	var payload userResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return ports.IdentityUser{}, fmt.Errorf("decode identity user response: %w", err)
	}

	userID, err := kernel.UUIDFromString(payload.ID)
	if err != nil {
		return ports.IdentityUser{}, fmt.Errorf("parse identity user id: %w", err)
	}

	return ports.IdentityUser{ID: userID, Role: payload.Role.Name}, nil
}

// SignUp registers a new user and returns the user id carried in the access
// token the identity service issues. The token's signature belongs to the
// identity service; only the id claim is read here.
func (c *Client) SignUp(ctx context.Context, request ports.SignUpRequest) (kernel.UUID, error) {
	endpoint, err := url.JoinPath(c.baseURL, "users", "sign-up")
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("build identity sign-up url: %w", err)
	}

	body, err := json.Marshal(signUpRequest{
		Name:     request.Name,
		LastName: request.LastName,
		Email:    request.Email,
		Phone:    request.Phone,
		Password: request.Password,
	})
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("encode identity sign-up request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("build identity sign-up request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("call identity service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return kernel.UUID{}, fmt.Errorf("identity service returned status %d", resp.StatusCode)
	}

	var payload signUpResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return kernel.UUID{}, fmt.Errorf("decode identity sign-up response: %w", err)
	}

	return userIDFromToken(payload.AccessToken)
}

// userIDFromToken extracts the "id" claim from the issued access token.
func userIDFromToken(accessToken string) (kernel.UUID, error) {
	token, _, err := jwt.NewParser().ParseUnverified(accessToken, jwt.MapClaims{})
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("parse access token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return kernel.UUID{}, fmt.Errorf("access token has no claims")
	}

	rawID, ok := claims["id"].(string)
	if !ok {
		return kernel.UUID{}, fmt.Errorf("access token has no id claim")
	}

	userID, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("parse id claim: %w", err)
	}

	return userID, nil
}
