package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kappatrack/kappatrack/backend/config"
)

// ExternalUser represents the authenticated user reported by the provider's
// userinfo endpoint.
type ExternalUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
	Email    string `json:"email"`
}

// OAuthService handles the OAuth2 authorization-code flow against the
// provider configured in the web config.
type OAuthService struct {
	config     *config.WebAppConfig
	httpClient *http.Client
}

// NewOAuthService creates a new OAuth service
func NewOAuthService(cfg *config.WebAppConfig) *OAuthService {
	return &OAuthService{
		config: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GenerateAuthURL generates the provider's authorization URL
func (o *OAuthService) GenerateAuthURL(state string) string {
	oauth := o.config.Config.Web.OAuth

	params := url.Values{}
	params.Set("client_id", oauth.ClientID)
	params.Set("redirect_uri", oauth.RedirectURL)
	params.Set("response_type", "code")
	params.Set("scope", strings.Join(oauth.Scopes, " "))
	params.Set("state", state)

	return oauth.AuthURL + "?" + params.Encode()
}

// ExchangeCodeForToken exchanges an authorization code for an access token
func (o *OAuthService) ExchangeCodeForToken(ctx context.Context, code string) (string, error) {
	oauth := o.config.Config.Web.OAuth

	data := url.Values{}
	data.Set("client_id", oauth.ClientID)
	data.Set("client_secret", oauth.ClientSecret)
	data.Set("grant_type", "authorization_code")
	data.Set("code", code)
	data.Set("redirect_uri", oauth.RedirectURL)

	req, err := http.NewRequestWithContext(ctx, "POST", oauth.TokenURL,
		strings.NewReader(data.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to exchange code for token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("oauth provider error: %s", string(body))
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int    `json:"expires_in"`
		Scope       string `json:"scope"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}

	return tokenResp.AccessToken, nil
}

// GetUserInfo gets the user's identity using an access token
func (o *OAuthService) GetUserInfo(ctx context.Context, accessToken string) (*ExternalUser, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", o.config.Config.Web.OAuth.UserInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create user info request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("oauth provider error: %s", string(body))
	}

	var user ExternalUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode user info: %w", err)
	}

	return &user, nil
}

// GenerateState generates a random state parameter for OAuth2
func (o *OAuthService) GenerateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate state: %w", err)
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// ValidateState validates the OAuth2 state parameter
func (o *OAuthService) ValidateState(c *fiber.Ctx, expectedState string) bool {
	receivedState := c.Query("state")
	return receivedState == expectedState
}
