package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"quizapp/config"
)

// UserService proxies user-management calls to the identity provider.
// User records live entirely in Auth0; the API only ever stores the
// opaque subject identifier.
type UserService struct {
	baseURL string
	client  *http.Client
}

func NewUserService(settings config.Auth0Settings) *UserService {
	return &UserService{
		baseURL: "https://" + settings.Domain,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type UserInfo struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Nickname      string `json:"nickname"`
	Picture       string `json:"picture"`
}

// GetCurrentUserInfo resolves the caller's access token to a profile via
// the provider's /userinfo endpoint.
func (s *UserService) GetCurrentUserInfo(accessToken string) (*UserInfo, error) {
	req, err := http.NewRequest(http.MethodGet, s.baseURL+"/userinfo", nil)
	if err != nil {
		return nil, fmt.Errorf("building userinfo request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling auth0: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading auth0 response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &Auth0Error{StatusCode: resp.StatusCode, Description: string(body)}
	}

	var info UserInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("decoding userinfo response: %w", err)
	}
	return &info, nil
}

// DeleteUser removes a user through the management API. The management
// token is supplied by the caller; this service holds no credentials.
func (s *UserService) DeleteUser(userID, managementToken string) error {
	endpoint := s.baseURL + "/api/v2/users/" + url.PathEscape(userID)
	req, err := http.NewRequest(http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("building delete user request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+managementToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("calling auth0: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return &Auth0Error{StatusCode: resp.StatusCode, Description: string(body)}
	}
	return nil
}
