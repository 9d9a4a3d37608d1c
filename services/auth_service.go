package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"quizapp/config"
)

// Auth0Error carries the identity provider's failure detail back to the
// caller as a plain return value. There is no stored "last error" state;
// every call reports its own outcome.
type Auth0Error struct {
	StatusCode  int
	Description string
}

func (e *Auth0Error) Error() string {
	return fmt.Sprintf("auth0 request failed with status %d: %s", e.StatusCode, e.Description)
}

// AuthService proxies registration and login to Auth0. It never issues
// or validates tokens itself; it forwards the provider's responses.
type AuthService struct {
	settings config.Auth0Settings
	baseURL  string
	client   *http.Client
}

func NewAuthService(settings config.Auth0Settings) *AuthService {
	return &AuthService{
		settings: settings,
		baseURL:  "https://" + settings.Domain,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

type RegisterRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	Username   string `json:"username"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Name       string `json:"name"`
	Nickname   string `json:"nickname"`
}

type RegisterResponse struct {
	ID            string `json:"_id"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	IDToken     string `json:"id_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	Scope       string `json:"scope"`
}

// auth0ErrorBody covers the two error shapes Auth0 uses across its
// authentication endpoints.
type auth0ErrorBody struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Description      string `json:"description"`
}

func (s *AuthService) postJSON(path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding auth0 request: %w", err)
	}

	resp, err := s.client.Post(s.baseURL+path, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("calling auth0: %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading auth0 response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody auth0ErrorBody
		description := string(responseBody)
		if json.Unmarshal(responseBody, &errBody) == nil {
			switch {
			case errBody.ErrorDescription != "":
				description = errBody.ErrorDescription
			case errBody.Description != "":
				description = errBody.Description
			case errBody.Error != "":
				description = errBody.Error
			}
		}
		return &Auth0Error{StatusCode: resp.StatusCode, Description: description}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(responseBody, out); err != nil {
		return fmt.Errorf("decoding auth0 response: %w", err)
	}
	return nil
}

func (s *AuthService) Register(req *RegisterRequest) (*RegisterResponse, error) {
	body := map[string]string{
		"email":         req.Email,
		"password":      req.Password,
		"client_id":     s.settings.ClientID,
		"client_secret": s.settings.ClientSecret,
		"audience":      s.settings.Audience,
		"connection":    s.settings.Connection,
	}
	for key, value := range map[string]string{
		"username":    req.Username,
		"given_name":  req.GivenName,
		"family_name": req.FamilyName,
		"name":        req.Name,
		"nickname":    req.Nickname,
	} {
		if value != "" {
			body[key] = value
		}
	}

	var response RegisterResponse
	if err := s.postJSON("/dbconnections/signup", body, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (s *AuthService) Login(req *LoginRequest) (*TokenResponse, error) {
	body := map[string]string{
		"username":      req.Email,
		"password":      req.Password,
		"client_id":     s.settings.ClientID,
		"client_secret": s.settings.ClientSecret,
		"audience":      s.settings.Audience,
		"grant_type":    "password",
		"connection":    s.settings.Connection,
		"scope":         "openid profile email",
	}

	var response TokenResponse
	if err := s.postJSON("/oauth/token", body, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
