package acceptance

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/dayvsonmarques/web-cardapio-sub001/internal/dto"
)

func (s *Suite) TestRegister_Success() {
	reqBody := dto.RegisterRequest{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123",
	}
	body, _ := json.Marshal(reqBody)

	resp, err := http.Post(
		s.BaseURL+"/api/v1/auth/register",
		"application/json",
		bytes.NewBuffer(body),
	)
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusCreated, resp.StatusCode)

	var sessionResp dto.SessionResponse
	err = json.NewDecoder(resp.Body).Decode(&sessionResp)
	s.Require().NoError(err)

	s.NotEmpty(sessionResp.Token)
	s.Equal("Bearer", sessionResp.TokenType)
	s.NotZero(sessionResp.ExpiresIn)
	s.Equal("test@example.com", sessionResp.User.Email)
	s.NotEmpty(sessionResp.User.ID)
	s.False(sessionResp.User.IsAdmin)

	var sessionCookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "cardapio_session" {
			sessionCookie = c
		}
	}
	s.Require().NotNil(sessionCookie, "Should have session cookie")
	s.Equal(sessionResp.Token, sessionCookie.Value)
	s.True(sessionCookie.HttpOnly)
	s.Equal("/", sessionCookie.Path)
}

func (s *Suite) TestRegister_DuplicateEmail() {
	reqBody := dto.RegisterRequest{
		Name:     "First",
		Email:    "duplicate@example.com",
		Password: "Password123",
	}
	body, _ := json.Marshal(reqBody)

	resp1, _ := http.Post(
		s.BaseURL+"/api/v1/auth/register",
		"application/json",
		bytes.NewBuffer(body),
	)
	resp1.Body.Close()

	body, _ = json.Marshal(reqBody)
	resp2, err := http.Post(
		s.BaseURL+"/api/v1/auth/register",
		"application/json",
		bytes.NewBuffer(body),
	)
	s.Require().NoError(err)
	defer resp2.Body.Close()

	s.Equal(http.StatusConflict, resp2.StatusCode)

	var errResp dto.ErrorResponse
	json.NewDecoder(resp2.Body).Decode(&errResp)
	s.Equal("Conflict", errResp.Error)
}

func (s *Suite) TestRegister_InvalidEmail() {
	reqBody := dto.RegisterRequest{
		Name:     "Test",
		Email:    "invalid-email",
		Password: "Password123",
	}
	body, _ := json.Marshal(reqBody)

	resp, err := http.Post(
		s.BaseURL+"/api/v1/auth/register",
		"application/json",
		bytes.NewBuffer(body),
	)
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *Suite) TestLogin_Success() {
	s.registerUser("Login User", "login@example.com", "Password123")

	loginReq := dto.LoginRequest{
		Email:    "login@example.com",
		Password: "Password123",
	}
	body, _ := json.Marshal(loginReq)

	resp, err := http.Post(
		s.BaseURL+"/api/v1/auth/login",
		"application/json",
		bytes.NewBuffer(body),
	)
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)

	var sessionResp dto.SessionResponse
	err = json.NewDecoder(resp.Body).Decode(&sessionResp)
	s.Require().NoError(err)

	s.NotEmpty(sessionResp.Token)
	s.Equal("login@example.com", sessionResp.User.Email)
}

func (s *Suite) TestLogin_WrongPassword() {
	s.registerUser("Wrong Pass", "wrongpass@example.com", "CorrectPassword123")

	loginReq := dto.LoginRequest{
		Email:    "wrongpass@example.com",
		Password: "WrongPassword123",
	}
	body, _ := json.Marshal(loginReq)

	resp, err := http.Post(
		s.BaseURL+"/api/v1/auth/login",
		"application/json",
		bytes.NewBuffer(body),
	)
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *Suite) TestGetMe_Success() {
	session := s.registerUser("Get Me", "getme@example.com", "Password123")

	resp := s.doJSON(http.MethodGet, "/api/v1/auth/me", session.Token, nil)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)

	var user dto.UserResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&user))
	s.Equal("getme@example.com", user.Email)
	s.Equal("Get Me", user.Name)
}

func (s *Suite) TestGetMe_NoToken() {
	resp := s.doJSON(http.MethodGet, "/api/v1/auth/me", "", nil)
	defer resp.Body.Close()

	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *Suite) TestLogout_RevokesSession() {
	session := s.registerUser("Logout User", "logout@example.com", "Password123")

	resp := s.doJSON(http.MethodPost, "/api/v1/auth/logout", session.Token, nil)
	resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	// The token is structurally valid but blacklisted now
	resp = s.doJSON(http.MethodGet, "/api/v1/auth/me", session.Token, nil)
	defer resp.Body.Close()
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *Suite) TestSessionCookie_Authenticates() {
	session := s.registerUser("Cookie User", "cookie@example.com", "Password123")

	req, err := http.NewRequest(http.MethodGet, s.BaseURL+"/api/v1/auth/me", nil)
	s.Require().NoError(err)
	req.AddCookie(&http.Cookie{Name: "cardapio_session", Value: session.Token})

	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *Suite) TestAdminRoute_ForbiddenForCustomer() {
	session := s.registerUser("Customer", "customer@example.com", "Password123")

	resp := s.doJSON(http.MethodGet, "/api/v1/admin/orders", session.Token, nil)
	defer resp.Body.Close()

	s.Equal(http.StatusForbidden, resp.StatusCode)
}
