//go:build integration_test || all_tests

package integration_test

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/2beens/gymtrack/internal/auth"
)

func (s *IntegrationTestSuite) TestPasswordLogin() {
	cases := map[string]struct {
		credentials        auth.Credentials
		expectedStatusCode int
	}{
		"good creds":     {credentials: auth.Credentials{Username: testUsername, Password: testPassword}, expectedStatusCode: http.StatusOK},
		"bad password":   {credentials: auth.Credentials{Username: testUsername, Password: "bad-password"}, expectedStatusCode: http.StatusUnauthorized},
		"unknown user":   {credentials: auth.Credentials{Username: "nobody", Password: testPassword}, expectedStatusCode: http.StatusUnauthorized},
		"empty password": {credentials: auth.Credentials{Username: testUsername}, expectedStatusCode: http.StatusBadRequest},
	}

	for name, tc := range cases {
		s.Run(name, func() {
			status, body := s.doRequest("POST", "/api/auth/password", "", tc.credentials)
			s.Equal(tc.expectedStatusCode, status, string(body))
		})
	}
}

func (s *IntegrationTestSuite) TestLoginMeLogout() {
	token := s.adminToken()

	status, body := s.doRequest("GET", "/api/auth/me", token, nil)
	s.Require().Equal(http.StatusOK, status)
	var session auth.Session
	s.Require().NoError(json.Unmarshal(body, &session))
	s.Equal(auth.AdminUserID, session.UserID)
	s.Equal(auth.RoleAdmin, session.Role)

	status, body = s.doRequest("POST", "/api/auth/logout", token, nil)
	s.Require().Equal(http.StatusOK, status)
	s.Equal("logged-out", string(body))

	// revoked from now on
	status, _ = s.doRequest("GET", "/api/auth/me", token, nil)
	s.Equal(http.StatusUnauthorized, status)
}

func (s *IntegrationTestSuite) TestTelegramLogin() {
	loginResp := s.login("/api/auth/telegram", signedLoginWidgetData(adminTelegramID, "Boss", "boss", time.Now()))
	s.Equal(auth.RoleAdmin, loginResp.Session.Role)

	userResp := s.login("/api/auth/telegram", signedLoginWidgetData(700001, "Ana", "ana", time.Now()))
	s.Equal(auth.RoleUser, userResp.Session.Role)
	s.Equal(int64(700001), userResp.Session.UserID)

	// the login registered the user
	status, body := s.doRequest("GET", "/api/v1/user/profile", userResp.Token, nil)
	s.Require().Equal(http.StatusOK, status)
	s.Contains(string(body), `"username":"ana"`)

	tampered := signedLoginWidgetData(700001, "Ana", "ana", time.Now())
	tampered.Username = "admin"
	status, _ = s.doRequest("POST", "/api/auth/telegram", "", tampered)
	s.Equal(http.StatusUnauthorized, status)

	expired := signedLoginWidgetData(700001, "Ana", "ana", time.Now().Add(-48*time.Hour))
	status, _ = s.doRequest("POST", "/api/auth/telegram", "", expired)
	s.Equal(http.StatusUnauthorized, status)
}
