//go:build integration_test || all_tests

package integration_test

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/gymtrack/internal/auth"
	"github.com/2beens/gymtrack/internal/telegram"
)

// signedLoginWidgetData builds login widget data signed the way telegram does.
func signedLoginWidgetData(id int64, firstName, username string, authDate time.Time) telegram.LoginWidgetData {
	data := telegram.LoginWidgetData{
		ID:        id,
		FirstName: firstName,
		Username:  username,
		AuthDate:  authDate.Unix(),
	}
	dataCheckString := telegram.DataCheckString(map[string]string{
		"id":         strconv.FormatInt(id, 10),
		"first_name": firstName,
		"username":   username,
		"auth_date":  strconv.FormatInt(data.AuthDate, 10),
	})
	secret := sha256.Sum256([]byte(botToken))
	mac := hmac.New(sha256.New, secret[:])
	mac.Write([]byte(dataCheckString))
	data.Hash = hex.EncodeToString(mac.Sum(nil))
	return data
}

func (s *IntegrationTestSuite) doRequest(method, path, token string, body any) (int, []byte) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, serverEndpoint+path, reader)
	s.Require().NoError(err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.httpClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp.StatusCode, respBytes
}

func (s *IntegrationTestSuite) login(path string, body any) auth.LoginResponse {
	status, respBytes := s.doRequest("POST", path, "", body)
	s.Require().Equal(http.StatusOK, status, string(respBytes))

	var loginResp auth.LoginResponse
	s.Require().NoError(json.Unmarshal(respBytes, &loginResp))
	s.Require().NotEmpty(loginResp.Token)
	return loginResp
}

func (s *IntegrationTestSuite) adminToken() string {
	return s.login("/api/auth/password", auth.Credentials{
		Username: testUsername,
		Password: testPassword,
	}).Token
}

func (s *IntegrationTestSuite) telegramToken(id int64) string {
	return s.login("/api/auth/telegram", signedLoginWidgetData(id, "Lifter", "lifter_"+strconv.FormatInt(id, 10), time.Now())).Token
}
