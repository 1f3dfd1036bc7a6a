package telegram

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	initdata "github.com/telegram-mini-apps/init-data-golang"
)

const DefaultMaxAge = 24 * time.Hour

var (
	ErrInvalidHash  = errors.New("telegram: invalid hash")
	ErrExpired      = errors.New("telegram: auth data expired")
	ErrMissingField = errors.New("telegram: missing field")
)

// User is the verified telegram identity.
type User struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	Username  string    `json:"username,omitempty"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	AuthDate  time.Time `json:"-"`
}

// LoginWidgetData is the payload the telegram login widget hands to the browser.
type LoginWidgetData struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	PhotoURL  string `json:"photo_url"`
	AuthDate  int64  `json:"auth_date"`
	Hash      string `json:"hash"`
}

func (d LoginWidgetData) fields() map[string]string {
	fields := map[string]string{
		"first_name": d.FirstName,
		"last_name":  d.LastName,
		"username":   d.Username,
		"photo_url":  d.PhotoURL,
	}
	if d.ID != 0 {
		fields["id"] = strconv.FormatInt(d.ID, 10)
	}
	if d.AuthDate != 0 {
		fields["auth_date"] = strconv.FormatInt(d.AuthDate, 10)
	}
	return fields
}

// VerifyLoginWidget checks the login widget signature, keyed by SHA256(botToken).
func VerifyLoginWidget(data LoginWidgetData, botToken string, now time.Time, maxAge time.Duration) (*User, error) {
	if data.ID == 0 {
		return nil, fmt.Errorf("%w: id", ErrMissingField)
	}
	if data.Hash == "" {
		return nil, fmt.Errorf("%w: hash", ErrMissingField)
	}
	if data.AuthDate == 0 {
		return nil, fmt.Errorf("%w: auth_date", ErrMissingField)
	}

	secret := sha256.Sum256([]byte(botToken))
	if !checkHash(secret[:], DataCheckString(data.fields()), data.Hash) {
		return nil, ErrInvalidHash
	}

	authDate := time.Unix(data.AuthDate, 0)
	if err := checkAge(authDate, now, maxAge); err != nil {
		return nil, err
	}

	return &User{
		ID:        data.ID,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Username:  data.Username,
		PhotoURL:  data.PhotoURL,
		AuthDate:  authDate,
	}, nil
}

// VerifyInitData checks the raw initData query string of a Mini App launch.
func VerifyInitData(initData string, botToken string, now time.Time, maxAge time.Duration) (*User, error) {
	// zero expIn leaves the age check to checkAge, against the injected now
	if err := initdata.Validate(initData, botToken, 0); err != nil {
		switch {
		case errors.Is(err, initdata.ErrSignMissing):
			return nil, fmt.Errorf("%w: hash", ErrMissingField)
		case errors.Is(err, initdata.ErrSignInvalid):
			return nil, ErrInvalidHash
		default:
			return nil, fmt.Errorf("validate init data: %w", err)
		}
	}

	data, err := initdata.Parse(initData)
	if err != nil {
		return nil, fmt.Errorf("parse init data: %w", err)
	}
	if data.User.ID == 0 {
		return nil, fmt.Errorf("%w: user", ErrMissingField)
	}
	if data.AuthDateRaw == 0 {
		return nil, fmt.Errorf("%w: auth_date", ErrMissingField)
	}

	authDate := data.AuthDate()
	if err := checkAge(authDate, now, maxAge); err != nil {
		return nil, err
	}

	return &User{
		ID:        data.User.ID,
		FirstName: data.User.FirstName,
		LastName:  data.User.LastName,
		Username:  data.User.Username,
		PhotoURL:  data.User.PhotoURL,
		AuthDate:  authDate,
	}, nil
}

// DataCheckString joins the sorted non-empty key=value pairs, without the hash, by newlines.
func DataCheckString(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k, v := range fields {
		if k == "hash" || v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, len(keys))
	for i, k := range keys {
		lines[i] = k + "=" + fields[k]
	}
	return strings.Join(lines, "\n")
}

func checkHash(secret []byte, dataCheckString, hash string) bool {
	expected := hmacSHA256(secret, []byte(dataCheckString))
	got, err := hex.DecodeString(hash)
	if err != nil {
		return false
	}
	return hmac.Equal(expected, got)
}

func checkAge(authDate, now time.Time, maxAge time.Duration) error {
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	if now.Sub(authDate) > maxAge {
		return ErrExpired
	}
	return nil
}

func hmacSHA256(key, data []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(data)
	return mac.Sum(nil)
}
