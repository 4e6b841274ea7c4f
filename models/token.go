// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenPair holds the access/refresh token pair issued by the backend.
//
// AccessToken is attached as a bearer token to every authenticated request.
// RefreshToken is exchanged for a fresh pair when the access token expires
// or a request is rejected with 401.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AccessExpiry extracts the "exp" claim from the access token without
// verifying the signature. Signature verification is the server's job; the
// client only needs the expiry to decide whether a proactive refresh is due.
// Returns the zero time if the token cannot be parsed or carries no expiry.
func (t TokenPair) AccessExpiry() time.Time {
	token, _, err := jwt.NewParser().ParseUnverified(t.AccessToken, jwt.MapClaims{})
	if err != nil {
		return time.Time{}
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

// Expired reports whether the access token carries an expiry in the past.
// Tokens without a parseable expiry are never considered expired.
func (t TokenPair) Expired() bool {
	exp := t.AccessExpiry()
	return !exp.IsZero() && time.Now().After(exp)
}

// Empty reports whether no tokens are stored.
func (t TokenPair) Empty() bool {
	return t.AccessToken == "" && t.RefreshToken == ""
}
