// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// bearerPrefix is the only accepted Authorization scheme. The match is
// case-sensitive and requires exactly one space.
const bearerPrefix = "Bearer "

const (
	claimSubject   = "sub"
	claimName      = "name"
	claimIssuedAt  = "iat"
	claimExpiresAt = "exp"
	claimNotBefore = "nbf"
	claimIssuer    = "iss"
	claimAudience  = "aud"
	claimID        = "jti"
)

// reservedClaims may not be supplied through TokenPayload.Extra.
var reservedClaims = map[string]struct{}{
	claimSubject:   {},
	claimName:      {},
	claimIssuedAt:  {},
	claimExpiresAt: {},
	claimNotBefore: {},
	claimIssuer:    {},
	claimAudience:  {},
	claimID:        {},
}

// GenerateJWTToken creates a signed HMAC-SHA256 JWT for payload.
//
// The token carries:
//   - sub  the payload subject (user UUID)
//   - name the payload name
//   - iat  the current time
//   - exp  the current time plus tokenDuration
//   - iss  issuer, only when non-empty
//   - every key of payload.Extra
//
// Returns [ErrInvalidTokenParams] for an empty signKey or non-positive
// duration and [ErrInvalidTokenPayload] for an empty subject or an Extra key
// that collides with a registered claim.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(models.TokenPayload{Subject: id, Name: "alice"}, "", 24*time.Hour, "secret")
func GenerateJWTToken(payload models.TokenPayload, issuer string, tokenDuration time.Duration, signKey string) (string, error) {
	if signKey == "" || tokenDuration <= 0 {
		return "", ErrInvalidTokenParams
	}
	if payload.Subject == "" {
		return "", ErrInvalidTokenPayload
	}

	claims := make(jwt.MapClaims, len(payload.Extra)+5)
	for key, value := range payload.Extra {
		if _, reserved := reservedClaims[key]; reserved {
			return "", fmt.Errorf("%w: %q", ErrInvalidTokenPayload, key)
		}
		claims[key] = value
	}

	now := time.Now()
	claims[claimSubject] = payload.Subject
	claims[claimName] = payload.Name
	claims[claimIssuedAt] = jwt.NewNumericDate(now)
	claims[claimExpiresAt] = jwt.NewNumericDate(now.Add(tokenDuration))
	if issuer != "" {
		claims[claimIssuer] = issuer
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return tokenString, nil
}

// ValidateAndParseJWTToken verifies tokenString and extracts its payload.
//
// Validation includes:
//   - HS256 signature with tokenSignKey (other algorithms are rejected)
//   - presence and validity of the exp claim
//   - iss claim equal to tokenIssuer, when tokenIssuer is non-empty
//   - non-empty sub claim
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.TokenPayload, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if tokenIssuer != "" {
		options = append(options, jwt.WithIssuer(tokenIssuer))
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, options...)
	if err != nil {
		return models.TokenPayload{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return models.TokenPayload{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if subject == "" {
		return models.TokenPayload{}, ErrEmptySubject
	}

	payload := models.TokenPayload{Subject: subject}
	payload.Name, _ = claims[claimName].(string)

	if issuedAt, _ := claims.GetIssuedAt(); issuedAt != nil {
		payload.IssuedAt = issuedAt.Time
	}
	if expiresAt, _ := claims.GetExpirationTime(); expiresAt != nil {
		payload.ExpiresAt = expiresAt.Time
	}

	for key, value := range claims {
		if _, reserved := reservedClaims[key]; reserved {
			continue
		}
		if payload.Extra == nil {
			payload.Extra = make(map[string]any)
		}
		payload.Extra[key] = value
	}

	return payload, nil
}

// ParseBearerToken returns the token part of an "Authorization: Bearer <token>"
// header value. Any other scheme, casing or spacing is rejected with
// [ErrInvalidAuthorizationHeader].
func ParseBearerToken(authorizationHeader string) (string, error) {
	token, ok := strings.CutPrefix(authorizationHeader, bearerPrefix)
	if !ok || token == "" {
		return "", ErrInvalidAuthorizationHeader
	}
	return token, nil
}
