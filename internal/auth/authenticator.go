// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/oriole/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Authenticator encodes and decodes signed claim sets.
//
// All fields are fixed by [New]. The authenticator holds no per-call state,
// so a single instance is shared by every request without synchronisation.
type Authenticator struct {
	// algorithm is the configured JWS algorithm name (e.g. "HS512").
	algorithm string

	// issuer is written to "iss" and required on decode when non-empty.
	issuer string

	// audience is written to "aud" and required on decode.
	audience string

	// secret is the HMAC secret or PEM private key.
	secret string

	// defaultTTL is used when Encode is called with a zero ttl.
	defaultTTL time.Duration

	method    jwt.SigningMethod
	signKey   any
	verifyKey any
	keyErr    error

	now   func() time.Time
	newID func() string
}

// New builds an Authenticator from cfg. It never fails: a missing audience
// or secret, an unknown algorithm or bad key material is reported as
// [ErrMisconfiguration] by every later Encode or Decode call.
func New(cfg config.Auth) *Authenticator {
	a := &Authenticator{
		algorithm:  cfg.Algorithm,
		issuer:     cfg.Issuer,
		audience:   cfg.Audience,
		secret:     cfg.Secret,
		defaultTTL: cfg.DefaultTTL(),
		now:        time.Now,
		newID:      uuid.NewString,
	}

	a.method, a.signKey, a.verifyKey, a.keyErr = resolveKeys(cfg.Algorithm, cfg.Secret)

	return a
}

// Issuer returns the configured issuer.
func (a *Authenticator) Issuer() string {
	return a.issuer
}

// Audience returns the configured audience.
func (a *Authenticator) Audience() string {
	return a.audience
}

// DefaultTTL returns the lifetime applied when Encode gets a zero ttl.
func (a *Authenticator) DefaultTTL() time.Duration {
	return a.defaultTTL
}

// Encode fills the default reserved claims, signs the result with the
// configured algorithm and returns the compact token string.
//
// Reserved claims (iss, iat, exp, aud, jti) that are present and truthy in
// claims are kept as-is; the rest are filled from the configuration, the
// current time and a fresh UUID. A ttl of zero or less selects the default
// TTL; a fractional ttl is rounded up to the next second. claims itself is
// not modified.
//
// Returns [ErrMisconfiguration] before any signing when the authenticator is
// not ready.
func (a *Authenticator) Encode(claims Claims, ttl time.Duration) (string, error) {
	if err := a.checkReadiness(); err != nil {
		return "", err
	}

	token := jwt.NewWithClaims(a.method, jwt.MapClaims(a.autoFill(claims, ttl)))

	signed, err := token.SignedString(a.signKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errEncodingFailed, err)
	}

	return signed, nil
}

// Decode verifies the token signature (accepting only the configured
// algorithm), its issuer and audience, and its expiry, then returns its
// claims.
//
// Time is compared at second resolution: a token is expired once the
// current second is strictly after "exp".
//
// Returns:
//   - [ErrMisconfiguration] if the authenticator is not ready;
//   - [ErrExpiredToken] if the token is authentic but past its expiry;
//   - [ErrInvalidToken] for any other failure (garbled, forged, signed with
//     another key or algorithm, wrong issuer or audience).
func (a *Authenticator) Decode(tokenString string) (Claims, error) {
	if err := a.checkReadiness(); err != nil {
		return nil, err
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{a.method.Alg()}),
		jwt.WithAudience(a.audience),
		jwt.WithTimeFunc(func() time.Time { return a.now().Truncate(time.Second) }),
		// exp is whole seconds; one second of leeway turns "now < exp" into
		// "now <= exp" for the truncated clock.
		jwt.WithLeeway(time.Second),
	}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return a.verifyKey, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %w", ErrExpiredToken, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return Claims(claims), nil
}

// autoFill returns a copy of claims completed with the default reserved
// claims. exp is always computed from the current time, even when the caller
// supplied its own iat.
func (a *Authenticator) autoFill(claims Claims, ttl time.Duration) Claims {
	if ttl <= 0 {
		ttl = a.defaultTTL
	}

	issueTime := a.now().Unix()
	expirationTime := issueTime + ttlSeconds(ttl)

	defaults := Claims{
		ClaimIssuedAt:  issueTime,
		ClaimExpiresAt: expirationTime,
		ClaimAudience:  a.audience,
		ClaimID:        a.newID(),
	}
	if a.issuer != "" {
		defaults[ClaimIssuer] = a.issuer
	}

	filled := claims.clone()
	for k, v := range defaults {
		if truthy(filled[k]) {
			continue
		}
		filled[k] = v
	}

	return filled
}

// ttlSeconds rounds ttl up to whole seconds, so a positive sub-second ttl
// still yields exp > iat.
func ttlSeconds(ttl time.Duration) int64 {
	return int64((ttl + time.Second - 1) / time.Second)
}

// checkReadiness fails with ErrMisconfiguration while the authenticator
// cannot sign or verify.
func (a *Authenticator) checkReadiness() error {
	if a.audience == "" {
		return fmt.Errorf("%w: you must define an audience for the authenticator (JWT_AUDIENCE)", ErrMisconfiguration)
	}

	if a.secret == "" {
		return fmt.Errorf("%w: you must define a token secret for the authenticator (JWT_SECRET)", ErrMisconfiguration)
	}

	if a.keyErr != nil {
		return fmt.Errorf("%w: %w", ErrMisconfiguration, a.keyErr)
	}

	return nil
}
