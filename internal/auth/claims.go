package auth

import (
	"encoding/json"

	"github.com/golang-jwt/jwt/v5"
)

// Reserved claim names filled in by [Authenticator.Encode] when the caller
// does not supply a truthy value for them.
const (
	ClaimIssuer    = "iss"
	ClaimIssuedAt  = "iat"
	ClaimExpiresAt = "exp"
	ClaimAudience  = "aud"
	ClaimID        = "jti"
	ClaimSubject   = "sub"
	ClaimScopes    = "scopes"
)

// Claims is the payload of a bearer token: the reserved claims plus any
// caller-defined ones (e.g. "scopes").
//
// Decoded claims come straight from JSON, so numbers are float64 and arrays
// are []any. Use the accessors for typed reads.
type Claims map[string]any

// Subject returns the "sub" claim, or "" when absent or not a string.
func (c Claims) Subject() string {
	sub, _ := jwt.MapClaims(c).GetSubject()
	return sub
}

// Issuer returns the "iss" claim, or "" when absent or not a string.
func (c Claims) Issuer() string {
	iss, _ := jwt.MapClaims(c).GetIssuer()
	return iss
}

// Audience returns the "aud" claim as a list.
func (c Claims) Audience() []string {
	aud, _ := jwt.MapClaims(c).GetAudience()
	return aud
}

// IssuedAt returns the "iat" claim in epoch seconds, or 0.
func (c Claims) IssuedAt() int64 {
	return c.epochSeconds(ClaimIssuedAt)
}

// ExpiresAt returns the "exp" claim in epoch seconds, or 0.
func (c Claims) ExpiresAt() int64 {
	return c.epochSeconds(ClaimExpiresAt)
}

func (c Claims) epochSeconds(name string) int64 {
	switch v := c[name].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	case json.Number:
		n, _ := v.Int64()
		return n
	default:
		return 0
	}
}

// ID returns the "jti" claim, or "".
func (c Claims) ID() string {
	jti, _ := c[ClaimID].(string)
	return jti
}

// Scopes returns the string members of the "scopes" claim. Both []string
// (freshly built claims) and []any (decoded claims) are accepted.
func (c Claims) Scopes() []string {
	switch v := c[ClaimScopes].(type) {
	case []string:
		return v
	case []any:
		scopes := make([]string, 0, len(v))
		for _, s := range v {
			if str, ok := s.(string); ok {
				scopes = append(scopes, str)
			}
		}
		return scopes
	default:
		return nil
	}
}

// clone returns a shallow copy so Encode never mutates the caller's map.
func (c Claims) clone() Claims {
	out := make(Claims, len(c)+6)
	for k, v := range c {
		out[k] = v
	}
	return out
}

// truthy reports whether a caller-supplied claim value should be kept as-is
// instead of being replaced with the default.
func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case int:
		return val != 0
	case int64:
		return val != 0
	case float64:
		return val != 0
	case []any:
		return len(val) > 0
	case []string:
		return len(val) > 0
	case map[string]any:
		return len(val) > 0
	default:
		return true
	}
}
