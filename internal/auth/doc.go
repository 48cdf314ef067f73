// Package auth issues and verifies the self-contained bearer tokens that
// guard secured routes.
//
// An [Authenticator] is built once from [config.Auth] and is safe for
// concurrent use: its signing configuration never changes after New.
// Tokens are JWTs carrying iss, iat, exp, aud, jti and sub plus any
// caller-defined claims. Nothing about issued tokens is persisted.
package auth
