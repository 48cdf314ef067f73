package auth

import (
	"crypto/ed25519"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// resolveKeys maps an algorithm name to its signing method and the keys used
// to sign and verify with it. HMAC algorithms use the secret bytes directly;
// asymmetric ones read the secret as a PEM encoded private key and verify
// with its public half.
func resolveKeys(algorithm, secret string) (jwt.SigningMethod, any, any, error) {
	method := jwt.GetSigningMethod(algorithm)

	switch method.(type) {
	case *jwt.SigningMethodHMAC:
		key := []byte(secret)
		return method, key, key, nil

	case *jwt.SigningMethodRSA, *jwt.SigningMethodRSAPSS:
		priv, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(secret))
		if err != nil {
			return nil, nil, nil, fmt.Errorf("error parsing RSA private key for %s: %w", algorithm, err)
		}
		return method, priv, &priv.PublicKey, nil

	case *jwt.SigningMethodECDSA:
		priv, err := jwt.ParseECPrivateKeyFromPEM([]byte(secret))
		if err != nil {
			return nil, nil, nil, fmt.Errorf("error parsing EC private key for %s: %w", algorithm, err)
		}
		return method, priv, &priv.PublicKey, nil

	case *jwt.SigningMethodEd25519:
		priv, err := jwt.ParseEdPrivateKeyFromPEM([]byte(secret))
		if err != nil {
			return nil, nil, nil, fmt.Errorf("error parsing Ed25519 private key for %s: %w", algorithm, err)
		}
		edPriv, ok := priv.(ed25519.PrivateKey)
		if !ok {
			return nil, nil, nil, fmt.Errorf("unexpected Ed25519 key type %T", priv)
		}
		return method, edPriv, edPriv.Public(), nil

	default:
		return nil, nil, nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}
}
