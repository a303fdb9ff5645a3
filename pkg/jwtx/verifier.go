package jwtx

import (
	"crypto/ed25519"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier checks a raw bearer token's signature and returns its claims.
type Verifier interface {
	Verify(raw string) (Claims, error)
}

// NewHS256Verifier verifies tokens signed with a shared HMAC secret.
func NewHS256Verifier(secret []byte) Verifier {
	return &keyVerifier{
		key:     secret,
		methods: []string{"HS256"},
	}
}

// NewEd25519Verifier verifies tokens signed with the provider's Ed25519 key.
func NewEd25519Verifier(pub ed25519.PublicKey) Verifier {
	return &keyVerifier{
		key:     pub,
		methods: []string{"EdDSA"},
	}
}

type keyVerifier struct {
	key     any
	methods []string
}

func (v *keyVerifier) Verify(raw string) (Claims, error) {
	rc := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(raw, rc,
		func(t *jwt.Token) (any, error) { return v.key, nil },
		jwt.WithValidMethods(v.methods),
	)
	if err != nil || !token.Valid {
		return Claims{}, ErrTokenInvalid
	}
	if rc.Subject == "" {
		return Claims{}, ErrTokenInvalid
	}
	return fromRegistered(rc), nil
}

// LoadEd25519PublicKey reads a PKIX PEM-encoded Ed25519 public key from disk.
func LoadEd25519PublicKey(path string) (ed25519.PublicKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read public key: %w", err)
	}

	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("no PEM block in %s", path)
	}

	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}

	pub, ok := parsed.(ed25519.PublicKey)
	if !ok {
		return nil, fmt.Errorf("key in %s is not ed25519", path)
	}
	return pub, nil
}
