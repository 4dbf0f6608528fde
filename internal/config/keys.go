package config

import (
	"fmt"
	"time"

	// jwt parses JSON Web Tokens. Supabase API keys are JWTs signed with the
	// project secret: the payload carries the project ref and a "role" claim
	// ("anon" or "service_role") that the backend uses for row-level policy.
	"github.com/golang-jwt/jwt/v5"
)

// KeyRole values found in Supabase API key claims.
const (
	KeyRoleAnon    = "anon"
	KeyRoleService = "service_role"
)

// keyClaims is the payload we expect inside a Supabase API key.
type keyClaims struct {
	jwt.RegisteredClaims        // Standard fields: issuer, issued-at, expiry
	Role                 string `json:"role"` // "anon" or "service_role"
	Ref                  string `json:"ref"`  // The Supabase project ref the key belongs to
}

// KeyInfo is what InspectKey extracts from a Supabase API key.
type KeyInfo struct {
	Role       string     // The role claim embedded in the key
	ProjectRef string     // The project the key was issued for
	ExpiresAt  *time.Time // nil when the key carries no expiry
}

// Expired reports whether the key's expiry claim is in the past.
func (k *KeyInfo) Expired() bool {
	return k.ExpiresAt != nil && k.ExpiresAt.Before(time.Now())
}

// InspectKey decodes a Supabase API key and returns its embedded claims.
//
// The signature is NOT verified: only the backend holds the project secret,
// so the backend remains the authority on whether a key is accepted. This is
// a startup sanity check, catching keys pasted into the wrong variable (anon
// key where the service key belongs) or keys that have already expired,
// before the first request fails confusingly at the backend.
func InspectKey(raw string) (*KeyInfo, error) {
	token, _, err := jwt.NewParser().ParseUnverified(raw, &keyClaims{})
	if err != nil {
		return nil, fmt.Errorf("not a valid Supabase key: %w", err)
	}

	claims, ok := token.Claims.(*keyClaims)
	if !ok {
		return nil, fmt.Errorf("unexpected claims type in Supabase key")
	}

	info := &KeyInfo{
		Role:       claims.Role,
		ProjectRef: claims.Ref,
	}
	if claims.ExpiresAt != nil {
		t := claims.ExpiresAt.Time
		info.ExpiresAt = &t
	}
	return info, nil
}
