package config

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_ANON_KEY", "")
	t.Setenv("SUPABASE_SERVICE_ROLE_KEY", "")

	cfg := Load()

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.False(t, cfg.HasServiceCredentials())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9100")
	t.Setenv("ENV", "production")
	t.Setenv("SUPABASE_URL", "https://abcd1234.supabase.co")
	t.Setenv("SUPABASE_ANON_KEY", "anon-key")
	t.Setenv("SUPABASE_SERVICE_ROLE_KEY", "service-key")

	cfg := Load()

	assert.Equal(t, "9100", cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "https://abcd1234.supabase.co", cfg.SupabaseURL)
	assert.True(t, cfg.HasServiceCredentials())
}

func TestHasServiceCredentialsRequiresBoth(t *testing.T) {
	cfg := &Config{SupabaseURL: "https://x.supabase.co"}
	assert.False(t, cfg.HasServiceCredentials())

	cfg = &Config{SupabaseServiceKey: "key"}
	assert.False(t, cfg.HasServiceCredentials())

	cfg = &Config{SupabaseURL: "https://x.supabase.co", SupabaseServiceKey: "key"}
	assert.True(t, cfg.HasServiceCredentials())
}

// signTestKey builds a Supabase-shaped API key: an HS256 JWT carrying role
// and ref claims. The signing secret is irrelevant because InspectKey never
// verifies signatures.
func signTestKey(t *testing.T, role, ref string, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss":  "supabase",
		"role": role,
		"ref":  ref,
		"exp":  exp.Unix(),
	})
	raw, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return raw
}

func TestInspectKey(t *testing.T) {
	raw := signTestKey(t, KeyRoleService, "abcd1234", time.Now().Add(24*time.Hour))

	info, err := InspectKey(raw)
	require.NoError(t, err)

	assert.Equal(t, KeyRoleService, info.Role)
	assert.Equal(t, "abcd1234", info.ProjectRef)
	assert.False(t, info.Expired())
}

func TestInspectKeyExpired(t *testing.T) {
	raw := signTestKey(t, KeyRoleAnon, "abcd1234", time.Now().Add(-time.Hour))

	info, err := InspectKey(raw)
	require.NoError(t, err)

	assert.Equal(t, KeyRoleAnon, info.Role)
	assert.True(t, info.Expired())
}

func TestInspectKeyMalformed(t *testing.T) {
	_, err := InspectKey("not-a-jwt")
	assert.Error(t, err)
}
