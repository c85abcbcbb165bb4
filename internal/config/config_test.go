package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresDatabaseAndSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "secret")
	_, err := Load()
	assert.ErrorContains(t, err, "DATABASE_URL")

	t.Setenv("DATABASE_URL", "postgres://localhost/takmir")
	t.Setenv("JWT_SECRET", "")
	_, err = Load()
	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/takmir")
	t.Setenv("JWT_SECRET", "secret")
	for _, k := range []string{"SERVER_ADDRESS", "MIGRATIONS_PATH", "TIMEZONE", "REFRESH_INTERVAL", "APP_ENV", "UPLOAD_DIR", "USE_SPACES"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "./migrations", cfg.MigrationsPath)
	assert.Equal(t, "Asia/Jakarta", cfg.Timezone)
	assert.Equal(t, time.Hour, cfg.RefreshInterval)
	assert.Equal(t, "./uploads", cfg.UploadDir)
	assert.False(t, cfg.IsDevelopment())
	assert.False(t, cfg.UseSpaces)
}

func TestLoad_RefreshInterval(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/takmir")
	t.Setenv("JWT_SECRET", "secret")

	t.Setenv("REFRESH_INTERVAL", "15m")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, cfg.RefreshInterval)

	t.Setenv("REFRESH_INTERVAL", "90")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, cfg.RefreshInterval)

	t.Setenv("REFRESH_INTERVAL", "soon")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoad_SpacesNeedsBucket(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/takmir")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("USE_SPACES", "true")
	t.Setenv("SPACES_ENDPOINT", "sgp1.digitaloceanspaces.com")
	t.Setenv("SPACES_BUCKET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadOptional_NoDatabase(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "")
	cfg, err := LoadOptional()
	require.NoError(t, err)
	assert.Empty(t, cfg.DatabaseURL)
}

func TestLocation(t *testing.T) {
	cfg := &Config{Timezone: "Asia/Jakarta"}
	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Jakarta", loc.String())

	cfg.Timezone = "Mars/Olympus"
	_, err = cfg.Location()
	assert.Error(t, err)
}

func TestLoadDotEnv_DoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(file, []byte("TAKMIR_TEST_A=from-file\nTAKMIR_TEST_B=from-file\n"), 0o600))

	t.Setenv("TAKMIR_TEST_A", "from-env")
	t.Setenv("TAKMIR_TEST_B", "")
	os.Unsetenv("TAKMIR_TEST_B")

	LoadDotEnv(file, filepath.Join(dir, "missing.env"))

	assert.Equal(t, "from-env", os.Getenv("TAKMIR_TEST_A"))
	assert.Equal(t, "from-file", os.Getenv("TAKMIR_TEST_B"))
}
