package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "5002", cfg.Server.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "student-management", cfg.Mongo.Database)
	assert.Equal(t, "student123", cfg.Auth.StudentDefaultPassword)
	assert.Equal(t, 5*time.Second, cfg.MongoConnectTimeout())
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("server:\n  port: \"6000\"\nmongo:\n  database: records-test\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	t.Setenv("PORT", "7100")
	t.Setenv("MONGO_URI", "mongodb://db.internal:27017")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	// env wins over file, file wins over defaults
	assert.Equal(t, "7100", cfg.Server.Port)
	assert.Equal(t, "mongodb://db.internal:27017", cfg.Mongo.URI)
	assert.Equal(t, "records-test", cfg.Mongo.Database)
}

func TestLoadConfig_RejectsBadTimeout(t *testing.T) {
	t.Setenv("MONGO_CONNECT_TIMEOUT", "soon")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
