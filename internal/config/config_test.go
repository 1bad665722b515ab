package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.HTTP.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 14, cfg.Returns.ReturnPeriodDays)
	assert.True(t, cfg.Returns.SendNotifications)
	assert.False(t, cfg.Returns.RequirePhotos)
	assert.Equal(t, []float64{7, 7.4, 8, 9}, cfg.Returns.CompletedOrderStatuses)
	assert.Equal(t, "return-notifications", cfg.Kafka.NotificationTopic)
	assert.Equal(t, 5, cfg.Outbox.MaxAttempts)
	assert.Equal(t, 5*time.Minute, cfg.Outbox.Lease)
	assert.Equal(t, "local", cfg.Storage.Driver)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	yaml := []byte(`
returns:
  return_period_days: 30
  require_photos: true
database:
  host: db.internal
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600))

	t.Setenv("RETURNS_HTTP_PORT", "8081")
	t.Setenv("POSTGRES_USER", "returns_user")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Returns.ReturnPeriodDays)
	assert.True(t, cfg.Returns.RequirePhotos)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "8081", cfg.HTTP.Port)
	assert.Equal(t, "returns_user", cfg.Database.User)
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
