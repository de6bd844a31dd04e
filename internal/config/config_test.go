package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
	}
	for _, key := range []string{"SEED_PATIENTS", "SEED_DOCTORS", "SEED_NURSES", "SEED_APPOINTMENTS", "SEED_RECORDS"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func writeEnv(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_FromEnvFile(t *testing.T) {
	clearEnv(t)
	path := writeEnv(t, "MONGODB_URI=mongodb://localhost:27017/healthbridge\nLOG_LEVEL=debug\nSEED_RANDOM=42\nCONNECT_TIMEOUT=3s\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "mongodb://localhost:27017/healthbridge", cfg.Database.URI)
	assert.Equal(t, 3*time.Second, cfg.Database.ConnectTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Empty(t, cfg.Telemetry.RedisURL)
}

func TestLoad_EnvironmentWins(t *testing.T) {
	clearEnv(t)
	path := writeEnv(t, "MONGODB_URI=mongodb://file/db\n")
	t.Setenv("MONGODB_URI", "mongodb://env/db")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "mongodb://env/db", cfg.Database.URI)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Telemetry.RedisURL)
}

func TestLoad_MissingFileUsesEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("MONGODB_URI", "mongodb://env/db")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 10*time.Second, cfg.Database.ConnectTimeout)
	assert.Zero(t, cfg.Seed)
}

func TestLoad_MissingURI(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.ErrorIs(t, err, ErrMissingURI)
}

func TestLoadBatch_Defaults(t *testing.T) {
	clearEnv(t)

	b, err := LoadBatch()
	require.NoError(t, err)
	assert.Equal(t, Batch{Patients: 15, Doctors: 20, Nurses: 7, Appointments: 150, Records: 25}, b)
}

func TestLoadBatch_Override(t *testing.T) {
	clearEnv(t)
	t.Setenv("SEED_APPOINTMENTS", "40")

	b, err := LoadBatch()
	require.NoError(t, err)
	assert.Equal(t, 40, b.Appointments)
	assert.Equal(t, 15, b.Patients)
}

func TestLoadBatch_Invalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("SEED_NURSES", "several")

	_, err := LoadBatch()
	assert.Error(t, err)
}

func TestLoad_BatchSizesFromEnvFile(t *testing.T) {
	clearEnv(t)
	path := writeEnv(t, "MONGODB_URI=mongodb://localhost/db\nSEED_PATIENTS=4\nSEED_RECORDS=9\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Batch.Patients)
	assert.Equal(t, 9, cfg.Batch.Records)
	assert.Equal(t, 20, cfg.Batch.Doctors)
}

func TestLoad_BatchSizeEnvironmentWins(t *testing.T) {
	clearEnv(t)
	path := writeEnv(t, "MONGODB_URI=mongodb://localhost/db\nSEED_PATIENTS=4\n")
	t.Setenv("SEED_PATIENTS", "11")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 11, cfg.Batch.Patients)
}

func TestLoad_InvalidBatchSizeInEnvFile(t *testing.T) {
	clearEnv(t)
	path := writeEnv(t, "MONGODB_URI=mongodb://localhost/db\nSEED_NURSES=several\n")

	_, err := Load(path)
	assert.Error(t, err)
}
