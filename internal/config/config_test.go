package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()

	v, err := Load(home)
	require.NoError(t, err)

	cfg, err := Resolve(v)
	require.NoError(t, err)
	assert.Equal(t, DefaultBackendURL, cfg.BackendURL)
	assert.Equal(t, DefaultHTTPTimeout, cfg.HTTPTimeout)
	assert.Equal(t, DefaultUserName, cfg.UserName)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, filepath.Join(home, ".config", "wb", "draft.toml"), cfg.DraftPath)
	assert.Equal(t, filepath.Join(home, ".config", "wb", "artifacts"), cfg.ArtifactsDir)
	assert.Equal(t, RecorderAuto, cfg.Recorder)
	assert.Equal(t, ArtifactStoreFile, cfg.StoreBackend)
	assert.Equal(t, "wb/artifacts", cfg.PassPrefix)
	assert.Zero(t, cfg.CameraDevice)
}

func TestLoadConfigFileAndEnvOverride(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, ".config", "wb")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[backend]
url = "http://file.example:9000"

[user]
name = "alice"

[http]
timeout = "15s"

[audio]
recorder = "arecord"
device = "hw:1"
`), 0o600))
	t.Setenv("WB_BACKEND_URL", "http://env.example:8000")

	v, err := Load(home)
	require.NoError(t, err)

	cfg, err := Resolve(v)
	require.NoError(t, err)
	assert.Equal(t, "http://env.example:8000", cfg.BackendURL)
	assert.Equal(t, "alice", cfg.UserName)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, RecorderARecord, cfg.Recorder)
	assert.Equal(t, "hw:1", cfg.AudioDevice)
}

func TestResolveRejectsUnknownRecorder(t *testing.T) {
	t.Setenv("WB_AUDIO_RECORDER", "sox")

	v, err := Load(t.TempDir())
	require.NoError(t, err)

	_, err = Resolve(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sox")
}

func TestResolveRejectsUnknownArtifactStore(t *testing.T) {
	t.Setenv("WB_ARTIFACTS_STORE", "s3")

	v, err := Load(t.TempDir())
	require.NoError(t, err)

	_, err = Resolve(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "s3")
}

func TestResolveRejectsNonPositiveTimeout(t *testing.T) {
	for _, raw := range []string{"0s", "-5s"} {
		t.Run(raw, func(t *testing.T) {
			t.Setenv("WB_HTTP_TIMEOUT", raw)

			v, err := Load(t.TempDir())
			require.NoError(t, err)

			_, err = Resolve(v)
			require.Error(t, err)
			assert.Contains(t, err.Error(), KeyHTTPTimeout)
		})
	}
}

func TestLoadRejectsBrokenConfigFile(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, ".config", "wb")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[backend\n"), 0o600))

	_, err := Load(home)
	assert.Error(t, err)
}
