package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	KeyBackendURL   = "backend.url"
	KeyHTTPTimeout  = "http.timeout"
	KeyUserName     = "user.name"
	KeyLogLevel     = "log.level"
	KeyDraftPath    = "draft.path"
	KeyArtifactsDir = "artifacts.dir"
	KeyStoreBackend = "artifacts.store"
	KeyPassPrefix   = "artifacts.pass_prefix"
	KeyRecorder     = "audio.recorder"
	KeyAudioDevice  = "audio.device"
	KeyCameraDevice = "camera.device"

	envPrefix  = "WB"
	configDir  = ".config/wb"
	configName = "config.toml"
)

const (
	DefaultBackendURL  = "http://127.0.0.1:8000"
	DefaultHTTPTimeout = 2 * time.Minute
	DefaultLogLevel    = "warn"
	DefaultUserName    = "default_user"
)

const (
	RecorderAuto    = "auto"
	RecorderFFmpeg  = "ffmpeg"
	RecorderARecord = "arecord"
)

const (
	ArtifactStoreFile = "file"
	ArtifactStorePass = "pass"
	ArtifactStoreAuto = "auto"
)

type Config struct {
	BackendURL   string
	HTTPTimeout  time.Duration
	UserName     string
	LogLevel     string
	DraftPath    string
	ArtifactsDir string
	StoreBackend string
	PassPrefix   string
	Recorder     string
	AudioDevice  string
	CameraDevice int
}

// Load reads .env from the working directory, then the config file under
// home, then WB_ environment variables, which win.
func Load(home string) (*viper.Viper, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	base := filepath.Join(home, configDir)

	v := viper.New()
	v.SetDefault(KeyBackendURL, DefaultBackendURL)
	v.SetDefault(KeyHTTPTimeout, DefaultHTTPTimeout)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyDraftPath, filepath.Join(base, "draft.toml"))
	v.SetDefault(KeyArtifactsDir, filepath.Join(base, "artifacts"))
	v.SetDefault(KeyStoreBackend, ArtifactStoreFile)
	v.SetDefault(KeyPassPrefix, "wb/artifacts")
	v.SetDefault(KeyRecorder, RecorderAuto)
	v.SetDefault(KeyCameraDevice, 0)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigFile(filepath.Join(base, configName))
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil && !isMissingConfig(err) {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	return v, nil
}

func Resolve(v *viper.Viper) (Config, error) {
	cfg := Config{
		BackendURL:   strings.TrimSpace(v.GetString(KeyBackendURL)),
		HTTPTimeout:  v.GetDuration(KeyHTTPTimeout),
		UserName:     strings.TrimSpace(v.GetString(KeyUserName)),
		LogLevel:     strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))),
		DraftPath:    v.GetString(KeyDraftPath),
		ArtifactsDir: v.GetString(KeyArtifactsDir),
		StoreBackend: strings.ToLower(strings.TrimSpace(v.GetString(KeyStoreBackend))),
		PassPrefix:   strings.TrimSpace(v.GetString(KeyPassPrefix)),
		Recorder:     strings.ToLower(strings.TrimSpace(v.GetString(KeyRecorder))),
		AudioDevice:  v.GetString(KeyAudioDevice),
		CameraDevice: v.GetInt(KeyCameraDevice),
	}

	if cfg.BackendURL == "" {
		cfg.BackendURL = DefaultBackendURL
	}
	if cfg.UserName == "" {
		cfg.UserName = DefaultUserName
	}
	if cfg.HTTPTimeout <= 0 {
		return Config{}, fmt.Errorf("%s must be positive, got %s", KeyHTTPTimeout, cfg.HTTPTimeout)
	}

	switch cfg.Recorder {
	case RecorderAuto, RecorderFFmpeg, RecorderARecord:
	default:
		return Config{}, fmt.Errorf("unknown %s %q (want auto, ffmpeg or arecord)", KeyRecorder, cfg.Recorder)
	}

	switch cfg.StoreBackend {
	case ArtifactStoreFile, ArtifactStorePass, ArtifactStoreAuto:
	default:
		return Config{}, fmt.Errorf("unknown %s %q (want file, pass or auto)", KeyStoreBackend, cfg.StoreBackend)
	}

	return cfg, nil
}

func isMissingConfig(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}
