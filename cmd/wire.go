package cmd

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/bnema/wellbeing-cli/internal/adapters/analysis/httpapi"
	blobchain "github.com/bnema/wellbeing-cli/internal/adapters/blob/chain"
	blobstore "github.com/bnema/wellbeing-cli/internal/adapters/blob/file"
	passstore "github.com/bnema/wellbeing-cli/internal/adapters/blob/pass"
	"github.com/bnema/wellbeing-cli/internal/adapters/device/chain"
	"github.com/bnema/wellbeing-cli/internal/adapters/device/opencv"
	"github.com/bnema/wellbeing-cli/internal/adapters/device/recorder"
	"github.com/bnema/wellbeing-cli/internal/adapters/render/report"
	tomlrepo "github.com/bnema/wellbeing-cli/internal/adapters/repo/toml"
	"github.com/bnema/wellbeing-cli/internal/application"
	"github.com/bnema/wellbeing-cli/internal/config"
	"github.com/bnema/wellbeing-cli/internal/domain"
	"github.com/bnema/wellbeing-cli/internal/ports"
	"github.com/rs/zerolog"
)

type app struct {
	cfg             config.Config
	drafts          *application.DraftService
	service         ports.AnalysisService
	microphone      ports.Microphone
	camera          ports.Camera
	clock           ports.Clock
	log             zerolog.Logger
	resultRenderer  func(domain.AnalysisResult, report.RenderOptions) (string, error)
	historyRenderer func([]domain.HistoryEntry, report.RenderOptions) (string, error)
	location        *time.Location
}

func wireApp() (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	v, err := config.Load(homeDir)
	if err != nil {
		return nil, fmt.Errorf("wire config: %w", err)
	}
	cfg, err := config.Resolve(v)
	if err != nil {
		return nil, fmt.Errorf("wire config: %w", err)
	}

	repo, err := tomlrepo.NewDraftRepository(v)
	if err != nil {
		return nil, fmt.Errorf("wire draft repository: %w", err)
	}

	artifacts, err := newArtifactStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire artifact store: %w", err)
	}

	microphone, err := newMicrophone(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire microphone: %w", err)
	}

	return &app{
		cfg:    cfg,
		drafts: application.NewDraftService(repo, artifacts),
		service: httpapi.Client{
			BaseURL:        cfg.BackendURL,
			HTTPClient:     &http.Client{},
			RequestTimeout: cfg.HTTPTimeout,
		},
		microphone:      microphone,
		camera:          opencv.NewCamera(cfg.CameraDevice),
		clock:           ports.SystemClock{},
		log:             zerolog.Nop(),
		resultRenderer:  report.RenderResult,
		historyRenderer: report.RenderHistory,
		location:        time.Local,
	}, nil
}

func newMicrophone(cfg config.Config) (ports.Microphone, error) {
	switch cfg.Recorder {
	case config.RecorderFFmpeg:
		return recorder.NewMicrophone(recorder.FFmpeg(cfg.AudioDevice)), nil
	case config.RecorderARecord:
		return recorder.NewMicrophone(recorder.ARecord(cfg.AudioDevice)), nil
	default:
		return chain.NewFFmpegFirstWithARecordFallback(cfg.AudioDevice)
	}
}

func newArtifactStore(cfg config.Config) (ports.ArtifactStore, error) {
	switch cfg.StoreBackend {
	case config.ArtifactStorePass:
		return passstore.NewStore(cfg.PassPrefix), nil
	case config.ArtifactStoreAuto:
		return blobchain.NewPassFirstWithFileFallback(cfg.PassPrefix, cfg.ArtifactsDir)
	default:
		return blobstore.NewStore(cfg.ArtifactsDir), nil
	}
}
