package chain

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/wellbeing-cli/internal/adapters/device/recorder"
	"github.com/bnema/wellbeing-cli/internal/domain"
	"github.com/bnema/wellbeing-cli/internal/ports"
)

// Microphone tries the primary device and falls back when it is unavailable.
type Microphone struct {
	primary  ports.Microphone
	fallback ports.Microphone
}

var _ ports.Microphone = (*Microphone)(nil)

var (
	errNilPrimaryMicrophone  = errors.New("primary microphone is nil")
	errNilFallbackMicrophone = errors.New("fallback microphone is nil")
)

func NewMicrophone(primary ports.Microphone, fallback ports.Microphone) (*Microphone, error) {
	if primary == nil {
		return nil, errNilPrimaryMicrophone
	}
	if fallback == nil {
		return nil, errNilFallbackMicrophone
	}

	return &Microphone{primary: primary, fallback: fallback}, nil
}

// NewFFmpegFirstWithARecordFallback prefers ffmpeg and uses arecord when
// ffmpeg is missing or cannot open the device.
func NewFFmpegFirstWithARecordFallback(device string) (*Microphone, error) {
	return NewMicrophone(recorder.NewMicrophone(recorder.FFmpeg(device)), recorder.NewMicrophone(recorder.ARecord(device)))
}

func (m *Microphone) Start(ctx context.Context) (ports.AudioSession, error) {
	session, err := m.primary.Start(ctx)
	if err == nil {
		return session, nil
	}
	if !errors.Is(err, domain.ErrDeviceUnavailable) {
		return nil, err
	}

	session, fallbackErr := m.fallback.Start(ctx)
	if fallbackErr == nil {
		return session, nil
	}

	return nil, fmt.Errorf("primary microphone failed: %w; fallback microphone failed: %w", err, fallbackErr)
}
