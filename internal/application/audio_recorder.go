package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/wellbeing-cli/internal/domain"
	"github.com/bnema/wellbeing-cli/internal/ports"
)

type RecorderState string

const (
	RecorderIdle      RecorderState = "idle"
	RecorderRecording RecorderState = "recording"
	RecorderStopped   RecorderState = "stopped"
)

// AudioRecorder turns a microphone session into one audio artifact.
type AudioRecorder struct {
	mic ports.Microphone

	mu       sync.Mutex
	state    RecorderState
	session  ports.AudioSession
	artifact *domain.Artifact
}

func NewAudioRecorder(mic ports.Microphone) *AudioRecorder {
	return &AudioRecorder{mic: mic, state: RecorderIdle}
}

func (r *AudioRecorder) State() RecorderState {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.state
}

// Artifact returns the last recording, or nil before the first Stop.
func (r *AudioRecorder) Artifact() *domain.Artifact {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.artifact.Clone()
}

// Start acquires the microphone. Starting again after Stop discards the
// previous recording.
func (r *AudioRecorder) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state == RecorderRecording {
		return fmt.Errorf("%w: start while recording", domain.ErrInvalidTransition)
	}
	if r.mic == nil {
		return fmt.Errorf("%w: no microphone configured", domain.ErrDeviceUnavailable)
	}

	session, err := r.mic.Start(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrDeviceUnavailable) {
			return err
		}
		return fmt.Errorf("%w: %w", domain.ErrDeviceUnavailable, err)
	}

	r.artifact = nil
	r.session = session
	r.state = RecorderRecording

	return nil
}

// Stop ends the recording and emits its artifact. The microphone is
// released even when the device fails to produce audio.
func (r *AudioRecorder) Stop() (*domain.Artifact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != RecorderRecording {
		return nil, fmt.Errorf("%w: stop while %s", domain.ErrInvalidTransition, r.state)
	}

	session := r.session
	r.session = nil

	clip, err := session.Stop()
	if closeErr := session.Close(); closeErr != nil {
		err = errors.Join(err, closeErr)
	}
	if err != nil {
		r.state = RecorderIdle
		return nil, fmt.Errorf("stop recording: %w", err)
	}

	mediaType := clip.MediaType
	if mediaType == "" {
		mediaType = domain.MediaTypeWAV
	}

	r.artifact = &domain.Artifact{
		Modality:  domain.ModalityAudio,
		MediaType: mediaType,
		Filename:  domain.RecordingFilename,
		Source:    domain.ModeLive,
		Data:      clip.Data,
	}
	r.state = RecorderStopped

	return r.artifact.Clone(), nil
}

// Close releases the microphone from any state and returns to idle.
func (r *AudioRecorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.state = RecorderIdle
	if r.session == nil {
		return nil
	}

	session := r.session
	r.session = nil
	if err := session.Close(); err != nil {
		return fmt.Errorf("release microphone: %w", err)
	}

	return nil
}
