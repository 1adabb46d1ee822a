package application

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/jpeg"
	"sync"

	"github.com/bnema/wellbeing-cli/internal/domain"
	"github.com/bnema/wellbeing-cli/internal/ports"
)

type CameraState string

const (
	CameraClosed     CameraState = "closed"
	CameraPreviewing CameraState = "previewing"
	CameraCaptured   CameraState = "captured"
)

const defaultJPEGQuality = 92

// CameraCapture takes one still frame from a camera preview.
type CameraCapture struct {
	camera  ports.Camera
	quality int

	mu       sync.Mutex
	state    CameraState
	stream   ports.CameraStream
	artifact *domain.Artifact
}

func NewCameraCapture(camera ports.Camera) *CameraCapture {
	return &CameraCapture{camera: camera, quality: defaultJPEGQuality, state: CameraClosed}
}

func (c *CameraCapture) State() CameraState {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

func (c *CameraCapture) Artifact() *domain.Artifact {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.artifact.Clone()
}

func (c *CameraCapture) Open(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != CameraClosed {
		return fmt.Errorf("%w: open while %s", domain.ErrInvalidTransition, c.state)
	}
	if c.camera == nil {
		return fmt.Errorf("%w: no camera configured", domain.ErrDeviceUnavailable)
	}

	stream, err := c.camera.Open(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrDeviceUnavailable) {
			return err
		}
		return fmt.Errorf("%w: %w", domain.ErrDeviceUnavailable, err)
	}

	c.artifact = nil
	c.stream = stream
	c.state = CameraPreviewing

	return nil
}

// Capture decodes the current preview frame and re-encodes it as JPEG.
func (c *CameraCapture) Capture() (*domain.Artifact, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != CameraPreviewing {
		return nil, fmt.Errorf("%w: capture while %s", domain.ErrInvalidTransition, c.state)
	}

	frame, err := c.stream.Frame()
	if err != nil {
		return nil, fmt.Errorf("read camera frame: %w", err)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, frame, &jpeg.Options{Quality: c.quality}); err != nil {
		return nil, fmt.Errorf("encode camera frame: %w", err)
	}

	c.artifact = &domain.Artifact{
		Modality:  domain.ModalityImage,
		MediaType: domain.MediaTypeJPEG,
		Filename:  domain.CameraCaptureFilename,
		Source:    domain.ModeLive,
		Data:      buf.Bytes(),
	}
	c.state = CameraCaptured

	return c.artifact.Clone(), nil
}

// Retake drops the captured frame and resumes the preview.
func (c *CameraCapture) Retake() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != CameraCaptured {
		return fmt.Errorf("%w: retake while %s", domain.ErrInvalidTransition, c.state)
	}

	c.artifact = nil
	c.state = CameraPreviewing

	return nil
}

// Close releases the camera from any state. The last captured artifact is
// kept so callers can read it after closing.
func (c *CameraCapture) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = CameraClosed
	if c.stream == nil {
		return nil
	}

	stream := c.stream
	c.stream = nil
	if err := stream.Close(); err != nil {
		return fmt.Errorf("release camera: %w", err)
	}

	return nil
}
