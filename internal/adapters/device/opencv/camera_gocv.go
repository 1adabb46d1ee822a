//go:build opencv

package opencv

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/bnema/wellbeing-cli/internal/domain"
	"github.com/bnema/wellbeing-cli/internal/ports"
	"gocv.io/x/gocv"
)

// warmupFrames are read and dropped after opening so auto exposure settles.
const warmupFrames = 5

func (c *Camera) Open(ctx context.Context) (ports.CameraStream, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	capture, err := gocv.OpenVideoCapture(c.deviceID)
	if err != nil {
		return nil, fmt.Errorf("%w: open camera %d: %w", domain.ErrDeviceUnavailable, c.deviceID, err)
	}
	if !capture.IsOpened() {
		_ = capture.Close()
		return nil, fmt.Errorf("%w: camera %d did not open", domain.ErrDeviceUnavailable, c.deviceID)
	}

	stream := &stream{capture: capture, mat: gocv.NewMat()}
	for i := 0; i < warmupFrames; i++ {
		if err := ctx.Err(); err != nil {
			_ = stream.Close()
			return nil, err
		}
		stream.capture.Read(&stream.mat)
	}

	return stream, nil
}

type stream struct {
	mu      sync.Mutex
	capture *gocv.VideoCapture
	mat     gocv.Mat
	closed  bool
}

func (s *stream) Frame() (image.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, errors.New("camera stream closed")
	}
	if ok := s.capture.Read(&s.mat); !ok || s.mat.Empty() {
		return nil, fmt.Errorf("%w: camera returned no frame", domain.ErrDeviceUnavailable)
	}

	img, err := s.mat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("convert camera frame: %w", err)
	}

	return img, nil
}

func (s *stream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	matErr := s.mat.Close()
	return errors.Join(s.capture.Close(), matErr)
}
