package ports

import (
	"context"
	"image"
)

// Microphone acquires a live audio stream.
type Microphone interface {
	Start(ctx context.Context) (AudioSession, error)
}

// AudioSession is an open microphone stream. Stop ends the recording and
// returns the encoded audio; Close releases the device without output.
type AudioSession interface {
	Stop() (AudioClip, error)
	Close() error
}

type AudioClip struct {
	MediaType string
	Data      []byte
}

// Camera acquires a live camera preview.
type Camera interface {
	Open(ctx context.Context) (CameraStream, error)
}

// CameraStream is an open preview. Frame returns the current decoded frame.
type CameraStream interface {
	Frame() (image.Image, error)
	Close() error
}
