package domain

import "fmt"

// Modality is one of the input channels of a submission.
type Modality string

const (
	ModalityText  Modality = "text"
	ModalityAudio Modality = "audio"
	ModalityImage Modality = "image"
)

// ParseCaptureModality accepts the modalities that carry artifacts.
func ParseCaptureModality(raw string) (Modality, error) {
	switch Modality(raw) {
	case ModalityAudio, ModalityImage:
		return Modality(raw), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownModality, raw)
	}
}

// ModalityMode selects which capture path feeds a modality.
type ModalityMode string

const (
	ModeUpload ModalityMode = "upload"
	ModeLive   ModalityMode = "live"
)

func (m ModalityMode) Valid() bool {
	switch m {
	case ModeUpload, ModeLive:
		return true
	default:
		return false
	}
}

func ParseModalityMode(raw string) (ModalityMode, error) {
	mode := ModalityMode(raw)
	if !mode.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, raw)
	}

	return mode, nil
}

// ArtifactSource records which path produced an artifact. The values match
// ModalityMode so a stored artifact can be compared with the active mode.
type ArtifactSource = ModalityMode

// SourceMismatch reports whether an artifact produced by source sits in a slot
// whose active mode is another path. Artifacts with no recorded source never
// mismatch.
func SourceMismatch(source ArtifactSource, active ModalityMode) bool {
	return source != "" && source != active
}
