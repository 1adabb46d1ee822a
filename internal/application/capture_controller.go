package application

import (
	"fmt"
	"sync"

	"github.com/bnema/wellbeing-cli/internal/domain"
)

// CaptureController owns the submission being composed and the active
// capture mode of each artifact modality.
//
// Switching a mode never discards the artifact already held for that
// modality; ArtifactMismatch reports when the held artifact came from the
// other path.
type CaptureController struct {
	mu sync.RWMutex

	text      string
	audio     *domain.Artifact
	image     *domain.Artifact
	audioMode domain.ModalityMode
	imageMode domain.ModalityMode
}

type ModalityModes struct {
	Audio domain.ModalityMode
	Image domain.ModalityMode
}

func NewCaptureController() *CaptureController {
	return &CaptureController{
		audioMode: domain.ModeUpload,
		imageMode: domain.ModeUpload,
	}
}

func (c *CaptureController) SetText(value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.text = value
}

func (c *CaptureController) SetModalityMode(modality domain.Modality, mode domain.ModalityMode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownMode, mode)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	switch modality {
	case domain.ModalityAudio:
		c.audioMode = mode
	case domain.ModalityImage:
		c.imageMode = mode
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownModality, modality)
	}

	return nil
}

// SetArtifact stores or, with a nil artifact, clears the artifact slot of a
// modality. The controller keeps its own copy of the bytes.
func (c *CaptureController) SetArtifact(modality domain.Modality, artifact *domain.Artifact) error {
	if artifact != nil && artifact.Modality != "" && artifact.Modality != modality {
		return fmt.Errorf("%w: %s artifact for %s slot", domain.ErrModalityMismatch, artifact.Modality, modality)
	}

	stored := artifact.Clone()
	if stored != nil {
		stored.Modality = modality
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	switch modality {
	case domain.ModalityAudio:
		c.audio = stored
	case domain.ModalityImage:
		c.image = stored
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownModality, modality)
	}

	return nil
}

func (c *CaptureController) Submission() domain.SessionInput {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return domain.SessionInput{
		Text:  c.text,
		Audio: c.audio.Clone(),
		Image: c.image.Clone(),
	}
}

func (c *CaptureController) IsSubmittable() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return IsSubmittable(domain.SessionInput{Text: c.text, Audio: c.audio, Image: c.image})
}

// Reset clears text and artifacts. Modes are left as they are.
func (c *CaptureController) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.text = ""
	c.audio = nil
	c.image = nil
}

func (c *CaptureController) Modes() ModalityModes {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return ModalityModes{Audio: c.audioMode, Image: c.imageMode}
}

// ArtifactMismatch reports whether the held artifact of a modality was
// produced by a different path than the active mode.
func (c *CaptureController) ArtifactMismatch(modality domain.Modality) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch modality {
	case domain.ModalityAudio:
		return c.audio.MismatchedWith(c.audioMode)
	case domain.ModalityImage:
		return c.image.MismatchedWith(c.imageMode)
	default:
		return false
	}
}

// IsSubmittable is true iff at least one of text, audio or image is non-empty.
func IsSubmittable(input domain.SessionInput) bool {
	return input.Submittable()
}
