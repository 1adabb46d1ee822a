package domain

// SessionInput is the snapshot sent to the analysis service.
type SessionInput struct {
	Text  string
	Audio *Artifact
	Image *Artifact
}

// Submittable reports whether at least one modality carries content.
func (s SessionInput) Submittable() bool {
	return s.Text != "" || !s.Audio.Empty() || !s.Image.Empty()
}

// Modalities lists the non-empty modalities in submission order.
func (s SessionInput) Modalities() []Modality {
	modalities := make([]Modality, 0, 3)
	if s.Text != "" {
		modalities = append(modalities, ModalityText)
	}
	if !s.Audio.Empty() {
		modalities = append(modalities, ModalityAudio)
	}
	if !s.Image.Empty() {
		modalities = append(modalities, ModalityImage)
	}

	return modalities
}
