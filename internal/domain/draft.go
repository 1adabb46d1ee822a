package domain

// ArtifactRef points at an artifact blob kept in an artifact store.
type ArtifactRef struct {
	Key       string
	MediaType string
	Filename  string
	Source    ArtifactSource
	Size      int
}

// Draft is the persisted form of a submission being composed.
type Draft struct {
	Text      string
	AudioMode ModalityMode
	ImageMode ModalityMode
	Audio     *ArtifactRef
	Image     *ArtifactRef
}

// WithDefaults fills unset modes with ModeUpload.
func (d Draft) WithDefaults() Draft {
	if !d.AudioMode.Valid() {
		d.AudioMode = ModeUpload
	}
	if !d.ImageMode.Valid() {
		d.ImageMode = ModeUpload
	}

	return d
}

// MismatchedWith reports whether the referenced artifact was captured outside
// mode, using the same rule as Artifact.MismatchedWith.
func (r *ArtifactRef) MismatchedWith(mode ModalityMode) bool {
	return r != nil && SourceMismatch(r.Source, mode)
}
