package domain

const (
	MediaTypeWAV  = "audio/wav"
	MediaTypeJPEG = "image/jpeg"

	RecordingFilename     = "recording.wav"
	CameraCaptureFilename = "camera-capture.jpg"
)

// Artifact is a captured binary blob attached to a submission.
type Artifact struct {
	Modality  Modality
	MediaType string
	Filename  string
	Source    ArtifactSource
	Data      []byte
}

func (a *Artifact) Empty() bool {
	return a == nil || len(a.Data) == 0
}

// Size is the artifact length in bytes; nil artifacts report zero.
func (a *Artifact) Size() int {
	if a == nil {
		return 0
	}

	return len(a.Data)
}

func (a *Artifact) Clone() *Artifact {
	if a == nil {
		return nil
	}

	clone := *a
	clone.Data = append([]byte(nil), a.Data...)
	return &clone
}

// MismatchedWith reports whether the artifact was captured outside mode.
func (a *Artifact) MismatchedWith(mode ModalityMode) bool {
	return a != nil && SourceMismatch(a.Source, mode)
}
