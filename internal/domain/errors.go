package domain

import "errors"

var (
	ErrEmptySubmission   = errors.New("submission needs at least one of text, audio or image")
	ErrSubmissionPending = errors.New("an analysis request is already pending")
	ErrDeviceUnavailable = errors.New("capture device unavailable")
	ErrTransportFailure  = errors.New("analysis service unreachable")
	ErrMalformedResponse = errors.New("malformed analysis service response")
	ErrInvalidTransition = errors.New("invalid capture state transition")
	ErrUnknownModality   = errors.New("unknown modality")
	ErrUnknownMode       = errors.New("unknown modality mode")
	ErrModalityMismatch  = errors.New("artifact modality does not match slot")
	ErrUnsupportedMedia  = errors.New("unsupported media type")
)
