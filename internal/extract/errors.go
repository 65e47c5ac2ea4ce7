package extract

import (
	"fmt"

	app_errors "github.com/agmada-asa/Nexus/internal/errors"
)

// Kind names the extraction step that failed.
type Kind string

const (
	KindTranscription Kind = "transcription"
	KindPDF           Kind = "pdf"
	KindImage         Kind = "image"
	KindText          Kind = "text"
	KindWebPage       Kind = "webpage"
)

// Error reports a failed extraction of one file or URL. It matches
// app_errors.ErrExtraction under errors.Is.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s extraction of %q failed: %v", e.Kind, e.Path, e.Err)
}

func (e *Error) Unwrap() []error {
	return []error{app_errors.ErrExtraction, e.Err}
}

func newError(kind Kind, path string, err error) error {
	return &Error{Kind: kind, Path: path, Err: err}
}
