// Package chunker splits long text into overlapping fixed-size windows so a
// model with a bounded context can process arbitrarily long input.
//
// Offsets are counted in runes. Splits may fall mid-word: there is no token or
// word boundary awareness.
package chunker

import (
	"fmt"

	app_errors "github.com/agmada-asa/Nexus/internal/errors"
)

// Split returns the ordered windows of text. Window i+1 starts maxSize-overlap
// runes after window i, and splitting stops at the first window that reaches the
// end of the text. Text no longer than maxSize, including the empty string,
// yields exactly one chunk.
func Split(text string, maxSize, overlap int) ([]string, error) {
	if maxSize <= 0 {
		return nil, fmt.Errorf("%w: chunk size must be positive, got %d", app_errors.ErrValidation, maxSize)
	}
	if overlap < 0 || overlap >= maxSize {
		return nil, fmt.Errorf("%w: chunk overlap must be in [0, %d), got %d", app_errors.ErrValidation, maxSize, overlap)
	}

	runes := []rune(text)
	if len(runes) <= maxSize {
		return []string{text}, nil
	}

	step := maxSize - overlap
	chunks := make([]string, 0, Count(len(runes), maxSize, overlap))
	for start := 0; ; start += step {
		end := min(start+maxSize, len(runes))
		chunks = append(chunks, string(runes[start:end]))
		if end == len(runes) {
			break
		}
	}
	return chunks, nil
}

// Count returns the number of chunks Split produces for a text of n runes.
func Count(n, maxSize, overlap int) int {
	if n <= maxSize {
		return 1
	}
	step := maxSize - overlap
	return (n - overlap + step - 1) / step
}
