package extract

import "context"

// Transcriber turns audio and video files into text with an external
// speech-to-text program that prints the transcript on stdout.
type Transcriber struct {
	command string
}

func NewTranscriber(command string) *Transcriber {
	return &Transcriber{command: command}
}

func (t *Transcriber) Transcribe(ctx context.Context, path string) (string, error) {
	text, err := runCommand(ctx, t.command, path)
	if err != nil {
		return "", newError(KindTranscription, path, err)
	}
	return text, nil
}
