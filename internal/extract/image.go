package extract

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/agmada-asa/Nexus/internal/llm"
)

const describeImagePrompt = "Describe this image in detail"

// ImageReader reads the text printed in an image with an OCR program and asks
// a vision model to describe it.
type ImageReader struct {
	llm         llm.LLMProvider
	visionModel string
	ocrCommand  string
}

func NewImageReader(provider llm.LLMProvider, visionModel, ocrCommand string) *ImageReader {
	return &ImageReader{llm: provider, visionModel: visionModel, ocrCommand: ocrCommand}
}

// OCR runs `<ocrCommand> <path> stdout`, the tesseract calling convention.
func (r *ImageReader) OCR(ctx context.Context, path string) (string, error) {
	text, err := runCommand(ctx, r.ocrCommand, path, "stdout")
	if err != nil {
		return "", newError(KindImage, path, err)
	}
	return text, nil
}

func (r *ImageReader) Describe(ctx context.Context, path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", newError(KindImage, path, err)
	}

	resp, err := r.llm.Generate(ctx, &llm.GenerateRequest{
		Model: r.visionModel,
		Messages: []llm.Message{{
			Role:    "user",
			Content: describeImagePrompt,
			Images:  []string{base64.StdEncoding.EncodeToString(raw)},
		}},
	})
	if err != nil {
		return "", newError(KindImage, path, fmt.Errorf("vision model: %w", err))
	}
	return resp.Response, nil
}
