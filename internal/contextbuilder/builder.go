// Package contextbuilder turns the files and URLs attached to a chat into
// provenance-tagged documents ready for indexing.
package contextbuilder

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/cloudwego/eino/schema"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/agmada-asa/Nexus/internal/model"
)

const (
	MetaSource = "source"
	MetaKind   = "kind"
)

var mediaExtensions = map[string]bool{
	"mp4": true, "mov": true, "m4v": true, "avi": true, "mkv": true,
	"wav": true, "mp3": true, "m4a": true, "aac": true, "flac": true, "ogg": true,
}

var imageExtensions = map[string]bool{
	"png": true, "jpg": true, "jpeg": true, "svg": true, "gif": true, "webp": true,
}

type Transcriber interface {
	Transcribe(ctx context.Context, path string) (string, error)
}

type ImageReader interface {
	OCR(ctx context.Context, path string) (string, error)
	Describe(ctx context.Context, path string) (string, error)
}

type FileReader interface {
	Read(ctx context.Context, path, ext string) (string, error)
}

type PageFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

type Builder struct {
	transcriber Transcriber
	images      ImageReader
	files       FileReader
	pages       PageFetcher
	concurrency int
}

func NewBuilder(transcriber Transcriber, images ImageReader, files FileReader, pages PageFetcher, concurrency int) *Builder {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Builder{
		transcriber: transcriber,
		images:      images,
		files:       files,
		pages:       pages,
		concurrency: concurrency,
	}
}

// Build extracts every file and URL concurrently, at most b.concurrency at a
// time. The first failure cancels the remaining extractions and is returned.
// Document order is unspecified.
func (b *Builder) Build(ctx context.Context, files []model.UploadedFile, urls []string) ([]*schema.Document, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	var mu sync.Mutex
	docs := make([]*schema.Document, 0, len(files)+len(urls))
	collect := func(doc *schema.Document) {
		mu.Lock()
		docs = append(docs, doc)
		mu.Unlock()
	}

	for _, file := range files {
		g.Go(func() error {
			doc, err := b.fromFile(gctx, file)
			if err != nil {
				return err
			}
			collect(doc)
			return nil
		})
	}

	for _, url := range urls {
		g.Go(func() error {
			doc, err := b.fromURL(gctx, url)
			if err != nil {
				return err
			}
			collect(doc)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slog.Debug("Built context documents", "files", len(files), "urls", len(urls), "documents", len(docs))
	return docs, nil
}

func (b *Builder) fromFile(ctx context.Context, file model.UploadedFile) (*schema.Document, error) {
	ext := fileExtension(file)

	switch {
	case mediaExtensions[ext]:
		text, err := b.transcriber.Transcribe(ctx, file.FilePath)
		if err != nil {
			return nil, err
		}
		return newDocument(documentText(file.DisplayName, text), file.FilePath, "media"), nil

	case imageExtensions[ext]:
		ocr, err := b.images.OCR(ctx, file.FilePath)
		if err != nil {
			return nil, err
		}
		description, err := b.images.Describe(ctx, file.FilePath)
		if err != nil {
			return nil, err
		}
		text := fmt.Sprintf("TEXT IN IMAGE: %s \n DESCRIPTION OF IMAGE: %s", ocr, description)
		return newDocument(text, file.FilePath, "image"), nil

	default:
		text, err := b.files.Read(ctx, file.FilePath, ext)
		if err != nil {
			return nil, err
		}
		return newDocument(documentText(file.DisplayName, text), file.FilePath, "file"), nil
	}
}

func (b *Builder) fromURL(ctx context.Context, url string) (*schema.Document, error) {
	text, err := b.pages.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return newDocument(fmt.Sprintf("CONTENTS OF %s\n%s", url, text), url, "url"), nil
}

func documentText(name, content string) string {
	return fmt.Sprintf("DOCUMENT TITLE: %s\nDOCUMENT CONTENT: %s", name, content)
}

func newDocument(text, source, kind string) *schema.Document {
	return &schema.Document{
		ID:      uuid.NewString(),
		Content: text,
		MetaData: map[string]any{
			MetaSource: source,
			MetaKind:   kind,
		},
	}
}

// fileExtension prefers the declared type and falls back to the path suffix.
func fileExtension(file model.UploadedFile) string {
	ext := file.FileExtension
	if ext == "" {
		ext = filepath.Ext(file.FilePath)
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
