package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/cloudwego/eino-ext/components/document/parser/docx"
	"github.com/cloudwego/eino-ext/components/document/parser/html"
	"github.com/cloudwego/eino-ext/components/document/parser/pdf"
	einoparser "github.com/cloudwego/eino/components/document/parser"
	"github.com/cloudwego/eino/schema"
)

var errBinaryContent = errors.New("file is not text")

// FileReader extracts the text of documents. PDF, DOCX and HTML go through
// their dedicated parsers; any other extension is read as UTF-8 text.
type FileReader struct {
	parsers  map[string]einoparser.Parser
	fallback einoparser.Parser
}

func NewFileReader(ctx context.Context) (*FileReader, error) {
	pdfParser, err := pdf.NewPDFParser(ctx, &pdf.Config{ToPages: false})
	if err != nil {
		return nil, fmt.Errorf("failed to create pdf parser: %w", err)
	}

	docxParser, err := docx.NewDocxParser(ctx, &docx.Config{
		ToSections:      false,
		IncludeComments: false,
		IncludeHeaders:  true,
		IncludeFooters:  false,
		IncludeTables:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create docx parser: %w", err)
	}

	bodySelector := "body"
	htmlParser, err := html.NewParser(ctx, &html.Config{Selector: &bodySelector})
	if err != nil {
		return nil, fmt.Errorf("failed to create html parser: %w", err)
	}

	return &FileReader{
		parsers: map[string]einoparser.Parser{
			"pdf":  pdfParser,
			"docx": docxParser,
			"html": htmlParser,
			"htm":  htmlParser,
		},
		fallback: &plainTextParser{},
	}, nil
}

// Read returns the text of the file at path. ext is the lower-cased extension
// without a leading dot.
func (r *FileReader) Read(ctx context.Context, path, ext string) (string, error) {
	kind := KindText
	if ext == "pdf" {
		kind = KindPDF
	}

	p, ok := r.parsers[ext]
	if !ok {
		p = r.fallback
	}

	file, err := os.Open(path)
	if err != nil {
		return "", newError(kind, path, err)
	}
	defer file.Close()

	docs, err := p.Parse(ctx, file, einoparser.WithURI(path))
	if err != nil {
		return "", newError(kind, path, err)
	}
	return joinDocuments(docs), nil
}

func joinDocuments(docs []*schema.Document) string {
	parts := make([]string, 0, len(docs))
	for _, d := range docs {
		parts = append(parts, d.Content)
	}
	return strings.Join(parts, "\n")
}

type plainTextParser struct{}

func (p *plainTextParser) Parse(_ context.Context, reader io.Reader, _ ...einoparser.Option) ([]*schema.Document, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read: %w", err)
	}
	if !utf8.Valid(content) || bytes.IndexByte(content, 0) >= 0 {
		return nil, errBinaryContent
	}
	return []*schema.Document{{Content: string(content)}}, nil
}
