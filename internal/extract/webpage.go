package extract

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// EmptyPageText stands in for pages whose body has no text.
const EmptyPageText = "Error: Could not get webpage contents"

// PageFetcher downloads a web page and returns the text content of its body.
type PageFetcher struct {
	client *http.Client
}

func NewPageFetcher(client *http.Client) *PageFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &PageFetcher{client: client}
}

func (f *PageFetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", newError(KindWebPage, url, err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; Nexus)")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", newError(KindWebPage, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", newError(KindWebPage, url, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", newError(KindWebPage, url, err)
	}

	return squashWhitespace(doc.Find("body").Text()), nil
}

// squashWhitespace removes only the first space, newline, tab and carriage
// return, in that order. An empty result becomes EmptyPageText.
func squashWhitespace(text string) string {
	for _, ws := range []string{" ", "\n", "\t", "\r"} {
		text = strings.Replace(text, ws, "", 1)
	}
	if text == "" {
		return EmptyPageText
	}
	return text
}
