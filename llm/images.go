package llm

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"studyup/ai-gateway/config"

	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc/iter"
)

type ImageFetcherConfig struct {
	HTTPClient  *http.Client
	Timeout     time.Duration
	Concurrency int
	MaxBytes    int64
}

// ImageFetcher downloads image URLs and turns them into inline-image parts.
// A URL that cannot be fetched is logged and dropped; it never fails the batch.
type ImageFetcher struct {
	httpClient  *http.Client
	concurrency int
	maxBytes    int64
}

func NewImageFetcher(cfg ImageFetcherConfig) *ImageFetcher {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	maxBytes := cfg.MaxBytes
	if maxBytes <= 0 {
		maxBytes = 20 << 20
	}

	return &ImageFetcher{
		httpClient:  httpClient,
		concurrency: concurrency,
		maxBytes:    maxBytes,
	}
}

// FetchImages returns one part per successfully fetched URL, in input order.
func (f *ImageFetcher) FetchImages(ctx context.Context, urls []string) []Part {
	if len(urls) == 0 {
		return nil
	}

	mapper := iter.Mapper[string, *Part]{MaxGoroutines: f.concurrency}
	fetched := mapper.Map(urls, func(imageURL *string) *Part {
		part, err := f.fetch(ctx, *imageURL)
		if err != nil {
			config.Logger.WithFields(logrus.Fields{
				"url":   *imageURL,
				"error": err,
			}).Warn("Skipping image URL")
			return nil
		}
		return part
	})

	parts := make([]Part, 0, len(fetched))
	for _, part := range fetched {
		if part != nil {
			parts = append(parts, *part)
		}
	}
	return parts
}

func (f *ImageFetcher) fetch(ctx context.Context, imageURL string) (*Part, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid image URL: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	mimeType := mediaType(resp.Header.Get("Content-Type"))
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, fmt.Errorf("not an image: %q", mimeType)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read failed: %w", err)
	}
	if int64(len(data)) > f.maxBytes {
		return nil, fmt.Errorf("image larger than %d bytes", f.maxBytes)
	}

	part := InlineImagePart(mimeType, base64.StdEncoding.EncodeToString(data))
	return &part, nil
}

// mediaType strips parameters such as "; charset=binary" from a content type.
func mediaType(contentType string) string {
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}
