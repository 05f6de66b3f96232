package photo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/nfnt/resize"
	"github.com/sony/gobreaker/v2"

	"recipe-browser/pkg/log"
	"recipe-browser/pkg/metrics"
)

// Client fetches recipe photos and serves resized copies.
type Client struct {
	http          *http.Client
	l             log.Logger
	defaultHeight int
	cache         *expirable.LRU[cacheKey, Thumbnail]
	breaker       *gobreaker.CircuitBreaker[Thumbnail]
}

// NewClient creates a thumbnail Client.
func NewClient(cfg Config, l log.Logger) *Client {
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = 10 * time.Second
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = 128
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = time.Hour
	}

	c := &Client{
		http:          &http.Client{Timeout: cfg.FetchTimeout},
		l:             l,
		defaultHeight: ClampHeight(cfg.DefaultHeight),
		cache:         expirable.NewLRU[cacheKey, Thumbnail](cfg.CacheSize, nil, cfg.CacheTTL),
	}
	c.breaker = gobreaker.NewCircuitBreaker[Thumbnail](gobreaker.Settings{
		Name:        "photo-upstream",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			// Bad images and aborted client requests say nothing about the host.
			return err == nil ||
				errors.Is(err, ErrUnsupportedFormat) ||
				errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			l.Warnf(context.Background(), "pkg.photo: breaker %s %s -> %s", name, from, to)
		},
	})
	return c
}

// DefaultHeight is the height used when a request does not name one.
func (c *Client) DefaultHeight() int { return c.defaultHeight }

// Thumbnail returns photoURL resized to height pixels, keeping aspect ratio.
func (c *Client) Thumbnail(ctx context.Context, photoURL string, height int) (Thumbnail, error) {
	if height <= 0 {
		height = c.defaultHeight
	}
	height = ClampHeight(height)

	key := cacheKey{url: photoURL, height: height}
	if t, ok := c.cache.Get(key); ok {
		metrics.RecordPhotoThumbnail("hit")
		return t, nil
	}

	t, err := c.breaker.Execute(func() (Thumbnail, error) {
		return c.fetchAndResize(ctx, photoURL, height)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.RecordPhotoThumbnail("open")
			return Thumbnail{}, ErrUnavailable
		}
		metrics.RecordPhotoThumbnail("error")
		return Thumbnail{}, err
	}

	metrics.RecordPhotoThumbnail("fetched")
	c.cache.Add(key, t)
	return t, nil
}

func (c *Client) fetchAndResize(ctx context.Context, photoURL string, height int) (Thumbnail, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, photoURL, nil)
	if err != nil {
		return Thumbnail{}, fmt.Errorf("%w: build request: %v", ErrUpstream, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Thumbnail{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Thumbnail{}, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxSourceBytes))
	if err != nil {
		return Thumbnail{}, fmt.Errorf("%w: read body: %w", ErrUpstream, err)
	}

	return Resize(body, height)
}

// Resize decodes a JPEG or PNG image and scales it to height pixels.
// Images above maxSourcePixels are rejected from their header, before decoding.
func Resize(data []byte, height int) (Thumbnail, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Thumbnail{}, ErrUnsupportedFormat
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > maxSourcePixels {
		return Thumbnail{}, fmt.Errorf("%w: %dx%d exceeds the pixel budget", ErrUnsupportedFormat, cfg.Width, cfg.Height)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Thumbnail{}, ErrUnsupportedFormat
	}

	resized := resize.Resize(0, uint(ClampHeight(height)), img, resize.Lanczos3)

	var buf bytes.Buffer
	var contentType string
	switch format {
	case "jpeg":
		contentType = "image/jpeg"
		err = jpeg.Encode(&buf, resized, &jpeg.Options{Quality: 85})
	case "png":
		contentType = "image/png"
		err = png.Encode(&buf, resized)
	default:
		return Thumbnail{}, ErrUnsupportedFormat
	}
	if err != nil {
		return Thumbnail{}, fmt.Errorf("encode %s: %w", format, err)
	}

	b := resized.Bounds()
	return Thumbnail{
		Data:        buf.Bytes(),
		ContentType: contentType,
		Width:       b.Dx(),
		Height:      b.Dy(),
	}, nil
}

// ClampHeight bounds h to [MinHeight, MaxHeight]; zero selects DefaultHeight.
func ClampHeight(h int) int {
	switch {
	case h == 0:
		return DefaultHeight
	case h < MinHeight:
		return MinHeight
	case h > MaxHeight:
		return MaxHeight
	default:
		return h
	}
}
