package photo

import (
	"errors"
	"time"
)

const (
	MinHeight     = 16
	MaxHeight     = 1024
	DefaultHeight = 300

	maxSourceBytes  = 16 << 20
	maxSourcePixels = 40_000_000
)

var (
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrUpstream          = errors.New("photo upstream failure")
	ErrUnavailable       = errors.New("photo upstream temporarily unavailable")
)

// Config configures the thumbnail Client.
type Config struct {
	DefaultHeight int
	FetchTimeout  time.Duration
	CacheSize     int
	CacheTTL      time.Duration
}

// Thumbnail is an encoded, resized image.
type Thumbnail struct {
	Data        []byte
	ContentType string
	Width       int
	Height      int
}

type cacheKey struct {
	url    string
	height int
}
