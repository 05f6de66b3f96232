package photo

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"recipe-browser/pkg/log"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 100, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// pngHeader returns a PNG signature plus a valid IHDR chunk declaring w x h
// RGBA pixels, with no image data behind it.
func pngHeader(w, h uint32) []byte {
	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], w)
	binary.BigEndian.PutUint32(ihdr[4:8], h)
	ihdr[8] = 8 // bit depth
	ihdr[9] = 6 // truecolor with alpha

	var buf bytes.Buffer
	buf.WriteString("\x89PNG\r\n\x1a\n")
	binary.Write(&buf, binary.BigEndian, uint32(len(ihdr)))
	chunk := append([]byte("IHDR"), ihdr...)
	buf.Write(chunk)
	binary.Write(&buf, binary.BigEndian, crc32.ChecksumIEEE(chunk))
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h)), nil); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestClampHeight(t *testing.T) {
	cases := map[int]int{0: DefaultHeight, -5: MinHeight, 3: MinHeight, 200: 200, 5000: MaxHeight}
	for in, want := range cases {
		if got := ClampHeight(in); got != want {
			t.Errorf("ClampHeight(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestResize(t *testing.T) {
	t.Run("PNG Keeps Aspect Ratio", func(t *testing.T) {
		thumb, err := Resize(encodePNG(t, 200, 100), 50)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if thumb.ContentType != "image/png" {
			t.Errorf("unexpected content type %s", thumb.ContentType)
		}
		if thumb.Height != 50 || thumb.Width != 100 {
			t.Errorf("unexpected size %dx%d", thumb.Width, thumb.Height)
		}
	})

	t.Run("JPEG", func(t *testing.T) {
		thumb, err := Resize(encodeJPEG(t, 64, 64), 32)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if thumb.ContentType != "image/jpeg" || thumb.Height != 32 {
			t.Errorf("unexpected thumbnail %s %d", thumb.ContentType, thumb.Height)
		}
	})

	t.Run("Declared Size Over Budget", func(t *testing.T) {
		_, err := Resize(pngHeader(100000, 100000), 32)
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
		}
		if !strings.Contains(err.Error(), "100000x100000") {
			t.Errorf("expected the declared size in the error, got %v", err)
		}
	})

	t.Run("Garbage", func(t *testing.T) {
		if _, err := Resize([]byte("not an image"), 32); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("expected ErrUnsupportedFormat, got %v", err)
		}
	})
}

func TestThumbnail(t *testing.T) {
	ctx := context.Background()
	img := encodePNG(t, 120, 60)

	t.Run("Fetch Then Cache", func(t *testing.T) {
		var hits atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			w.Write(img)
		}))
		defer srv.Close()

		c := NewClient(Config{DefaultHeight: 30, FetchTimeout: time.Second}, log.NewNop())
		first, err := c.Thumbnail(ctx, srv.URL+"/a.png", 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.Height != 30 {
			t.Errorf("expected default height 30, got %d", first.Height)
		}
		if _, err := c.Thumbnail(ctx, srv.URL+"/a.png", 30); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if hits.Load() != 1 {
			t.Errorf("expected 1 upstream hit, got %d", hits.Load())
		}
	})

	t.Run("Upstream Error", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		defer srv.Close()

		c := NewClient(Config{}, log.NewNop())
		if _, err := c.Thumbnail(ctx, srv.URL, 40); !errors.Is(err, ErrUpstream) {
			t.Errorf("expected ErrUpstream, got %v", err)
		}
	})

	t.Run("Cancelled Requests Keep Breaker Closed", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write(img)
		}))
		defer srv.Close()

		c := NewClient(Config{}, log.NewNop())
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		for i := 0; i < 6; i++ {
			if _, err := c.Thumbnail(cancelled, srv.URL, 40+i); !errors.Is(err, context.Canceled) {
				t.Fatalf("expected context.Canceled, got %v", err)
			}
		}

		if _, err := c.Thumbnail(ctx, srv.URL, 40); err != nil {
			t.Errorf("expected the breaker to stay closed, got %v", err)
		}
	})

	t.Run("Breaker Opens", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		c := NewClient(Config{}, log.NewNop())
		for i := 0; i < 5; i++ {
			c.Thumbnail(ctx, srv.URL, 40+i)
		}
		if _, err := c.Thumbnail(ctx, srv.URL, 99); !errors.Is(err, ErrUnavailable) {
			t.Errorf("expected ErrUnavailable once the breaker is open, got %v", err)
		}
	})
}
