package remote

import (
	"net/http"
	"time"

	"recipe-browser/internal/recipe/repository"
)

// maxBodyBytes caps the size of a fetched data file.
const maxBodyBytes = 32 << 20

type implSource struct {
	url    string
	client *http.Client
}

// New creates a Source that GETs the data file from url.
func New(url string, timeout time.Duration) repository.Source {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &implSource{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// NewWithClient is New with a caller-supplied client, mainly for tests.
func NewWithClient(url string, client *http.Client) repository.Source {
	return &implSource{url: url, client: client}
}
