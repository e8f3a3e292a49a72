package cmd

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// client fetches the versions given as URLs.
var client = &http.Client{Timeout: 30 * time.Second}

// openSource opens a version of a balance history: a file, "-" for stdin,
// or an http(s) URL.
func openSource(name string) (io.ReadCloser, error) {
	switch {
	case name == "-":
		return io.NopCloser(os.Stdin), nil
	case strings.HasPrefix(name, "http://"), strings.HasPrefix(name, "https://"):
		return get(name)
	default:
		return os.Open(name)
	}
}

// get performs an HTTP GET request and returns the body of a successful response.
func get(addr string) (io.ReadCloser, error) {
	resp, err := client.Get(addr)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("method", resp.Request.Method).Str("host", resp.Request.URL.Host).Str("path", resp.Request.URL.Path).Str("status", resp.Status).Msg("fetched")
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("cannot http GET %v%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	return resp.Body, nil
}
