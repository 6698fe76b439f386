package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError classifies a completed response. It returns nil for 2xx.
func mapHTTPError(resp *resty.Response, url string) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	if resp.StatusCode() == http.StatusNotFound {
		return fmt.Errorf("%w: unable to locate file at '%s'", ErrNotFound, url)
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("%w: http %d for '%s': %s", ErrHTTP, resp.StatusCode(), url, body)
}
