package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError turns a non-2xx response into one of the package sentinels.
// The server's body and echoed trace id are kept in the message so a client
// log line can be matched with the server's.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	detail := strings.TrimSpace(string(resp.Body()))
	if detail == "" {
		detail = http.StatusText(status)
	}
	if traceID := resp.Header().Get(traceIDHeader); traceID != "" {
		detail += " (trace_id " + traceID + ")"
	}

	var sentinel error
	switch status {
	case http.StatusBadRequest:
		sentinel = ErrBadRequest
	case http.StatusNotFound:
		sentinel = ErrNotFound
	case http.StatusInternalServerError:
		sentinel = ErrInternalServerError
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, status, detail)
	}

	return fmt.Errorf("%w: %s", sentinel, detail)
}
