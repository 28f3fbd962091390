package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so callers configure it with the usual
// resty setters.
//
//	client := utils.NewHTTPClient()
//	client.SetBaseURL("http://localhost:8080").SetTimeout(10 * time.Second)
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client with its own connection pool. The client
// never retries; a failed request is reported to the caller as is.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New().SetRetryCount(0)}
}
