package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds [resty.Client] so outbound callers, the webhook
// gateway mainly, share one place to hang client-wide settings.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a fresh [HTTPClient] with its own connection
// pool and default resty configuration.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
