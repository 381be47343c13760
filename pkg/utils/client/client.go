package client

import (
	"net/http"
	"time"
)

type Client struct {
	hostPort string
	Client   *http.Client
}

const (
	DefaultTimeout = 10 * time.Second
)

func NewGenericClient(addr string) *Client {
	return NewGenericClientWithTimeout(addr, DefaultTimeout)
}

// NewGenericClientWithTimeout bounds every request issued through the client
// by timeout, on top of whatever deadline the request context carries.
func NewGenericClientWithTimeout(addr string, timeout time.Duration) *Client {
	return NewGenericClientWithHTTPClient(addr, &http.Client{
		Timeout: timeout,
	})
}

func NewGenericClientWithHTTPClient(addr string, httpClient *http.Client) *Client {
	return &Client{
		hostPort: addr,
		Client:   httpClient,
	}
}

func (c *Client) GetHostPort() string {
	return c.hostPort
}

func (c *Client) GetHTTPClient() *http.Client {
	return c.Client
}
