package jss

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Settings are the resolved connection parameters for one request cycle. They
// are re-read from the settings store before every submission, so the client
// is constructed per call rather than held long-term.
type Settings struct {
	Host     string // scheme-prefixed, e.g. https://jss.example.com
	Port     string
	Path     string
	Username string
	Password string
}

// BaseURL joins host, port and path the way the JSS expects:
// https://host:port/path.
func (s Settings) BaseURL() string {
	return s.Host + ":" + s.Port + s.Path
}

type Client struct {
	settings Settings
	http     *http.Client
}

func NewClient(settings Settings, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{settings: settings, http: &http.Client{Timeout: timeout}}
}

func (c *Client) resourceURL(kind DeviceKind, serial string) string {
	return c.settings.BaseURL() + "/JSSResource/" + kind.Resource() + "/serialnumber/" + url.PathEscape(serial)
}

// Probe checks whether the serial exists as the given kind. It reports true
// only on a 200; any other status means "not this kind".
func (c *Client) Probe(ctx context.Context, kind DeviceKind, serial string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.resourceURL(kind, serial), nil)
	if err != nil {
		return false, err
	}
	req.SetBasicAuth(c.settings.Username, c.settings.Password)
	resp, err := c.http.Do(req)
	if err != nil {
		return false, fmt.Errorf("probe %s: %w", kind.Resource(), err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode == http.StatusOK, nil
}

// Update PUTs the XML payload to the type-specific resource and returns the
// response status code.
func (c *Client) Update(ctx context.Context, kind DeviceKind, serial string, payload []byte) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.resourceURL(kind, serial), bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	req.SetBasicAuth(c.settings.Username, c.settings.Password)
	req.Header.Set("Content-Type", "text/xml")
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("update %s: %w", kind.Resource(), err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, nil
}
