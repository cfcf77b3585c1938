package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// APIClient talks to the assethook JSON API with the JWT obtained at login.
type APIClient struct {
	BaseURL string
	Token   string
	http    *http.Client
}

func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 90 * time.Second}, // bulk submits can sit through 409 delays
	}
}

type DeviceRow struct {
	ID              uint   `json:"id"`
	SerialNumber    string `json:"serial_number"`
	AssetTag        string `json:"asset_tag"`
	DeviceName      string `json:"device_name"`
	LastSubmittedAt string `json:"last_submitted_at,omitempty"`
}

type apiMessage struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *APIClient) do(method, path string, body any, out any) error {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		var msg apiMessage
		_ = json.NewDecoder(resp.Body).Decode(&msg)
		if msg.Error != "" {
			return fmt.Errorf("%s", msg.Error)
		}
		return fmt.Errorf("server returned %d", resp.StatusCode)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *APIClient) Login(username, password string) error {
	var out struct {
		AccessToken string `json:"access_token"`
	}
	err := c.do(http.MethodPost, "/login", map[string]string{
		"username": username,
		"password": password,
	}, &out)
	if err != nil {
		return err
	}
	c.Token = out.AccessToken
	return nil
}

func (c *APIClient) ListDevices() ([]DeviceRow, error) {
	var out []DeviceRow
	if err := c.do(http.MethodGet, "/devices", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *APIClient) Submit(serial string) (string, error) {
	var out apiMessage
	q := url.Values{"serial_number": {serial}}
	if err := c.do(http.MethodGet, "/submit_inventory?"+q.Encode(), nil, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *APIClient) SubmitAll() (string, error) {
	var out apiMessage
	if err := c.do(http.MethodGet, "/submit_all", nil, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *APIClient) DeleteDevice(id uint) (string, error) {
	var out apiMessage
	if err := c.do(http.MethodDelete, fmt.Sprintf("/devices?id=%d", id), nil, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *APIClient) GetSettings() (map[string]string, error) {
	var out map[string]string
	if err := c.do(http.MethodGet, "/settings", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *APIClient) SaveSettings(values map[string]string) (string, error) {
	var out apiMessage
	if err := c.do(http.MethodPost, "/settings", values, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}
