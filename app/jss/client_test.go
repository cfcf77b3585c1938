package jss

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func settingsFor(t *testing.T, ts *httptest.Server) Settings {
	t.Helper()
	u, err := url.Parse(ts.URL)
	require.NoError(t, err)
	return Settings{
		Host:     "http://" + u.Hostname(),
		Port:     u.Port(),
		Path:     "",
		Username: "api",
		Password: "secret",
	}
}

func TestClientProbe(t *testing.T) {
	var gotPath, gotUser string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, _, _ = r.BasicAuth()
		if r.URL.Path == "/JSSResource/mobiledevices/serialnumber/ABC123" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	c := NewClient(settingsFor(t, ts), time.Second)

	found, err := c.Probe(context.Background(), KindMobileDevice, "ABC123")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "/JSSResource/mobiledevices/serialnumber/ABC123", gotPath)
	assert.Equal(t, "api", gotUser)

	found, err = c.Probe(context.Background(), KindComputer, "ABC123")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestClientUpdate(t *testing.T) {
	var gotBody string
	var gotMethod string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusCreated)
	}))
	defer ts.Close()

	c := NewClient(settingsFor(t, ts), time.Second)
	status, err := c.Update(context.Background(), KindComputer, "ABC123", []byte("<computer/>"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "<computer/>", gotBody)
}

func TestClientUpdateConnectionRefused(t *testing.T) {
	c := NewClient(Settings{
		Host: "http://127.0.0.1", Port: "1", Path: "",
		Username: "api", Password: "secret",
	}, 250*time.Millisecond)

	_, err := c.Update(context.Background(), KindComputer, "ABC123", nil)
	assert.Error(t, err)
}

func TestBaseURLJoinsHostPortPath(t *testing.T) {
	s := Settings{Host: "https://jss.example.com", Port: "8443", Path: "/jamf"}
	assert.Equal(t, "https://jss.example.com:8443/jamf", s.BaseURL())
}
