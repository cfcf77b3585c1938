package ui

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitEscapesSerialNumber(t *testing.T) {
	var got string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query().Get("serial_number")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"ok"}`))
	}))
	defer ts.Close()

	c := NewAPIClient(ts.URL)
	msg, err := c.Submit("AB C&12=3")
	require.NoError(t, err)
	assert.Equal(t, "ok", msg)
	assert.Equal(t, "AB C&12=3", got)
}
