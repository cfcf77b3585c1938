package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitRequiresSerialParam(t *testing.T) {
	ctrl := &DeviceController{}

	req := httptest.NewRequest(http.MethodGet, "/submit_inventory", nil)
	w := httptest.NewRecorder()
	ctrl.Submit(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddRejectsInvalidBody(t *testing.T) {
	ctrl := &DeviceController{}

	req := httptest.NewRequest(http.MethodPost, "/devices", strings.NewReader("not json"))
	w := httptest.NewRecorder()
	ctrl.Add(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteRejectsBadID(t *testing.T) {
	ctrl := &DeviceController{}

	req := httptest.NewRequest(http.MethodDelete, "/devices?id=abc", nil)
	w := httptest.NewRecorder()
	ctrl.Delete(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
