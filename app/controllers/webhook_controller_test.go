package controllers

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"assethook/app/models"
	"assethook/app/repo"
	"assethook/app/services"
	"assethook/global"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	global.Logger = zerolog.Nop()
	os.Exit(m.Run())
}

// recordingJSS accepts every update with 201 and remembers what was asked.
type recordingJSS struct {
	mu      sync.Mutex
	probes  []string
	updates []string
}

func (f *recordingJSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch r.Method {
	case http.MethodGet:
		f.probes = append(f.probes, r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	case http.MethodPut:
		body, _ := io.ReadAll(r.Body)
		f.updates = append(f.updates, string(body))
		w.WriteHeader(http.StatusCreated)
	}
}

func newWebhookFixture(t *testing.T) (*WebhookController, *recordingJSS) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.Device{}, &models.Setting{}))

	settingsRepo := repo.NewSettingsRepository(gdb)
	require.NoError(t, settingsRepo.EnsureDefaults())

	fake := &recordingJSS{}
	ts := httptest.NewServer(fake)
	t.Cleanup(ts.Close)
	u, err := url.Parse(ts.URL)
	require.NoError(t, err)

	settingsSvc := services.NewSettingsService(settingsRepo)
	require.NoError(t, settingsSvc.Save(map[string]string{
		"jsshost":      "http://" + u.Hostname(),
		"jss_port":     u.Port(),
		"jss_path":     "",
		"jss_username": "api",
		"jss_password": "secret",
		"set_name":     "false",
	}))

	deviceRepo := repo.NewDeviceRepository(gdb)
	require.NoError(t, deviceRepo.Create(&models.Device{SerialNumber: "ABC123", AssetTag: "AT-1"}))

	reconciler := services.NewReconcileService(deviceRepo, settingsSvc, nil, 0, time.Second, time.Millisecond)
	return NewWebhookController(reconciler), fake
}

func postWebhook(ctrl *WebhookController, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
	w := httptest.NewRecorder()
	ctrl.Handle(w, req)
	return w
}

func TestWebhookComputerEventDispatchesWithoutProbes(t *testing.T) {
	ctrl, fake := newWebhookFixture(t)

	w := postWebhook(ctrl, `{"webhook":{"webhookEvent":"ComputerAdded"},"event":{"serialNumber":"ABC123"}}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())

	assert.Empty(t, fake.probes, "known type must skip probing")
	require.Len(t, fake.updates, 1)
	assert.Contains(t, fake.updates[0], "<computer>")
}

func TestWebhookMobileEventDispatches(t *testing.T) {
	ctrl, fake := newWebhookFixture(t)

	w := postWebhook(ctrl, `{"webhook":{"webhookEvent":"MobileDeviceEnrolled"},"event":{"serialNumber":"ABC123"}}`)
	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, fake.updates, 1)
	assert.Contains(t, fake.updates[0], "<mobile_device>")
}

func TestWebhookUnknownEventIsForbidden(t *testing.T) {
	ctrl, fake := newWebhookFixture(t)

	w := postWebhook(ctrl, `{"webhook":{"webhookEvent":"Unknown"},"event":{"serialNumber":"ABC123"}}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Invalid Webhook format", w.Body.String())
	assert.Empty(t, fake.updates)
}

func TestWebhookEmptyBodyIsBadRequest(t *testing.T) {
	ctrl, fake := newWebhookFixture(t)

	w := postWebhook(ctrl, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, w.Body.String())

	w = postWebhook(ctrl, "{}")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, fake.updates)
}

func TestWebhookAcksEvenWhenDeviceUnknown(t *testing.T) {
	ctrl, fake := newWebhookFixture(t)

	// the webhook caller is never blocked on the reconciliation result
	w := postWebhook(ctrl, `{"webhook":{"webhookEvent":"ComputerAdded"},"event":{"serialNumber":"NOPE"}}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, fake.updates)
}
