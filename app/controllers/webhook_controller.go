package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"assethook/app/dto"
	"assethook/app/jss"
	"assethook/app/services"
	"assethook/global"
)

type WebhookController struct {
	Reconciler *services.ReconcileService
}

func NewWebhookController(reconciler *services.ReconcileService) *WebhookController {
	return &WebhookController{Reconciler: reconciler}
}

// Handle accepts JSS enrollment webhooks. The event type prefix picks the
// device kind, so the reconciler never has to probe on this path. The caller
// gets an empty 200 on dispatch no matter how the submission itself went;
// the outcome only shows up in the logs.
func (c *WebhookController) Handle(w http.ResponseWriter, r *http.Request) {
	var env dto.WebhookEnvelope
	if err := json.NewDecoder(r.Body).Decode(&env); err != nil || env == (dto.WebhookEnvelope{}) {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var kind jss.DeviceKind
	switch {
	case strings.HasPrefix(env.Webhook.WebhookEvent, "Computer"):
		kind = jss.KindComputer
	case strings.HasPrefix(env.Webhook.WebhookEvent, "Mobile"):
		kind = jss.KindMobileDevice
	default:
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("Invalid Webhook format"))
		return
	}

	serial := env.Event.SerialNumber
	outcome, err := c.Reconciler.Submit(r.Context(), serial, &kind)
	if err != nil {
		global.Logger.Error().Err(err).Str("serial", serial).Msg("webhook submit failed")
	} else {
		global.Logger.Info().
			Str("serial", serial).
			Str("event", env.Webhook.WebhookEvent).
			Str("result", outcome.Message()).
			Msg("webhook handled")
	}
	w.WriteHeader(http.StatusOK)
}
