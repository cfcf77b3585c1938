package dto

// WebhookEnvelope is the JSON body the JSS posts on enrollment events.
type WebhookEnvelope struct {
	Webhook struct {
		WebhookEvent string `json:"webhookEvent"`
	} `json:"webhook"`
	Event struct {
		SerialNumber string `json:"serialNumber"`
	} `json:"event"`
}
