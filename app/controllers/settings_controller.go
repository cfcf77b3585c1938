package controllers

import (
	"encoding/json"
	"net/http"

	"assethook/app/dto"
	"assethook/app/services"
)

type SettingsController struct {
	Settings *services.SettingsService
}

func NewSettingsController(settings *services.SettingsService) *SettingsController {
	return &SettingsController{Settings: settings}
}

func (c *SettingsController) Get(w http.ResponseWriter, r *http.Request) {
	values, err := c.Settings.Load()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "load settings failed")
		return
	}
	writeJSON(w, http.StatusOK, values)
}

// Save replaces the whole settings set; every field is required on save.
func (c *SettingsController) Save(w http.ResponseWriter, r *http.Request) {
	var form dto.SettingsForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if err := c.Settings.Save(form.Map()); err != nil {
		writeError(w, http.StatusInternalServerError, "save settings failed")
		return
	}
	writeMessage(w, http.StatusOK, "settings saved")
}
