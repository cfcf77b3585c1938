package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"assethook/app/dto"
	"assethook/app/services"
	"assethook/global"
)

type DeviceController struct {
	Devices    *services.DeviceService
	Reconciler *services.ReconcileService
}

func NewDeviceController(devices *services.DeviceService, reconciler *services.ReconcileService) *DeviceController {
	return &DeviceController{Devices: devices, Reconciler: reconciler}
}

func (c *DeviceController) List(w http.ResponseWriter, r *http.Request) {
	devices, err := c.Devices.ListAll()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list devices failed")
		return
	}
	out := make([]dto.DeviceResponse, 0, len(devices))
	for _, d := range devices {
		out = append(out, dto.DeviceResponse{
			ID:              d.ID,
			SerialNumber:    d.SerialNumber,
			AssetTag:        d.AssetTag,
			DeviceName:      d.DeviceName,
			LastSubmittedAt: d.LastSubmittedAt,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (c *DeviceController) Add(w http.ResponseWriter, r *http.Request) {
	var req dto.DeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if err := c.Devices.Add(req.SerialNumber, req.AssetTag, req.DeviceName); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeMessage(w, http.StatusCreated, "device added")
}

func (c *DeviceController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(r.URL.Query().Get("id"), 10, 32)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := c.Devices.Delete(uint(id)); err != nil {
		writeError(w, http.StatusInternalServerError, "delete failed")
		return
	}
	writeMessage(w, http.StatusOK, "device deleted from the local database")
}

// Import takes a multipart CSV upload, column order
// serial_number,asset_tag,device_name.
func (c *DeviceController) Import(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file")
		return
	}
	defer file.Close()
	count, err := c.Devices.ImportCSV(file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "import failed")
		return
	}
	writeMessage(w, http.StatusOK, fmt.Sprintf("imported %d devices from %s", count, header.Filename))
}

// Submit triggers reconciliation for one serial with no known type; the JSS
// is probed for the device kind.
func (c *DeviceController) Submit(w http.ResponseWriter, r *http.Request) {
	serial := r.URL.Query().Get("serial_number")
	if serial == "" {
		writeError(w, http.StatusBadRequest, "serial number not passed")
		return
	}
	outcome, err := c.Reconciler.Submit(r.Context(), serial, nil)
	if err != nil {
		global.Logger.Error().Err(err).Str("serial", serial).Msg("manual submit failed")
		writeError(w, http.StatusInternalServerError, "submit failed")
		return
	}
	writeMessage(w, http.StatusOK, outcome.Message())
}

func (c *DeviceController) SubmitAll(w http.ResponseWriter, r *http.Request) {
	summary, err := c.Reconciler.SubmitAll(r.Context())
	if err != nil {
		global.Logger.Error().Err(err).Msg("bulk submit failed")
		writeError(w, http.StatusInternalServerError, "bulk submit failed")
		return
	}
	writeMessage(w, http.StatusOK, summary)
}
