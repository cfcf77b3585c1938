package router

import (
	"net/http"

	"assethook/app/controllers"
	"assethook/app/middleware"
)

func NewRouter(authCtrl *controllers.AuthController, webhookCtrl *controllers.WebhookController, deviceCtrl *controllers.DeviceController, settingsCtrl *controllers.SettingsController, mw *middleware.Auth) http.Handler {
	mux := http.NewServeMux()

	// public: the JSS posts here without credentials
	mux.HandleFunc("POST /webhook", webhookCtrl.Handle)
	mux.HandleFunc("POST /login", authCtrl.Login)

	// management endpoints behind the shared admin credential
	mux.Handle("GET /devices", mw.RequireAuth(http.HandlerFunc(deviceCtrl.List)))
	mux.Handle("POST /devices", mw.RequireAuth(http.HandlerFunc(deviceCtrl.Add)))
	mux.Handle("DELETE /devices", mw.RequireAuth(http.HandlerFunc(deviceCtrl.Delete)))
	mux.Handle("POST /devices/import", mw.RequireAuth(http.HandlerFunc(deviceCtrl.Import)))
	mux.Handle("GET /submit_inventory", mw.RequireAuth(http.HandlerFunc(deviceCtrl.Submit)))
	mux.Handle("GET /submit_all", mw.RequireAuth(http.HandlerFunc(deviceCtrl.SubmitAll)))
	mux.Handle("GET /settings", mw.RequireAuth(http.HandlerFunc(settingsCtrl.Get)))
	mux.Handle("POST /settings", mw.RequireAuth(http.HandlerFunc(settingsCtrl.Save)))

	return mux
}
