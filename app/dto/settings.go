package dto

// SettingsForm carries the full settings set; saves are wholesale, so every
// field must be present.
type SettingsForm struct {
	JSSHost     string `json:"jsshost"`
	JSSPath     string `json:"jss_path"`
	JSSPort     string `json:"jss_port"`
	JSSUsername string `json:"jss_username"`
	JSSPassword string `json:"jss_password"`
	SetName     string `json:"set_name"`
}

func (f SettingsForm) Map() map[string]string {
	return map[string]string{
		"jsshost":      f.JSSHost,
		"jss_path":     f.JSSPath,
		"jss_port":     f.JSSPort,
		"jss_username": f.JSSUsername,
		"jss_password": f.JSSPassword,
		"set_name":     f.SetName,
	}
}
