package services

import (
	"strings"

	"assethook/app/jss"
	"assethook/app/repo"
)

type SettingsService struct{ settings *repo.SettingsRepository }

func NewSettingsService(settings *repo.SettingsRepository) *SettingsService {
	return &SettingsService{settings: settings}
}

func (s *SettingsService) Load() (map[string]string, error) {
	return s.settings.LoadAll()
}

// Save writes the full key set. The JSS host is stored scheme-prefixed;
// https is assumed when no scheme was given.
func (s *SettingsService) Save(values map[string]string) error {
	stored := make(map[string]string, len(values))
	for k, v := range values {
		stored[k] = v
	}
	if host := stored["jsshost"]; host != "" && !strings.Contains(host, "http") {
		stored["jsshost"] = "https://" + host
	}
	return s.settings.SaveAll(stored)
}

// Resolve converts stored settings into connection parameters. ok is false
// when any of the six values is empty; no network call may be made then.
func Resolve(values map[string]string) (conn jss.Settings, setName bool, ok bool) {
	for _, name := range repo.SettingNames {
		if values[name] == "" {
			return jss.Settings{}, false, false
		}
	}
	conn = jss.Settings{
		Host:     values["jsshost"],
		Port:     values["jss_port"],
		Path:     values["jss_path"],
		Username: values["jss_username"],
		Password: values["jss_password"],
	}
	return conn, strings.EqualFold(values["set_name"], "true"), true
}
