package repo

import (
	"assethook/app/models"

	"gorm.io/gorm"
)

// SettingNames is the fixed key set of the settings table.
var SettingNames = []string{
	"jsshost", "jss_path", "jss_port", "jss_username", "jss_password", "set_name",
}

type SettingsRepository struct{ db *gorm.DB }

func NewSettingsRepository(db *gorm.DB) *SettingsRepository { return &SettingsRepository{db: db} }

// EnsureDefaults seeds one empty row per setting name so reads always see the
// full key set.
func (r *SettingsRepository) EnsureDefaults() error {
	for _, name := range SettingNames {
		var count int64
		if err := r.db.Model(&models.Setting{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := r.db.Create(&models.Setting{Name: name, Value: ""}).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *SettingsRepository) LoadAll() (map[string]string, error) {
	var rows []models.Setting
	if err := r.db.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.Name] = row.Value
	}
	return out, nil
}

// SaveAll writes every known setting in one transaction.
func (r *SettingsRepository) SaveAll(values map[string]string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, name := range SettingNames {
			if err := tx.Model(&models.Setting{}).
				Where("name = ?", name).
				Update("value", values[name]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
