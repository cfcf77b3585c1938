package repo

import (
	"time"

	"assethook/app/models"

	"gorm.io/gorm"
)

type DeviceRepository struct{ db *gorm.DB }

func NewDeviceRepository(db *gorm.DB) *DeviceRepository { return &DeviceRepository{db: db} }

func (r *DeviceRepository) FindBySerial(serial string) (*models.Device, error) {
	var d models.Device
	if err := r.db.Where("serial_number = ?", serial).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

// ListAll returns devices newest first, matching the order the device table
// has always been shown in.
func (r *DeviceRepository) ListAll() ([]models.Device, error) {
	var devices []models.Device
	if err := r.db.Order("id desc").Find(&devices).Error; err != nil {
		return nil, err
	}
	return devices, nil
}

func (r *DeviceRepository) Create(d *models.Device) error {
	return r.db.Create(d).Error
}

func (r *DeviceRepository) DeleteByID(id uint) error {
	return r.db.Delete(&models.Device{}, id).Error
}

// MarkSubmitted records the submission time. This is the only mutation the
// reconciliation flow performs, and only after a confirmed 201.
func (r *DeviceRepository) MarkSubmitted(serial string, at time.Time) error {
	return r.db.Model(&models.Device{}).
		Where("serial_number = ?", serial).
		Update("last_submitted_at", at).Error
}
