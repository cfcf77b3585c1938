package services

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"assethook/app/models"
	"assethook/app/repo"
	"assethook/global"
)

type DeviceService struct{ devices *repo.DeviceRepository }

func NewDeviceService(devices *repo.DeviceRepository) *DeviceService {
	return &DeviceService{devices: devices}
}

func (s *DeviceService) ListAll() ([]models.Device, error) {
	return s.devices.ListAll()
}

func (s *DeviceService) Add(serial, assetTag, deviceName string) error {
	serial = strings.TrimSpace(serial)
	if serial == "" {
		return errors.New("serial number required")
	}
	return s.devices.Create(&models.Device{
		SerialNumber: serial,
		AssetTag:     assetTag,
		DeviceName:   deviceName,
	})
}

func (s *DeviceService) Delete(id uint) error {
	return s.devices.DeleteByID(id)
}

// ImportCSV reads rows of serial_number,asset_tag,device_name. The first row
// is a header and is skipped. Rows with fewer than three fields are skipped
// silently rather than aborting the batch. Vertical tabs and spaces are
// stripped from serials and asset tags; old Filemaker exports carry both.
func (s *DeviceService) ImportCSV(r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	imported := 0
	header := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// unparseable row, keep going
			continue
		}
		if header {
			header = false
			continue
		}
		if len(record) < 3 {
			continue
		}
		serial := cleanField(record[0])
		assetTag := cleanField(record[1])
		deviceName := strings.ReplaceAll(record[2], "\x0b", "")
		if serial == "" {
			continue
		}
		if err := s.devices.Create(&models.Device{
			SerialNumber: serial,
			AssetTag:     assetTag,
			DeviceName:   deviceName,
		}); err != nil {
			global.Logger.Warn().Err(err).Str("serial", serial).Msg("csv row not imported")
			continue
		}
		imported++
	}
	return imported, nil
}

func cleanField(v string) string {
	v = strings.ReplaceAll(v, "\x0b", "")
	return strings.ReplaceAll(v, " ", "")
}
