package jss

import (
	"bytes"
	"encoding/xml"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>`

type general struct {
	Name     string `xml:"name,omitempty"`
	AssetTag string `xml:"asset_tag"`
}

type updateBody struct {
	XMLName xml.Name
	General general `xml:"general"`
}

// BuildPayload renders the update document. The name element is included only
// when non-empty; the asset_tag element is always present, even when blank.
func BuildPayload(kind DeviceKind, name, assetTag string) ([]byte, error) {
	body := updateBody{
		XMLName: xml.Name{Local: string(kind)},
		General: general{Name: name, AssetTag: assetTag},
	}
	var buf bytes.Buffer
	buf.WriteString(xmlHeader)
	if err := xml.NewEncoder(&buf).Encode(body); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
