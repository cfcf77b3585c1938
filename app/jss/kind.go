package jss

// DeviceKind is the JSS record type a serial number resolves to. Its value is
// the XML root element name the API expects.
type DeviceKind string

const (
	KindComputer     DeviceKind = "computer"
	KindMobileDevice DeviceKind = "mobile_device"
)

// Resource is the JSSResource path segment for the kind.
func (k DeviceKind) Resource() string {
	if k == KindMobileDevice {
		return "mobiledevices"
	}
	return "computers"
}

func (k DeviceKind) String() string { return string(k) }

// ParseKind maps a stored or cached value back to a kind.
func ParseKind(s string) (DeviceKind, bool) {
	switch DeviceKind(s) {
	case KindComputer:
		return KindComputer, true
	case KindMobileDevice:
		return KindMobileDevice, true
	}
	return "", false
}

// ProbeOrder is the sequence type probes are tried in: mobile devices first,
// then computers, short-circuiting on the first 200.
var ProbeOrder = []DeviceKind{KindMobileDevice, KindComputer}
