package model

// AlertClass constants for the two broadcast screens
const (
	AlertClassEmergency = "emergency"
	AlertClassWarning   = "warning"
)

// Emergency kinds
const (
	KindFire       = "Fire"
	KindEarthquake = "Earthquake"
	KindFlood      = "Flood"
	KindMedical    = "Medical"
	KindSecurity   = "Security"
	KindWeather    = "Weather"
)

// Warning kinds
const (
	KindMaintenance = "Maintenance"
	KindTraffic     = "Traffic"
	KindEvent       = "Event"
	KindAdvisory    = "Advisory"
	KindUpdate      = "Update"
)

// Message caps per class. Advisory only; nothing truncates
const (
	EmergencyMessageCap = 500
	WarningMessageCap   = 1000
)

// TargetingMode decides which targets count toward a sendable alert
type TargetingMode string

const (
	TargetZones         TargetingMode = "zones"
	TargetZonesAndPaths TargetingMode = "zones_and_paths"
	TargetMapPoints     TargetingMode = "map_points"
)

// AlertClassConfig per-screen configuration, constructed once when the screen is built
type AlertClassConfig struct {
	Name         string
	DefaultKinds []string
	InitialKind  string
	MessageCap   int
	Targeting    TargetingMode
}

// GetEmergencyKinds default emergency kinds in display order
func GetEmergencyKinds() []string {
	return []string{KindFire, KindEarthquake, KindFlood, KindMedical, KindSecurity, KindWeather}
}

// GetWarningKinds default warning kinds in display order
func GetWarningKinds() []string {
	return []string{KindWeather, KindMaintenance, KindTraffic, KindEvent, KindAdvisory, KindUpdate}
}

// EmergencyClass configuration for the emergency screen
func EmergencyClass() AlertClassConfig {
	return AlertClassConfig{
		Name:         AlertClassEmergency,
		DefaultKinds: GetEmergencyKinds(),
		InitialKind:  KindFire,
		MessageCap:   EmergencyMessageCap,
		Targeting:    TargetZones,
	}
}

// WarningClass configuration for the warning screen
func WarningClass() AlertClassConfig {
	return AlertClassConfig{
		Name:         AlertClassWarning,
		DefaultKinds: GetWarningKinds(),
		InitialKind:  KindWeather,
		MessageCap:   WarningMessageCap,
		Targeting:    TargetZonesAndPaths,
	}
}

// GetAlertClass looks up a class configuration by name
func GetAlertClass(name string) (AlertClassConfig, bool) {
	switch name {
	case AlertClassEmergency:
		return EmergencyClass(), true
	case AlertClassWarning:
		return WarningClass(), true
	default:
		return AlertClassConfig{}, false
	}
}

// GetAllAlertClasses lists the supported class names
func GetAllAlertClasses() []string {
	return []string{AlertClassEmergency, AlertClassWarning}
}
