package useragent

import "github.com/mileusna/useragent"

func ParseUserAgent(userAgent string) *DeviceInfo {
	parsed := useragent.Parse(userAgent)
	device := parsed.Device
	if device == "" {
		// the library leaves Device empty for desktop browsers
		switch {
		case parsed.Mobile:
			device = "mobile"
		case parsed.Tablet:
			device = "tablet"
		case parsed.Desktop:
			device = "desktop"
		}
	}
	return &DeviceInfo{
		Bot:     parsed.Bot,
		Mobile:  parsed.Mobile,
		OS:      parsed.OS,
		Device:  device,
		Browser: parsed.Name,
		Version: parsed.VersionNoFull(),
	}
}
