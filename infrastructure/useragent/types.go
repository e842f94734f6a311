package useragent

// DeviceInfo is the slice of user agent detail a login event records.
type DeviceInfo struct {
	Bot     bool
	Mobile  bool
	OS      string
	Device  string
	Browser string
	Version string
}
