package useragent

import "testing"

const desktopChrome = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
const iphoneSafari = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"

func TestParseUserAgentDesktop(t *testing.T) {
	info := ParseUserAgent(desktopChrome)
	if info.Browser != "Chrome" {
		t.Errorf("Browser = %q, want Chrome", info.Browser)
	}
	if info.Device != "desktop" {
		t.Errorf("Device = %q, want the desktop fallback", info.Device)
	}
	if info.Mobile {
		t.Error("desktop agent flagged as mobile")
	}
}

func TestParseUserAgentMobile(t *testing.T) {
	info := ParseUserAgent(iphoneSafari)
	if !info.Mobile {
		t.Error("iPhone agent not flagged as mobile")
	}
	if info.Device == "" {
		t.Error("Device empty for a mobile agent")
	}
}
