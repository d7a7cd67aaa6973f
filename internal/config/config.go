package config

import (
	"os"
	"strings"
	"time"

	"crossprobe/internal/application"
	"crossprobe/internal/domain"
)

const DefaultBoardPath = "board.db"

// BoardPath returns the design snapshot path from CROSSPROBE_BOARD,
// falling back to DefaultBoardPath.
func BoardPath() string {
	if env := os.Getenv("CROSSPROBE_BOARD"); env != "" {
		return env
	}
	return DefaultBoardPath
}

// ScanConfig builds the token grammar configuration. CROSSPROBE_PREFIXES
// is a comma-separated designator prefix allowlist (e.g. "R,C,U,LED");
// unset means any letter run qualifies.
func ScanConfig() domain.ScanConfig {
	env := os.Getenv("CROSSPROBE_PREFIXES")
	if env == "" {
		return domain.ScanConfig{}
	}
	var prefixes []string
	for _, p := range strings.Split(env, ",") {
		if p = strings.TrimSpace(p); p != "" {
			prefixes = append(prefixes, p)
		}
	}
	return domain.ScanConfig{DesignatorPrefixes: prefixes}
}

// SettleDelay returns the feedback settle dwell from CROSSPROBE_SETTLE
// (a Go duration string), falling back to the default.
func SettleDelay() time.Duration {
	if env := os.Getenv("CROSSPROBE_SETTLE"); env != "" {
		if d, err := time.ParseDuration(env); err == nil && d > 0 {
			return d
		}
	}
	return application.DefaultSettleDelay
}

// Capabilities returns the host capability flags. Setting
// CROSSPROBE_NO_NATIVE_HIGHLIGHT forces the selection fallback, for
// hosts whose native highlight call is missing or broken.
func Capabilities() application.Capabilities {
	caps := application.DefaultCapabilities()
	if os.Getenv("CROSSPROBE_NO_NATIVE_HIGHLIGHT") != "" {
		caps.NativeHighlight = false
	}
	return caps
}
