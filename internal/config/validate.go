package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a normalized copy plus structured errors and
// warnings the UI can render.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	out.AI.Provider = strings.ToLower(strings.TrimSpace(out.AI.Provider))

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}

	if out.Scrape.TimeoutSeconds < 0 {
		res.addErr("scrape.timeout_seconds must be >= 0")
	} else if out.Scrape.TimeoutSeconds > 120 {
		res.addWarn("scrape.timeout_seconds is very high (%d); slow job boards will hold requests open.", out.Scrape.TimeoutSeconds)
	}

	if out.Scrape.HostRatePerSec < 0 {
		res.addErr("scrape.host_rate_per_sec must be >= 0")
	}
	if out.Scrape.HostRateBurst < 0 {
		res.addErr("scrape.host_rate_burst must be >= 0")
	}
	if out.Scrape.HostRatePerSec > 5 {
		res.addWarn("scrape.host_rate_per_sec is high (%.1f); ATS hosts may rate-limit or block.", out.Scrape.HostRatePerSec)
	}

	if out.Sessions.RetentionDays < 0 {
		res.addErr("sessions.retention_days must be >= 0")
	}
	if out.Sessions.PruneIntervalMinutes < 0 {
		res.addErr("sessions.prune_interval_minutes must be >= 0")
	}
	if out.Sessions.RetentionDays > 0 && out.Sessions.RetentionDays < 7 {
		res.addWarn("sessions.retention_days is low (%d); saved practice sessions will disappear quickly.", out.Sessions.RetentionDays)
	}

	return out, res
}
