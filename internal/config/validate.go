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

// NormalizeAndValidate fills the gaps a hand-edited file tends to leave and
// reports anything that cannot be defaulted away.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	// ---- Defaults ----

	if out.Auth.SecretEnv == "" {
		out.Auth.SecretEnv = "SKILLBRIDGE_AUTH_SECRET"
	}
	if out.Auth.TokenTTLMinutes == 0 {
		out.Auth.TokenTTLMinutes = 60
	}
	if out.Recommend.DefaultLimit == 0 {
		out.Recommend.DefaultLimit = 10
	}
	if out.Recommend.Parallelism == 0 {
		out.Recommend.Parallelism = 4
	}
	if out.HTTP.RatePerSecond == 0 {
		out.HTTP.RatePerSecond = 10
	}
	if out.HTTP.Burst == 0 {
		out.HTTP.Burst = 20
	}
	if out.Sessions.ExpireSweepSeconds == 0 {
		out.Sessions.ExpireSweepSeconds = 300
	}
	out.Auth.SecretEnv = strings.TrimSpace(out.Auth.SecretEnv)

	// ---- Validation rules ----

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535, got %d", out.App.Port)
	}
	if out.Auth.TokenTTLMinutes < 0 {
		res.addErr("auth.token_ttl_minutes must be >= 0")
	} else if out.Auth.TokenTTLMinutes > 24*60 {
		res.addWarn("auth.token_ttl_minutes is very high (%d); tokens live longer than a day.", out.Auth.TokenTTLMinutes)
	}
	if out.Recommend.DefaultLimit < 1 || out.Recommend.DefaultLimit > 50 {
		res.addErr("recommend.default_limit must be 1..50")
	}
	if out.Recommend.Parallelism < 1 {
		res.addErr("recommend.parallelism must be >= 1")
	} else if out.Recommend.Parallelism > 64 {
		res.addWarn("recommend.parallelism is very high (%d); scoring is cheap per candidate.", out.Recommend.Parallelism)
	}
	if out.HTTP.RatePerSecond < 0 {
		res.addErr("http.rate_per_second must be >= 0")
	}
	if out.HTTP.Burst < 1 {
		res.addErr("http.burst must be >= 1")
	}
	if out.Sessions.ExpireSweepSeconds < 10 {
		res.addWarn("sessions.expire_sweep_seconds below 10 hammers the database for no benefit.")
	}

	return out, res
}
