// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package cable

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sosodev/duration"
)

// EnvConfig is the result of parsing well-known CABLE_* environment
// variables or a connection string: a URL to dial, the Identity to connect
// with, and any ClientOptions the input overrode.
type EnvConfig struct {
	URL      string
	Identity Identity
	Options  []ClientOption
}

// FromEnv parses CABLE_* environment variables into an EnvConfig. It
// returns an error only when a recognized variable's value fails to parse;
// an unset variable leaves the corresponding setting at Cable's documented
// default, so a caller can mix environment configuration with explicit
// ClientOptions passed to NewClient.
func FromEnv() (*EnvConfig, error) {
	settings := make(map[string]string)
	for _, env := range os.Environ() {
		idx := strings.IndexByte(env, '=')
		if idx < 0 {
			continue
		}
		key, val := env[:idx], env[idx+1:]
		if !strings.HasPrefix(key, "CABLE_") {
			continue
		}
		name := strings.ReplaceAll(strings.TrimPrefix(key, "CABLE_"), "_", "")
		settings[strings.ToLower(name)] = val
	}
	return settingsToConfig(settings)
}

// FromConnectionString parses a semicolon-delimited key=value connection
// string, e.g. "URL=wss://cable.example/ws;ClientID=worker-1;PingInterval=PT30S",
// into an EnvConfig. Keys are matched case-insensitively.
func FromConnectionString(connStr string) (*EnvConfig, error) {
	settings := make(map[string]string)
	for _, param := range strings.Split(strings.TrimSuffix(connStr, ";"), ";") {
		if param == "" {
			continue
		}
		kv := strings.SplitN(param, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("cable: malformed connection string segment %q", param)
		}
		settings[strings.ToLower(strings.TrimSpace(kv[0]))] = strings.TrimSpace(kv[1])
	}
	return settingsToConfig(settings)
}

// settingsToConfig applies a lowercased key-value map, shared by FromEnv
// and FromConnectionString so the two formats stay in lockstep.
func settingsToConfig(settings map[string]string) (*EnvConfig, error) {
	cfg := &EnvConfig{}

	if v, ok := settings["url"]; ok {
		cfg.URL = v
	}
	if v, ok := settings["userid"]; ok {
		cfg.Identity.UserID = v
	}
	if v, ok := settings["clientid"]; ok {
		cfg.Identity.ClientID = v
	}
	if v, ok := settings["password"]; ok {
		cfg.Identity.Password = v
	}

	if v, ok := settings["pinginterval"]; ok {
		d, err := parseSettingDuration("PingInterval", v)
		if err != nil {
			return nil, err
		}
		cfg.Options = append(cfg.Options, WithPingInterval(d))
	}
	if v, ok := settings["pingtimeout"]; ok {
		d, err := parseSettingDuration("PingTimeout", v)
		if err != nil {
			return nil, err
		}
		cfg.Options = append(cfg.Options, WithPingTimeout(d))
	}
	if v, ok := settings["requesttimeout"]; ok {
		d, err := parseSettingDuration("RequestTimeout", v)
		if err != nil {
			return nil, err
		}
		cfg.Options = append(cfg.Options, WithRequestTimeout(d))
	}
	if v, ok := settings["messagetimeout"]; ok {
		d, err := parseSettingDuration("MessageTimeout", v)
		if err != nil {
			return nil, err
		}
		cfg.Options = append(cfg.Options, WithMessageTimeout(d))
	}
	if v, ok := settings["messagemaxretry"]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("cable: parsing MessageMaxRetry: %w", err)
		}
		cfg.Options = append(cfg.Options, WithMessageMaxRetry(n))
	}

	return cfg, nil
}

// parseSettingDuration parses val as an ISO-8601 duration, the format both
// environment and connection-string configuration use for timeout fields.
func parseSettingDuration(name, val string) (time.Duration, error) {
	d, err := duration.Parse(val)
	if err != nil {
		return 0, fmt.Errorf("cable: parsing %s: %w", name, err)
	}
	return d.ToTimeDuration(), nil
}
