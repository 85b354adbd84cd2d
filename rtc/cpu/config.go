package cpu

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/achilleasa/minimal/rtc"
)

// Device options parsed from the config string.
type deviceConfig struct {
	// Verbosity of lifecycle logging; 0 disables it.
	verbose int
}

// Parse a config string of comma separated key=value pairs, e.g. "verbose=1".
func parseConfig(config string) (deviceConfig, error) {
	var cfg deviceConfig

	for _, field := range strings.Split(config, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		tokens := strings.SplitN(field, "=", 2)
		if len(tokens) != 2 {
			return cfg, &rtc.Error{Code: rtc.InvalidArgument, Msg: fmt.Sprintf("malformed config entry %q; expected key=value", field)}
		}
		key, val := strings.TrimSpace(tokens[0]), strings.TrimSpace(tokens[1])

		switch key {
		case "verbose":
			level, err := strconv.Atoi(val)
			if err != nil || level < 0 {
				return cfg, &rtc.Error{Code: rtc.InvalidArgument, Msg: fmt.Sprintf("invalid verbose level %q", val)}
			}
			cfg.verbose = level
		default:
			return cfg, &rtc.Error{Code: rtc.InvalidArgument, Msg: fmt.Sprintf("unknown config key %q", key)}
		}
	}

	return cfg, nil
}
