package ratelimit

import "strings"

// unlimited marks an endpoint that is never rate limited.
var unlimited = EndpointConfig{}

// MatchEndpoint resolves the config for a request path and method.
// Exact matches win over prefix matches, so "/forecasts/export" can
// carry a stricter tier than a "/forecasts/" prefix rule. Prefix rules
// are the entries whose Path ends in "/". Returns nil when nothing
// matches, in which case the caller falls back to the default limit.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	// The health check stays reachable for probes regardless of config.
	if path == "/health" && method == "GET" {
		return &unlimited
	}

	for i := range configs {
		if configs[i].Method == method && configs[i].Path == path {
			return &configs[i]
		}
	}

	for i := range configs {
		c := &configs[i]
		if c.Method == method && strings.HasSuffix(c.Path, "/") && strings.HasPrefix(path, c.Path) {
			return c
		}
	}

	return nil
}
