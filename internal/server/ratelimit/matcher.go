package ratelimit

import "strings"

// MatchEndpoint returns the config for path and method, or nil when none applies.
// Exact paths win over prefix paths; among prefixes the longest wins.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	var best *EndpointConfig
	for i := range configs {
		c := &configs[i]
		if c.Method != method {
			continue
		}
		if c.Path == path {
			return c
		}
		if strings.HasSuffix(c.Path, "/") && strings.HasPrefix(path, c.Path) {
			if best == nil || len(c.Path) > len(best.Path) {
				best = c
			}
		}
	}
	return best
}
