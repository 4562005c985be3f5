package graph

import (
	"strings"
)

// normalizeNodeID creates a safe, lowercase node ID for graph visualization.
// It replaces special characters with underscores and converts to lowercase,
// ensuring IDs are valid for use in D3.js and other graph libraries.
// Example: "Temperature Sensor" becomes "temperature_sensor"
func normalizeNodeID(id string) string {
	normalized := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			return r
		}
		return '_'
	}, id)

	return strings.ToLower(normalized)
}
