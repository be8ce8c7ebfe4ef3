package server

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/league-stats-service/internal/providers"
)

// normalizeProviderName returns a lower-cased provider name, deriving it from the instance when
// none is configured. Metrics and logs key on this name.
func normalizeProviderName(raw string, provider providers.SeasonProvider) string {
	if raw = strings.TrimSpace(raw); raw != "" {
		return strings.ToLower(raw)
	}
	if provider != nil {
		return strings.ToLower(fmt.Sprintf("%T", provider))
	}
	return "provider"
}
