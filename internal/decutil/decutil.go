// Package decutil holds small helpers shared by the structured-text
// decoders (§4.2.1): sorted map-key iteration (Go map order is random;
// decoder output needs to be reproducible) and the read-then-parse
// wrapper every decoder's ExtractPackages uses.
package decutil

import (
	"context"
	"log/slog"
	"os"
	"sort"
)

// SortedKeys returns m's keys in sorted order, for deterministic
// iteration over a decoded JSON/YAML/TOML object.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ReadFile reads path, logging a warning through ctx's logger on
// failure (§7 "Read error"). ok is false on failure.
func ReadFile(ctx context.Context, datasourceID, path string) (data []byte, ok bool) {
	b, err := os.ReadFile(path)
	if err != nil {
		slog.WarnContext(ctx, "decoder: read failed", "datasource_id", datasourceID, "path", path, "error", err)
		return nil, false
	}
	return b, true
}
