package hooks

import (
	"fmt"
	"strings"

	"github.com/raphi011/create-whop/internal/hookerr"
)

// ParseEnv parses a slice of "key=value" strings into a map.
// Returns an error if any entry doesn't contain "=".
func ParseEnv(envSlice []string) (map[string]string, error) {
	result := make(map[string]string)
	for _, e := range envSlice {
		key, value, ok := strings.Cut(e, "=")
		if !ok {
			return nil, hookerr.Wrap(hookerr.InvalidArgument, "parse --arg", fmt.Errorf("invalid env format %q: expected KEY=VALUE", e))
		}
		if key == "" {
			return nil, hookerr.Wrap(hookerr.InvalidArgument, "parse --arg", fmt.Errorf("invalid env format %q: key cannot be empty", e))
		}
		result[key] = value
	}
	return result, nil
}
