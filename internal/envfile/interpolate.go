package envfile

import (
	"fmt"
	"os"
	"regexp"

	"github.com/amaumene/envrun/internal/domain"
)

// maxExpansionDepth bounds nested ${VAR} resolution so that long
// reference chains fail instead of recursing without limit.
const maxExpansionDepth = 10

var referencePattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Interpolate resolves ${VAR} references in every value of vars, in
// place. References resolve against vars first, then against the
// process environment; unknown names resolve to the empty string.
// Self-referential or cyclic chains are rejected.
func Interpolate(vars map[string]string) error {
	// Expansion reads from a frozen copy so the result does not depend
	// on map iteration order.
	raw := make(map[string]string, len(vars))
	for key, value := range vars {
		raw[key] = value
	}

	for key := range vars {
		expanded, err := expand(raw, key, raw[key], 0)
		if err != nil {
			return err
		}
		vars[key] = expanded
	}
	return nil
}

func expand(vars map[string]string, origin, value string, depth int) (string, error) {
	if depth > maxExpansionDepth {
		return "", fmt.Errorf("expanding %s: depth limit exceeded: %w", origin, domain.ErrCyclicReference)
	}

	var expandErr error
	result := referencePattern.ReplaceAllStringFunc(value, func(match string) string {
		if expandErr != nil {
			return ""
		}

		name := match[2 : len(match)-1]
		if name == origin {
			expandErr = fmt.Errorf("expanding %s: %w", origin, domain.ErrCyclicReference)
			return ""
		}

		if nested, ok := vars[name]; ok {
			resolved, err := expand(vars, origin, nested, depth+1)
			if err != nil {
				expandErr = err
				return ""
			}
			return resolved
		}
		return os.Getenv(name)
	})

	if expandErr != nil {
		return "", expandErr
	}
	return result, nil
}
