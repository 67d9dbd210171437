package envfile

import (
	"fmt"
	"os"
	"strings"

	"github.com/amaumene/envrun/internal/domain"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// dollarSentinel temporarily replaces "$" while godotenv parses the
// file. godotenv expands references itself, against the file map only,
// which loses references to the process environment and silently
// empties cycles; masking the dollar sign leaves all resolution to
// Interpolate.
const dollarSentinel = "\x00envrun:dollar\x00"

// Load parses a dotenv file, interpolates ${VAR} references and sets
// every resulting pair into the process environment. Duplicate keys in
// the file follow last-write-wins semantics. The parsed map is returned
// so callers can inspect values without re-reading the environment.
func Load(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %v: %w", path, err, domain.ErrConfigNotFound)
	}

	masked := strings.ReplaceAll(string(data), "$", dollarSentinel)
	vars, err := godotenv.Parse(strings.NewReader(masked))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	for key, value := range vars {
		vars[key] = strings.ReplaceAll(value, dollarSentinel, "$")
	}

	if err := Interpolate(vars); err != nil {
		return nil, fmt.Errorf("interpolating %s: %w", path, err)
	}

	for key, value := range vars {
		if err := os.Setenv(key, value); err != nil {
			return nil, fmt.Errorf("setting %s: %w", key, err)
		}
	}

	log.WithFields(log.Fields{
		"path": path,
		"keys": len(vars),
	}).Info("environment file loaded")

	return vars, nil
}

// Export collects the current values of the given variable names from
// the process environment and returns them as a name to value map.
// Names that are not set anywhere are omitted. The returned map is the
// exact environment slice the dispatched command will observe for the
// allow-list.
func Export(names []string) map[string]string {
	exported := make(map[string]string, len(names))
	for _, name := range names {
		value, ok := os.LookupEnv(name)
		if !ok {
			log.WithField("name", name).Warn("allow-listed variable not set")
			continue
		}
		exported[name] = value
	}
	return exported
}
