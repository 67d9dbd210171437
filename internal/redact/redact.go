package redact

const (
	prefixLen = 10
	suffixLen = 4

	// hidden replaces values too short to show any prefix or suffix
	// without revealing most of the secret.
	hidden = "HIDDEN"
)

// Preview returns the display form of a secret: the first 10 and last 4
// characters with the middle elided. Values shorter than 14 characters
// are fully masked. Counting runes keeps multibyte values from being
// split mid-character.
func Preview(value string) string {
	runes := []rune(value)
	if len(runes) < prefixLen+suffixLen {
		return hidden
	}
	return string(runes[:prefixLen]) + "..." + string(runes[len(runes)-suffixLen:])
}

// Snapshot returns a copy of values with every secret replaced by its
// preview, suitable for logging and persistence.
func Snapshot(values map[string]string, isSecret func(string) bool) map[string]string {
	out := make(map[string]string, len(values))
	for name, value := range values {
		if isSecret(name) {
			out[name] = Preview(value)
			continue
		}
		out[name] = value
	}
	return out
}
