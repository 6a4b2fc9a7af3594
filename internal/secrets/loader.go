package secrets

import (
	"os"
	"strings"
)

// Source describes where a credential may be found, in resolution order:
// a process environment variable first, then an application secret-store file.
type Source struct {
	// Env is the environment variable name, e.g. "GROQ_API_KEY".
	Env string
	// File points to a file containing the secret value. Consulted only when
	// the environment variable is absent or empty.
	File string
}

// Resolve returns the first credential found for the source, trimmed. The
// second return reports whether anything was found; absence is not an error,
// callers degrade to a fallback backend.
func Resolve(src Source) (string, bool) {
	if env := strings.TrimSpace(src.Env); env != "" {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			return v, true
		}
	}
	if file := strings.TrimSpace(src.File); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", false
		}
		if v := strings.TrimSpace(string(data)); v != "" {
			return v, true
		}
	}
	return "", false
}
