package ai

import (
	"errors"
	"strings"

	"github.com/julianstephens/aurapulse/internal/keyring"
	"github.com/julianstephens/aurapulse/internal/logger"
)

// KeySource tells where an API key was found.
type KeySource string

const (
	KeySourceFlag    KeySource = "flag/env"
	KeySourceKeyring KeySource = "keyring"
	KeySourceNone    KeySource = "none"
)

// ResolveAPIKey returns the explicit key when given (flag or GEMINI_API_KEY),
// otherwise the key stored in the OS keyring. A missing key is not an error.
func ResolveAPIKey(explicit string) (string, KeySource) {
	if key := strings.TrimSpace(explicit); key != "" {
		return key, KeySourceFlag
	}

	key, err := keyring.GetAPIKey()
	switch {
	case err == nil:
		return key, KeySourceKeyring
	case errors.Is(err, keyring.ErrNotFound):
	default:
		logger.Warn("Could not read api key from keyring", "error", err)
	}
	return "", KeySourceNone
}
