package keyring

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/aurapulse/internal/constants"
)

var (
	// ErrNotFound is returned when no API key is stored in the keyring
	ErrNotFound = errors.New("api key not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetAPIKey retrieves the model API key from the OS keyring.
// Returns ErrNotFound if no key is stored.
func GetAPIKey() (string, error) {
	key, err := keyring.Get(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return key, nil
}

// SetAPIKey stores the model API key in the OS keyring.
func SetAPIKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("api key cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.DefaultKeyringUser, key); err != nil {
		return fmt.Errorf("failed to store api key in keyring: %w", err)
	}
	return nil
}

// DeleteAPIKey removes the model API key from the OS keyring.
func DeleteAPIKey() error {
	err := keyring.Delete(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete api key from keyring: %w", err)
	}
	return nil
}

// IsAvailable reports whether the OS keyring answers at all. Best effort.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "probe")
	return err == nil || errors.Is(err, keyring.ErrNotFound)
}
