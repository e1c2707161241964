package secrets

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"
)

// KeyringService groups the engine's secrets in the OS keychain.
const KeyringService = "techready"

// AIKeyringAccount names the keychain entry holding the API key for one AI
// provider (question generation, speech). The engine only stores keys; the
// AI services themselves are external collaborators.
func AIKeyringAccount(provider string) string {
	return fmt.Sprintf("techready:ai:%s", strings.ToLower(strings.TrimSpace(provider)))
}

func GetAIKey(provider string) (string, error) {
	account := AIKeyringAccount(provider)
	if strings.TrimSpace(provider) == "" {
		return "", errors.New("ai provider is empty")
	}
	key, err := keyring.Get(KeyringService, account)
	if err != nil || strings.TrimSpace(key) == "" {
		return "", errors.New("AI API key not found (set it via the secrets endpoint)")
	}
	return key, nil
}

func SetAIKey(provider string, key string) error {
	if strings.TrimSpace(provider) == "" {
		return errors.New("ai provider is empty")
	}
	if strings.TrimSpace(key) == "" {
		return errors.New("api key is empty")
	}
	return keyring.Set(KeyringService, AIKeyringAccount(provider), key)
}

func DeleteAIKey(provider string) error {
	if strings.TrimSpace(provider) == "" {
		return errors.New("ai provider is empty")
	}
	return keyring.Delete(KeyringService, AIKeyringAccount(provider))
}
