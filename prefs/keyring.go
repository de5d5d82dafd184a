package prefs

import (
	"errors"
	"fmt"

	"github.com/huepick/huepick/constant"
	"github.com/samber/mo"
	"github.com/zalando/go-keyring"
)

// KeyringStore keeps each preference as a secret in the OS keyring,
// under the huepick service with the preference key as the account.
type KeyringStore struct {
	service string
}

// NewKeyringStore returns a store using the system keyring.
func NewKeyringStore() *KeyringStore {
	return &KeyringStore{service: constant.Huepick}
}

// Get implements Store.
func (s *KeyringStore) Get(key string) (mo.Option[string], error) {
	value, err := keyring.Get(s.service, key)
	if errors.Is(err, keyring.ErrNotFound) {
		return mo.None[string](), nil
	}
	if err != nil {
		return mo.None[string](), fmt.Errorf("keyring get %s: %w", key, err)
	}
	return mo.Some(value), nil
}

// Set implements Store.
func (s *KeyringStore) Set(key, value string) error {
	if err := keyring.Set(s.service, key, value); err != nil {
		return fmt.Errorf("keyring set %s: %w", key, err)
	}
	return nil
}
