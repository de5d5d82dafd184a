// Package prefs persists user preferences across runs.
//
// A Store is a flat string key/value space. huepick only ever uses one key,
// Key, but the stores do not care.
package prefs

import (
	"fmt"

	"github.com/huepick/huepick/where"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Key is the preference holding the last picked color.
const Key = "user_selected_colour"

// Store reads and writes durable preferences.
type Store interface {
	// Get returns the stored value, or None if the key was never written.
	Get(key string) (mo.Option[string], error)
	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
}

// Backend names accepted by Open.
const (
	BackendFile    = "file"
	BackendKeyring = "keyring"
	BackendMemory  = "memory"
)

// Backends lists the names accepted by Open.
func Backends() []string {
	return []string{BackendFile, BackendKeyring, BackendMemory}
}

// Open returns the store registered under backend.
func Open(backend string) (Store, error) {
	switch backend {
	case BackendFile:
		return NewFileStore(where.Preferences()), nil
	case BackendKeyring:
		return NewKeyringStore(), nil
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		closest := lo.MinBy(Backends(), func(a, b string) bool {
			return levenshtein.Distance(backend, a) < levenshtein.Distance(backend, b)
		})
		return nil, fmt.Errorf("unknown storage backend %q, did you mean %q?", backend, closest)
	}
}
