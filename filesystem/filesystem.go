// Package filesystem provides a virtualized abstraction layer for all filesystem operations.
//
// Preferences, configuration and logs all go through the afero backend held here,
// so tests can swap the OS filesystem for an in-memory one.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active afero.Afero instance for filesystem interaction.
func API() afero.Afero {
	return backend
}

// SetOsFs restores the filesystem backend to the native operating system implementation.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs switches to a volatile in-memory backend. Anything written before the switch is gone.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// SetFs switches to an arbitrary afero backend, such as a read-only view of another one.
func SetFs(fs afero.Fs) {
	backend = afero.Afero{Fs: fs}
}
