// Package menus turns Oracle Forms menu module exports (MMB saved as XML)
// into menu knowledge records.
package menus
