// Package app implements the primary port services.
package app

import "errors"

// ErrNotFound is returned when a lookup targets a record that does not
// exist in the snapshot.
var ErrNotFound = errors.New("not found")

// ErrNoDataset is returned when a read operation runs before any
// generation run has produced a snapshot.
var ErrNoDataset = errors.New("no dataset generated yet")
