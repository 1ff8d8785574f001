package model

import (
	"errors"
	"strings"
)

var (
	ErrEmptyInput         = errors.New("no data rows")
	ErrCapacity           = errors.New("capacity exceeded")
	ErrSelectionTimeout   = errors.New("file selection timed out")
	ErrSelectionCancelled = errors.New("file selection cancelled")
)

// Warning is one per-file problem recorded during a batch.
type Warning struct {
	File    string
	Message string
}

func (w Warning) String() string { return w.File + ": " + w.Message }

// BatchError aggregates every warning of a batch, in file-processing order.
// A batch either succeeds with no warnings or fails with this single error.
type BatchError []Warning

func (e BatchError) Error() string {
	lines := make([]string, len(e))
	for i, w := range e {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
