package ports

import (
	"context"

	"incomedash/domain/census"
)

// LoadStatus describes the loader side of the dashboard state machine
type LoadStatus string

const (
	LoadStatusUnloaded    LoadStatus = "unloaded"
	LoadStatusLoaded      LoadStatus = "loaded"
	LoadStatusUnavailable LoadStatus = "unavailable"
)

// TableLoader provides the session's dataset.
// Load is memoized: every call after the first returns the same *census.Table
// (or the same error) without touching the file again.
type TableLoader interface {
	Load(ctx context.Context) (*census.Table, error)
	Status() LoadStatus
}
