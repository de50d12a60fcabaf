package dataset

import (
	"context"
	stderrors "errors"
	"os"
	"sync"
	"time"

	"incomedash/adapters/excel"
	"incomedash/domain/census"
	"incomedash/domain/core"
	"incomedash/internal"
	"incomedash/internal/errors"
	"incomedash/ports"
)

// Loader reads the dataset once per session and serves the cached table.
// The table is read-only after load, so callers may share it across goroutines.
type Loader struct {
	path        string
	previewRows int
	logger      *internal.Logger

	once   sync.Once
	mu     sync.RWMutex
	status ports.LoadStatus
	table  *census.Table
	err    error
}

var _ ports.TableLoader = (*Loader)(nil)

// NewLoader creates a loader for the file at path
func NewLoader(path string, previewRows int) *Loader {
	return &Loader{
		path:        path,
		previewRows: previewRows,
		logger:      internal.DefaultLogger.With("Loader"),
		status:      ports.LoadStatusUnloaded,
	}
}

// Path returns the dataset location
func (l *Loader) Path() string {
	return l.path
}

// Load returns the session table, reading the file on first use only.
// A missing or empty file yields a DATA_UNAVAILABLE error wrapping
// core.ErrDataUnavailable; that outcome is memoized too.
func (l *Loader) Load(ctx context.Context) (*census.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.once.Do(func() {
		table, err := l.read()

		l.mu.Lock()
		defer l.mu.Unlock()
		l.table, l.err = table, err
		if err != nil {
			l.status = ports.LoadStatusUnavailable
			l.logger.Error("dataset %s unavailable: %v", l.path, err)
			return
		}
		l.status = ports.LoadStatusLoaded
		l.logger.Info("dataset %s loaded: %d rows, %d columns", l.path, table.Len(), len(table.Columns))
	})

	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.table, l.err
}

// Status reports where the loader is in its lifecycle
func (l *Loader) Status() ports.LoadStatus {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.status
}

func (l *Loader) read() (*census.Table, error) {
	start := time.Now()

	data, err := excel.NewDataReader(l.path).ReadData()
	switch {
	case stderrors.Is(err, os.ErrNotExist):
		return nil, errors.DataUnavailable(core.NewDataUnavailableError(l.path, "file not found"))
	case stderrors.Is(err, excel.ErrNoDataRows):
		return nil, errors.DataUnavailable(core.NewDataUnavailableError(l.path, "file has no data rows"))
	case err != nil:
		return nil, errors.Wrapf(err, "failed to read dataset %s", l.path)
	}

	table, err := DecodeTable(l.path, data, l.previewRows)
	if err != nil {
		return nil, err
	}
	table.LoadedAt = time.Now()

	l.logger.Debug("decoded %d records in %s", table.Len(), time.Since(start))
	return table, nil
}
