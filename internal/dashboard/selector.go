package dashboard

import (
	"context"

	"incomedash/domain/census"
	"incomedash/domain/core"
	"incomedash/internal"
	"incomedash/internal/errors"
	"incomedash/ports"
)

// NoticeUnavailable is shown instead of any dashboard when the dataset cannot be loaded
const NoticeUnavailable = "## No Data Available"

// Request selects a dashboard. Filters only apply to KPI mode; nil means the
// defaults with Overrides applied on top.
type Request struct {
	Mode      Mode
	Filters   *census.FilterParams
	Overrides census.FilterOverrides
}

// Status is a snapshot of a session
type Status struct {
	SessionID core.SessionID `json:"session_id"`
	State     State          `json:"state"`
	RowCount  int            `json:"row_count"`
	Source    string         `json:"source,omitempty"`
}

// Selector binds one session's loader to the renderers
type Selector struct {
	loader   ports.TableLoader
	renderer *Renderer
	session  core.SessionID
	logger   *internal.Logger
}

// NewSelector starts a session over loader
func NewSelector(loader ports.TableLoader, renderer *Renderer) *Selector {
	if renderer == nil {
		renderer = defaultRenderer
	}
	s := &Selector{
		loader:   loader,
		renderer: renderer,
		session:  core.NewSessionID(),
		logger:   internal.DefaultLogger.With("Selector"),
	}
	s.logger.Info("session %s started", s.session)
	return s
}

// SessionID returns the session identifier
func (s *Selector) SessionID() core.SessionID {
	return s.session
}

// State reports the loader side of the lifecycle: unloaded, loaded or unavailable
func (s *Selector) State() State {
	switch s.loader.Status() {
	case ports.LoadStatusLoaded:
		return StateLoaded
	case ports.LoadStatusUnavailable:
		return StateUnavailable
	default:
		return StateUnloaded
	}
}

// Status describes the session without triggering a load
func (s *Selector) Status(ctx context.Context) Status {
	st := Status{SessionID: s.session, State: s.State()}
	if st.State != StateLoaded {
		return st
	}
	if table, err := s.loader.Load(ctx); err == nil {
		st.RowCount = table.Len()
		st.Source = table.Source
	}
	return st
}

// Render loads the session table on first use and renders the requested dashboard.
// When the dataset is unavailable the returned dashboard carries the notice
// alongside the error.
func (s *Selector) Render(ctx context.Context, req Request) (*Dashboard, error) {
	mode := req.Mode
	if mode == "" {
		mode = Modes[0]
	}
	if mode != ModeEDA && mode != ModeKPI {
		return nil, errors.InvalidInputf(core.ErrUnknownMode, "unknown dashboard mode %q", req.Mode)
	}

	table, err := s.loader.Load(ctx)
	if err == nil && table.IsEmpty() {
		err = errors.DataUnavailable(core.ErrDataUnavailable)
	}
	if err != nil {
		s.logger.Warn("render %s: %v", mode, err)
		return &Dashboard{
			Mode:   mode,
			State:  StateUnavailable,
			Title:  mode.Label(),
			Notice: NoticeUnavailable,
		}, err
	}

	switch mode {
	case ModeKPI:
		filters := req.Overrides.Apply(census.DefaultFilters(table))
		if req.Filters != nil {
			filters = *req.Filters
		}
		if err := filters.Validate(); err != nil {
			return nil, errors.InvalidInputf(err, "invalid KPI filters")
		}
		d := s.renderer.KPI(table, filters)
		s.logger.Debug("kpi %+v: %d rows, state %s", filters, d.RowCount, d.State)
		return d, nil
	default:
		d := s.renderer.EDA(table)
		s.logger.Debug("eda: %d rows, %d charts", d.RowCount, len(d.Charts))
		return d, nil
	}
}
