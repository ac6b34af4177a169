package application

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/prittspadelord/erm/internal/config"
	"github.com/prittspadelord/erm/internal/roster"
)

const dateLayout = "2006-01-02"

// Option configures the behaviour of New.
type Option func(*options)

type options struct {
	clock func() time.Time
}

// WithClock overrides the clock used to stamp the startup time (primarily for tests).
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// App encapsulates the application components assembled at startup.
type App struct {
	name      string
	startedAt time.Time
	roster    roster.Roster
	logger    *zap.Logger
}

// New initializes the application with all dependencies from the provided configuration.
func New(cfg config.Config, logger *zap.Logger, opts ...Option) (*App, error) {
	o := options{clock: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	staff := roster.NewMemoryRoster()
	for i, entry := range cfg.Employees {
		e, err := entry.Build()
		if err != nil {
			return nil, fmt.Errorf("failed to construct employee %d: %w", i, err)
		}
		id, err := staff.Add(e)
		if err != nil {
			return nil, fmt.Errorf("failed to register employee %d: %w", i, err)
		}
		logger.Debug("employee registered",
			zap.String("id", id),
			zap.String("name", e.DisplayName()),
			zap.Stringer("role", e.Role()),
		)
	}

	app := &App{
		name:      cfg.Name,
		startedAt: o.clock(),
		roster:    staff,
		logger:    logger,
	}

	logger.Info("application context initialized",
		zap.String("name", app.name),
		zap.Int("employees", staff.Len()),
	)

	return app, nil
}

// Name returns the configured application name.
func (a *App) Name() string {
	return a.name
}

// StartedAt returns the time the context was created.
func (a *App) StartedAt() time.Time {
	return a.startedAt
}

// Roster returns the employees registered at startup.
func (a *App) Roster() roster.Roster {
	return a.roster
}

// String renders a summary line followed by one line per employee.
func (a *App) String() string {
	entries := a.roster.List()

	noun := "employees"
	if len(entries) == 1 {
		noun = "employee"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s application context, started on %s, %d %s",
		a.name, a.startedAt.Format(time.RFC1123), len(entries), noun)

	for _, entry := range entries {
		e := entry.Employee
		fmt.Fprintf(&b, "\n  - %s %s [%s] born %s joined %s",
			entry.ID,
			e.FullName(),
			e.Role(),
			e.BirthDate().UTC().Format(dateLayout),
			e.JoiningDate().UTC().Format(dateLayout),
		)
	}

	return b.String()
}
