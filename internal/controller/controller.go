// Package controller holds the application state: the selected view, the
// overlay flag and the teacher's profile and stats. All mutations go
// through Apply.
package controller

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/sahayak/internal/profile"
	"github.com/abhisek/sahayak/internal/stats"
)

// View is a top-level tab.
type View int

const (
	ViewHome View = iota
	ViewLearn
	ViewDashboard
	ViewProfile
)

// Views lists the tabs in display order.
var Views = []View{ViewHome, ViewLearn, ViewDashboard, ViewProfile}

func (v View) String() string {
	switch v {
	case ViewHome:
		return "Home"
	case ViewLearn:
		return "Learn"
	case ViewDashboard:
		return "Stats"
	case ViewProfile:
		return "Profile"
	}
	return "Unknown"
}

// Persister loads and saves the profile and stats records.
type Persister interface {
	Load(ctx context.Context, now time.Time) (profile.UserProfile, stats.UserStats)
	Save(ctx context.Context, p profile.UserProfile, st stats.UserStats) error
}

// Snapshot is a copy of the persisted part of the state.
type Snapshot struct {
	Rev     int
	Profile profile.UserProfile
	Stats   stats.UserStats
}

// Controller is the single owner of application state. Apply and the
// getters are meant for one goroutine; Save may run concurrently.
type Controller struct {
	store  Persister
	now    func() time.Time
	logger *zap.Logger

	loaded      bool
	view        View
	overlayOpen bool
	profile     profile.UserProfile
	stats       stats.UserStats
	rev         int

	saveMu   sync.Mutex
	savedRev int
}

// New returns a controller with default records. Call Init to load the
// stored ones.
func New(store Persister, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Controller{
		store:  store,
		now:    time.Now,
		logger: logger.Named("controller"),
	}
	c.profile = profile.Default()
	c.stats = stats.Default(c.now())
	return c
}

// Init loads the stored records. Only the first call has any effect.
func (c *Controller) Init(ctx context.Context) {
	if c.loaded {
		return
	}
	c.loaded = true
	if c.store == nil {
		return
	}
	c.profile, c.stats = c.store.Load(ctx, c.now())
	c.logger.Debug("state loaded",
		zap.Bool("profile_complete", c.profile.IsComplete()),
		zap.Int("total_queries", c.stats.TotalQueries),
	)
}

// View returns the selected tab.
func (c *Controller) View() View { return c.view }

// OverlayOpen reports whether the assistant overlay is showing.
func (c *Controller) OverlayOpen() bool { return c.overlayOpen }

// Profile returns the current profile.
func (c *Controller) Profile() profile.UserProfile { return c.profile }

// Stats returns the current stats.
func (c *Controller) Stats() stats.UserStats { return c.stats }

// Snapshot returns the records to persist.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{Rev: c.rev, Profile: c.profile, Stats: c.stats}
}

// Apply performs a. It reports whether the profile or stats changed and so
// need saving.
func (c *Controller) Apply(a Action) bool {
	if !a.apply(c) {
		return false
	}
	c.rev++
	return true
}

// Save persists snap unless a newer snapshot was already written.
func (c *Controller) Save(ctx context.Context, snap Snapshot) error {
	if c.store == nil {
		return nil
	}
	c.saveMu.Lock()
	defer c.saveMu.Unlock()

	if snap.Rev <= c.savedRev {
		return nil
	}
	if err := c.store.Save(ctx, snap.Profile, snap.Stats); err != nil {
		c.logger.Warn("save state failed", zap.Int("rev", snap.Rev), zap.Error(err))
		return err
	}
	c.savedRev = snap.Rev
	return nil
}

// Dispatch applies a and saves synchronously when state changed.
func (c *Controller) Dispatch(ctx context.Context, a Action) error {
	if !c.Apply(a) {
		return nil
	}
	return c.Save(ctx, c.Snapshot())
}
