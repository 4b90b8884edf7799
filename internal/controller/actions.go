package controller

import (
	"github.com/abhisek/sahayak/internal/profile"
	"github.com/abhisek/sahayak/internal/stats"
)

// Action is a request to change application state.
type Action interface {
	apply(c *Controller) bool
}

// Navigate selects a tab.
type Navigate struct {
	To View
}

func (a Navigate) apply(c *Controller) bool {
	c.view = a.To
	return false
}

// OpenOverlay shows the assistant overlay.
type OpenOverlay struct{}

func (OpenOverlay) apply(c *Controller) bool {
	c.overlayOpen = true
	return false
}

// CloseOverlay hides the assistant overlay.
type CloseOverlay struct{}

func (CloseOverlay) apply(c *Controller) bool {
	c.overlayOpen = false
	return false
}

// RecordActivity counts a question asked or a resource opened.
type RecordActivity struct {
	Kind stats.Kind
}

func (a RecordActivity) apply(c *Controller) bool {
	if !a.Kind.Valid() {
		return false
	}
	c.stats = stats.RecordActivity(c.stats, a.Kind, c.now())
	return true
}

// UpdateProfile replaces the profile.
type UpdateProfile struct {
	Profile profile.UserProfile
}

func (a UpdateProfile) apply(c *Controller) bool {
	c.profile = a.Profile
	return true
}
