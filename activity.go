package consolesession

import (
	"time"

	"github.com/cccteam/logger"
)

// ActivityEvent is an operator input event.
type ActivityEvent string

// Activity events that count as operator input.
const (
	PointerDown ActivityEvent = "pointerdown"
	KeyDown     ActivityEvent = "keydown"
	Scroll      ActivityEvent = "scroll"
	TouchStart  ActivityEvent = "touchstart"
)

// Qualifies reports whether e resets the inactivity timer.
func (e ActivityEvent) Qualifies() bool {
	switch e {
	case PointerDown, KeyDown, Scroll, TouchStart:
		return true
	}

	return false
}

// RecordActivity restarts the inactivity timer when e qualifies and the
// session is authenticated. It reports whether the timer was restarted.
func (m *Manager) RecordActivity(e ActivityEvent) bool {
	if !e.Qualifies() {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.session.IsAuthenticated || m.idle == nil {
		return false
	}
	m.idle.Reset(m.inactivityTimeout)

	return true
}

func (m *Manager) startIdleTimerLocked(gen uint64) {
	m.idle = time.AfterFunc(m.inactivityTimeout, func() {
		m.expireIdle(gen)
	})
}

func (m *Manager) expireIdle(gen uint64) {
	m.mu.Lock()
	current := m.generation == gen && m.session.IsAuthenticated
	ctx := m.baseCtx
	m.mu.Unlock()

	if !current {
		return
	}

	logger.FromCtx(ctx).Infof("session idle for %s, logging out", m.inactivityTimeout)
	m.Logout(ctx)
}
