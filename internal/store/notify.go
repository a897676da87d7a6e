package store

import (
	"time"

	"github.com/ricardocortesc/Arepabuelas-FRONT/internal/domain"
)

// Notification returns the currently visible notification, or nil.
func (s *Store) Notification() *domain.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.notification == nil {
		return nil
	}
	cp := *s.notification
	return &cp
}

func (s *Store) notify(message string, severity domain.Severity) {
	s.mu.Lock()
	s.notifyLocked(message, severity)
	s.mu.Unlock()
}

// notifyLocked replaces the visible notification and restarts the dismissal
// timer. The sequence number keeps an old timer from clearing a newer
// notification. Caller holds s.mu.
func (s *Store) notifyLocked(message string, severity domain.Severity) {
	s.notifySeq++
	seq := s.notifySeq
	s.notification = &domain.Notification{Message: message, Severity: severity}

	if s.notifyTimer != nil {
		s.notifyTimer.Stop()
	}
	s.notifyTimer = time.AfterFunc(s.notifyTTL, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.notifySeq == seq {
			s.notification = nil
			s.notifyTimer = nil
		}
	})
}
