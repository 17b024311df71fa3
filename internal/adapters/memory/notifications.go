package memory

import (
	"context"
	"log"

	"organease/internal/ports"
)

var (
	_ ports.Notifier = (*Store)(nil)
	_ ports.Inbox    = (*Store)(nil)
)

// Notify logs n and keeps it in the user's inbox.
func (s *Store) Notify(ctx context.Context, n ports.Notification) error {
	s.mu.Lock()
	s.inbox[n.UserID] = append(s.inbox[n.UserID], n)
	s.mu.Unlock()
	log.Printf("notify user=%s title=%q action=%s", n.UserID, n.Title, n.ActionURL)
	return nil
}

func (s *Store) Inbox(ctx context.Context, userID string, limit int) ([]ports.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := s.inbox[userID]
	out := make([]ports.Notification, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, all[i])
	}
	return out, nil
}
