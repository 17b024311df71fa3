package memory

import (
	"context"
	"time"

	"organease/internal/domain"
	"organease/internal/ports"
)

func (s *Store) CreateMatch(ctx context.Context, m domain.MatchRecord) (domain.MatchRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := [2]string{m.DonorID, m.RecipientID}
	if id, ok := s.pairs[key]; ok {
		return s.matches[id], false, nil
	}
	if m.ID == "" {
		m.ID = newID()
	}
	now := s.now()
	m.CreatedAt, m.UpdatedAt = now, now
	m.Version = 1
	s.matches[m.ID] = m
	s.pairs[key] = m.ID
	s.matchOrder = append(s.matchOrder, m.ID)
	return m, true, nil
}

func (s *Store) GetMatch(ctx context.Context, id string) (domain.MatchRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.matches[id]
	return m, ok, nil
}

func (s *Store) GetMatchByPair(ctx context.Context, donorID, recipientID string) (domain.MatchRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.pairs[[2]string{donorID, recipientID}]
	if !ok {
		return domain.MatchRecord{}, false, nil
	}
	return s.matches[id], true, nil
}

func (s *Store) UpdateMatch(ctx context.Context, m *domain.MatchRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.matches[m.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if cur.Version != m.Version {
		return domain.ErrConflict
	}
	next := *m
	// identity and consent fields are not part of a workflow write
	next.DonorID, next.RecipientID, next.Organ, next.Score = cur.DonorID, cur.RecipientID, cur.Organ, cur.Score
	next.ConsentURL, next.ConsentGeneratedAt = cur.ConsentURL, cur.ConsentGeneratedAt
	next.CreatedAt = cur.CreatedAt
	next.UpdatedAt = s.now()
	next.Version = cur.Version + 1
	s.matches[m.ID] = next
	*m = next
	return nil
}

func (s *Store) SetConsentArtifact(ctx context.Context, id string, url string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.matches[id]
	if !ok {
		return domain.ErrNotFound
	}
	m.ConsentURL = &url
	m.ConsentGeneratedAt = &at
	s.matches[id] = m
	return nil
}

func (s *Store) ListMatches(ctx context.Context, f ports.MatchFilter) ([]domain.MatchRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.MatchRecord
	for _, id := range s.matchOrder {
		m := s.matches[id]
		if f.DonorID != "" && m.DonorID != f.DonorID {
			continue
		}
		if f.RecipientID != "" && m.RecipientID != f.RecipientID {
			continue
		}
		if f.HospitalID != "" && (m.HospitalID == nil || *m.HospitalID != f.HospitalID) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}
