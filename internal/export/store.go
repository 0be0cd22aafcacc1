package export

import (
	"context"
	"fmt"
	"sync"
	"time"

	"mlb-inning-times/internal/config"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

type storedArtifact struct {
	artifact  *Artifact
	expiresAt time.Time
}

// Store keeps built artifacts in memory for a limited time so they can be
// downloaded by token after the request that built them has returned.
type Store struct {
	mu        sync.Mutex
	ttl       time.Duration
	artifacts map[string]storedArtifact
	logger    zerolog.Logger
	now       func() time.Time
}

func NewStore(cfg *config.Config, logger zerolog.Logger) *Store {
	return &Store{
		ttl:       cfg.ExportTTL,
		artifacts: make(map[string]storedArtifact),
		logger:    logger,
		now:       time.Now,
	}
}

func (s *Store) Put(a *Artifact) (string, error) {
	token, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("failed to generate nanoid: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.artifacts[token] = storedArtifact{artifact: a, expiresAt: s.now().Add(s.ttl)}
	return token, nil
}

func (s *Store) Get(token string) (*Artifact, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.artifacts[token]
	if !ok {
		return nil, false
	}
	if !s.now().Before(stored.expiresAt) {
		delete(s.artifacts, token)
		return nil, false
	}
	return stored.artifact, true
}

// Sweep drops expired artifacts and returns how many were removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	n := 0
	for token, stored := range s.artifacts {
		if !now.Before(stored.expiresAt) {
			delete(s.artifacts, token)
			n++
		}
	}
	return n
}

// RunSweeper calls Sweep every interval until ctx is done.
func (s *Store) RunSweeper(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				s.logger.Debug().Int("removed", n).Msg("expired exports swept")
			}
		}
	}
}
