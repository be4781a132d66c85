package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/jakechorley/seva-rota/pkg/core/model"
)

// AddVolunteer adds name to a pool, keeping the pool sorted. Adding an existing name is a no-op.
// It returns false when the name was already present.
func (s *Session) AddVolunteer(ctx context.Context, pool model.PoolName, name string) (bool, error) {
	if !pool.IsValid() {
		return false, fmt.Errorf("unknown volunteer pool %q", pool)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return false, fmt.Errorf("volunteer name must not be empty")
	}

	current := s.pools.Get(pool)
	if slices.Contains(current, name) {
		s.logger.Debug("Volunteer already in pool", zap.String("pool", string(pool)), zap.String("name", name))
		return false, nil
	}

	updated := append(slices.Clone(current), name)
	slices.Sort(updated)

	if err := s.savePool(ctx, pool, updated); err != nil {
		return false, err
	}

	s.logger.Info("Added volunteer", zap.String("pool", string(pool)), zap.String("name", name))
	return true, nil
}

// RemoveVolunteer removes every occurrence of name from a pool.
// Existing assignments are not touched. It returns false when the name was not in the pool.
func (s *Session) RemoveVolunteer(ctx context.Context, pool model.PoolName, name string) (bool, error) {
	if !pool.IsValid() {
		return false, fmt.Errorf("unknown volunteer pool %q", pool)
	}

	current := s.pools.Get(pool)
	updated := slices.DeleteFunc(slices.Clone(current), func(v string) bool {
		return v == name
	})
	if len(updated) == len(current) {
		return false, nil
	}

	if err := s.savePool(ctx, pool, updated); err != nil {
		return false, err
	}

	s.logger.Info("Removed volunteer", zap.String("pool", string(pool)), zap.String("name", name))
	return true, nil
}

func (s *Session) savePool(ctx context.Context, pool model.PoolName, names []string) error {
	if err := s.store.SavePool(ctx, pool, names); err != nil {
		return fmt.Errorf("failed to save %s pool: %w", pool, err)
	}
	s.pools = s.pools.With(pool, names)
	return nil
}
