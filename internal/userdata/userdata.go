// Package userdata persists the teacher profile and usage stats as two
// JSON records in the local key-value store.
package userdata

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/sahayak/internal/profile"
	"github.com/abhisek/sahayak/internal/stats"
	"github.com/abhisek/sahayak/internal/store"
)

// Storage keys.
const (
	ProfileKey = "shiksha_user"
	StatsKey   = "shiksha_stats"
)

// Store reads and writes the profile and stats records.
type Store struct {
	kv     store.KV
	logger *zap.Logger
}

// New creates a Store over kv. logger may be nil.
func New(kv store.KV, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{kv: kv, logger: logger.Named("userdata")}
}

// Load returns the stored records. A record that is missing, unreadable or
// malformed is replaced by its default; Load never fails.
func (s *Store) Load(ctx context.Context, now time.Time) (profile.UserProfile, stats.UserStats) {
	p := profile.Default()
	if !s.read(ctx, ProfileKey, &p) {
		p = profile.Default()
	}

	st := stats.Default(now)
	if !s.read(ctx, StatsKey, &st) {
		st = stats.Default(now)
	}
	if st.WeeklyActivity == nil {
		st.WeeklyActivity = []stats.DailyActivity{}
	}
	return p, st
}

// Save writes both records. The writes are independent and last writer wins.
func (s *Store) Save(ctx context.Context, p profile.UserProfile, st stats.UserStats) error {
	if err := s.write(ctx, ProfileKey, p); err != nil {
		return err
	}
	return s.write(ctx, StatsKey, st)
}

// Reset removes both records so the next Load returns defaults.
func (s *Store) Reset(ctx context.Context) error {
	for _, key := range []string{ProfileKey, StatsKey} {
		if err := s.kv.Delete(ctx, key); err != nil {
			return fmt.Errorf("delete %s: %w", key, err)
		}
	}
	return nil
}

func (s *Store) read(ctx context.Context, key string, dst any) bool {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		s.logger.Warn("read failed, using default", zap.String("key", key), zap.Error(err))
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		s.logger.Warn("malformed record, using default", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *Store) write(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
