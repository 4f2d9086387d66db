package draftstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vidyonnati/foundation-backend/forms"
)

// DefaultTTL is how long an abandoned draft stays loadable.
const DefaultTTL = 24 * time.Hour

// entry is the persisted envelope. File-valued fields are never part of
// Data; they cannot survive serialization and reload.
type entry struct {
	Data      map[string]string `json:"data"`
	Timestamp int64             `json:"timestamp"`
	Step      int               `json:"step"`
}

// Store persists in-progress wizard answers per user and form variant.
// Saves are best effort: a failed write is logged and never surfaced, losing
// a draft must not block the applicant.
type Store struct {
	kv  KV
	ttl time.Duration
	now func() time.Time
	log *logrus.Logger
}

func New(kv KV, log *logrus.Logger) *Store {
	return &Store{kv: kv, ttl: DefaultTTL, now: time.Now, log: log}
}

// NewWithClock is used by tests to control expiry.
func NewWithClock(kv KV, log *logrus.Logger, ttl time.Duration, now func() time.Time) *Store {
	return &Store{kv: kv, ttl: ttl, now: now, log: log}
}

func Key(userID string, variant forms.Variant) string {
	return "draft:" + userID + ":" + string(variant)
}

// Save snapshots the given values and step index, stripping any file-typed
// fields first. Errors are swallowed.
func (s *Store) Save(ctx context.Context, userID string, variant forms.Variant, values map[string]string, step int) {
	data := make(map[string]string, len(values))
	for k, v := range values {
		data[k] = v
	}
	if schema, err := forms.SchemaFor(variant); err == nil {
		for _, name := range schema.DocumentNames() {
			delete(data, name)
		}
	}
	raw, err := json.Marshal(entry{
		Data:      data,
		Timestamp: s.now().UnixMilli(),
		Step:      step,
	})
	if err != nil {
		s.log.WithError(err).Warn("draft save: marshal failed")
		return
	}
	if err := s.kv.Set(ctx, Key(userID, variant), string(raw)); err != nil {
		s.log.WithError(err).Warn("draft save failed")
	}
}

// Load returns the saved snapshot for the variant, or ok=false when nothing
// usable exists. Expired entries are discarded on read.
func (s *Store) Load(ctx context.Context, userID string, variant forms.Variant) (map[string]string, int, bool) {
	key := Key(userID, variant)
	raw, found, err := s.kv.Get(ctx, key)
	if err != nil {
		s.log.WithError(err).Warn("draft load failed")
		return nil, 0, false
	}
	if !found {
		return nil, 0, false
	}
	var e entry
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		s.log.WithError(err).Warn("draft load: corrupt entry, discarding")
		s.remove(ctx, key)
		return nil, 0, false
	}
	age := s.now().Sub(time.UnixMilli(e.Timestamp))
	if age > s.ttl {
		s.remove(ctx, key)
		return nil, 0, false
	}
	if e.Data == nil {
		e.Data = map[string]string{}
	}
	return e.Data, e.Step, true
}

// Clear removes the draft for a variant. Called exactly once, right after a
// fully successful submission.
func (s *Store) Clear(ctx context.Context, userID string, variant forms.Variant) {
	s.remove(ctx, Key(userID, variant))
}

func (s *Store) remove(ctx context.Context, key string) {
	if err := s.kv.Remove(ctx, key); err != nil {
		s.log.WithError(err).Warn("draft remove failed")
	}
}
