package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/sahayak/ent"
	"github.com/abhisek/sahayak/ent/kv"
)

// kvRepo implements KV backed by ent.
type kvRepo struct {
	client *ent.Client
}

func (r *kvRepo) Get(ctx context.Context, key string) (string, bool, error) {
	rec, err := r.client.KV.Query().Where(kv.Key(key)).Only(ctx)
	if ent.IsNotFound(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	return rec.Data, true, nil
}

// Set updates the record in place and creates it when absent. A create that
// loses a race with another writer falls back to the update.
func (r *kvRepo) Set(ctx context.Context, key, value string) error {
	now := time.Now().UTC()
	for attempt := 0; attempt < 2; attempt++ {
		n, err := r.client.KV.Update().
			Where(kv.Key(key)).
			SetData(value).
			SetUpdatedAt(now).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("set %q: %w", key, err)
		}
		if n > 0 {
			return nil
		}

		_, err = r.client.KV.Create().
			SetKey(key).
			SetData(value).
			SetUpdatedAt(now).
			Save(ctx)
		if err == nil {
			return nil
		}
		if !ent.IsConstraintError(err) {
			return fmt.Errorf("set %q: %w", key, err)
		}
	}
	return fmt.Errorf("set %q: concurrent writers", key)
}

func (r *kvRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.client.KV.Delete().Where(kv.Key(key)).Exec(ctx); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}
