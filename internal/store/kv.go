package store

import (
	"context"
	"fmt"

	"github.com/oriolmontal/lingodrill/ent"
	"github.com/oriolmontal/lingodrill/ent/kventry"
)

// entKV implements KV on top of the KVEntry table.
type entKV struct {
	client *ent.Client
}

func (s *entKV) Get(ctx context.Context, key string) (string, bool, error) {
	entry, err := s.client.KVEntry.Query().
		Where(kventry.Key(key)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	return entry.Value, true, nil
}

func (s *entKV) Set(ctx context.Context, key, value string) error {
	// Update-then-create instead of upsert: the process is the only writer.
	n, err := s.client.KVEntry.Update().
		Where(kventry.Key(key)).
		SetValue(value).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	if n > 0 {
		return nil
	}

	_, err = s.client.KVEntry.Create().
		SetKey(key).
		SetValue(value).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

func (s *entKV) MultiRemove(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	_, err := s.client.KVEntry.Delete().
		Where(kventry.KeyIn(keys...)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("remove keys: %w", err)
	}
	return nil
}

func (s *entKV) ListKeys(ctx context.Context, prefix string) ([]string, error) {
	entries, err := s.client.KVEntry.Query().
		Where(kventry.KeyHasPrefix(prefix)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list keys %q: %w", prefix, err)
	}

	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}
	return keys, nil
}
