package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sahayak/ent"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasAppliedToEveryConnection(t *testing.T) {
	db := openTestStore(t).DB()
	ctx := context.Background()

	// Hold two connections at once so the pool has to open a second one.
	c1, err := db.Conn(ctx)
	require.NoError(t, err)
	defer c1.Close()
	c2, err := db.Conn(ctx)
	require.NoError(t, err)
	defer c2.Close()

	for _, c := range []*sql.Conn{c1, c2} {
		for pragma, want := range map[string]string{
			"journal_mode": "wal",
			"foreign_keys": "1",
			"synchronous":  "1",
			"busy_timeout": "5000",
		} {
			var got string
			require.NoError(t, c.QueryRowContext(ctx, "PRAGMA "+pragma).Scan(&got))
			assert.Equal(t, want, got, pragma)
		}
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twice.db")

	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.KV().Set(context.Background(), "k", "v"))
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	v, ok, err := s2.KV().Get(context.Background(), "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestMigrationCreatesTables(t *testing.T) {
	db := openTestStore(t).DB()

	for _, table := range []string{"kvs", "llm_request_events"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, table)
	}
}

func TestKVRejectsEmptyKey(t *testing.T) {
	kv := openTestStore(t).KV()

	err := kv.Set(context.Background(), "", "v")
	require.Error(t, err)
	assert.True(t, ent.IsValidationError(err))
}

func TestKVGetMissing(t *testing.T) {
	kv := openTestStore(t).KV()

	v, ok, err := kv.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestKVSetOverwrites(t *testing.T) {
	kv := openTestStore(t).KV()
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "shiksha_user", `{"name":"A"}`))
	require.NoError(t, kv.Set(ctx, "shiksha_user", `{"name":"B"}`))

	v, ok, err := kv.Get(ctx, "shiksha_user")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"name":"B"}`, v)
}

func TestKVDelete(t *testing.T) {
	kv := openTestStore(t).KV()
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "k", "v"))
	require.NoError(t, kv.Delete(ctx, "k"))
	require.NoError(t, kv.Delete(ctx, "k"))

	_, ok, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLLMEventsRoundTrip(t *testing.T) {
	repo := openTestStore(t).EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "chat", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "chat", InputTokens: 80, OutputTokens: 40, LatencyMs: 100, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash-image", Purpose: "visualize", LatencyMs: 900, Success: false, ErrorMessage: "boom"},
	}
	for _, e := range events {
		require.NoError(t, repo.AppendLLMRequest(ctx, e))
	}

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "visualize", all[0].Purpose, "newest first")
	assert.False(t, all[0].Success)
	assert.Equal(t, "boom", all[0].ErrorMessage)

	chat, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "chat", Limit: 1})
	require.NoError(t, err)
	require.Len(t, chat, 1)
	assert.Equal(t, 80, chat[0].InputTokens)

	got, err := repo.GetLLMEvent(ctx, all[2].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 100, got.InputTokens)

	missing, err := repo.GetLLMEvent(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, byPurpose, 2)
	assert.Equal(t, PurposeUsage{Purpose: "chat", Calls: 2, InputTokens: 180, OutputTokens: 90, AvgLatencyMs: 150}, byPurpose[0])

	byModel, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 2)
	assert.Equal(t, "gemini-2.5-flash", byModel[0].Model)
	assert.Equal(t, 2, byModel[0].Calls)
}

func TestPruneLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "gemini", Model: "m", Purpose: "chat", Success: true}))
	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "gemini", Model: "m", Purpose: "speech", Success: true}))
	_, err := s.DB().ExecContext(ctx, `UPDATE llm_request_events SET timestamp = ? WHERE purpose = 'chat'`,
		time.Now().Add(-40*24*time.Hour).UTC())
	require.NoError(t, err)

	n, err := repo.PruneLLMEvents(ctx, time.Now().Add(-30*24*time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	left, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, "speech", left[0].Purpose)
}
