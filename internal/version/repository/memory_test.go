package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SehajBehl/docvault/internal/version"
)

func TestMemoryLogAppendNumbering(t *testing.T) {
	l := NewMemoryLog()
	ctx := context.Background()

	v1, err := l.Append(ctx, "doc1", "hello", "alice")
	require.NoError(t, err)
	require.Equal(t, 1, v1.Number)
	require.NotEmpty(t, v1.VersionID)
	require.False(t, v1.CreatedAt.IsZero())

	v2, err := l.Append(ctx, "doc1", "hello world", "alice")
	require.NoError(t, err)
	require.Equal(t, 2, v2.Number)
	require.NotEqual(t, v1.VersionID, v2.VersionID)

	// numbering is per document
	other, err := l.Append(ctx, "doc2", "x", "bob")
	require.NoError(t, err)
	require.Equal(t, 1, other.Number)
}

func TestMemoryLogGetAllOrder(t *testing.T) {
	l := NewMemoryLog()
	ctx := context.Background()
	for _, content := range []string{"a", "b", "c"} {
		_, err := l.Append(ctx, "doc1", content, "alice")
		require.NoError(t, err)
	}

	all, err := l.GetAll(ctx, "doc1")
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i, v := range all {
		require.Equal(t, i+1, v.Number)
	}

	// unknown document reads as empty, not as an error
	none, err := l.GetAll(ctx, "nope")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestMemoryLogGetByVersionIDCrossDocument(t *testing.T) {
	l := NewMemoryLog()
	ctx := context.Background()
	v, err := l.Append(ctx, "doc1", "hello", "alice")
	require.NoError(t, err)

	got, err := l.GetByVersionID(ctx, "doc1", v.VersionID)
	require.NoError(t, err)
	require.Equal(t, "hello", got.Content)

	// a versionId is only valid against its own document
	_, err = l.GetByVersionID(ctx, "doc2", v.VersionID)
	require.ErrorIs(t, err, version.ErrNotFound)
}

func TestMemoryLogLatest(t *testing.T) {
	l := NewMemoryLog()
	ctx := context.Background()

	latest, err := l.Latest(ctx, "doc1")
	require.NoError(t, err)
	require.Nil(t, latest)

	_, err = l.Append(ctx, "doc1", "one", "alice")
	require.NoError(t, err)
	_, err = l.Append(ctx, "doc1", "two", "alice")
	require.NoError(t, err)

	latest, err = l.Latest(ctx, "doc1")
	require.NoError(t, err)
	require.Equal(t, 2, latest.Number)
	require.Equal(t, "two", latest.Content)
}

func TestMemoryLogRecordsAreImmutable(t *testing.T) {
	l := NewMemoryLog()
	ctx := context.Background()
	v, err := l.Append(ctx, "doc1", "original", "alice")
	require.NoError(t, err)

	// callers get copies; scribbling on them must not reach the log
	v.Content = "tampered"

	stored, err := l.GetByVersionID(ctx, "doc1", v.VersionID)
	require.NoError(t, err)
	require.Equal(t, "original", stored.Content)

	stored.Content = "tampered again"
	again, err := l.GetByVersionID(ctx, "doc1", v.VersionID)
	require.NoError(t, err)
	require.Equal(t, "original", again.Content)
}

func TestMemoryLogConcurrentAppends(t *testing.T) {
	l := NewMemoryLog()
	ctx := context.Background()
	const n = 25

	errs := make(chan error, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := l.Append(ctx, "doc1", "c", "alice")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	all, err := l.GetAll(ctx, "doc1")
	require.NoError(t, err)
	require.Len(t, all, n)
	seen := map[int]bool{}
	for _, v := range all {
		seen[v.Number] = true
	}
	for i := 1; i <= n; i++ {
		require.True(t, seen[i], "version number %d missing", i)
	}
}
