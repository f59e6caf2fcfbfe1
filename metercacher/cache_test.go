package metercacher

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	cache "github.com/Nauwk07/cacheLRU"
	"github.com/Nauwk07/cacheLRU/lru"
)

type stringCodec struct{}

func (stringCodec) Render(v string) (string, error)   { return v, nil }
func (stringCodec) Parse(text string) (string, error) { return text, nil }

func TestMeteredCache(t *testing.T) {
	require := require.New(t)

	registry := prometheus.NewRegistry()
	base, err := lru.New[string, string](2)
	require.NoError(err)

	c, err := New[string, string]("test", registry, base)
	require.NoError(err)

	require.NoError(c.Put("a", "apple"))
	require.NoError(c.Put("b", "banana"))

	val, ok := c.Get("a")
	require.True(ok)
	require.Equal("apple", val)
	_, ok = c.Get("durian")
	require.False(ok)

	require.Equal(2.0, testutil.ToFloat64(c.metrics.putCount))
	require.Zero(testutil.ToFloat64(c.metrics.putFailures))
	require.Equal(1.0, testutil.ToFloat64(c.metrics.getCount.With(hitLabels)))
	require.Equal(1.0, testutil.ToFloat64(c.metrics.getCount.With(missLabels)))
	require.Equal(2.0, testutil.ToFloat64(c.metrics.len))
	require.Equal(1.0, testutil.ToFloat64(c.metrics.portionFilled))
}

func TestMeteredCachePutFailure(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "cache.state")
	base, err := lru.NewPersistent[string, string](2, path, stringCodec{}, stringCodec{})
	require.NoError(err)

	registry := prometheus.NewRegistry()
	c, err := New[string, string]("test", registry, base)
	require.NoError(err)

	require.NoError(c.Put("a", "apple"))

	// Replace the state file with a directory so the mirror write fails.
	require.NoError(os.Remove(path))
	require.NoError(os.Mkdir(path, 0o755))

	require.ErrorIs(c.Put("b", "banana"), cache.ErrIO)
	require.Equal(2.0, testutil.ToFloat64(c.metrics.putCount))
	require.Equal(1.0, testutil.ToFloat64(c.metrics.putFailures))

	// The failed put still landed in memory.
	require.Equal(2.0, testutil.ToFloat64(c.metrics.len))
}

func TestMeteredCacheDuplicateRegistration(t *testing.T) {
	require := require.New(t)

	registry := prometheus.NewRegistry()
	base, err := lru.New[string, string](2)
	require.NoError(err)

	_, err = New[string, string]("test", registry, base)
	require.NoError(err)

	_, err = New[string, string]("test", registry, base)
	require.Error(err)
}
