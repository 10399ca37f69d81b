package content

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestStoreWatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.yaml")
	write := func(brand string) {
		body := fmt.Sprintf("brand: {name: %s}\nhero: {headline: H}\n", brand)
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	}
	write("First")

	lib, err := LoadDir(dir, "")
	require.NoError(t, err)
	store := NewStore(lib)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- store.Watch(ctx, dir, "", zaptest.NewLogger(t)) }()

	// rewrite until the watcher has picked it up
	require.Eventually(t, func() bool {
		write("Second")
		return store.Library().Default().Brand.Name == "Second"
	}, 5*time.Second, 2*reloadDebounce)

	// a broken file keeps the last good library
	require.NoError(t, os.WriteFile(path, []byte("brand: [\n"), 0o644))
	time.Sleep(2 * reloadDebounce)
	require.Equal(t, "Second", store.Library().Default().Brand.Name)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
