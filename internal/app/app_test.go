package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"promptstudio/internal/catalog"
	"promptstudio/internal/config"
	"promptstudio/internal/domain"
	"promptstudio/internal/service"
)

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Simulation.ResponseDelay = "1ms"
	cfg.Simulation.FeedbackDelay = "1ms"
	return cfg
}

func TestNewMemoryStore(t *testing.T) {
	a, err := New(testConfig(), zap.NewNop())
	require.NoError(t, err)
	defer a.Close()

	ctx := context.Background()
	_, err = a.Editor.DropBlock(ctx, domain.BlockTypeTask, "summarize", "")
	require.NoError(t, err)
	v, err := a.Editor.SaveVersion(ctx, "first")
	require.NoError(t, err)
	require.NotNil(t, v)

	versions, err := a.Editor.Versions()
	require.NoError(t, err)
	assert.Len(t, versions, 1)
}

func TestNewSQLiteStorePersistsVersions(t *testing.T) {
	cfg := testConfig()
	cfg.Storage.Driver = config.StorageSQLite
	cfg.Storage.DSN = filepath.Join(t.TempDir(), "versions.db")

	a, err := New(cfg, nil)
	require.NoError(t, err)
	ctx := context.Background()
	_, err = a.Editor.DropBlock(ctx, domain.BlockTypeSystem, "a tester", "")
	require.NoError(t, err)
	_, err = a.Editor.SaveVersion(ctx, "kept")
	require.NoError(t, err)
	require.NoError(t, a.Close())

	reopened, err := New(cfg, nil)
	require.NoError(t, err)
	defer reopened.Close()

	versions, err := reopened.Editor.Versions()
	require.NoError(t, err)
	require.Len(t, versions, 1)
	assert.Equal(t, "kept", versions[0].Name)

	// The canvas itself is not persisted.
	assert.Empty(t, reopened.Editor.Blocks())
}

func TestServeHTTPStopsOnCancel(t *testing.T) {
	a, err := New(testConfig(), zap.NewNop())
	require.NoError(t, err)
	defer a.Close()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.ServeHTTP(ctx, ln) }()

	url := "http://" + ln.Addr().String() + "/api/state"
	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get(url)
		return err == nil
	}, 2*time.Second, 10*time.Millisecond)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var state domain.EditorState
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&state))
	assert.Equal(t, 1, state.HistoryLength)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("ServeHTTP did not return after cancel")
	}
}

// ─────────────────────────────────────────────────────────────
// CLI
// ─────────────────────────────────────────────────────────────

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	root := NewRootCommand("test")
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	err := root.Execute()
	return out.String(), err
}

func writeBlocksFile(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "blocks.json")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestAssembleCommandBareArray(t *testing.T) {
	path := writeBlocksFile(t, []domain.Block{
		{ID: "b", Type: domain.BlockTypeTask, Content: "summarize"},
		{ID: "a", Type: domain.BlockTypeSystem, Content: "a helpful assistant"},
	})

	out, err := runCLI(t, "", "assemble", path)
	require.NoError(t, err)
	assert.Equal(t, "You are a helpful assistant\n\nYour task is to summarize\n", out)
}

func TestAssembleCommandExportFromStdin(t *testing.T) {
	doc := service.ProjectExport{
		Blocks: []domain.Block{{ID: "x", Type: domain.BlockTypeTask, Content: "summarize"}},
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)

	out, err := runCLI(t, string(data), "assemble", "-", "--input", "hello there", "--estimate")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Your task is to summarize\n\nhello there\n"))
	assert.Contains(t, out, "tokens")
}

func TestAssembleCommandRejectsUnknownType(t *testing.T) {
	_, err := runCLI(t, `[{"type":"nope","content":"x"}]`, "assemble", "-")
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrUnknownBlockType)
}

func TestAssembleCommandEmptyInput(t *testing.T) {
	_, err := runCLI(t, "   ", "assemble", "-")
	assert.Error(t, err)
}

func TestSuggestCommandJSON(t *testing.T) {
	out, err := runCLI(t, `[{"type":"task","content":"summarize"}]`, "suggest", "-", "--json")
	require.NoError(t, err)

	var got []domain.Suggestion
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.NotEmpty(t, got)
	assert.Equal(t, domain.BlockTypeSystem, got[0].BlockType)
}

func TestSuggestCommandTable(t *testing.T) {
	out, err := runCLI(t, `[]`, "suggest", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "PRIORITY")
	assert.Contains(t, out, "system")
}

func TestCatalogCommand(t *testing.T) {
	out, err := runCLI(t, "", "catalog", "--json")
	require.NoError(t, err)

	var groups []catalog.PaletteGroup
	require.NoError(t, json.Unmarshal([]byte(out), &groups))
	assert.Len(t, groups, len(catalog.Palette()))

	out, err = runCLI(t, "", "catalog")
	require.NoError(t, err)
	assert.Contains(t, out, "System & Instructions")
}

func TestRootRejectsBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  driver: mongo\n"), 0644))

	_, err := runCLI(t, "", "--config", path, "catalog")
	assert.Error(t, err)
}
