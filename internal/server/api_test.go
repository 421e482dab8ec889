package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptstudio/internal/domain"
	"promptstudio/internal/service"
	"promptstudio/internal/storage"
)

type fixture struct {
	srv  *httptest.Server
	hub  *Hub
	sim  *service.SimulationService
	stop context.CancelFunc
}

func newFixture(t *testing.T, delay time.Duration) *fixture {
	t.Helper()
	hub := NewHub()
	n := 0
	editor, err := service.NewEditorService(storage.NewMemoryVersionStore(), hub,
		service.WithIDGenerator(func() string { n++; return fmt.Sprintf("b%d", n) }),
	)
	require.NoError(t, err)
	sim := service.NewSimulationService(editor, hub, service.WithDelays(delay, delay))

	ctx, cancel := context.WithCancel(context.Background())
	api := NewAPI(ctx, editor, sim, hub, nil)
	srv := httptest.NewServer(api.Handler())

	f := &fixture{srv: srv, hub: hub, sim: sim, stop: cancel}
	t.Cleanup(func() {
		cancel()
		_ = sim.Wait(context.Background())
		hub.Close()
		srv.Close()
	})
	return f
}

func (f *fixture) do(t *testing.T, method, path string, body any) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, f.srv.URL+path, r)
	require.NoError(t, err)
	resp, err := f.srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func decodeBody[T any](t *testing.T, data []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(data, &v))
	return v
}

func TestAPI_BlockRoutes(t *testing.T) {
	f := newFixture(t, 0)

	resp, body := f.do(t, http.MethodPost, "/api/blocks", map[string]string{"type": "task", "content": "summarise"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "b1", decodeBody[domain.Block](t, body).ID)

	resp, body = f.do(t, http.MethodPost, "/api/blocks", map[string]string{"type": "format", "content": "JSON", "category": "suggestion"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, domain.CategorySuggestion, decodeBody[domain.Block](t, body).Category)

	resp, body = f.do(t, http.MethodPatch, "/api/blocks/b1", map[string]string{"content": "translate"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "translate", decodeBody[domain.Block](t, body).Content)

	resp, body = f.do(t, http.MethodPost, "/api/blocks/b2/move", map[string]int{"index": 0})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "b2", decodeBody[domain.EditorState](t, body).Blocks[0].ID)

	resp, _ = f.do(t, http.MethodDelete, "/api/blocks/b2", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, body = f.do(t, http.MethodGet, "/api/state", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	state := decodeBody[domain.EditorState](t, body)
	assert.Len(t, state.Blocks, 1)
	assert.Equal(t, 6, state.HistoryLength)
}

func TestAPI_Errors(t *testing.T) {
	f := newFixture(t, 0)

	cases := []struct {
		name   string
		method string
		path   string
		body   any
		status int
	}{
		{"unknown type", http.MethodPost, "/api/blocks", map[string]string{"type": "bogus"}, http.StatusBadRequest},
		{"unknown field", http.MethodPost, "/api/blocks", map[string]string{"kind": "task"}, http.StatusBadRequest},
		{"update missing block", http.MethodPatch, "/api/blocks/nope", map[string]string{"content": "x"}, http.StatusNotFound},
		{"update without content", http.MethodPatch, "/api/blocks/nope", map[string]string{}, http.StatusBadRequest},
		{"delete missing block", http.MethodDelete, "/api/blocks/nope", nil, http.StatusNotFound},
		{"move without index", http.MethodPost, "/api/blocks/nope/move", map[string]string{}, http.StatusBadRequest},
		{"simulate empty canvas", http.MethodPost, "/api/simulate", nil, http.StatusUnprocessableEntity},
		{"wrong method", http.MethodDelete, "/api/state", nil, http.StatusMethodNotAllowed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, _ := f.do(t, tc.method, tc.path, tc.body)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}

func TestAPI_HistoryAndVersions(t *testing.T) {
	f := newFixture(t, 0)
	f.do(t, http.MethodPost, "/api/blocks", map[string]string{"type": "task", "content": "one"})

	resp, _ := f.do(t, http.MethodPost, "/api/versions", map[string]string{"name": ""})
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, body := f.do(t, http.MethodPost, "/api/versions", map[string]string{"name": "v1"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	v := decodeBody[domain.SavedVersion](t, body)

	f.do(t, http.MethodPost, "/api/blocks", map[string]string{"type": "context", "content": "two"})

	_, body = f.do(t, http.MethodPost, "/api/undo", nil)
	assert.Len(t, decodeBody[domain.EditorState](t, body).Blocks, 1)
	_, body = f.do(t, http.MethodPost, "/api/redo", nil)
	assert.Len(t, decodeBody[domain.EditorState](t, body).Blocks, 2)

	_, body = f.do(t, http.MethodGet, "/api/versions", nil)
	assert.Len(t, decodeBody[[]domain.SavedVersion](t, body), 1)

	resp, body = f.do(t, http.MethodPost, "/api/versions/"+v.ID+"/load", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	state := decodeBody[domain.EditorState](t, body)
	assert.Equal(t, v.Blocks, state.Blocks)
	assert.False(t, state.CanUndo)

	resp, _ = f.do(t, http.MethodPost, "/api/versions/missing/load", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAPI_PreviewAndExport(t *testing.T) {
	f := newFixture(t, 0)
	f.do(t, http.MethodPost, "/api/blocks", map[string]string{"type": "instruction", "content": "x"})
	f.do(t, http.MethodPut, "/api/test-input", map[string]string{"input": "hello world"})

	_, body := f.do(t, http.MethodGet, "/api/preview", nil)
	p := decodeBody[service.Preview](t, body)
	assert.Equal(t, "Please x\n\nhello world", p.Prompt)
	assert.Equal(t, 3, p.Estimate.Tokens)

	_, body = f.do(t, http.MethodGet, "/api/suggestions", nil)
	assert.NotEmpty(t, decodeBody[[]domain.Suggestion](t, body))

	resp, body := f.do(t, http.MethodGet, "/api/export", nil)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), service.ExportFileName)
	assert.Equal(t, "Please x\n\nhello world", decodeBody[service.ProjectExport](t, body).AssembledPrompt)

	_, body = f.do(t, http.MethodGet, "/api/catalog", nil)
	cat := decodeBody[map[string]json.RawMessage](t, body)
	assert.Contains(t, cat, "palette")
}

func TestAPI_CORSPreflight(t *testing.T) {
	f := newFixture(t, 0)

	req, err := http.NewRequest(http.MethodOptions, f.srv.URL+"/api/blocks", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:5173")
	resp, err := f.srv.Client().Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "http://localhost:5173", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), "PATCH")
}

func TestAPI_SimulateStreamsEvents(t *testing.T) {
	f := newFixture(t, 10*time.Millisecond)

	wsURL := "ws" + strings.TrimPrefix(f.srv.URL, "http") + "/events"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	read := func() Event {
		t.Helper()
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		var ev Event
		require.NoError(t, conn.ReadJSON(&ev))
		return ev
	}

	assert.Equal(t, "editor:state", read().Type)
	require.Eventually(t, func() bool { return f.hub.Subscribers() == 1 }, time.Second, 5*time.Millisecond)

	f.do(t, http.MethodPost, "/api/blocks", map[string]string{"type": "task", "content": "sum"})
	assert.Equal(t, service.EventEditorChanged, read().Type)

	resp, _ := f.do(t, http.MethodPost, "/api/simulate", nil)
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	var got []string
	for len(got) < 3 {
		got = append(got, read().Type)
	}
	assert.Equal(t, []string{
		service.EventSimulationStarted,
		service.EventSimulationResult,
		service.EventSimulationFeedback,
	}, got)

	require.NoError(t, f.sim.Wait(context.Background()))
	_, body := f.do(t, http.MethodGet, "/api/simulation", nil)
	status := decodeBody[struct {
		Running bool             `json:"running"`
		Last    *service.Outcome `json:"last"`
	}](t, body)
	assert.False(t, status.Running)
	require.NotNil(t, status.Last)
	assert.Equal(t, "Your task is to sum", status.Last.Prompt)
}
