package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"promptstudio/internal/catalog"
	"promptstudio/internal/domain"
	"promptstudio/internal/service"
)

// maxBodyBytes bounds request bodies; blocks are short text.
const maxBodyBytes = 1 << 20

// API binds the editor services to HTTP routes.
type API struct {
	editor     *service.EditorService
	simulation *service.SimulationService
	hub        *Hub
	logger     *zap.Logger
	// base outlives individual requests; background simulations use it.
	base context.Context
}

// NewAPI builds the API. base bounds the lifetime of simulations started
// over HTTP; cancel it on shutdown.
func NewAPI(base context.Context, editor *service.EditorService, simulation *service.SimulationService, hub *Hub, logger *zap.Logger) *API {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &API{
		editor:     editor,
		simulation: simulation,
		hub:        hub,
		logger:     logger.Named("api"),
		base:       base,
	}
}

// Handler returns the routed, CORS-wrapped handler.
func (a *API) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/state", a.handleState)
	mux.HandleFunc("GET /api/catalog", a.handleCatalog)

	mux.HandleFunc("POST /api/blocks", a.handleAddBlock)
	mux.HandleFunc("PATCH /api/blocks/{id}", a.handleUpdateBlock)
	mux.HandleFunc("DELETE /api/blocks/{id}", a.handleRemoveBlock)
	mux.HandleFunc("POST /api/blocks/{id}/move", a.handleMoveBlock)
	mux.HandleFunc("PUT /api/test-input", a.handleSetTestInput)

	mux.HandleFunc("POST /api/undo", a.handleUndo)
	mux.HandleFunc("POST /api/redo", a.handleRedo)

	mux.HandleFunc("GET /api/versions", a.handleListVersions)
	mux.HandleFunc("POST /api/versions", a.handleSaveVersion)
	mux.HandleFunc("POST /api/versions/{id}/load", a.handleLoadVersion)

	mux.HandleFunc("GET /api/preview", a.handlePreview)
	mux.HandleFunc("GET /api/suggestions", a.handleSuggestions)
	mux.HandleFunc("POST /api/simulate", a.handleSimulate)
	mux.HandleFunc("GET /api/simulation", a.handleSimulation)
	mux.HandleFunc("GET /api/export", a.handleExport)

	mux.HandleFunc("GET /events", a.handleEvents)

	return CORS(a.logRequests(mux))
}

// ── Read side ──────────────────────────────────────────────

func (a *API) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.editor.Snapshot())
}

func (a *API) handleCatalog(w http.ResponseWriter, r *http.Request) {
	types := catalog.Types()
	configs := make(map[domain.BlockType]domain.BlockConfig, len(types))
	for _, t := range types {
		configs[t] = catalog.Lookup(t)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"palette": catalog.Palette(),
		"configs": configs,
	})
}

func (a *API) handlePreview(w http.ResponseWriter, r *http.Request) {
	reasoning, _ := strconv.ParseBool(r.URL.Query().Get("reasoning"))
	writeJSON(w, http.StatusOK, a.editor.Preview(reasoning))
}

func (a *API) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.editor.Preview(false).Suggestions)
}

func (a *API) handleExport(w http.ResponseWriter, r *http.Request) {
	data, err := service.MarshalExport(a.editor.Export())
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", service.ExportFileName))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// ── Blocks ─────────────────────────────────────────────────

type addBlockRequest struct {
	Type     domain.BlockType `json:"type"`
	Content  string           `json:"content"`
	Category string           `json:"category"`
}

func (a *API) handleAddBlock(w http.ResponseWriter, r *http.Request) {
	var req addBlockRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	var (
		b   domain.Block
		err error
	)
	if req.Category == domain.CategorySuggestion {
		b, err = a.editor.AcceptSuggestion(r.Context(), req.Type, req.Content)
	} else {
		b, err = a.editor.DropBlock(r.Context(), req.Type, req.Content, req.Category)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

func (a *API) handleUpdateBlock(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content *string `json:"content"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Content == nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "content is required"})
		return
	}
	b, err := a.editor.UpdateBlock(r.Context(), r.PathValue("id"), *req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (a *API) handleRemoveBlock(w http.ResponseWriter, r *http.Request) {
	if err := a.editor.RemoveBlock(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleMoveBlock(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Index *int `json:"index"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Index == nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "index is required"})
		return
	}
	if err := a.editor.MoveBlock(r.Context(), r.PathValue("id"), *req.Index); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a.editor.Snapshot())
}

func (a *API) handleSetTestInput(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Input string `json:"input"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	a.editor.SetTestInput(r.Context(), req.Input)
	writeJSON(w, http.StatusOK, a.editor.Snapshot())
}

// ── History and versions ───────────────────────────────────

func (a *API) handleUndo(w http.ResponseWriter, r *http.Request) {
	a.editor.Undo(r.Context())
	writeJSON(w, http.StatusOK, a.editor.Snapshot())
}

func (a *API) handleRedo(w http.ResponseWriter, r *http.Request) {
	a.editor.Redo(r.Context())
	writeJSON(w, http.StatusOK, a.editor.Snapshot())
}

func (a *API) handleListVersions(w http.ResponseWriter, r *http.Request) {
	versions, err := a.editor.Versions()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, versions)
}

func (a *API) handleSaveVersion(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	v, err := a.editor.SaveVersion(r.Context(), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	if v == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusCreated, v)
}

func (a *API) handleLoadVersion(w http.ResponseWriter, r *http.Request) {
	if _, err := a.editor.LoadVersion(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a.editor.Snapshot())
}

// ── Simulation ─────────────────────────────────────────────

func (a *API) handleSimulate(w http.ResponseWriter, r *http.Request) {
	results, err := a.simulation.Start(a.base)
	if err != nil {
		writeError(w, err)
		return
	}
	go func() {
		res := <-results
		if res.Err != nil {
			a.logger.Warn("simulation failed", zap.Error(res.Err))
		}
	}()
	writeJSON(w, http.StatusAccepted, map[string]bool{"running": true})
}

func (a *API) handleSimulation(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"running": a.simulation.Running(),
		"last":    a.simulation.Last(),
	})
}

// ── Helpers ────────────────────────────────────────────────

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps service errors onto HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrBlockNotFound), errors.Is(err, domain.ErrVersionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrUnknownBlockType):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrEmptyPrompt):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrSimulationRunning):
		status = http.StatusConflict
	}
	writeJSON(w, status, errorBody{Error: err.Error()})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request body: " + err.Error()})
		return false
	}
	return true
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (r *statusRecorder) Unwrap() http.ResponseWriter { return r.ResponseWriter }

func (a *API) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/events" {
			// The websocket upgrade needs the raw writer's Hijacker.
			next.ServeHTTP(w, r)
			return
		}
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		a.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("took", time.Since(start)),
		)
	})
}
