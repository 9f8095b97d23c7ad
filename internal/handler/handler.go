package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	_ "github.com/kavia-common/notes-backend/docs" // Import generated docs
	"github.com/kavia-common/notes-backend/internal/database"
	"github.com/kavia-common/notes-backend/internal/handler/dto"
	"github.com/kavia-common/notes-backend/internal/repository"
	"github.com/kavia-common/notes-backend/internal/service"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	db          *database.DB
	noteService *service.NoteService
}

// New creates a new Handler instance with all dependencies. The database
// handle is lazy: nothing here connects, so construction always succeeds.
func New(db *database.DB) *Handler {
	noteRepo := repository.NewNoteRepository(db)
	noteService := service.NewNoteService(noteRepo)

	return &Handler{
		db:          db,
		noteService: noteService,
	}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Liveness and readiness
	mux.HandleFunc("GET /{$}", h.handleRoot)
	mux.HandleFunc("GET /healthz", h.handleHealthz)

	// Swagger UI
	mux.HandleFunc("GET /swagger/", httpSwagger.Handler())

	// Notes CRUD
	mux.HandleFunc("GET /notes", h.handleListNotes)
	mux.HandleFunc("POST /notes", h.handleCreateNote)
	mux.HandleFunc("GET /notes/{id}", h.handleGetNote)
	mux.HandleFunc("PUT /notes/{id}", h.handleUpdateNote)
	mux.HandleFunc("DELETE /notes/{id}", h.handleDeleteNote)

	// Statistics
	mux.HandleFunc("GET /stats", h.handleGetStats)
}

// handleRoot reports liveness. It must never touch the database: an
// unreachable database may fail requests, not the health check.
// @Summary Health Check
// @Description Returns a simple message indicating the service is healthy.
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router / [get]
func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, dto.HealthResponse{Message: "Healthy"})
}

// handleHealthz reports readiness: 200 only when the database is reachable.
// The first call triggers lazy pool and schema initialization.
// @Summary Readiness Check
// @Description Returns 200 when the database is reachable, 503 otherwise.
// @Tags health
// @Success 200
// @Failure 503
// @Router /healthz [get]
func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.db.Ping(ctx); err != nil {
		slog.Error("database health check failed", "error", err)
		http.Error(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// respondError writes a standard error response.
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, dto.NewErrorResponse(code, message))
}

// extractNoteID extracts and validates the note ID from the path parameter.
// Returns (noteID, true) if valid, (0, false) if invalid (error already sent
// to the client).
func extractNoteID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.PathValue("id")
	if raw == "" {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "note id is required")
		return 0, false
	}

	noteID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || noteID <= 0 {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "note id must be a positive integer")
		return 0, false
	}

	return noteID, true
}
