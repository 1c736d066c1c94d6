package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/mplath/tasknest/internal/api/shared"
	"github.com/mplath/tasknest/internal/domain"
	"github.com/mplath/tasknest/internal/platform/logger"
	"github.com/mplath/tasknest/internal/store"
)

// TaskHandler handles task CRUD requests. Every operation is scoped to the
// authenticated owner; a task belonging to someone else is indistinguishable
// from a missing one.
type TaskHandler struct {
	taskStore store.TaskStore
	validator *validator.Validate
	logger    *slog.Logger
}

// NewTaskHandler creates a TaskHandler with the given dependencies.
func NewTaskHandler(taskStore store.TaskStore, log *slog.Logger) *TaskHandler {
	if log == nil {
		log = slog.Default()
	}

	return &TaskHandler{
		taskStore: taskStore,
		validator: validator.New(),
		logger:    log.With(slog.String("component", "task_handler")),
	}
}

// requireUser extracts the authenticated user from the context. The auth
// middleware guarantees it for every route this handler serves, so a miss
// is a wiring bug surfaced as 401.
func (h *TaskHandler) requireUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := shared.UserIDFromContext(r.Context())
	if !ok || userID == uuid.Nil {
		h.logger.Warn("user ID missing from authenticated request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "No token, authorization denied")
		return uuid.Nil, false
	}
	return userID, true
}

// taskID parses the {id} URL parameter.
func taskID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

// List handles GET /api/tasks.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	tasks, err := h.taskStore.ListByUser(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to list tasks", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskListResponse(tasks))
}

// Get handles GET /api/tasks/{id}.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	id, err := taskID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Task not found")
		return
	}

	task, err := h.taskStore.GetForUser(r.Context(), id, userID)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskResponse(task))
}

// Create handles POST /api/tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	var req TaskCreateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithValidationErrors(w, r, validationMessages(err))
		return
	}

	task, err := domain.NewTask(userID, req.Title, req.Description, req.Date)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	task.Status = req.Status

	if err := h.taskStore.Create(r.Context(), task); err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	log.Info("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("user_id", userID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, NewTaskResponse(task))
}

// Update handles PUT /api/tasks/{id}.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	id, err := taskID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Task not found")
		return
	}

	var req TaskUpdateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithValidationErrors(w, r, validationMessages(err))
		return
	}

	task := &domain.Task{
		ID:          id,
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Status:      req.Status,
		UpdatedAt:   time.Now().UTC(),
	}

	if err := h.taskStore.Update(r.Context(), task); err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	// Read the row back so the response carries the stored timestamps.
	updated, err := h.taskStore.GetForUser(r.Context(), id, userID)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskResponse(updated))
}

// Delete handles DELETE /api/tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	id, err := taskID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Task not found")
		return
	}

	if err := h.taskStore.Delete(r.Context(), id, userID); err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *TaskHandler) respondStoreError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	if status == http.StatusInternalServerError {
		shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithError(w, r, status, GetSafeErrorMessage(err))
}
