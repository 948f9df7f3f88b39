package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/docnhanh/newsdesk/internal/ai"
	"github.com/docnhanh/newsdesk/internal/audit"
	"github.com/docnhanh/newsdesk/internal/auth"
	"github.com/docnhanh/newsdesk/internal/handler/dto"
	"github.com/docnhanh/newsdesk/internal/notify"
	"github.com/docnhanh/newsdesk/internal/rbac"
	"github.com/docnhanh/newsdesk/internal/repository"
	"github.com/docnhanh/newsdesk/internal/service"
)

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	pool           *pgxpool.Pool
	taskService    *service.TaskService
	accountService *service.AccountService
	actorService   *service.ActorService
	deptService    *service.DepartmentService
	articleService *service.ArticleService
	scanService    *service.ScanService
	actorRepo      *repository.ActorRepository
	auditReader    *audit.Reader
	guard          *rbac.Guard
	authMiddleware *auth.Middleware
}

// New creates a new Handler instance with all dependencies.
func New(pool *pgxpool.Pool, tokens *auth.Manager, publisher *notify.Publisher, writer *ai.Writer) *Handler {
	taskRepo := repository.NewTaskRepository(pool)
	updateRepo := repository.NewTaskUpdateRepository(pool)
	actorRepo := repository.NewActorRepository(pool)
	deptRepo := repository.NewDepartmentRepository(pool)
	articleRepo := repository.NewArticleRepository(pool)
	scanRepo := repository.NewScanJobRepository(pool)

	guard := rbac.NewGuard(rbac.NewMatrix())
	recorder := audit.NewRecorder()

	return &Handler{
		pool:           pool,
		taskService:    service.NewTaskService(pool, taskRepo, updateRepo, actorRepo, deptRepo, articleRepo, guard, recorder, publisher),
		accountService: service.NewAccountService(pool, actorRepo, tokens, recorder),
		actorService:   service.NewActorService(pool, actorRepo, guard, recorder),
		deptService:    service.NewDepartmentService(pool, deptRepo, guard, recorder),
		articleService: service.NewArticleService(pool, articleRepo, taskRepo, guard, recorder, writer),
		scanService:    service.NewScanService(pool, scanRepo, guard, recorder),
		actorRepo:      actorRepo,
		auditReader:    audit.NewReader(pool),
		guard:          guard,
		authMiddleware: auth.NewMiddleware(tokens, actorRepo),
	}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", h.handleHealthz)

	mux.HandleFunc("POST /api/v1/auth/login", h.handleLogin)
	mux.Handle("POST /api/v1/auth/logout", h.authenticated(h.handleLogout))
	mux.Handle("GET /api/v1/auth/me", h.authenticated(h.handleMe))

	mux.Handle("GET /api/v1/tasks", h.authenticated(h.handleListTasks))
	mux.Handle("POST /api/v1/tasks", h.authenticated(h.handleCreateTask))
	mux.Handle("GET /api/v1/tasks/stats", h.authenticated(h.handleTaskStats))
	mux.Handle("POST /api/v1/tasks/bulk-update", h.authenticated(h.handleBulkUpdateTasks))
	mux.Handle("GET /api/v1/tasks/{id}", h.authenticated(h.handleGetTask))
	mux.Handle("PUT /api/v1/tasks/{id}", h.authenticated(h.handleUpdateTask))
	mux.Handle("DELETE /api/v1/tasks/{id}", h.authenticated(h.handleDeleteTask))
	mux.Handle("POST /api/v1/tasks/{id}/submit", h.authenticated(h.handleSubmitTask))
	mux.Handle("POST /api/v1/tasks/{id}/review", h.authenticated(h.handleReviewTask))

	mux.Handle("GET /api/v1/users", h.authenticated(h.handleListUsers))
	mux.Handle("POST /api/v1/users", h.authenticated(h.handleCreateUser))
	mux.Handle("GET /api/v1/users/{id}", h.authenticated(h.handleGetUser))
	mux.Handle("PUT /api/v1/users/{id}", h.authenticated(h.handleUpdateUser))
	mux.Handle("DELETE /api/v1/users/{id}", h.authenticated(h.handleDeleteUser))

	mux.Handle("GET /api/v1/departments", h.authenticated(h.handleListDepartments))
	mux.Handle("POST /api/v1/departments", h.authenticated(h.handleCreateDepartment))
	mux.Handle("PUT /api/v1/departments/{id}", h.authenticated(h.handleUpdateDepartment))
	mux.Handle("DELETE /api/v1/departments/{id}", h.authenticated(h.handleDeleteDepartment))

	mux.Handle("GET /api/v1/articles", h.authenticated(h.handleListArticles))
	mux.Handle("POST /api/v1/articles", h.authenticated(h.handleCreateArticle))
	mux.Handle("GET /api/v1/articles/{id}", h.authenticated(h.handleGetArticle))
	mux.Handle("DELETE /api/v1/articles/{id}", h.authenticated(h.handleDeleteArticle))

	mux.Handle("GET /api/v1/scans", h.authenticated(h.handleListScans))
	mux.Handle("POST /api/v1/scans", h.authenticated(h.handleCreateScan))

	mux.Handle("GET /api/v1/audit-log", h.authenticated(h.handleListAuditLog))
}

func (h *Handler) authenticated(fn http.HandlerFunc) http.Handler {
	return h.authMiddleware.Authenticate(fn)
}

// handleHealthz returns 200 OK if the database is reachable.
func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if err := h.pool.Ping(r.Context()); err != nil {
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

// respondDomainError maps a domain error onto the status taxonomy.
func respondDomainError(w http.ResponseWriter, err error) {
	status, code, message := dto.MapDomainError(err)
	respondError(w, status, code, message)
}

// decodeStrict decodes a JSON body rejecting unknown fields, so typos
// and unexpected keys fail loudly instead of being silently dropped.
func decodeStrict(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// extractID extracts and validates a UUID path parameter.
// Returns (id, true) if valid, ("", false) if invalid (error already
// sent to the client).
func extractID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.PathValue("id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "id is required")
		return "", false
	}
	if _, err := uuid.Parse(id); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "id must be a valid UUID")
		return "", false
	}
	return id, true
}
