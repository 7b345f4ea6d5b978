package resource

import (
	"log/slog"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/aegisx/platform/internal/domain"
	"github.com/aegisx/platform/internal/middleware"
	"github.com/aegisx/platform/internal/pkg"
	"github.com/aegisx/platform/internal/policy"
)

// Entity is satisfied by any record embedding domain.BaseModel.
type Entity interface {
	GetID() uint
}

// Handler adapts one HTTP route handler per CRUD verb for a resource. C and
// U are the create and update DTO types; the conversion closures keep the
// handler generic while each module owns its binding shapes.
type Handler[T Entity, C any, U any] struct {
	svc         CRUDService[T]
	spec        Spec
	logger      *slog.Logger
	fromCreate  func(C) T
	applyUpdate func(*T, U)
}

// NewHandler creates a Handler wired to the given service and converters.
func NewHandler[T Entity, C any, U any](
	svc CRUDService[T],
	spec Spec,
	logger *slog.Logger,
	fromCreate func(C) T,
	applyUpdate func(*T, U),
) *Handler[T, C, U] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler[T, C, U]{
		svc:         svc,
		spec:        spec,
		logger:      logger,
		fromCreate:  fromCreate,
		applyUpdate: applyUpdate,
	}
}

// List handles GET /{resource}. It resolves the caller's role, intersects
// the requested projection with the role's allow-list, and degrades rather
// than rejects: disallowed fields are dropped and logged as suspicious.
func (h *Handler[T, C, U]) List(c *gin.Context) {
	q := pkg.ParseListQuery(c, h.spec.MaxLimit)

	role := middleware.RoleFromContext(c)
	allowed := policy.AllowedFields(h.spec.Name, role)
	safe, refused := pkg.IntersectFields(q.Fields, allowed)
	if len(refused) > 0 {
		h.logger.WarnContext(c.Request.Context(), "suspicious field access attempt",
			slog.String("resource", h.spec.Name),
			slog.String("role", role),
			slog.String("actor", middleware.UserIDFromContext(c)),
			slog.Any("refused_fields", refused),
			slog.String("client_ip", c.ClientIP()),
		)
	}
	q.Fields = safe

	result, err := h.svc.List(c.Request.Context(), q)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Get handles GET /{resource}/:id.
func (h *Handler[T, C, U]) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	entity, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, entity)
}

// Create handles POST /{resource}.
func (h *Handler[T, C, U]) Create(c *gin.Context) {
	var req C
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	entity := h.fromCreate(req)
	if err := h.svc.Create(c.Request.Context(), &entity); err != nil {
		pkg.Error(c, err)
		return
	}

	h.logMutation(c, "created", entity.GetID())
	pkg.Created(c, entity)
}

// Update handles PUT /{resource}/:id.
func (h *Handler[T, C, U]) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req U
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	entity, err := h.svc.Update(c.Request.Context(), id, func(e *T) {
		h.applyUpdate(e, req)
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	h.logMutation(c, "updated", id)
	pkg.Success(c, entity)
}

// Delete handles DELETE /{resource}/:id. A guarded record fails with
// DELETE_BLOCKED and the blocking references in the error details.
func (h *Handler[T, C, U]) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	h.logMutation(c, "deleted", id)
	pkg.Success(c, nil)
}

// References handles GET /{resource}/:id/references: the delete guard
// result without performing a delete.
func (h *Handler[T, C, U]) References(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	guard, err := h.svc.DeleteCheck(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, guard)
}

// Stats handles GET /{resource}/stats.
func (h *Handler[T, C, U]) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, stats)
}

func (h *Handler[T, C, U]) parseID(c *gin.Context) (uint, bool) {
	id, err := ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return 0, false
	}
	return id, true
}

func (h *Handler[T, C, U]) logMutation(c *gin.Context, action string, id uint) {
	h.logger.InfoContext(c.Request.Context(), h.spec.Name+" "+action,
		slog.String("resource", h.spec.Name),
		slog.Uint64("id", uint64(id)),
		slog.String("actor", middleware.UserIDFromContext(c)),
	)
}

// ParseID extracts and parses the ":id" path parameter.
func ParseID(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, &invalidIDError{raw: raw}
	}
	return uint(id), nil
}

type invalidIDError struct{ raw string }

func (e *invalidIDError) Error() string {
	return "invalid id " + strconv.Quote(e.raw) + ": must be a positive integer"
}
