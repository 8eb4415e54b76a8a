package inventory

import (
	"errors"
	"strings"

	"inventory-manager/core/logger"
	"inventory-manager/core/provider"
	"inventory-manager/core/reconcile"
	"inventory-manager/feature/inventory/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for reconciliation.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the reconciliation routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/reconcile")
	group.Get("/kinds", h.HandleListKinds)
	group.Post("/:kind", h.HandleReconcile)
}

// HandleListKinds returns the registered resource kinds.
// @Summary List Resource Kinds
// @Description List the resource kinds available for reconciliation.
// @Tags reconcile
// @Produce json
// @Success 200 {object} models.KindsResponse "Registered Kinds"
// @Router /reconcile/kinds [get]
func (h *Handler) HandleListKinds(c *fiber.Ctx) error {
	return c.JSON(models.KindsResponse{Kinds: h.service.Kinds()})
}

// HandleReconcile runs one reconciliation cycle for a resource kind.
// @Summary Reconcile a Resource Kind
// @Description Enumerate the remote provider for one resource kind and reconcile the local inventory against it.
// @Tags reconcile
// @Accept json
// @Produce json
// @Param kind path string true "Resource Kind (e.g. 'instances')"
// @Param request body models.ReconcileRequest true "Cycle Request"
// @Success 200 {object} reconcile.Summary "Cycle Summary"
// @Failure 400 {object} models.ErrorResponse "Malformed Request"
// @Failure 404 {object} models.ErrorResponse "Unknown Kind"
// @Failure 409 {object} models.ErrorResponse "Scope Busy"
// @Failure 500 {object} models.ErrorResponse "Cycle Failed"
// @Router /reconcile/{kind} [post]
func (h *Handler) HandleReconcile(c *fiber.Ctx) error {
	kind := c.Params("kind")
	l := logger.WithRayID(h.service.logger, c)

	var body models.ReconcileRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "malformed request body: " + err.Error(),
		})
	}

	summary, err := h.service.Run(c.Context(), kind, buildRequest(body))
	if err != nil {
		l.Error("Reconciliation cycle failed",
			zap.String("kind", kind), zap.Error(err))
		return c.Status(statusFor(err)).JSON(models.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(summary)
}

// buildRequest converts the HTTP body into an engine request. The action
// defaults to START so a bare POST runs a full cycle.
func buildRequest(body models.ReconcileRequest) reconcile.Request {
	action := reconcile.ActionStart
	if body.Action != "" {
		action = reconcile.Action(strings.ToUpper(body.Action))
	}

	return reconcile.Request{
		Scope: provider.Scope{
			EndpointLink:     body.EndpointLink,
			Region:           body.Region,
			Account:          body.Account,
			TenantLinks:      body.TenantLinks,
			ResourcePoolLink: body.ResourcePoolLink,
			OwnerAuth:        body.OwnerAuth,
		},
		Action:         action,
		RemovalPolicy:  reconcile.RemovalPolicy(strings.ToUpper(body.RemovalPolicy)),
		SourceTaskLink: body.SourceTaskLink,
		IsMock:         body.IsMockRequest,
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrUnknownKind):
		return fiber.StatusNotFound
	case errors.Is(err, reconcile.ErrScopeBusy):
		return fiber.StatusConflict
	case errors.Is(err, reconcile.ErrUnknownAction):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
