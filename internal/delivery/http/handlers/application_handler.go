package handlers

import (
	"errors"
	"strings"

	"github.com/LavaJover/shvark-storefront-service/internal/delivery/http/dto/request"
	"github.com/LavaJover/shvark-storefront-service/internal/delivery/http/dto/response"
	"github.com/LavaJover/shvark-storefront-service/internal/delivery/http/middleware"
	"github.com/LavaJover/shvark-storefront-service/internal/delivery/http/resp"
	"github.com/LavaJover/shvark-storefront-service/internal/domain"
	"github.com/LavaJover/shvark-storefront-service/internal/infrastructure/logger"
	"github.com/LavaJover/shvark-storefront-service/internal/usecase/application"
	applicationdto "github.com/LavaJover/shvark-storefront-service/internal/usecase/dto/application"
	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	uc        application.ApplicationUsecase
	templates domain.TemplateCatalog
	log       logger.Logger
}

func NewApplicationHandler(uc application.ApplicationUsecase, templates domain.TemplateCatalog, log logger.Logger) *ApplicationHandler {
	useJSONFieldNames()
	return &ApplicationHandler{uc: uc, templates: templates, log: log}
}

// Submit creates a pending application for the calling merchant.
func (h *ApplicationHandler) Submit(c *gin.Context) {
	var req request.SubmitApplicationRequest
	if !h.bindJSON(c, &req) {
		return
	}

	templateID := strings.TrimSpace(req.StoreConfig.Template)
	if templateID == "" || h.templates.FindByID(templateID) == nil {
		verr := &domain.ValidationError{}
		verr.Add("storeConfig.template", "unknown template")
		h.writeError(c, verr)
		return
	}
	req.StoreConfig.Template = templateID

	id, err := h.uc.SubmitApplication(c.Request.Context(), toSubmitInput(middleware.CurrentUserID(c), &req))
	if err != nil {
		h.writeError(c, err)
		return
	}
	resp.Created(c, response.SubmitApplicationResponse{ID: id, Status: string(domain.ApplicationPending)})
}

func (h *ApplicationHandler) GetByID(c *gin.Context) {
	app, err := h.uc.GetApplicationByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	// Merchants only see their own applications.
	if app == nil || (!middleware.IsAdmin(c) && app.MerchantID != middleware.CurrentUserID(c)) {
		resp.NotFound(c, domain.ErrApplicationNotFound.Error())
		return
	}
	resp.OK(c, toApplicationResponse(app))
}

func (h *ApplicationHandler) GetByMerchant(c *gin.Context) {
	merchantID := c.Param("merchantId")
	if !middleware.IsAdmin(c) && merchantID != middleware.CurrentUserID(c) {
		resp.Forbidden(c, "cannot view another merchant's application")
		return
	}

	app, err := h.uc.GetApplicationByMerchantID(c.Request.Context(), merchantID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if app == nil {
		resp.NotFound(c, domain.ErrApplicationNotFound.Error())
		return
	}
	resp.OK(c, toApplicationResponse(app))
}

func (h *ApplicationHandler) List(c *gin.Context) {
	var status *domain.ApplicationStatus
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		s := domain.ApplicationStatus(strings.ToLower(raw))
		if !s.Valid() {
			resp.BadRequest(c, "unknown status "+raw)
			return
		}
		status = &s
	}

	apps, err := h.uc.ListApplications(c.Request.Context(), status)
	if err != nil {
		h.writeError(c, err)
		return
	}
	resp.OK(c, toApplicationResponses(apps))
}

func (h *ApplicationHandler) Stats(c *gin.Context) {
	stats, err := h.uc.GetApplicationStats(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	resp.OK(c, response.StatsResponse(*stats))
}

func (h *ApplicationHandler) Approve(c *gin.Context) {
	decision, err := h.uc.ApproveApplication(c.Request.Context(), c.Param("id"), middleware.CurrentUserID(c))
	h.writeDecision(c, decision, err)
}

func (h *ApplicationHandler) Reject(c *gin.Context) {
	var req request.RejectApplicationRequest
	if !h.bindJSON(c, &req) {
		return
	}

	decision, err := h.uc.RejectApplication(c.Request.Context(), &applicationdto.RejectApplicationInput{
		ApplicationID: c.Param("id"),
		ReviewerID:    middleware.CurrentUserID(c),
		Reason:        req.Reason,
	})
	h.writeDecision(c, decision, err)
}

func (h *ApplicationHandler) RetryProvisioning(c *gin.Context) {
	decision, err := h.uc.RetryProvisioning(c.Request.Context(), c.Param("id"))
	h.writeDecision(c, decision, err)
}

// writeDecision maps a reviewer action onto a status code:
// 404 unknown application, 409 no legal transition, 202 approved without a
// working store, 200 otherwise.
func (h *ApplicationHandler) writeDecision(c *gin.Context, d *application.Decision, err error) {
	switch {
	case err != nil:
		h.writeError(c, err)
	case !d.Found():
		resp.NotFound(c, domain.ErrApplicationNotFound.Error())
	case !d.Applied:
		resp.Conflict(c, domain.ErrInvalidTransition.Error(), toApplicationResponse(d.Application))
	case d.NeedsProvisioningRetry():
		resp.Accepted(c, toDecisionResponse(d))
	default:
		resp.OK(c, toDecisionResponse(d))
	}
}

func (h *ApplicationHandler) writeError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		resp.Invalid(c, verr.Error(), toFieldErrors(verr.Fields))
	case errors.Is(err, domain.ErrActiveApplicationExists):
		resp.Conflict(c, err.Error(), nil)
	default:
		h.log.WithError(err).Error("request failed", map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.FullPath(),
		})
		resp.ServerError(c, err)
	}
}
