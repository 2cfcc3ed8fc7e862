package handlers

import (
	"github.com/LavaJover/shvark-storefront-service/internal/delivery/http/resp"
	"github.com/LavaJover/shvark-storefront-service/internal/infrastructure/logger"
	"github.com/LavaJover/shvark-storefront-service/internal/usecase"
	"github.com/gin-gonic/gin"
)

type StoreHandler struct {
	uc  usecase.StoreUsecase
	log logger.Logger
}

func NewStoreHandler(uc usecase.StoreUsecase, log logger.Logger) *StoreHandler {
	return &StoreHandler{uc: uc, log: log}
}

func (h *StoreHandler) GetBySlug(c *gin.Context) {
	store, err := h.uc.GetStoreBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.log.WithError(err).Error("failed to load store", map[string]interface{}{"slug": c.Param("slug")})
		resp.ServerError(c, err)
		return
	}
	if store == nil {
		resp.NotFound(c, "store not found")
		return
	}
	resp.OK(c, toStoreResponse(store))
}

func (h *StoreHandler) ListByMerchant(c *gin.Context) {
	stores, err := h.uc.GetStoresByMerchantID(c.Request.Context(), c.Param("merchantId"))
	if err != nil {
		h.log.WithError(err).Error("failed to list stores", map[string]interface{}{"merchant_id": c.Param("merchantId")})
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, toStoreResponses(stores))
}

func (h *StoreHandler) ListTemplates(c *gin.Context) {
	tmpls := h.uc.ListTemplates()
	out := make([]interface{}, 0, len(tmpls))
	for _, t := range tmpls {
		out = append(out, toTemplateResponse(t))
	}
	resp.OK(c, out)
}

func (h *StoreHandler) GetTemplate(c *gin.Context) {
	tmpl := h.uc.GetTemplate(c.Param("id"))
	if tmpl == nil {
		resp.NotFound(c, "template not found")
		return
	}
	resp.OK(c, toTemplateResponse(tmpl))
}
