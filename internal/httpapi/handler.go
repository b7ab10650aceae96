package httpapi

import (
	"net/http"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"catppuccin-api/internal/app"
	"catppuccin-api/internal/ports"
	"catppuccin-api/internal/shared"
)

// Handler serves the catalog. Cache is optional and only reported on by
// /health; the catalog itself never reads it after startup.
type Handler struct {
	Query app.QueryService
	Cache ports.DocumentCachePort
}

func NewHandler(query app.QueryService, cache ports.DocumentCachePort) *Handler {
	return &Handler{Query: query, Cache: cache}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/ports", h.listPorts)
	rg.GET("/ports/:identifier", h.getPort)
	rg.GET("/port/:identifier", h.getPort)
	rg.GET("/collaborators", h.listCollaborators)
	rg.GET("/collaborators/:username", h.getCollaborator)
	rg.GET("/collaborator/:username", h.getCollaborator)
	rg.GET("/categories", h.listCategories)
	rg.GET("/categories/:key", h.getCategory)
	rg.GET("/showcases", h.listShowcases)
	rg.GET("/health", h.health)
}

func (h *Handler) listPorts(c *gin.Context) {
	c.JSON(http.StatusOK, h.Query.ListPorts())
}

func (h *Handler) getPort(c *gin.Context) {
	lookup, err := h.Query.FindPort(c.Param("identifier"), c.Query("match"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, lookup)
}

func (h *Handler) listCollaborators(c *gin.Context) {
	c.JSON(http.StatusOK, h.Query.ListCollaborators())
}

func (h *Handler) getCollaborator(c *gin.Context) {
	collaborator, err := h.Query.GetCollaborator(c.Param("username"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, collaborator)
}

func (h *Handler) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.Query.ListCategories())
}

func (h *Handler) getCategory(c *gin.Context) {
	category, err := h.Query.GetCategory(c.Param("key"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *Handler) listShowcases(c *gin.Context) {
	c.JSON(http.StatusOK, h.Query.ListShowcases())
}

func (h *Handler) health(c *gin.Context) {
	body := gin.H{
		"status":       "ok",
		"presentation": h.Query.Presentation(),
		"catalog":      h.Query.Summary(),
	}
	if h.Cache != nil {
		body["cache"] = "ok"
		if err := h.Cache.Ping(c.Request.Context()); err != nil {
			log.Warn().Err(err).Msg("document cache ping failed")
			body["status"] = "degraded"
			body["cache"] = "unavailable"
		}
	}
	c.JSON(http.StatusOK, body)
}

// writeError renders a query fault as plain text. Misses are 404 with the
// lookup message as the body.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch errbuilder.CodeOf(err) {
	case errbuilder.CodeNotFound:
		status = http.StatusNotFound
	case errbuilder.CodeInvalidArgument:
		status = http.StatusBadRequest
	}
	c.String(status, shared.ErrorMessage(err))
}
