package api

import (
	"net/http"

	reqdto "github.com/GoncaloFernandes8/BarbershopBackoffice/internal/handler/dto/request"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/handler/httperr"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/usecase/commands"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	commands commands.ServiceCommands
	queries  queries.CatalogQueries
}

func NewServiceHandler(cmd commands.ServiceCommands, q queries.CatalogQueries) *ServiceHandler {
	return &ServiceHandler{commands: cmd, queries: q}
}

// @Summary List services
// @Tags services
// @Produce json
// @Success 200 {array} queries.ServiceView
// @Router /services [get]
func (h *ServiceHandler) List(c *gin.Context) {
	views, err := h.queries.ListServices(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Get service
// @Tags services
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} queries.ServiceView
// @Failure 404 {object} httperr.Response
// @Router /services/{id} [get]
func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	view, err := h.queries.GetService(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Create service
// @Tags services
// @Accept json
// @Produce json
// @Param request body request.ServiceRequest true "Service"
// @Success 201 {object} queries.ServiceView
// @Failure 422 {object} httperr.Response
// @Router /services [post]
func (h *ServiceHandler) Create(c *gin.Context) {
	var req reqdto.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.commands.Create(c.Request.Context(), commands.ServiceParams{
		Name:           req.Name,
		DurationMin:    req.DurationMin,
		BufferAfterMin: req.BufferAfterMin,
		PriceCents:     req.PriceCents,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Update service
// @Tags services
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param request body request.ServiceRequest true "Service"
// @Success 200 {object} queries.ServiceView
// @Failure 404 {object} httperr.Response
// @Router /services/{id} [put]
func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.commands.Update(c.Request.Context(), id, commands.ServiceParams{
		Name:           req.Name,
		DurationMin:    req.DurationMin,
		BufferAfterMin: req.BufferAfterMin,
		PriceCents:     req.PriceCents,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Delete service
// @Tags services
// @Param id path string true "Service ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /services/{id} [delete]
func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.commands.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
