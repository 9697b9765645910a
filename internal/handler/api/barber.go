package api

import (
	"net/http"

	reqdto "github.com/GoncaloFernandes8/BarbershopBackoffice/internal/handler/dto/request"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/handler/httperr"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/pkg/errs"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/usecase/commands"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BarberHandler struct {
	commands commands.BarberCommands
	queries  queries.CatalogQueries
}

func NewBarberHandler(cmd commands.BarberCommands, q queries.CatalogQueries) *BarberHandler {
	return &BarberHandler{commands: cmd, queries: q}
}

// @Summary List barbers
// @Tags barbers
// @Produce json
// @Success 200 {array} queries.BarberView
// @Router /barbers [get]
func (h *BarberHandler) List(c *gin.Context) {
	views, err := h.queries.ListBarbers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Get barber
// @Tags barbers
// @Produce json
// @Param id path string true "Barber ID"
// @Success 200 {object} queries.BarberView
// @Failure 404 {object} httperr.Response
// @Router /barbers/{id} [get]
func (h *BarberHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	view, err := h.queries.GetBarber(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Create barber
// @Tags barbers
// @Accept json
// @Produce json
// @Param request body request.CreateBarberRequest true "Barber"
// @Success 201 {object} queries.BarberView
// @Failure 422 {object} httperr.Response
// @Router /barbers [post]
func (h *BarberHandler) Create(c *gin.Context) {
	var req reqdto.CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.commands.Create(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Update barber
// @Tags barbers
// @Accept json
// @Produce json
// @Param id path string true "Barber ID"
// @Param request body request.UpdateBarberRequest true "Fields to update"
// @Success 200 {object} queries.BarberView
// @Failure 404 {object} httperr.Response
// @Router /barbers/{id} [put]
func (h *BarberHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	if req.Name == nil && req.Active == nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.ErrDomainValidation, "Nothing to update", nil)
		return
	}

	var (
		view *queries.BarberView
		err  error
	)
	if req.Name != nil {
		view, err = h.commands.Rename(c.Request.Context(), id, *req.Name)
		if err != nil {
			respondError(c, err)
			return
		}
	}
	if req.Active != nil {
		view, err = h.commands.SetActive(c.Request.Context(), id, *req.Active)
		if err != nil {
			respondError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Delete barber
// @Tags barbers
// @Param id path string true "Barber ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /barbers/{id} [delete]
func (h *BarberHandler) Delete(c *gin.Context) {
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

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}
