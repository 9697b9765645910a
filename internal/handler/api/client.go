package api

import (
	"net/http"

	reqdto "github.com/GoncaloFernandes8/BarbershopBackoffice/internal/handler/dto/request"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/handler/httperr"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/usecase/commands"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	commands commands.ClientCommands
	queries  queries.CatalogQueries
}

func NewClientHandler(cmd commands.ClientCommands, q queries.CatalogQueries) *ClientHandler {
	return &ClientHandler{commands: cmd, queries: q}
}

// @Summary List clients
// @Tags clients
// @Produce json
// @Success 200 {array} queries.ClientView
// @Router /clients [get]
func (h *ClientHandler) List(c *gin.Context) {
	views, err := h.queries.ListClients(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Get client
// @Tags clients
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} queries.ClientView
// @Failure 404 {object} httperr.Response
// @Router /clients/{id} [get]
func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	view, err := h.queries.GetClient(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Create client
// @Tags clients
// @Accept json
// @Produce json
// @Param request body request.ClientRequest true "Client"
// @Success 201 {object} queries.ClientView
// @Failure 422 {object} httperr.Response
// @Router /clients [post]
func (h *ClientHandler) Create(c *gin.Context) {
	var req reqdto.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.commands.Create(c.Request.Context(), commands.ClientParams{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.GetEmail(),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Update client
// @Tags clients
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param request body request.ClientRequest true "Client"
// @Success 200 {object} queries.ClientView
// @Failure 404 {object} httperr.Response
// @Router /clients/{id} [put]
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.commands.Update(c.Request.Context(), id, commands.ClientParams{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.GetEmail(),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Delete client
// @Tags clients
// @Param id path string true "Client ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /clients/{id} [delete]
func (h *ClientHandler) Delete(c *gin.Context) {
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
