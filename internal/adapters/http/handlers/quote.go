package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotes-api/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotes-api/internal/app"
	"github.com/jsamuelsen/quotes-api/internal/domain"
)

// MsgInvalidQuoteID is returned when the path id is not a positive integer.
const MsgInvalidQuoteID = "Quote id must be a positive integer."

// QuoteHandler handles quote endpoints. Every route expects a session in the
// request context.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{service: service}
}

// List handles GET /quotes.
//
// @Summary List the caller's quotes
// @Tags quotes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.QuoteResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /quotes [get]
func (h *QuoteHandler) List(c *gin.Context) {
	quotes, err := h.service.List(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteListResponse(quotes))
}

// Create handles POST /quotes.
//
// @Summary Save a quote
// @Tags quotes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateQuoteRequest true "Quote"
// @Success 200 {object} dto.QuoteMessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /quotes [post]
func (h *QuoteHandler) Create(c *gin.Context) {
	var req dto.CreateQuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		abortWithError(c, err)
		return
	}

	quote, err := h.service.Create(c.Request.Context(), req.Text, req.Tags)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.QuoteMessageResponse{
		Message: app.MsgQuoteCreated,
		Quote:   dto.NewQuoteResponse(quote),
	})
}

// Delete handles DELETE /quotes/:id.
//
// @Summary Delete one of the caller's quotes
// @Tags quotes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quote ID"
// @Success 200 {object} dto.QuoteMessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /quotes/{id} [delete]
func (h *QuoteHandler) Delete(c *gin.Context) {
	raw := c.Param("id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		abortWithError(c, domain.NewValidationErrorWithValue("id", MsgInvalidQuoteID, raw))
		return
	}

	quote, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.QuoteMessageResponse{
		Message: app.MsgQuoteDeleted,
		Quote:   dto.NewQuoteResponse(quote),
	})
}

// RegisterQuoteRoutes registers quote routes on the given router group. The
// group must already carry the session middleware.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.DELETE("/:id", h.Delete)
}
