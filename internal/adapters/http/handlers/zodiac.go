package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/alien-survival-api/internal/adapters/http/dto"
	"github.com/jsamuelsen/alien-survival-api/internal/ports"
)

// SignHandler resolves zodiac signs from birthdates.
type SignHandler struct {
	resolver ports.SignResolver
	errors   dto.ErrorMapper
}

// NewSignHandler creates a sign handler.
func NewSignHandler(resolver ports.SignResolver, redactErrors bool) *SignHandler {
	return &SignHandler{
		resolver: resolver,
		errors:   dto.ErrorMapper{Redact: redactErrors},
	}
}

// ResolveSign handles GET /zodiac-sign?birthdate=YYYY-MM-DD.
//
// @Summary Resolve the zodiac sign for a birthdate
// @Produce json
// @Param birthdate query string true "Birthdate as YYYY-MM-DD"
// @Success 200 {object} dto.SignResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /zodiac-sign [get]
func (h *SignHandler) ResolveSign(c *gin.Context) {
	var q dto.SignQuery
	if err := dto.BindQueryAndValidate(c, &q); err != nil {
		dto.RespondWithValidationErrors(c, dto.ValidationErrors(err))
		return
	}

	sign, err := h.resolver.ResolveSign(c.Request.Context(), q.Birthdate)
	if err != nil {
		h.errors.Handle(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSignResponse(sign))
}

// RegisterRoutes registers the sign routes on rg.
func (h *SignHandler) RegisterRoutes(rg gin.IRoutes) {
	rg.GET("/zodiac-sign", h.ResolveSign)
}
