package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/alien-survival-api/internal/adapters/http/dto"
	"github.com/jsamuelsen/alien-survival-api/internal/domain"
	"github.com/jsamuelsen/alien-survival-api/internal/ports"
)

var (
	// errNotJSON is returned for requests whose body is not declared as JSON.
	errNotJSON = errors.New("request content type must be application/json")

	// errNotObject is returned for JSON bodies such as null, [] or "x".
	errNotObject = errors.New("request body must be a JSON object")
)

// AdviceHandler handles advice generation.
type AdviceHandler struct {
	generator ports.AdviceGenerator
	errors    dto.ErrorMapper
}

// NewAdviceHandler creates an advice handler. When redactErrors is set,
// 500 responses carry a generic message instead of the cause.
func NewAdviceHandler(generator ports.AdviceGenerator, redactErrors bool) *AdviceHandler {
	return &AdviceHandler{
		generator: generator,
		errors:    dto.ErrorMapper{Redact: redactErrors},
	}
}

// GenerateAdvice handles POST /generate-advice.
//
// Every body field is optional. A body that cannot be decoded into
// dto.AdviceRequest is answered with 500 and the error envelope.
//
// @Summary Generate alien survival advice
// @Accept json
// @Produce json
// @Param request body dto.AdviceRequest true "User profile"
// @Success 200 {object} dto.AdviceResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /generate-advice [post]
func (h *AdviceHandler) GenerateAdvice(c *gin.Context) {
	if !isJSON(c.ContentType()) {
		h.errors.Handle(c, domain.NewRequestProcessingError("decode request", errNotJSON))
		return
	}

	var req dto.AdviceRequest
	if err := decodeObject(c, &req); err != nil {
		h.errors.Handle(c, domain.NewRequestProcessingError("decode request", err))
		return
	}

	advice, err := h.generator.Generate(c.Request.Context(), req.ToDomain())
	if err != nil {
		h.errors.Handle(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAdviceResponse(&req, advice))
}

// RegisterRoutes registers the advice routes on rg.
func (h *AdviceHandler) RegisterRoutes(rg gin.IRoutes) {
	rg.POST("/generate-advice", h.GenerateAdvice)
}

// decodeObject reads the whole body and decodes it into v. Only a JSON
// object is accepted; an empty body yields io.EOF.
func decodeObject(c *gin.Context, v any) error {
	raw, err := c.GetRawData()
	if err != nil {
		return err
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return io.EOF
	}

	if raw[0] != '{' {
		return errNotObject
	}

	return json.Unmarshal(raw, v)
}

// isJSON accepts application/json and structured types such as
// application/problem+json.
func isJSON(contentType string) bool {
	if contentType == "application/json" {
		return true
	}

	return strings.HasPrefix(contentType, "application/") && strings.HasSuffix(contentType, "+json")
}
