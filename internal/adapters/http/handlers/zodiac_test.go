package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/alien-survival-api/internal/adapters/http/dto"
	"github.com/jsamuelsen/alien-survival-api/internal/domain"
	"github.com/jsamuelsen/alien-survival-api/internal/mocks"
)

func serveSign(t *testing.T, h *SignHandler, query string) *httptest.ResponseRecorder {
	t.Helper()

	router := gin.New()
	h.RegisterRoutes(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/zodiac-sign"+query, nil))

	return w
}

func TestSignHandler_ResolveSign(t *testing.T) {
	resolver := mocks.NewMockSignResolver(t)
	resolver.EXPECT().ResolveSign(mock.Anything, "1990-08-01").Return(domain.Sign{
		Name:   "Leo",
		Traits: []string{"confident", "generous"},
	}, nil)

	w := serveSign(t, NewSignHandler(resolver, false), "?birthdate=1990-08-01")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"success":true,"sign":{"name":"Leo","traits":["confident","generous"]}}`,
		w.Body.String(),
	)
}

func TestSignHandler_ResolveSign_MissingBirthdate(t *testing.T) {
	resolver := mocks.NewMockSignResolver(t)

	w := serveSign(t, NewSignHandler(resolver, false), "")

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, dto.MessageValidation, resp.Error)
	assert.Equal(t, "this field is required", resp.Details["birthdate"])
}

func TestSignHandler_ResolveSign_InvalidBirthdate(t *testing.T) {
	resolver := mocks.NewMockSignResolver(t)
	resolver.EXPECT().ResolveSign(mock.Anything, "08/01/1990").
		Return(domain.Sign{}, domain.NewValidationErrorWithValue("birthdate", "must be formatted as YYYY-MM-DD", "08/01/1990"))

	w := serveSign(t, NewSignHandler(resolver, true), "?birthdate=08/01/1990")

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "validation failed for birthdate: must be formatted as YYYY-MM-DD", resp.Error)
	assert.Equal(t, "must be formatted as YYYY-MM-DD", resp.Details["birthdate"])
}
