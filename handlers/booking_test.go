package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	spaceRepo "quickcowork/database/repository/space"
	"quickcowork/services/booking"
	"quickcowork/services/catalog"
)

func quoteRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := &booking.DefaultBookingService{
		Catalog: &catalog.DefaultCatalogService{Repo: spaceRepo.NewMemorySpaceRepo()},
	}
	r := gin.New()
	r.POST("/api/bookings/quote", NewBookingHandler(svc).QuoteHandler)
	return r
}

func postQuote(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/quote", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestQuoteHandlerReturnsBreakdown(t *testing.T) {
	w := postQuote(quoteRouter(), `{"spaceId":"1","duration":3}`)
	require.Equal(t, http.StatusOK, w.Code)

	var q struct {
		Subtotal float64 `json:"subtotal"`
		Total    float64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &q))
	assert.Equal(t, 600.0, q.Subtotal)
	assert.Equal(t, 708.0, q.Total)
}

func TestQuoteHandlerRejectsDurationOutOfRange(t *testing.T) {
	r := quoteRouter()
	for _, body := range []string{
		`{"spaceId":"1","duration":-3}`,
		`{"spaceId":"1","duration":0}`,
		`{"spaceId":"1","duration":9}`,
	} {
		w := postQuote(r, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
	}
}

func TestQuoteHandlerUnknownSpaceIs404(t *testing.T) {
	w := postQuote(quoteRouter(), `{"spaceId":"ghost","duration":2}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
