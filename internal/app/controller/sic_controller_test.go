package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formflow-uk/formflow-backend/internal/app/model"
	"github.com/formflow-uk/formflow-backend/internal/app/service"
)

func setupSICControllerTest() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/sic-codes/search", NewSICController(service.NewSICService()).SearchSICCodes)
	return router
}

func getSICSearch(router *gin.Engine, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/sic-codes/search?q="+query, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSICController_Search(t *testing.T) {
	router := setupSICControllerTest()

	w := getSICSearch(router, "accounting")

	assert.Equal(t, http.StatusOK, w.Code)

	var results []model.SICCode
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	require.NotEmpty(t, results)
	assert.Equal(t, "69201", results[0].Code)
}

func TestSICController_Search_ShortQuery(t *testing.T) {
	router := setupSICControllerTest()

	for _, q := range []string{"", "6"} {
		w := getSICSearch(router, q)

		assert.Equal(t, http.StatusOK, w.Code)
		// Always an empty JSON array, never null and never an error
		assert.JSONEq(t, "[]", w.Body.String())
	}
}

func TestSICController_Search_Cap(t *testing.T) {
	router := setupSICControllerTest()

	w := getSICSearch(router, "of")

	assert.Equal(t, http.StatusOK, w.Code)

	var results []model.SICCode
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	assert.Len(t, results, 15)
}
