package controller

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formflow-uk/formflow-backend/internal/app/service"
)

type fakePaymentService struct {
	secret string
	err    error
}

func (f *fakePaymentService) CreateRegistrationIntent() (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.secret, nil
}

func setupPaymentControllerTest(svc service.PaymentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/create-payment-intent", NewPaymentController(svc).CreatePaymentIntent)
	return router
}

func TestPaymentController_CreatePaymentIntent(t *testing.T) {
	router := setupPaymentControllerTest(&fakePaymentService{secret: "pi_123_secret_456"})

	req := newRawRequest(http.MethodPost, "/create-payment-intent", "")
	w := serve(router, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "pi_123_secret_456", response["clientSecret"])
}

func TestPaymentController_CreatePaymentIntent_ProviderError(t *testing.T) {
	router := setupPaymentControllerTest(&fakePaymentService{err: service.ErrPaymentProviderUnavailable})

	req := newRawRequest(http.MethodPost, "/create-payment-intent", "")
	w := serve(router, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "INTERNAL_EXTERNAL_API", response["error"])
}
