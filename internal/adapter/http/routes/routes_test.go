package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dealdesk/internal/adapter/persistence/repository"
	"dealdesk/internal/infrastructure/config"
	"dealdesk/internal/usecase"
	mock_interfaces "dealdesk/internal/usecase/interfaces/mocks"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) (*gin.Engine, *mock_interfaces.MockILLMClient) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	llmClient := mock_interfaces.NewMockILLMClient(gomock.NewController(t))
	llmClient.EXPECT().Provider().Return("replicate").AnyTimes()

	return NewRouter(Dependencies{
		Deals:      usecase.NewDealUseCase(repository.NewDealRedisRepository(rdb, "test:deals"), nil, 30),
		Extraction: usecase.NewExtractionUseCase(llmClient, nil, nil, 0, nil),
	}), llmClient
}

func call(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_DealLifecycle(t *testing.T) {
	r, llmClient := newTestServer(t)

	w := call(t, r, http.MethodPost, "/v1/deals", `{"name":"Acme HVAC"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	base := "/v1/deals/" + created.ID

	w = call(t, r, http.MethodPut, base+"/adjustments",
		`{"addbacks":[{"description":"Owner salary","amount":80000}],"deductions":[{"description":"Rental income","amount":-20000}]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = call(t, r, http.MethodPut, base+"/baseline", `{"revenue":2000000,"reportedEbitda":440000,"reason":"CIM p.12"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var deal struct {
		AdjustedEbitda float64 `json:"adjustedEbitda"`
		ChangeLog      []struct {
			Field  string `json:"field"`
			Reason string `json:"reason"`
		} `json:"changeLog"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &deal))
	assert.Equal(t, 500000.0, deal.AdjustedEbitda)
	require.Len(t, deal.ChangeLog, 3)
	assert.Equal(t, "CIM p.12", deal.ChangeLog[0].Reason)

	w = call(t, r, http.MethodGet, base+"/analysis", "")
	require.Equal(t, http.StatusOK, w.Code)
	var analysis struct {
		Financing struct {
			PurchasePrice  float64 `json:"purchasePrice"`
			Financeability string  `json:"financeability"`
		} `json:"financing"`
		PriceRange []struct {
			PurchasePrice float64 `json:"purchasePrice"`
		} `json:"priceRange"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &analysis))
	assert.Equal(t, 2000000.0, analysis.Financing.PurchasePrice)
	assert.Equal(t, "green", analysis.Financing.Financeability)
	assert.Len(t, analysis.PriceRange, 3)

	llmClient.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("```json\n{\"reportedEbitda\": 450000, \"addbacks\": [], \"dealName\": \"Acme Heating\"}\n```", nil)
	w = call(t, r, http.MethodPost, "/v1/extract-cim", `{"text":"Acme Heating CIM ..."}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var extracted struct {
		ReportedEbitda float64 `json:"reportedEbitda"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &extracted))
	assert.Equal(t, 450000.0, extracted.ReportedEbitda)

	w = call(t, r, http.MethodPost, base+"/extraction", `{"result":`+w.Body.String()+`}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &deal))
	assert.Equal(t, 450000.0, deal.AdjustedEbitda, "adjusted EBITDA follows the extracted figures")

	w = call(t, r, http.MethodGet, "/v1/deals/export", "")
	require.Equal(t, http.StatusOK, w.Code)
	exported := w.Body.String()

	require.Equal(t, http.StatusNoContent, call(t, r, http.MethodDelete, base, "").Code)
	require.Equal(t, http.StatusNotFound, call(t, r, http.MethodGet, base, "").Code)

	w = call(t, r, http.MethodPut, "/v1/deals/import", exported)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"imported":1}`, w.Body.String())

	w = call(t, r, http.MethodGet, base, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Acme Heating"`)
}

func TestRouter_SystemEndpoints(t *testing.T) {
	r, _ := newTestServer(t)

	w := call(t, r, http.MethodGet, "/v1/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"extraction":true,"provider":"replicate"}`, w.Body.String())

	// Vectors export nothing until a label set is used.
	require.Equal(t, http.StatusCreated, call(t, r, http.MethodPost, "/v1/deals", "").Code)
	w = call(t, r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "deal_mutations_total")

	w = call(t, r, http.MethodGet, "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"/deals/{id}/analysis"`)

	assert.Equal(t, http.StatusNotFound, call(t, r, http.MethodGet, "/v1/nope", "").Code)
}

func TestBuildDealRepository_UnknownBackend(t *testing.T) {
	_, _, err := buildDealRepository(t.Context(), &config.Config{Store: config.StoreConfig{Backend: "postgres"}})
	assert.ErrorContains(t, err, "unknown store backend")
}

func TestBuildExtraction_WithoutCredential(t *testing.T) {
	cfg := &config.Config{LLM: config.LLMConfig{Provider: config.ProviderReplicate}}
	uc, err := buildExtraction(t.Context(), cfg, zap.NewNop())
	require.NoError(t, err)
	assert.False(t, uc.Configured())
}
