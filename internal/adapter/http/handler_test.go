package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rtb-pacing/internal/core/domain"
	"rtb-pacing/internal/core/port"
	"rtb-pacing/internal/core/port/mocks"
)

func newTestHandler(svc port.SimulationUseCase, metrics http.Handler) http.Handler {
	return NewHandler(svc, slog.New(slog.DiscardHandler), metrics).Router()
}

func TestSimulate(t *testing.T) {
	svc := mocks.NewMockSimulationUseCase(t)
	svc.EXPECT().
		RunSimulation(mock.Anything, mock.MatchedBy(func(req port.SimulationReq) bool {
			return req.ControllerType == "PID" &&
				len(req.Budgets) == 3 && req.Budgets[1] == 1000 &&
				req.PID != nil && req.PID.Kp == 0.5 &&
				req.Seed != nil && *req.Seed == 42 &&
				req.WithTicks && !req.WithCurves
		})).
		Return(&port.SimulationResp{RunID: "run-1", Seed: 42, Strategy: domain.StrategyPID, Horizon: 1440}, nil)

	body := `{"budgets":[5000,1000,4000],"controller_type":"PID","pid_params":{"kp":0.5,"ki":0.1,"kd":0},"seed":42}`
	w := httptest.NewRecorder()
	newTestHandler(svc, nil).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/simulations", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "run-1", got["run_id"])
	assert.Equal(t, "PID", got["controller_type"])
	assert.NotContains(t, got, "tick_log")
}

func TestSimulateQueryFlags(t *testing.T) {
	svc := mocks.NewMockSimulationUseCase(t)
	svc.EXPECT().
		RunSimulation(mock.Anything, mock.MatchedBy(func(req port.SimulationReq) bool {
			return !req.WithTicks && req.WithCurves && req.Seed == nil && req.PID == nil
		})).
		Return(&port.SimulationResp{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/simulations?ticks=false&curves=1", strings.NewReader(`{"controller_type":"Performance"}`))
	newTestHandler(svc, nil).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSimulateBadRequest(t *testing.T) {
	tests := []struct {
		name string
		url  string
		body string
	}{
		{name: "invalid json", url: "/api/v1/simulations", body: `{"budgets":`},
		{name: "budgets not numbers", url: "/api/v1/simulations", body: `{"budgets":["a"]}`},
		{name: "invalid ticks flag", url: "/api/v1/simulations?ticks=maybe", body: `{}`},
		{name: "invalid curves flag", url: "/api/v1/simulations?curves=yes", body: `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockSimulationUseCase(t)
			w := httptest.NewRecorder()
			newTestHandler(svc, nil).ServeHTTP(w, httptest.NewRequest(http.MethodPost, tt.url, strings.NewReader(tt.body)))
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestSimulateErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "invalid config",
			err:      fmt.Errorf("%w: unknown controller type %q", port.ErrInvalidConfig, "Bandit"),
			wantCode: http.StatusBadRequest,
			wantBody: "Bandit",
		},
		{
			name:     "internal",
			err:      errors.New("db down"),
			wantCode: http.StatusInternalServerError,
			wantBody: "internal error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockSimulationUseCase(t)
			svc.EXPECT().RunSimulation(mock.Anything, mock.Anything).Return(nil, tt.err)

			w := httptest.NewRecorder()
			newTestHandler(svc, nil).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/simulations", strings.NewReader(`{"controller_type":"Bandit"}`)))

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			assert.NotContains(t, w.Body.String(), "db down")
		})
	}
}

func TestCampaigns(t *testing.T) {
	svc := mocks.NewMockSimulationUseCase(t)
	svc.EXPECT().ListCampaigns(mock.Anything).Return([]domain.CampaignSpec{
		{Name: "Designing Data-Intensive Applications", PCTR: 0.02, BaseBid: 0.55, Budget: 2000},
	}, nil)

	w := httptest.NewRecorder()
	newTestHandler(svc, nil).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/campaigns", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var got []domain.CampaignSpec
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, 2000.0, got[0].Budget)
}

func TestCampaignsError(t *testing.T) {
	svc := mocks.NewMockSimulationUseCase(t)
	svc.EXPECT().ListCampaigns(mock.Anything).Return(nil, errors.New("timeout"))

	w := httptest.NewRecorder()
	newTestHandler(svc, nil).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/campaigns", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestMetricsRoute(t *testing.T) {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("up 1\n"))
	})

	w := httptest.NewRecorder()
	newTestHandler(mocks.NewMockSimulationUseCase(t), metrics).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "up 1\n", w.Body.String())

	w = httptest.NewRecorder()
	newTestHandler(mocks.NewMockSimulationUseCase(t), nil).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
