package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"errand-planner/config"
	"errand-planner/internal/errand"
	"errand-planner/internal/middleware"
	"errand-planner/internal/model"
	"errand-planner/pkg/log"
	"errand-planner/pkg/polyline"
	"errand-planner/pkg/response"
)

type fakeUseCase struct {
	planInput errand.PlanInput
	planErr   error
	toggleErr error
	routeErr  error
	listErr   error
}

func (f *fakeUseCase) Plan(_ context.Context, input errand.PlanInput) (errand.PlanOutput, error) {
	f.planInput = input
	if input.Origin == nil {
		return errand.PlanOutput{}, errand.ErrMissingLocation
	}
	if f.planErr != nil {
		return errand.PlanOutput{}, f.planErr
	}
	return errand.PlanOutput{
		Parsed: model.ParsedTask{
			Original: input.TaskInput,
			Tasks:    []model.TaskItem{{Type: "coffee", Category: "cafe"}},
			Source:   model.SourceFallback,
		},
		Places: []model.Place{{ID: "p1", Name: "Cafe"}},
		Route:  &model.OptimizedRoute{Places: []model.Place{{ID: "p1"}}, TotalDistance: 300, TotalTime: 4, Strategy: model.StrategyDistanceSort},
	}, nil
}

func (f *fakeUseCase) Extract(_ context.Context, input errand.ExtractInput) (errand.ExtractOutput, error) {
	return errand.ExtractOutput{Parsed: model.ParsedTask{Original: input.TaskInput, Source: model.SourceFallback}}, nil
}

func (f *fakeUseCase) ListHistory(_ context.Context, input errand.ListHistoryInput) (errand.ListHistoryOutput, error) {
	if f.listErr != nil {
		return errand.ListHistoryOutput{}, f.listErr
	}
	if input.Filter == "bogus" {
		return errand.ListHistoryOutput{}, errand.ErrInvalidFilter
	}
	return errand.ListHistoryOutput{Entries: []model.HistoryEntry{{ID: "1", TaskInput: "milk", Completed: true}}}, nil
}

func (f *fakeUseCase) ToggleHistory(_ context.Context, id string) (errand.ToggleHistoryOutput, error) {
	if f.toggleErr != nil {
		return errand.ToggleHistoryOutput{}, f.toggleErr
	}
	return errand.ToggleHistoryOutput{Entry: model.HistoryEntry{ID: id}}, nil
}

func (f *fakeUseCase) ClearHistory(context.Context) error { return nil }

func (f *fakeUseCase) LatestRoute(context.Context) (errand.LatestRouteOutput, error) {
	if f.routeErr != nil {
		return errand.LatestRouteOutput{}, f.routeErr
	}
	return errand.LatestRouteOutput{
		Route:  model.OptimizedRoute{Strategy: model.StrategyDirections},
		Points: []polyline.Point{{Latitude: 1, Longitude: 2}},
	}, nil
}

func (f *fakeUseCase) DecodeLatestPolyline(context.Context) (errand.DecodeLatestPolylineOutput, error) {
	if f.routeErr != nil {
		return errand.DecodeLatestPolylineOutput{}, f.routeErr
	}
	return errand.DecodeLatestPolylineOutput{
		Points: []polyline.Point{{Latitude: 38.5, Longitude: -120.2}, {Latitude: 40.7, Longitude: -120.95}},
	}, nil
}

func setup(uc *fakeUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), uc), middleware.New(log.NewNop(), &config.Config{}))
	return r
}

func do(r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, response.Resp) {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp response.Resp
	json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestPlanHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc := &fakeUseCase{}
		w, resp := do(setup(uc), http.MethodPost, "/api/v1/errands/plan", map[string]any{
			"task_input": "<b>coffee</b> & bagels",
			"latitude":   10.5,
			"longitude":  106.7,
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "coffee & bagels", uc.planInput.TaskInput)
		require.NotNil(t, uc.planInput.Origin)
		assert.Equal(t, 10.5, uc.planInput.Origin.Latitude)

		data := resp.Data.(map[string]any)
		assert.Equal(t, "coffee & bagels", data["original"])
		assert.Equal(t, "fallback", data["source"])
		assert.Len(t, data["places"], 1)
		assert.NotNil(t, data["route"])
	})

	t.Run("missing location", func(t *testing.T) {
		w, resp := do(setup(&fakeUseCase{}), http.MethodPost, "/api/v1/errands/plan", map[string]any{
			"task_input": "coffee",
			"latitude":   10.5,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, errand.ErrMissingLocation.Error(), resp.Message)
	})

	t.Run("latitude out of range", func(t *testing.T) {
		w, _ := do(setup(&fakeUseCase{}), http.MethodPost, "/api/v1/errands/plan", map[string]any{
			"task_input": "coffee",
			"latitude":   91.0,
			"longitude":  0.0,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unexpected error", func(t *testing.T) {
		w, resp := do(setup(&fakeUseCase{planErr: errors.New("boom")}), http.MethodPost, "/api/v1/errands/plan", map[string]any{
			"task_input": "coffee",
			"latitude":   1.0,
			"longitude":  1.0,
		})
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, response.DefaultErrorMessage, resp.Message)
	})
}

func TestExtractHandler(t *testing.T) {
	w, resp := do(setup(&fakeUseCase{}), http.MethodPost, "/api/v1/errands/extract", map[string]any{"task_input": "gym"})
	require.Equal(t, http.StatusOK, w.Code)
	data := resp.Data.(map[string]any)
	assert.Equal(t, "gym", data["original"])
	assert.Equal(t, []any{}, data["tasks"])
}

func TestHistoryHandlers(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		w, resp := do(setup(&fakeUseCase{}), http.MethodGet, "/api/v1/errands/history?status=Completed", nil)
		require.Equal(t, http.StatusOK, w.Code)
		data := resp.Data.(map[string]any)
		assert.Equal(t, float64(1), data["total"])
	})

	t.Run("invalid filter", func(t *testing.T) {
		w, _ := do(setup(&fakeUseCase{}), http.MethodGet, "/api/v1/errands/history?status=bogus", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("toggle not found", func(t *testing.T) {
		w, _ := do(setup(&fakeUseCase{toggleErr: errand.ErrHistoryNotFound}), http.MethodPatch, "/api/v1/errands/history/42/toggle", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("toggle", func(t *testing.T) {
		w, resp := do(setup(&fakeUseCase{}), http.MethodPatch, "/api/v1/errands/history/42/toggle", nil)
		require.Equal(t, http.StatusOK, w.Code)
		entry := resp.Data.(map[string]any)["entry"].(map[string]any)
		assert.Equal(t, "42", entry["id"])
	})

	t.Run("clear", func(t *testing.T) {
		w, _ := do(setup(&fakeUseCase{}), http.MethodDelete, "/api/v1/errands/history", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestLatestRouteHandler(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		w, resp := do(setup(&fakeUseCase{}), http.MethodGet, "/api/v1/errands/route/latest", nil)
		require.Equal(t, http.StatusOK, w.Code)
		points := resp.Data.(map[string]any)["points"].([]any)
		assert.Len(t, points, 1)
	})

	t.Run("none yet", func(t *testing.T) {
		w, _ := do(setup(&fakeUseCase{routeErr: errand.ErrNoLatestRoute}), http.MethodGet, "/api/v1/errands/route/latest", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestLatestRoutePointsHandler(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		w, resp := do(setup(&fakeUseCase{}), http.MethodGet, "/api/v1/errands/route/latest/points", nil)
		require.Equal(t, http.StatusOK, w.Code)
		data := resp.Data.(map[string]any)
		assert.NotContains(t, data, "route")
		points := data["points"].([]any)
		require.Len(t, points, 2)
		assert.Equal(t, 38.5, points[0].(map[string]any)["latitude"])
	})

	t.Run("none yet", func(t *testing.T) {
		w, _ := do(setup(&fakeUseCase{routeErr: errand.ErrNoLatestRoute}), http.MethodGet, "/api/v1/errands/route/latest/points", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
