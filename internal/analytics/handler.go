package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/2beens/fitstats/internal/analytics/engine"
	"github.com/2beens/fitstats/internal/onerm"
	"github.com/2beens/fitstats/internal/records"
	"github.com/2beens/fitstats/internal/telemetry/tracing"
	"github.com/2beens/fitstats/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=analytics_test

type chartService interface {
	WeightChart(ctx context.Context, req WeightChartRequest) (*engine.ChartProps[engine.WeightRow], error)
	VolumeChart(ctx context.Context, req VolumeChartRequest) (*engine.ChartProps[engine.VolumeRow], error)
	PFCChart(ctx context.Context, req PFCChartRequest) (*engine.ChartProps[engine.PFCRow], error)
	ExerciseChart(ctx context.Context, req ExerciseChartRequest) (*engine.ChartProps[engine.ExerciseRow], error)
	PFCBalanceChart(ctx context.Context, req PFCBalanceRequest) (*engine.ChartProps[engine.BalanceSlice], error)
	ExerciseSummaries(ctx context.Context, req ExerciseSummaryRequest) ([]engine.ExerciseSummary, error)
	WeightSummary(ctx context.Context, req WeightSummaryRequest) (*WeightSummary, error)
	DailyNutrition(ctx context.Context, req DailyNutritionRequest) (*DailyNutritionSummary, error)
	MealItem(ctx context.Context, req MealItemRequest) (*records.MealItem, error)
}

type DataTypesResponse struct {
	DataTypes     []engine.DataTypeInfo `json:"dataTypes"`
	DefaultColors []string              `json:"defaultColors"`
	Formulas      []onerm.FormulaInfo   `json:"formulas"`
	WindowNames   []WindowName          `json:"windowNames"`
}

// WindowName is the default title of a new analytics window for a data type.
type WindowName struct {
	Type engine.DataType `json:"type"`
	Name string          `json:"name"`
}

type ExerciseSummaryResponse struct {
	Exercises []engine.ExerciseSummary `json:"exercises"`
}

type Handler struct {
	service chartService
}

func NewHandler(service chartService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleWeightChart(w http.ResponseWriter, r *http.Request) {
	var req WeightChartRequest
	if !decodeRequest(w, r, "weight chart", &req) {
		return
	}
	props, err := handler.service.WeightChart(r.Context(), req)
	writeChart(w, "weight", props, err)
}

func (handler *Handler) HandleVolumeChart(w http.ResponseWriter, r *http.Request) {
	var req VolumeChartRequest
	if !decodeRequest(w, r, "volume chart", &req) {
		return
	}
	props, err := handler.service.VolumeChart(r.Context(), req)
	writeChart(w, "volume", props, err)
}

func (handler *Handler) HandlePFCChart(w http.ResponseWriter, r *http.Request) {
	var req PFCChartRequest
	if !decodeRequest(w, r, "pfc chart", &req) {
		return
	}
	props, err := handler.service.PFCChart(r.Context(), req)
	writeChart(w, "pfc", props, err)
}

func (handler *Handler) HandleExerciseChart(w http.ResponseWriter, r *http.Request) {
	var req ExerciseChartRequest
	if !decodeRequest(w, r, "exercise chart", &req) {
		return
	}
	if req.ExerciseID <= 0 {
		http.Error(w, "error, exercise id missing", http.StatusBadRequest)
		return
	}
	props, err := handler.service.ExerciseChart(r.Context(), req)
	writeChart(w, "exercise", props, err)
}

func (handler *Handler) HandlePFCBalance(w http.ResponseWriter, r *http.Request) {
	var req PFCBalanceRequest
	if !decodeRequest(w, r, "pfc balance", &req) {
		return
	}
	props, err := handler.service.PFCBalanceChart(r.Context(), req)
	writeChart(w, "pfc balance", props, err)
}

func (handler *Handler) HandleExerciseSummary(w http.ResponseWriter, r *http.Request) {
	var req ExerciseSummaryRequest
	if !decodeRequest(w, r, "exercise summary", &req) {
		return
	}
	summaries, err := handler.service.ExerciseSummaries(r.Context(), req)
	if err != nil {
		writeServiceError(w, "exercise summary", err)
		return
	}
	if summaries == nil {
		summaries = []engine.ExerciseSummary{}
	}
	pkg.WriteJSON(w, ExerciseSummaryResponse{Exercises: summaries}, http.StatusOK)
}

func (handler *Handler) HandleWeightSummary(w http.ResponseWriter, r *http.Request) {
	var req WeightSummaryRequest
	if !decodeRequest(w, r, "weight summary", &req) {
		return
	}
	summary, err := handler.service.WeightSummary(r.Context(), req)
	if err != nil {
		writeServiceError(w, "weight summary", err)
		return
	}
	pkg.WriteJSON(w, summary, http.StatusOK)
}

func (handler *Handler) HandleDailyNutrition(w http.ResponseWriter, r *http.Request) {
	var req DailyNutritionRequest
	if !decodeRequest(w, r, "daily nutrition", &req) {
		return
	}
	summary, err := handler.service.DailyNutrition(r.Context(), req)
	if err != nil {
		writeServiceError(w, "daily nutrition", err)
		return
	}
	pkg.WriteJSON(w, summary, http.StatusOK)
}

func (handler *Handler) HandleMealItem(w http.ResponseWriter, r *http.Request) {
	var req MealItemRequest
	if !decodeRequest(w, r, "meal item", &req) {
		return
	}
	item, err := handler.service.MealItem(r.Context(), req)
	if err != nil {
		writeServiceError(w, "meal item", err)
		return
	}
	pkg.WriteJSON(w, item, http.StatusOK)
}

func (handler *Handler) HandleOneRM(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.onerm.estimate")
	defer span.End()

	weight, reps, ok := weightAndReps(w, r)
	if !ok {
		return
	}
	formula, err := onerm.ParseFormula(r.URL.Query().Get("formula"))
	if err != nil {
		http.Error(w, "error, unknown formula", http.StatusBadRequest)
		return
	}

	resultJson, err := json.Marshal(onerm.Estimate1RM(weight, reps, formula))
	if err != nil {
		log.Errorf("failed to marshal 1rm estimate: %s", err)
		http.Error(w, "failed to estimate 1rm", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resultJson, http.StatusOK)
}

func (handler *Handler) HandleOneRMAll(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.onerm.all")
	defer span.End()

	weight, reps, ok := weightAndReps(w, r)
	if !ok {
		return
	}

	estimatesJson, err := json.Marshal(onerm.CalculateAll(weight, reps))
	if err != nil {
		log.Errorf("failed to marshal 1rm estimates: %s", err)
		http.Error(w, "failed to estimate 1rm", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, estimatesJson, http.StatusOK)
}

// HandleDataTypes also suggests window names; ?exercise= fills in the
// exercise name for the per-exercise types.
func (handler *Handler) HandleDataTypes(w http.ResponseWriter, r *http.Request) {
	exercise := strings.TrimSpace(r.URL.Query().Get("exercise"))
	dataTypes := engine.DataTypes()
	windowNames := make([]WindowName, 0, len(dataTypes))
	for _, info := range dataTypes {
		windowNames = append(windowNames, WindowName{
			Type: info.Type,
			Name: engine.DefaultWindowName(info.Type, exercise),
		})
	}

	pkg.WriteJSON(w, DataTypesResponse{
		DataTypes:     dataTypes,
		DefaultColors: engine.DefaultColors(),
		Formulas:      onerm.Formulas(),
		WindowNames:   windowNames,
	}, http.StatusOK)
}

func decodeRequest(w http.ResponseWriter, r *http.Request, what string, dst any) bool {
	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			http.Error(w, "error, request body too large", http.StatusRequestEntityTooLarge)
			return false
		}
		log.Errorf("%s, unmarshal json params: %s", what, err)
		http.Error(w, "error, invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func writeChart[R any](w http.ResponseWriter, what string, props *engine.ChartProps[R], err error) {
	if err != nil {
		writeServiceError(w, what, err)
		return
	}

	propsJson, err := json.Marshal(props)
	if err != nil {
		log.Errorf("failed to marshal %s chart: %s", what, err)
		http.Error(w, "failed to build chart", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, propsJson, http.StatusOK)
}

func writeServiceError(w http.ResponseWriter, what string, err error) {
	if errors.Is(err, ErrInvalidRequest) {
		log.Debugf("%s rejected: %s", what, err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	log.Errorf("failed to build %s: %s", what, err)
	http.Error(w, "failed to build "+what, http.StatusInternalServerError)
}

func weightAndReps(w http.ResponseWriter, r *http.Request) (float64, int, bool) {
	weight, err := strconv.ParseFloat(r.URL.Query().Get("weight"), 64)
	if err != nil || weight < 0 {
		http.Error(w, "error, weight invalid", http.StatusBadRequest)
		return 0, 0, false
	}
	reps, err := strconv.Atoi(r.URL.Query().Get("reps"))
	if err != nil || reps < 0 {
		http.Error(w, "error, reps invalid", http.StatusBadRequest)
		return 0, 0, false
	}
	return weight, reps, true
}
