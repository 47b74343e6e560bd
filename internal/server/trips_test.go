package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/voyago/tripagent/internal/trip"
)

type stubPlanner struct {
	state *trip.State
	err   error
	got   trip.Request
}

func (s *stubPlanner) Run(_ context.Context, req trip.Request) (*trip.State, error) {
	s.got = req
	return s.state, s.err
}

const validBody = `{
	"country": "Italy",
	"interests": ["history"],
	"departure_date": "2025-09-01",
	"return_date": "2025-09-08",
	"travel_style": "budget",
	"trip_type": "solo",
	"age_group": "adult",
	"accommodation_type": "hostel"
}`

func newPlanContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/plan", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestPlanSuccess(t *testing.T) {
	planner := &stubPlanner{state: &trip.State{FinalTrip: "Day 1: Rome."}}
	handler := &TripsHandler{Planner: planner, Timeout: time.Second}

	ctx, rec := newPlanContext(t, validBody)
	if err := handler.plan(ctx); err != nil {
		t.Fatalf("plan: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 got %d", rec.Code)
	}

	var resp PlanResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.FinalResult != "Day 1: Rome." {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if planner.got.Country != "Italy" || planner.got.TravelStyle != trip.StyleBudget {
		t.Fatalf("unexpected pipeline input: %+v", planner.got)
	}
}

func TestPlanPipelineFailure(t *testing.T) {
	planner := &stubPlanner{err: errors.New("generating itinerary: model overloaded")}
	handler := &TripsHandler{Planner: planner}

	ctx, _ := newPlanContext(t, validBody)
	err := handler.plan(ctx)
	if err == nil {
		t.Fatal("expected error")
	}
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected HTTPError got %T", err)
	}
	if he.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500 got %d", he.Code)
	}
	if !strings.Contains(he.Message.(string), "model overloaded") {
		t.Fatalf("expected error detail, got %v", he.Message)
	}
}

func TestPlanValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad travel style", strings.Replace(validBody, "budget", "opulent", 1)},
		{"bad trip type", strings.Replace(validBody, "solo", "pair", 1)},
		{"bad age group", strings.Replace(validBody, "adult", "elder", 1)},
		{"bad accommodation", strings.Replace(validBody, "hostel", "igloo", 1)},
		{"bad date", strings.Replace(validBody, "2025-09-01", "September 1st", 1)},
		{"missing country", strings.Replace(validBody, `"Italy"`, `""`, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			planner := &stubPlanner{state: &trip.State{}}
			handler := &TripsHandler{Planner: planner}

			ctx, _ := newPlanContext(t, tt.body)
			err := handler.plan(ctx)
			he, ok := err.(*echo.HTTPError)
			if !ok {
				t.Fatalf("expected HTTPError got %v", err)
			}
			if he.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400 got %d", he.Code)
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	e := echo.New()
	limited := RateLimit(60, 2)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/plan", nil)
		req.RemoteAddr = "10.1.2.3:4567"
		rec := httptest.NewRecorder()
		err := limited(e.NewContext(req, rec))
		if he, ok := err.(*echo.HTTPError); ok {
			codes = append(codes, he.Code)
			continue
		}
		if err != nil {
			t.Fatalf("handler: %v", err)
		}
		codes = append(codes, rec.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Fatalf("expected first two requests to pass, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Fatalf("expected third request limited, got %v", codes)
	}
}
