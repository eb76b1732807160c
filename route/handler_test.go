package route

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/jvaillant/tinysea-go/linear"
	"github.com/jvaillant/tinysea-go/polar"
	"github.com/jvaillant/tinysea-go/quantity"
	"github.com/jvaillant/tinysea-go/wind"
)

func testPolarLoader(speeds ...float64) PolarLoader {
	space, err := linear.NewSpace(0, 5, 2)
	if err != nil {
		panic(err)
	}
	b, err := polar.NewBuilder(space)
	if err != nil {
		panic(err)
	}
	if err := b.AddSymmetric(0, speeds); err != nil {
		panic(err)
	}
	table := b.Build()
	return func(string) (*polar.Table, error) { return table, nil }
}

func testWindStore(t *testing.T) *wind.Store {
	t.Helper()
	loader := func(string) (wind.Grid, error) {
		lat, err := linear.NewSpace(float64(quantity.DegToRad(-1)), float64(quantity.DegToRad(1)), 3)
		if err != nil {
			t.Fatal(err)
		}
		lon, err := linear.NewSpace(float64(quantity.DegToRad(-1)), float64(quantity.DegToRad(1)), 3)
		if err != nil {
			t.Fatal(err)
		}
		samples := make([]linear.BearingSample, 9)
		for i := range samples {
			samples[i] = linear.BearingSample{Bearing: 0, Speed: 10}
		}
		g, err := wind.NewGrid(lat, lon, samples)
		if err != nil {
			t.Fatal(err)
		}
		return g, nil
	}

	dir := t.TempDir()
	if err := writeStub(dir); err != nil {
		t.Fatal(err)
	}
	s := wind.NewStore(dir, 3600, loader)
	if err := s.Merge(); err != nil {
		t.Fatal(err)
	}
	return s
}

// writeStub drops a single placeholder file so Store.Merge's directory
// walk has something to call the loader on.
func writeStub(dir string) error {
	return os.WriteFile(dir+"/0.grb", []byte("stub"), 0o644)
}

// TestRouteHandlerHappyPath is S7: a well-formed request against a
// trivial wind/polar fixture returns found=true with a non-empty
// trajectory, and a 200 status.
func TestRouteHandlerHappyPath(t *testing.T) {
	svc := &Service{
		Winds:    testWindStore(t),
		Polars:   testPolarLoader(10, 10),
		Notifier: nil,
		MaxSteps: 10000,
	}

	body := Request{
		Start:  LatLon{Lat: 0, Lon: 0},
		// The fixture polar only has curves at 0 (and 2π), so the boat
		// can only sail along the fixture wind's bearing, due north.
		Target: LatLon{Lat: 0.05, Lon: 0},
		Polar:  "default",
		Params: Params{DeltaT: 600, DeltaD: 1000, MaxStepMeters: 5000},
	}
	buf, _ := json.Marshal(body)

	req := httptest.NewRequest(http.MethodPost, "/v2/route", bytes.NewReader(buf))
	rec := httptest.NewRecorder()

	svc.Handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", rec.Code, rec.Body.String())
	}

	var resp Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !resp.Found {
		t.Fatal("expected found=true")
	}
	if len(resp.Trajectory) < 2 {
		t.Errorf("trajectory len = %d, want >= 2", len(resp.Trajectory))
	}
}

// TestRouteHandlerMalformedBody is S8: an unparsable request body is
// rejected with 400, never reaching the planner.
func TestRouteHandlerMalformedBody(t *testing.T) {
	svc := &Service{Winds: testWindStore(t), Polars: testPolarLoader(10, 10)}

	req := httptest.NewRequest(http.MethodPost, "/v2/route", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()

	svc.Handler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHealthz(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	Healthz(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
