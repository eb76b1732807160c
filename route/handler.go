package route

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/jvaillant/tinysea-go/gsp"
	"github.com/jvaillant/tinysea-go/notify"
	"github.com/jvaillant/tinysea-go/polar"
	"github.com/jvaillant/tinysea-go/quantity"
	"github.com/jvaillant/tinysea-go/wind"
)

// PolarLoader resolves a polar file reference from a request into a
// loaded table. polar.Load satisfies this once given a directory prefix.
type PolarLoader func(name string) (*polar.Table, error)

// Service holds the long-lived dependencies a route request needs: the
// live wind store, a way to resolve polar tables by name, a notifier,
// and the per-request step/time budget.
type Service struct {
	Winds          *wind.Store
	Polars         PolarLoader
	Notifier       notify.Notifier
	MaxSteps       int
	RequestTimeout time.Duration
}

// Handler returns the POST /v2/route HTTP handler.
func (svc *Service) Handler(w http.ResponseWriter, req *http.Request) {
	fields := log.Fields{"action": "route"}
	if ip, err := clientIP(req); err == nil {
		fields["ip"] = ip
	}
	requestLogger := log.WithFields(fields)

	var r Request
	if err := json.NewDecoder(req.Body).Decode(&r); err != nil {
		requestLogger.WithError(err).Warn("route: malformed request body")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "malformed request body"})
		return
	}

	requestLogger.Infof("route from (%.4f,%.4f) to (%.4f,%.4f) starting %s",
		r.Start.Lat, r.Start.Lon, r.Target.Lat, r.Target.Lon, r.StartTime)

	resp, err := svc.run(req.Context(), r)
	if err != nil {
		requestLogger.WithError(err).Error("route: search failed")
		status := http.StatusInternalServerError
		if err == errBadRequest {
			status = http.StatusBadRequest
		}
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}

	requestLogger.Infof("route: found=%t points=%d", resp.Found, len(resp.Trajectory))
	json.NewEncoder(w).Encode(resp)

	if svc.Notifier != nil {
		msg := fmt.Sprintf("route computation finished, found=%t, points=%d", resp.Found, len(resp.Trajectory))
		if err := svc.Notifier.Notify(r.NotifyJID, msg); err != nil {
			requestLogger.WithError(err).Warn("route: notification failed")
		}
	}
}

var errBadRequest = fmt.Errorf("invalid route parameters")

func (svc *Service) run(ctx context.Context, r Request) (*Response, error) {
	if r.Params.DeltaT <= 0 || r.Params.DeltaD <= 0 || r.Params.MaxStepMeters <= 0 {
		return nil, errBadRequest
	}

	table, err := svc.Polars(r.Polar)
	if err != nil {
		return nil, fmt.Errorf("loading polar table: %w", err)
	}

	field := svc.Winds.Snapshot()
	if field == nil {
		return nil, fmt.Errorf("no wind data loaded")
	}

	start := toNVector(r.Start)
	target := toNVector(r.Target)

	factory := gsp.NewStateFactory(
		quantity.Second(r.Params.DeltaT),
		quantity.Meter(r.Params.DeltaD),
		quantity.EarthRadius,
		target,
		table.MaxVelocity(),
		0,
	)
	expander := gsp.NewExpander(factory, field, table, quantity.Meter(r.Params.MaxStepMeters))

	open := gsp.NewUpdatableOpenList()
	open.Insert(factory.Build(start, 0, nil))
	close := gsp.NewCloseList()

	maxSteps := svc.MaxSteps
	if r.Params.MaxSteps > 0 {
		maxSteps = r.Params.MaxSteps
	}
	planner := &gsp.Planner{MaxSteps: maxSteps}

	runCtx := ctx
	var cancel context.CancelFunc
	if svc.RequestTimeout > 0 {
		runCtx, cancel = context.WithTimeout(ctx, svc.RequestTimeout)
		defer cancel()
	}

	goal := factory.Build(target, 0, nil)
	final, err := planner.FindShortestPath(runCtx, goal, open, close, expander)
	if err != nil {
		return nil, fmt.Errorf("planner: %w", err)
	}
	if final == nil {
		return &Response{Found: false}, nil
	}

	return &Response{Found: true, Trajectory: Reconstruct(final, close, r.StartTime)}, nil
}

// Healthz is the GET /healthz handler.
func Healthz(w http.ResponseWriter, _ *http.Request) {
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func clientIP(r *http.Request) (string, error) {
	if ip := r.Header.Get("X-REAL-IP"); net.ParseIP(ip) != nil {
		return ip, nil
	}
	for _, ip := range strings.Split(r.Header.Get("X-FORWARDED-FOR"), ",") {
		ip = strings.TrimSpace(ip)
		if net.ParseIP(ip) != nil {
			return ip, nil
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "", err
	}
	if net.ParseIP(host) != nil {
		return host, nil
	}
	return "", fmt.Errorf("no valid ip found")
}
