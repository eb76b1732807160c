// Command tinysea-server runs the route-planning HTTP service: it loads
// polar tables on demand, keeps a scheduled-refresh wind store, and
// serves POST /v2/route against the gsp planner.
package main

import (
	"net/http"
	_ "net/http/pprof"
	"os"
	"path/filepath"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"

	"github.com/jvaillant/tinysea-go/config"
	"github.com/jvaillant/tinysea-go/notify"
	"github.com/jvaillant/tinysea-go/polar"
	"github.com/jvaillant/tinysea-go/route"
	"github.com/jvaillant/tinysea-go/wind"
	"github.com/jvaillant/tinysea-go/wind/grib"
)

func main() {
	cfg, err := config.ParseFromEnv()
	if err != nil {
		log.WithError(err).Fatal("parsing configuration")
	}

	if level, err := log.ParseLevel(cfg.LogLevel); err != nil {
		log.WithError(err).Warn("unrecognized log level, keeping default")
	} else {
		log.SetLevel(level)
	}

	if cfg.CPUProfile {
		defer profile.Start().Stop()
	}

	windStore := wind.NewStore(cfg.WindDir, cfg.WindDeltaT, grib.LoadFile)
	if err := windStore.StartScheduled(uint64(cfg.WindRefresh.Seconds())); err != nil {
		log.WithError(err).Fatal("loading initial wind forecast")
	}
	defer windStore.Stop()

	polarDir := cfg.PolarDir
	polarLoader := route.PolarLoader(func(name string) (*polar.Table, error) {
		return polar.Load(filepath.Join(polarDir, name+".json"))
	})

	var notifier notify.Notifier = notify.NoOp{}
	xmppConfig := notify.XMPPConfig{
		Host:     cfg.XMPPHost,
		JID:      cfg.XMPPJID,
		Password: cfg.XMPPPassword,
		To:       cfg.XMPPTo,
	}
	if xmppConfig.Ready() {
		notifier = notify.XMPP{Config: xmppConfig}
	}

	svc := &route.Service{
		Winds:          windStore,
		Polars:         polarLoader,
		Notifier:       notifier,
		MaxSteps:       cfg.MaxSteps,
		RequestTimeout: cfg.RequestTimeout,
	}

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/healthz", route.Healthz).Methods(http.MethodGet)
	router.HandleFunc("/v2/route", svc.Handler).Methods(http.MethodPost)
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	handler := handlers.CORS(
		handlers.AllowedMethods([]string{"GET", "POST"}),
		handlers.AllowedOrigins([]string{"*"}),
	)(handlers.LoggingHandler(os.Stdout, router))

	log.Infof("tinysea-server listening on %s", cfg.ListenAddr)
	log.Fatal(http.ListenAndServe(cfg.ListenAddr, handler))
}
