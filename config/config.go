// Package config resolves the service's runtime configuration from CLI
// flags and environment variables, grounded on the teacher's main.go
// use of flag + github.com/peterbourgon/ff.
package config

import (
	"flag"
	"os"
	"time"

	"github.com/peterbourgon/ff"
)

// Config holds everything cmd/tinysea-server needs to wire the service
// together. Every field has a flag and a same-named environment
// variable, per ff.WithEnvVarNoPrefix.
type Config struct {
	ListenAddr  string
	WindDir     string
	WindDeltaT  float64
	WindRefresh time.Duration
	PolarDir    string

	MaxSteps       int
	RequestTimeout time.Duration

	XMPPHost     string
	XMPPJID      string
	XMPPPassword string
	XMPPTo       string

	CPUProfile bool
	LogLevel   string
}

// Parse reads args (os.Args[1:] in production) plus the process
// environment into a Config.
func Parse(args []string) (*Config, error) {
	fs := flag.NewFlagSet("tinysea-server", flag.ContinueOnError)

	c := &Config{}
	fs.StringVar(&c.ListenAddr, "listen-addr", ":8888", "HTTP listen address")
	fs.StringVar(&c.WindDir, "wind-dir", "./wind-data", "directory of GRIB2 forecast files")
	fs.Float64Var(&c.WindDeltaT, "wind-delta-t", 3600, "seconds between consecutive forecast grids")
	windRefreshSeconds := fs.Uint64("wind-refresh-seconds", 900, "seconds between forecast directory rescans")
	fs.StringVar(&c.PolarDir, "polar-dir", "./polars", "directory of polar table JSON files")

	fs.IntVar(&c.MaxSteps, "max-steps", 200000, "planner step budget per request, 0 for unbounded")
	requestTimeoutSeconds := fs.Uint64("request-timeout-seconds", 30, "HTTP request deadline for a route search, 0 for unbounded")

	fs.StringVar(&c.XMPPHost, "xmpp-host", "", "XMPP server host, defaults to the JID's domain")
	fs.StringVar(&c.XMPPJID, "xmpp-jid", "", "XMPP account JID used to send notifications")
	fs.StringVar(&c.XMPPPassword, "xmpp-password", "", "XMPP account password")
	fs.StringVar(&c.XMPPTo, "xmpp-to", "", "default XMPP recipient JID")

	fs.BoolVar(&c.CPUProfile, "cpuprofile", false, "enable CPU profiling of the whole process via pkg/profile")
	fs.StringVar(&c.LogLevel, "log-level", "info", "logrus level: debug, info, warn, error")

	if err := ff.Parse(fs, args, ff.WithEnvVarNoPrefix()); err != nil {
		return nil, err
	}

	c.WindRefresh = time.Duration(*windRefreshSeconds) * time.Second
	c.RequestTimeout = time.Duration(*requestTimeoutSeconds) * time.Second
	return c, nil
}

// ParseFromEnv is a convenience wrapper around Parse(os.Args[1:]).
func ParseFromEnv() (*Config, error) {
	return Parse(os.Args[1:])
}
