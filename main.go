package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"weather-dashboard/config"
	"weather-dashboard/dashboard"
	"weather-dashboard/datasource"
	"weather-dashboard/models"
	"weather-dashboard/render"
)

// options holds the command line arguments
type options struct {
	configFile string
	format     string
	outFile    string
	lat        float64
	lon        float64
	tz         string
	refresh    time.Duration
	iconDir    string
	rateLimit  bool
}

// parseFlags parses args into a new options value
func parseFlags(fs *flag.FlagSet, args []string) (*options, error) {
	o := &options{}
	fs.StringVar(&o.configFile, "config", "", "Path to YAML configuration file")
	fs.StringVar(&o.format, "format", "", "Output format: text, html or json")
	fs.StringVar(&o.outFile, "out", "", "Write the dashboard to this file instead of stdout")
	fs.Float64Var(&o.lat, "lat", 0, "Latitude (skips geolocation)")
	fs.Float64Var(&o.lon, "lon", 0, "Longitude (skips geolocation)")
	fs.StringVar(&o.tz, "tz", "", "IANA time zone for display, or \"auto\"")
	fs.DurationVar(&o.refresh, "refresh", 0, "Reload the dashboard on this interval (0 runs once)")
	fs.StringVar(&o.iconDir, "icons", "", "Directory icon assets are referenced from")
	fs.BoolVar(&o.rateLimit, "rate-limit", true, "Enable forecast API rate limiting")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return o, nil
}

// apply copies the flags that were given explicitly onto cfg, so they win
// over the environment and the config file
func (o *options) apply(fs *flag.FlagSet, cfg *config.Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Render.Format = o.format
		case "out":
			cfg.Render.Output = o.outFile
		case "lat":
			lat := o.lat
			cfg.Location.Latitude = &lat
		case "lon":
			lon := o.lon
			cfg.Location.Longitude = &lon
		case "tz":
			cfg.Location.TimeZone = o.tz
		case "refresh":
			cfg.RefreshInterval = o.refresh
		case "icons":
			cfg.Render.IconDir = o.iconDir
		}
	})
}

// app holds the wired components of one dashboard process
type app struct {
	forecastClient *datasource.BaseClient
	source         datasource.ForecastSource
	locator        datasource.LocationProvider
	renderer       render.Renderer
	service        *dashboard.Service
}

// newApp wires the forecast source, locator, renderer and service from cfg
func newApp(cfg *config.Config, rateLimit bool, logger *slog.Logger) (*app, error) {
	renderer, err := render.New(cfg.Render.Format, cfg.Render.IconDir, logger)
	if err != nil {
		return nil, err
	}

	// Forecast source, optionally rate limited
	forecastClient := datasource.NewBaseClient(&http.Client{Timeout: cfg.Forecast.Timeout}, "open-meteo", cfg.Forecast.UserAgent)
	var source datasource.ForecastSource = datasource.NewOpenMeteoProvider(cfg.Forecast.BaseURL, forecastClient, logger)
	if rateLimit && cfg.Forecast.RateLimit > 0 {
		source = datasource.NewRateLimitedForecastSource(source, cfg.Forecast.RateLimit, cfg.Forecast.RateBurst)
		logger.Debug("applied rate limiting to forecast source",
			"rps", cfg.Forecast.RateLimit,
			"burst", cfg.Forecast.RateBurst,
		)
	}

	locator := newLocator(cfg.Location, cfg.Forecast.UserAgent, logger)

	svc := dashboard.NewService(locator, source, logger)
	svc.SetFetchTimeout(cfg.Forecast.Timeout)

	return &app{
		forecastClient: forecastClient,
		source:         source,
		locator:        locator,
		renderer:       renderer,
		service:        svc,
	}, nil
}

// newLocator picks fixed coordinates when configured, IP geolocation when
// enabled, and otherwise a locator that always reports the location as unavailable
func newLocator(cfg config.LocationConfig, userAgent string, logger *slog.Logger) datasource.LocationProvider {
	if coords, ok := cfg.Fixed(); ok {
		return datasource.NewStaticLocator(coords)
	}
	if cfg.GeolocationEnabled {
		client := datasource.NewBaseClient(&http.Client{Timeout: cfg.GeolocationTimeout}, "geolocation", userAgent)
		return datasource.NewIPLocator(cfg.GeolocationURL, client, logger)
	}
	return datasource.DisabledLocator{}
}

func main() {
	fs := flag.CommandLine
	opts, err := parseFlags(fs, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	// Load configuration
	cfg, err := config.LoadConfig(opts.configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	opts.apply(fs, cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid options: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	a, err := newApp(cfg, opts.rateLimit, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid options: %v\n", err)
		os.Exit(1)
	}

	// Stop refreshing on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("starting weather dashboard",
		"locator", a.locator.Name(),
		"source", a.source.Name(),
		"format", a.renderer.Format(),
		"refresh", cfg.RefreshInterval,
	)

	err = a.service.Run(ctx, cfg.RefreshInterval, func(ctx context.Context, d models.Dashboard) error {
		return writeDashboard(a.renderer, d, cfg.Render.Output)
	})
	if err != nil {
		reportFailure(os.Stderr, logger, err)
		stop()
		os.Exit(1)
	}
}

// reportFailure prints the single user notification for err; the full error
// is only logged at debug level
func reportFailure(w io.Writer, logger *slog.Logger, err error) {
	logger.Debug("dashboard failed", "code", models.CodeOf(err), "error", err)
	fmt.Fprintln(w, models.UserMessage(err))
}

// writeDashboard renders d to stdout, or to path through a temporary file in
// the same directory so a failed render leaves the previous file untouched
func writeDashboard(r render.Renderer, d models.Dashboard, path string) error {
	if path == "" {
		return r.Render(os.Stdout, d)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := r.Render(tmp, d); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace output file: %w", err)
	}
	return nil
}

// newLogger builds the process logger; logs go to w (stderr) so stdout
// carries only the rendered dashboard
func newLogger(w io.Writer, level, format string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}

	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
