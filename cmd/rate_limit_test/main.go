// Command rate_limit_test drives the forecast rate limiter with concurrent
// workers and reports how closely the observed rate follows the limit.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"weather-dashboard/datasource"
	"weather-dashboard/models"
)

// slowSource answers every forecast after a fixed delay. Once more than
// failAfter calls were made (failAfter > 0) it answers with a rate limit error.
type slowSource struct {
	calls     atomic.Int64
	delay     time.Duration
	failAfter int64
}

func (s *slowSource) Name() string {
	return "slow-source"
}

func (s *slowSource) FetchForecast(ctx context.Context, coords models.Coordinates) (models.RawForecastPayload, error) {
	n := s.calls.Add(1)

	select {
	case <-time.After(s.delay):
	case <-ctx.Done():
		return models.RawForecastPayload{}, ctx.Err()
	}

	if s.failAfter > 0 && n > s.failAfter {
		return models.RawForecastPayload{}, models.NewAppError(models.ErrCodeUpstreamLimited, "upstream refused the request", nil)
	}
	return models.RawForecastPayload{
		Latitude:  coords.Latitude,
		Longitude: coords.Longitude,
		Timezone:  coords.TimeZone,
		CurrentWeather: models.CurrentWeather{
			Time:        time.Now().Unix(),
			Temperature: 22.5,
			WindSpeed:   5.5,
			WeatherCode: 1,
		},
	}, nil
}

// result is the outcome of one limited request
type result struct {
	worker  int
	elapsed time.Duration
	err     error
}

// report summarizes a run
type report struct {
	Requests  int
	Failed    int
	Duration  time.Duration
	MaxWait   time.Duration
	ActualRPS float64
	MinTime   time.Duration
}

// withinLimit reports whether the run stayed near the configured rate. Runs
// that fit inside the burst are always within the limit.
func (r report) withinLimit(rps float64, burst int) bool {
	if r.Requests <= burst {
		return true
	}
	return r.ActualRPS <= rps*1.5
}

// summarize folds the results of a run that took duration
func summarize(results []result, duration time.Duration, rps float64, burst int) report {
	r := report{Requests: len(results), Duration: duration}
	for _, res := range results {
		if res.err != nil {
			r.Failed++
		}
		if res.elapsed > r.MaxWait {
			r.MaxWait = res.elapsed
		}
	}
	if duration > 0 {
		r.ActualRPS = float64(r.Requests) / duration.Seconds()
	}
	if extra := r.Requests - burst; extra > 0 && rps > 0 {
		r.MinTime = time.Duration(float64(extra) / rps * float64(time.Second))
	}
	return r
}

// run sends total requests through source from the given number of workers
func run(ctx context.Context, source datasource.ForecastSource, total, workers int, logger *slog.Logger) []result {
	jobs := make(chan models.Coordinates)
	out := make(chan result, total)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for coords := range jobs {
				start := time.Now()
				_, err := source.FetchForecast(ctx, coords)
				res := result{worker: worker, elapsed: time.Since(start), err: err}
				if err != nil {
					logger.Warn("request failed", "worker", worker, "code", models.CodeOf(err), "error", err)
				} else {
					logger.Debug("request completed", "worker", worker, "elapsed", res.elapsed)
				}
				out <- res
			}
		}(w)
	}

	for i := 0; i < total; i++ {
		jobs <- models.Coordinates{Latitude: float64(i % 90), Longitude: float64(i % 180), TimeZone: models.AutoTimezone}
	}
	close(jobs)
	wg.Wait()
	close(out)

	results := make([]result, 0, total)
	for res := range out {
		results = append(results, res)
	}
	return results
}

func main() {
	rps := flag.Float64("rps", 1.0, "Rate limit in requests per second")
	burst := flag.Int("burst", 3, "Maximum burst size")
	total := flag.Int("requests", 10, "Total number of requests to make")
	workers := flag.Int("concurrent", 5, "Number of concurrent workers")
	failAfter := flag.Int("fail-after", 0, "Answer with rate limit errors after this many requests (0 never fails)")
	verbose := flag.Bool("v", false, "Log every request")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	source := &slowSource{delay: 200 * time.Millisecond, failAfter: int64(*failAfter)}
	limited := datasource.NewRateLimitedForecastSource(source, *rps, *burst)

	logger.Info("starting run",
		"source", limited.Name(),
		"rps", *rps,
		"burst", *burst,
		"requests", *total,
		"workers", *workers,
	)

	start := time.Now()
	results := run(ctx, limited, *total, *workers, logger)
	r := summarize(results, time.Since(start), *rps, *burst)

	logger.Info("run finished",
		"requests", r.Requests,
		"failed", r.Failed,
		"duration", r.Duration.Round(time.Millisecond),
		"max_wait", r.MaxWait.Round(time.Millisecond),
		"actual_rps", r.ActualRPS,
		"min_time", r.MinTime,
	)
	if !r.withinLimit(*rps, *burst) {
		logger.Error("observed rate exceeds the configured limit", "actual_rps", r.ActualRPS, "limit", *rps)
		os.Exit(1)
	}
}
