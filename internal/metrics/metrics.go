// Package metrics exposes Prometheus instrumentation for the SSH server.
// A nil *Recorder is valid and records nothing, so local play can share the
// same code paths.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vovakirdan/crazysnake/internal/game"
)

const namespace = "crazysnake"

// Recorder holds the server's collectors.
type Recorder struct {
	sessions       prometheus.Gauge
	gamesStarted   prometheus.Counter
	gamesOver      prometheus.Counter
	ticks          prometheus.Counter
	highScoreSaves prometheus.Counter
	finalScores    prometheus.Histogram
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "ssh",
			Name:      "sessions",
			Help:      "SSH sessions currently connected.",
		}),
		gamesStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "game",
			Name:      "started_total",
			Help:      "Games started.",
		}),
		gamesOver: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "game",
			Name:      "over_total",
			Help:      "Games that ended in a collision.",
		}),
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "game",
			Name:      "ticks_total",
			Help:      "Logic ticks executed across all sessions.",
		}),
		highScoreSaves: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "high_score_saves_total",
			Help:      "High scores written to the store.",
		}),
		finalScores: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "game",
			Name:      "final_score",
			Help:      "Snake length at game over.",
			Buckets:   prometheus.LinearBuckets(5, 10, 10),
		}),
	}
	reg.MustRegister(r.sessions, r.gamesStarted, r.gamesOver, r.ticks, r.highScoreSaves, r.finalScores)
	return r
}

// SessionStarted counts a newly connected session.
func (r *Recorder) SessionStarted() {
	if r != nil {
		r.sessions.Inc()
	}
}

// SessionEnded drops a disconnected session from the gauge.
func (r *Recorder) SessionEnded() {
	if r != nil {
		r.sessions.Dec()
	}
}

// GameStarted counts a new game.
func (r *Recorder) GameStarted() {
	if r != nil {
		r.gamesStarted.Inc()
	}
}

// GameOver records a finished game and its score.
func (r *Recorder) GameOver(score int) {
	if r != nil {
		r.gamesOver.Inc()
		r.finalScores.Observe(float64(score))
	}
}

// Ticked adds the logic ticks one frame ran.
func (r *Recorder) Ticked(n int) {
	if r != nil && n > 0 {
		r.ticks.Add(float64(n))
	}
}

// InstrumentStore wraps a high score store to count saves.
func (r *Recorder) InstrumentStore(s game.HighScoreStore) game.HighScoreStore {
	if r == nil {
		return s
	}
	return &instrumentedStore{s: s, saves: r.highScoreSaves}
}

type instrumentedStore struct {
	s     game.HighScoreStore
	saves prometheus.Counter
}

func (m *instrumentedStore) LoadHighScore() int {
	return m.s.LoadHighScore()
}

func (m *instrumentedStore) SaveHighScore(score int) {
	m.saves.Inc()
	m.s.SaveHighScore(score)
}

// Serve exposes /metrics on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string, g prometheus.Gatherer, logger *log.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("serving metrics", "address", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
