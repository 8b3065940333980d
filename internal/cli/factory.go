package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	ageis "github.com/shlokkku/Ageis-AI"
	"github.com/shlokkku/Ageis-AI/internal/logging"
	"github.com/shlokkku/Ageis-AI/pkg/adapters/gemini"
	loamAdapter "github.com/shlokkku/Ageis-AI/pkg/adapters/loam"
	"github.com/shlokkku/Ageis-AI/pkg/adapters/memory"
	redisAdapter "github.com/shlokkku/Ageis-AI/pkg/adapters/redis"
	"github.com/shlokkku/Ageis-AI/pkg/domain"
	"github.com/shlokkku/Ageis-AI/pkg/observability"
	"github.com/shlokkku/Ageis-AI/pkg/ports"
)

// Runtime bundles everything a command needs to serve queries.
type Runtime struct {
	Pipeline *ageis.Pipeline
	Registry *prometheus.Registry
	Logger   *slog.Logger

	closers []func() error
}

// Close releases adapter resources (currently the Redis connection).
func (r *Runtime) Close() error {
	var first error
	for _, c := range r.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// BuildRuntime assembles the pipeline from configuration: Redis or
// in-memory records, an optional document directory, and Gemini
// collaborators when an API key is present.
func BuildRuntime(ctx context.Context, cfg Config) (*Runtime, error) {
	logger := logging.New(parseLevel(cfg.LogLevel))

	rt := &Runtime{
		Registry: prometheus.NewRegistry(),
		Logger:   logger,
	}

	opts := []ageis.Option{
		ageis.WithLogger(logger),
		ageis.WithLifecycleHooks(observability.NewMetrics(rt.Registry).Hooks()),
	}

	records, err := buildRecords(cfg, rt)
	if err != nil {
		return nil, err
	}

	if cfg.Documents.Dir != "" {
		searcher, err := loamAdapter.Open(cfg.Documents.Dir)
		if err != nil {
			return nil, fmt.Errorf("open document directory: %w", err)
		}
		opts = append(opts, ageis.WithDocuments(searcher))
	}

	if cfg.Gemini.APIKey != "" {
		geminiOpts := []gemini.Option{}
		if cfg.Gemini.Model != "" {
			geminiOpts = append(geminiOpts, gemini.WithModel(cfg.Gemini.Model))
		}
		narrator, err := gemini.New(ctx, cfg.Gemini.APIKey, geminiOpts...)
		if err != nil {
			return nil, fmt.Errorf("initialize gemini: %w", err)
		}
		opts = append(opts, ageis.WithNarrator(narrator), ageis.WithGeneralResponder(narrator))
	}

	pipeline, err := ageis.New(records, opts...)
	if err != nil {
		return nil, err
	}
	rt.Pipeline = pipeline
	return rt, nil
}

func buildRecords(cfg Config, rt *Runtime) (ports.RecordAccessor, error) {
	if cfg.Redis.Address != "" {
		storeOpts := []redisAdapter.Option{}
		if cfg.Redis.TTL != "" {
			ttl, err := time.ParseDuration(cfg.Redis.TTL)
			if err != nil {
				return nil, fmt.Errorf("parse redis ttl: %w", err)
			}
			storeOpts = append(storeOpts, redisAdapter.WithTTL(ttl))
		}
		store := redisAdapter.New(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB, storeOpts...)
		rt.closers = append(rt.closers, store.Close)
		return store, nil
	}

	store := memory.NewRecordStore()
	if cfg.Records.File != "" {
		records, err := loadRecordsFile(cfg.Records.File)
		if err != nil {
			return nil, err
		}
		store.Seed(records...)
	}
	return store, nil
}

func loadRecordsFile(path string) ([]domain.Record, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read records file: %w", err)
	}
	var records []domain.Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse records file: %w", err)
	}
	return records, nil
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
