package app

import (
	"github.com/google/uuid"

	"killerpack/internal/logging"
	"killerpack/internal/services/build"
	"killerpack/internal/store"
	"killerpack/internal/validate"
)

// NewFromConfig constructs the dependency graph from cfg. Every App gets a
// fresh build id attached to its log lines.
func NewFromConfig(cfg Config, log logging.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logging.NopLogger{}
	}
	log = log.With(logging.BuildID(uuid.NewString()))

	sources := store.NewDirSourceStore(cfg.Input, cfg.Extensions)
	outputs := store.NewFileOutputStore(cfg.Archive, cfg.Index)

	opts := []build.Option{build.WithLogger(log.With(logging.Component("build")))}
	if cfg.CheckPartition {
		opts = append(opts, build.WithPartitionCheck(validate.NewPartition()))
	}

	log.Debug("config",
		logging.String("input", cfg.Input),
		logging.String("archive", cfg.Archive),
		logging.String("index", cfg.Index),
		logging.Bool("validate", cfg.CheckPartition),
	)
	return New(sources, build.New(opts...), outputs, log), nil
}
