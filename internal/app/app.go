package app

import (
	"killerpack/internal/codec"
	"killerpack/internal/crypto"
	"killerpack/internal/domain"
	"killerpack/internal/logging"
)

// App bundles the stores and services a command needs.
type App struct {
	Sources domain.SourceStore
	Builder domain.BuildService
	Outputs domain.OutputStore
	Log     logging.Logger
}

// New returns an App over the given collaborators.
func New(sources domain.SourceStore, builder domain.BuildService, outputs domain.OutputStore, log logging.Logger) *App {
	if log == nil {
		log = logging.NopLogger{}
	}
	return &App{
		Sources: sources,
		Builder: builder,
		Outputs: outputs,
		Log:     log,
	}
}

// Summary describes a finished compile.
type Summary struct {
	Puzzles       int
	ArchiveBytes  int
	IndexBytes    int
	ArchiveDigest string
	IndexDigest   string
	Published     bool
}

// Compile loads every source, builds the archive and index and, when
// publish is set, writes both outputs. Nothing is written on failure.
func (a *App) Compile(publish bool) (Summary, error) {
	timer := logging.StartTimer(a.Log, "build finished", logging.Bool("publish", publish))

	sources, err := a.Sources.LoadSources()
	if err != nil {
		timer.EndError(err)
		return Summary{}, err
	}
	a.Log.Info("sources loaded", logging.Count(len(sources)))

	res, err := a.Builder.Build(sources)
	if err != nil {
		timer.EndError(err)
		return Summary{}, err
	}
	index := codec.EncodeIndex(res.Index)

	sum := Summary{
		Puzzles:       res.Count(),
		ArchiveBytes:  len(res.Archive),
		IndexBytes:    len(index),
		ArchiveDigest: crypto.Digest(res.Archive),
		IndexDigest:   crypto.Digest(index),
	}

	if publish {
		if err := a.Outputs.Publish(res.Archive, index); err != nil {
			timer.EndError(err)
			return Summary{}, err
		}
		sum.Published = true
	}

	timer.End(
		logging.Count(sum.Puzzles),
		logging.Bytes(sum.ArchiveBytes),
		logging.String("archive_fp", crypto.Fingerprint(res.Archive)),
	)
	return sum, nil
}
