package build

import (
	"errors"

	"killerpack/internal/codec"
	"killerpack/internal/domain"
	"killerpack/internal/logging"
	"killerpack/internal/parser"
)

// Service is the archive builder.
type Service struct {
	checker domain.PartitionChecker
	log     logging.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithPartitionCheck runs c on every puzzle before it is encoded.
func WithPartitionCheck(c domain.PartitionChecker) Option {
	return func(s *Service) { s.checker = c }
}

// WithLogger sets the logger used for per-puzzle debug output.
func WithLogger(l logging.Logger) Option {
	return func(s *Service) { s.log = l }
}

// New returns a build service.
func New(opts ...Option) *Service {
	s := &Service{log: logging.NopLogger{}}
	for _, o := range opts {
		o(s)
	}
	return s
}

// state is the build accumulator.
type state struct {
	pos     uint64
	archive []byte
	offsets []uint32
	puzzles []domain.Puzzle
}

// Build compiles sources in the order given. Source i becomes puzzle id i.
func (s *Service) Build(sources []domain.Source) (domain.Result, error) {
	st := state{
		offsets: make([]uint32, 0, len(sources)),
		puzzles: make([]domain.Puzzle, 0, len(sources)),
	}
	for _, src := range sources {
		var err error
		if st, err = s.step(st, src); err != nil {
			return domain.Result{}, err
		}
	}
	return domain.Result{
		Archive: st.archive,
		Index:   st.offsets,
		Puzzles: st.puzzles,
	}, nil
}

// step folds one source into st.
func (s *Service) step(st state, src domain.Source) (state, error) {
	cages, err := parser.Parse(src.Data)
	if err != nil {
		return st, withPath(err, src.Path)
	}
	p := domain.Puzzle{Name: src.Name, Cages: cages}

	if s.checker != nil {
		if err := s.checker.Check(p); err != nil {
			return st, withPath(err, src.Path)
		}
	}

	offset, err := codec.IndexOffset(st.pos)
	if err != nil {
		return st, withPath(err, src.Path)
	}
	before := len(st.archive)
	archive, err := codec.AppendPuzzle(st.archive, cages)
	if err != nil {
		return st, withPath(err, src.Path)
	}
	size := len(archive) - before

	s.log.Debug("puzzle encoded",
		logging.Int("id", len(st.offsets)),
		logging.Path(src.Path),
		logging.Int("offset", int(offset)),
		logging.Int("cages", len(cages)),
		logging.Bytes(size),
	)

	st.offsets = append(st.offsets, offset)
	st.puzzles = append(st.puzzles, p)
	st.archive = archive
	st.pos += uint64(size)
	return st, nil
}

// withPath stamps the source path onto typed domain errors.
func withPath(err error, path string) error {
	var (
		fe *domain.FormatError
		ee *domain.EncodingError
		pe *domain.PartitionError
	)
	switch {
	case errors.As(err, &fe):
		fe.Path = path
	case errors.As(err, &ee):
		ee.Path = path
	case errors.As(err, &pe):
		pe.Path = path
	default:
		return &domain.IOError{Op: "parse", Path: path, Err: err}
	}
	return err
}

// Compile-time assertion that Service implements domain.BuildService.
var _ domain.BuildService = (*Service)(nil)
