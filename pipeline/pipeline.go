// Package pipeline runs one grouping request end to end: partition, label,
// render and, when configured, commentary. Computation is pure; the only
// blocking step is the commentary call.
package pipeline

import (
	"context"
	"io"

	"go.uber.org/zap"

	"groupform-server-go/commentary"
	"groupform-server-go/export"
	"groupform-server-go/grouping"
	"groupform-server-go/metrics"
	"groupform-server-go/models"
)

// Result is everything produced by one grouping run.
type Result struct {
	Groups models.Assignment
	Tables []models.GroupTable
	Text   string
	Stats  []models.GroupStats

	// Commentary is empty when commentary is disabled or failed.
	Commentary string
	// CommentaryErr is set when the commentary service failed. The other
	// fields stay valid.
	CommentaryErr error
}

// Options tweak a single run.
type Options struct {
	SkipCommentary bool
}

// Service runs grouping requests.
type Service struct {
	commentary commentary.Generator
	metrics    metrics.Recorder
	logger     *zap.Logger
}

// NewService creates a Service. gen may be nil to disable commentary; a nil
// recorder discards metrics.
func NewService(gen commentary.Generator, recorder metrics.Recorder, logger *zap.Logger) *Service {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		commentary: gen,
		metrics:    recorder,
		logger:     logger,
	}
}

// CommentaryEnabled reports whether a commentary generator is configured.
func (s *Service) CommentaryEnabled() bool {
	return s.commentary != nil
}

// Form groups students and renders the result. A non-positive groupSize
// returns a *grouping.ConfigError before anything is computed. A commentary
// failure does not fail Form; it is reported in Result.CommentaryErr.
func (s *Service) Form(ctx context.Context, students []models.Student, groupSize int, opts Options) (*Result, error) {
	res, err := s.Group(students, groupSize)
	if err != nil {
		return nil, err
	}

	switch {
	case opts.SkipCommentary || s.commentary == nil:
		s.metrics.RecordCommentary(metrics.ResultDisabled)
	case len(res.Groups) == 0:
		// Nothing to comment on.
	default:
		text, err := s.commentary.Generate(ctx, res.Text)
		if err != nil {
			s.logger.Warn("commentary failed, returning groups without it", zap.Error(err))
			s.metrics.RecordCommentary(metrics.ResultFailure)
			res.CommentaryErr = err
			break
		}
		s.metrics.RecordCommentary(metrics.ResultSuccess)
		res.Commentary = text
	}

	return res, nil
}

// Group runs the pure part of Form: partition, label, render and stats.
func (s *Service) Group(students []models.Student, groupSize int) (*Result, error) {
	groups, err := grouping.Partition(students, groupSize)
	if err != nil {
		return nil, err
	}
	tables := grouping.Tables(groups)

	s.metrics.RecordGrouping(len(students), len(groups))
	s.logger.Info("formed groups",
		zap.Int("students", len(students)),
		zap.Int("groupSize", groupSize),
		zap.Int("groups", len(groups)))

	return &Result{
		Groups: groups,
		Tables: tables,
		Text:   grouping.RenderTables(tables),
		Stats:  grouping.Stats(groups),
	}, nil
}

// Export writes the workbook for res. It uses the same labeled tables as
// res.Text.
func (s *Service) Export(w io.Writer, res *Result) error {
	if err := export.WriteWorkbook(w, res.Tables); err != nil {
		s.metrics.RecordExport(metrics.ResultFailure)
		return err
	}
	s.metrics.RecordExport(metrics.ResultSuccess)
	return nil
}
