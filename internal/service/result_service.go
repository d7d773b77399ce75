package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-hub-api/pkg/academic"
	appErrors "github.com/noah-isme/campus-hub-api/pkg/errors"
	"github.com/noah-isme/campus-hub-api/pkg/export"
)

type semesterRepository interface {
	Semesters(ctx context.Context) ([]academic.SemesterResult, error)
}

// ResultConfig tunes the results service.
type ResultConfig struct {
	SummaryTTL     time.Duration
	ExportsEnabled bool
}

// ExportRequest selects the transcript format and the last semester to include.
type ExportRequest struct {
	Format   string `validate:"omitempty,oneof=csv pdf xlsx"`
	Semester *int
}

// ExportFile is a rendered transcript ready for download.
type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}

// ResultService serves semester results, cumulative summaries and transcripts.
type ResultService struct {
	repo      semesterRepository
	cache     *CacheService
	metrics   *MetricsService
	validator *validator.Validate
	renderers map[export.Format]export.Renderer
	cfg       ResultConfig
	logger    *zap.Logger
}

// NewResultService constructs a ResultService.
func NewResultService(repo semesterRepository, cache *CacheService, metrics *MetricsService, validate *validator.Validate, cfg ResultConfig, logger *zap.Logger) *ResultService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.SummaryTTL <= 0 {
		cfg.SummaryTTL = 10 * time.Minute
	}
	return &ResultService{
		repo:      repo,
		cache:     cache,
		metrics:   metrics,
		validator: validate,
		renderers: export.Renderers(),
		cfg:       cfg,
		logger:    logger,
	}
}

// Semesters returns every semester result in order.
func (s *ResultService) Semesters(ctx context.Context) ([]academic.SemesterResult, error) {
	semesters, err := s.repo.Semesters(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load semester results")
	}
	return semesters, nil
}

// resolveIndex maps a 1-based semester number to the aggregator's 0-based
// index. A nil semester selects the latest one, numbers past the end are
// clamped and anything below 1 maps to -1.
func resolveIndex(semester *int, count int) int {
	switch {
	case semester == nil || *semester > count:
		return count - 1
	case *semester <= 0:
		return -1
	default:
		return *semester - 1
	}
}

// Summary returns the cumulative statistics up to the given 1-based semester.
// The boolean reports whether the result came from cache.
func (s *ResultService) Summary(ctx context.Context, semester *int) (academic.Summary, bool, error) {
	semesters, err := s.Semesters(ctx)
	if err != nil {
		return academic.Summary{}, false, err
	}
	upto := resolveIndex(semester, len(semesters))
	if upto < 0 {
		return academic.Summarize(semesters, upto), false, nil
	}

	key := "results:summary:" + strconv.Itoa(upto)
	return cached(ctx, s.cache, key, s.cfg.SummaryTTL, func(context.Context) (academic.Summary, error) {
		return academic.Summarize(semesters, upto), nil
	})
}

// Export renders a transcript covering semesters 1..N in the requested format.
func (s *ResultService) Export(ctx context.Context, req ExportRequest) (*ExportFile, error) {
	if !s.cfg.ExportsEnabled {
		return nil, appErrors.Clone(appErrors.ErrUnavailable, "transcript exports are disabled")
	}
	req.Format = strings.ToLower(strings.TrimSpace(req.Format))
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnsupportedFormat.Code, appErrors.ErrUnsupportedFormat.Status, "format must be one of csv, pdf, xlsx")
	}
	format, err := export.ParseFormat(req.Format)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnsupportedFormat.Code, appErrors.ErrUnsupportedFormat.Status, err.Error())
	}
	renderer, ok := s.renderers[format]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrUnsupportedFormat, fmt.Sprintf("no renderer for %s", format))
	}

	semesters, err := s.Semesters(ctx)
	if err != nil {
		return nil, err
	}
	upto := resolveIndex(req.Semester, len(semesters))
	summary := academic.Summarize(semesters, upto)

	body, err := renderer.Render(transcriptDataset(semesters, summary))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render transcript")
	}
	s.metrics.RecordExport(string(format))
	s.logger.Info("transcript exported",
		zap.String("format", string(format)),
		zap.Int("semester", summary.Semester),
		zap.Int("bytes", len(body)),
	)

	return &ExportFile{
		Filename:    fmt.Sprintf("transcript-semester-%d.%s", summary.Semester, format),
		ContentType: format.ContentType(),
		Body:        body,
	}, nil
}

var transcriptHeaders = []string{"Semester", "Code", "Subject", "Credits", "Marks", "Grade", "Result"}

// transcriptDataset lists every subject of the summarised semesters followed
// by the cumulative figures.
func transcriptDataset(semesters []academic.SemesterResult, summary academic.Summary) export.Dataset {
	data := export.Dataset{
		Title:   "Academic Transcript",
		Headers: transcriptHeaders,
		Rows:    []map[string]string{},
	}
	if summary.Semester > 0 {
		data.Title = fmt.Sprintf("Academic Transcript - %s", summary.Name)
	}

	for _, sem := range semesters[:summary.Semester] {
		for _, subject := range sem.Subjects {
			result := "Fail"
			if subject.Pass {
				result = "Pass"
			}
			data.Rows = append(data.Rows, map[string]string{
				"Semester": sem.Name,
				"Code":     subject.Code,
				"Subject":  subject.Name,
				"Credits":  strconv.Itoa(subject.Credits),
				"Marks":    strconv.Itoa(subject.Marks),
				"Grade":    subject.Grade,
				"Result":   result,
			})
		}
	}

	data.Footer = []string{
		fmt.Sprintf("Total credits: %d", summary.TotalCredits),
		fmt.Sprintf("SGPA: %.2f", summary.SGPA),
		fmt.Sprintf("CGPA: %.2f", summary.CGPA),
	}
	if summary.Band != "" {
		data.Footer = append(data.Footer, "Semester standing: "+summary.Band)
	}
	return data
}
