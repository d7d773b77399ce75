package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/campus-hub-api/internal/models"
	"github.com/noah-isme/campus-hub-api/pkg/academic"
	appErrors "github.com/noah-isme/campus-hub-api/pkg/errors"
)

const dashboardCacheKey = "dashboard:summary"

type dashboardCatalogs interface {
	Emails(ctx context.Context) ([]models.Email, error)
	Clubs(ctx context.Context) ([]models.Club, error)
	Placements(ctx context.Context) ([]models.Placement, error)
	Notices(ctx context.Context) ([]models.Notice, error)
	Assignments(ctx context.Context) ([]models.Assignment, error)
	Meetings(ctx context.Context) ([]models.Meeting, error)
}

type feeSummarizer interface {
	FeeSummary(ctx context.Context) (*models.FeeSummary, error)
}

// DashboardServiceConfig tunes dashboard behaviour.
type DashboardServiceConfig struct {
	CacheTTL time.Duration
}

// DashboardService composes the hub landing page counters.
type DashboardService struct {
	catalogs  dashboardCatalogs
	fees      feeSummarizer
	semesters semesterRepository
	cache     *CacheService
	logger    *zap.Logger
	now       func() time.Time
	cfg       DashboardServiceConfig
}

// DashboardServiceParams groups constructor dependencies.
type DashboardServiceParams struct {
	Catalogs  dashboardCatalogs
	Fees      feeSummarizer
	Semesters semesterRepository
	Cache     *CacheService
	Logger    *zap.Logger
	Config    DashboardServiceConfig
}

// NewDashboardService constructs a DashboardService with sane defaults.
func NewDashboardService(params DashboardServiceParams) *DashboardService {
	cfg := params.Config
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		catalogs:  params.Catalogs,
		fees:      params.Fees,
		semesters: params.Semesters,
		cache:     params.Cache,
		logger:    logger,
		now:       time.Now,
		cfg:       cfg,
	}
}

// Summary returns the dashboard snapshot and indicates cache utilisation.
func (s *DashboardService) Summary(ctx context.Context) (*models.DashboardSummary, bool, error) {
	if s.cache.Enabled() {
		var cached models.DashboardSummary
		if hit, err := s.cache.Get(ctx, dashboardCacheKey, &cached); err == nil && hit {
			return &cached, true, nil
		}
	}

	summary, err := s.compose(ctx)
	if err != nil {
		return nil, false, err
	}
	s.persistCache(ctx, summary)
	return summary, false, nil
}

// Warm recomposes the snapshot and overwrites the cached copy.
func (s *DashboardService) Warm(ctx context.Context) error {
	if !s.cache.Enabled() {
		return nil
	}
	summary, err := s.compose(ctx)
	if err != nil {
		return err
	}
	s.persistCache(ctx, summary)
	s.logger.Debug("dashboard cache warmed", zap.Time("generated_at", summary.GeneratedAt))
	return nil
}

func (s *DashboardService) persistCache(ctx context.Context, summary *models.DashboardSummary) {
	if err := s.cache.Set(ctx, dashboardCacheKey, summary, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("dashboard cache write failed", zap.Error(err))
	}
}

func (s *DashboardService) compose(ctx context.Context) (*models.DashboardSummary, error) {
	summary := &models.DashboardSummary{GeneratedAt: s.now().UTC()}

	emails, err := s.catalogs.Emails(ctx)
	if err != nil {
		return nil, wrapDashboardErr(err, "emails")
	}
	for _, e := range emails {
		if !e.Read {
			summary.UnreadEmails++
		}
		if e.Starred {
			summary.StarredEmails++
		}
	}

	assignments, err := s.catalogs.Assignments(ctx)
	if err != nil {
		return nil, wrapDashboardErr(err, "assignments")
	}
	for i := range assignments {
		a := assignments[i]
		if a.State != models.AssignmentStateActive {
			continue
		}
		summary.ActiveAssignments++
		if a.DueAt != nil && (summary.NextAssignment == nil || a.DueUnix() < summary.NextAssignment.DueUnix()) {
			summary.NextAssignment = &a
		}
	}

	meetings, err := s.catalogs.Meetings(ctx)
	if err != nil {
		return nil, wrapDashboardErr(err, "meetings")
	}
	for _, m := range meetings {
		if m.State == models.MeetingStateUpcoming {
			summary.UpcomingMeetings++
		}
	}

	notices, err := s.catalogs.Notices(ctx)
	if err != nil {
		return nil, wrapDashboardErr(err, "notices")
	}
	for _, n := range notices {
		if n.Priority == models.NoticePriorityUrgent {
			summary.UrgentNotices++
		}
	}

	clubs, err := s.catalogs.Clubs(ctx)
	if err != nil {
		return nil, wrapDashboardErr(err, "clubs")
	}
	for _, c := range clubs {
		if c.Joined {
			summary.JoinedClubs++
		}
	}

	placements, err := s.catalogs.Placements(ctx)
	if err != nil {
		return nil, wrapDashboardErr(err, "placements")
	}
	for _, p := range placements {
		switch {
		case p.Interviewing():
			summary.Interviewing++
		case p.Offered():
			summary.Offers++
		}
	}

	fees, err := s.fees.FeeSummary(ctx)
	if err != nil {
		return nil, err
	}
	summary.OutstandingFees = fees.Outstanding

	semesters, err := s.semesters.Semesters(ctx)
	if err != nil {
		return nil, wrapDashboardErr(err, "semester results")
	}
	if len(semesters) > 0 {
		latest := academic.Summarize(semesters, len(semesters)-1)
		summary.Semester = latest.Semester
		summary.SGPA = latest.SGPA
		summary.CGPA = latest.CGPA
	}

	return summary, nil
}

func wrapDashboardErr(err error, what string) error {
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load "+what)
}
