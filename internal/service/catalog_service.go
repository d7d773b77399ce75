package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-hub-api/internal/models"
	appErrors "github.com/noah-isme/campus-hub-api/pkg/errors"
	"github.com/noah-isme/campus-hub-api/pkg/query"
)

type catalogRepository interface {
	Emails(ctx context.Context) ([]models.Email, error)
	Notes(ctx context.Context) ([]models.Note, error)
	Clubs(ctx context.Context) ([]models.Club, error)
	Placements(ctx context.Context) ([]models.Placement, error)
	Notices(ctx context.Context) ([]models.Notice, error)
	Locations(ctx context.Context) ([]models.Location, error)
	Students(ctx context.Context) ([]models.Student, error)
	Projects(ctx context.Context) ([]models.Project, error)
	Assignments(ctx context.Context) ([]models.Assignment, error)
	Meetings(ctx context.Context) ([]models.Meeting, error)
	Fees(ctx context.Context) ([]models.FeeItem, error)
	Scholarships(ctx context.Context) ([]models.Scholarship, error)
	AttendanceOverview(ctx context.Context) (models.AttendanceOverview, error)
	AttendanceSubjects(ctx context.Context) ([]models.SubjectAttendance, error)
	AttendanceRecords(ctx context.Context) ([]models.AttendanceRecord, error)
	Schedule(ctx context.Context) ([]models.ClassSession, error)
	WalletBalance(ctx context.Context) (models.WalletBalance, error)
	Transactions(ctx context.Context) ([]models.Transaction, error)
}

// CatalogConfig bounds catalog paging.
type CatalogConfig struct {
	DefaultPageSize int
	MaxPageSize     int
}

// collection describes how one catalog is filtered, searched and ordered.
type collection[T any] struct {
	name     string
	load     func(context.Context) ([]T, error)
	tabs     map[string]query.Category[T]
	fallback func(T) string
	fields   []query.Field[T]
	sort     []query.SortKey[T]
}

// category resolves a tab token. Named tabs match case-insensitively; any
// other token is compared verbatim against the fallback field.
func (c collection[T]) category(tab string) query.Category[T] {
	tab = strings.TrimSpace(tab)
	if tab == "" || strings.EqualFold(tab, models.TabAll) {
		return query.All[T]()
	}
	if named, ok := c.tabs[strings.ToLower(tab)]; ok {
		return named
	}
	return query.Equals(c.fallback, tab)
}

func (c collection[T]) spec(filter models.ListFilter) query.Spec[T] {
	return query.Spec[T]{
		Category: c.category(filter.Tab),
		Term:     filter.Search,
		Fields:   c.fields,
		Sort:     c.sort,
	}
}

// CatalogService answers listing requests for every hub catalog.
type CatalogService struct {
	repo      catalogRepository
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
	cfg       CatalogConfig
	now       func() time.Time

	emails       collection[models.Email]
	notes        collection[models.Note]
	clubs        collection[models.Club]
	placements   collection[models.Placement]
	notices      collection[models.Notice]
	locations    collection[models.Location]
	students     collection[models.Student]
	projects     collection[models.Project]
	assignments  collection[models.Assignment]
	meetings     collection[models.Meeting]
	fees         collection[models.FeeItem]
	scholarships collection[models.Scholarship]
	attendance   collection[models.SubjectAttendance]
	records      collection[models.AttendanceRecord]
	schedule     collection[models.ClassSession]
	transactions collection[models.Transaction]
}

// NewCatalogService wires the catalog definitions to the repository.
func NewCatalogService(repo catalogRepository, validate *validator.Validate, metrics *MetricsService, cfg CatalogConfig, logger *zap.Logger) *CatalogService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MaxPageSize <= 0 {
		cfg.MaxPageSize = 100
	}
	if cfg.DefaultPageSize <= 0 || cfg.DefaultPageSize > cfg.MaxPageSize {
		cfg.DefaultPageSize = min(20, cfg.MaxPageSize)
	}

	return &CatalogService{
		repo:      repo,
		validator: validate,
		metrics:   metrics,
		logger:    logger,
		cfg:       cfg,
		now:       time.Now,

		emails: collection[models.Email]{
			name: "emails",
			load: repo.Emails,
			tabs: map[string]query.Category[models.Email]{
				"starred":   query.Predicate(func(e models.Email) bool { return e.Starred }),
				"important": query.Predicate(func(e models.Email) bool { return e.Important }),
				"unread":    query.Predicate(func(e models.Email) bool { return !e.Read }),
			},
			fallback: func(e models.Email) string { return e.Category },
			fields: []query.Field[models.Email]{
				query.Text(func(e models.Email) string { return e.From.Name }),
				query.Text(func(e models.Email) string { return e.Subject }),
				query.Text(func(e models.Email) string { return e.Preview }),
			},
		},
		notes: collection[models.Note]{
			name:     "notes",
			load:     repo.Notes,
			fallback: func(n models.Note) string { return n.Subject },
			fields: []query.Field[models.Note]{
				query.Text(func(n models.Note) string { return n.Title }),
				query.Text(func(n models.Note) string { return n.Preview }),
				query.Texts(func(n models.Note) []string { return n.Tags }),
			},
		},
		clubs: collection[models.Club]{
			name: "clubs",
			load: repo.Clubs,
			tabs: map[string]query.Category[models.Club]{
				"my-clubs": query.Predicate(func(c models.Club) bool { return c.Joined }),
			},
			fallback: func(c models.Club) string { return c.Category },
			fields: []query.Field[models.Club]{
				query.Text(func(c models.Club) string { return c.Name }),
				query.Text(func(c models.Club) string { return c.Description }),
				query.Text(func(c models.Club) string { return c.Category }),
			},
		},
		placements: collection[models.Placement]{
			name: "placements",
			load: repo.Placements,
			tabs: map[string]query.Category[models.Placement]{
				"starred":      query.Predicate(func(p models.Placement) bool { return p.Starred }),
				"interviewing": query.Predicate(models.Placement.Interviewing),
				"offered":      query.Predicate(models.Placement.Offered),
			},
			fallback: func(p models.Placement) string { return p.Domain },
			fields: []query.Field[models.Placement]{
				query.Text(func(p models.Placement) string { return p.Company }),
				query.Text(func(p models.Placement) string { return p.Role }),
				query.Text(func(p models.Placement) string { return p.Domain }),
				query.Text(func(p models.Placement) string { return p.Location }),
			},
			sort: []query.SortKey[models.Placement]{
				query.TrueFirst(func(p models.Placement) bool { return p.Starred }),
				query.Desc(func(p models.Placement) int { return p.ApplicationStage }),
				query.Asc(func(p models.Placement) int64 { return p.Deadline.Unix() }),
			},
		},
		notices: collection[models.Notice]{
			name: "notices",
			load: repo.Notices,
			tabs: map[string]query.Category[models.Notice]{
				"urgent": query.Predicate(func(n models.Notice) bool { return n.Priority == models.NoticePriorityUrgent }),
			},
			fallback: func(n models.Notice) string { return n.Category },
			fields: []query.Field[models.Notice]{
				query.Text(func(n models.Notice) string { return n.Title }),
				query.Text(func(n models.Notice) string { return n.Description }),
				query.Text(func(n models.Notice) string { return n.Category }),
				query.Text(func(n models.Notice) string { return n.Department }),
			},
		},
		locations: collection[models.Location]{
			name: "locations",
			load: repo.Locations,
			tabs: map[string]query.Category[models.Location]{
				"accessible": query.Predicate(func(l models.Location) bool { return l.IsAccessible }),
			},
			fallback: func(l models.Location) string { return l.Type },
			fields: []query.Field[models.Location]{
				query.Text(func(l models.Location) string { return l.Name }),
				query.Text(func(l models.Location) string { return l.Description }),
				query.Texts(func(l models.Location) []string { return l.Services }),
			},
		},
		students: collection[models.Student]{
			name: "students",
			load: repo.Students,
			tabs: map[string]query.Category[models.Student]{
				"online": query.Predicate(func(s models.Student) bool { return s.IsOnline }),
			},
			fallback: func(s models.Student) string { return s.Year },
			fields: []query.Field[models.Student]{
				query.Text(func(s models.Student) string { return s.Name }),
				query.Texts(models.Student.SkillNames),
				query.Texts(func(s models.Student) []string { return s.LookingFor }),
			},
			sort: []query.SortKey[models.Student]{
				query.Desc(func(s models.Student) float64 { return s.Rating }),
			},
		},
		projects: collection[models.Project]{
			name: "projects",
			load: repo.Projects,
			tabs: map[string]query.Category[models.Project]{
				"remote": query.Predicate(func(p models.Project) bool { return p.IsRemote }),
			},
			fallback: func(p models.Project) string { return p.Status },
			fields: []query.Field[models.Project]{
				query.Text(func(p models.Project) string { return p.Title }),
				query.Texts(func(p models.Project) []string { return p.SkillsNeeded }),
			},
			sort: []query.SortKey[models.Project]{
				query.Asc(func(p models.Project) string { return p.Deadline }),
			},
		},
		assignments: collection[models.Assignment]{
			name: "assignments",
			load: repo.Assignments,
			tabs: map[string]query.Category[models.Assignment]{
				"high-priority": query.Predicate(func(a models.Assignment) bool { return a.Priority == "high" }),
			},
			fallback: func(a models.Assignment) string { return a.State },
			fields: []query.Field[models.Assignment]{
				query.Text(func(a models.Assignment) string { return a.Title }),
				query.Text(func(a models.Assignment) string { return a.Course }),
			},
			sort: []query.SortKey[models.Assignment]{
				query.Asc(models.Assignment.DueUnix),
			},
		},
		meetings: collection[models.Meeting]{
			name: "meetings",
			load: repo.Meetings,
			tabs: map[string]query.Category[models.Meeting]{
				"virtual":   query.Predicate(func(m models.Meeting) bool { return m.Type == "virtual" }),
				"in-person": query.Predicate(func(m models.Meeting) bool { return m.Type == "in-person" }),
			},
			fallback: func(m models.Meeting) string { return m.State },
			fields: []query.Field[models.Meeting]{
				query.Text(func(m models.Meeting) string { return m.Title }),
				query.Text(func(m models.Meeting) string { return m.Location }),
				query.Texts(models.Meeting.AttendeeNames),
			},
		},
		fees: collection[models.FeeItem]{
			name:     "fees",
			load:     repo.Fees,
			fallback: func(f models.FeeItem) string { return f.Status },
			fields: []query.Field[models.FeeItem]{
				query.Text(func(f models.FeeItem) string { return f.Name }),
				query.Text(func(f models.FeeItem) string { return f.Category }),
				query.Optional(func(f models.FeeItem) *string { return f.Description }),
			},
			sort: []query.SortKey[models.FeeItem]{
				query.Asc(func(f models.FeeItem) int64 { return f.DueDate.Unix() }),
			},
		},
		scholarships: collection[models.Scholarship]{
			name:     "scholarships",
			load:     repo.Scholarships,
			fallback: func(s models.Scholarship) string { return s.Status },
			fields: []query.Field[models.Scholarship]{
				query.Text(func(s models.Scholarship) string { return s.Name }),
				query.Text(func(s models.Scholarship) string { return s.Type }),
			},
		},
		attendance: collection[models.SubjectAttendance]{
			name: "attendance",
			load: repo.AttendanceSubjects,
			tabs: map[string]query.Category[models.SubjectAttendance]{
				models.AttendanceStandingGood:     standing(models.AttendanceStandingGood),
				models.AttendanceStandingWarning:  standing(models.AttendanceStandingWarning),
				models.AttendanceStandingCritical: standing(models.AttendanceStandingCritical),
			},
			fallback: func(a models.SubjectAttendance) string { return a.Code },
			fields: []query.Field[models.SubjectAttendance]{
				query.Text(func(a models.SubjectAttendance) string { return a.Name }),
				query.Text(func(a models.SubjectAttendance) string { return a.Code }),
			},
		},
		records: collection[models.AttendanceRecord]{
			name:     "attendance_records",
			load:     repo.AttendanceRecords,
			fallback: func(r models.AttendanceRecord) string { return r.Status },
			fields: []query.Field[models.AttendanceRecord]{
				query.Text(func(r models.AttendanceRecord) string { return r.Subject }),
				query.Text(func(r models.AttendanceRecord) string { return r.Teacher }),
				query.Text(func(r models.AttendanceRecord) string { return r.Class }),
			},
		},
		schedule: collection[models.ClassSession]{
			name: "schedule",
			load: repo.Schedule,
			tabs: map[string]query.Category[models.ClassSession]{
				"online": query.Predicate(func(c models.ClassSession) bool { return c.IsOnline }),
			},
			fallback: func(c models.ClassSession) string { return c.Type },
			fields: []query.Field[models.ClassSession]{
				query.Text(func(c models.ClassSession) string { return c.Subject }),
				query.Text(func(c models.ClassSession) string { return c.Code }),
				query.Text(func(c models.ClassSession) string { return c.Professor.Name }),
				query.Text(func(c models.ClassSession) string { return c.Room }),
				query.Text(func(c models.ClassSession) string { return c.Building }),
			},
			sort: []query.SortKey[models.ClassSession]{
				query.Asc(func(c models.ClassSession) string { return c.Date }),
				query.Asc(func(c models.ClassSession) string { return c.StartTime }),
			},
		},
		transactions: collection[models.Transaction]{
			name: "transactions",
			load: repo.Transactions,
			tabs: map[string]query.Category[models.Transaction]{
				"purchases": transactionType(models.TransactionPurchase),
				"refunds":   transactionType(models.TransactionRefund),
				"deposits":  transactionType(models.TransactionDeposit),
			},
			fallback: func(t models.Transaction) string { return t.Category },
			fields: []query.Field[models.Transaction]{
				query.Text(func(t models.Transaction) string { return t.Description }),
				query.Text(func(t models.Transaction) string { return t.Location }),
				query.Text(func(t models.Transaction) string { return t.Category }),
			},
		},
	}
}

func standing(level string) query.Category[models.SubjectAttendance] {
	return query.Predicate(func(a models.SubjectAttendance) bool { return a.Standing() == level })
}

func transactionType(kind string) query.Category[models.Transaction] {
	return query.Predicate(func(t models.Transaction) bool { return t.Type == kind })
}

// NormalizeFilter applies paging defaults. Zero values mean "not provided".
func (s *CatalogService) NormalizeFilter(filter models.ListFilter) models.ListFilter {
	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.PageSize == 0 {
		filter.PageSize = s.cfg.DefaultPageSize
	}
	return filter
}

func listCollection[T any](ctx context.Context, s *CatalogService, c collection[T], filter models.ListFilter) ([]T, *models.Pagination, error) {
	filter = s.NormalizeFilter(filter)
	if err := s.validator.Struct(filter); err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid list parameters")
	}
	if filter.PageSize > s.cfg.MaxPageSize {
		return nil, nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("limit must not exceed %d", s.cfg.MaxPageSize))
	}

	records, err := c.load(ctx)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load "+c.name)
	}

	start := time.Now()
	matched := c.spec(filter).Apply(records)
	s.metrics.ObserveCatalogQuery(c.name, len(matched), time.Since(start))

	page, total := query.Page(matched, filter.Page, filter.PageSize)
	s.logger.Debug("catalog listed",
		zap.String("catalog", c.name),
		zap.String("tab", filter.Tab),
		zap.Int("matched", total),
		zap.Int("returned", len(page)),
	)
	return page, &models.Pagination{Page: filter.Page, PageSize: filter.PageSize, TotalCount: total}, nil
}

// ListEmails returns a page of the inbox.
func (s *CatalogService) ListEmails(ctx context.Context, filter models.ListFilter) ([]models.Email, *models.Pagination, error) {
	return listCollection(ctx, s, s.emails, filter)
}

// ListNotes returns a page of notes.
func (s *CatalogService) ListNotes(ctx context.Context, filter models.ListFilter) ([]models.Note, *models.Pagination, error) {
	return listCollection(ctx, s, s.notes, filter)
}

// ListClubs returns a page of the club directory.
func (s *CatalogService) ListClubs(ctx context.Context, filter models.ListFilter) ([]models.Club, *models.Pagination, error) {
	return listCollection(ctx, s, s.clubs, filter)
}

// ListPlacements returns a page of applications, starred first.
func (s *CatalogService) ListPlacements(ctx context.Context, filter models.ListFilter) ([]models.Placement, *models.Pagination, error) {
	return listCollection(ctx, s, s.placements, filter)
}

// ListNotices returns a page of announcements.
func (s *CatalogService) ListNotices(ctx context.Context, filter models.ListFilter) ([]models.Notice, *models.Pagination, error) {
	return listCollection(ctx, s, s.notices, filter)
}

// ListLocations returns a page of campus map points.
func (s *CatalogService) ListLocations(ctx context.Context, filter models.ListFilter) ([]models.Location, *models.Pagination, error) {
	return listCollection(ctx, s, s.locations, filter)
}

// ListStudents returns a page of collaborators, best rated first.
func (s *CatalogService) ListStudents(ctx context.Context, filter models.ListFilter) ([]models.Student, *models.Pagination, error) {
	return listCollection(ctx, s, s.students, filter)
}

// ListProjects returns a page of open projects by deadline.
func (s *CatalogService) ListProjects(ctx context.Context, filter models.ListFilter) ([]models.Project, *models.Pagination, error) {
	return listCollection(ctx, s, s.projects, filter)
}

// ListAssignments returns a page of coursework by due date. Undated work sorts last.
func (s *CatalogService) ListAssignments(ctx context.Context, filter models.ListFilter) ([]models.Assignment, *models.Pagination, error) {
	return listCollection(ctx, s, s.assignments, filter)
}

// ListMeetings returns a page of meetings.
func (s *CatalogService) ListMeetings(ctx context.Context, filter models.ListFilter) ([]models.Meeting, *models.Pagination, error) {
	return listCollection(ctx, s, s.meetings, filter)
}

// ListFees returns a page of fee items by due date.
func (s *CatalogService) ListFees(ctx context.Context, filter models.ListFilter) ([]models.FeeItem, *models.Pagination, error) {
	return listCollection(ctx, s, s.fees, filter)
}

// ListScholarships returns a page of scholarships.
func (s *CatalogService) ListScholarships(ctx context.Context, filter models.ListFilter) ([]models.Scholarship, *models.Pagination, error) {
	return listCollection(ctx, s, s.scholarships, filter)
}

// ListAttendanceSubjects returns a page of per-course attendance.
func (s *CatalogService) ListAttendanceSubjects(ctx context.Context, filter models.ListFilter) ([]models.SubjectAttendance, *models.Pagination, error) {
	return listCollection(ctx, s, s.attendance, filter)
}

// ListAttendanceRecords returns a page of recently marked classes.
func (s *CatalogService) ListAttendanceRecords(ctx context.Context, filter models.ListFilter) ([]models.AttendanceRecord, *models.Pagination, error) {
	return listCollection(ctx, s, s.records, filter)
}

// AttendanceOverview returns the attendance totals.
func (s *CatalogService) AttendanceOverview(ctx context.Context) (*models.AttendanceOverview, error) {
	overview, err := s.repo.AttendanceOverview(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load attendance")
	}
	return &overview, nil
}

// ListSchedule returns a page of the class sessions inside the daily or weekly
// window anchored on filter.Date, ordered by date and start time.
func (s *CatalogService) ListSchedule(ctx context.Context, filter models.ScheduleFilter) ([]models.ClassSession, *models.Pagination, models.ScheduleWindow, error) {
	filter.ListFilter = s.NormalizeFilter(filter.ListFilter)
	if err := s.validator.Struct(filter); err != nil {
		return nil, nil, models.ScheduleWindow{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid schedule parameters")
	}

	day := s.now()
	if date := strings.TrimSpace(filter.Date); date != "" {
		parsed, err := time.Parse(models.ScheduleDateLayout, date)
		if err != nil {
			return nil, nil, models.ScheduleWindow{}, appErrors.Clone(appErrors.ErrValidation, "date must use the YYYY-MM-DD format")
		}
		day = parsed
	}
	window := models.NewScheduleWindow(filter.View, day)

	c := s.schedule
	c.load = func(ctx context.Context) ([]models.ClassSession, error) {
		sessions, err := s.repo.Schedule(ctx)
		if err != nil {
			return nil, err
		}
		return query.Select(sessions, query.Predicate(window.Contains), ""), nil
	}

	sessions, pagination, err := listCollection(ctx, s, c, filter.ListFilter)
	if err != nil {
		return nil, nil, window, err
	}
	return sessions, pagination, window, nil
}

// ListTransactions returns a page of campus card movements.
func (s *CatalogService) ListTransactions(ctx context.Context, filter models.ListFilter) ([]models.Transaction, *models.Pagination, error) {
	return listCollection(ctx, s, s.transactions, filter)
}

// WalletBalance returns the campus card balance.
func (s *CatalogService) WalletBalance(ctx context.Context) (*models.WalletBalance, error) {
	balance, err := s.repo.WalletBalance(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load wallet")
	}
	return &balance, nil
}

// FeeSummary totals the fee statement by status. Outstanding is what is still
// owed, pending plus overdue; scholarships are reported separately.
func (s *CatalogService) FeeSummary(ctx context.Context) (*models.FeeSummary, error) {
	fees, err := s.repo.Fees(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load fees")
	}
	scholarships, err := s.repo.Scholarships(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load scholarships")
	}

	summary := &models.FeeSummary{}
	for _, fee := range fees {
		summary.Total += fee.Amount
		switch fee.Status {
		case models.FeeStatusPaid:
			summary.Paid += fee.Amount
		case models.FeeStatusPending:
			summary.Pending += fee.Amount
		case models.FeeStatusOverdue:
			summary.Overdue += fee.Amount
		}
	}
	for _, sch := range scholarships {
		if sch.Status == models.ScholarshipStatusActive {
			summary.Scholarship += sch.Amount
		}
	}
	summary.Outstanding = summary.Pending + summary.Overdue
	return summary, nil
}
