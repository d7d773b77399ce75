package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-hub-api/internal/middleware"
	"github.com/noah-isme/campus-hub-api/internal/models"
	appErrors "github.com/noah-isme/campus-hub-api/pkg/errors"
	"github.com/noah-isme/campus-hub-api/pkg/response"
)

type catalogService interface {
	ListEmails(ctx context.Context, filter models.ListFilter) ([]models.Email, *models.Pagination, error)
	ListNotes(ctx context.Context, filter models.ListFilter) ([]models.Note, *models.Pagination, error)
	ListClubs(ctx context.Context, filter models.ListFilter) ([]models.Club, *models.Pagination, error)
	ListPlacements(ctx context.Context, filter models.ListFilter) ([]models.Placement, *models.Pagination, error)
	ListNotices(ctx context.Context, filter models.ListFilter) ([]models.Notice, *models.Pagination, error)
	ListLocations(ctx context.Context, filter models.ListFilter) ([]models.Location, *models.Pagination, error)
	ListStudents(ctx context.Context, filter models.ListFilter) ([]models.Student, *models.Pagination, error)
	ListProjects(ctx context.Context, filter models.ListFilter) ([]models.Project, *models.Pagination, error)
	ListAssignments(ctx context.Context, filter models.ListFilter) ([]models.Assignment, *models.Pagination, error)
	ListMeetings(ctx context.Context, filter models.ListFilter) ([]models.Meeting, *models.Pagination, error)
	ListFees(ctx context.Context, filter models.ListFilter) ([]models.FeeItem, *models.Pagination, error)
	ListScholarships(ctx context.Context, filter models.ListFilter) ([]models.Scholarship, *models.Pagination, error)
	FeeSummary(ctx context.Context) (*models.FeeSummary, error)
	ListAttendanceSubjects(ctx context.Context, filter models.ListFilter) ([]models.SubjectAttendance, *models.Pagination, error)
	ListAttendanceRecords(ctx context.Context, filter models.ListFilter) ([]models.AttendanceRecord, *models.Pagination, error)
	AttendanceOverview(ctx context.Context) (*models.AttendanceOverview, error)
	ListSchedule(ctx context.Context, filter models.ScheduleFilter) ([]models.ClassSession, *models.Pagination, models.ScheduleWindow, error)
	ListTransactions(ctx context.Context, filter models.ListFilter) ([]models.Transaction, *models.Pagination, error)
	WalletBalance(ctx context.Context) (*models.WalletBalance, error)
}

// CatalogHandler exposes the hub catalogs as filtered, paged listings.
type CatalogHandler struct {
	service catalogService
}

// NewCatalogHandler constructs a catalog handler.
func NewCatalogHandler(svc catalogService) *CatalogHandler {
	return &CatalogHandler{service: svc}
}

// parseListFilter reads tab, search, page and limit. Missing paging values
// stay zero so the service applies its defaults.
func parseListFilter(c *gin.Context) (models.ListFilter, error) {
	filter := models.ListFilter{
		Tab:    strings.TrimSpace(c.Query("tab")),
		Search: c.Query("search"),
	}
	if raw := strings.TrimSpace(c.Query("page")); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return filter, appErrors.Clone(appErrors.ErrValidation, "page must be an integer")
		}
		filter.Page = page
	}
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return filter, appErrors.Clone(appErrors.ErrValidation, "limit must be an integer")
		}
		filter.PageSize = limit
	}
	return filter, nil
}

func serveList[T any](c *gin.Context, list func(context.Context, models.ListFilter) ([]T, *models.Pagination, error)) {
	filter, err := parseListFilter(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	records, pagination, err := list(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	setFilterMeta(c, filter)
	response.JSON(c, http.StatusOK, records, pagination, middleware.ExtractMeta(c))
}

func setFilterMeta(c *gin.Context, filter models.ListFilter) {
	tab := filter.Tab
	if tab == "" {
		tab = models.TabAll
	}
	middleware.SetMeta(c, "tab", tab)
	middleware.SetMeta(c, "search", filter.Search)
}

// Emails godoc
// @Summary List inbox emails
// @Tags Catalogs
// @Produce json
// @Param tab query string false "all, starred, important, unread or a category"
// @Param search query string false "Matches sender, subject and preview"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /emails [get]
func (h *CatalogHandler) Emails(c *gin.Context) {
	serveList(c, h.service.ListEmails)
}

// Notes godoc
// @Summary List notes
// @Tags Catalogs
// @Produce json
// @Param tab query string false "all or a subject"
// @Param search query string false "Matches title, preview and tags"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /notes [get]
func (h *CatalogHandler) Notes(c *gin.Context) {
	serveList(c, h.service.ListNotes)
}

// Clubs godoc
// @Summary List clubs
// @Tags Catalogs
// @Produce json
// @Param tab query string false "all, my-clubs or a category"
// @Param search query string false "Matches name, description and category"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /clubs [get]
func (h *CatalogHandler) Clubs(c *gin.Context) {
	serveList(c, h.service.ListClubs)
}

// Placements godoc
// @Summary List placement applications
// @Tags Catalogs
// @Produce json
// @Param tab query string false "all, starred, interviewing, offered or a domain"
// @Param search query string false "Matches company, role, domain and location"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /placements [get]
func (h *CatalogHandler) Placements(c *gin.Context) {
	serveList(c, h.service.ListPlacements)
}

// Notices godoc
// @Summary List notices
// @Tags Catalogs
// @Produce json
// @Param tab query string false "all, urgent or a category"
// @Param search query string false "Matches title, description, category and department"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /notices [get]
func (h *CatalogHandler) Notices(c *gin.Context) {
	serveList(c, h.service.ListNotices)
}

// Locations godoc
// @Summary List campus locations
// @Tags Catalogs
// @Produce json
// @Param tab query string false "all, accessible or a location type"
// @Param search query string false "Matches name, description and services"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /locations [get]
func (h *CatalogHandler) Locations(c *gin.Context) {
	serveList(c, h.service.ListLocations)
}

// Students godoc
// @Summary List collaborators
// @Tags Collaboration
// @Produce json
// @Param tab query string false "all, online or a year"
// @Param search query string false "Matches name, skills and roles sought"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /collaboration/students [get]
func (h *CatalogHandler) Students(c *gin.Context) {
	serveList(c, h.service.ListStudents)
}

// Projects godoc
// @Summary List collaboration projects
// @Tags Collaboration
// @Produce json
// @Param tab query string false "all, remote or a status"
// @Param search query string false "Matches title and required skills"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /collaboration/projects [get]
func (h *CatalogHandler) Projects(c *gin.Context) {
	serveList(c, h.service.ListProjects)
}

// Assignments godoc
// @Summary List assignments
// @Tags Catalogs
// @Produce json
// @Param tab query string false "all, high-priority, active or completed"
// @Param search query string false "Matches title and course"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /assignments [get]
func (h *CatalogHandler) Assignments(c *gin.Context) {
	serveList(c, h.service.ListAssignments)
}

// Meetings godoc
// @Summary List meetings
// @Tags Catalogs
// @Produce json
// @Param tab query string false "all, virtual, in-person, upcoming or pending"
// @Param search query string false "Matches title, location and attendees"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /meetings [get]
func (h *CatalogHandler) Meetings(c *gin.Context) {
	serveList(c, h.service.ListMeetings)
}

// Fees godoc
// @Summary List fee items
// @Tags Fees
// @Produce json
// @Param tab query string false "all or a payment status"
// @Param search query string false "Matches name, category and description"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /fees [get]
func (h *CatalogHandler) Fees(c *gin.Context) {
	serveList(c, h.service.ListFees)
}

// Scholarships godoc
// @Summary List scholarships
// @Tags Fees
// @Produce json
// @Param tab query string false "all or a scholarship status"
// @Param search query string false "Matches name and type"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /fees/scholarships [get]
func (h *CatalogHandler) Scholarships(c *gin.Context) {
	serveList(c, h.service.ListScholarships)
}

// FeeSummary godoc
// @Summary Fee totals by status
// @Tags Fees
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /fees/summary [get]
func (h *CatalogHandler) FeeSummary(c *gin.Context) {
	summary, err := h.service.FeeSummary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summary, nil)
}

// AttendanceOverview godoc
// @Summary Attendance totals
// @Tags Attendance
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /attendance [get]
func (h *CatalogHandler) AttendanceOverview(c *gin.Context) {
	overview, err := h.service.AttendanceOverview(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, overview, nil)
}

// AttendanceSubjects godoc
// @Summary List attendance by course
// @Tags Attendance
// @Produce json
// @Param tab query string false "all, good, warning, critical or a course code"
// @Param search query string false "Matches course name and code"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /attendance/subjects [get]
func (h *CatalogHandler) AttendanceSubjects(c *gin.Context) {
	serveList(c, h.service.ListAttendanceSubjects)
}

// AttendanceRecords godoc
// @Summary List recently marked classes
// @Tags Attendance
// @Produce json
// @Param tab query string false "all or a status"
// @Param search query string false "Matches subject, teacher and class"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /attendance/records [get]
func (h *CatalogHandler) AttendanceRecords(c *gin.Context) {
	serveList(c, h.service.ListAttendanceRecords)
}

// Schedule godoc
// @Summary List class sessions in a day or week
// @Tags Schedule
// @Produce json
// @Param view query string false "daily or weekly (default)"
// @Param date query string false "Anchor date as YYYY-MM-DD, defaults to today"
// @Param tab query string false "all, online or a session type"
// @Param search query string false "Matches subject, code, professor, room and building"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /schedule [get]
func (h *CatalogHandler) Schedule(c *gin.Context) {
	list, err := parseListFilter(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	filter := models.ScheduleFilter{
		ListFilter: list,
		View:       strings.ToLower(strings.TrimSpace(c.Query("view"))),
		Date:       strings.TrimSpace(c.Query("date")),
	}

	sessions, pagination, window, err := h.service.ListSchedule(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	setFilterMeta(c, list)
	middleware.SetMeta(c, "view", window.View)
	middleware.SetMeta(c, "window_start", window.Start)
	middleware.SetMeta(c, "window_end", window.End)
	response.JSON(c, http.StatusOK, sessions, pagination, middleware.ExtractMeta(c))
}

// WalletBalance godoc
// @Summary Campus card balance
// @Tags Wallet
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /wallet [get]
func (h *CatalogHandler) WalletBalance(c *gin.Context) {
	balance, err := h.service.WalletBalance(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, balance, nil)
}

// Transactions godoc
// @Summary List campus card transactions
// @Tags Wallet
// @Produce json
// @Param tab query string false "all, purchases, refunds, deposits or a category"
// @Param search query string false "Matches description, location and category"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /wallet/transactions [get]
func (h *CatalogHandler) Transactions(c *gin.Context) {
	serveList(c, h.service.ListTransactions)
}
