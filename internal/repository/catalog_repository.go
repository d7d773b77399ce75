package repository

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"sync"

	"go.uber.org/zap"

	"github.com/noah-isme/campus-hub-api/internal/models"
	"github.com/noah-isme/campus-hub-api/pkg/academic"
)

//go:embed seed/*.json
var seedFiles embed.FS

// EmbeddedSeed exposes the bundled sample catalogs rooted at the seed directory.
func EmbeddedSeed() fs.FS {
	sub, err := fs.Sub(seedFiles, "seed")
	if err != nil {
		panic(err)
	}
	return sub
}

// seedCatalogs lists every seed file with a check that it decodes into its catalog type.
var seedCatalogs = []struct {
	file  string
	check func([]byte) error
}{
	{"emails.json", check[[]models.Email]},
	{"notes.json", check[[]models.Note]},
	{"clubs.json", check[[]models.Club]},
	{"placements.json", check[[]models.Placement]},
	{"notices.json", check[[]models.Notice]},
	{"locations.json", check[[]models.Location]},
	{"students.json", check[[]models.Student]},
	{"projects.json", check[[]models.Project]},
	{"assignments.json", check[[]models.Assignment]},
	{"meetings.json", check[[]models.Meeting]},
	{"fees.json", check[[]models.FeeItem]},
	{"scholarships.json", check[[]models.Scholarship]},
	{"semesters.json", check[[]academic.SemesterResult]},
	{"attendance.json", check[models.AttendanceBook]},
	{"schedule.json", check[[]models.ClassSession]},
	{"wallet.json", check[models.Wallet]},
}

// CatalogRepository serves the read-only hub catalogs backed by seed files.
// The raw documents are kept and decoded on every call, so each caller owns
// its result down to nested slices.
type CatalogRepository struct {
	fsys   fs.FS
	logger *zap.Logger

	mu  sync.RWMutex
	raw map[string][]byte
}

// NewCatalogRepository loads every catalog from the provided file system.
// A nil fsys falls back to the embedded seed files.
func NewCatalogRepository(fsys fs.FS, logger *zap.Logger) (*CatalogRepository, error) {
	if fsys == nil {
		fsys = EmbeddedSeed()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &CatalogRepository{fsys: fsys, logger: logger}
	if _, err := r.Reload(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload re-reads every seed file and swaps them in together. The previous
// documents stay in place when any file is missing or malformed. The boolean
// reports whether any document changed.
func (r *CatalogRepository) Reload(ctx context.Context) (bool, error) {
	next := make(map[string][]byte, len(seedCatalogs))
	for _, catalog := range seedCatalogs {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		raw, err := fs.ReadFile(r.fsys, catalog.file)
		if err != nil {
			return false, fmt.Errorf("read seed %s: %w", catalog.file, err)
		}
		if err := catalog.check(raw); err != nil {
			return false, fmt.Errorf("decode seed %s: %w", catalog.file, err)
		}
		next[catalog.file] = raw
	}

	r.mu.Lock()
	changed := !sameDocuments(r.raw, next)
	r.raw = next
	r.mu.Unlock()

	if changed {
		r.logger.Info("catalogs loaded", zap.Int("files", len(next)))
	}
	return changed, nil
}

func sameDocuments(a, b map[string][]byte) bool {
	if len(a) != len(b) {
		return false
	}
	for name, raw := range a {
		if !bytes.Equal(raw, b[name]) {
			return false
		}
	}
	return true
}

func check[T any](raw []byte) error {
	var v T
	return json.Unmarshal(raw, &v)
}

func decodeCatalog[T any](r *CatalogRepository, name string) (T, error) {
	var v T
	r.mu.RLock()
	raw := r.raw[name]
	r.mu.RUnlock()
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("decode seed %s: %w", name, err)
	}
	return v, nil
}

// Emails returns the inbox.
func (r *CatalogRepository) Emails(context.Context) ([]models.Email, error) {
	return decodeCatalog[[]models.Email](r, "emails.json")
}

// Notes returns every note across subjects.
func (r *CatalogRepository) Notes(context.Context) ([]models.Note, error) {
	return decodeCatalog[[]models.Note](r, "notes.json")
}

// Clubs returns the club directory.
func (r *CatalogRepository) Clubs(context.Context) ([]models.Club, error) {
	return decodeCatalog[[]models.Club](r, "clubs.json")
}

// Placements returns tracked applications.
func (r *CatalogRepository) Placements(context.Context) ([]models.Placement, error) {
	return decodeCatalog[[]models.Placement](r, "placements.json")
}

// Notices returns campus announcements.
func (r *CatalogRepository) Notices(context.Context) ([]models.Notice, error) {
	return decodeCatalog[[]models.Notice](r, "notices.json")
}

// Locations returns campus map points.
func (r *CatalogRepository) Locations(context.Context) ([]models.Location, error) {
	return decodeCatalog[[]models.Location](r, "locations.json")
}

// Students returns collaborator profiles.
func (r *CatalogRepository) Students(context.Context) ([]models.Student, error) {
	return decodeCatalog[[]models.Student](r, "students.json")
}

// Projects returns open collaboration projects.
func (r *CatalogRepository) Projects(context.Context) ([]models.Project, error) {
	return decodeCatalog[[]models.Project](r, "projects.json")
}

// Assignments returns active and completed coursework.
func (r *CatalogRepository) Assignments(context.Context) ([]models.Assignment, error) {
	return decodeCatalog[[]models.Assignment](r, "assignments.json")
}

// Meetings returns upcoming and pending meetings.
func (r *CatalogRepository) Meetings(context.Context) ([]models.Meeting, error) {
	return decodeCatalog[[]models.Meeting](r, "meetings.json")
}

// Fees returns the semester fee statement.
func (r *CatalogRepository) Fees(context.Context) ([]models.FeeItem, error) {
	return decodeCatalog[[]models.FeeItem](r, "fees.json")
}

// Scholarships returns awards on the account.
func (r *CatalogRepository) Scholarships(context.Context) ([]models.Scholarship, error) {
	return decodeCatalog[[]models.Scholarship](r, "scholarships.json")
}

// Semesters returns semester results in semester order.
func (r *CatalogRepository) Semesters(context.Context) ([]academic.SemesterResult, error) {
	return decodeCatalog[[]academic.SemesterResult](r, "semesters.json")
}

// AttendanceOverview returns the attendance totals across every course.
func (r *CatalogRepository) AttendanceOverview(context.Context) (models.AttendanceOverview, error) {
	book, err := decodeCatalog[models.AttendanceBook](r, "attendance.json")
	return book.Overall, err
}

// AttendanceSubjects returns per-course attendance.
func (r *CatalogRepository) AttendanceSubjects(context.Context) ([]models.SubjectAttendance, error) {
	book, err := decodeCatalog[models.AttendanceBook](r, "attendance.json")
	return book.Subjects, err
}

// AttendanceRecords returns recently marked classes, newest first.
func (r *CatalogRepository) AttendanceRecords(context.Context) ([]models.AttendanceRecord, error) {
	book, err := decodeCatalog[models.AttendanceBook](r, "attendance.json")
	return book.Recent, err
}

// Schedule returns every timetabled class session.
func (r *CatalogRepository) Schedule(context.Context) ([]models.ClassSession, error) {
	return decodeCatalog[[]models.ClassSession](r, "schedule.json")
}

// WalletBalance returns the campus card balance.
func (r *CatalogRepository) WalletBalance(context.Context) (models.WalletBalance, error) {
	wallet, err := decodeCatalog[models.Wallet](r, "wallet.json")
	return wallet.Balance, err
}

// Transactions returns campus card movements, newest first.
func (r *CatalogRepository) Transactions(context.Context) ([]models.Transaction, error) {
	wallet, err := decodeCatalog[models.Wallet](r, "wallet.json")
	return wallet.Transactions, err
}
