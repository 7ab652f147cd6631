package services

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/Avis17/karunya-draw-tracker/internal/models"
	"github.com/Avis17/karunya-draw-tracker/internal/policy"
	"github.com/Avis17/karunya-draw-tracker/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// resultNumberPattern matches exactly six ASCII digits. Leading zeros are
// significant, so the value stays a string end to end.
var resultNumberPattern = regexp.MustCompile(`^[0-9]{6}$`)

// ResultService is the gateway to the result store plus the assembly of the
// viewer read model on top of the access policy.
type ResultService interface {
	// GetBoard builds the viewer read model for one calendar day. Undisclosed
	// digits are never copied into the board, even when the fetched rows
	// contain them.
	GetBoard(ctx context.Context, date time.Time) (*models.Board, error)
	// GetHomeBoard returns the landing page boards: today and yesterday,
	// evaluated against a single clock sample.
	GetHomeBoard(ctx context.Context) (*models.HomeBoard, error)
	// GetResultsForDate returns the raw rows for a day. Admin view: the
	// access policy does not apply.
	GetResultsForDate(ctx context.Context, date time.Time) ([]*models.LotteryResult, error)
	UpsertResult(ctx context.Context, req *models.UpsertResultRequest, createdBy string) (*models.LotteryResult, error)
	DeleteResult(ctx context.Context, id string) error
}

type resultService struct {
	resultRepo repositories.ResultRepository
	slots      []policy.Slot
	loc        *time.Location
	now        func() time.Time
}

// NewResultService creates a ResultService over the given repository. The
// slot set and timezone come from configuration.
func NewResultService(resultRepo repositories.ResultRepository, slots []policy.Slot, loc *time.Location) ResultService {
	return NewResultServiceWithClock(resultRepo, slots, loc, time.Now)
}

// NewResultServiceWithClock is NewResultService with an injectable clock.
func NewResultServiceWithClock(resultRepo repositories.ResultRepository, slots []policy.Slot, loc *time.Location, now func() time.Time) ResultService {
	return &resultService{
		resultRepo: resultRepo,
		slots:      slots,
		loc:        loc,
		now:        now,
	}
}

// dateKey normalizes an instant to the store's canonical YYYY-MM-DD form,
// always as the local calendar day of the board timezone. Using the local
// day uniformly keeps a fetch near midnight from returning the wrong day's
// rows in timezones ahead of UTC.
func (s *resultService) dateKey(t time.Time) string {
	return t.In(s.loc).Format("2006-01-02")
}

func (s *resultService) GetBoard(ctx context.Context, date time.Time) (*models.Board, error) {
	return s.boardFor(ctx, s.now().In(s.loc), date)
}

func (s *resultService) GetHomeBoard(ctx context.Context) (*models.HomeBoard, error) {
	now := s.now().In(s.loc)

	today, err := s.boardFor(ctx, now, now)
	if err != nil {
		return nil, err
	}
	yesterday, err := s.boardFor(ctx, now, now.AddDate(0, 0, -1))
	if err != nil {
		return nil, err
	}
	return &models.HomeBoard{Today: today, Yesterday: yesterday}, nil
}

// boardFor evaluates every configured slot against one clock sample, so the
// whole board sees a consistent active/inactive boundary.
func (s *resultService) boardFor(ctx context.Context, now, date time.Time) (*models.Board, error) {
	dateStr := s.dateKey(date)
	day, err := time.ParseInLocation("2006-01-02", dateStr, s.loc)
	if err != nil {
		return nil, models.NewValidationError("invalid date %q", dateStr)
	}

	rows, err := s.resultRepo.FindByDate(ctx, dateStr)
	if err != nil {
		return nil, &models.StoreError{Op: "read", Err: err}
	}

	byLabel := make(map[string]*models.LotteryResult, len(rows))
	for _, row := range rows {
		slot, err := policy.ParseSlot(row.SlotTime)
		if err != nil {
			// Malformed stored slot times cannot be matched to the schedule.
			continue
		}
		byLabel[slot.Label()] = row
	}

	board := &models.Board{
		Date:        dateStr,
		GeneratedAt: now,
		Slots:       make([]models.BoardSlot, 0, len(s.slots)),
	}
	for _, slot := range s.slots {
		entry := models.BoardSlot{
			SlotTime: slot.Label(),
			Active:   policy.IsSlotActive(now, day, slot),
			State:    models.SlotStateHidden,
		}
		if policy.ShouldDiscloseResult(now, day, slot) {
			if row, ok := byLabel[slot.Label()]; ok {
				entry.State = models.SlotStatePublished
				entry.ResultNumber = row.ResultNumber
			} else {
				entry.State = models.SlotStatePending
			}
		}
		board.Slots = append(board.Slots, entry)
	}
	return board, nil
}

func (s *resultService) GetResultsForDate(ctx context.Context, date time.Time) ([]*models.LotteryResult, error) {
	rows, err := s.resultRepo.FindByDate(ctx, s.dateKey(date))
	if err != nil {
		return nil, &models.StoreError{Op: "read", Err: err}
	}
	return rows, nil
}

func (s *resultService) UpsertResult(ctx context.Context, req *models.UpsertResultRequest, createdBy string) (*models.LotteryResult, error) {
	if !resultNumberPattern.MatchString(req.ResultNumber) {
		return nil, models.NewValidationError("result number must be exactly 6 digits")
	}

	day, err := time.ParseInLocation("2006-01-02", req.DrawDate, s.loc)
	if err != nil {
		return nil, models.NewValidationError("invalid draw date %q (expected YYYY-MM-DD)", req.DrawDate)
	}

	slot, err := policy.ParseSlot(req.SlotTime)
	if err != nil {
		return nil, models.NewValidationError("invalid slot time %q (expected HH:MM)", req.SlotTime)
	}
	if !s.isScheduledSlot(slot) {
		return nil, models.NewValidationError("slot %s is not in the draw schedule", slot.Label())
	}

	// Admins may publish a result for a slot whose draw time has not arrived
	// yet. The viewer policy keeps it hidden until then; allowing the early
	// write is a product decision, not an oversight.
	result := &models.LotteryResult{
		DrawDate:     s.dateKey(day),
		SlotTime:     slot.Label(),
		ResultNumber: req.ResultNumber,
		CreatedBy:    createdBy,
	}
	stored, err := s.resultRepo.Upsert(ctx, result)
	if err != nil {
		return nil, &models.StoreError{Op: "write", Err: err}
	}
	return stored, nil
}

func (s *resultService) DeleteResult(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.NewValidationError("invalid result id %q", id)
	}
	if err := s.resultRepo.Delete(ctx, oid); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return err
		}
		return &models.StoreError{Op: "delete", Err: err}
	}
	return nil
}

func (s *resultService) isScheduledSlot(slot policy.Slot) bool {
	for _, scheduled := range s.slots {
		if scheduled == slot {
			return true
		}
	}
	return false
}
