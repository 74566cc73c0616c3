package service

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "courtsched/core/errors"
	"courtsched/core/params"
	blockentity "courtsched/modules/block/entity"
	"courtsched/modules/booking/dto"
	"courtsched/modules/booking/entity"
	courtdto "courtsched/modules/court/dto"
	courtentity "courtsched/modules/court/entity"
	slotentity "courtsched/modules/slotconfig/entity"
)

type fakeBookingRepo struct {
	bookings []entity.Booking
	failNext error
}

func (r *fakeBookingRepo) CreateIfFree(ctx context.Context, booking *entity.Booking) (bool, error) {
	if r.failNext != nil {
		return false, r.failNext
	}
	for _, b := range r.bookings {
		if b.CourtID != booking.CourtID || b.Date != booking.Date || b.Status != entity.StatusConfirmed {
			continue
		}
		// Half-open overlap on lexicographic HH:MM, same predicate the SQL uses.
		if b.StartTime < booking.EndTime && b.EndTime > booking.StartTime {
			return false, nil
		}
	}
	r.bookings = append(r.bookings, *booking)
	return true, nil
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id string) (*entity.Booking, error) {
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			return &r.bookings[i], nil
		}
	}
	return nil, nil
}

func (r *fakeBookingRepo) ListConfirmed(ctx context.Context, courtID, date string) ([]entity.Booking, error) {
	var out []entity.Booking
	for _, b := range r.bookings {
		if b.CourtID == courtID && b.Date == date && b.Status == entity.StatusConfirmed {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) Cancel(ctx context.Context, id string) (bool, error) {
	for i := range r.bookings {
		if r.bookings[i].ID == id && r.bookings[i].Status == entity.StatusConfirmed {
			r.bookings[i].Status = entity.StatusCancelled
			return true, nil
		}
	}
	return false, nil
}

type fakeConfigRepo struct {
	configs []slotentity.SlotConfiguration
}

func (r *fakeConfigRepo) Upsert(ctx context.Context, config *slotentity.SlotConfiguration) error {
	return nil
}

func (r *fakeConfigRepo) GetByID(ctx context.Context, id string) (*slotentity.SlotConfiguration, error) {
	return nil, nil
}

func (r *fakeConfigRepo) ListByCourt(ctx context.Context, courtID string) ([]slotentity.SlotConfiguration, error) {
	return nil, nil
}

func (r *fakeConfigRepo) ListActiveByCourtAndDay(ctx context.Context, courtID string, dayOfWeek int) ([]slotentity.SlotConfiguration, error) {
	var out []slotentity.SlotConfiguration
	for _, cfg := range r.configs {
		if cfg.CourtID == courtID && cfg.DayOfWeek == dayOfWeek && cfg.IsActive {
			out = append(out, cfg)
		}
	}
	return out, nil
}

func (r *fakeConfigRepo) SetActive(ctx context.Context, id string, active bool) error {
	return nil
}

type fakeBlockRepo struct {
	blocks []blockentity.Block
}

func (r *fakeBlockRepo) Create(ctx context.Context, block *blockentity.Block) error { return nil }

func (r *fakeBlockRepo) GetByID(ctx context.Context, id string) (*blockentity.Block, error) {
	return nil, nil
}

func (r *fakeBlockRepo) ListAll(ctx context.Context) ([]blockentity.Block, error) { return nil, nil }

func (r *fakeBlockRepo) ListPaginated(ctx context.Context, params params.QueryParams) (*blockentity.PaginatedBlockEntity, error) {
	return nil, nil
}

func (r *fakeBlockRepo) ListIntersecting(ctx context.Context, courtID string, dayStart, dayEnd time.Time) ([]blockentity.Block, error) {
	var out []blockentity.Block
	for _, b := range r.blocks {
		if b.CourtID != nil && *b.CourtID == courtID && b.Start.Before(dayEnd) && b.End.After(dayStart) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBlockRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeCourtService struct {
	courts map[string]string
}

func (s *fakeCourtService) Create(ctx context.Context, req *courtdto.CreateCourtRequest) (*courtentity.Court, *apperrors.AppError) {
	return nil, nil
}

func (s *fakeCourtService) GetByID(ctx context.Context, id string) (*courtentity.Court, *apperrors.AppError) {
	name, ok := s.courts[id]
	if !ok {
		return nil, apperrors.NewAppError(apperrors.ErrUnknownCourt, "Court not found", nil)
	}
	return &courtentity.Court{ID: id, Name: name, IsActive: true}, nil
}

func (s *fakeCourtService) List(ctx context.Context) ([]courtentity.Court, *apperrors.AppError) {
	return nil, nil
}

func (s *fakeCourtService) Exists(ctx context.Context, id string) (bool, *apperrors.AppError) {
	_, ok := s.courts[id]
	return ok, nil
}

type noopCache struct{}

func (noopCache) GetAvailability(ctx context.Context, courtID, date string) ([]byte, bool) {
	return nil, false
}
func (noopCache) SetAvailability(ctx context.Context, courtID, date string, payload []byte) {}
func (noopCache) InvalidateDay(ctx context.Context, courtID, date string)                  {}
func (noopCache) InvalidateCourt(ctx context.Context, courtID string)                      {}

// openAllDay gives a court one active configuration covering 08:00-22:00 on
// the given weekday.
func openAllDay(courtID string, dayOfWeek int) slotentity.SlotConfiguration {
	return slotentity.SlotConfiguration{
		CourtID:   courtID,
		DayOfWeek: dayOfWeek,
		StartTime: "08:00",
		EndTime:   "22:00",
		IsActive:  true,
	}
}

func newTestService(repo *fakeBookingRepo, configs *fakeConfigRepo, blocks *fakeBlockRepo) *BookingService {
	if configs == nil {
		// 2024-02-05 is a Monday (dayOfWeek 1).
		configs = &fakeConfigRepo{configs: []slotentity.SlotConfiguration{
			openAllDay("1", 1),
			openAllDay("2", 1),
		}}
	}
	if blocks == nil {
		blocks = &fakeBlockRepo{}
	}
	courts := &fakeCourtService{courts: map[string]string{
		"1": "Campo 1",
		"2": "Campo 2",
	}}
	return NewBookingService(repo, configs, blocks, courts, noopCache{})
}

func createReq(courtID, date, start, end string) *dto.CreateBookingRequest {
	return &dto.CreateBookingRequest{
		UserID:    "7b7e3a1e-3f41-4a9f-9d2e-4b6a1c2d3e4f",
		UserName:  "Mario Rossi",
		CourtID:   courtID,
		Date:      date,
		StartTime: start,
		EndTime:   end,
	}
}

func TestCreateBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := newTestService(repo, nil, nil)

	booking, appErr := svc.Create(context.Background(), createReq("2", "2024-02-05", "09:00", "10:00"))
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if booking.Status != entity.StatusConfirmed {
		t.Errorf("status = %s, want confirmed", booking.Status)
	}
	if booking.Duration != 60 {
		t.Errorf("duration = %d, want 60", booking.Duration)
	}
	if booking.CourtName != "Campo 2" {
		t.Errorf("courtName = %s, want Campo 2", booking.CourtName)
	}
}

func TestCreateBookingOverlapConflict(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := newTestService(repo, nil, nil)

	if _, appErr := svc.Create(context.Background(), createReq("2", "2024-02-05", "09:00", "10:00")); appErr != nil {
		t.Fatalf("first create failed: %v", appErr)
	}

	_, appErr := svc.Create(context.Background(), createReq("2", "2024-02-05", "09:30", "10:30"))
	if appErr == nil {
		t.Fatal("expected conflict, got none")
	}
	if appErr.Code != apperrors.ErrSlotConflict {
		t.Errorf("code = %s, want %s", appErr.Code, apperrors.ErrSlotConflict)
	}
}

func TestCreateBookingOutsideOpenTimeRejected(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := newTestService(repo, nil, nil)

	// The court opens at 08:00; nothing is bookable at 03:00.
	_, appErr := svc.Create(context.Background(), createReq("1", "2024-02-05", "03:00", "04:00"))
	if appErr == nil || appErr.Code != apperrors.ErrSlotConflict {
		t.Fatalf("expected %s outside open time, got %v", apperrors.ErrSlotConflict, appErr)
	}
	if len(repo.bookings) != 0 {
		t.Errorf("booking was persisted outside open time: %+v", repo.bookings)
	}
}

func TestCreateBookingNoConfigurationsRejected(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := newTestService(repo, &fakeConfigRepo{}, nil)

	_, appErr := svc.Create(context.Background(), createReq("1", "2024-02-05", "09:00", "10:00"))
	if appErr == nil || appErr.Code != apperrors.ErrSlotConflict {
		t.Fatalf("expected %s on court with no open intervals, got %v", apperrors.ErrSlotConflict, appErr)
	}
}

func TestCreateBookingDuringBlockRejected(t *testing.T) {
	courtID := "1"
	day := time.Date(2024, 2, 5, 0, 0, 0, 0, time.Local)
	blocks := &fakeBlockRepo{blocks: []blockentity.Block{{
		ID:      "blk-maint",
		CourtID: &courtID,
		Title:   "Manutenzione campo",
		Start:   day.Add(9 * time.Hour),
		End:     day.Add(11 * time.Hour),
	}}}
	repo := &fakeBookingRepo{}
	svc := newTestService(repo, nil, blocks)

	_, appErr := svc.Create(context.Background(), createReq("1", "2024-02-05", "09:30", "10:30"))
	if appErr == nil || appErr.Code != apperrors.ErrSlotConflict {
		t.Fatalf("expected %s during a standing block, got %v", apperrors.ErrSlotConflict, appErr)
	}

	// Outside the block the court is still bookable.
	if _, appErr := svc.Create(context.Background(), createReq("1", "2024-02-05", "11:00", "12:00")); appErr != nil {
		t.Fatalf("create after the block failed: %v", appErr)
	}
}

func TestCreateBookingAdjacentIntervalsAllowed(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := newTestService(repo, nil, nil)

	if _, appErr := svc.Create(context.Background(), createReq("2", "2024-02-05", "09:00", "10:00")); appErr != nil {
		t.Fatalf("first create failed: %v", appErr)
	}
	// [09:00, 10:00) and [10:00, 11:00) touch but do not overlap.
	if _, appErr := svc.Create(context.Background(), createReq("2", "2024-02-05", "10:00", "11:00")); appErr != nil {
		t.Fatalf("adjacent create failed: %v", appErr)
	}
}

func TestCreateBookingOtherCourtDoesNotConflict(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := newTestService(repo, nil, nil)

	if _, appErr := svc.Create(context.Background(), createReq("1", "2024-02-05", "09:00", "10:00")); appErr != nil {
		t.Fatalf("first create failed: %v", appErr)
	}
	if _, appErr := svc.Create(context.Background(), createReq("2", "2024-02-05", "09:00", "10:00")); appErr != nil {
		t.Fatalf("same interval on another court failed: %v", appErr)
	}
}

func TestCreateBookingUnknownCourt(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{}, nil, nil)

	_, appErr := svc.Create(context.Background(), createReq("99", "2024-02-05", "09:00", "10:00"))
	if appErr == nil || appErr.Code != apperrors.ErrUnknownCourt {
		t.Fatalf("expected %s, got %v", apperrors.ErrUnknownCourt, appErr)
	}
}

func TestCreateBookingInvalidInterval(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{}, nil, nil)

	_, appErr := svc.Create(context.Background(), createReq("1", "2024-02-05", "10:00", "10:00"))
	if appErr == nil || appErr.Code != apperrors.ErrInvalidInterval {
		t.Fatalf("expected %s for empty interval, got %v", apperrors.ErrInvalidInterval, appErr)
	}

	_, appErr = svc.Create(context.Background(), createReq("1", "2024-02-05", "25:00", "26:00"))
	if appErr == nil || appErr.Code != apperrors.ErrInvalidInput {
		t.Fatalf("expected %s for bad clock, got %v", apperrors.ErrInvalidInput, appErr)
	}
}

func TestCancelBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := newTestService(repo, nil, nil)

	booking, appErr := svc.Create(context.Background(), createReq("1", "2024-02-05", "09:00", "10:00"))
	if appErr != nil {
		t.Fatalf("create failed: %v", appErr)
	}

	cancelled, appErr := svc.Cancel(context.Background(), booking.ID)
	if appErr != nil {
		t.Fatalf("cancel failed: %v", appErr)
	}
	if cancelled.Status != entity.StatusCancelled {
		t.Errorf("status = %s, want cancelled", cancelled.Status)
	}

	// Second cancel: no confirmed booking remains with this id.
	if _, appErr := svc.Cancel(context.Background(), booking.ID); appErr == nil || appErr.Code != apperrors.ErrNotFound {
		t.Fatalf("expected %s on repeated cancel, got %v", apperrors.ErrNotFound, appErr)
	}

	// The freed interval is immediately rebookable.
	if _, appErr := svc.Create(context.Background(), createReq("1", "2024-02-05", "09:00", "10:00")); appErr != nil {
		t.Fatalf("rebook after cancel failed: %v", appErr)
	}
}

func TestCreateBookingStorageFailure(t *testing.T) {
	repo := &fakeBookingRepo{failNext: errors.New("connection reset")}
	svc := newTestService(repo, nil, nil)

	_, appErr := svc.Create(context.Background(), createReq("1", "2024-02-05", "09:00", "10:00"))
	if appErr == nil || appErr.Code != apperrors.ErrStorageFailure {
		t.Fatalf("expected %s, got %v", apperrors.ErrStorageFailure, appErr)
	}
}
