package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"courtsched/core/params"
	blockentity "courtsched/modules/block/entity"
	slotentity "courtsched/modules/slotconfig/entity"
)

// ---- fakes ----

type fakeBlockRepo struct {
	mu      sync.Mutex
	blocks  map[string]blockentity.Block
	listErr error
	delErr  map[string]error
}

func newFakeBlockRepo(blocks ...blockentity.Block) *fakeBlockRepo {
	r := &fakeBlockRepo{blocks: map[string]blockentity.Block{}, delErr: map[string]error{}}
	for _, b := range blocks {
		r.blocks[b.ID] = b
	}
	return r
}

func (r *fakeBlockRepo) Create(ctx context.Context, b *blockentity.Block) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.blocks[b.ID] = *b
	return nil
}

func (r *fakeBlockRepo) GetByID(ctx context.Context, id string) (*blockentity.Block, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.blocks[id]; ok {
		return &b, nil
	}
	return nil, nil
}

func (r *fakeBlockRepo) ListAll(ctx context.Context) ([]blockentity.Block, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]blockentity.Block, 0, len(r.blocks))
	for _, b := range r.blocks {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeBlockRepo) ListPaginated(ctx context.Context, p params.QueryParams) (*blockentity.PaginatedBlockEntity, error) {
	return nil, nil
}

func (r *fakeBlockRepo) ListIntersecting(ctx context.Context, courtID string, dayStart, dayEnd time.Time) ([]blockentity.Block, error) {
	return nil, nil
}

func (r *fakeBlockRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.delErr[id]; err != nil {
		return err
	}
	delete(r.blocks, id)
	return nil
}

type fakeConfigRepo struct {
	mu        sync.Mutex
	configs   map[string]slotentity.SlotConfiguration
	upsertErr map[string]error
}

func newFakeConfigRepo() *fakeConfigRepo {
	return &fakeConfigRepo{configs: map[string]slotentity.SlotConfiguration{}, upsertErr: map[string]error{}}
}

func (r *fakeConfigRepo) Upsert(ctx context.Context, c *slotentity.SlotConfiguration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.upsertErr[c.ID]; err != nil {
		return err
	}
	r.configs[c.ID] = *c
	return nil
}

func (r *fakeConfigRepo) GetByID(ctx context.Context, id string) (*slotentity.SlotConfiguration, error) {
	return nil, nil
}

func (r *fakeConfigRepo) ListByCourt(ctx context.Context, courtID string) ([]slotentity.SlotConfiguration, error) {
	return nil, nil
}

func (r *fakeConfigRepo) ListActiveByCourtAndDay(ctx context.Context, courtID string, dayOfWeek int) ([]slotentity.SlotConfiguration, error) {
	return nil, nil
}

func (r *fakeConfigRepo) SetActive(ctx context.Context, id string, active bool) error {
	return nil
}

type noopCache struct{}

func (noopCache) GetAvailability(ctx context.Context, courtID, date string) ([]byte, bool) {
	return nil, false
}
func (noopCache) SetAvailability(ctx context.Context, courtID, date string, payload []byte) {}
func (noopCache) InvalidateDay(ctx context.Context, courtID, date string)                   {}
func (noopCache) InvalidateCourt(ctx context.Context, courtID string)                       {}

// ---- helpers ----

func legacyBlock(id, title string, courtID *string, start, end time.Time) blockentity.Block {
	return blockentity.Block{ID: id, CourtID: courtID, Title: title, Start: start, End: end}
}

func newService(blocks *fakeBlockRepo, configs *fakeConfigRepo) *MigrationService {
	return NewMigrationService(blocks, configs, noopCache{}, nil, "1", 4)
}

var mondayAt16 = time.Date(2024, 1, 1, 16, 0, 0, 0, time.UTC)

// ---- tests ----

func TestRunBlockMigrationExample(t *testing.T) {
	courtOne := "1"
	blocks := newFakeBlockRepo(
		legacyBlock("blk-1", "Scuola Tennis", &courtOne, mondayAt16, mondayAt16.Add(time.Hour)),
	)
	configs := newFakeConfigRepo()

	report, appErr := newService(blocks, configs).RunBlockMigration(context.Background())
	if appErr != nil {
		t.Fatalf("RunBlockMigration: %v", appErr)
	}
	if report.ProcessedCount != 1 || report.MigratedCount != 1 || report.ErrorCount != 0 {
		t.Fatalf("report = %+v, want 1 processed, 1 migrated", report)
	}

	cfg, ok := configs.configs["1_1_1600"]
	if !ok {
		t.Fatalf("expected configuration at key 1_1_1600, have %v", configs.configs)
	}
	if cfg.CourtID != "1" || cfg.DayOfWeek != 1 || cfg.StartTime != "16:00" || cfg.EndTime != "17:00" {
		t.Errorf("config = %+v", cfg)
	}
	if cfg.SlotDuration != 60 || cfg.ActivityType != slotentity.ActivitySchool || !cfg.IsActive {
		t.Errorf("config = %+v", cfg)
	}
	if cfg.MigratedFrom == nil || *cfg.MigratedFrom != "blk-1" {
		t.Errorf("migratedFrom = %v, want blk-1", cfg.MigratedFrom)
	}
	if cfg.OriginalDate == nil || !cfg.OriginalDate.Equal(mondayAt16) {
		t.Errorf("originalDate = %v, want %v", cfg.OriginalDate, mondayAt16)
	}
	if cfg.Notes == nil || *cfg.Notes != "Scuola Tennis" {
		t.Errorf("notes = %v, want block title", cfg.Notes)
	}

	if len(blocks.blocks) != 0 {
		t.Errorf("source block must be deleted, still have %v", blocks.blocks)
	}
}

func TestRunBlockMigrationSkipsNonCandidates(t *testing.T) {
	courtOne := "1"
	blocks := newFakeBlockRepo(
		legacyBlock("blk-1", "Torneo sociale", &courtOne, mondayAt16, mondayAt16.Add(2*time.Hour)),
	)
	configs := newFakeConfigRepo()

	report, appErr := newService(blocks, configs).RunBlockMigration(context.Background())
	if appErr != nil {
		t.Fatalf("RunBlockMigration: %v", appErr)
	}
	if report.ProcessedCount != 0 {
		t.Errorf("processed = %d, want 0", report.ProcessedCount)
	}
	if len(blocks.blocks) != 1 {
		t.Errorf("one-off exclusion must survive, have %v", blocks.blocks)
	}
	if len(configs.configs) != 0 {
		t.Errorf("no configuration expected, have %v", configs.configs)
	}
}

func TestRunBlockMigrationDefaultCourtPolicy(t *testing.T) {
	blocks := newFakeBlockRepo(
		legacyBlock("blk-1", "Corso adulti", nil, mondayAt16, mondayAt16.Add(time.Hour)),
	)
	configs := newFakeConfigRepo()

	if _, appErr := newService(blocks, configs).RunBlockMigration(context.Background()); appErr != nil {
		t.Fatalf("RunBlockMigration: %v", appErr)
	}
	cfg, ok := configs.configs["1_1_1600"]
	if !ok || cfg.CourtID != "1" {
		t.Errorf("block without courtId must land on default court 1, have %v", configs.configs)
	}
}

func TestRunBlockMigrationIsolatesBadBlocks(t *testing.T) {
	courtOne := "1"
	blocks := newFakeBlockRepo(
		// end before start
		legacyBlock("blk-bad", "Lezione privata", &courtOne, mondayAt16, mondayAt16.Add(-time.Hour)),
		legacyBlock("blk-good", "Scuola Tennis", &courtOne, mondayAt16, mondayAt16.Add(time.Hour)),
	)
	configs := newFakeConfigRepo()

	report, appErr := newService(blocks, configs).RunBlockMigration(context.Background())
	if appErr != nil {
		t.Fatalf("one bad block must not abort the batch: %v", appErr)
	}
	if report.ProcessedCount != 2 || report.MigratedCount != 1 || report.ErrorCount != 1 {
		t.Fatalf("report = %+v", report)
	}
	if len(report.PerBlockErrors) != 1 || report.PerBlockErrors[0].BlockID != "blk-bad" {
		t.Errorf("perBlockErrors = %+v", report.PerBlockErrors)
	}
	if report.PerBlockErrors[0].Stage != "convert" {
		t.Errorf("stage = %q, want convert", report.PerBlockErrors[0].Stage)
	}
	if _, stillThere := blocks.blocks["blk-bad"]; !stillThere {
		t.Error("failed block must stay in place for retry")
	}
}

func TestRunBlockMigrationUpsertFailureKeepsBlock(t *testing.T) {
	courtOne := "1"
	blocks := newFakeBlockRepo(
		legacyBlock("blk-1", "Scuola Tennis", &courtOne, mondayAt16, mondayAt16.Add(time.Hour)),
	)
	configs := newFakeConfigRepo()
	configs.upsertErr["1_1_1600"] = errors.New("connection reset")

	report, appErr := newService(blocks, configs).RunBlockMigration(context.Background())
	if appErr != nil {
		t.Fatalf("RunBlockMigration: %v", appErr)
	}
	if report.ErrorCount != 1 || report.PerBlockErrors[0].Stage != "upsert" {
		t.Fatalf("report = %+v", report)
	}
	if _, stillThere := blocks.blocks["blk-1"]; !stillThere {
		t.Error("block must never be deleted before its configuration is written")
	}
}

func TestRunBlockMigrationDeleteFailureLeavesCheckpoint(t *testing.T) {
	courtOne := "1"
	blocks := newFakeBlockRepo(
		legacyBlock("blk-1", "Scuola Tennis", &courtOne, mondayAt16, mondayAt16.Add(time.Hour)),
	)
	blocks.delErr["blk-1"] = errors.New("connection reset")
	configs := newFakeConfigRepo()

	report, appErr := newService(blocks, configs).RunBlockMigration(context.Background())
	if appErr != nil {
		t.Fatalf("RunBlockMigration: %v", appErr)
	}
	if report.ErrorCount != 1 || report.PerBlockErrors[0].Stage != "delete" {
		t.Fatalf("report = %+v", report)
	}
	if _, ok := configs.configs["1_1_1600"]; !ok {
		t.Error("configuration checkpoint must survive a failed delete")
	}

	// Retry with the failure cleared: the surviving block collapses onto
	// the same key without duplicating.
	delete(blocks.delErr, "blk-1")
	report2, appErr := newService(blocks, configs).RunBlockMigration(context.Background())
	if appErr != nil {
		t.Fatalf("retry: %v", appErr)
	}
	if report2.MigratedCount != 1 || len(configs.configs) != 1 {
		t.Errorf("retry report = %+v, configs = %v", report2, configs.configs)
	}
}

func TestRunBlockMigrationIdempotent(t *testing.T) {
	courtOne := "1"
	courtTwo := "2"
	blocks := newFakeBlockRepo(
		legacyBlock("blk-1", "Scuola Tennis", &courtOne, mondayAt16, mondayAt16.Add(time.Hour)),
		// Second weekly occurrence of the same slot: same court, weekday,
		// start time.
		legacyBlock("blk-2", "Scuola Tennis", &courtOne, mondayAt16.AddDate(0, 0, 7), mondayAt16.AddDate(0, 0, 7).Add(time.Hour)),
		legacyBlock("blk-3", "Allenamento agonisti", &courtTwo, mondayAt16.AddDate(0, 0, 2), mondayAt16.AddDate(0, 0, 2).Add(90*time.Minute)),
	)
	configs := newFakeConfigRepo()
	svc := newService(blocks, configs)

	report, appErr := svc.RunBlockMigration(context.Background())
	if appErr != nil {
		t.Fatalf("first run: %v", appErr)
	}
	if report.MigratedCount != 3 {
		t.Fatalf("first run report = %+v", report)
	}
	if len(configs.configs) != 2 {
		t.Fatalf("duplicate weekly occurrences must collapse: %v", configs.configs)
	}

	before := map[string]slotentity.SlotConfiguration{}
	for k, v := range configs.configs {
		before[k] = v
	}

	report2, appErr := svc.RunBlockMigration(context.Background())
	if appErr != nil {
		t.Fatalf("second run: %v", appErr)
	}
	if report2.ProcessedCount != 0 || report2.MigratedCount != 0 || report2.ErrorCount != 0 {
		t.Errorf("second run must be a no-op, report = %+v", report2)
	}
	if len(configs.configs) != len(before) {
		t.Errorf("configuration set changed on re-run")
	}
	for k, v := range before {
		if configs.configs[k] != v {
			t.Errorf("configuration %s changed on re-run", k)
		}
	}
}

func TestRunBlockMigrationStructuralFailure(t *testing.T) {
	blocks := newFakeBlockRepo()
	blocks.listErr = errors.New("database down")

	_, appErr := newService(blocks, newFakeConfigRepo()).RunBlockMigration(context.Background())
	if appErr == nil {
		t.Fatal("failing to read the block collection must abort the run")
	}
}
