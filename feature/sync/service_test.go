package sync

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"sheetsync/core/history"
	"sheetsync/core/lock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func testConfig(path string) Config {
	return Config{
		Workbook:       path,
		Sheets:         "Caves,Forest,Swamp",
		StateColumn:    "B",
		NameColumn:     "C",
		FirstDataRow:   2,
		LockTTLSeconds: 60,
	}
}

// writeFixture creates a workbook with one origin and two target sheets
// and saves it under dir.
func writeFixture(t *testing.T, dir string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for _, sheet := range []string{"Caves", "Forest", "Swamp"} {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, "B1", "Tracked"))
		require.NoError(t, f.SetCellValue(sheet, "C1", "Name"))
	}
	require.NoError(t, f.DeleteSheet("Sheet1"))

	// Origin: Caves.
	require.NoError(t, f.SetCellBool("Caves", "B2", true))
	require.NoError(t, f.SetCellValue("Caves", "C2", "Goblin"))
	require.NoError(t, f.SetCellBool("Caves", "B3", false))
	require.NoError(t, f.SetCellValue("Caves", "C3", "Orc"))
	require.NoError(t, f.SetCellBool("Caves", "B4", true))
	require.NoError(t, f.SetCellValue("Caves", "C4", "Goblin King"))

	// Forest: row 2 flips, row 3 matches, row 4 matches by normalized
	// name, row 5 is formula-protected, row 6 is unknown to the origin.
	require.NoError(t, f.SetCellBool("Forest", "B2", false))
	require.NoError(t, f.SetCellValue("Forest", "C2", "Goblin"))
	require.NoError(t, f.SetCellBool("Forest", "B3", false))
	require.NoError(t, f.SetCellValue("Forest", "C3", "Orc"))
	require.NoError(t, f.SetCellBool("Forest", "B4", false))
	require.NoError(t, f.SetCellValue("Forest", "C4", " Goblin\nKing "))
	require.NoError(t, f.SetCellFormula("Forest", "B5", "COUNTIF(B2:B4,TRUE)>1"))
	require.NoError(t, f.SetCellValue("Forest", "C5", "Goblin"))
	require.NoError(t, f.SetCellBool("Forest", "B6", true))
	require.NoError(t, f.SetCellValue("Forest", "C6", "Basilisk"))

	// Swamp: already in agreement with Caves.
	require.NoError(t, f.SetCellBool("Swamp", "B2", true))
	require.NoError(t, f.SetCellValue("Swamp", "C2", "Goblin"))
	require.NoError(t, f.SetCellBool("Swamp", "B3", false))
	require.NoError(t, f.SetCellValue("Swamp", "C3", "Orc"))

	path := filepath.Join(dir, "tracker.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func newTestService(cfg Config, hist *history.Store) *Service {
	return NewService(cfg, zap.NewNop(), lock.NewMemoryLocker(), hist)
}

func TestSyncWorkbook(t *testing.T) {
	path := writeFixture(t, t.TempDir())
	svc := newTestService(testConfig(path), nil)

	report, err := svc.SyncWorkbook(context.Background(), path, "Caves", Options{})
	require.NoError(t, err)

	assert.Equal(t, "Caves", report.OriginSheet)
	require.Len(t, report.Targets, 2)

	forest := report.Targets[0]
	assert.Equal(t, "Forest", forest.Sheet)
	assert.Equal(t, 2, forest.Updates, "rows 2 and 4 must flip")
	assert.Equal(t, 2, forest.Batches, "rows 2 and 4 are not contiguous")

	swamp := report.Targets[1]
	assert.Equal(t, "Swamp", swamp.Sheet)
	assert.Equal(t, 0, swamp.Updates)

	// Reopen and verify the writes landed.
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	b2, _ := f.GetCellValue("Forest", "B2")
	assert.Equal(t, "TRUE", b2)
	b3, _ := f.GetCellValue("Forest", "B3")
	assert.Equal(t, "FALSE", b3)
	b4, _ := f.GetCellValue("Forest", "B4")
	assert.Equal(t, "TRUE", b4)

	// The formula cell survived even though its entry mismatched.
	formula, err := f.GetCellFormula("Forest", "B5")
	require.NoError(t, err)
	assert.NotEmpty(t, formula)

	// The unknown entry was left alone.
	b6, _ := f.GetCellValue("Forest", "B6")
	assert.Equal(t, "TRUE", b6)
}

func TestSyncWorkbook_Idempotent(t *testing.T) {
	path := writeFixture(t, t.TempDir())
	svc := newTestService(testConfig(path), nil)
	ctx := context.Background()

	first, err := svc.SyncWorkbook(ctx, path, "Caves", Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, first.TotalUpdates)

	second, err := svc.SyncWorkbook(ctx, path, "Caves", Options{})
	require.NoError(t, err)
	assert.Equal(t, 0, second.TotalUpdates, "second pass must find nothing to do")
}

func TestSyncWorkbook_DryRun(t *testing.T) {
	path := writeFixture(t, t.TempDir())
	svc := newTestService(testConfig(path), nil)

	report, err := svc.SyncWorkbook(context.Background(), path, "Caves", Options{DryRun: true})
	require.NoError(t, err)
	assert.True(t, report.DryRun)
	assert.Equal(t, 2, report.TotalUpdates)

	// Nothing was written.
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	b2, _ := f.GetCellValue("Forest", "B2")
	assert.Equal(t, "FALSE", b2)
}

func TestSyncWorkbook_LockContention(t *testing.T) {
	path := writeFixture(t, t.TempDir())
	locker := lock.NewMemoryLocker()
	svc := NewService(testConfig(path), zap.NewNop(), locker, nil)
	ctx := context.Background()

	// Simulate another holder.
	ok, err := locker.Acquire(ctx, path, time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = svc.SyncWorkbook(ctx, path, "Caves", Options{})
	assert.ErrorIs(t, err, ErrSyncInProgress)

	// After release the sync goes through.
	require.NoError(t, locker.Release(ctx, path))
	_, err = svc.SyncWorkbook(ctx, path, "Caves", Options{})
	assert.NoError(t, err)
}

func TestSyncWorkbook_UnknownOrigin(t *testing.T) {
	path := writeFixture(t, t.TempDir())
	svc := newTestService(testConfig(path), nil)

	_, err := svc.SyncWorkbook(context.Background(), path, "Dungeon", Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not in the configured sheet set")
}

func TestSyncWorkbook_RecordsHistory(t *testing.T) {
	path := writeFixture(t, t.TempDir())

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	store, err := history.NewStore(db)
	require.NoError(t, err)

	svc := newTestService(testConfig(path), store)
	ctx := context.Background()

	_, err = svc.SyncWorkbook(ctx, path, "Caves", Options{})
	require.NoError(t, err)

	runs, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, path, runs[0].Workbook)
	assert.Equal(t, "Caves", runs[0].OriginSheet)
	assert.Equal(t, 2, runs[0].Updates)
}

func TestConfig_SheetList(t *testing.T) {
	cfg := Config{Sheets: " Caves, Forest ,,Swamp "}
	assert.Equal(t, []string{"Caves", "Forest", "Swamp"}, cfg.SheetList())

	assert.Empty(t, Config{}.SheetList())
}
