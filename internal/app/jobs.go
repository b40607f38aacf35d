package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/robfig/cron/v3"
	"github.com/shamisthub/storefront/internal/domain"
	"go.uber.org/zap"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func (a *Application) initJob() {
	loc, _ := time.LoadLocation(a.appConfig.System.Location)
	a.sched = cron.New(cron.WithLocation(loc), cron.WithParser(cronParser))

	var err error
	_, err = a.sched.AddFunc("@daily", func() {
		a.SchedCatalogSnapshotTask()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	_, err = a.sched.AddFunc("@weekly", func() {
		a.SchedSnapshotPruneTask()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	a.sched.Start()
}

// catalogSnapshotRow is the CSV shape of one catalog line.
type catalogSnapshotRow struct {
	ID        int64   `csv:"id"`
	Name      string  `csv:"name"`
	Price     float64 `csv:"price"`
	Category  string  `csv:"category"`
	Images    string  `csv:"images"`
	UpdatedAt string  `csv:"updated_at"`
}

// SchedCatalogSnapshotTask writes a dated CSV copy of the catalog under
// the workdir, a cheap restore point for a store run by one operator.
func (a *Application) SchedCatalogSnapshotTask() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	var products []domain.Product
	if err := a.gormDB.Order("created_at DESC").Find(&products).Error; err != nil {
		zap.S().Errorf("catalog snapshot query failed: %s", err.Error())
		return
	}

	rows := make([]catalogSnapshotRow, 0, len(products))
	for _, p := range products {
		images, _ := json.MarshalToString([]string(p.Images))
		rows = append(rows, catalogSnapshotRow{
			ID:        p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Category:  p.Category,
			Images:    images,
			UpdatedAt: p.UpdatedAt.Format(time.RFC3339),
		})
	}

	path := filepath.Join(a.appConfig.System.Workdir, "snapshots",
		fmt.Sprintf("catalog-%s.csv", time.Now().Format("20060102")))
	file, err := os.Create(path)
	if err != nil {
		zap.S().Errorf("catalog snapshot create failed: %s", err.Error())
		return
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		zap.S().Errorf("catalog snapshot write failed: %s", err.Error())
		return
	}
	zap.S().Infof("catalog snapshot written: %s (%d products)", path, len(rows))
}

// SchedSnapshotPruneTask drops snapshot files older than 90 days.
func (a *Application) SchedSnapshotPruneTask() {
	dir := filepath.Join(a.appConfig.System.Workdir, "snapshots")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	cutoff := time.Now().Add(-90 * 24 * time.Hour)
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil || info.IsDir() {
			continue
		}
		if info.ModTime().Before(cutoff) {
			_ = os.Remove(filepath.Join(dir, entry.Name()))
		}
	}
}
