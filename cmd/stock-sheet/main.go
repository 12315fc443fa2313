// Command stock-sheet loads a warehouse's full stock list as a correction
// baseline and writes it to an xlsx workbook for a paper count.
package main

import (
	"flag"
	"os"
	"time"

	"go-warehouse-ops/internal/config"
	"go-warehouse-ops/internal/correction"
	"go-warehouse-ops/internal/export"
	"go-warehouse-ops/internal/model"
	"go-warehouse-ops/internal/repository"
	"go-warehouse-ops/pkg/apiclient"
	"go-warehouse-ops/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logger.GetLogger()

	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Info("Warning: .env file not found, relying on system env")
	}
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	warehouse := flag.String("warehouse", cfg.DefaultWarehouseCode, "warehouse code")
	date := flag.String("date", time.Now().Format("2006-01-02"), "stock date (YYYY-MM-DD)")
	out := flag.String("out", "", "output file (default koreksi-stok-<warehouse>-<date>.xlsx)")
	flag.Parse()

	// 2. Login ke upstream
	api := apiclient.New(cfg.UpstreamBaseURL, cfg.UpstreamTimeout)
	token := os.Getenv("UPSTREAM_TOKEN")
	if token == "" {
		sess, err := repository.NewAuthRepo(api).Login(os.Getenv("UPSTREAM_USERNAME"), os.Getenv("UPSTREAM_PASSWORD"))
		if err != nil {
			log.WithError(err).Fatal("upstream login failed")
		}
		token = sess.Token
	}

	// 3. Load stock
	records, err := repository.NewStockRepo(api).FindAll(token, *warehouse, *date)
	if err != nil {
		log.WithError(err).Fatal("failed to load stock")
	}
	res, err := correction.MergeFromWarehouse(records, nil)
	if err != nil {
		log.WithError(err).Fatal("no stock to export")
	}

	// 4. Write workbook
	header := model.CorrectionHeader{
		Number:        "AUTO",
		Date:          *date,
		WarehouseCode: *warehouse,
		TypeCode:      model.CorrectionReceive,
	}
	for _, w := range mustWarehouses(api, token) {
		if w.Code == *warehouse {
			header.WarehouseName = w.Name
		}
	}

	buf, err := export.CorrectionWorkbook(header, res.Lines)
	if err != nil {
		log.WithError(err).Fatal("failed to render workbook")
	}
	path := *out
	if path == "" {
		path = export.FileName(header)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		log.WithError(err).Fatal("failed to write workbook")
	}

	log.WithFields(logrus.Fields{
		"file":       path,
		"lines":      res.Imported,
		"blank":      res.SkippedBlank,
		"duplicates": len(res.SkippedDuplicates),
	}).Info("✅ stock sheet written")
}

// mustWarehouses is best effort: a failed lookup only leaves the name empty.
func mustWarehouses(api *apiclient.Client, token string) []model.Warehouse {
	list, err := repository.NewWarehouseRepo(api).FindAll(token)
	if err != nil {
		logger.GetLogger().WithError(err).Warn("warehouse lookup failed")
		return nil
	}
	return list
}
