// totals-backfill recomputes total_price and actual_total_price for every
// payment item from its unit price and quantities. Run after restoring data
// from imports that carried client-computed totals.
//
// Usage (from backend directory):
//   DB_USER=... DB_PASSWORD=... DB_HOST=... DB_PORT=... DB_NAME=... go run ./cmd/totals-backfill
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/smoothestguy/commandx_backend/config"
	"github.com/smoothestguy/commandx_backend/models"
)

func main() {
	projectId := flag.Int("project-id", 0, "Optional: backfill only one project. 0 backfills all projects.")
	dryRun := flag.Bool("dry-run", false, "Report mismatches without writing")
	flag.Parse()

	_ = godotenv.Load()

	ctx := context.Background()
	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		fmt.Fprintln(os.Stderr, "database not initialized (config.GetDB returned nil). Set DB_* env vars.")
		os.Exit(1)
	}

	query := db.WithContext(ctx).Model(&models.PaymentItem{})
	if *projectId > 0 {
		query = query.Where("project_id = ?", *projectId)
	}

	var items []models.PaymentItem
	if err := query.Order("id").Find(&items).Error; err != nil {
		fmt.Fprintf(os.Stderr, "failed to list payment items: %v\n", err)
		os.Exit(1)
	}

	fixed := 0
	for _, item := range items {
		total, actualTotal := models.ComputeItemTotals(item.UnitPrice, item.OriginalQuantity, item.ActualQuantity)
		if total.Equal(item.TotalPrice) && actualTotal.Equal(item.ActualTotalPrice) {
			continue
		}
		fmt.Printf("item %d: total %s -> %s, actual total %s -> %s\n",
			item.ID, item.TotalPrice, total, item.ActualTotalPrice, actualTotal)
		if *dryRun {
			fixed++
			continue
		}
		if err := db.WithContext(ctx).Model(&models.PaymentItem{}).Where("id = ?", item.ID).Updates(map[string]any{
			"total_price":        total,
			"actual_total_price": actualTotal,
		}).Error; err != nil {
			fmt.Fprintf(os.Stderr, "item %d: update failed: %v\n", item.ID, err)
			continue
		}
		fixed++
	}

	if *dryRun {
		fmt.Printf("dry run: %d of %d items need fixing\n", fixed, len(items))
		return
	}
	fmt.Printf("recomputed totals for %d of %d items\n", fixed, len(items))
}
