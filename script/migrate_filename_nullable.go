package main

import (
	"context"
	"flag"
	"log"

	"github.com/Nacni/portfolio-media/biz/dal/model"
	"github.com/Nacni/portfolio-media/pkg/config"
	"github.com/Nacni/portfolio-media/pkg/database"
	"gorm.io/gorm"
)

// Data migration: convert legacy empty-string filename values to NULL.
// Older rows were written with filename = "" to satisfy a NOT NULL
// constraint that has since been dropped; the empty string was never a
// real filename, only a workaround.
// Usage: go run script/migrate_filename_nullable.go [-dry-run]

var dryRun = flag.Bool("dry-run", false, "report affected rows without writing")

func main() {
	flag.Parse()

	log.Println("========== filename nullability migration ==========")

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}

	if err := migrateFilenames(context.Background(), db, *dryRun); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	log.Println("========== migration complete ==========")
}

func migrateFilenames(ctx context.Context, db *gorm.DB, dryRun bool) error {
	var legacy []model.Media
	if err := db.WithContext(ctx).
		Where("filename = ?", "").
		Find(&legacy).Error; err != nil {
		return err
	}

	if len(legacy) == 0 {
		log.Println("no legacy empty-string filenames found")
		return nil
	}

	log.Printf("found %d rows carrying the empty-string workaround", len(legacy))
	if dryRun {
		for _, m := range legacy {
			log.Printf("would update %s (%s)", m.ID, m.URL)
		}
		return nil
	}

	for i, m := range legacy {
		log.Printf("[%d/%d] clearing filename for %s", i+1, len(legacy), m.ID)
		if err := db.WithContext(ctx).
			Model(&model.Media{}).
			Where("id = ?", m.ID).
			Update("filename", nil).Error; err != nil {
			return err
		}
	}

	log.Printf("updated %d rows", len(legacy))
	return nil
}
