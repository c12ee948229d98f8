// import-media loads per-item JSON files produced by the site's build
// scripts into the media table. One-shot, safe to re-run: existing
// rows are updated in place.
//
// Usage:
//
//	import-media -dir database/
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"runup-api/internal/data/entity"
	"runup-api/internal/data/repository"
	"runup-api/pkg/database"
	"runup-api/pkg/utils"

	"go.uber.org/zap"
)

// mediaFile matches the build scripts' per-item JSON. Genres appear
// either as an array or as the legacy ", "-joined string.
type mediaFile struct {
	ID                 string          `json:"id"`
	Type               string          `json:"type"`
	Title              string          `json:"title"`
	ReleaseDate        string          `json:"releaseDate"`
	PosterImage        *string         `json:"posterImage"`
	Overview           *string         `json:"overview"`
	Genres             json.RawMessage `json:"genres"`
	Score              *float64        `json:"score"`
	Backdrops          []string        `json:"backdrops"`
	Screenshots        []string        `json:"screenshots"`
	SystemRequirements *string         `json:"systemRequirements"`
}

func parseGenres(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}

	var joined string
	if err := json.Unmarshal(raw, &joined); err == nil && joined != "" {
		return strings.Split(joined, ", ")
	}

	return nil
}

func toEntity(f *mediaFile) (*entity.MediaItem, error) {
	item := &entity.MediaItem{
		ID:                 f.ID,
		Type:               entity.MediaType(f.Type),
		Title:              f.Title,
		PosterImage:        f.PosterImage,
		Overview:           f.Overview,
		Genres:             parseGenres(f.Genres),
		Score:              f.Score,
		Backdrops:          f.Backdrops,
		Screenshots:        f.Screenshots,
		SystemRequirements: f.SystemRequirements,
	}

	if f.ReleaseDate != "" {
		release, err := time.Parse("2006-01-02", f.ReleaseDate)
		if err != nil {
			return nil, fmt.Errorf("parse release date %q: %w", f.ReleaseDate, err)
		}
		item.ReleaseDate = &release
	}

	return item, nil
}

func main() {
	dir := flag.String("dir", "database", "directory of per-item JSON files")
	flag.Parse()

	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.InitDB(config.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := database.RunMigrations(ctx, db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	logger := zap.NewNop()
	media := repository.NewMediaRepository(db, logger)

	entries, err := os.ReadDir(*dir)
	if err != nil {
		log.Fatalf("Failed to read directory %s: %v", *dir, err)
	}

	imported := 0
	skipped := 0
	for _, entry := range entries {
		name := entry.Name()
		// Item detail files are named <type>-<id>.json; index files
		// carry no dash and are skipped.
		if entry.IsDir() || !strings.HasSuffix(name, ".json") || !strings.Contains(name, "-") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(*dir, name))
		if err != nil {
			log.Printf("Skipping %s: %v", name, err)
			skipped++
			continue
		}

		var f mediaFile
		if err := json.Unmarshal(data, &f); err != nil {
			log.Printf("Skipping %s: parse error: %v", name, err)
			skipped++
			continue
		}

		if f.ID == "" || f.Type == "" || f.Title == "" {
			log.Printf("Skipping %s: missing id, type or title", name)
			skipped++
			continue
		}

		item, err := toEntity(&f)
		if err != nil {
			log.Printf("Skipping %s: %v", name, err)
			skipped++
			continue
		}

		if err := media.Upsert(ctx, item); err != nil {
			log.Fatalf("Failed to import %s: %v", name, err)
		}
		imported++
	}

	log.Printf("Imported %d media items (%d skipped)", imported, skipped)
}
