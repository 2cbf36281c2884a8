// cmd/seed/seeders.go
package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/cornexhq/cornex-connect/internal/cache"
	"github.com/cornexhq/cornex-connect/internal/config"
	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
)

// readCSV opens a CSV file and returns its rows minus the header row.
func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	var rows [][]string
	header := true
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		if header {
			header = false
			continue
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func atofOrZero(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

func seedProducts(c *cli.Context) error {
	db, err := openDB(c)
	if err != nil {
		return err
	}
	defer db.Close()

	rows, err := readCSV(c.String("file"))
	if err != nil {
		return err
	}

	query := `
		INSERT INTO products (id, sku, name, category, base_price, currency, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
		ON CONFLICT (sku) DO UPDATE SET
			name = EXCLUDED.name,
			category = EXCLUDED.category,
			base_price = EXCLUDED.base_price,
			currency = EXCLUDED.currency,
			image_url = EXCLUDED.image_url,
			updated_at = now()
	`

	count := 0
	for _, row := range rows {
		if len(row) < 5 {
			log.Printf("skipping short row: %v", row)
			continue
		}
		imageURL := ""
		if len(row) > 5 {
			imageURL = row[5]
		}
		if _, err := db.Exec(query, uuid.NewString(), row[0], row[1], row[2], row[3], row[4], imageURL); err != nil {
			return fmt.Errorf("failed to insert product %s: %w", row[0], err)
		}
		count++
	}

	log.Printf("seeded %d products", count)
	return nil
}

func seedInventory(c *cli.Context) error {
	db, err := openDB(c)
	if err != nil {
		return err
	}
	defer db.Close()

	rows, err := readCSV(c.String("file"))
	if err != nil {
		return err
	}

	query := `
		INSERT INTO inventory (product_id, warehouse, current_stock, reorder_point, max_stock, updated_at)
		SELECT p.id, $2, $3, $4, $5, now()
		FROM products p
		WHERE p.sku = $1
		ON CONFLICT (product_id, warehouse) DO UPDATE SET
			current_stock = EXCLUDED.current_stock,
			reorder_point = EXCLUDED.reorder_point,
			max_stock = EXCLUDED.max_stock,
			updated_at = now()
	`

	count := 0
	for _, row := range rows {
		if len(row) < 5 {
			log.Printf("skipping short row: %v", row)
			continue
		}
		result, err := db.Exec(query, row[0], row[1],
			atoiOrZero(row[2]), atoiOrZero(row[3]), atoiOrZero(row[4]))
		if err != nil {
			return fmt.Errorf("failed to insert inventory for %s: %w", row[0], err)
		}
		if affected, _ := result.RowsAffected(); affected == 0 {
			log.Printf("no product with sku %s, skipping", row[0])
			continue
		}
		count++
	}

	log.Printf("seeded %d inventory rows", count)

	// stock levels changed, stale ranked recommendations must not be served
	invalidateRecommendations()

	return nil
}

func invalidateRecommendations() {
	recCache, err := cache.NewRecommendationCache(config.Load().Cache)
	if err != nil {
		log.Printf("warning: recommendation cache unreachable, skipping invalidation: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := recCache.InvalidateAll(ctx); err != nil {
		log.Printf("warning: failed to invalidate cached recommendations: %v", err)
		return
	}

	log.Printf("invalidated cached recommendations")
}

func seedSchedule(c *cli.Context) error {
	db, err := openDB(c)
	if err != nil {
		return err
	}
	defer db.Close()

	rows, err := readCSV(c.String("file"))
	if err != nil {
		return err
	}

	query := `
		INSERT INTO schedule_entries (
			id, product_id, scheduled_date, status, production_line,
			planned_quantity, actual_quantity, priority, notes, created_at, updated_at
		)
		SELECT $1, p.id, $3, $4, $5, $6, 0, $7, '', now(), now()
		FROM products p
		WHERE p.sku = $2
	`

	count := 0
	for _, row := range rows {
		if len(row) < 6 {
			log.Printf("skipping short row: %v", row)
			continue
		}

		scheduled, err := time.Parse("2006-01-02", row[1])
		if err != nil {
			log.Printf("skipping row with bad date %q: %v", row[1], err)
			continue
		}

		result, err := db.Exec(query, uuid.NewString(), row[0], scheduled,
			row[2], row[3], atoiOrZero(row[4]), row[5])
		if err != nil {
			return fmt.Errorf("failed to insert schedule entry for %s: %w", row[0], err)
		}
		if affected, _ := result.RowsAffected(); affected == 0 {
			log.Printf("no product with sku %s, skipping", row[0])
			continue
		}
		count++
	}

	log.Printf("seeded %d schedule entries", count)
	return nil
}

func seedDistributors(c *cli.Context) error {
	db, err := openDB(c)
	if err != nil {
		return err
	}
	defer db.Close()

	rows, err := readCSV(c.String("file"))
	if err != nil {
		return err
	}

	query := `
		INSERT INTO distributors (id, name, country, city, latitude, longitude, phone, email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
	`

	count := 0
	for _, row := range rows {
		if len(row) < 7 {
			log.Printf("skipping short row: %v", row)
			continue
		}
		if _, err := db.Exec(query, uuid.NewString(), row[0], row[1], row[2],
			atofOrZero(row[3]), atofOrZero(row[4]), row[5], row[6]); err != nil {
			return fmt.Errorf("failed to insert distributor %s: %w", row[0], err)
		}
		count++
	}

	log.Printf("seeded %d distributors", count)
	return nil
}
