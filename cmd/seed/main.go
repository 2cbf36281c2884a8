// cmd/seed/main.go
package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func newDBURLFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "db-url",
		Usage:    "Database connection string",
		Required: true,
		EnvVars:  []string{"DATABASE_URL"},
	}
}

func newFileFlag(usage string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "file",
		Usage:    usage,
		Required: true,
	}
}

func openDB(c *cli.Context) (*sql.DB, error) {
	db, err := sql.Open("pgx", c.String("db-url"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env file: %v", err)
	}

	app := &cli.App{
		Name:  "seed",
		Usage: "Seed the database with demo data",
		Commands: []*cli.Command{
			{
				Name:   "products",
				Usage:  "Load products from a CSV file",
				Flags:  []cli.Flag{newDBURLFlag(), newFileFlag("CSV file with sku,name,category,base_price,currency,image_url")},
				Action: seedProducts,
			},
			{
				Name:   "inventory",
				Usage:  "Load inventory levels from a CSV file",
				Flags:  []cli.Flag{newDBURLFlag(), newFileFlag("CSV file with sku,warehouse,current_stock,reorder_point,max_stock")},
				Action: seedInventory,
			},
			{
				Name:   "schedule",
				Usage:  "Load production schedule entries from a CSV file",
				Flags:  []cli.Flag{newDBURLFlag(), newFileFlag("CSV file with sku,scheduled_date,status,production_line,planned_quantity,priority")},
				Action: seedSchedule,
			},
			{
				Name:   "distributors",
				Usage:  "Load distributors from a CSV file",
				Flags:  []cli.Flag{newDBURLFlag(), newFileFlag("CSV file with name,country,city,latitude,longitude,phone,email")},
				Action: seedDistributors,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
