// seed_plans.go: standalone script to create the plan catalog table and load plans into it.
//
// Usage:
//
//	go run scripts/seed_plans.go -db postgres://localhost/dravita -plans plans.json
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/goccy/go-json"

	"github.com/MikeSquared-Agency/Dravita/internal/store"
)

func main() {
	dbURL := flag.String("db", os.Getenv("DRAVITA_DATABASE_URL"), "Postgres connection URL")
	plansPath := flag.String("plans", "", "JSON file of plans (default: built-in catalog)")
	dryRun := flag.Bool("dry-run", false, "print plans without writing")
	flag.Parse()

	plans := store.DefaultPlans
	if *plansPath != "" {
		data, err := os.ReadFile(*plansPath)
		if err != nil {
			log.Fatalf("read plans: %v", err)
		}
		plans = nil
		if err := json.Unmarshal(data, &plans); err != nil {
			log.Fatalf("parse plans: %v", err)
		}
	}

	log.Printf("loaded %d plans", len(plans))

	if *dryRun {
		for _, p := range plans {
			fmt.Printf("[%d] %s (category=%s, premium=%d, deductible=%d, rating=%.1f)\n",
				p.ID, p.Name, p.Category, p.MonthlyPremium, p.Deductible, p.Rating)
		}
		return
	}

	if *dbURL == "" {
		log.Fatal("no database URL: pass -db or set DRAVITA_DATABASE_URL")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := store.NewPostgresStore(ctx, *dbURL)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer db.Close()

	if err := db.EnsureSchema(ctx); err != nil {
		log.Fatalf("%v", err)
	}

	written, skipped := 0, 0
	for i := range plans {
		if err := db.UpsertPlan(ctx, &plans[i]); err != nil {
			log.Printf("skip %q: %v", plans[i].Name, err)
			skipped++
			continue
		}
		written++
	}

	log.Printf("done: %d written, %d skipped", written, skipped)
}
