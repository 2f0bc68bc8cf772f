// Command seed-results generates plausible federation entries and posts
// them to a running piste instance.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/okian/piste/internal/domain/model"
	"github.com/okian/piste/internal/fixture"
	"github.com/okian/piste/pkg/logger"
)

const requestTimeout = 30 * time.Second

func main() {
	url := flag.String("url", "http://localhost:9080", "base URL of the service")
	perDiscipline := flag.Int("entries", 12, "entries to generate per discipline")
	seed := flag.Int64("seed", 42, "random seed for reproducible data")
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx := context.Background()
	log := logger.Get().Named("seed")

	gen := fixture.NewGenerator(
		fixture.WithEntriesPerDiscipline(*perDiscipline),
		fixture.WithSeed(*seed),
	)
	entries := gen.Entries(ctx)
	log.Info(ctx, "generated entries", logger.Int("count", len(entries)))

	if err := post(ctx, *url+"/results", entries); err != nil {
		log.Error(ctx, "seeding failed", logger.Error(err))
		os.Exit(1)
	}
	log.Info(ctx, "seeding complete", logger.String("url", *url))
}

func post(ctx context.Context, url string, entries []model.RawPerformanceEntry) error {
	payload := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		payload = append(payload, map[string]any{
			"entry_id":    e.EntryID,
			"discipline":  e.Discipline,
			"date":        e.DateToken,
			"year_hint":   e.YearHint,
			"performance": e.RawPerformance,
			"wind":        e.Wind,
			"place":       e.Place,
			"meeting":     e.Meeting,
			"notes":       e.Notes,
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal entries: %w", err)
	}

	reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("post entries: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	return nil
}
