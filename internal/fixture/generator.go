package fixture

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/okian/piste/internal/domain/model"
)

// Default generator configuration constants.
const (
	defaultEntriesPerDiscipline = 12
	defaultSeed                 = 42
	defaultSeasonSpan           = 3 // calendar years covered, ending this year

	dnfChance      = 0.05
	windChance     = 0.6
	illegalWindMax = 3.5
)

// profile describes how to synthesize marks for one discipline.
type profile struct {
	discipline string
	render     func(r *rand.Rand) string
	windy      bool // sprints and horizontal jumps carry wind readings
}

var defaultProfiles = []profile{
	{
		discipline: "100m",
		windy:      true,
		render: func(r *rand.Rand) string {
			centis := 1050 + r.Intn(150) // 10.50 .. 11.99
			return fmt.Sprintf("%d''%02d", centis/100, centis%100)
		},
	},
	{
		discipline: "800m",
		render: func(r *rand.Rand) string {
			centis := 11000 + r.Intn(1500) // 1'50.00 .. 2'05.00
			return fmt.Sprintf("%d'%02d''%02d", centis/6000, (centis%6000)/100, centis%100)
		},
	},
	{
		discipline: "Saut en longueur",
		windy:      true,
		render: func(r *rand.Rand) string {
			cm := 620 + r.Intn(160) // 6.20m .. 7.80m
			return fmt.Sprintf("%d,%02dm", cm/100, cm%100)
		},
	},
	{
		discipline: "Lancer du poids",
		render: func(r *rand.Rand) string {
			cm := 1200 + r.Intn(500)
			return fmt.Sprintf("%d.%02dm", cm/100, cm%100)
		},
	},
	{
		discipline: "Décathlon",
		render: func(r *rand.Rand) string {
			return fmt.Sprintf("%d pts", 6500+r.Intn(1800))
		},
	},
}

// Generator synthesizes plausible federation-feed entries across several
// seasons. Seeded for reproducible demo data.
type Generator struct {
	profiles   []profile
	perCount   int
	seasonSpan int
	rng        *rand.Rand
	now        func() time.Time
}

// GeneratorOption applies a configuration option to the Generator.
type GeneratorOption func(*Generator)

// WithEntriesPerDiscipline sets how many entries to generate per discipline.
func WithEntriesPerDiscipline(n int) GeneratorOption {
	return func(g *Generator) {
		if n > 0 {
			g.perCount = n
		}
	}
}

// WithSeed sets the random seed for reproducible output.
func WithSeed(seed int64) GeneratorOption {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed)) //nolint:gosec // deterministic seed for reproducible demo data
	}
}

// WithSeasonSpan sets how many calendar years the entries cover.
func WithSeasonSpan(years int) GeneratorOption {
	return func(g *Generator) {
		if years > 0 {
			g.seasonSpan = years
		}
	}
}

// NewGenerator creates a generator with configuration options.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{
		profiles:   defaultProfiles,
		perCount:   defaultEntriesPerDiscipline,
		seasonSpan: defaultSeasonSpan,
		rng:        rand.New(rand.NewSource(defaultSeed)), //nolint:gosec // deterministic seed for reproducible demo data
		now:        time.Now,
	}

	// Apply all options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Entries synthesizes the demo entries.
func (g *Generator) Entries(ctx context.Context) []model.RawPerformanceEntry {
	currentYear := g.now().Year()
	out := make([]model.RawPerformanceEntry, 0, len(g.profiles)*g.perCount)

	for _, p := range g.profiles {
		for i := 0; i < g.perCount; i++ {
			year := currentYear - g.rng.Intn(g.seasonSpan)
			month := time.Month(3 + g.rng.Intn(8)) // outdoor season, March..October
			day := 1 + g.rng.Intn(28)

			e := model.RawPerformanceEntry{
				EntryID:    uuid.New().String(),
				Discipline: p.discipline,
				DateToken:  fmt.Sprintf("%04d-%02d-%02d", year, int(month), day),
				Meeting:    fmt.Sprintf("Meeting %d", 1+g.rng.Intn(40)),
				Place:      fmt.Sprintf("%d", 1+g.rng.Intn(12)),
			}

			if g.rng.Float64() < dnfChance {
				e.RawPerformance = "DNF"
			} else {
				e.RawPerformance = p.render(g.rng)
				if p.windy && g.rng.Float64() < windChance {
					w := -1.0 + g.rng.Float64()*illegalWindMax
					e.Wind = fmt.Sprintf("%+.1f", w)
				}
			}

			out = append(out, e)
		}
	}

	return out
}
