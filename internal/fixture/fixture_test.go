package fixture_test

import (
	"context"
	"testing"

	"github.com/okian/piste/internal/domain/metric"
	"github.com/okian/piste/internal/domain/model"
	"github.com/okian/piste/internal/domain/parse"
	"github.com/okian/piste/internal/fixture"
	. "github.com/smartystreets/goconvey/convey"
)

func TestStaticProvider(t *testing.T) {
	ctx := context.Background()

	Convey("Given a static provider", t, func() {
		source := []model.RawPerformanceEntry{
			{Discipline: "100m", RawPerformance: "10''52"},
		}
		provider := fixture.NewStatic(source)

		Convey("Then it returns the configured entries", func() {
			So(provider.Entries(ctx), ShouldResemble, source)
		})

		Convey("Then mutating the input does not leak in", func() {
			source[0].RawPerformance = "mutated"
			So(provider.Entries(ctx)[0].RawPerformance, ShouldEqual, "10''52")
		})

		Convey("Then mutating the output does not leak back", func() {
			out := provider.Entries(ctx)
			out[0].Discipline = "mutated"
			So(provider.Entries(ctx)[0].Discipline, ShouldEqual, "100m")
		})
	})
}

func TestGenerator(t *testing.T) {
	ctx := context.Background()

	Convey("Given a generator with a fixed seed", t, func() {
		gen := fixture.NewGenerator(fixture.WithSeed(7), fixture.WithEntriesPerDiscipline(10))
		entries := gen.Entries(ctx)

		Convey("Then it emits the requested volume across disciplines", func() {
			So(entries, ShouldHaveLength, 5*10)
			seen := map[string]int{}
			for _, e := range entries {
				seen[e.Discipline]++
			}
			So(seen, ShouldHaveLength, 5)
			So(seen["100m"], ShouldEqual, 10)
		})

		Convey("Then every entry is well formed", func() {
			for _, e := range entries {
				So(e.EntryID, ShouldNotBeEmpty)
				So(e.DateToken, ShouldNotBeEmpty)
				So(e.HasContent(), ShouldBeTrue)
			}
		})

		Convey("Then valid marks parse under their discipline's metric", func() {
			for _, e := range entries {
				if e.RawPerformance == "DNF" {
					continue
				}
				m := metric.Classify(e.Discipline)
				value, err := parse.Magnitude(e.RawPerformance, m.Kind)
				So(err, ShouldBeNil)
				So(value, ShouldBeGreaterThan, 0)
			}
		})

		Convey("Then the same seed reproduces the same marks", func() {
			again := fixture.NewGenerator(fixture.WithSeed(7), fixture.WithEntriesPerDiscipline(10)).Entries(ctx)
			So(again, ShouldHaveLength, len(entries))
			for i := range entries {
				So(again[i].Discipline, ShouldEqual, entries[i].Discipline)
				So(again[i].DateToken, ShouldEqual, entries[i].DateToken)
				So(again[i].RawPerformance, ShouldEqual, entries[i].RawPerformance)
				So(again[i].Wind, ShouldEqual, entries[i].Wind)
			}
		})
	})
}
