package repository_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/okian/piste/internal/adapters/repository"
	"github.com/okian/piste/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMemStore(t *testing.T) {
	ctx := context.Background()

	Convey("Given an empty store", t, func() {
		store := repository.NewMemStore(ctx)

		Convey("When entries are appended under two disciplines", func() {
			stored := store.Append(ctx,
				model.RawPerformanceEntry{Discipline: "100m", RawPerformance: "10''52"},
				model.RawPerformanceEntry{Discipline: "100m", RawPerformance: "10''47"},
				model.RawPerformanceEntry{Discipline: "Saut en longueur", RawPerformance: "7,60m"},
			)

			Convey("Then all of them are stored", func() {
				So(stored, ShouldEqual, 3)
				So(store.Count(ctx), ShouldEqual, 3)
			})

			Convey("Then ByDiscipline returns them in insertion order", func() {
				entries, err := store.ByDiscipline(ctx, "100m")
				So(err, ShouldBeNil)
				So(entries, ShouldHaveLength, 2)
				So(entries[0].RawPerformance, ShouldEqual, "10''52")
				So(entries[1].RawPerformance, ShouldEqual, "10''47")
			})

			Convey("Then the returned slice is a copy", func() {
				entries, err := store.ByDiscipline(ctx, "100m")
				So(err, ShouldBeNil)
				entries[0].RawPerformance = "mutated"
				again, err := store.ByDiscipline(ctx, "100m")
				So(err, ShouldBeNil)
				So(again[0].RawPerformance, ShouldEqual, "10''52")
			})

			Convey("Then Disciplines is sorted lexicographically", func() {
				So(store.Disciplines(ctx), ShouldResemble, []string{"100m", "Saut en longueur"})
			})
		})

		Convey("When an entry has no discipline", func() {
			stored := store.Append(ctx, model.RawPerformanceEntry{RawPerformance: "10''52"})

			Convey("Then it is skipped", func() {
				So(stored, ShouldEqual, 0)
				So(store.Count(ctx), ShouldEqual, 0)
			})
		})

		Convey("When an unknown discipline is requested", func() {
			_, err := store.ByDiscipline(ctx, "Heptathlon")

			Convey("Then ErrUnknownDiscipline is returned", func() {
				So(err, ShouldEqual, repository.ErrUnknownDiscipline)
			})
		})
	})

	Convey("Given a store with a single shard", t, func() {
		store := repository.NewMemStore(ctx, repository.WithShardCount(1))

		Convey("Then appends under many disciplines still work", func() {
			for i := 0; i < 20; i++ {
				store.Append(ctx, model.RawPerformanceEntry{Discipline: fmt.Sprintf("d%02d", i)})
			}
			So(store.Count(ctx), ShouldEqual, 20)
			So(store.Disciplines(ctx), ShouldHaveLength, 20)
		})
	})
}

func TestMemStoreConcurrency(t *testing.T) {
	Convey("Given concurrent writers and readers", t, func() {
		ctx := context.Background()
		store := repository.NewMemStore(ctx)

		var wg sync.WaitGroup
		for g := 0; g < 8; g++ {
			wg.Add(1)
			go func(g int) {
				defer wg.Done()
				discipline := fmt.Sprintf("discipline-%d", g%4)
				for i := 0; i < 50; i++ {
					store.Append(ctx, model.RawPerformanceEntry{
						Discipline:     discipline,
						RawPerformance: "10''52",
					})
					_, _ = store.ByDiscipline(ctx, discipline)
					_ = store.Disciplines(ctx)
				}
			}(g)
		}
		wg.Wait()

		Convey("Then every append is accounted for", func() {
			So(store.Count(ctx), ShouldEqual, 8*50)
			So(store.Disciplines(ctx), ShouldHaveLength, 4)
		})
	})
}
