package service_test

import (
	"context"
	"os"
	"testing"

	"github.com/okian/piste/internal/adapters/repository"
	service "github.com/okian/piste/internal/app"
	"github.com/okian/piste/internal/domain/model"
	"github.com/okian/piste/internal/fixture"
	"github.com/okian/piste/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func startedService(ctx context.Context, opts ...service.Option) *service.Service {
	svc := service.New(opts...)
	if err := svc.Start(ctx); err != nil {
		panic(err)
	}
	return svc
}

func TestServiceIngest(t *testing.T) {
	ctx := context.Background()

	Convey("Given a started service", t, func() {
		svc := startedService(ctx)

		Convey("When a mixed batch is ingested", func() {
			report := svc.Ingest(ctx, []model.RawPerformanceEntry{
				{Discipline: "100m", DateToken: "2025-06-01", RawPerformance: "10''52"},
				{DateToken: "2025-06-01", RawPerformance: "10''52"},
				{Discipline: "100m", DateToken: "2025-06-01"},
				{Discipline: "100m", DateToken: "2025-06-02", Place: "3"},
			})

			Convey("Then entries without a discipline or content are rejected", func() {
				So(report.Accepted, ShouldEqual, 2)
				So(report.Rejected, ShouldEqual, 2)
			})

			Convey("Then accepted entries get ids assigned", func() {
				rows, err := svc.Results(ctx, "100m")
				So(err, ShouldBeNil)
				So(rows, ShouldHaveLength, 2)
				for _, row := range rows {
					So(row.EntryID, ShouldNotBeEmpty)
				}
			})
		})

		Convey("When an entry already carries an id", func() {
			svc.Ingest(ctx, []model.RawPerformanceEntry{
				{EntryID: "keep-me", Discipline: "100m", DateToken: "2025-06-01", RawPerformance: "10''52"},
			})

			rows, err := svc.Results(ctx, "100m")
			So(err, ShouldBeNil)
			So(rows[0].EntryID, ShouldEqual, "keep-me")
		})
	})
}

func TestServiceTimeline(t *testing.T) {
	ctx := context.Background()

	Convey("Given a service with sprint results", t, func() {
		svc := startedService(ctx)
		svc.Ingest(ctx, []model.RawPerformanceEntry{
			{Discipline: "100m", DateToken: "2024-06-15", RawPerformance: "10''80"},
			{Discipline: "100m", DateToken: "2025-06-01", RawPerformance: "10''52"},
			{Discipline: "100m", DateToken: "2025-06-01", RawPerformance: "10''60"},
			{Discipline: "100m", DateToken: "2025-06-08", RawPerformance: "10''47", Wind: "+2.3"},
			{Discipline: "100m", DateToken: "2025-06-22", RawPerformance: "DNF", Place: "-"},
		})

		Convey("When the full timeline is requested", func() {
			view, err := svc.Timeline(ctx, "100m", model.YearAll)
			So(err, ShouldBeNil)

			Convey("Then wind-assisted and abandoned marks are excluded", func() {
				So(view.Points, ShouldHaveLength, 2)
				So(view.Points[0].Value, ShouldAlmostEqual, 10.80, 0.0001)
				So(view.Points[1].Value, ShouldAlmostEqual, 10.52, 0.0001)
			})
		})

		Convey("When a single year is requested", func() {
			view, err := svc.Timeline(ctx, "100m", "2025")
			So(err, ShouldBeNil)
			So(view.SelectedYear, ShouldEqual, "2025")
			So(view.Points, ShouldHaveLength, 1)
			So(view.Points[0].Date, ShouldEqual, "2025-06-01")
		})

		Convey("When the result table is requested", func() {
			rows, err := svc.Results(ctx, "100m")
			So(err, ShouldBeNil)

			Convey("Then every stored entry appears, flagged appropriately", func() {
				So(rows, ShouldHaveLength, 5)
				var illegal, invalid int
				for _, row := range rows {
					if !row.Legal {
						illegal++
					}
					if row.Invalid {
						invalid++
					}
				}
				So(illegal, ShouldEqual, 2) // the +2.3 m/s mark and the DNF
				So(invalid, ShouldEqual, 1)
			})
		})

		Convey("When an unknown discipline is requested", func() {
			_, err := svc.Timeline(ctx, "Heptathlon", model.YearAll)
			So(err, ShouldEqual, repository.ErrUnknownDiscipline)
		})
	})
}

func TestServiceProgress(t *testing.T) {
	ctx := context.Background()

	Convey("Given a sprinter with a record season behind them", t, func() {
		svc := startedService(ctx)
		svc.Ingest(ctx, []model.RawPerformanceEntry{
			{Discipline: "100m", DateToken: "2024-07-01", RawPerformance: "10''40"},
			{Discipline: "100m", DateToken: "2025-06-01", RawPerformance: "10''52"},
			{Discipline: "100m", DateToken: "2025-07-01", RawPerformance: "10''90"},
		})

		Convey("When progress for the current season is computed", func() {
			report, err := svc.Progress(ctx, "100m", "2025")
			So(err, ShouldBeNil)

			Convey("Then the ratio compares season best to all-time record", func() {
				So(report.Record, ShouldAlmostEqual, 10.40, 0.0001)
				So(report.Comparison, ShouldAlmostEqual, 10.52, 0.0001)
				So(report.Ratio, ShouldAlmostEqual, 10.40/10.52, 1e-9)
				So(report.Band, ShouldEqual, "elite")
			})

			Convey("Then formatted labels accompany the raw values", func() {
				So(report.RecordLabel, ShouldEqual, "10.40 s")
				So(report.ComparisonLabel, ShouldEqual, "10.52 s")
			})
		})

		Convey("When the record year itself is compared", func() {
			report, err := svc.Progress(ctx, "100m", "2024")
			So(err, ShouldBeNil)
			So(report.Ratio, ShouldEqual, 1.0)
		})

		Convey("When the requested year has no usable marks", func() {
			report, err := svc.Progress(ctx, "100m", "2019")
			So(err, ShouldBeNil)
			So(report.Ratio, ShouldEqual, 0.0)
			So(report.Band, ShouldEqual, "low")
		})
	})

	Convey("Given a jumper where higher is better", t, func() {
		svc := startedService(ctx)
		svc.Ingest(ctx, []model.RawPerformanceEntry{
			{Discipline: "Saut en longueur", DateToken: "2024-07-01", RawPerformance: "8,00m"},
			{Discipline: "Saut en longueur", DateToken: "2025-06-01", RawPerformance: "7,60m"},
		})

		report, err := svc.Progress(ctx, "Saut en longueur", "2025")
		So(err, ShouldBeNil)
		So(report.Ratio, ShouldAlmostEqual, 7.60/8.00, 1e-9)
		So(report.Band, ShouldEqual, "elite")
	})
}

func TestServiceFixturePreload(t *testing.T) {
	ctx := context.Background()

	Convey("Given a service with a static fixture provider", t, func() {
		provider := fixture.NewStatic([]model.RawPerformanceEntry{
			{Discipline: "800m", DateToken: "2025-05-10", RawPerformance: "1'52''34"},
			{Discipline: "800m", DateToken: "2025-05-24", RawPerformance: "1'51''80"},
		})
		svc := startedService(ctx, service.WithFixtureProvider(provider))

		Convey("Then its entries are queryable right after Start", func() {
			So(svc.Disciplines(ctx), ShouldResemble, []string{"800m"})
			view, err := svc.Timeline(ctx, "800m", model.YearAll)
			So(err, ShouldBeNil)
			So(view.Points, ShouldHaveLength, 2)
		})

		Convey("Then Start is idempotent and does not re-seed", func() {
			So(svc.Start(ctx), ShouldBeNil)
			rows, err := svc.Results(ctx, "800m")
			So(err, ShouldBeNil)
			So(rows, ShouldHaveLength, 2)
		})
	})
}

func TestServiceStats(t *testing.T) {
	ctx := context.Background()

	Convey("Given a started service with data", t, func() {
		svc := startedService(ctx, service.WithCondenseThreshold(12))
		svc.Ingest(ctx, []model.RawPerformanceEntry{
			{Discipline: "100m", DateToken: "2025-06-01", RawPerformance: "10''52"},
		})

		stats := svc.GetStats()

		Convey("Then the lifecycle and configuration are reported", func() {
			So(stats["started"], ShouldBeTrue)
			So(stats["condenseThreshold"], ShouldEqual, 12)
			So(stats["totalEntries"], ShouldEqual, 1)
			So(stats["disciplines"], ShouldEqual, 1)
		})
	})
}
