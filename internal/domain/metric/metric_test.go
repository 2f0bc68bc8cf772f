package metric_test

import (
	"testing"

	"github.com/okian/piste/internal/domain/metric"
	. "github.com/smartystreets/goconvey/convey"
)

func TestClassify(t *testing.T) {
	Convey("Given FFA discipline labels", t, func() {
		Convey("When classifying sprints and hurdles", func() {
			for _, label := range []string{"100m", "200m", "400m", "110m Haies", "60m"} {
				m := metric.Classify(label)
				So(m.Kind, ShouldEqual, metric.TimeShort)
				So(m.Direction, ShouldEqual, metric.Lower)
			}
		})

		Convey("When classifying middle and long distance", func() {
			for _, label := range []string{"1500m", "3000m Steeple", "5000m", "10000m", "Cross long"} {
				m := metric.Classify(label)
				So(m.Kind, ShouldEqual, metric.TimeLong)
				So(m.Direction, ShouldEqual, metric.Lower)
			}
		})

		Convey("When classifying route races", func() {
			So(metric.Classify("Marathon").Kind, ShouldEqual, metric.TimeMarathon)
			So(metric.Classify("Semi-marathon").Kind, ShouldEqual, metric.TimeMarathon)
			So(metric.Classify("10 km").Kind, ShouldEqual, metric.TimeLong)
		})

		Convey("When classifying jumps and throws", func() {
			for _, label := range []string{
				"Saut en longueur", "Saut en hauteur", "Perche", "Triple saut",
				"Lancer du poids", "Disque", "Marteau", "Javelot",
			} {
				m := metric.Classify(label)
				So(m.Kind, ShouldEqual, metric.Distance)
				So(m.Direction, ShouldEqual, metric.Higher)
			}
		})

		Convey("When classifying combined events", func() {
			for _, label := range []string{"Décathlon", "Heptathlon", "Pentathlon"} {
				m := metric.Classify(label)
				So(m.Kind, ShouldEqual, metric.Points)
				So(m.Direction, ShouldEqual, metric.Higher)
			}
		})

		Convey("When classifying an unknown label", func() {
			// Defaults to a sprint-like metric rather than a field event,
			// so an unknown track event never gets its comparison inverted.
			m := metric.Classify("Course mystère")
			So(m.Kind, ShouldEqual, metric.TimeShort)
			So(m.Direction, ShouldEqual, metric.Lower)
		})

		Convey("When classification is accent and case insensitive", func() {
			So(metric.Classify("DECATHLON").Kind, ShouldEqual, metric.Points)
			So(metric.Classify("saut en LONGUEUR").Kind, ShouldEqual, metric.Distance)
		})
	})
}

func TestClassify_DeltaThresholds(t *testing.T) {
	Convey("Given classified metrics", t, func() {
		Convey("Then sprints and field events use a centiunit threshold", func() {
			So(metric.Classify("100m").DeltaThreshold, ShouldEqual, 0.01)
			So(metric.Classify("Saut en longueur").DeltaThreshold, ShouldEqual, 0.01)
		})

		Convey("Then longer events tolerate more noise", func() {
			So(metric.Classify("5000m").DeltaThreshold, ShouldEqual, 0.1)
			So(metric.Classify("Marathon").DeltaThreshold, ShouldEqual, 1.0)
			So(metric.Classify("Décathlon").DeltaThreshold, ShouldEqual, 1.0)
		})
	})
}

func TestDirection_Better(t *testing.T) {
	Convey("Given both comparison directions", t, func() {
		Convey("Then lower prefers the smaller value", func() {
			So(metric.Lower.Better(5.0, 6.0), ShouldBeTrue)
			So(metric.Lower.Better(6.0, 5.0), ShouldBeFalse)
		})

		Convey("Then higher prefers the larger value", func() {
			So(metric.Higher.Better(6.0, 5.0), ShouldBeTrue)
			So(metric.Higher.Better(5.0, 6.0), ShouldBeFalse)
		})

		Convey("Then equal values are not better in either direction", func() {
			So(metric.Lower.Better(5.0, 5.0), ShouldBeFalse)
			So(metric.Higher.Better(5.0, 5.0), ShouldBeFalse)
		})
	})
}

func TestKindStrings(t *testing.T) {
	Convey("Given all metric kinds", t, func() {
		So(metric.TimeShort.String(), ShouldEqual, "time-short")
		So(metric.TimeLong.String(), ShouldEqual, "time-long")
		So(metric.TimeMarathon.String(), ShouldEqual, "time-marathon")
		So(metric.Distance.String(), ShouldEqual, "distance")
		So(metric.Points.String(), ShouldEqual, "points")

		So(metric.TimeShort.IsTime(), ShouldBeTrue)
		So(metric.TimeMarathon.IsTime(), ShouldBeTrue)
		So(metric.Distance.IsTime(), ShouldBeFalse)
		So(metric.Points.IsTime(), ShouldBeFalse)
	})
}
