package parse_test

import (
	"errors"
	"testing"

	"github.com/okian/piste/internal/domain/metric"
	"github.com/okian/piste/internal/domain/parse"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMagnitude_TimedNotations(t *testing.T) {
	Convey("Given timed performance strings", t, func() {
		Convey("When parsing seconds with centiseconds", func() {
			v, err := parse.Magnitude("10''52", metric.TimeShort)
			So(err, ShouldBeNil)
			So(v, ShouldAlmostEqual, 10.52, 0.0001)
		})

		Convey("When parsing the double-quote variant", func() {
			v, err := parse.Magnitude(`10"52`, metric.TimeShort)
			So(err, ShouldBeNil)
			So(v, ShouldAlmostEqual, 10.52, 0.0001)
		})

		Convey("When parsing minutes, seconds and centiseconds", func() {
			v, err := parse.Magnitude("1'52''34", metric.TimeLong)
			So(err, ShouldBeNil)
			So(v, ShouldAlmostEqual, 112.34, 0.0001)
		})

		Convey("When parsing a plain decimal with a dot", func() {
			v, err := parse.Magnitude("10.52", metric.TimeShort)
			So(err, ShouldBeNil)
			So(v, ShouldAlmostEqual, 10.52, 0.0001)
		})

		Convey("When parsing a plain decimal with a comma", func() {
			v, err := parse.Magnitude("10,52", metric.TimeShort)
			So(err, ShouldBeNil)
			So(v, ShouldAlmostEqual, 10.52, 0.0001)
		})

		Convey("When parsing seconds without centiseconds", func() {
			v, err := parse.Magnitude("11''", metric.TimeShort)
			So(err, ShouldBeNil)
			So(v, ShouldAlmostEqual, 11.0, 0.0001)
		})

		Convey("When parsing the formatter's clock notation", func() {
			v, err := parse.Magnitude("1:52.34", metric.TimeLong)
			So(err, ShouldBeNil)
			So(v, ShouldAlmostEqual, 112.34, 0.0001)
		})

		Convey("When parsing the formatter's route-race notation", func() {
			v, err := parse.Magnitude("2:06:33", metric.TimeMarathon)
			So(err, ShouldBeNil)
			So(v, ShouldAlmostEqual, 7593.0, 0.0001)
		})
	})
}

func TestMagnitude_EmbeddedWindMarkers(t *testing.T) {
	Convey("Given timed performances carrying an inline wind reading", t, func() {
		Convey("When the wind follows the chrono in plain text", func() {
			v, err := parse.Magnitude("10''52 +1.8 m/s", metric.TimeShort)
			So(err, ShouldBeNil)
			So(v, ShouldAlmostEqual, 10.52, 0.0001)
		})

		Convey("When the wind sits in parentheses", func() {
			// The reading must not be mistaken for a homologated mark.
			v, err := parse.Magnitude("10''52 (+1.8 m/s)", metric.TimeShort)
			So(err, ShouldBeNil)
			So(v, ShouldAlmostEqual, 10.52, 0.0001)
		})

		Convey("When the wind is a bare signed number", func() {
			v, err := parse.Magnitude("10''52 -0,4", metric.TimeShort)
			So(err, ShouldBeNil)
			So(v, ShouldAlmostEqual, 10.52, 0.0001)
		})

		Convey("When the wind uses a vent marker", func() {
			v, err := parse.Magnitude("1'52''34 vent : +1,2", metric.TimeShort)
			So(err, ShouldBeNil)
			So(v, ShouldAlmostEqual, 112.34, 0.0001)
		})

		Convey("When only a wind reading sits in parentheses, the outer chrono wins", func() {
			v, err := parse.Magnitude("11.2 (+2.3 m/s)", metric.TimeShort)
			So(err, ShouldBeNil)
			So(v, ShouldAlmostEqual, 11.2, 0.0001)
		})
	})
}

func TestMagnitude_ParenthesizedHomologated(t *testing.T) {
	Convey("Given a feed storing the homologated time in parentheses", t, func() {
		Convey("When the inner text parses, it wins for timed kinds", func() {
			v, err := parse.Magnitude("10.6 (10''52)", metric.TimeShort)
			So(err, ShouldBeNil)
			So(v, ShouldAlmostEqual, 10.52, 0.0001)
		})

		Convey("When the inner text does not parse, the outer text is used", func() {
			v, err := parse.Magnitude("10''52 (q)", metric.TimeShort)
			So(err, ShouldBeNil)
			So(v, ShouldAlmostEqual, 10.52, 0.0001)
		})

		Convey("When the kind is distance, parentheses are not preferred", func() {
			v, err := parse.Magnitude("7.60m (vent nul)", metric.Distance)
			So(err, ShouldBeNil)
			So(v, ShouldAlmostEqual, 7.60, 0.0001)
		})
	})
}

func TestMagnitude_DistanceAndPoints(t *testing.T) {
	Convey("Given distance and points performance strings", t, func() {
		Convey("When parsing a distance with unit suffix", func() {
			v, err := parse.Magnitude("7.60m", metric.Distance)
			So(err, ShouldBeNil)
			So(v, ShouldAlmostEqual, 7.60, 0.0001)
		})

		Convey("When parsing a distance with a comma separator", func() {
			v, err := parse.Magnitude("7,60 m", metric.Distance)
			So(err, ShouldBeNil)
			So(v, ShouldAlmostEqual, 7.60, 0.0001)
		})

		Convey("When parsing combined-event points", func() {
			v, err := parse.Magnitude("7412 pts", metric.Points)
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 7412)
		})
	})
}

func TestMagnitude_InvalidityMarkers(t *testing.T) {
	Convey("Given entries carrying invalidity codes", t, func() {
		for _, raw := range []string{"DNF", "dns", "DQ", "dsq", "NC", "np", "Did Not Finish"} {
			Convey("When parsing "+raw, func() {
				_, err := parse.Magnitude(raw, metric.TimeShort)
				So(errors.Is(err, parse.ErrInvalidMark), ShouldBeTrue)
			})
		}

		Convey("When a code appears inside a regular word it is ignored", func() {
			// "concours" contains "nc" but is not an invalidity token
			_, err := parse.Magnitude("record du concours", metric.TimeShort)
			So(errors.Is(err, parse.ErrUnparseable), ShouldBeTrue)
		})
	})
}

func TestMagnitude_Unparseable(t *testing.T) {
	Convey("Given noise the parser cannot use", t, func() {
		for _, raw := range []string{"", "   ", "abandon", "---"} {
			Convey("When parsing "+"\""+raw+"\"", func() {
				_, err := parse.Magnitude(raw, metric.TimeShort)
				So(errors.Is(err, parse.ErrUnparseable), ShouldBeTrue)
			})
		}
	})
}

func TestMagnitude_Deterministic(t *testing.T) {
	Convey("Given the same input parsed twice", t, func() {
		a, err1 := parse.Magnitude("1'52''34", metric.TimeLong)
		b, err2 := parse.Magnitude("1'52''34", metric.TimeLong)
		So(err1, ShouldBeNil)
		So(err2, ShouldBeNil)
		So(a, ShouldEqual, b)
	})
}
