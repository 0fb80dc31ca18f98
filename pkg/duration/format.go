package duration

import (
	"math"
	"strconv"
	"time"

	"github.com/hako/durafmt"
)

// Format renders a magnitude and unit as a duration string, e.g. "523ms".
func Format(magnitude float64, u Unit) string {
	return strconv.FormatFloat(magnitude, 'f', -1, 64) + u.String()
}

// FormatSeconds renders d in seconds, the form the gateway backend uses for
// durations ("0.523s").
func FormatSeconds(d time.Duration) string {
	return Format(d.Seconds(), UnitSecond)
}

// FormatMilliseconds renders d in milliseconds ("523ms").
func FormatMilliseconds(d time.Duration) string {
	return Format(float64(d)/float64(time.Millisecond), UnitMillisecond)
}

// FromMilliseconds converts a millisecond count to a time.Duration.
func FromMilliseconds(ms float64) time.Duration {
	return time.Duration(math.Round(ms * float64(time.Millisecond)))
}

// Humanize renders d for people, e.g. "1 second 500 milliseconds".
func Humanize(d time.Duration) string {
	return durafmt.Parse(d).String()
}
