// Package dates generates surprise and reset dates. All functions are pure;
// callers supply the current time and the random draw.
package dates

import "time"

// Normalize truncates a time to day granularity, keeping its location.
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// RandomSurpriseDay picks a day between now+7d and now+1y-1d (inclusive) by
// interpolating linearly on unix timestamps with draw frac in [0,1). Working
// on timestamps rather than calendar fields lets DST and leap years fall out
// of plain arithmetic.
func RandomSurpriseDay(now time.Time, frac float64) time.Time {
	now = Normalize(now)

	start := now.AddDate(0, 0, 7)
	end := now.AddDate(1, 0, 0).AddDate(0, 0, -1)

	ts := float64(start.Unix())*frac + float64(end.Unix())*(1-frac)
	return Normalize(time.Unix(int64(ts), 0).UTC())
}

// Generate returns a fresh (surpriseDay, resetDay) pair for the given moment.
// The reset day is exactly one year after the day-normalized now; the -1 day
// adjustment applied to the surprise window does not shift it.
func Generate(now time.Time, frac float64) (surpriseDay, resetDay time.Time) {
	surpriseDay = RandomSurpriseDay(now, frac)
	resetDay = Normalize(now).AddDate(1, 0, 0)
	return surpriseDay, resetDay
}
