package statistics

import (
	"fmt"
	"time"

	domainerror "github.com/wallet-tracker/backend/internal/domain/error"
)

// Period identifies a summarization window anchored at a reference time.
type Period string

// Supported periods.
const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// IsValid checks if the period is a supported value.
func (p Period) IsValid() bool {
	return p == PeriodWeek || p == PeriodMonth || p == PeriodYear
}

// PeriodRange is an inclusive date range.
type PeriodRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the range.
func (r PeriodRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Bucket is one chart slot inside a period.
type Bucket struct {
	Label string
	Range PeriodRange
}

// RangeFor computes the date range the period spans around the reference
// time. Weeks start on Sunday. Ranges run from midnight on the first day to
// the last millisecond of the last day, in the reference's location.
func RangeFor(period Period, reference time.Time) (PeriodRange, error) {
	loc := reference.Location()

	switch period {
	case PeriodWeek:
		start := startOfDay(reference.AddDate(0, 0, -int(reference.Weekday())), loc)
		return PeriodRange{Start: start, End: endOfDay(start.AddDate(0, 0, 6), loc)}, nil
	case PeriodMonth:
		start := time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, loc)
		return PeriodRange{Start: start, End: endOfDay(start.AddDate(0, 1, -1), loc)}, nil
	case PeriodYear:
		start := time.Date(reference.Year(), time.January, 1, 0, 0, 0, 0, loc)
		return PeriodRange{Start: start, End: endOfDay(time.Date(reference.Year(), time.December, 31, 0, 0, 0, 0, loc), loc)}, nil
	default:
		return PeriodRange{}, domainerror.NewStatisticsError(
			domainerror.ErrCodeInvalidPeriod,
			"period must be 'week', 'month' or 'year'",
			domainerror.ErrInvalidPeriod,
		)
	}
}

// BucketsFor splits the period range into chart buckets: one per day for a
// week, 7-day windows for a month, one per month for a year. Every bucket is
// emitted even when no transaction falls inside it.
func BucketsFor(period Period, rng PeriodRange) []Bucket {
	loc := rng.Start.Location()

	switch period {
	case PeriodWeek:
		buckets := make([]Bucket, 0, 7)
		for i := 0; i < 7; i++ {
			day := rng.Start.AddDate(0, 0, i)
			buckets = append(buckets, Bucket{
				Label: day.Format("Mon"),
				Range: PeriodRange{Start: startOfDay(day, loc), End: endOfDay(day, loc)},
			})
		}
		return buckets
	case PeriodMonth:
		var buckets []Bucket
		for i := 0; ; i++ {
			start := rng.Start.AddDate(0, 0, i*7)
			if start.After(rng.End) {
				break
			}
			end := endOfDay(start.AddDate(0, 0, 6), loc)
			if end.After(rng.End) {
				end = rng.End
			}
			buckets = append(buckets, Bucket{
				Label: fmt.Sprintf("W%d", i+1),
				Range: PeriodRange{Start: start, End: end},
			})
		}
		return buckets
	case PeriodYear:
		buckets := make([]Bucket, 0, 12)
		for month := time.January; month <= time.December; month++ {
			start := time.Date(rng.Start.Year(), month, 1, 0, 0, 0, 0, loc)
			buckets = append(buckets, Bucket{
				Label: start.Format("Jan"),
				Range: PeriodRange{Start: start, End: endOfDay(start.AddDate(0, 1, -1), loc)},
			})
		}
		return buckets
	default:
		return nil
	}
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

func endOfDay(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), loc)
}
