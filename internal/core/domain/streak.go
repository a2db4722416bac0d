package domain

import (
	"slices"
	"time"
)

// StreakResult holds the streak statistics of a single user.
// Date fields carry display strings and are empty when the bound does not exist.
type StreakResult struct {
	CurrentStreak      int    `json:"currentStreak"`
	LongestStreak      int    `json:"longestStreak"`
	TotalContributions int    `json:"totalContributions"`
	FirstContribution  string `json:"firstContribution"`
	CurrentStreakStart string `json:"currentStreakStart"`
	CurrentStreakEnd   string `json:"currentStreakEnd"`
	LongestStreakStart string `json:"longestStreakStart"`
	LongestStreakEnd   string `json:"longestStreakEnd"`
}

// streakRun is a contiguous run of contributing days identified by ISO bounds.
type streakRun struct {
	length int
	start  string
	end    string
}

// CalculateStreaks computes totals, the current streak and the longest streak.
//
// The current streak is anchored on the UTC day of now when it has contributions,
// otherwise on the day before; a user whose last contribution is older has no
// current streak. The calculation never fails: keys that are not ISO dates only
// count toward the total.
func CalculateStreaks(contributions ContributionMap, now time.Time) StreakResult {
	if len(contributions) == 0 {
		return StreakResult{}
	}

	dates := make([]string, 0, len(contributions))
	for date := range contributions {
		dates = append(dates, date)
	}
	slices.Sort(dates)

	current := currentStreak(contributions, now)
	longest := longestStreak(dates, contributions)

	return StreakResult{
		CurrentStreak:      current.length,
		LongestStreak:      longest.length,
		TotalContributions: contributions.Total(),
		FirstContribution:  FormatDisplayDate(firstContribution(dates, contributions), true),
		CurrentStreakStart: FormatDisplayDate(current.start, false),
		CurrentStreakEnd:   FormatDisplayDate(current.end, false),
		LongestStreakStart: FormatDisplayDate(longest.start, false),
		LongestStreakEnd:   FormatDisplayDate(longest.end, false),
	}
}

func firstContribution(sorted []string, contributions ContributionMap) string {
	for _, date := range sorted {
		if contributions[date] <= 0 {
			continue
		}
		if _, ok := ParseISODate(date); ok {
			return date
		}
	}
	return ""
}

func currentStreak(contributions ContributionMap, now time.Time) streakRun {
	anchor := UTCDay(now)
	if contributions[anchor.Format(ISODate)] <= 0 {
		anchor = anchor.AddDate(0, 0, -1)
		if contributions[anchor.Format(ISODate)] <= 0 {
			return streakRun{}
		}
	}

	run := streakRun{end: anchor.Format(ISODate)}
	for day := anchor; contributions[day.Format(ISODate)] > 0; day = day.AddDate(0, 0, -1) {
		run.length++
		run.start = day.Format(ISODate)
	}
	return run
}

// longestStreak walks the sorted dates once. A run continues only across
// adjacent calendar days; a non-positive count breaks it immediately.
// Ties keep the earliest run.
func longestStreak(sorted []string, contributions ContributionMap) streakRun {
	var best, run streakRun
	var prev time.Time

	for _, date := range sorted {
		day, ok := ParseISODate(date)
		if !ok {
			continue
		}

		if contributions[date] <= 0 {
			run = streakRun{}
			prev = day
			continue
		}

		if run.length > 0 && prev.AddDate(0, 0, 1).Equal(day) {
			run.length++
		} else {
			run = streakRun{length: 1, start: date}
		}
		run.end = date

		if run.length > best.length {
			best = run
		}
		prev = day
	}

	return best
}
