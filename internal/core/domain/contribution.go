package domain

// ContributionMap maps an ISO calendar date (YYYY-MM-DD, UTC) to the number of
// contributions recorded on that day.
type ContributionMap map[string]int

// Day is a single cell of an upstream contribution calendar.
type Day struct {
	Date  string `json:"date"`
	Count int    `json:"contributionCount"`
}

// Week groups the days of one calendar column.
type Week struct {
	Days []Day `json:"contributionDays"`
}

// YearCalendar is the contribution calendar for a single year as returned upstream.
type YearCalendar struct {
	Weeks []Week `json:"weeks"`
}

// AggregateContributions merges the calendars of the given years into one map.
//
// Years are visited in the given order and days within a year in calendar order.
// Days without contributions are dropped before merging, so a padding day with a
// zero count never hides a real count from a neighbouring year. Among positive
// duplicates the last value written wins. Years without a calendar are skipped.
func AggregateContributions(years []int, calendars map[int]YearCalendar) ContributionMap {
	merged := make(ContributionMap)

	for _, year := range years {
		calendar, ok := calendars[year]
		if !ok {
			continue
		}
		for _, week := range calendar.Weeks {
			for _, day := range week.Days {
				if day.Date == "" || day.Count <= 0 {
					continue
				}
				merged[day.Date] = day.Count
			}
		}
	}

	return merged
}

// Total returns the sum of all positive counts in the map.
func (m ContributionMap) Total() int {
	total := 0
	for _, count := range m {
		if count > 0 {
			total += count
		}
	}
	return total
}
