package content

import (
	"strconv"

	"sitecontent/internal/cms"
)

// MapPressYears groups press items by publication year, preserving the
// incoming item order within each group. Years appear in first-seen order,
// so a date-descending feed yields descending year groups. Each group
// carries the two-digit year label shown by the filter strip.
func MapPressYears(entries []cms.Entry) []PressYear {
	if entries == nil {
		return nil
	}

	years := make([]PressYear, 0)
	index := make(map[string]int)

	for _, e := range entries {
		date := e.String("date")
		year := yearOf(date)

		item := PressItem{
			ID:    e.Int("id"),
			Title: e.String("title"),
			URL:   e.String("url"),
			Date:  displayDate(date),
		}

		i, seen := index[year]
		if !seen {
			i = len(years)
			index[year] = i
			years = append(years, PressYear{
				Year:  year,
				Label: shortYear(year),
				Items: []PressItem{},
			})
		}
		years[i].Items = append(years[i].Items, item)
	}

	return years
}

func yearOf(date string) string {
	if t := parseDate(date); !t.IsZero() {
		return strconv.Itoa(t.Year())
	}
	return "undated"
}

func shortYear(year string) string {
	if len(year) == 4 {
		return year[2:]
	}
	return year
}
