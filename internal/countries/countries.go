// Package countries derives the visited-country list from visited cities.
package countries

import "worldwise/internal/types"

// Summarize returns one CountrySummary per distinct country name, in the order
// each country is first encountered. The emoji comes from that first city.
func Summarize(cities []types.City) []types.CountrySummary {
	seen := make(map[string]struct{}, len(cities))
	summaries := make([]types.CountrySummary, 0, len(cities))

	for _, city := range cities {
		if _, ok := seen[city.Country]; ok {
			continue
		}
		seen[city.Country] = struct{}{}
		summaries = append(summaries, types.CountrySummary{
			Country: city.Country,
			Emoji:   city.Emoji,
		})
	}

	return summaries
}
