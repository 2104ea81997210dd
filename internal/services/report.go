package services

import (
	"slices"
	"strings"

	"github.com/dmitrijs2005/peoplekeeper/internal/models"
	"github.com/shopspring/decimal"
)

// BuildCityReport groups people by exact city name. Groups are sorted by
// city (byte-wise ascending), members keep their order in people, and
// totals use exact decimal arithmetic.
func BuildCityReport(people []models.Person) models.CityReport {
	index := make(map[string]int)
	var groups []models.CityGroup

	for _, p := range people {
		i, ok := index[p.City]
		if !ok {
			i = len(groups)
			index[p.City] = i
			groups = append(groups, models.CityGroup{City: p.City, Subtotal: decimal.Zero})
		}
		groups[i].People = append(groups[i].People, p)
		groups[i].Subtotal = groups[i].Subtotal.Add(p.Balance)
	}

	slices.SortStableFunc(groups, func(a, b models.CityGroup) int {
		return strings.Compare(a.City, b.City)
	})

	total := decimal.Zero
	for _, g := range groups {
		total = total.Add(g.Subtotal)
	}
	return models.CityReport{Groups: groups, GrandTotal: total}
}
