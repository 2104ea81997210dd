package models

import "github.com/shopspring/decimal"

// CityGroup is one section of the city report.
type CityGroup struct {
	City     string
	People   []Person
	Subtotal decimal.Decimal
}

// CityReport groups people by city in ascending city order.
type CityReport struct {
	Groups     []CityGroup
	GrandTotal decimal.Decimal
}

// Empty reports whether there is nothing to show.
func (r CityReport) Empty() bool {
	return len(r.Groups) == 0
}
