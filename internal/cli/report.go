package cli

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// formatMoney renders d with two decimals and thousands separators,
// e.g. 1234567.5 -> 1,234,567.50.
func formatMoney(d decimal.Decimal) string {
	fixed := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	whole, frac, _ := strings.Cut(fixed, ".")
	n, ok := new(big.Int).SetString(whole, 10)
	if !ok {
		return sign + fixed
	}
	return sign + humanize.BigComma(n) + "." + frac
}

// Report prints people grouped by city with subtotals and a grand total.
func (a *App) Report(ctx context.Context) error {
	a.banner("REPORT BY CITY")

	r := a.personService.ReportByCity(ctx)
	if r.Empty() {
		fmt.Fprintln(a.out, "No people in the system.")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 8, 2, ' ', 0)
	for _, g := range r.Groups {
		fmt.Fprintf(tw, "City: %s\n\n", g.City)
		fmt.Fprintln(tw, "ID\tFirst names\tLast names\tBalance\t")
		fmt.Fprintln(tw, "--\t-----------\t----------\t-------\t")
		for _, p := range g.People {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t\n", p.ID, p.FirstName, p.LastName, formatMoney(p.Balance))
		}
		fmt.Fprintln(tw, "\t\t\t========\t")
		fmt.Fprintf(tw, "Total: %s\t\t\t%s\t\n", g.City, formatMoney(g.Subtotal))
		fmt.Fprintln(tw)
	}
	fmt.Fprintln(tw, "\t\t\t========\t")
	fmt.Fprintf(tw, "Grand total:\t\t\t%s\t\n", formatMoney(r.GrandTotal))

	return tw.Flush()
}
