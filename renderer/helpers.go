package renderer

import (
	"fmt"
	"sort"

	"github.com/funddesk/fundchat"
	md "github.com/nao1215/markdown"
)

// money formats a base-currency amount with native float formatting at two
// decimal places.
func money(v float64) string { return fmt.Sprintf("%.2f", v) }

// qty formats a quantity, trimming the decimals when they are zero.
func qty(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}

// countsTable renders a fund→count mapping as a two-column table with funds
// sorted by name.
func countsTable(counts map[string]int, label string) md.TableSet {
	funds := make([]string, 0, len(counts))
	for fund := range counts {
		funds = append(funds, fund)
	}
	sort.Strings(funds)
	rows := make([][]string, 0, len(funds))
	for _, fund := range funds {
		rows = append(rows, []string{fund, fmt.Sprint(counts[fund])})
	}
	return md.TableSet{Header: []string{"Fund", label}, Rows: rows}
}

// securitiesTable renders holdings rows in ranking order.
func securitiesTable(holdings []fundchat.HoldingRecord) md.TableSet {
	rows := make([][]string, 0, len(holdings))
	for _, h := range holdings {
		rows = append(rows, []string{h.SecurityName, h.SecurityID, money(h.MarketValue), money(h.PLYTD), qty(h.Quantity), h.Fund})
	}
	return md.TableSet{
		Header: []string{"Security", "Id", "Market Value", "PL YTD", "Qty", "Fund"},
		Rows:   rows,
	}
}

// performanceTable renders the sorted performance set.
func performanceTable(perf []fundchat.FundPerformance) md.TableSet {
	rows := make([][]string, 0, len(perf))
	for _, p := range perf {
		rows = append(rows, []string{p.Fund, money(p.TotalPLYTD), money(p.TotalMarketValue), qty(p.TotalQuantity)})
	}
	return md.TableSet{
		Header: []string{"Fund", "PL YTD", "Market Value", "Quantity"},
		Rows:   rows,
	}
}
