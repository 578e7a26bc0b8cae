package fundchat

import (
	"slices"
	"sort"
	"strings"
)

// HoldingsCountByFund counts holdings rows per fund. With a named fund the
// result has exactly one entry, 0 when the fund has no rows in the table;
// with an empty fund it counts every fund present.
func (s *Store) HoldingsCountByFund(fund string) map[string]int {
	counts := make(map[string]int)
	if fund != "" {
		counts[fund] = 0
	}
	for _, h := range s.holdings {
		if fund != "" && h.Fund != fund {
			continue
		}
		counts[h.Fund]++
	}
	return counts
}

// TradesCountByFund counts trades rows per fund, with the same filter
// semantics as HoldingsCountByFund.
func (s *Store) TradesCountByFund(fund string) map[string]int {
	counts := make(map[string]int)
	if fund != "" {
		counts[fund] = 0
	}
	for _, t := range s.trades {
		if fund != "" && t.Fund != fund {
			continue
		}
		counts[t.Fund]++
	}
	return counts
}

// Performance groups holdings by fund and sums P/L YTD, market value and
// quantity. The result is sorted descending by total P/L YTD; funds with
// equal totals keep their first-seen order.
func (s *Store) Performance() []FundPerformance {
	index := make(map[string]int)
	var perf []FundPerformance
	for _, h := range s.holdings {
		i, ok := index[h.Fund]
		if !ok {
			i = len(perf)
			index[h.Fund] = i
			perf = append(perf, FundPerformance{Fund: h.Fund})
		}
		perf[i].TotalPLYTD += h.PLYTD
		perf[i].TotalMarketValue += h.MarketValue
		perf[i].TotalQuantity += h.Quantity
	}
	sort.SliceStable(perf, func(i, j int) bool { return perf[i].TotalPLYTD > perf[j].TotalPLYTD })
	return perf
}

// Summary builds the per-fund snapshot across both tables. It never fails:
// a fund absent from the tables yields the zero snapshot.
func (s *Store) Summary(fund string) FundSummary {
	sum := FundSummary{Fund: fund}
	securities := make(map[string]bool)
	custodians := make(map[string]bool)
	for _, h := range s.holdings {
		if h.Fund != fund {
			continue
		}
		sum.Holdings++
		sum.TotalPLYTD += h.PLYTD
		sum.TotalMarketValue += h.MarketValue
		if h.SecurityID != "" {
			securities[h.SecurityID] = true
		}
		if h.Custodian != "" && !custodians[h.Custodian] {
			custodians[h.Custodian] = true
			sum.Custodians = append(sum.Custodians, h.Custodian)
		}
		sum.AsOf = sum.AsOf.Max(h.AsOf)
	}
	sum.UniqueSecurities = len(securities)
	for _, t := range s.trades {
		if t.Fund == fund {
			sum.Trades++
		}
	}
	return sum
}

// Funds returns the sorted union of distinct fund names seen in either
// table. Matching is case-sensitive; a fund present in only one table still
// appears.
func (s *Store) Funds() []string {
	set := make(map[string]bool)
	for _, h := range s.holdings {
		set[h.Fund] = true
	}
	for _, t := range s.trades {
		set[t.Fund] = true
	}
	funds := make([]string, 0, len(set))
	for fund := range set {
		funds = append(funds, fund)
	}
	slices.Sort(funds)
	return funds
}

// SearchHoldings returns the holdings rows whose fund, security or security
// type name contains the query, case-insensitively. An empty field never
// matches but the row may still match on another field.
func (s *Store) SearchHoldings(query string) []HoldingRecord {
	q := strings.ToLower(query)
	var out []HoldingRecord
	for _, h := range s.holdings {
		if contains(h.Fund, q) || contains(h.SecurityName, q) || contains(h.SecurityType, q) {
			out = append(out, h)
		}
	}
	return out
}

// SearchTrades returns the trades rows whose fund, instrument or ticker
// contains the query, case-insensitively.
func (s *Store) SearchTrades(query string) []TradeRecord {
	q := strings.ToLower(query)
	var out []TradeRecord
	for _, t := range s.trades {
		if contains(t.Fund, q) || contains(t.Instrument, q) || contains(t.Ticker, q) {
			out = append(out, t)
		}
	}
	return out
}

func contains(field, loweredQuery string) bool {
	if field == "" {
		return false
	}
	return strings.Contains(strings.ToLower(field), loweredQuery)
}

// TopSecurities returns the top n holdings by market value, descending,
// optionally restricted to one fund. Rows with equal market value keep their
// feed order.
func (s *Store) TopSecurities(fund string, n int) []HoldingRecord {
	if n <= 0 {
		return nil
	}
	var rows []HoldingRecord
	for _, h := range s.holdings {
		if fund == "" || h.Fund == fund {
			rows = append(rows, h)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].MarketValue > rows[j].MarketValue })
	if len(rows) > n {
		rows = rows[:n]
	}
	return rows
}

// CustodianSummary aggregates holdings per custodian: summed market value
// and P/L YTD, and the number of distinct funds holding through it. The
// result is sorted by custodian name.
func (s *Store) CustodianSummary() []CustodianSummary {
	index := make(map[string]int)
	funds := make(map[string]map[string]bool)
	var out []CustodianSummary
	for _, h := range s.holdings {
		i, ok := index[h.Custodian]
		if !ok {
			i = len(out)
			index[h.Custodian] = i
			out = append(out, CustodianSummary{Custodian: h.Custodian})
			funds[h.Custodian] = make(map[string]bool)
		}
		out[i].TotalMarketValue += h.MarketValue
		out[i].TotalPLYTD += h.PLYTD
		funds[h.Custodian][h.Fund] = true
	}
	for i := range out {
		out[i].Funds = len(funds[out[i].Custodian])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Custodian < out[j].Custodian })
	return out
}

// SecurityTypeSummary aggregates holdings per security type: summed market
// value and P/L YTD, and the number of distinct securities. It returns an
// empty result when the security-type column was absent from the source
// header. The result is sorted by type name.
func (s *Store) SecurityTypeSummary() []SecurityTypeSummary {
	if !s.hasSecurityType {
		return nil
	}
	index := make(map[string]int)
	securities := make(map[string]map[string]bool)
	var out []SecurityTypeSummary
	for _, h := range s.holdings {
		i, ok := index[h.SecurityType]
		if !ok {
			i = len(out)
			index[h.SecurityType] = i
			out = append(out, SecurityTypeSummary{SecurityType: h.SecurityType})
			securities[h.SecurityType] = make(map[string]bool)
		}
		out[i].TotalMarketValue += h.MarketValue
		out[i].TotalPLYTD += h.PLYTD
		if h.SecurityID != "" {
			securities[h.SecurityType][h.SecurityID] = true
		}
	}
	for i := range out {
		out[i].UniqueSecurities = len(securities[out[i].SecurityType])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SecurityType < out[j].SecurityType })
	return out
}
