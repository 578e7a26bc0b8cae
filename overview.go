package fundchat

// DataOverview is a whole-dataset snapshot: totals, per-fund counts, the
// full performance ranking and its two extremes. Top and Bottom point into
// Performance; with a single fund they are the same row, and both are nil
// when there are no holdings at all.
type DataOverview struct {
	Funds          []string
	TotalHoldings  int
	TotalTrades    int
	HoldingsByFund map[string]int
	TradesByFund   map[string]int
	Performance    []FundPerformance
	Top            *FundPerformance
	Bottom         *FundPerformance
}

// Overview computes the DataOverview from the current tables.
func (s *Store) Overview() DataOverview {
	o := DataOverview{
		Funds:          s.Funds(),
		TotalHoldings:  len(s.holdings),
		TotalTrades:    len(s.trades),
		HoldingsByFund: s.HoldingsCountByFund(""),
		TradesByFund:   s.TradesCountByFund(""),
		Performance:    s.Performance(),
	}
	if len(o.Performance) > 0 {
		o.Top = &o.Performance[0]
		o.Bottom = &o.Performance[len(o.Performance)-1]
	}
	return o
}
