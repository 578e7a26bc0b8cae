package fundchat

// FundPerformance aggregates a fund's holdings into a single performance
// row. Totals are plain float64 sums over the rows, in the feed's base
// currency.
type FundPerformance struct {
	Fund             string
	TotalPLYTD       float64
	TotalMarketValue float64
	TotalQuantity    float64
}
