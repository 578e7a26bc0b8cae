package fundchat

import "github.com/funddesk/fundchat/date"

// FundSummary is a per-fund snapshot across both tables. A fund with no
// holdings yields zero counts, empty custodians and an absent as-of date.
type FundSummary struct {
	Fund             string
	Holdings         int
	Trades           int
	TotalPLYTD       float64
	TotalMarketValue float64
	UniqueSecurities int
	Custodians       []string  // first-seen order
	AsOf             date.Date // latest as-of date across the fund's holdings
}

// CustodianSummary aggregates the holdings held through one custodian.
type CustodianSummary struct {
	Custodian        string
	TotalMarketValue float64
	TotalPLYTD       float64
	Funds            int // distinct funds holding through this custodian
}

// SecurityTypeSummary aggregates the holdings of one security type.
type SecurityTypeSummary struct {
	SecurityType     string
	TotalMarketValue float64
	TotalPLYTD       float64
	UniqueSecurities int
}
