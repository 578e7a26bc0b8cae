package fundchat

import "github.com/funddesk/fundchat/date"

// HoldingRecord is one row of the holdings table: a position in a security
// held by a fund as of some date. Identity is positional; the feed may carry
// duplicate rows and they are aggregated as-is.
type HoldingRecord struct {
	Fund         string
	SecurityID   string
	SecurityName string
	SecurityType string
	Custodian    string
	Quantity     float64
	MarketValue  float64 // in the fund's base currency
	PLYTD        float64 // year-to-date profit or loss
	AsOf         date.Date
}

// TradeRecord is one row of the trades table: an executed transaction
// associated with a fund. Columns beyond the fixed schema pass through
// unexamined in Extra.
type TradeRecord struct {
	Fund       string
	Instrument string
	Ticker     string
	Stamp      date.Stamp
	Extra      map[string]string
}
