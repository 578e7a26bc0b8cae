package fundchat

// Store holds the two loaded tables. It is immutable after load and safe to
// share across concurrent readers; every derived view is recomputed from the
// rows on demand.
type Store struct {
	holdings []HoldingRecord
	trades   []TradeRecord

	// hasSecurityType records whether the SecurityTypeName column was
	// present in the holdings source header.
	hasSecurityType bool
}

// NewStore builds a store from already-parsed rows. It is the entry point
// for callers that do not read CSV feeds, such as tests; the security-type
// column is considered present.
func NewStore(holdings []HoldingRecord, trades []TradeRecord) *Store {
	return &Store{holdings: holdings, trades: trades, hasSecurityType: true}
}

// Holdings returns all holdings rows in feed order.
func (s *Store) Holdings() []HoldingRecord { return s.holdings }

// Trades returns all trades rows in feed order.
func (s *Store) Trades() []TradeRecord { return s.trades }
