package fundchat

// holding is a helper for tests to create a holdings row from consts.
func holding(fund, secID, secName, secType, custodian string, qty, mv, pl float64) HoldingRecord {
	return HoldingRecord{
		Fund:         fund,
		SecurityID:   secID,
		SecurityName: secName,
		SecurityType: secType,
		Custodian:    custodian,
		Quantity:     qty,
		MarketValue:  mv,
		PLYTD:        pl,
	}
}

// trade is a helper for tests to create a trades row from consts.
func trade(fund, instrument, ticker string) TradeRecord {
	return TradeRecord{Fund: fund, Instrument: instrument, Ticker: ticker}
}

// testStore returns the two-fund fixture used across the aggregation tests:
// Alpha (PL 100, MV 1000) and Beta (PL -50, MV 500), plus a trades-only
// fund Gamma.
func testStore() *Store {
	holdings := []HoldingRecord{
		holding("Alpha", "S1", "Acme Corp", "Equity", "Bank One", 10, 600, 80),
		holding("Alpha", "S2", "Bolt Ltd", "Bond", "Bank Two", 5, 400, 20),
		holding("Beta", "S3", "Crest Inc", "Equity", "Bank One", 8, 500, -50),
	}
	trades := []TradeRecord{
		trade("Alpha", "Acme Corp", "ACME"),
		trade("Beta", "Crest Inc", "CRST"),
		trade("Beta", "Crest Inc", "CRST"),
		trade("Gamma", "Dune Plc", "DUNE"),
	}
	return NewStore(holdings, trades)
}
