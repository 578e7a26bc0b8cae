package fundchat

import (
	"reflect"
	"testing"
)

func TestFundsUnion(t *testing.T) {
	s := testStore()
	got := s.Funds()
	want := []string{"Alpha", "Beta", "Gamma"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Funds() = %v, want %v", got, want)
	}
}

func TestHoldingsCountByFund(t *testing.T) {
	s := testStore()

	got := s.HoldingsCountByFund("")
	want := map[string]int{"Alpha": 2, "Beta": 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("HoldingsCountByFund(\"\") = %v, want %v", got, want)
	}

	// A fund with no rows in the table still yields an explicit zero entry.
	got = s.HoldingsCountByFund("Gamma")
	want = map[string]int{"Gamma": 0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("HoldingsCountByFund(Gamma) = %v, want %v", got, want)
	}
}

func TestTradesCountByFund(t *testing.T) {
	s := testStore()
	got := s.TradesCountByFund("Beta")
	if got["Beta"] != 2 {
		t.Errorf("TradesCountByFund(Beta) = %v, want 2", got["Beta"])
	}
	got = s.TradesCountByFund("Nowhere")
	if n, ok := got["Nowhere"]; !ok || n != 0 {
		t.Errorf("TradesCountByFund(Nowhere) = %v, want explicit 0 entry", got)
	}
}

func TestPerformanceOrder(t *testing.T) {
	s := testStore()
	perf := s.Performance()
	if len(perf) != 2 {
		t.Fatalf("Performance() returned %d rows, want 2", len(perf))
	}
	if perf[0].Fund != "Alpha" || perf[1].Fund != "Beta" {
		t.Errorf("Performance() order = [%s %s], want [Alpha Beta]", perf[0].Fund, perf[1].Fund)
	}
	if perf[0].TotalPLYTD != 100 || perf[0].TotalMarketValue != 1000 || perf[0].TotalQuantity != 15 {
		t.Errorf("Alpha totals = %+v, want PL 100, MV 1000, Qty 15", perf[0])
	}
	if perf[1].TotalPLYTD != -50 {
		t.Errorf("Beta PL = %v, want -50", perf[1].TotalPLYTD)
	}
}

func TestPerformanceStableOnTies(t *testing.T) {
	// Three funds with equal totals must keep first-seen order, whatever
	// the row interleaving.
	rows := []HoldingRecord{
		holding("Mid", "S1", "A", "Equity", "C", 1, 10, 5),
		holding("Zed", "S2", "B", "Equity", "C", 1, 10, 5),
		holding("Ace", "S3", "C", "Equity", "C", 1, 10, 5),
		holding("Zed", "S4", "D", "Equity", "C", 1, 10, 0),
		holding("Ace", "S5", "E", "Equity", "C", 1, 10, 0),
		holding("Mid", "S6", "F", "Equity", "C", 1, 10, 0),
	}
	s := NewStore(rows, []TradeRecord{trade("Mid", "x", "X")})
	perf := s.Performance()
	var got []string
	for _, p := range perf {
		got = append(got, p.Fund)
	}
	want := []string{"Mid", "Zed", "Ace"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tied Performance() order = %v, want first-seen %v", got, want)
	}
}

func TestPerformanceEmpty(t *testing.T) {
	s := NewStore(nil, nil)
	if perf := s.Performance(); len(perf) != 0 {
		t.Errorf("Performance() on empty store = %v, want empty", perf)
	}
}

func TestSummary(t *testing.T) {
	s := testStore()
	sum := s.Summary("Alpha")
	if sum.Holdings != 2 || sum.Trades != 1 {
		t.Errorf("Summary(Alpha) counts = %d/%d, want 2/1", sum.Holdings, sum.Trades)
	}
	if sum.TotalPLYTD != 100 || sum.TotalMarketValue != 1000 {
		t.Errorf("Summary(Alpha) totals = %v/%v, want 100/1000", sum.TotalPLYTD, sum.TotalMarketValue)
	}
	if sum.UniqueSecurities != 2 {
		t.Errorf("Summary(Alpha) securities = %d, want 2", sum.UniqueSecurities)
	}
	if want := []string{"Bank One", "Bank Two"}; !reflect.DeepEqual(sum.Custodians, want) {
		t.Errorf("Summary(Alpha) custodians = %v, want %v", sum.Custodians, want)
	}
}

func TestSummaryZeroFund(t *testing.T) {
	s := testStore()
	sum := s.Summary("Gamma") // trades only, no holdings
	if sum.Holdings != 0 || sum.TotalPLYTD != 0 || sum.UniqueSecurities != 0 {
		t.Errorf("Summary(Gamma) = %+v, want zero holdings aggregates", sum)
	}
	if len(sum.Custodians) != 0 {
		t.Errorf("Summary(Gamma) custodians = %v, want empty", sum.Custodians)
	}
	if !sum.AsOf.IsZero() {
		t.Errorf("Summary(Gamma) as-of = %s, want absent", sum.AsOf)
	}
	if sum.Trades != 1 {
		t.Errorf("Summary(Gamma) trades = %d, want 1", sum.Trades)
	}
}

func TestSearchHoldings(t *testing.T) {
	s := testStore()
	if got := s.SearchHoldings("acme"); len(got) != 1 || got[0].SecurityID != "S1" {
		t.Errorf("SearchHoldings(acme) = %v, want the Acme row", got)
	}
	// Matches on security type too.
	if got := s.SearchHoldings("EQUITY"); len(got) != 2 {
		t.Errorf("SearchHoldings(EQUITY) returned %d rows, want 2", len(got))
	}
	if got := s.SearchHoldings("nothing-here"); len(got) != 0 {
		t.Errorf("SearchHoldings(nothing-here) = %v, want empty", got)
	}
}

func TestSearchTrades(t *testing.T) {
	s := testStore()
	if got := s.SearchTrades("dune"); len(got) != 1 || got[0].Fund != "Gamma" {
		t.Errorf("SearchTrades(dune) = %v, want the Gamma row", got)
	}
	if got := s.SearchTrades("crst"); len(got) != 2 {
		t.Errorf("SearchTrades(crst) returned %d rows, want 2", len(got))
	}
}

func TestTopSecurities(t *testing.T) {
	s := testStore()
	top := s.TopSecurities("", 10)
	if len(top) != 3 {
		t.Fatalf("TopSecurities(10) returned %d rows, want 3", len(top))
	}
	for i := 1; i < len(top); i++ {
		if top[i].MarketValue > top[i-1].MarketValue {
			t.Errorf("TopSecurities not sorted descending at %d: %v > %v", i, top[i].MarketValue, top[i-1].MarketValue)
		}
	}
	if top[0].SecurityID != "S1" {
		t.Errorf("largest holding = %s, want S1", top[0].SecurityID)
	}

	if got := s.TopSecurities("", 2); len(got) != 2 {
		t.Errorf("TopSecurities(2) returned %d rows, want 2", len(got))
	}
	if got := s.TopSecurities("Beta", 10); len(got) != 1 || got[0].Fund != "Beta" {
		t.Errorf("TopSecurities(Beta) = %v, want only Beta rows", got)
	}
	if got := s.TopSecurities("Nowhere", 10); len(got) != 0 {
		t.Errorf("TopSecurities(Nowhere) = %v, want empty", got)
	}
}

func TestCustodianSummary(t *testing.T) {
	s := testStore()
	got := s.CustodianSummary()
	want := []CustodianSummary{
		{Custodian: "Bank One", TotalMarketValue: 1100, TotalPLYTD: 30, Funds: 2},
		{Custodian: "Bank Two", TotalMarketValue: 400, TotalPLYTD: 20, Funds: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CustodianSummary() = %v, want %v", got, want)
	}
}

func TestSecurityTypeSummary(t *testing.T) {
	s := testStore()
	got := s.SecurityTypeSummary()
	want := []SecurityTypeSummary{
		{SecurityType: "Bond", TotalMarketValue: 400, TotalPLYTD: 20, UniqueSecurities: 1},
		{SecurityType: "Equity", TotalMarketValue: 1100, TotalPLYTD: 30, UniqueSecurities: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SecurityTypeSummary() = %v, want %v", got, want)
	}
}

func TestOverview(t *testing.T) {
	s := testStore()
	o := s.Overview()
	if o.TotalHoldings != 3 || o.TotalTrades != 4 {
		t.Errorf("Overview totals = %d/%d, want 3/4", o.TotalHoldings, o.TotalTrades)
	}
	if o.Top == nil || o.Top.Fund != "Alpha" {
		t.Errorf("Overview top performer = %v, want Alpha", o.Top)
	}
	if o.Bottom == nil || o.Bottom.Fund != "Beta" {
		t.Errorf("Overview worst performer = %v, want Beta", o.Bottom)
	}
	// Gamma has no holdings but still appears in the per-fund trade counts.
	if o.TradesByFund["Gamma"] != 1 {
		t.Errorf("Overview trades for Gamma = %d, want 1", o.TradesByFund["Gamma"])
	}
}

func TestOverviewSingleFund(t *testing.T) {
	s := NewStore(
		[]HoldingRecord{holding("Solo", "S1", "Only Co", "Equity", "Bank", 1, 100, 10)},
		[]TradeRecord{trade("Solo", "Only Co", "ONLY")},
	)
	o := s.Overview()
	if o.Top == nil || o.Bottom == nil || o.Top != o.Bottom {
		t.Errorf("single-fund overview: top and bottom must be the same row, got %v and %v", o.Top, o.Bottom)
	}
}
