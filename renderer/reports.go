package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/funddesk/fundchat"
	md "github.com/nao1215/markdown"
)

// OverviewMarkdown renders the whole-dataset snapshot for the CLI.
func OverviewMarkdown(o fundchat.DataOverview) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Data Overview")
	doc.PlainText(fmt.Sprintf("Total Funds: %d", len(o.Funds)))
	doc.PlainText(fmt.Sprintf("Total Holdings: %d", o.TotalHoldings))
	doc.PlainText(fmt.Sprintf("Total Trades: %d", o.TotalTrades))
	doc.PlainText("Available Funds: " + strings.Join(o.Funds, ", "))
	doc.H2("Holdings by Fund")
	doc.Table(countsTable(o.HoldingsByFund, "Holdings"))
	doc.H2("Trades by Fund")
	doc.Table(countsTable(o.TradesByFund, "Trades"))
	if o.Top != nil {
		doc.H2("Performance")
		doc.Table(performanceTable(o.Performance))
		doc.PlainText(fmt.Sprintf("Top Performer: %s with PL YTD: %s", o.Top.Fund, money(o.Top.TotalPLYTD)))
		doc.PlainText(fmt.Sprintf("Worst Performer: %s with PL YTD: %s", o.Bottom.Fund, money(o.Bottom.TotalPLYTD)))
	}
	return doc.String()
}

// PerformanceMarkdown renders the sorted performance set for the CLI.
func PerformanceMarkdown(perf []fundchat.FundPerformance) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	performanceSection(doc, perf)
	return doc.String()
}

// SummaryMarkdown renders one fund snapshot for the CLI.
func SummaryMarkdown(sum fundchat.FundSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	fundSummary(doc, sum)
	return doc.String()
}

// TopSecuritiesMarkdown renders a ranking of holdings for the CLI.
func TopSecuritiesMarkdown(title string, holdings []fundchat.HoldingRecord) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2(title)
	doc.Table(securitiesTable(holdings))
	return doc.String()
}

// CustodiansMarkdown renders the custodian rollup for the CLI.
func CustodiansMarkdown(custodians []fundchat.CustodianSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	custodianSection(doc, custodians)
	return doc.String()
}

// SecurityTypesMarkdown renders the security-type rollup for the CLI.
func SecurityTypesMarkdown(types []fundchat.SecurityTypeSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	if len(types) == 0 {
		doc.PlainText("No security type information in the holdings table.")
		return doc.String()
	}
	typeSection(doc, types)
	return doc.String()
}

// HoldingsMarkdown renders a flat list of holdings rows, e.g. search results.
func HoldingsMarkdown(title string, holdings []fundchat.HoldingRecord) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2(title)
	if len(holdings) == 0 {
		doc.PlainText("No matching holdings.")
		return doc.String()
	}
	doc.Table(securitiesTable(holdings))
	return doc.String()
}

// TradesMarkdown renders a flat list of trades rows, e.g. search results.
func TradesMarkdown(title string, trades []fundchat.TradeRecord) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2(title)
	if len(trades) == 0 {
		doc.PlainText("No matching trades.")
		return doc.String()
	}
	rows := make([][]string, 0, len(trades))
	for _, t := range trades {
		rows = append(rows, []string{t.Fund, t.Instrument, t.Ticker, t.Stamp.String()})
	}
	doc.Table(md.TableSet{
		Header: []string{"Fund", "Instrument", "Ticker", "Trade Stamp"},
		Rows:   rows,
	})
	return doc.String()
}
