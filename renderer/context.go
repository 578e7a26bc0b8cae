// Package renderer assembles the bounded markdown context handed to the
// completion backend, and renders the same views for the inspection CLI.
package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/funddesk/fundchat"
	md "github.com/nao1215/markdown"
)

// topN is the number of securities shown in "top securities" tables.
const topN = 10

// maxSummaryFunds bounds the fund-details section when no fund was
// detected, to keep the context within a reasonable token budget.
const maxSummaryFunds = 5

// Context builds the single ordered text block summarizing exactly the
// topics the intent asks for. Sections appear in a fixed order, each
// included only when its topic flag is set; the overview header is always
// present. Output is deterministic given the same tables and intent.
func Context(s *fundchat.Store, it fundchat.Intent) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	o := s.Overview()
	doc.H1("Data Overview")
	doc.PlainText(fmt.Sprintf("Total Funds: %d", len(o.Funds)))
	doc.PlainText(fmt.Sprintf("Total Holdings: %d", o.TotalHoldings))
	doc.PlainText(fmt.Sprintf("Total Trades: %d", o.TotalTrades))
	doc.PlainText("Available Funds: " + strings.Join(o.Funds, ", "))

	if it.Holdings {
		holdingsSection(doc, s, it)
	}
	if it.Trades {
		tradesSection(doc, s, it)
	}
	if it.Performance {
		performanceSection(doc, o.Performance)
	}
	if it.Custodian {
		custodianSection(doc, s.CustodianSummary())
	}
	if it.SecurityType {
		// The section is skipped entirely when the feed had no
		// security-type column.
		if types := s.SecurityTypeSummary(); len(types) > 0 {
			typeSection(doc, types)
		}
	}
	if it.Fund != "" || it.Summary {
		detailsSection(doc, s, it, o.Funds)
	}

	return doc.String()
}

func holdingsSection(doc *md.Markdown, s *fundchat.Store, it fundchat.Intent) {
	doc.H2("Holdings Information")
	if it.Fund != "" {
		doc.PlainText(fmt.Sprintf("Total holdings for %s: %d", it.Fund, s.HoldingsCountByFund(it.Fund)[it.Fund]))
		if it.Top {
			doc.PlainText(fmt.Sprintf("Top %d securities by market value for %s:", topN, it.Fund))
			doc.Table(securitiesTable(s.TopSecurities(it.Fund, topN)))
		}
		return
	}
	doc.PlainText("Holdings by fund:")
	doc.Table(countsTable(s.HoldingsCountByFund(""), "Holdings"))
	if it.Top {
		doc.PlainText(fmt.Sprintf("Top %d securities by market value across all funds:", topN))
		doc.Table(securitiesTable(s.TopSecurities("", topN)))
	}
}

func tradesSection(doc *md.Markdown, s *fundchat.Store, it fundchat.Intent) {
	doc.H2("Trades Information")
	if it.Fund != "" {
		doc.PlainText(fmt.Sprintf("Total trades for %s: %d", it.Fund, s.TradesCountByFund(it.Fund)[it.Fund]))
		return
	}
	doc.PlainText("Trades by fund:")
	doc.Table(countsTable(s.TradesCountByFund(""), "Trades"))
}

func performanceSection(doc *md.Markdown, perf []fundchat.FundPerformance) {
	doc.H2("Performance Information")
	doc.PlainText("Fund performance (sorted by PL YTD, highest first):")
	doc.Table(performanceTable(perf))
	if len(perf) > 0 {
		top, worst := perf[0], perf[len(perf)-1]
		doc.PlainText(fmt.Sprintf("Top Performer: %s with PL YTD: %s", top.Fund, money(top.TotalPLYTD)))
		doc.PlainText(fmt.Sprintf("Worst Performer: %s with PL YTD: %s", worst.Fund, money(worst.TotalPLYTD)))
	}
}

func custodianSection(doc *md.Markdown, custodians []fundchat.CustodianSummary) {
	doc.H2("Custodian Information")
	rows := make([][]string, 0, len(custodians))
	for _, c := range custodians {
		rows = append(rows, []string{c.Custodian, money(c.TotalMarketValue), money(c.TotalPLYTD), fmt.Sprint(c.Funds)})
	}
	doc.Table(md.TableSet{
		Header: []string{"Custodian", "Market Value", "PL YTD", "Funds"},
		Rows:   rows,
	})
}

func typeSection(doc *md.Markdown, types []fundchat.SecurityTypeSummary) {
	doc.H2("Security Type Information")
	rows := make([][]string, 0, len(types))
	for _, t := range types {
		rows = append(rows, []string{t.SecurityType, money(t.TotalMarketValue), money(t.TotalPLYTD), fmt.Sprint(t.UniqueSecurities)})
	}
	doc.Table(md.TableSet{
		Header: []string{"Security Type", "Market Value", "PL YTD", "Unique Securities"},
		Rows:   rows,
	})
}

func detailsSection(doc *md.Markdown, s *fundchat.Store, it fundchat.Intent, funds []string) {
	doc.H2("Fund Details")
	if it.Fund != "" {
		fundSummary(doc, s.Summary(it.Fund))
		return
	}
	if len(funds) > maxSummaryFunds {
		funds = funds[:maxSummaryFunds]
	}
	for _, fund := range funds {
		fundSummary(doc, s.Summary(fund))
	}
}

func fundSummary(doc *md.Markdown, sum fundchat.FundSummary) {
	doc.H3("Summary for " + sum.Fund)
	asOf := sum.AsOf.String()
	if asOf == "" {
		asOf = "n/a"
	}
	doc.BulletList(
		fmt.Sprintf("Total Holdings: %d", sum.Holdings),
		fmt.Sprintf("Total Trades: %d", sum.Trades),
		fmt.Sprintf("Total PL YTD: %s", money(sum.TotalPLYTD)),
		fmt.Sprintf("Total Market Value (Base): %s", money(sum.TotalMarketValue)),
		fmt.Sprintf("Unique Securities: %d", sum.UniqueSecurities),
		fmt.Sprintf("Custodians: %s", strings.Join(sum.Custodians, ", ")),
		fmt.Sprintf("As Of: %s", asOf),
	)
}
