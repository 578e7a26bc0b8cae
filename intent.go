package fundchat

import "strings"

// Topics is the set of flags that drive which sections go into the
// generated context.
type Topics struct {
	Holdings     bool
	Trades       bool
	Performance  bool
	Custodian    bool
	SecurityType bool
	Top          bool
	Summary      bool
}

// Intent is the classification of one question: an optionally detected fund
// name (empty when none matched) and the topic flags.
type Intent struct {
	Fund string
	Topics
}

// topicKeywords declares, per topic, the substrings that raise its flag in a
// lower-cased question.
var topicKeywords = map[string][]string{
	"holdings":     {"holding", "holdings", "position", "positions", "security", "securities", "asset", "assets"},
	"trades":       {"trade", "trades", "transaction", "transactions", "execution", "executions"},
	"performance":  {"performance", "profit", "loss", "p&l", "pl", "ytd", "return", "returns", "gain", "losses"},
	"custodian":    {"custodian", "custodians", "bank", "banks"},
	"securityType": {"type", "types", "category", "categories", "class", "classes"},
	"top":          {"top", "best", "largest", "highest", "biggest"},
	"summary":      {"summary", "overview", "details", "information", "info"},
}

// Classify maps a free-text question to an Intent. It never fails: a
// question matching none of the data topics is broadened to the full default
// view (holdings, trades, performance and summary). Fund detection scans the
// sorted fund list and returns the first case-insensitive substring hit,
// which is deterministic but arbitrary when one fund name contains another.
func (s *Store) Classify(question string) Intent {
	q := strings.ToLower(question)

	var it Intent
	for _, fund := range s.Funds() {
		if strings.Contains(q, strings.ToLower(fund)) {
			it.Fund = fund
			break
		}
	}

	matches := func(topic string) bool {
		for _, kw := range topicKeywords[topic] {
			if strings.Contains(q, kw) {
				return true
			}
		}
		return false
	}
	it.Holdings = matches("holdings")
	it.Trades = matches("trades")
	it.Performance = matches("performance")
	it.Custodian = matches("custodian")
	it.SecurityType = matches("securityType")
	it.Top = matches("top")
	it.Summary = matches("summary")

	// A question with no data topic gets the full default view; top and
	// summary alone do not count as data topics.
	if !it.Holdings && !it.Trades && !it.Performance && !it.Custodian && !it.SecurityType {
		it.Holdings = true
		it.Trades = true
		it.Performance = true
		it.Summary = true
	}
	return it
}
