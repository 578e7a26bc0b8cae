package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/funddesk/fundchat"
)

func testAssistant(t *testing.T, apiKey string) *Assistant {
	t.Helper()
	store := fundchat.NewStore(
		[]fundchat.HoldingRecord{
			{Fund: "Alpha", SecurityID: "S1", SecurityName: "Acme Corp", SecurityType: "Equity", Custodian: "Bank One", Quantity: 10, MarketValue: 1000, PLYTD: 100},
			{Fund: "Beta", SecurityID: "S2", SecurityName: "Crest Inc", SecurityType: "Equity", Custodian: "Bank One", Quantity: 8, MarketValue: 500, PLYTD: -50},
		},
		[]fundchat.TradeRecord{
			{Fund: "Alpha", Instrument: "Acme Corp", Ticker: "ACME"},
		},
	)
	a, err := New(context.Background(), store, apiKey)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return a
}

func TestAnswerWithoutCredential(t *testing.T) {
	a := testAssistant(t, "")
	if a.Configured() {
		t.Error("Configured() = true without a credential")
	}
	_, err := a.Answer(context.Background(), "how is Alpha doing?")
	var configErr *fundchat.ConfigError
	if !errors.As(err, &configErr) {
		t.Fatalf("Answer without credential = %v, want *fundchat.ConfigError", err)
	}
}

func TestAnswerBlankQuestion(t *testing.T) {
	a := testAssistant(t, "")
	_, err := a.Answer(context.Background(), "   \n")
	var queryErr *fundchat.QueryError
	if !errors.As(err, &queryErr) {
		t.Fatalf("Answer with blank question = %v, want *fundchat.QueryError", err)
	}
}

func TestContextComposition(t *testing.T) {
	// Context composition works with no credential at all.
	a := testAssistant(t, "")
	got := a.Context("what is the performance of Alpha?")
	if !strings.HasPrefix(got, "# Data Overview") {
		t.Errorf("context does not start with the overview header:\n%s", got)
	}
	if !strings.Contains(got, "## Performance Information") {
		t.Error("performance section missing from composed context")
	}
	if !strings.Contains(got, "Top Performer: Alpha") {
		t.Error("top performer line missing from composed context")
	}
}
