package fundchat

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/funddesk/fundchat/date"
)

// Load reads the holdings and trades CSV feeds and returns an immutable
// store. It fails with a *LoadError when either source is unreadable,
// structurally malformed, or yields no rows. Date columns are coerced: a row
// whose date fails to parse keeps an absent date rather than failing the
// load.
func Load(holdingsPath, tradesPath string) (*Store, error) {
	s := &Store{}
	if err := s.loadHoldings(holdingsPath); err != nil {
		return nil, &LoadError{Source: holdingsPath, Err: err}
	}
	if err := s.loadTrades(tradesPath); err != nil {
		return nil, &LoadError{Source: tradesPath, Err: err}
	}
	log.Printf("loaded %d holdings records and %d trades records", len(s.holdings), len(s.trades))
	return s, nil
}

// header maps column names to their position in the source file.
type header map[string]int

func readHeader(r *csv.Reader) (header, error) {
	record, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty file")
	}
	if err != nil {
		return nil, err
	}
	h := make(header, len(record))
	for i, name := range record {
		h[strings.TrimSpace(name)] = i
	}
	return h, nil
}

// require checks that all named columns are present.
func (h header) require(names ...string) error {
	for _, name := range names {
		if _, ok := h[name]; !ok {
			return fmt.Errorf("missing required column %q", name)
		}
	}
	return nil
}

// field returns the named column of a record, or empty when absent.
func (h header) field(record []string, name string) string {
	i, ok := h[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// number parses the named column as a float, coercing unparsable values to 0.
func (h header) number(record []string, name string) float64 {
	v, err := strconv.ParseFloat(h.field(record, name), 64)
	if err != nil {
		return 0
	}
	return v
}

func (s *Store) loadHoldings(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r := csv.NewReader(f)
	h, err := readHeader(r)
	if err != nil {
		return err
	}
	if err := h.require("PortfolioName", "SecurityId", "SecName", "CustodianName", "Qty", "MV_Base", "PL_YTD"); err != nil {
		return err
	}
	_, s.hasSecurityType = h["SecurityTypeName"]

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		row := HoldingRecord{
			Fund:         h.field(record, "PortfolioName"),
			SecurityID:   h.field(record, "SecurityId"),
			SecurityName: h.field(record, "SecName"),
			SecurityType: h.field(record, "SecurityTypeName"),
			Custodian:    h.field(record, "CustodianName"),
			Quantity:     h.number(record, "Qty"),
			MarketValue:  h.number(record, "MV_Base"),
			PLYTD:        h.number(record, "PL_YTD"),
		}
		if v := h.field(record, "AsOfDate"); v != "" {
			row.AsOf, _ = date.ParseAsOf(v)
		}
		s.holdings = append(s.holdings, row)
	}
	if len(s.holdings) == 0 {
		return fmt.Errorf("no holdings rows")
	}
	return nil
}

func (s *Store) loadTrades(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r := csv.NewReader(f)
	h, err := readHeader(r)
	if err != nil {
		return err
	}
	if err := h.require("PortfolioName", "Name", "Ticker"); err != nil {
		return err
	}

	fixed := map[string]bool{"PortfolioName": true, "Name": true, "Ticker": true, "TradeDate": true}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		row := TradeRecord{
			Fund:       h.field(record, "PortfolioName"),
			Instrument: h.field(record, "Name"),
			Ticker:     h.field(record, "Ticker"),
		}
		if v := h.field(record, "TradeDate"); v != "" {
			row.Stamp, _ = date.ParseStamp(v)
		}
		for name := range h {
			if fixed[name] {
				continue
			}
			if v := h.field(record, name); v != "" {
				if row.Extra == nil {
					row.Extra = make(map[string]string)
				}
				row.Extra[name] = v
			}
		}
		s.trades = append(s.trades, row)
	}
	if len(s.trades) == 0 {
		return fmt.Errorf("no trades rows")
	}
	return nil
}
