package date

import (
	"fmt"
	"time"
)

// StampFormat is the layout of the TradeDate column in the trades feed. The
// feed exports a clock-style value rather than a calendar date; the layout is
// kept exactly as the feed documents it, and values that do not match become
// an absent stamp.
const StampFormat = "15:04.05"

// Stamp represents the clock-formatted trade stamp of the trades feed. The
// zero value means the stamp is absent.
type Stamp struct {
	t time.Time
}

// IsZero reports whether the stamp is absent.
func (s Stamp) IsZero() bool { return s.t.IsZero() }

// String formats the stamp with the feed's layout, or empty when absent.
func (s Stamp) String() string {
	if s.IsZero() {
		return ""
	}
	return s.t.Format(StampFormat)
}

// ParseStamp parses a value of the trades feed's TradeDate column.
func ParseStamp(str string) (Stamp, error) {
	t, err := time.Parse(StampFormat, str)
	if err != nil {
		return Stamp{}, fmt.Errorf("invalid trade stamp %q want format %q: %w", str, StampFormat, err)
	}
	return Stamp{t: t}, nil
}
