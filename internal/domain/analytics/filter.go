// Package analytics holds the pure transforms behind the dashboard's derived views.
// Nothing here performs I/O or keeps state.
package analytics

import (
	"strings"
	"time"

	"wallet_tracker/internal/domain/entity"
)

// DateLayout is the calendar-date format used for bounds and grouping.
const DateLayout = "2006-01-02"

// Filter returns the transactions that satisfy every supplied predicate, in input order.
// Date bounds are inclusive and compared as UTC calendar dates.
func Filter(txs []entity.Transaction, f entity.TransactionFilter) []entity.Transaction {
	var fromDay, toDay string
	if f.From != nil {
		fromDay = f.From.UTC().Format(DateLayout)
	}
	if f.To != nil {
		toDay = f.To.UTC().Format(DateLayout)
	}
	fromSub := strings.ToLower(f.FromContains)
	toSub := strings.ToLower(f.ToContains)

	out := make([]entity.Transaction, 0, len(txs))
	for _, tx := range txs {
		day := CalendarDate(tx.Timestamp)
		if fromDay != "" && day < fromDay {
			continue
		}
		if toDay != "" && day > toDay {
			continue
		}
		if tx.Value.LessThan(f.MinValue) {
			continue
		}
		if fromSub != "" && !strings.Contains(strings.ToLower(tx.From), fromSub) {
			continue
		}
		if toSub != "" && !strings.Contains(strings.ToLower(tx.To), toSub) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

// FilterByDate applies only the inclusive date bounds.
func FilterByDate(txs []entity.Transaction, from, to *time.Time) []entity.Transaction {
	return Filter(txs, entity.TransactionFilter{From: from, To: to})
}

// CalendarDate formats t as a UTC calendar date.
func CalendarDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// Bounds returns the earliest and latest calendar dates in txs, or nil for an empty set.
func Bounds(txs []entity.Transaction) *entity.DateBounds {
	if len(txs) == 0 {
		return nil
	}
	minTS, maxTS := txs[0].Timestamp, txs[0].Timestamp
	for _, tx := range txs[1:] {
		if tx.Timestamp.Before(minTS) {
			minTS = tx.Timestamp
		}
		if tx.Timestamp.After(maxTS) {
			maxTS = tx.Timestamp
		}
	}
	return &entity.DateBounds{Start: CalendarDate(minTS), End: CalendarDate(maxTS)}
}
