package restapi

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"wallet_tracker/internal/domain/analytics"
	"wallet_tracker/internal/domain/entity"
)

// parseDateRange reads the optional from/to query parameters (YYYY-MM-DD, UTC).
func parseDateRange(c *gin.Context) (from, to *time.Time, err error) {
	if from, err = parseDate(c, "from"); err != nil {
		return nil, nil, err
	}
	if to, err = parseDate(c, "to"); err != nil {
		return nil, nil, err
	}
	if from != nil && to != nil && from.After(*to) {
		return nil, nil, fmt.Errorf("from (%s) is after to (%s)", from.Format(analytics.DateLayout), to.Format(analytics.DateLayout))
	}
	return from, to, nil
}

func parseDate(c *gin.Context, key string) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(analytics.DateLayout, raw, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid %s date %q, expected YYYY-MM-DD", key, raw)
	}
	return &t, nil
}

// parseTransactionFilter builds the filter from from, to, min_value, from_contains and to_contains.
func parseTransactionFilter(c *gin.Context) (entity.TransactionFilter, error) {
	var f entity.TransactionFilter

	from, to, err := parseDateRange(c)
	if err != nil {
		return f, err
	}
	f.From, f.To = from, to

	f.MinValue = decimal.Zero
	if raw := strings.TrimSpace(c.Query("min_value")); raw != "" {
		v, err := decimal.NewFromString(raw)
		if err != nil {
			return f, fmt.Errorf("invalid min_value %q", raw)
		}
		if v.IsNegative() {
			return f, fmt.Errorf("min_value must not be negative")
		}
		f.MinValue = v
	}

	f.FromContains = strings.TrimSpace(c.Query("from_contains"))
	f.ToContains = strings.TrimSpace(c.Query("to_contains"))
	return f, nil
}
