package client

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"wallet_tracker/internal/app/port"
	"wallet_tracker/internal/domain/entity"
	apitypes "wallet_tracker/internal/entity"
	"wallet_tracker/internal/pkg/utils"
)

const (
	coinGeckoVsCurrency    = "usd"
	coinGeckoDemoKeyHeader = "x-cg-demo-api-key"
)

// CoinGeckoOptions configures the price oracle adapter.
type CoinGeckoOptions struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type coinGeckoClientImpl struct {
	fetch *fetcher
	opts  CoinGeckoOptions
	log   *zap.Logger
}

// NewCoinGeckoClient creates the price oracle adapter.
func NewCoinGeckoClient(opts CoinGeckoOptions, logger *zap.Logger) port.PriceOracle {
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	log := logger.Named("CoinGeckoClient")
	return &coinGeckoClientImpl{
		fetch: newFetcher("coingecko", log),
		opts:  opts,
		log:   log,
	}
}

// GetPrices implements port.PriceOracle.
func (c *coinGeckoClientImpl) GetPrices(ctx context.Context, ids []string) entity.PriceQuote {
	quote := entity.PriceQuote{}

	wanted := make([]string, 0, len(ids))
	for _, id := range utils.UniqueStrings(ids) {
		if id = strings.TrimSpace(id); id != "" {
			wanted = append(wanted, id)
		}
	}
	if len(wanted) == 0 {
		return quote
	}

	args := fasthttp.AcquireArgs()
	defer fasthttp.ReleaseArgs(args)
	args.Set("ids", strings.Join(wanted, ","))
	args.Set("vs_currencies", coinGeckoVsCurrency)
	u := c.opts.BaseURL + "/simple/price?" + args.String()

	r := request{endpoint: "simple_price", url: u, logURL: u, timeout: c.opts.Timeout}
	if c.opts.APIKey != "" {
		r.headers = map[string]string{coinGeckoDemoKeyHeader: c.opts.APIKey}
	}

	var body apitypes.SimplePriceResponse
	if err := c.fetch.getJSON(ctx, r, &body); err != nil {
		c.log.Error("CoinGecko price lookup failed", zap.Strings("ids", wanted), zap.Error(err))
		return quote
	}

	for id, byCurrency := range body {
		if price, ok := byCurrency[coinGeckoVsCurrency]; ok {
			quote[id] = decimal.NewFromFloat(price)
		}
	}
	return quote
}
