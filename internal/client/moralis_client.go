package client

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"wallet_tracker/internal/app/port"
	apitypes "wallet_tracker/internal/entity"
)

const moralisAPIKeyHeader = "X-API-Key"

// MoralisOptions configures the token/NFT indexer adapter.
type MoralisOptions struct {
	BaseURL string
	APIKey  string
	Chain   string
	Timeout time.Duration
}

type moralisClientImpl struct {
	fetch *fetcher
	opts  MoralisOptions
	log   *zap.Logger
}

// NewMoralisClient creates the token/NFT indexer adapter.
func NewMoralisClient(opts MoralisOptions, logger *zap.Logger) port.TokenIndexer {
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	if opts.Chain == "" {
		opts.Chain = "eth"
	}
	log := logger.Named("MoralisClient")
	return &moralisClientImpl{
		fetch: newFetcher("moralis", log),
		opts:  opts,
		log:   log,
	}
}

// GetTokenBalances implements port.TokenIndexer.
func (c *moralisClientImpl) GetTokenBalances(ctx context.Context, address string) []apitypes.RawTokenBalance {
	u := c.opts.BaseURL + "/" + url.PathEscape(address) + "/erc20"
	var tokens []apitypes.RawTokenBalance
	if err := c.fetch.getJSON(ctx, c.request("erc20", u), &tokens); err != nil {
		c.log.Error("Moralis token balance lookup failed", zap.String("address", address), zap.Error(err))
		return []apitypes.RawTokenBalance{}
	}
	if tokens == nil {
		tokens = []apitypes.RawTokenBalance{}
	}
	return tokens
}

// GetNFTs implements port.TokenIndexer.
func (c *moralisClientImpl) GetNFTs(ctx context.Context, address string) []apitypes.RawNFT {
	args := fasthttp.AcquireArgs()
	defer fasthttp.ReleaseArgs(args)
	args.Set("chain", c.opts.Chain)
	args.Set("format", "decimal")
	u := c.opts.BaseURL + "/" + url.PathEscape(address) + "/nft?" + args.String()

	var page apitypes.MoralisNFTPage
	if err := c.fetch.getJSON(ctx, c.request("nft", u), &page); err != nil {
		c.log.Error("Moralis NFT lookup failed", zap.String("address", address), zap.Error(err))
		return []apitypes.RawNFT{}
	}
	if page.Result == nil {
		return []apitypes.RawNFT{}
	}
	return page.Result
}

func (c *moralisClientImpl) request(endpoint, u string) request {
	return request{
		endpoint: endpoint,
		url:      u,
		logURL:   u,
		headers:  map[string]string{moralisAPIKeyHeader: c.opts.APIKey},
		timeout:  c.opts.Timeout,
	}
}
