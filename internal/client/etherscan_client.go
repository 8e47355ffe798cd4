package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"wallet_tracker/internal/app/port"
	apitypes "wallet_tracker/internal/entity"
	"wallet_tracker/internal/pkg/utils"
)

const etherscanStatusOK = "1"

// EtherscanOptions configures the chain explorer adapter.
type EtherscanOptions struct {
	BaseURL        string
	APIKey         string
	BalanceTimeout time.Duration
	TxListTimeout  time.Duration
	TokenTxTimeout time.Duration
}

type etherscanClientImpl struct {
	fetch *fetcher
	opts  EtherscanOptions
	log   *zap.Logger
}

// NewEtherscanClient creates the chain explorer adapter.
func NewEtherscanClient(opts EtherscanOptions, logger *zap.Logger) port.ChainExplorer {
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	log := logger.Named("EtherscanClient")
	return &etherscanClientImpl{
		fetch: newFetcher("etherscan", log),
		opts:  opts,
		log:   log,
	}
}

// GetBalance implements port.ChainExplorer.
func (c *etherscanClientImpl) GetBalance(ctx context.Context, address string) decimal.Decimal {
	var env apitypes.EtherscanEnvelope
	r := c.accountRequest("balance", address, c.opts.BalanceTimeout, &env, func(args *fasthttp.Args) {
		args.Set("tag", "latest")
	})
	if err := c.fetch.getJSON(ctx, r, &env); err != nil {
		c.log.Error("ETH balance lookup failed", zap.String("address", address), zap.Error(err))
		return decimal.Zero
	}

	var wei string
	if err := json.Unmarshal(env.Result, &wei); err != nil {
		c.log.Error("Unexpected balance result shape", zap.String("address", address), zap.Error(err))
		return decimal.Zero
	}
	balance, err := utils.WeiToEther(wei)
	if err != nil {
		c.log.Error("Unparsable balance result", zap.String("address", address), zap.String("result", wei), zap.Error(err))
		return decimal.Zero
	}
	return balance
}

// GetTransactions implements port.ChainExplorer.
func (c *etherscanClientImpl) GetTransactions(ctx context.Context, address string) []apitypes.RawTransaction {
	var env apitypes.EtherscanEnvelope
	r := c.accountRequest("txlist", address, c.opts.TxListTimeout, &env, func(args *fasthttp.Args) {
		args.Set("startblock", "0")
		args.Set("endblock", "99999999")
		args.Set("sort", "desc")
	})
	if err := c.fetch.getJSON(ctx, r, &env); err != nil {
		c.log.Error("Transaction list lookup failed", zap.String("address", address), zap.Error(err))
		return []apitypes.RawTransaction{}
	}

	var txs []apitypes.RawTransaction
	if err := json.Unmarshal(env.Result, &txs); err != nil {
		c.log.Error("Unexpected txlist result shape", zap.String("address", address), zap.Error(err))
		return []apitypes.RawTransaction{}
	}
	if txs == nil {
		txs = []apitypes.RawTransaction{}
	}
	return txs
}

// GetTokenTransfers implements port.ChainExplorer.
func (c *etherscanClientImpl) GetTokenTransfers(ctx context.Context, address string) []apitypes.RawTokenTransfer {
	var env apitypes.EtherscanEnvelope
	r := c.accountRequest("tokentx", address, c.opts.TokenTxTimeout, &env, func(args *fasthttp.Args) {
		args.Set("sort", "asc")
	})
	if err := c.fetch.getJSON(ctx, r, &env); err != nil {
		c.log.Error("Token transfer lookup failed", zap.String("address", address), zap.Error(err))
		return []apitypes.RawTokenTransfer{}
	}

	var transfers []apitypes.RawTokenTransfer
	if err := json.Unmarshal(env.Result, &transfers); err != nil {
		c.log.Error("Unexpected tokentx result shape", zap.String("address", address), zap.Error(err))
		return []apitypes.RawTokenTransfer{}
	}
	if transfers == nil {
		transfers = []apitypes.RawTokenTransfer{}
	}
	return transfers
}

// accountRequest builds a module=account query. The api key is added after logURL is taken.
func (c *etherscanClientImpl) accountRequest(
	action, address string,
	timeout time.Duration,
	env *apitypes.EtherscanEnvelope,
	extra func(args *fasthttp.Args),
) request {
	args := fasthttp.AcquireArgs()
	defer fasthttp.ReleaseArgs(args)
	args.Set("module", "account")
	args.Set("action", action)
	args.Set("address", address)
	if extra != nil {
		extra(args)
	}
	logURL := c.opts.BaseURL + "?" + args.String()
	if c.opts.APIKey != "" {
		args.Set("apikey", c.opts.APIKey)
	}

	return request{
		endpoint: action,
		url:      c.opts.BaseURL + "?" + args.String(),
		logURL:   logURL,
		timeout:  timeout,
		check: func() error {
			if env.Status != etherscanStatusOK {
				var detail string
				_ = json.Unmarshal(env.Result, &detail)
				return fmt.Errorf("%w: etherscan %s status %q: %s %s", errSoftFailure, action, env.Status, env.Message, detail)
			}
			return nil
		},
	}
}
