// Package normalizer turns raw upstream records into typed dashboard entities.
// Records that cannot be parsed are dropped whole; no partially filled entity is ever returned.
package normalizer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"wallet_tracker/internal/app/port"
	"wallet_tracker/internal/domain/entity"
	apitypes "wallet_tracker/internal/entity"
	"wallet_tracker/internal/pkg/utils"
)

const unknownTokenSymbol = "UNKNOWN"

// Normalizer converts raw upstream records. It only needs a logger to report skipped records.
type Normalizer struct {
	logger      port.Logger
	ipfsGateway string
	placeholder string
}

// New creates a Normalizer. gateway replaces the "ipfs://" scheme; placeholder stands in for
// missing or non-http NFT images.
func New(logger port.Logger, gateway, placeholder string) *Normalizer {
	if gateway == "" {
		gateway = DefaultIPFSGateway
	}
	return &Normalizer{logger: logger, ipfsGateway: gateway, placeholder: placeholder}
}

// Transactions converts txlist records, preserving their order.
func (n *Normalizer) Transactions(raw []apitypes.RawTransaction) []entity.Transaction {
	out := make([]entity.Transaction, 0, len(raw))
	for _, r := range raw {
		tx, err := toTransaction(r)
		if err != nil {
			n.logger.Warn("Skipping malformed transaction", "hash", r.Hash, "error", err)
			continue
		}
		out = append(out, tx)
	}
	return out
}

func toTransaction(r apitypes.RawTransaction) (entity.Transaction, error) {
	value, err := utils.WeiToEther(r.Value)
	if err != nil {
		return entity.Transaction{}, fmt.Errorf("value: %w", err)
	}
	gasUsed, err := strconv.ParseInt(strings.TrimSpace(r.GasUsed), 10, 64)
	if err != nil {
		return entity.Transaction{}, fmt.Errorf("gasUsed: %w", err)
	}
	ts, err := parseUnixSeconds(r.TimeStamp)
	if err != nil {
		return entity.Transaction{}, fmt.Errorf("timeStamp: %w", err)
	}
	return entity.Transaction{
		Hash:      r.Hash,
		From:      r.From,
		To:        r.To,
		Value:     value,
		GasUsed:   gasUsed,
		Timestamp: ts,
	}, nil
}

// TokenTransfers converts tokentx records. The counterparty is the side that is not wallet.
func (n *Normalizer) TokenTransfers(wallet string, raw []apitypes.RawTokenTransfer) []entity.TokenTransfer {
	out := make([]entity.TokenTransfer, 0, len(raw))
	for _, r := range raw {
		symbol := strings.TrimSpace(r.TokenSymbol)
		if symbol == "" {
			symbol = unknownTokenSymbol
		}
		counterparty := r.From
		if strings.EqualFold(r.From, wallet) {
			counterparty = r.To
		}
		// Timestamp only orders transfers; a bad value does not invalidate the count.
		ts, err := parseUnixSeconds(r.TimeStamp)
		if err != nil {
			n.logger.Debug("Token transfer without usable timestamp", "hash", r.Hash, "error", err)
		}
		out = append(out, entity.TokenTransfer{
			TokenSymbol:         symbol,
			CounterpartyAddress: counterparty,
			Timestamp:           ts,
		})
	}
	return out
}

func parseUnixSeconds(raw string) (time.Time, error) {
	secs, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(secs, 0).UTC(), nil
}
