package entity

import (
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// RawTokenBalance is an ERC-20 balance entry from the Moralis indexer.
type RawTokenBalance struct {
	TokenAddress string      `json:"token_address"`
	Name         string      `json:"name"`
	Symbol       string      `json:"symbol"`
	Logo         string      `json:"logo"`
	Decimals     FlexibleInt `json:"decimals"`
	Balance      string      `json:"balance"`
	PossibleSpam bool        `json:"possible_spam"`
}

// MoralisNFTPage wraps the NFT holdings response.
type MoralisNFTPage struct {
	Total  *int     `json:"total"`
	Cursor string   `json:"cursor"`
	Result []RawNFT `json:"result"`
}

// RawNFT is an NFT holding. Metadata is either a JSON object, a string holding JSON, or null.
type RawNFT struct {
	TokenAddress string              `json:"token_address"`
	TokenID      string              `json:"token_id"`
	ContractType string              `json:"contract_type"`
	Name         string              `json:"name"`
	Symbol       string              `json:"symbol"`
	Metadata     jsoniter.RawMessage `json:"metadata"`
}

// NFTMetadata is the subset of token metadata the dashboard shows.
type NFTMetadata struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// FlexibleInt accepts a JSON number or a numeric string.
type FlexibleInt int64

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexibleInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	*f = FlexibleInt(v)
	return nil
}
