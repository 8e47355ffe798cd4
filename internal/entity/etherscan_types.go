package entity

import jsoniter "github.com/json-iterator/go"

// EtherscanEnvelope is the common response wrapper of the Etherscan account module.
// Result is an array on success but a plain string when Status is "0".
type EtherscanEnvelope struct {
	Status  string              `json:"status"`
	Message string              `json:"message"`
	Result  jsoniter.RawMessage `json:"result"`
}

// RawTransaction is a txlist entry as delivered by Etherscan. All numbers are decimal strings.
type RawTransaction struct {
	BlockNumber string `json:"blockNumber"`
	TimeStamp   string `json:"timeStamp"`
	Hash        string `json:"hash"`
	From        string `json:"from"`
	To          string `json:"to"`
	Value       string `json:"value"`
	Gas         string `json:"gas"`
	GasPrice    string `json:"gasPrice"`
	GasUsed     string `json:"gasUsed"`
	IsError     string `json:"isError"`
}

// RawTokenTransfer is a tokentx entry as delivered by Etherscan.
type RawTokenTransfer struct {
	TimeStamp       string `json:"timeStamp"`
	Hash            string `json:"hash"`
	From            string `json:"from"`
	To              string `json:"to"`
	ContractAddress string `json:"contractAddress"`
	Value           string `json:"value"`
	TokenName       string `json:"tokenName"`
	TokenSymbol     string `json:"tokenSymbol"`
	TokenDecimal    string `json:"tokenDecimal"`
}
