package entity

// NFTItem is a displayable NFT card.
type NFTItem struct {
	Image  string `json:"image"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}
