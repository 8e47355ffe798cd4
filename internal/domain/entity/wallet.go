package entity

// AddressKind tells whether an address is a hex account or a name to be resolved upstream.
type AddressKind string

const (
	AddressKindAccount AddressKind = "account"
	AddressKindName    AddressKind = "name"
)

// WalletList is the persisted set of bookmarked and recently viewed wallets.
type WalletList struct {
	Bookmarked []string `json:"bookmarked"`
	Recent     []string `json:"recent"`
}
