package normalizer

import (
	"bytes"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"wallet_tracker/internal/domain/entity"
	apitypes "wallet_tracker/internal/entity"
)

const (
	// DefaultIPFSGateway replaces the ipfs:// scheme in NFT image URLs.
	DefaultIPFSGateway = "https://ipfs.io/ipfs/"
	ipfsScheme         = "ipfs://"
	defaultNFTSymbol   = "NFT"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// NFTs builds display cards. Items whose metadata is missing or cannot be decoded are skipped
// without affecting the rest of the list.
func (n *Normalizer) NFTs(raw []apitypes.RawNFT) []entity.NFTItem {
	out := make([]entity.NFTItem, 0, len(raw))
	for _, r := range raw {
		meta, ok := decodeMetadata(r.Metadata)
		if !ok {
			n.logger.Debug("Skipping NFT without usable metadata", "token_address", r.TokenAddress, "token_id", r.TokenID)
			continue
		}

		name := meta.Name
		if name == "" {
			name = r.TokenID
		}
		symbol := r.Name
		if symbol == "" {
			symbol = defaultNFTSymbol
		}
		out = append(out, entity.NFTItem{
			Image:  n.NormalizeImage(meta.Image),
			Name:   name,
			Symbol: symbol,
		})
	}
	return out
}

// NormalizeImage rewrites ipfs:// links to the gateway and replaces anything that is not an
// http(s) URL with the placeholder.
func (n *Normalizer) NormalizeImage(image string) string {
	image = strings.TrimSpace(image)
	if strings.HasPrefix(image, ipfsScheme) {
		image = n.ipfsGateway + strings.TrimPrefix(image, ipfsScheme)
	}
	if image == "" || !strings.HasPrefix(image, "http") {
		return n.placeholder
	}
	return image
}

// decodeMetadata accepts an object or a string holding an object.
func decodeMetadata(raw jsoniter.RawMessage) (apitypes.NFTMetadata, bool) {
	var meta apitypes.NFTMetadata
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return meta, false
	}

	if trimmed[0] == '"' {
		var inner string
		if err := json.Unmarshal(trimmed, &inner); err != nil || strings.TrimSpace(inner) == "" {
			return meta, false
		}
		trimmed = []byte(inner)
	}
	if err := json.Unmarshal(trimmed, &meta); err != nil {
		return meta, false
	}
	return meta, true
}
