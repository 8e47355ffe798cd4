package restapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wallet_tracker/internal/app/port"
	"wallet_tracker/internal/pkg/utils"
)

type bookmarkRequest struct {
	Address string `json:"address"`
}

// WalletHandler manages the bookmarked and recent wallet lists.
type WalletHandler struct {
	wallets port.WalletProvider
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(wallets port.WalletProvider) *WalletHandler {
	return &WalletHandler{wallets: wallets}
}

// List returns both lists.
// GET /api/v1/wallets
func (h *WalletHandler) List(c *gin.Context) {
	list, err := h.wallets.GetWallets()
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

// AddBookmark bookmarks an address.
// POST /api/v1/wallets/bookmarks
func (h *WalletHandler) AddBookmark(c *gin.Context) {
	var req bookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	addr, ok := utils.NormalizeAddress(req.Address)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "address must not be empty"})
		return
	}

	list, err := h.wallets.AddBookmark(addr)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

// RemoveBookmark removes an address from the bookmarks.
// DELETE /api/v1/wallets/bookmarks/:address
func (h *WalletHandler) RemoveBookmark(c *gin.Context) {
	addr, ok := utils.NormalizeAddress(c.Param("address"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "address must not be empty"})
		return
	}

	list, err := h.wallets.RemoveBookmark(addr)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}
