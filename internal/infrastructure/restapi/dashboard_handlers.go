package restapi

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"wallet_tracker/internal/app/port"
)

// DashboardHandler serves the per-wallet dashboard sections.
type DashboardHandler struct {
	service port.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(service port.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// GetOverview returns the native balance and its USD value.
// GET /api/v1/wallets/:address/overview
func (h *DashboardHandler) GetOverview(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Overview(c.Request.Context(), addressParam(c)))
}

// GetTokens returns displayable ERC-20 balances with USD valuation.
// GET /api/v1/wallets/:address/tokens
func (h *DashboardHandler) GetTokens(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Tokens(c.Request.Context(), addressParam(c)))
}

// GetNFTs returns the NFT gallery.
// GET /api/v1/wallets/:address/nfts
func (h *DashboardHandler) GetNFTs(c *gin.Context) {
	items := h.service.NFTs(c.Request.Context(), addressParam(c))
	c.JSON(http.StatusOK, gin.H{"count": len(items), "items": items})
}

// GetTransactions returns filtered transactions plus the top transactions by value.
// GET /api/v1/wallets/:address/transactions
func (h *DashboardHandler) GetTransactions(c *gin.Context) {
	filter, err := parseTransactionFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.service.Transactions(c.Request.Context(), addressParam(c), filter))
}

// ExportTransactions returns the filtered transactions as a CSV attachment.
// GET /api/v1/wallets/:address/transactions/export
func (h *DashboardHandler) ExportTransactions(c *gin.Context) {
	filter, err := parseTransactionFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view := h.service.Transactions(c.Request.Context(), addressParam(c), filter)

	var buf bytes.Buffer
	if err := writeTransactionsCSV(&buf, view.Filtered); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode csv"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", csvFileName))
	c.Data(http.StatusOK, csvContentType, buf.Bytes())
}

// GetGas returns gas statistics for the optional date range.
// GET /api/v1/wallets/:address/gas
func (h *DashboardHandler) GetGas(c *gin.Context) {
	from, to, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.service.Gas(c.Request.Context(), addressParam(c), from, to))
}

// GetAnalytics returns activity analytics.
// GET /api/v1/wallets/:address/analytics
func (h *DashboardHandler) GetAnalytics(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Analytics(c.Request.Context(), addressParam(c)))
}
