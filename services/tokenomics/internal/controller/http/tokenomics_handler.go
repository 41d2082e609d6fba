package http

import (
	"net/http"
	"strconv"

	"coinpitch/pkg/logger"
	"coinpitch/services/tokenomics/internal/entity"
	"coinpitch/services/tokenomics/internal/usecase"

	"github.com/gin-gonic/gin"
)

type TokenomicsHandler struct {
	overviewUseCase *usecase.OverviewUseCase
	settingsUseCase *usecase.SettingsUseCase
	simulator       *usecase.Simulator
	logger          *logger.Logger
}

func NewTokenomicsHandler(
	overviewUseCase *usecase.OverviewUseCase,
	settingsUseCase *usecase.SettingsUseCase,
	simulator *usecase.Simulator,
	logger *logger.Logger,
) *TokenomicsHandler {
	return &TokenomicsHandler{
		overviewUseCase: overviewUseCase,
		settingsUseCase: settingsUseCase,
		simulator:       simulator,
		logger:          logger,
	}
}

// GetOverview godoc
// @Summary      Tokenomics overview
// @Description  Platform-wide fee totals, founder profit and distribution table
// @Tags         tokenomics
// @Produce      json
// @Success      200  {object}  entity.TokenomicsOverview
// @Router       /tokenomics [get]
func (h *TokenomicsHandler) GetOverview(c *gin.Context) {
	overview, err := h.overviewUseCase.Overview()
	if err != nil {
		h.logger.Error("Failed to build overview: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build overview"})
		return
	}

	c.JSON(http.StatusOK, overview)
}

// GetTransactions godoc
// @Summary      List transactions
// @Description  Recent ledger entries, optionally filtered by type
// @Tags         tokenomics
// @Produce      json
// @Param        type   query  string  false  "Transaction type"
// @Param        limit  query  int     false  "Number of transactions"
// @Success      200  {object}  map[string]interface{}
// @Router       /tokenomics/transactions [get]
func (h *TokenomicsHandler) GetTransactions(c *gin.Context) {
	if typeParam := c.Query("type"); typeParam != "" {
		txType, err := entity.ParseTransactionType(typeParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		transactions, err := h.overviewUseCase.TransactionsByType(txType)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get transactions"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"transactions": transactions, "count": len(transactions)})
		return
	}

	limit := 50
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 200 {
			limit = l
		}
	}

	transactions, err := h.overviewUseCase.RecentTransactions(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get transactions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": transactions, "count": len(transactions)})
}

type SimulateRequest struct {
	Count int `json:"count" binding:"required,min=1,max=1000"`
}

// Simulate godoc
// @Summary      Run transaction simulation
// @Description  Creates count synthetic ad payments and 2*count votes for the test user
// @Tags         tokenomics
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body SimulateRequest true "Simulation size"
// @Success      200  {object}  entity.SimulationReport
// @Router       /tokenomics/simulate [post]
func (h *TokenomicsHandler) Simulate(c *gin.Context) {
	var req SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.simulator.Run(req.Count)
	if err != nil {
		h.logger.Error("Simulation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "simulation failed"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetSettings godoc
// @Summary      List settings
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /tokenomics/settings [get]
func (h *TokenomicsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsUseCase.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": settings, "count": len(settings)})
}

type UpdateSettingRequest struct {
	Key         string `json:"key" binding:"required"`
	Value       string `json:"value" binding:"required"`
	Description string `json:"description"`
}

// UpdateSetting godoc
// @Summary      Create or update a setting
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body UpdateSettingRequest true "Setting"
// @Success      200  {object}  entity.Setting
// @Router       /tokenomics/settings [put]
func (h *TokenomicsHandler) UpdateSetting(c *gin.Context) {
	var req UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	setting, err := h.settingsUseCase.Update(req.Key, req.Value, req.Description)
	if err != nil {
		h.logger.Error("Failed to update setting: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update setting"})
		return
	}

	c.JSON(http.StatusOK, setting)
}
