package http

import (
	"net/http"
	"strings"

	"coinpitch/pkg/logger"
	"coinpitch/services/tokenomics/internal/entity"
	"coinpitch/services/tokenomics/internal/repo/persistent"
	"coinpitch/services/tokenomics/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// WebhookHandler accepts external blockchain-transfer notifications and
// forwards them to the processor. The payload is NOT cryptographically
// verified; do not expose this endpoint without an upstream trust boundary.
type WebhookHandler struct {
	processor *usecase.TransactionProcessor
	feeCalc   *usecase.FeeCalculator
	userRepo  persistent.UserRepository
	logger    *logger.Logger
}

func NewWebhookHandler(
	processor *usecase.TransactionProcessor,
	feeCalc *usecase.FeeCalculator,
	userRepo persistent.UserRepository,
	logger *logger.Logger,
) *WebhookHandler {
	return &WebhookHandler{
		processor: processor,
		feeCalc:   feeCalc,
		userRepo:  userRepo,
		logger:    logger,
	}
}

type WebhookRequest struct {
	TransactionHash string `json:"transactionHash"`
	Amount          string `json:"amount"`
	Sender          string `json:"sender"`
	Recipient       string `json:"recipient"`
	TransactionType string `json:"transactionType"`
	UserID          string `json:"userId"`
}

type WebhookResponse struct {
	Success     bool                `json:"success"`
	Message     string              `json:"message"`
	Transaction *entity.Transaction `json:"transaction,omitempty"`
}

// HandleTransaction godoc
// @Summary      Transaction webhook
// @Description  Records an externally notified transfer to the platform wallet
// @Tags         tokenomics
// @Accept       json
// @Produce      json
// @Param        request body WebhookRequest true "Transaction notification"
// @Success      200  {object}  WebhookResponse
// @Failure      400  {object}  WebhookResponse
// @Router       /tokenomics/webhook [post]
func (h *WebhookHandler) HandleTransaction(c *gin.Context) {
	var req WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, WebhookResponse{Success: false, Message: "invalid request body"})
		return
	}

	if req.TransactionHash == "" || req.Amount == "" || req.Sender == "" || req.Recipient == "" || req.TransactionType == "" {
		c.JSON(http.StatusBadRequest, WebhookResponse{
			Success: false,
			Message: "transactionHash, amount, sender, recipient and transactionType are required",
		})
		return
	}

	if !strings.EqualFold(req.Recipient, h.feeCalc.PlatformWallet()) {
		c.JSON(http.StatusBadRequest, WebhookResponse{
			Success: false,
			Message: "recipient does not match the platform wallet",
		})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || !amount.IsPositive() {
		c.JSON(http.StatusBadRequest, WebhookResponse{Success: false, Message: "amount must be a positive decimal"})
		return
	}

	txType, err := entity.ParseTransactionType(req.TransactionType)
	if err != nil {
		c.JSON(http.StatusBadRequest, WebhookResponse{Success: false, Message: err.Error()})
		return
	}

	userID := req.UserID
	if userID == "" {
		user, err := h.userRepo.GetOrCreateByUsername(entity.FallbackUsername)
		if err != nil {
			h.logger.Error("Failed to resolve fallback user: %v", err)
			c.JSON(http.StatusInternalServerError, WebhookResponse{Success: false, Message: "failed to resolve user"})
			return
		}
		userID = user.ID
	}

	transaction, err := h.processor.Process(userID, amount, txType, req.TransactionHash)
	if err != nil {
		h.logger.Error("Webhook transaction failed: %v", err)
		c.JSON(http.StatusInternalServerError, WebhookResponse{Success: false, Message: "failed to process transaction"})
		return
	}

	c.JSON(http.StatusOK, WebhookResponse{
		Success:     true,
		Message:     "transaction recorded",
		Transaction: transaction,
	})
}
