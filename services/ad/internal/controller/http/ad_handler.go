package http

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"

	"coinpitch/services/ad/internal/entity"
	"coinpitch/services/ad/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdHandler struct {
	adUseCase usecase.AdUseCase
}

func NewAdHandler(adUseCase usecase.AdUseCase) *AdHandler {
	return &AdHandler{
		adUseCase: adUseCase,
	}
}

type SubmitAdRequest struct {
	Title       string `json:"title" binding:"required,min=3,max=200"`
	Description string `json:"description" binding:"max=2000"`
	TargetURL   string `json:"target_url" binding:"required,url"`
	CreativeURL string `json:"creative_url" binding:"omitempty,url"`
}

type SubmitAdResponse struct {
	Ad           *entity.Ad `json:"ad"`
	ChargeAmount string     `json:"charge_amount"`
}

type VoteResponse struct {
	AdID         string `json:"ad_id"`
	ChargeAmount string `json:"charge_amount"`
}

// SubmitAd godoc
// @Summary      Submit an ad
// @Description  Submit a new ad for moderation; returns the submission charge
// @Tags         ads
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body SubmitAdRequest true "Ad data"
// @Success      201  {object}  SubmitAdResponse
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /ads [post]
func (h *AdHandler) SubmitAd(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req SubmitAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ad, chargeAmount, err := h.adUseCase.SubmitAd(
		userID.(string), req.Title, req.Description, req.TargetURL, req.CreativeURL,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, SubmitAdResponse{
		Ad:           ad,
		ChargeAmount: chargeAmount,
	})
}

// ListAds godoc
// @Summary      List ads
// @Description  List ads, optionally filtered by status
// @Tags         ads
// @Produce      json
// @Param        status query string false "Ad status (pending/approved/rejected)"
// @Param        limit  query int    false "Max ads to return (default 20)"
// @Param        offset query int    false "Offset for pagination"
// @Success      200  {array}   entity.Ad
// @Failure      400  {object}  map[string]string
// @Router       /ads [get]
func (h *AdHandler) ListAds(c *gin.Context) {
	status := entity.AdStatus(c.Query("status"))
	switch status {
	case "", entity.StatusPending, entity.StatusApproved, entity.StatusRejected:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
		return
	}

	limit, offset := paginationParams(c)
	ads, err := h.adUseCase.ListAds(status, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list ads"})
		return
	}

	c.JSON(http.StatusOK, ads)
}

// GetAd godoc
// @Summary      Get ad by ID
// @Tags         ads
// @Produce      json
// @Param        id path string true "Ad ID"
// @Success      200  {object}  entity.Ad
// @Failure      404  {object}  map[string]string
// @Router       /ads/{id} [get]
func (h *AdHandler) GetAd(c *gin.Context) {
	ad, err := h.adUseCase.GetAd(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ad not found"})
		return
	}

	c.JSON(http.StatusOK, ad)
}

// MyAds godoc
// @Summary      List own ads
// @Description  List ads submitted by the current user
// @Tags         ads
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.Ad
// @Router       /ads/mine [get]
func (h *AdHandler) MyAds(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	limit, offset := paginationParams(c)
	ads, err := h.adUseCase.ListByAuthor(userID.(string), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list ads"})
		return
	}

	c.JSON(http.StatusOK, ads)
}

// Vote godoc
// @Summary      Vote on an ad
// @Description  Cast a vote for an approved ad; one vote per user per ad
// @Tags         ads
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Ad ID"
// @Success      200  {object}  VoteResponse
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /ads/{id}/vote [post]
func (h *AdHandler) Vote(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	adID := c.Param("id")
	chargeAmount, err := h.adUseCase.Vote(userID.(string), adID)
	if err != nil {
		switch err.Error() {
		case "ad not found":
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case "already voted":
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case "ad is not approved for voting":
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, VoteResponse{
		AdID:         adID,
		ChargeAmount: chargeAmount,
	})
}

// Approve godoc
// @Summary      Approve a pending ad
// @Tags         moderation
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Ad ID"
// @Success      200  {object}  entity.Ad
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /ads/{id}/approve [put]
func (h *AdHandler) Approve(c *gin.Context) {
	h.moderate(c, h.adUseCase.Approve)
}

// Reject godoc
// @Summary      Reject a pending ad
// @Tags         moderation
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Ad ID"
// @Success      200  {object}  entity.Ad
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /ads/{id}/reject [put]
func (h *AdHandler) Reject(c *gin.Context) {
	h.moderate(c, h.adUseCase.Reject)
}

func (h *AdHandler) moderate(c *gin.Context, action func(string) (*entity.Ad, error)) {
	ad, err := action(c.Param("id"))
	if err != nil {
		switch err.Error() {
		case "ad not found":
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case "ad already moderated":
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, ad)
}

// UploadCreative godoc
// @Summary      Upload ad creative
// @Description  Upload a creative image for an ad owned by the current user
// @Tags         ads
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Ad ID"
// @Param        creative formData file true "Creative image file"
// @Success      200  {object}  entity.Ad
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /ads/{id}/creative [post]
func (h *AdHandler) UploadCreative(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	file, err := c.FormFile("creative")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Creative file is required"})
		return
	}

	ext := filepath.Ext(file.Filename)
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" && ext != ".gif" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image format. Only jpg, jpeg, png, gif are allowed"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process file"})
		return
	}
	defer src.Close()

	fileKey := fmt.Sprintf("creatives/%s/%s%s", c.Param("id"), uuid.New().String(), ext)
	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	ad, err := h.adUseCase.UploadCreative(userID.(string), c.Param("id"), src, fileKey, contentType)
	if err != nil {
		switch err.Error() {
		case "ad not found":
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case "not the ad author":
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, ad)
}

func paginationParams(c *gin.Context) (int, int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 || limit > 100 {
		limit = 20
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}
