package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"coinpitch/pkg/logger"
	"coinpitch/services/ad/internal/entity"
	"coinpitch/services/ad/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeAdRepo struct {
	ads    map[string]*entity.Ad
	nextID int
}

func newFakeAdRepo() *fakeAdRepo {
	return &fakeAdRepo{ads: make(map[string]*entity.Ad)}
}

func (r *fakeAdRepo) Create(ad *entity.Ad) error {
	r.nextID++
	ad.ID = fmt.Sprintf("ad-%d", r.nextID)
	ad.CreatedAt = time.Now()
	copied := *ad
	r.ads[ad.ID] = &copied
	return nil
}

func (r *fakeAdRepo) GetByID(id string) (*entity.Ad, error) {
	if ad, ok := r.ads[id]; ok {
		copied := *ad
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAdRepo) List(status entity.AdStatus, limit, offset int) ([]*entity.Ad, error) {
	var ads []*entity.Ad
	for _, ad := range r.ads {
		if status == "" || ad.Status == status {
			copied := *ad
			ads = append(ads, &copied)
		}
	}
	return ads, nil
}

func (r *fakeAdRepo) ListByAuthor(authorID string, limit, offset int) ([]*entity.Ad, error) {
	var ads []*entity.Ad
	for _, ad := range r.ads {
		if ad.AuthorID == authorID {
			copied := *ad
			ads = append(ads, &copied)
		}
	}
	return ads, nil
}

func (r *fakeAdRepo) UpdateStatus(id string, status entity.AdStatus) error {
	ad, ok := r.ads[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	ad.Status = status
	return nil
}

func (r *fakeAdRepo) UpdateCreativeURL(id, creativeURL string) error {
	ad, ok := r.ads[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	ad.CreativeURL = creativeURL
	return nil
}

type fakeVoteRepo struct {
	votes map[string]bool
}

func newFakeVoteRepo() *fakeVoteRepo {
	return &fakeVoteRepo{votes: make(map[string]bool)}
}

func (r *fakeVoteRepo) Create(vote *entity.Vote) error {
	key := vote.AdID + ":" + vote.UserID
	if r.votes[key] {
		return gorm.ErrDuplicatedKey
	}
	r.votes[key] = true
	vote.ID = key
	vote.CreatedAt = time.Now()
	return nil
}

func (r *fakeVoteRepo) HasVoted(adID, userID string) (bool, error) {
	return r.votes[adID+":"+userID], nil
}

func (r *fakeVoteRepo) CountForAd(adID string) (int64, error) {
	return 0, nil
}

type fakeSettingsReader struct{}

func (fakeSettingsReader) GetValue(key string) (string, error) {
	return "", gorm.ErrRecordNotFound
}

func setupAdRouter(t *testing.T) (*gin.Engine, *fakeAdRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	adRepo := newFakeAdRepo()
	adUseCase := usecase.NewAdUseCase(
		adRepo, newFakeVoteRepo(), fakeSettingsReader{}, nil, nil, logger.New(),
	)
	handler := NewAdHandler(adUseCase)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID := c.GetHeader("X-Test-User"); userID != "" {
			c.Set("user_id", userID)
		}
	})
	r.GET("/api/v1/ads", handler.ListAds)
	r.GET("/api/v1/ads/:id", handler.GetAd)
	r.GET("/api/v1/ads/mine", handler.MyAds)
	r.POST("/api/v1/ads", handler.SubmitAd)
	r.POST("/api/v1/ads/:id/vote", handler.Vote)
	r.PUT("/api/v1/ads/:id/approve", handler.Approve)
	r.PUT("/api/v1/ads/:id/reject", handler.Reject)
	return r, adRepo
}

func doJSON(t *testing.T, r *gin.Engine, method, path, userID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-Test-User", userID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitAdEndpoint(t *testing.T) {
	r, _ := setupAdRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/ads", "author-1", gin.H{
		"title":      "My token",
		"target_url": "https://example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp SubmitAdResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, entity.StatusPending, resp.Ad.Status)
	assert.Equal(t, "0.025000", resp.ChargeAmount)
}

func TestSubmitAdEndpointValidation(t *testing.T) {
	r, _ := setupAdRouter(t)

	// Missing target_url
	w := doJSON(t, r, http.MethodPost, "/api/v1/ads", "author-1", gin.H{"title": "My token"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Invalid URL
	w = doJSON(t, r, http.MethodPost, "/api/v1/ads", "author-1", gin.H{
		"title": "My token", "target_url": "not-a-url",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// No authenticated user
	w = doJSON(t, r, http.MethodPost, "/api/v1/ads", "", gin.H{
		"title": "My token", "target_url": "https://example.com",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVoteEndpoint(t *testing.T) {
	r, _ := setupAdRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/ads", "author-1", gin.H{
		"title": "My token", "target_url": "https://example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp SubmitAdResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	adID := resp.Ad.ID

	// Pending ad cannot be voted on
	w = doJSON(t, r, http.MethodPost, "/api/v1/ads/"+adID+"/vote", "voter-1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/v1/ads/"+adID+"/approve", "admin-1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/ads/"+adID+"/vote", "voter-1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var voteResp VoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &voteResp))
	assert.Equal(t, "0.005000", voteResp.ChargeAmount)
	assert.Equal(t, adID, voteResp.AdID)

	// Duplicate vote
	w = doJSON(t, r, http.MethodPost, "/api/v1/ads/"+adID+"/vote", "voter-1", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Unknown ad
	w = doJSON(t, r, http.MethodPost, "/api/v1/ads/missing/vote", "voter-1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestModerationEndpoints(t *testing.T) {
	r, _ := setupAdRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/ads", "author-1", gin.H{
		"title": "My token", "target_url": "https://example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp SubmitAdResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	adID := resp.Ad.ID

	w = doJSON(t, r, http.MethodPut, "/api/v1/ads/"+adID+"/reject", "admin-1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var ad entity.Ad
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ad))
	assert.Equal(t, entity.StatusRejected, ad.Status)

	// Moderating twice conflicts
	w = doJSON(t, r, http.MethodPut, "/api/v1/ads/"+adID+"/approve", "admin-1", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/v1/ads/missing/approve", "admin-1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListAdsEndpoint(t *testing.T) {
	r, _ := setupAdRouter(t)

	for i := 0; i < 3; i++ {
		w := doJSON(t, r, http.MethodPost, "/api/v1/ads", "author-1", gin.H{
			"title":      fmt.Sprintf("Ad %d", i),
			"target_url": "https://example.com",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/api/v1/ads?status=pending", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var ads []*entity.Ad
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ads))
	assert.Len(t, ads, 3)

	w = doJSON(t, r, http.MethodGet, "/api/v1/ads?status=bogus", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/ads/mine", "author-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ads))
	assert.Len(t, ads, 3)
}
