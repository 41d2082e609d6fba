package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	"coinpitch/pkg/logger"
	"coinpitch/pkg/s3"
	"coinpitch/services/ad/internal/entity"
	"coinpitch/services/ad/internal/repo/persistent"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const (
	adSubmissionFeeKey     = "fee_adSubmission"
	voteFeeKey             = "fee_vote"
	defaultAdSubmissionFee = "0.025"
	defaultVoteFee         = "0.005"

	voteDedupeTTL = 24 * time.Hour
)

type AdUseCase interface {
	SubmitAd(authorID, title, description, targetURL, creativeURL string) (*entity.Ad, string, error)
	GetAd(adID string) (*entity.Ad, error)
	ListAds(status entity.AdStatus, limit, offset int) ([]*entity.Ad, error)
	ListByAuthor(authorID string, limit, offset int) ([]*entity.Ad, error)
	Vote(userID, adID string) (string, error)
	Approve(adID string) (*entity.Ad, error)
	Reject(adID string) (*entity.Ad, error)
	UploadCreative(authorID, adID string, fileReader io.Reader, fileKey, contentType string) (*entity.Ad, error)
}

type adUseCase struct {
	adRepo       persistent.AdRepository
	voteRepo     persistent.VoteRepository
	settingsRepo persistent.SettingsReader
	redisClient  *redis.Client
	s3Client     *s3.Client
	logger       *logger.Logger
}

func NewAdUseCase(
	adRepo persistent.AdRepository,
	voteRepo persistent.VoteRepository,
	settingsRepo persistent.SettingsReader,
	redisClient *redis.Client,
	s3Client *s3.Client,
	logger *logger.Logger,
) AdUseCase {
	return &adUseCase{
		adRepo:       adRepo,
		voteRepo:     voteRepo,
		settingsRepo: settingsRepo,
		redisClient:  redisClient,
		s3Client:     s3Client,
		logger:       logger,
	}
}

func (uc *adUseCase) SubmitAd(authorID, title, description, targetURL, creativeURL string) (*entity.Ad, string, error) {
	ad := &entity.Ad{
		AuthorID:    authorID,
		Title:       title,
		Description: description,
		TargetURL:   targetURL,
		CreativeURL: creativeURL,
		Status:      entity.StatusPending,
	}

	if err := uc.adRepo.Create(ad); err != nil {
		uc.logger.Error("Failed to create ad: %v", err)
		return nil, "", fmt.Errorf("failed to create ad")
	}

	return ad, uc.feeAmount(adSubmissionFeeKey, defaultAdSubmissionFee), nil
}

func (uc *adUseCase) GetAd(adID string) (*entity.Ad, error) {
	return uc.adRepo.GetByID(adID)
}

func (uc *adUseCase) ListAds(status entity.AdStatus, limit, offset int) ([]*entity.Ad, error) {
	return uc.adRepo.List(status, limit, offset)
}

func (uc *adUseCase) ListByAuthor(authorID string, limit, offset int) ([]*entity.Ad, error) {
	return uc.adRepo.ListByAuthor(authorID, limit, offset)
}

func (uc *adUseCase) Vote(userID, adID string) (string, error) {
	ad, err := uc.adRepo.GetByID(adID)
	if err != nil {
		return "", fmt.Errorf("ad not found")
	}
	if ad.Status != entity.StatusApproved {
		return "", fmt.Errorf("ad is not approved for voting")
	}

	// Redis short-circuits repeat votes; the unique index on
	// (ad_id, user_id) is the authority.
	if uc.redisClient != nil {
		ctx := context.Background()
		dedupeKey := fmt.Sprintf("ad:vote:%s:%s", adID, userID)
		set, err := uc.redisClient.SetNX(ctx, dedupeKey, "1", voteDedupeTTL).Result()
		if err == nil && !set {
			return "", fmt.Errorf("already voted")
		}
	}

	voted, err := uc.voteRepo.HasVoted(adID, userID)
	if err != nil {
		uc.logger.Error("Failed to check vote status: %v", err)
		return "", fmt.Errorf("failed to check vote status")
	}
	if voted {
		return "", fmt.Errorf("already voted")
	}

	vote := &entity.Vote{AdID: adID, UserID: userID}
	if err := uc.voteRepo.Create(vote); err != nil {
		uc.logger.Error("Failed to create vote: %v", err)
		return "", fmt.Errorf("failed to vote")
	}

	return uc.feeAmount(voteFeeKey, defaultVoteFee), nil
}

func (uc *adUseCase) Approve(adID string) (*entity.Ad, error) {
	return uc.moderate(adID, entity.StatusApproved)
}

func (uc *adUseCase) Reject(adID string) (*entity.Ad, error) {
	return uc.moderate(adID, entity.StatusRejected)
}

func (uc *adUseCase) moderate(adID string, status entity.AdStatus) (*entity.Ad, error) {
	ad, err := uc.adRepo.GetByID(adID)
	if err != nil {
		return nil, fmt.Errorf("ad not found")
	}
	if ad.Status != entity.StatusPending {
		return nil, fmt.Errorf("ad already moderated")
	}

	if err := uc.adRepo.UpdateStatus(adID, status); err != nil {
		uc.logger.Error("Failed to update ad status: %v", err)
		return nil, fmt.Errorf("failed to update ad status")
	}

	ad.Status = status
	return ad, nil
}

func (uc *adUseCase) UploadCreative(authorID, adID string, fileReader io.Reader, fileKey, contentType string) (*entity.Ad, error) {
	ad, err := uc.adRepo.GetByID(adID)
	if err != nil {
		return nil, fmt.Errorf("ad not found")
	}
	if ad.AuthorID != authorID {
		return nil, fmt.Errorf("not the ad author")
	}

	creativeURL, err := uc.s3Client.Upload(fileKey, fileReader, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload creative: %v", err)
		return nil, fmt.Errorf("failed to upload creative")
	}

	if err := uc.adRepo.UpdateCreativeURL(adID, creativeURL); err != nil {
		uc.logger.Error("Failed to update creative URL: %v", err)
		return nil, fmt.Errorf("failed to update ad")
	}

	ad.CreativeURL = creativeURL
	return ad, nil
}

func (uc *adUseCase) feeAmount(key, fallback string) string {
	value := fallback
	if uc.settingsRepo != nil {
		if stored, err := uc.settingsRepo.GetValue(key); err == nil {
			value = stored
		}
	}

	amount, err := decimal.NewFromString(value)
	if err != nil {
		amount, _ = decimal.NewFromString(fallback)
	}
	return amount.StringFixed(6)
}
