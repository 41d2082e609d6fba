package persistent

import (
	"coinpitch/services/ad/internal/entity"
	"coinpitch/services/ad/internal/model"

	"gorm.io/gorm"
)

type VoteRepository interface {
	Create(vote *entity.Vote) error
	HasVoted(adID, userID string) (bool, error)
	CountForAd(adID string) (int64, error)
}

type voteRepository struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepository{db: db}
}

func (r *voteRepository) Create(vote *entity.Vote) error {
	voteModel := ToVoteModel(vote)
	if err := r.db.Create(voteModel).Error; err != nil {
		return err
	}
	vote.ID = voteModel.ID
	vote.CreatedAt = voteModel.CreatedAt
	return nil
}

func (r *voteRepository) HasVoted(adID, userID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.VoteModel{}).
		Where("ad_id = ? AND user_id = ?", adID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *voteRepository) CountForAd(adID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.VoteModel{}).Where("ad_id = ?", adID).Count(&count).Error
	return count, err
}
