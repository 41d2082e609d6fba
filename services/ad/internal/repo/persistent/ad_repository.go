package persistent

import (
	"coinpitch/services/ad/internal/entity"
	"coinpitch/services/ad/internal/model"

	"gorm.io/gorm"
)

type AdRepository interface {
	Create(ad *entity.Ad) error
	GetByID(id string) (*entity.Ad, error)
	List(status entity.AdStatus, limit, offset int) ([]*entity.Ad, error)
	ListByAuthor(authorID string, limit, offset int) ([]*entity.Ad, error)
	UpdateStatus(id string, status entity.AdStatus) error
	UpdateCreativeURL(id, creativeURL string) error
}

type adRepository struct {
	db *gorm.DB
}

func NewAdRepository(db *gorm.DB) AdRepository {
	return &adRepository{db: db}
}

func (r *adRepository) Create(ad *entity.Ad) error {
	adModel := ToAdModel(ad)
	if err := r.db.Create(adModel).Error; err != nil {
		return err
	}
	ad.ID = adModel.ID
	ad.CreatedAt = adModel.CreatedAt
	return nil
}

func (r *adRepository) GetByID(id string) (*entity.Ad, error) {
	var adModel model.AdModel
	if err := r.db.Where("id = ?", id).First(&adModel).Error; err != nil {
		return nil, err
	}

	ad := ToAdEntity(&adModel)
	if err := r.countVotes(ad); err != nil {
		return nil, err
	}
	return ad, nil
}

func (r *adRepository) List(status entity.AdStatus, limit, offset int) ([]*entity.Ad, error) {
	query := r.db.Order("created_at DESC").Limit(limit).Offset(offset)
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	var adModels []model.AdModel
	if err := query.Find(&adModels).Error; err != nil {
		return nil, err
	}

	ads := make([]*entity.Ad, 0, len(adModels))
	for i := range adModels {
		ad := ToAdEntity(&adModels[i])
		if err := r.countVotes(ad); err != nil {
			return nil, err
		}
		ads = append(ads, ad)
	}
	return ads, nil
}

func (r *adRepository) ListByAuthor(authorID string, limit, offset int) ([]*entity.Ad, error) {
	var adModels []model.AdModel
	err := r.db.Where("author_id = ?", authorID).
		Order("created_at DESC").Limit(limit).Offset(offset).
		Find(&adModels).Error
	if err != nil {
		return nil, err
	}

	ads := make([]*entity.Ad, 0, len(adModels))
	for i := range adModels {
		ad := ToAdEntity(&adModels[i])
		if err := r.countVotes(ad); err != nil {
			return nil, err
		}
		ads = append(ads, ad)
	}
	return ads, nil
}

func (r *adRepository) UpdateStatus(id string, status entity.AdStatus) error {
	result := r.db.Model(&model.AdModel{}).Where("id = ?", id).Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *adRepository) UpdateCreativeURL(id, creativeURL string) error {
	result := r.db.Model(&model.AdModel{}).Where("id = ?", id).Update("creative_url", creativeURL)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *adRepository) countVotes(ad *entity.Ad) error {
	var count int64
	if err := r.db.Model(&model.VoteModel{}).Where("ad_id = ?", ad.ID).Count(&count).Error; err != nil {
		return err
	}
	ad.VoteCount = count
	return nil
}
