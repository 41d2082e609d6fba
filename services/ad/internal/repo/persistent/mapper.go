package persistent

import (
	"coinpitch/services/ad/internal/entity"
	"coinpitch/services/ad/internal/model"
)

func ToAdEntity(m *model.AdModel) *entity.Ad {
	if m == nil {
		return nil
	}

	return &entity.Ad{
		ID:          m.ID,
		AuthorID:    m.AuthorID,
		Title:       m.Title,
		Description: m.Description,
		TargetURL:   m.TargetURL,
		CreativeURL: m.CreativeURL,
		Status:      entity.AdStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToAdModel(e *entity.Ad) *model.AdModel {
	if e == nil {
		return nil
	}

	return &model.AdModel{
		ID:          e.ID,
		AuthorID:    e.AuthorID,
		Title:       e.Title,
		Description: e.Description,
		TargetURL:   e.TargetURL,
		CreativeURL: e.CreativeURL,
		Status:      string(e.Status),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToVoteModel(e *entity.Vote) *model.VoteModel {
	if e == nil {
		return nil
	}

	return &model.VoteModel{
		ID:        e.ID,
		AdID:      e.AdID,
		UserID:    e.UserID,
		CreatedAt: e.CreatedAt,
	}
}
