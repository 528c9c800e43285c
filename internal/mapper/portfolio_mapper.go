package mapper

import (
	"photo-portfolio-be/internal/entity"
	"photo-portfolio-be/internal/model"
)

type PhotographerMapper struct{}

func NewPhotographerMapper() *PhotographerMapper {
	return &PhotographerMapper{}
}

func (m *PhotographerMapper) ToEntity(p *model.Photographer) *entity.Photographer {
	if p == nil {
		return nil
	}
	return &entity.Photographer{
		Id:        p.Id,
		Name:      p.Name,
		Bio:       p.Bio,
		CreatedAt: p.CreatedAt,
	}
}

func (m *PhotographerMapper) ToModel(p *entity.Photographer) *model.Photographer {
	if p == nil {
		return nil
	}
	return &model.Photographer{
		Id:        p.Id,
		Name:      p.Name,
		Bio:       p.Bio,
		CreatedAt: p.CreatedAt,
	}
}

type ShotMapper struct{}

func NewShotMapper() *ShotMapper {
	return &ShotMapper{}
}

func (m *ShotMapper) ToEntity(s *model.Shot) *entity.Shot {
	if s == nil {
		return nil
	}
	return &entity.Shot{
		Id:        s.Id,
		Title:     s.Title,
		Filename:  s.Filename,
		Caption:   s.Caption,
		CreatedAt: s.CreatedAt,
	}
}

func (m *ShotMapper) ToModel(s *entity.Shot) *model.Shot {
	if s == nil {
		return nil
	}
	return &model.Shot{
		Id:        s.Id,
		Title:     s.Title,
		Filename:  s.Filename,
		Caption:   s.Caption,
		CreatedAt: s.CreatedAt,
	}
}

func (m *ShotMapper) ToEntities(shots []*model.Shot) []*entity.Shot {
	entities := make([]*entity.Shot, len(shots))
	for i, s := range shots {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
