package mapper

import (
	"photo-portfolio-be/internal/entity"
	"photo-portfolio-be/internal/model"
)

type ContactMessageMapper struct{}

func NewContactMessageMapper() *ContactMessageMapper {
	return &ContactMessageMapper{}
}

func (m *ContactMessageMapper) ToEntity(c *model.ContactMessage) *entity.ContactMessage {
	if c == nil {
		return nil
	}
	return &entity.ContactMessage{
		Id:        c.Id,
		Name:      c.Name,
		Email:     c.Email,
		Message:   c.Message,
		CreatedAt: c.CreatedAt,
	}
}

func (m *ContactMessageMapper) ToModel(c *entity.ContactMessage) *model.ContactMessage {
	if c == nil {
		return nil
	}
	return &model.ContactMessage{
		Id:        c.Id,
		Name:      c.Name,
		Email:     c.Email,
		Message:   c.Message,
		CreatedAt: c.CreatedAt,
	}
}

func (m *ContactMessageMapper) ToEntities(messages []*model.ContactMessage) []*entity.ContactMessage {
	entities := make([]*entity.ContactMessage, len(messages))
	for i, c := range messages {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

type ScheduleRequestMapper struct{}

func NewScheduleRequestMapper() *ScheduleRequestMapper {
	return &ScheduleRequestMapper{}
}

func (m *ScheduleRequestMapper) ToEntity(s *model.ScheduleRequest) *entity.ScheduleRequest {
	if s == nil {
		return nil
	}
	return &entity.ScheduleRequest{
		Id:            s.Id,
		ClientName:    s.ClientName,
		Email:         s.Email,
		PreferredDate: s.PreferredDate,
		Notes:         s.Notes,
		CreatedAt:     s.CreatedAt,
	}
}

func (m *ScheduleRequestMapper) ToModel(s *entity.ScheduleRequest) *model.ScheduleRequest {
	if s == nil {
		return nil
	}
	return &model.ScheduleRequest{
		Id:            s.Id,
		ClientName:    s.ClientName,
		Email:         s.Email,
		PreferredDate: s.PreferredDate,
		Notes:         s.Notes,
		CreatedAt:     s.CreatedAt,
	}
}

func (m *ScheduleRequestMapper) ToEntities(requests []*model.ScheduleRequest) []*entity.ScheduleRequest {
	entities := make([]*entity.ScheduleRequest, len(requests))
	for i, s := range requests {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
