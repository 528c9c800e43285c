package service

import (
	"context"

	"photo-portfolio-be/internal/dto"
	"photo-portfolio-be/internal/repository/contract"
	"photo-portfolio-be/internal/repository/specification"
)

// RecentShotLimit caps the home view's shot strip.
const RecentShotLimit = 6

type IPortfolioService interface {
	HomeView(ctx context.Context) (*dto.HomeViewResponse, error)
	ListShots(ctx context.Context) ([]*dto.ShotResponse, error)
}

type portfolioService struct {
	photographers contract.PhotographerRepository
	shots         contract.ShotRepository
}

func NewPortfolioService(
	photographers contract.PhotographerRepository,
	shots contract.ShotRepository,
) IPortfolioService {
	return &portfolioService{
		photographers: photographers,
		shots:         shots,
	}
}

func (s *portfolioService) HomeView(ctx context.Context) (*dto.HomeViewResponse, error) {
	// The lowest-id record is "the" photographer. Nothing enforces a single
	// row; the read side just picks deterministically.
	photographer, err := s.photographers.FindOne(ctx, specification.OrderBy{Field: "id"})
	if err != nil {
		return nil, err
	}

	shots, err := s.shots.FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.OrderBy{Field: "id", Desc: true},
		specification.Limit{Count: RecentShotLimit},
	)
	if err != nil {
		return nil, err
	}

	res := &dto.HomeViewResponse{
		Shots: make([]*dto.ShotResponse, 0, len(shots)),
	}
	if photographer != nil {
		res.Photographer = &dto.PhotographerResponse{
			Id:   photographer.Id,
			Name: photographer.Name,
			Bio:  photographer.Bio,
		}
	}
	for _, shot := range shots {
		res.Shots = append(res.Shots, &dto.ShotResponse{
			Id:       shot.Id,
			Title:    shot.Title,
			Filename: shot.Filename,
			Caption:  shot.Caption,
		})
	}

	return res, nil
}

func (s *portfolioService) ListShots(ctx context.Context) ([]*dto.ShotResponse, error) {
	// Full-table projection; portfolio-scale data, no pagination.
	shots, err := s.shots.FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.OrderBy{Field: "id", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ShotResponse, 0, len(shots))
	for _, shot := range shots {
		result = append(result, &dto.ShotResponse{
			Id:       shot.Id,
			Title:    shot.Title,
			Filename: shot.Filename,
			Caption:  shot.Caption,
		})
	}
	return result, nil
}
