package services

import (
	"context"

	"yournews/internal/models/response_models"
	"yournews/internal/repositories"
	"yournews/pkg/utils"
)

// DirectoryService lists the publishers and journalists a reader can
// subscribe to.
type DirectoryServiceInterface interface {
	ListPublishers(ctx context.Context) ([]response_models.PublisherMinimal, error)
	ListJournalists(ctx context.Context) ([]response_models.JournalistMinimal, error)
}

type DirectoryService struct {
	profileRepo repositories.ProfileRepository
}

func NewDirectoryService(profileRepo repositories.ProfileRepository) DirectoryServiceInterface {
	return &DirectoryService{profileRepo: profileRepo}
}

func (s *DirectoryService) ListPublishers(ctx context.Context) ([]response_models.PublisherMinimal, error) {
	publishers, err := s.profileRepo.ListPublishers(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.PublisherMinimal, 0, len(publishers))
	for i := range publishers {
		out = append(out, response_models.PublisherMinimal{
			ID:   publishers[i].ID.String(),
			Name: publishers[i].Name,
		})
	}
	return out, nil
}

func (s *DirectoryService) ListJournalists(ctx context.Context) ([]response_models.JournalistMinimal, error) {
	journalists, err := s.profileRepo.ListJournalists(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.JournalistMinimal, 0, len(journalists))
	for i := range journalists {
		j := &journalists[i]
		out = append(out, response_models.JournalistMinimal{
			ID:            j.ID.String(),
			Name:          j.User.FullName(),
			Username:      j.User.Username,
			PublisherName: j.Publisher.Name,
		})
	}
	return out, nil
}
