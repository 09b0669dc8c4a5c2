package service

import (
	"context"

	"github.com/grocx/pricetrack/internal/domain/models"
	"github.com/grocx/pricetrack/internal/storage"
)

// StoreService defines business logic for store lookup.
type StoreService interface {
	List(ctx context.Context) ([]models.Store, error)
}

type storeService struct {
	repo storage.StoreRepository
}

func NewStoreService(repo storage.StoreRepository) StoreService {
	return &storeService{repo: repo}
}

func (s *storeService) List(_ context.Context) ([]models.Store, error) {
	return s.repo.ListAll()
}
