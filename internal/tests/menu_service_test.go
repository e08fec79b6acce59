package tests

import (
	"testing"

	"emenu-backend/internal/domain"
	"emenu-backend/internal/mocks"
	"emenu-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMenuService_CreateCategory(t *testing.T) {
	t.Run("duplicate_slug", func(t *testing.T) {
		repo := mocks.NewMenuRepository(t)
		svc := service.NewMenuService(repo)

		repo.On("CreateCategory", mock.Anything).Return(domain.ErrDuplicate).Once()

		_, err := svc.CreateCategory("drinks", "Drinks", 1)
		assert.ErrorIs(t, err, service.ErrDuplicateCategorySlug)
	})

	t.Run("missing_slug", func(t *testing.T) {
		svc := service.NewMenuService(mocks.NewMenuRepository(t))

		_, err := svc.CreateCategory("", "Drinks", 1)
		assert.True(t, service.IsValidation(err))
	})
}

func TestMenuService_CreateItem(t *testing.T) {
	t.Run("success_defaults_available", func(t *testing.T) {
		repo := mocks.NewMenuRepository(t)
		svc := service.NewMenuService(repo)

		repo.On("CreateMenuItem", mock.MatchedBy(func(item *domain.MenuItem) bool {
			return item.IsAvailable && item.Name == "Pho Bo" && item.Price == 65000
		})).Return(nil).Once()

		item, err := svc.CreateItem(service.CreateMenuItemInput{
			Name:       "Pho Bo",
			Price:      65000,
			CategoryID: 2,
		})
		assert.NoError(t, err)
		assert.True(t, item.IsAvailable)
	})

	t.Run("unknown_category", func(t *testing.T) {
		repo := mocks.NewMenuRepository(t)
		svc := service.NewMenuService(repo)

		repo.On("CreateMenuItem", mock.Anything).Return(domain.ErrInvalidReference).Once()

		_, err := svc.CreateItem(service.CreateMenuItemInput{Name: "Pho Bo", Price: 65000, CategoryID: 99})
		assert.True(t, service.IsValidation(err))
	})

	t.Run("non_positive_price", func(t *testing.T) {
		svc := service.NewMenuService(mocks.NewMenuRepository(t))

		_, err := svc.CreateItem(service.CreateMenuItemInput{Name: "Pho Bo", Price: 0, CategoryID: 2})
		assert.True(t, service.IsValidation(err))
	})
}

func TestMenuService_UpdateItem(t *testing.T) {
	repo := mocks.NewMenuRepository(t)
	svc := service.NewMenuService(repo)

	stored := &domain.MenuItem{ID: 1, Name: "Pho Bo", Price: 65000, IsActive: true, IsAvailable: true}
	repo.On("GetMenuItem", 1).Return(stored, nil).Once()
	repo.On("UpdateMenuItem", mock.MatchedBy(func(item *domain.MenuItem) bool {
		return item.Price == 70000 && !item.IsAvailable && item.Name == "Pho Bo"
	})).Return(int64(1), nil).Once()

	price := 70000
	unavailable := false
	item, err := svc.UpdateItem(1, service.UpdateMenuItemInput{Price: &price, IsAvailable: &unavailable})
	assert.NoError(t, err)
	assert.Equal(t, 70000, item.Price)
	assert.False(t, item.IsAvailable)
}

func TestMenuService_DeleteItem(t *testing.T) {
	repo := mocks.NewMenuRepository(t)
	svc := service.NewMenuService(repo)

	repo.On("DeleteMenuItem", 1).Return(int64(0), nil).Once()
	assert.ErrorIs(t, svc.DeleteItem(1), service.ErrMenuItemNotFound)
}
