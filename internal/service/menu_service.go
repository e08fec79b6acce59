package service

import (
	"database/sql"
	"errors"

	"emenu-backend/internal/domain"
)

type CreateMenuItemInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Image       string `json:"image"`
	CategoryID  int    `json:"categoryId"`
	IsAvailable *bool  `json:"isAvailable"`
}

// UpdateMenuItemInput is a partial update: nil fields are left untouched.
type UpdateMenuItemInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *int    `json:"price"`
	Image       *string `json:"image"`
	CategoryID  *int    `json:"categoryId"`
	IsActive    *bool   `json:"isActive"`
	IsAvailable *bool   `json:"isAvailable"`
}

type UpdateCategoryInput struct {
	Slug      *string `json:"slug"`
	Name      *string `json:"name"`
	SortOrder *int    `json:"sortOrder"`
	IsActive  *bool   `json:"isActive"`
}

type MenuService struct {
	repo MenuRepository
}

func NewMenuService(repo MenuRepository) *MenuService {
	return &MenuService{repo: repo}
}

func (s *MenuService) ListCategories() ([]domain.Category, error) {
	return s.repo.ListCategories()
}

func (s *MenuService) GetCategory(id int) (*domain.Category, error) {
	category, err := s.repo.GetCategory(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *MenuService) CreateCategory(slug, name string, sortOrder int) (*domain.Category, error) {
	if slug == "" || name == "" {
		return nil, validationf("slug and name are required")
	}

	category := &domain.Category{Slug: slug, Name: name, SortOrder: sortOrder}
	if err := s.repo.CreateCategory(category); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, ErrDuplicateCategorySlug
		}
		return nil, err
	}
	return category, nil
}

func (s *MenuService) UpdateCategory(id int, in UpdateCategoryInput) (*domain.Category, error) {
	category, err := s.GetCategory(id)
	if err != nil {
		return nil, err
	}

	if in.Slug != nil && *in.Slug != "" {
		category.Slug = *in.Slug
	}
	if in.Name != nil && *in.Name != "" {
		category.Name = *in.Name
	}
	if in.SortOrder != nil {
		category.SortOrder = *in.SortOrder
	}
	if in.IsActive != nil {
		category.IsActive = *in.IsActive
	}

	if _, err := s.repo.UpdateCategory(category); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, ErrDuplicateCategorySlug
		}
		return nil, err
	}
	return category, nil
}

func (s *MenuService) DeleteCategory(id int) error {
	rows, err := s.repo.DeleteCategory(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (s *MenuService) ListItems(f domain.MenuFilter) ([]domain.MenuItem, error) {
	return s.repo.ListMenuItems(f)
}

func (s *MenuService) GetItem(id int) (*domain.MenuItem, error) {
	item, err := s.repo.GetMenuItem(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *MenuService) CreateItem(in CreateMenuItemInput) (*domain.MenuItem, error) {
	if in.Name == "" || in.Price <= 0 || in.CategoryID == 0 {
		return nil, validationf("name, price, and categoryId are required")
	}

	available := true
	if in.IsAvailable != nil {
		available = *in.IsAvailable
	}

	item := &domain.MenuItem{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Image:       in.Image,
		CategoryID:  in.CategoryID,
		IsAvailable: available,
	}
	if err := s.repo.CreateMenuItem(item); err != nil {
		if errors.Is(err, domain.ErrInvalidReference) {
			return nil, validationf("category %d not found", in.CategoryID)
		}
		return nil, err
	}
	return item, nil
}

func (s *MenuService) UpdateItem(id int, in UpdateMenuItemInput) (*domain.MenuItem, error) {
	item, err := s.GetItem(id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil && *in.Name != "" {
		item.Name = *in.Name
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Price != nil && *in.Price > 0 {
		item.Price = *in.Price
	}
	if in.Image != nil {
		item.Image = *in.Image
	}
	if in.CategoryID != nil && *in.CategoryID != 0 {
		item.CategoryID = *in.CategoryID
	}
	if in.IsActive != nil {
		item.IsActive = *in.IsActive
	}
	if in.IsAvailable != nil {
		item.IsAvailable = *in.IsAvailable
	}

	if _, err := s.repo.UpdateMenuItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) DeleteItem(id int) error {
	rows, err := s.repo.DeleteMenuItem(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrMenuItemNotFound
	}
	return nil
}

var _ MenuServiceInterface = (*MenuService)(nil)
