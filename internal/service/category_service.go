package service

import (
	"newtube-go/internal/api/dto"
	"newtube-go/internal/repository"
)

type CategoryService struct {
	categoryRepo *repository.CategoryRepository
}

func NewCategoryService(categoryRepo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// List 获取全部分类
func (s *CategoryService) List() (*dto.CategoryListData, error) {
	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, err
	}

	items := make([]dto.CategoryInfo, 0, len(categories))
	for i := range categories {
		c := &categories[i]
		items = append(items, dto.CategoryInfo{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			CreatedAt:   c.CreatedAt,
		})
	}

	return &dto.CategoryListData{Categories: items}, nil
}
