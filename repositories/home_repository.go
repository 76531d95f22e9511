package repositories

import (
	"realestate-api/dto"
	"realestate-api/models"

	"gorm.io/gorm"
)

type IHomeRepository interface {
	FindAll(filter dto.HomeFilter) (*[]models.Home, error)
	FindById(homeID uint) (*models.Home, error)
	Create(newHome models.Home) (*models.Home, error)
	CreateImages(images []models.Image) error
	Update(homeID uint, updates map[string]interface{}) (*models.Home, error)
	Delete(homeID uint) error
	FindImagesByHomeId(homeID uint) (*[]models.Image, error)
	DeleteImagesByHomeId(homeID uint) error
	FindRealtorByHomeId(homeID uint) (*models.User, error)
}

type HomeRepository struct {
	db *gorm.DB
}

func NewHomeRepository(db *gorm.DB) IHomeRepository {
	return &HomeRepository{db: db}
}

func (r *HomeRepository) FindAll(filter dto.HomeFilter) (*[]models.Home, error) {
	query := r.db.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("images.id ASC")
	})
	if filter.City != nil {
		query = query.Where("city = ?", *filter.City)
	}
	if filter.PropertyType != nil {
		query = query.Where("property_type = ?", *filter.PropertyType)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}

	var homes []models.Home
	result := query.Find(&homes)
	if result.Error != nil {
		return nil, result.Error
	}
	return &homes, nil
}

func (r *HomeRepository) FindById(homeID uint) (*models.Home, error) {
	var home models.Home
	result := r.db.First(&home, "id = ?", homeID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &home, nil
}

func (r *HomeRepository) Create(newHome models.Home) (*models.Home, error) {
	result := r.db.Create(&newHome)
	if result.Error != nil {
		return nil, result.Error
	}
	return &newHome, nil
}

func (r *HomeRepository) CreateImages(images []models.Image) error {
	result := r.db.Create(&images)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Update applies only the supplied columns. Existence is the caller's
// concern; RowsAffected is not checked because an update to identical
// values also affects zero rows.
func (r *HomeRepository) Update(homeID uint, updates map[string]interface{}) (*models.Home, error) {
	if len(updates) > 0 {
		result := r.db.Model(&models.Home{}).
			Where("id = ?", homeID).
			Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
	}

	var updatedHome models.Home
	if err := r.db.First(&updatedHome, "id = ?", homeID).Error; err != nil {
		return nil, err
	}
	return &updatedHome, nil
}

func (r *HomeRepository) Delete(homeID uint) error {
	result := r.db.Delete(&models.Home{}, "id = ?", homeID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *HomeRepository) FindImagesByHomeId(homeID uint) (*[]models.Image, error) {
	var images []models.Image
	result := r.db.Order("id ASC").Find(&images, "home_id = ?", homeID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &images, nil
}

// DeleteImagesByHomeId is a silent no-op when no images match.
func (r *HomeRepository) DeleteImagesByHomeId(homeID uint) error {
	result := r.db.Delete(&models.Image{}, "home_id = ?", homeID)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func (r *HomeRepository) FindRealtorByHomeId(homeID uint) (*models.User, error) {
	var home models.Home
	if err := r.db.First(&home, "id = ?", homeID).Error; err != nil {
		return nil, err
	}

	var realtor models.User
	if err := r.db.First(&realtor, "id = ?", home.RealtorID).Error; err != nil {
		return nil, err
	}
	return &realtor, nil
}
