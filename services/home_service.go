package services

import (
	"errors"
	"fmt"
	"time"

	"realestate-api/dto"
	"realestate-api/models"
	"realestate-api/repositories"

	"gorm.io/gorm"
)

var (
	// ErrHomeNotFound covers a missing home id and an empty filtered
	// result set alike.
	ErrHomeNotFound = errors.New("home not found")
	// ErrHomeHasNoImages is returned when a listed home has no image to
	// project into its summary.
	ErrHomeHasNoImages = errors.New("home has no images")
)

type IHomeService interface {
	GetHomes(filter dto.HomeFilter) (*[]dto.HomeSummary, error)
	GetHome(homeID uint) (*models.Home, error)
	CreateHome(input dto.CreateHomeInput, realtorID uint) (*models.Home, error)
	UpdateHome(homeID uint, input dto.UpdateHomeInput) (*models.Home, error)
	DeleteHome(homeID uint) (*models.Home, error)
	GetRealtorByHomeId(homeID uint) (*dto.UserResponse, error)
}

type HomeService struct {
	repository repositories.IHomeRepository
}

func NewHomeService(repository repositories.IHomeRepository) IHomeService {
	return &HomeService{repository: repository}
}

// GetHomes projects each matching home together with its first image in
// insertion order. An empty match set is an error, not an empty list.
func (s *HomeService) GetHomes(filter dto.HomeFilter) (*[]dto.HomeSummary, error) {
	homes, err := s.repository.FindAll(filter)
	if err != nil {
		return nil, err
	}
	if len(*homes) == 0 {
		return nil, ErrHomeNotFound
	}

	summaries := make([]dto.HomeSummary, 0, len(*homes))
	for _, home := range *homes {
		if len(home.Images) == 0 {
			return nil, fmt.Errorf("%w: id %d", ErrHomeHasNoImages, home.ID)
		}
		summaries = append(summaries, dto.HomeSummary{
			ID:           home.ID,
			Address:      home.Address,
			City:         home.City,
			Bedrooms:     home.Bedrooms,
			Bathrooms:    home.Bathrooms,
			LandSize:     home.LandSize,
			Price:        home.Price,
			PropertyType: home.PropertyType,
			ListDate:     home.ListDate,
			Image:        home.Images[0].URL,
		})
	}
	return &summaries, nil
}

func (s *HomeService) GetHome(homeID uint) (*models.Home, error) {
	home, err := s.repository.FindById(homeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHomeNotFound
		}
		return nil, err
	}
	return home, nil
}

// CreateHome inserts the home, then bulk-inserts its images. The two
// writes are sequential and not transactional: an image-insert failure
// leaves the home committed with zero images.
func (s *HomeService) CreateHome(input dto.CreateHomeInput, realtorID uint) (*models.Home, error) {
	createdHome, err := s.repository.Create(models.Home{
		Address:      input.Address,
		City:         input.City,
		Bedrooms:     input.Bedrooms,
		Bathrooms:    input.Bathrooms,
		LandSize:     input.LandSize,
		Price:        input.Price,
		PropertyType: input.PropertyType,
		ListDate:     time.Now(),
		RealtorID:    realtorID,
	})
	if err != nil {
		return nil, err
	}

	images := make([]models.Image, 0, len(input.Images))
	for _, image := range input.Images {
		images = append(images, models.Image{
			URL:    image.URL,
			HomeID: createdHome.ID,
		})
	}
	if err := s.repository.CreateImages(images); err != nil {
		return nil, err
	}

	return createdHome, nil
}

func (s *HomeService) UpdateHome(homeID uint, input dto.UpdateHomeInput) (*models.Home, error) {
	if _, err := s.repository.FindById(homeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHomeNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Address != nil {
		updates["address"] = *input.Address
	}
	if input.City != nil {
		updates["city"] = *input.City
	}
	if input.Bedrooms != nil {
		updates["bedrooms"] = *input.Bedrooms
	}
	if input.Bathrooms != nil {
		updates["bathrooms"] = *input.Bathrooms
	}
	if input.LandSize != nil {
		updates["land_size"] = *input.LandSize
	}
	if input.Price != nil {
		updates["price"] = *input.Price
	}
	if input.PropertyType != nil {
		updates["property_type"] = *input.PropertyType
	}

	return s.repository.Update(homeID, updates)
}

// DeleteHome removes the home's images first, unconditionally, then the
// home itself. Image deletion for an absent home id is a silent no-op;
// the home delete then fails with ErrHomeNotFound and the image deletion
// is not compensated.
func (s *HomeService) DeleteHome(homeID uint) (*models.Home, error) {
	if err := s.repository.DeleteImagesByHomeId(homeID); err != nil {
		return nil, err
	}

	home, err := s.repository.FindById(homeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHomeNotFound
		}
		return nil, err
	}

	if err := s.repository.Delete(homeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHomeNotFound
		}
		return nil, err
	}

	return home, nil
}

func (s *HomeService) GetRealtorByHomeId(homeID uint) (*dto.UserResponse, error) {
	realtor, err := s.repository.FindRealtorByHomeId(homeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHomeNotFound
		}
		return nil, err
	}

	return &dto.UserResponse{
		ID:    realtor.ID,
		Name:  realtor.Name,
		Email: realtor.Email,
		Phone: realtor.Phone,
	}, nil
}
