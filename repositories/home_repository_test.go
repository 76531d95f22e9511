package repositories

import (
	"fmt"
	"testing"

	"realestate-api/dto"
	"realestate-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRepositoryTest(t *testing.T) IHomeRepository {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Home{}, &models.Image{}))

	return NewHomeRepository(db)
}

func TestFindAllPreloadsImagesInInsertionOrder(t *testing.T) {
	repository := setupRepositoryTest(t)

	home, err := repository.Create(models.Home{
		Address:      "12 Elm Street",
		City:         "Toronto",
		Bedrooms:     3,
		Bathrooms:    2,
		LandSize:     420.5,
		Price:        500000,
		PropertyType: "residential",
		RealtorID:    1,
	})
	require.NoError(t, err)

	require.NoError(t, repository.CreateImages([]models.Image{
		{URL: "https://img.example.com/first.jpg", HomeID: home.ID},
		{URL: "https://img.example.com/second.jpg", HomeID: home.ID},
		{URL: "https://img.example.com/third.jpg", HomeID: home.ID},
	}))

	homes, err := repository.FindAll(dto.HomeFilter{})
	require.NoError(t, err)
	require.Len(t, *homes, 1)
	require.Len(t, (*homes)[0].Images, 3)
	assert.Equal(t, "https://img.example.com/first.jpg", (*homes)[0].Images[0].URL)
	assert.Equal(t, "https://img.example.com/third.jpg", (*homes)[0].Images[2].URL)
}

func TestDeleteImagesForAbsentHomeIsNoOp(t *testing.T) {
	repository := setupRepositoryTest(t)

	assert.NoError(t, repository.DeleteImagesByHomeId(999))
}

func TestDeleteMissingHomeReturnsRecordNotFound(t *testing.T) {
	repository := setupRepositoryTest(t)

	err := repository.Delete(999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
