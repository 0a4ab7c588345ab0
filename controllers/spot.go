package controllers

import (
	"net/http"
	"strconv"

	"seedbnb/middlewares"
	"seedbnb/models"
	"seedbnb/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type spotInput struct {
	Address     string  `json:"address" binding:"required"`
	City        string  `json:"city" binding:"required"`
	State       string  `json:"state" binding:"required"`
	Country     string  `json:"country" binding:"required"`
	Lat         float64 `json:"lat" binding:"required"`
	Lng         float64 `json:"lng" binding:"required"`
	Name        string  `json:"name" binding:"required,max=50"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
}

var spotValidationMessages = utils.FieldMessages{
	"address":     "Street address is required",
	"city":        "City is required",
	"state":       "State is required",
	"country":     "Country is required",
	"lat":         "Latitude is not valid",
	"lng":         "Longitude is not valid",
	"name":        "Name must be less than 50 characters",
	"description": "Description is required",
	"price":       "Price per day is required",
}

// spotSummary is a spot as it appears in list responses: raw image and
// review collections replaced by their aggregates.
type spotSummary struct {
	models.Spot
	AvgRating    *float64 `json:"avgRating"`
	PreviewImage string   `json:"previewImage"`
}

type imageSummary struct {
	ID      uint   `json:"id"`
	URL     string `json:"url"`
	Preview bool   `json:"preview"`
}

type ownerSummary struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type spotDetails struct {
	models.Spot
	NumReviews    int            `json:"numReviews"`
	AvgStarRating *float64       `json:"avgStarRating"`
	SpotImages    []imageSummary `json:"SpotImages"`
	Owner         ownerSummary   `json:"Owner"`
}

func summarizeSpots(spots []models.Spot) []spotSummary {
	summaries := make([]spotSummary, 0, len(spots))
	for _, spot := range spots {
		avgRating, previewImage := summarizeSpot(spot.Reviews, spot.SpotImages)
		summaries = append(summaries, spotSummary{
			Spot:         spot,
			AvgRating:    avgRating,
			PreviewImage: previewImage,
		})
	}
	return summaries
}

// GetAllSpots returns every spot with its aggregates. Optional query
// filters: city, minPrice, maxPrice.
func GetAllSpots(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("SpotImages").Preload("Reviews")

		if city := c.Query("city"); city != "" {
			query = query.Where("city = ?", city)
		}
		if v := c.Query("minPrice"); v != "" {
			if minPrice, err := strconv.ParseFloat(v, 64); err == nil {
				query = query.Where("price >= ?", minPrice)
			}
		}
		if v := c.Query("maxPrice"); v != "" {
			if maxPrice, err := strconv.ParseFloat(v, 64); err == nil {
				query = query.Where("price <= ?", maxPrice)
			}
		}

		var spots []models.Spot
		if err := query.Find(&spots).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch spots"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"Spots": summarizeSpots(spots)})
	}
}

// GetCurrentUserSpots returns the authenticated user's spots with the same
// aggregates as the public listing.
func GetCurrentUserSpots(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middlewares.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}

		var spots []models.Spot
		if err := db.Preload("SpotImages").Preload("Reviews").
			Where("owner_id = ?", userID).
			Find(&spots).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch spots"})
			return
		}

		if len(spots) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "User does not own any spots."})
			return
		}

		c.JSON(http.StatusOK, gin.H{"Spots": summarizeSpots(spots)})
	}
}

// GetSpotDetails returns one spot with review counts, average rating, its
// images, and an owner summary.
func GetSpotDetails(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var spot models.Spot
		if err := db.First(&spot, c.Param("spotId")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Spot couldn't be found."})
			return
		}

		var reviews []models.Review
		if err := db.Where("spot_id = ?", spot.ID).Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch reviews"})
			return
		}

		var images []models.SpotImage
		if err := db.Where("spot_id = ?", spot.ID).Find(&images).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch spot images"})
			return
		}

		var owner models.User
		if err := db.First(&owner, spot.OwnerID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch spot owner"})
			return
		}

		avgStarRating, _ := summarizeSpot(reviews, nil)

		details := spotDetails{
			Spot:          spot,
			NumReviews:    len(reviews),
			AvgStarRating: avgStarRating,
			SpotImages:    make([]imageSummary, 0, len(images)),
			Owner: ownerSummary{
				ID:        owner.ID,
				FirstName: owner.FirstName,
				LastName:  owner.LastName,
			},
		}
		for _, image := range images {
			details.SpotImages = append(details.SpotImages, imageSummary{
				ID:      image.ID,
				URL:     image.URL,
				Preview: image.Preview,
			})
		}

		c.JSON(http.StatusOK, details)
	}
}

// CreateSpot creates a spot owned by the authenticated user.
func CreateSpot(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middlewares.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}

		var input spotInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.HandleValidationErrors(c, err, spotValidationMessages)
			return
		}

		spot := models.Spot{
			OwnerID:     userID,
			Address:     input.Address,
			City:        input.City,
			State:       input.State,
			Country:     input.Country,
			Lat:         input.Lat,
			Lng:         input.Lng,
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
		}

		if err := db.Create(&spot).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create spot"})
			return
		}

		c.JSON(http.StatusCreated, spot)
	}
}

// AddSpotImage attaches an image to a spot the authenticated user owns.
// Flagging the new image as preview clears the flag on the spot's other
// images so at most one preview exists per spot.
func AddSpotImage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middlewares.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}

		var spot models.Spot
		if err := db.First(&spot, c.Param("spotId")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Spot couldn't be found"})
			return
		}

		if spot.OwnerID != userID {
			c.JSON(http.StatusForbidden, gin.H{"message": "Spot does not belong to current user"})
			return
		}

		var input struct {
			URL     string `json:"url" binding:"required"`
			Preview bool   `json:"preview"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.HandleValidationErrors(c, err, utils.FieldMessages{"url": "Image URL is required"})
			return
		}

		image := models.SpotImage{
			SpotID:  spot.ID,
			URL:     input.URL,
			Preview: input.Preview,
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if input.Preview {
				if err := tx.Model(&models.SpotImage{}).
					Where("spot_id = ? AND preview = ?", spot.ID, true).
					Update("preview", false).Error; err != nil {
					return err
				}
			}
			return tx.Create(&image).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add image"})
			return
		}

		c.JSON(http.StatusOK, imageSummary{
			ID:      image.ID,
			URL:     image.URL,
			Preview: image.Preview,
		})
	}
}

// UpdateSpot overwrites all mutable fields of a spot owned by the
// authenticated user.
func UpdateSpot(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middlewares.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}

		var spot models.Spot
		if err := db.First(&spot, c.Param("spotId")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Spot does not exist."})
			return
		}

		if spot.OwnerID != userID {
			c.JSON(http.StatusForbidden, gin.H{"message": "User not authorized to make edit."})
			return
		}

		var input spotInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.HandleValidationErrors(c, err, spotValidationMessages)
			return
		}

		spot.Address = input.Address
		spot.City = input.City
		spot.State = input.State
		spot.Country = input.Country
		spot.Lat = input.Lat
		spot.Lng = input.Lng
		spot.Name = input.Name
		spot.Description = input.Description
		spot.Price = input.Price

		if err := db.Save(&spot).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update spot"})
			return
		}

		c.JSON(http.StatusOK, spot)
	}
}

// DeleteSpot removes a spot the authenticated user owns, along with its
// images, reviews, and bookings.
func DeleteSpot(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middlewares.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}

		var spot models.Spot
		if err := db.First(&spot, c.Param("spotId")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Spot couldn't be found."})
			return
		}

		if spot.OwnerID != userID {
			c.JSON(http.StatusForbidden, gin.H{"message": "Only the owner can delete this spot."})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("spot_id = ?", spot.ID).Delete(&models.SpotImage{}).Error; err != nil {
				return err
			}
			if err := tx.Where("spot_id = ?", spot.ID).Delete(&models.Review{}).Error; err != nil {
				return err
			}
			if err := tx.Where("spot_id = ?", spot.ID).Delete(&models.Booking{}).Error; err != nil {
				return err
			}
			return tx.Delete(&spot).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete spot"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Successfully deleted."})
	}
}
