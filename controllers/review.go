package controllers

import (
	"errors"
	"net/http"
	"time"

	"seedbnb/middlewares"
	"seedbnb/models"
	"seedbnb/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type reviewInput struct {
	Review string `json:"review" binding:"required"`
	Stars  *int   `json:"stars" binding:"required,min=0,max=5"`
}

var reviewValidationMessages = utils.FieldMessages{
	"review": "Review text is required",
	"stars":  "Stars must be an integer from 0 to 5",
}

type reviewResponse struct {
	ID        uint         `json:"id"`
	SpotID    uint         `json:"spotId"`
	UserID    uint         `json:"userId"`
	Review    string       `json:"review"`
	Stars     int          `json:"stars"`
	CreatedAt time.Time    `json:"createdAt"`
	User      ownerSummary `json:"User"`
}

// GetSpotReviews returns a spot's reviews, newest first, with the computed
// average rating.
func GetSpotReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var spot models.Spot
		if err := db.First(&spot, c.Param("spotId")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Spot couldn't be found."})
			return
		}

		var reviews []models.Review
		if err := db.Preload("User").
			Where("spot_id = ?", spot.ID).
			Order("created_at DESC").
			Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch reviews"})
			return
		}

		averageRating, _ := summarizeSpot(reviews, nil)

		responses := make([]reviewResponse, 0, len(reviews))
		for _, review := range reviews {
			responses = append(responses, reviewResponse{
				ID:        review.ID,
				SpotID:    review.SpotID,
				UserID:    review.UserID,
				Review:    review.Review,
				Stars:     review.Stars,
				CreatedAt: review.CreatedAt,
				User: ownerSummary{
					ID:        review.User.ID,
					FirstName: review.User.FirstName,
					LastName:  review.User.LastName,
				},
			})
		}

		c.JSON(http.StatusOK, gin.H{
			"Reviews":       responses,
			"reviewCount":   len(reviews),
			"averageRating": averageRating,
		})
	}
}

// CreateSpotReview adds the authenticated user's review to a spot. One
// review per user per spot.
func CreateSpotReview(db *gorm.DB) gin.HandlerFunc {
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

		var input reviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.HandleValidationErrors(c, err, reviewValidationMessages)
			return
		}

		var existing models.Review
		err := db.Where("spot_id = ? AND user_id = ?", spot.ID, userID).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "User already has a review for this spot"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to check existing review"})
			return
		}

		review := models.Review{
			SpotID: spot.ID,
			UserID: userID,
			Review: input.Review,
			Stars:  *input.Stars,
		}

		if err := db.Create(&review).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create review"})
			return
		}

		c.JSON(http.StatusCreated, review)
	}
}
