package controllers

import (
	"net/http"

	"seedbnb/middlewares"
	"seedbnb/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DeleteSpotImage removes an image. Ownership is checked through the parent
// spot, not a field on the image itself.
func DeleteSpotImage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middlewares.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}

		var image models.SpotImage
		if err := db.First(&image, c.Param("imageId")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Spot Image couldn't be found"})
			return
		}

		var spot models.Spot
		if err := db.First(&spot, image.SpotID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Spot couldn't be found"})
			return
		}

		if spot.OwnerID != userID {
			c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden: spot does not belong to user"})
			return
		}

		if err := db.Delete(&image).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete image"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Successfully deleted"})
	}
}
