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

type bookingInput struct {
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}

var bookingValidationMessages = utils.FieldMessages{
	"startDate": "Start date is required",
	"endDate":   "End date is required",
}

const bookingDateLayout = "2006-01-02"

// CreateSpotBooking books a spot for the authenticated user. Owners cannot
// book their own spots, and the requested range must not overlap an
// existing booking.
func CreateSpotBooking(db *gorm.DB) gin.HandlerFunc {
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

		if spot.OwnerID == userID {
			c.JSON(http.StatusForbidden, gin.H{"message": "Spot cannot be booked by its owner"})
			return
		}

		var input bookingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.HandleValidationErrors(c, err, bookingValidationMessages)
			return
		}

		startDate, err := time.Parse(bookingDateLayout, input.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Bad Request",
				"errors":  gin.H{"startDate": "Start date must be a valid date (YYYY-MM-DD)"},
			})
			return
		}
		endDate, err := time.Parse(bookingDateLayout, input.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Bad Request",
				"errors":  gin.H{"endDate": "End date must be a valid date (YYYY-MM-DD)"},
			})
			return
		}
		if !endDate.After(startDate) {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Bad Request",
				"errors":  gin.H{"endDate": "endDate cannot be on or before startDate"},
			})
			return
		}

		booking := models.Booking{
			SpotID:    spot.ID,
			UserID:    userID,
			StartDate: startDate,
			EndDate:   endDate,
		}

		// Conflict check and insert run in one transaction so two requests
		// for the same dates cannot both pass the check.
		txErr := db.Transaction(func(tx *gorm.DB) error {
			var conflict models.Booking
			err := tx.Where("spot_id = ? AND start_date < ? AND end_date > ?", spot.ID, endDate, startDate).
				First(&conflict).Error
			if err == nil {
				return errBookingConflict
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			return tx.Create(&booking).Error
		})
		if errors.Is(txErr, errBookingConflict) {
			c.JSON(http.StatusForbidden, gin.H{"message": "Sorry, this spot is already booked for the specified dates"})
			return
		}
		if txErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create booking"})
			return
		}

		c.JSON(http.StatusCreated, booking)
	}
}

var errBookingConflict = errors.New("booking dates conflict")

// GetCurrentUserBookings lists the authenticated user's bookings, newest
// first, with each booked spot attached.
func GetCurrentUserBookings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middlewares.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}

		var bookings []models.Booking
		if err := db.Preload("Spot").
			Where("user_id = ?", userID).
			Order("created_at desc").
			Find(&bookings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch bookings"})
			return
		}
		if bookings == nil {
			bookings = []models.Booking{}
		}

		c.JSON(http.StatusOK, gin.H{"Bookings": bookings})
	}
}
