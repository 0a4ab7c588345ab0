package controllers

import "seedbnb/models"

// noPreviewImage is the placeholder listed for spots without a flagged
// preview image.
const noPreviewImage = "No preview image."

// summarizeSpot derives the read-time aggregates embedded in spot listings:
// the mean star rating across the spot's reviews and the URL of its preview
// image. The rating is nil when there are no reviews, never a division by
// zero. The first image flagged preview wins; the fallback literal is used
// when none is flagged.
func summarizeSpot(reviews []models.Review, images []models.SpotImage) (avgRating *float64, previewImage string) {
	if len(reviews) > 0 {
		sum := 0
		for _, review := range reviews {
			sum += review.Stars
		}
		avg := float64(sum) / float64(len(reviews))
		avgRating = &avg
	}

	previewImage = noPreviewImage
	for _, image := range images {
		if image.Preview {
			previewImage = image.URL
			break
		}
	}
	return avgRating, previewImage
}
