package utils

import (
	"strconv"
)

// ReviewCountLabel is the review counter shown in a spot's listing header:
// "New" until the first review, then "1 Review", "2 Reviews", and so on.
func ReviewCountLabel(numReviews int) string {
	switch numReviews {
	case 0:
		return "New"
	case 1:
		return "1 Review"
	default:
		return strconv.Itoa(numReviews) + " Reviews"
	}
}

// StarRatingLabel renders the average rating next to the star icon. The
// header always shows a trailing ".0" after the value. Empty when the spot
// has no rating yet.
func StarRatingLabel(avgStarRating *float64) string {
	if avgStarRating == nil || *avgStarRating <= 0 {
		return ""
	}
	return strconv.FormatFloat(*avgStarRating, 'f', -1, 64) + ".0"
}
