package controllers

import (
	"log"

	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

// SubmitReview creates or updates the caller's review of an enrolled course and
// recomputes the course's mean rating
func SubmitReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	reqData, ok := c.Locals("validatedReview").(*struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	// One review per (user, course), a second submission updates the first
	var review models.Review
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&review).Error; err == nil {
		review.Rating = reqData.Rating
		review.Comment = reqData.Comment
		if err := database.Database.Db.Save(&review).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update review!", nil)
		}
	} else {
		review = models.Review{
			UserID:   userID,
			CourseID: uint(courseID),
			Rating:   reqData.Rating,
			Comment:  reqData.Comment,
		}
		if err := database.Database.Db.Create(&review).Error; err != nil {
			log.Printf("Error creating review: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit review!", nil)
		}
	}

	recomputeCourseRating(uint(courseID))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review submitted successfully!", review)
}

// recomputeCourseRating recalculates the mean rating from all reviews
func recomputeCourseRating(courseID uint) {
	var mean float64
	row := database.Database.Db.Model(&models.Review{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Select("COALESCE(AVG(rating), 0)").Row()
	if err := row.Scan(&mean); err != nil {
		log.Printf("Error computing course rating: %v", err)
		return
	}

	database.Database.Db.Model(&courseModels.Course{}).Where("id = ?", courseID).Update("rating", mean)
}

// GetCourseReviews lists reviews of a course with reviewer names
func GetCourseReviews(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	reqData, _ := c.Locals("validatedList").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})

	var page, limit, offset int
	if reqData != nil {
		page, limit, offset = utils.Pagination(reqData.Page, reqData.Limit)
	} else {
		page, limit, offset = utils.Pagination(nil, nil)
	}

	db := database.Database.Db.Model(&models.Review{}).Where("course_id = ? AND is_deleted = ?", courseID, false)

	var total int64
	db.Count(&total)

	var reviews []models.Review
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&reviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	type ReviewWithUser struct {
		models.Review
		UserName string `json:"user_name"`
	}

	result := make([]ReviewWithUser, len(reviews))
	for i, r := range reviews {
		var reviewer models.User
		database.Database.Db.Select("name").Where("id = ?", r.UserID).First(&reviewer)
		result[i] = ReviewWithUser{Review: r, UserName: reviewer.Name}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched successfully!", fiber.Map{
		"reviews": result,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
