// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"batshit/internal/middleware"
	"batshit/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateRating handles POST /api/ratings
func (s *Server) CreateRating(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		IdeaID uint `json:"idea_id"`
		Score  int  `json:"score"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.IdeaID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("idea_id is required"))
	}

	rating, err := s.ratingService.RecordRating(c.Context(), userID, req.IdeaID, req.Score)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	if idea, ideaErr := s.ideaService.GetIdea(c.Context(), req.IdeaID); ideaErr == nil {
		middleware.RatingsRecorded.WithLabelValues(string(idea.Category)).Inc()
	}

	return c.Status(fiber.StatusCreated).JSON(rating)
}

// CheckRating handles GET /api/ratings/check/:ideaId
func (s *Server) CheckRating(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	ideaID, err := s.parseID(c, "ideaId")
	if err != nil {
		return nil
	}

	rating, err := s.ratingService.CheckRating(c.Context(), userID, ideaID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"has_rated": rating != nil,
		"rating":    rating,
	})
}

// GetRatingComparison handles GET /api/ratings/comparison
func (s *Server) GetRatingComparison(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	comparison, err := s.ratingService.Comparison(c.Context(), userID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(comparison)
}
