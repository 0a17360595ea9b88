// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"batshit/internal/middleware"
	"batshit/internal/models"
	"batshit/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// GetIdeas handles GET /api/ideas?filter=&limit=&offset=
func (s *Server) GetIdeas(c *fiber.Ctx) error {
	pagination := parsePagination(c, 20)
	filter := repository.NormalizeFilter(c.Query("filter"))

	middleware.FeedRequests.WithLabelValues(filter).Inc()

	ideas, err := s.ideaService.ListIdeas(c.Context(), filter, pagination.Limit, pagination.Offset)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"ideas":  ideas,
		"limit":  pagination.Limit,
		"offset": pagination.Offset,
	})
}

// GetIdea handles GET /api/ideas/:id
func (s *Server) GetIdea(c *fiber.Ctx) error {
	ideaID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	idea, err := s.ideaService.GetIdea(c.Context(), ideaID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(idea)
}

// CreateIdea handles POST /api/ideas
func (s *Server) CreateIdea(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Text        string `json:"text"`
		Category    string `json:"category"`
		IsAnonymous bool   `json:"is_anonymous"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	idea, err := s.ideaService.CreateIdea(c.Context(), userID, req.Text, req.Category, req.IsAnonymous)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	middleware.IdeasSubmitted.WithLabelValues(string(idea.Category)).Inc()

	return c.Status(fiber.StatusCreated).JSON(idea)
}
