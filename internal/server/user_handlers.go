// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"batshit/internal/models"

	"github.com/gofiber/fiber/v2"
)

// SearchUsers handles GET /api/users/search?q=...
func (s *Server) SearchUsers(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	query := c.Query("q")

	users, err := s.userService.Search(c.Context(), userID, query)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{"users": users})
}
