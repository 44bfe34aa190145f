package handlers

import "github.com/gofiber/fiber/v2"

// HandleHealthCheck kiểm tra tình trạng dịch vụ
// @Summary Health check
// @Produce json
// @Router /health [get]
func HandleHealthCheck(c *fiber.Ctx) error {
	return c.Status(200).JSON(fiber.Map{"ok": true, "status": "healthy"})
}
