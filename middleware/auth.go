package middleware

import (
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookie là tên cookie chứa token phiên đăng nhập
const SessionCookie = "session"

// RequireSession xác thực phiên đăng nhập trước khi cho vào handler.
// Token được lấy từ cookie "session", hoặc từ header Authorization nếu không có cookie.
func RequireSession(c *fiber.Ctx) error {
	tokenString := c.Cookies(SessionCookie)
	if tokenString == "" {
		// Tách từ "Bearer <token>"
		authHeader := c.Get("Authorization")
		tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			tokenString = ""
		}
	}
	if tokenString == "" {
		return unauthenticated(c)
	}

	// Parse và kiểm tra token
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return unauthenticated(c)
	}

	// Lưu thông tin user vào context nếu token hợp lệ
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return unauthenticated(c)
	}
	id, ok := claims["user_id"].(float64)
	if !ok {
		return unauthenticated(c)
	}
	c.Locals("user_id", int64(id))

	return c.Next()
}

// UserID trả về id người dùng đã xác thực của request hiện tại
func UserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals("user_id").(int64)
	return id
}

func unauthenticated(c *fiber.Ctx) error {
	return c.Status(401).JSON(fiber.Map{"ok": false, "error": "authentication required"})
}
