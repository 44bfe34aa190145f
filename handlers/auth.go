package handlers

import (
	"errors"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/quickdo/go-todo/database"
	"github.com/quickdo/go-todo/middleware"
	"github.com/quickdo/go-todo/models"
	"golang.org/x/crypto/bcrypt"
)

// Thời gian sống của một phiên đăng nhập
const sessionTTL = 24 * time.Hour

// RegisterHandler đăng ký người dùng mới
// @Summary Đăng ký tài khoản
// @Accept json
// @Produce json
// @Router /register [post]
func RegisterHandler(c *fiber.Ctx) error {
	data := jsonBody(c)
	username := getString(c, data, "username", "Username")
	password := getString(c, data, "password", "Password")

	if username == "" || password == "" {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "username and password required"})
	}

	// Hash mật khẩu
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"ok": false, "error": "could not hash password"})
	}

	// Lưu người dùng vào database
	var id int64
	err = database.GetDB().QueryRow(
		"INSERT INTO users (username, password) VALUES ($1, $2) RETURNING id",
		username, string(hashedPassword),
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return c.Status(400).JSON(fiber.Map{"ok": false, "error": "username already taken"})
		}
		return c.Status(500).JSON(fiber.Map{"ok": false, "error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{
		"ok":   true,
		"user": fiber.Map{"id": id, "username": username},
	})
}

// LoginHandler xác thực username/password và thiết lập session cookie
// @Summary Đăng nhập
// @Accept json
// @Produce json
// @Router /login [post]
func LoginHandler(c *fiber.Ctx) error {
	data := jsonBody(c)
	username := getString(c, data, "username", "Username")
	password := getString(c, data, "password", "Password")

	if username == "" || password == "" {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "username and password required"})
	}

	// Kiểm tra thông tin người dùng từ database.
	// Không phân biệt "user không tồn tại" và "sai mật khẩu" để tránh dò tên đăng nhập.
	var user models.User
	err := database.GetDB().QueryRow("SELECT id, username, password FROM users WHERE username=$1", username).
		Scan(&user.ID, &user.Username, &user.Password)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"ok": false, "error": "invalid credentials"})
	}

	// So khớp mật khẩu
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return c.Status(401).JSON(fiber.Map{"ok": false, "error": "invalid credentials"})
	}

	// Tạo token phiên và gắn vào cookie
	token, err := generateSessionToken(user.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"ok": false, "error": err.Error()})
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Expires:  time.Now().Add(sessionTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.Status(200).JSON(fiber.Map{
		"ok":   true,
		"user": fiber.Map{"id": user.ID, "username": user.Username},
	})
}

// LogoutHandler hủy phiên hiện tại; luôn thành công kể cả khi chưa đăng nhập
// @Summary Đăng xuất
// @Produce json
// @Router /logout [post]
func LogoutHandler(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.Status(200).JSON(fiber.Map{"ok": true})
}

// Tạo JWT token cho phiên đăng nhập
func generateSessionToken(userID int64) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(sessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
