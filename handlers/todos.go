package handlers

import (
	"database/sql"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/quickdo/go-todo/database"
	"github.com/quickdo/go-todo/middleware"
	"github.com/quickdo/go-todo/models"
	"github.com/quickdo/go-todo/storage"
	"github.com/quickdo/go-todo/utils"
)

// Tạo mới một ToDo cho người dùng hiện tại, kèm file đính kèm nếu có
// @Summary Tạo việc cần làm
// @Accept json
// @Accept mpfd
// @Produce json
// @Router /createToDo [post]
func HandleCreateToDo(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	data := jsonBody(c)

	title := strings.TrimSpace(getString(c, data, "title", "Title"))
	text := getString(c, data, "text", "Text")

	if title == "" {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "title required"})
	}

	// Lưu file đính kèm trước, nếu ghi database thất bại thì xóa lại
	var filePath *string
	if upload := formFile(c, "file", "File"); upload != nil {
		rel, err := storage.GetMedia().Save(upload)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"ok": false, "error": err.Error()})
		}
		filePath = &rel
	}

	// Thử tạo ID tối đa 3 lần nếu ID bị trùng
	var id string
	var err error
	for i := 0; i < 3; i++ {
		id, err = utils.GenerateRandomID()
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"ok": false, "error": "failed to generate ID"})
		}

		// Kiểm tra ID có tồn tại trong database không
		var exists bool
		query := "SELECT EXISTS(SELECT 1 FROM todos WHERE id=$1)"
		if err := database.GetDB().QueryRow(query, id).Scan(&exists); err != nil {
			return c.Status(500).JSON(fiber.Map{"ok": false, "error": err.Error()})
		}

		// Nếu ID chưa tồn tại, thoát khỏi vòng lặp
		if !exists {
			break
		}

		// Nếu đã thử 3 lần và vẫn trùng, trả về lỗi
		if i == 2 {
			return c.Status(500).JSON(fiber.Map{"ok": false, "error": "failed to generate a unique ID"})
		}
	}

	// Chèn ToDo vào database
	query := "INSERT INTO todos (id, user_id, title, text, file) VALUES ($1, $2, $3, $4, $5)"
	_, err = database.GetDB().Exec(query, id, userID, title, text, filePath)
	if err != nil {
		if filePath != nil {
			_ = storage.GetMedia().Remove(*filePath)
		}
		return c.Status(500).JSON(fiber.Map{"ok": false, "error": err.Error()})
	}

	return c.Status(200).JSON(fiber.Map{
		"ok": true,
		"todo": fiber.Map{
			"id":    id,
			"title": title,
			"text":  text,
			"done":  false,
			"file":  storage.AbsoluteURL(c.BaseURL(), filePath),
		},
	})
}

// Đánh dấu một ToDo là đã xong (hoặc chưa xong).
// Điều kiện sở hữu nằm ngay trong câu UPDATE nên không thể sửa ToDo của người khác.
// @Summary Đánh dấu đã xong
// @Accept json
// @Produce json
// @Router /done [post]
func HandleMarkDone(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	data := jsonBody(c)

	id := getString(c, data, "id", "todo_id", "ToDoId")
	if id == "" {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "todo id required"})
	}

	// Thiếu trường done thì mặc định là đánh dấu đã xong
	done := parseBool(getParam(c, data, "done", "Done"), true)

	res, err := database.GetDB().Exec(
		"UPDATE todos SET done=$1 WHERE id=$2 AND user_id=$3",
		done, id, userID,
	)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"ok": false, "error": err.Error()})
	}

	count, _ := res.RowsAffected()
	if count == 0 {
		return c.Status(404).JSON(fiber.Map{"ok": false, "error": "todo not found"})
	}

	return c.Status(200).JSON(fiber.Map{
		"ok":   true,
		"todo": fiber.Map{"id": id, "done": done},
	})
}

// Lấy tất cả ToDo của người dùng hiện tại, mới nhất trước
// @Summary Danh sách việc cần làm
// @Produce json
// @Router /getToDos [get]
func HandleGetToDos(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	rows, err := database.GetDB().Query(
		"SELECT id, title, text, file, done, created_at FROM todos WHERE user_id=$1 ORDER BY created_at DESC",
		userID,
	)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"ok": false, "error": err.Error()})
	}
	defer rows.Close()

	todos := []models.ToDo{}
	for rows.Next() {
		var todo models.ToDo
		var file sql.NullString
		if err := rows.Scan(&todo.ID, &todo.Title, &todo.Text, &file, &todo.Done, &todo.CreatedAt); err != nil {
			return c.Status(500).JSON(fiber.Map{"ok": false, "error": err.Error()})
		}
		if file.Valid {
			todo.File = storage.AbsoluteURL(c.BaseURL(), &file.String)
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		return c.Status(500).JSON(fiber.Map{"ok": false, "error": err.Error()})
	}

	return c.Status(200).JSON(fiber.Map{"ok": true, "todos": todos})
}

// Xóa tất cả ToDo của người dùng hiện tại
// @Summary Xóa tất cả việc cần làm
// @Produce json
// @Router /deleteAllToDos [post]
func HandleDeleteAllToDos(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	res, err := database.GetDB().Exec("DELETE FROM todos WHERE user_id=$1", userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"ok": false, "error": err.Error()})
	}

	count, _ := res.RowsAffected()
	return c.Status(200).JSON(fiber.Map{"ok": true, "deleted": count})
}

// formFile tìm file tải lên theo danh sách key ứng viên, nil nếu không có
func formFile(c *fiber.Ctx, keys ...string) *multipart.FileHeader {
	for _, key := range keys {
		if fh, err := c.FormFile(key); err == nil && fh != nil {
			return fh
		}
	}
	return nil
}
