package models

import "time"

// ToDo là cấu trúc dữ liệu của một việc cần làm, thuộc về đúng một người dùng
type ToDo struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"-"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	File      *string   `json:"file"` // Đường dẫn file đính kèm trong thư mục media, nil nếu không có
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
}

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"` // Lưu mật khẩu đã được mã hóa (hashed)
}
