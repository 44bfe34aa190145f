package main

import (
	"database/sql"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/quickdo/go-todo/config"
	"github.com/quickdo/go-todo/database"
	"github.com/quickdo/go-todo/storage"
	"github.com/quickdo/go-todo/utils"
	"golang.org/x/crypto/bcrypt"
)

// Dữ liệu mẫu: danh sách user và todo, todo tham chiếu user qua username
type sampleData struct {
	Users []sampleUser `json:"users"`
	Todos []sampleToDo `json:"todos"`
}

type sampleUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type sampleToDo struct {
	Username string `json:"username"`
	Title    string `json:"title"`
	Text     string `json:"text"`
	Done     bool   `json:"done"`
	File     string `json:"file"`
}

func main() {
	path := flag.String("path", "sample_data.json", "đường dẫn tới file JSON dữ liệu mẫu")
	flag.Parse()

	if err := run(*path); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(path string) error {
	if err := config.LoadENV(); err != nil {
		return err
	}

	if err := database.StartPostgreSQL(); err != nil {
		return err
	}
	defer database.ClosePostgreSQL()

	media, err := storage.NewMediaStore(config.GetEnv("MEDIA_ROOT", "./media"))
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("sample data file not found: %w", err)
	}

	var data sampleData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("invalid sample data: %w", err)
	}

	db := database.GetDB()

	// Tạo user nếu chưa có, cập nhật hash nếu mật khẩu trong file đã thay đổi
	for _, u := range data.Users {
		if u.Username == "" || u.Password == "" {
			continue
		}
		if err := upsertUser(db, u.Username, u.Password); err != nil {
			return err
		}
	}

	imported := 0
	for _, t := range data.Todos {
		if t.Username == "" {
			continue
		}

		var userID int64
		err := db.QueryRow("SELECT id FROM users WHERE username=$1", t.Username).Scan(&userID)
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}
		if err != nil {
			return fmt.Errorf("db error: %w", err)
		}

		title := t.Title
		if title == "" {
			title = "Untitled"
		}

		var filePath *string
		if t.File != "" {
			if _, statErr := os.Stat(t.File); statErr == nil {
				rel, saveErr := media.SavePath(t.File)
				if saveErr != nil {
					return saveErr
				}
				filePath = &rel
			}
		}

		id, err := utils.GenerateRandomID()
		if err != nil {
			return err
		}

		_, err = db.Exec(
			"INSERT INTO todos (id, user_id, title, text, file, done) VALUES ($1, $2, $3, $4, $5, $6)",
			id, userID, title, t.Text, filePath, t.Done,
		)
		if err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		imported++
	}

	fmt.Printf("Sample data imported: %d users, %d todos\n", len(data.Users), imported)
	return nil
}

func upsertUser(db *sql.DB, username, password string) error {
	var id int64
	var hash string
	err := db.QueryRow("SELECT id, password FROM users WHERE username=$1", username).Scan(&id, &hash)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		hashed, hashErr := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if hashErr != nil {
			return hashErr
		}
		_, err = db.Exec("INSERT INTO users (username, password) VALUES ($1, $2)", username, string(hashed))
		if err != nil {
			return fmt.Errorf("db error: %w", err)
		}
	case err != nil:
		return fmt.Errorf("db error: %w", err)
	default:
		// User đã tồn tại: chỉ cập nhật khi mật khẩu trong file không khớp hash hiện tại
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
			hashed, hashErr := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if hashErr != nil {
				return hashErr
			}
			_, err = db.Exec("UPDATE users SET password=$1 WHERE username=$2", string(hashed), username)
			if err != nil {
				return fmt.Errorf("db error: %w", err)
			}
		}
	}

	return nil
}
