package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Thư mục con chứa file đính kèm của todo bên trong media root
const todoFilesDir = "todo_files"

// MediaStore lưu file đính kèm trên đĩa, bên dưới một thư mục media duy nhất
type MediaStore struct {
	root string
}

var media *MediaStore

// GetMedia trả về MediaStore hiện tại
func GetMedia() *MediaStore {
	return media
}

// SetMedia thay thế MediaStore hiện tại (dùng trong test)
func SetMedia(m *MediaStore) {
	media = m
}

// NewMediaStore tạo media root (và thư mục todo_files) nếu chưa tồn tại
func NewMediaStore(root string) (*MediaStore, error) {
	if err := os.MkdirAll(filepath.Join(root, todoFilesDir), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media directory: %w", err)
	}
	return &MediaStore{root: root}, nil
}

// Root trả về đường dẫn thư mục media
func (m *MediaStore) Root() string {
	return m.root
}

// Save lưu file tải lên vào thư mục todo_files và trả về đường dẫn tương đối
// (ví dụ "todo_files/3f2c..._notes.txt") để ghi vào database.
// Tên file được thêm tiền tố UUID để không bao giờ ghi đè file của người khác.
func (m *MediaStore) Save(upload *multipart.FileHeader) (string, error) {
	src, err := upload.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	name := uuid.NewString() + "_" + filepath.Base(upload.Filename)
	rel := filepath.ToSlash(filepath.Join(todoFilesDir, name))

	dst, err := os.Create(filepath.Join(m.root, todoFilesDir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create media file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write media file: %w", err)
	}

	return rel, nil
}

// SavePath sao chép một file có sẵn trên đĩa vào thư mục todo_files
// (dùng cho lệnh import dữ liệu mẫu) và trả về đường dẫn tương đối.
func (m *MediaStore) SavePath(path string) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open source file: %w", err)
	}
	defer src.Close()

	name := uuid.NewString() + "_" + filepath.Base(path)
	rel := filepath.ToSlash(filepath.Join(todoFilesDir, name))

	dst, err := os.Create(filepath.Join(m.root, todoFilesDir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create media file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write media file: %w", err)
	}

	return rel, nil
}

// Remove xóa một file đã lưu (dọn dẹp khi ghi database thất bại)
func (m *MediaStore) Remove(rel string) error {
	return os.Remove(filepath.Join(m.root, filepath.FromSlash(rel)))
}

// AbsoluteURL chuyển đường dẫn tương đối trong media thành URL tuyệt đối
// theo origin của request; trả về nil nếu không có file đính kèm
func AbsoluteURL(baseURL string, rel *string) *string {
	if rel == nil || *rel == "" {
		return nil
	}
	u := baseURL + "/media/" + *rel
	return &u
}
