package handlers

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// jsonBody đọc body của request thành một map.
// Body rỗng hoặc JSON hỏng được coi là object rỗng, việc kiểm tra
// thiếu trường sẽ do từng handler tự quyết định.
func jsonBody(c *fiber.Ctx) map[string]any {
	body := c.Body()
	if len(body) == 0 {
		return map[string]any{}
	}

	data := map[string]any{}
	if err := json.Unmarshal(body, &data); err != nil {
		return map[string]any{}
	}
	return data
}

// getParam tìm giá trị của một trường theo danh sách key ứng viên, theo đúng thứ tự:
// với mỗi key, xem JSON body trước rồi mới đến form. Giá trị rỗng hoặc null
// được coi như không có và tiếp tục với key kế tiếp.
func getParam(c *fiber.Ctx, data map[string]any, keys ...string) any {
	for _, key := range keys {
		if v, ok := data[key]; ok && !isEmptyValue(v) {
			return v
		}
		if v := formValue(c, key); v != "" {
			return v
		}
	}
	return nil
}

// formValue đọc một trường từ body của request: form-encoded trước, rồi đến
// multipart. Không bao giờ đọc từ query string.
func formValue(c *fiber.Ctx, key string) string {
	if v := c.Request().PostArgs().Peek(key); len(v) > 0 {
		return string(v)
	}
	if form, err := c.MultipartForm(); err == nil && form != nil {
		if vals := form.Value[key]; len(vals) > 0 {
			return vals[0]
		}
	}
	return ""
}

// getString như getParam nhưng trả về chuỗi ("" nếu không có)
func getString(c *fiber.Ctx, data map[string]any, keys ...string) string {
	v := getParam(c, data, keys...)
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}

// parseBool hiểu các giá trị boolean "lỏng" từ client.
// Boolean thật được giữ nguyên; chuỗi được so khớp không phân biệt hoa thường;
// giá trị lạ hoặc thiếu thì dùng def.
func parseBool(v any, def bool) bool {
	if v == nil {
		return def
	}
	if b, ok := v.(bool); ok {
		return b
	}

	switch strings.ToLower(strings.TrimSpace(fmt.Sprint(v))) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return def
}
