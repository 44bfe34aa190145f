package app

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/quickdo/go-todo/config"
	"github.com/quickdo/go-todo/database"
	"github.com/quickdo/go-todo/router"
	"github.com/quickdo/go-todo/storage"
)

// SetupAndRunApp khởi động ứng dụng Fiber
func SetupAndRunApp() error {
	// Load biến môi trường từ file .env
	err := config.LoadENV()
	if err != nil {
		return err
	}

	// Khởi động PostgreSQL
	err = database.StartPostgreSQL()
	if err != nil {
		return err
	}

	// Đảm bảo kết nối với cơ sở dữ liệu được đóng sau khi ứng dụng kết thúc
	defer database.ClosePostgreSQL()

	// Chuẩn bị thư mục media cho file đính kèm
	media, err := storage.NewMediaStore(config.GetEnv("MEDIA_ROOT", "./media"))
	if err != nil {
		return err
	}
	storage.SetMedia(media)

	// Tạo ứng dụng Fiber; mọi lỗi của framework (404, 405, panic đã recover)
	// đều được trả về theo cùng một envelope JSON {ok:false, error}
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",                           // Cho phép tất cả các nguồn (có thể điều chỉnh)
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", // Các phương thức được phép
	}))

	// Đính kèm middleware để xử lý lỗi và ghi log
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${ip}]:${port} ${status} - ${method} ${path} ${latency}\n",
	}))

	// File đính kèm được phục vụ trực tiếp từ thư mục media
	app.Static("/media", media.Root())

	// Thiết lập route cho ứng dụng
	router.SetupRoutes(app)

	// Đính kèm Swagger (nếu cần)
	config.AddSwaggerRoutes(app)

	// Lấy port từ biến môi trường và bắt đầu lắng nghe kết nối
	port := config.GetEnv("PORT", "3000")

	// Lắng nghe trên cổng chỉ định
	return app.Listen(":" + port)
}

// errorHandler chuyển mọi lỗi Fiber thành envelope JSON thống nhất
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	return c.Status(code).JSON(fiber.Map{"ok": false, "error": err.Error()})
}
