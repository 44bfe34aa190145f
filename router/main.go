package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quickdo/go-todo/handlers"
	"github.com/quickdo/go-todo/middleware"
)

func SetupRoutes(app *fiber.App) {
	app.Get("/health", handlers.HandleHealthCheck)

	app.Post("/register", handlers.RegisterHandler)
	app.Post("/login", handlers.LoginHandler)
	app.Post("/logout", handlers.LogoutHandler)
	app.Get("/logout", handlers.LogoutHandler)

	// Các route bên dưới yêu cầu phiên đăng nhập hợp lệ
	app.Post("/createToDo", middleware.RequireSession, handlers.HandleCreateToDo)
	app.Post("/done", middleware.RequireSession, handlers.HandleMarkDone)
	app.Get("/getToDos", middleware.RequireSession, handlers.HandleGetToDos)
	app.Post("/deleteAllToDos", middleware.RequireSession, handlers.HandleDeleteAllToDos)
	app.Delete("/deleteAllToDos", middleware.RequireSession, handlers.HandleDeleteAllToDos)
}
