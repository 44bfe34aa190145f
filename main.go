package main

import (
	"github.com/quickdo/go-todo/app"
	_ "github.com/quickdo/go-todo/docs"
)

// @title Quickdo ToDo API
// @version 1.0
// @description Backend danh sách việc cần làm cho nhiều người dùng, đăng nhập bằng session cookie.
// @BasePath /
func main() {
	// setup and run app
	err := app.SetupAndRunApp()
	if err != nil {
		panic(err)
	}
}
