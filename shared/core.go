// Copyright 2025 codetrail authors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package shared

import (
	"log/slog"
	"os"
	"time"

	"github.com/codetrail-dev/codetrail/database"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/lmittmann/tint"
	"gorm.io/gorm"
)

type Server = *echo.Group
type MiddlewareFunc = echo.MiddlewareFunc
type Context = echo.Context
type DB = *gorm.DB

func Ptr[T any](t T) *T {
	return &t
}

func DatabaseFactory() (DB, error) {
	return database.NewConnection(os.Getenv("POSTGRES_HOST"), os.Getenv("POSTGRES_USER"), os.Getenv("POSTGRES_PASSWORD"), os.Getenv("POSTGRES_DB"), os.Getenv("POSTGRES_PORT"))
}

// InitLogger sets the global slog logger up with a tint handler.
func InitLogger() {
	w := os.Stderr

	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      slog.LevelDebug,
			AddSource:  true,
			TimeFormat: time.Kitchen,
		}),
	))
}

func LoadConfig() error {
	return godotenv.Load()
}

var V = validator.New()

// ProjectsDir is the root folder holding one directory per project
// (uploaded archive plus extracted sources).
func ProjectsDir() string {
	if dir := os.Getenv("PROJECTS_DIR"); dir != "" {
		return dir
	}
	return "data/projects"
}

// RulesDir is the root folder holding one checkout per rule repository.
func RulesDir() string {
	if dir := os.Getenv("RULES_DIR"); dir != "" {
		return dir
	}
	return "data/rules"
}
