package handlers

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"goblog/internal/config"
	"goblog/internal/database"
	"goblog/internal/repository"
	"goblog/internal/service"
)

type Handlers struct {
	AuthService     service.AuthService
	PostService     service.PostService
	CategoryService service.CategoryService
	CommentService  service.CommentService
	PostRepo        repository.PostRepository
	CategoryRepo    repository.CategoryRepository
	CommentRepo     repository.CommentRepository
	DB              *database.DB
	Cfg             *config.Config
	Log             *logrus.Logger
	Validate        *validator.Validate
}

func NewHandlers(repo *repository.Repository, service *service.Service, db *database.DB, cfg *config.Config, log *logrus.Logger) *Handlers {
	return &Handlers{
		AuthService:     service.Auth,
		PostService:     service.Post,
		CategoryService: service.Category,
		CommentService:  service.Comment,
		PostRepo:        repo.Post,
		CategoryRepo:    repo.Category,
		CommentRepo:     repo.Comment,
		DB:              db,
		Cfg:             cfg,
		Log:             log,
		Validate:        NewValidator(),
	}
}

// NewValidator reports field names by their json tag so validation errors
// match the wire contract.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
