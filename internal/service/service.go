package service

import (
	"goblog/internal/config"
	"goblog/internal/repository"
	"goblog/internal/storage"
)

type Service struct {
	Auth     AuthService
	Post     PostService
	Category CategoryService
	Comment  CommentService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Auth:     NewAuthService(rep.User, cfg),
		Post:     NewPostService(rep.Post, storage, cfg),
		Category: NewCategoryService(rep.Category),
		Comment:  NewCommentService(rep.Comment, rep.Post, rep.User),
	}
}
