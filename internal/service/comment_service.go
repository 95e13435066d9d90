package service

import (
	"context"

	"goblog/internal/models"
	"goblog/internal/repository"
)

type CommentService interface {
	CreateComment(ctx context.Context, req repository.CreateCommentRequest) (*models.Comment, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository, userRepo repository.UserRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

// CreateComment sets the author from the authenticated subject. The post
// reference must resolve at creation time.
func (s *commentService) CreateComment(ctx context.Context, req repository.CreateCommentRequest) (*models.Comment, error) {
	post, err := s.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetUserByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Content:  req.Content,
		UserID:   user.UserID,
		Username: user.Username,
		PostID:   post.PostID,
	}

	err = s.commentRepo.Create(ctx, comment)
	if err != nil {
		return nil, err
	}

	return comment, nil
}
