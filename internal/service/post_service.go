package service

import (
	"context"
	"fmt"
	"io"

	"goblog/internal/apperrors"
	"goblog/internal/config"
	"goblog/internal/models"
	"goblog/internal/repository"
	"goblog/internal/storage"
)

type PostService interface {
	CreatePost(ctx context.Context, req repository.CreatePostRequest) (*models.Post, error)
	UpdatePost(ctx context.Context, req repository.UpdatePostRequest) (*models.Post, error)
	DeletePost(ctx context.Context, postID, userID string) error
	SetFeaturedImage(ctx context.Context, postID, userID, fileName string, file io.Reader, size int64) (*models.Post, error)
}

type postService struct {
	postRepo repository.PostRepository
	storage  storage.Storage
	cfg      *config.Config
}

func NewPostService(postRepo repository.PostRepository, storage storage.Storage, cfg *config.Config) PostService {
	return &postService{
		postRepo: postRepo,
		storage:  storage,
		cfg:      cfg,
	}
}

// authorizeOwner is the single ownership predicate behind update and delete.
// A valid token with the wrong subject is Forbidden, not Unauthorized.
func authorizeOwner(post *models.Post, userID string) error {
	if post.UserID != userID {
		return apperrors.New(apperrors.KindForbidden, "Not authorized to modify this post")
	}
	return nil
}

// CreatePost sets the owner from the authenticated subject, never from
// client input.
func (p *postService) CreatePost(ctx context.Context, req repository.CreatePostRequest) (*models.Post, error) {
	post := &models.Post{
		Title:      req.Title,
		Content:    req.Content,
		CategoryID: req.CategoryID,
		UserID:     req.UserID,
	}

	err := p.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	// re-read to resolve the category name and owner username
	return p.postRepo.GetByID(ctx, post.PostID)
}

func (p *postService) UpdatePost(ctx context.Context, req repository.UpdatePostRequest) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		return nil, err
	}

	if err := authorizeOwner(post, req.UserID); err != nil {
		return nil, err
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.CategoryID != nil {
		post.CategoryID = *req.CategoryID
	}

	err = p.postRepo.Update(ctx, post)
	if err != nil {
		return nil, err
	}

	return p.postRepo.GetByID(ctx, req.PostID)
}

func (p *postService) DeletePost(ctx context.Context, postID, userID string) error {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if err := authorizeOwner(post, userID); err != nil {
		return err
	}

	return p.postRepo.Delete(ctx, postID)
}

// SetFeaturedImage uploads the image to object storage and points the post's
// featured-image reference at it.
func (p *postService) SetFeaturedImage(ctx context.Context, postID, userID, fileName string, file io.Reader, size int64) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if err := authorizeOwner(post, userID); err != nil {
		return nil, err
	}

	objectName, imageURL, err := p.storage.UploadImage(ctx, postID, fileName, file, size)
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	post.FeaturedImage = imageURL

	err = p.postRepo.Update(ctx, post)
	if err != nil {
		p.storage.DeleteImage(ctx, objectName)
		return nil, err
	}

	return p.postRepo.GetByID(ctx, postID)
}
