package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"goblog/internal/apperrors"
	"goblog/internal/models"
)

type postRepository struct {
	db *sqlx.DB
}

type CreatePostRequest struct {
	UserID     string `json:"userId"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	CategoryID string `json:"category"`
}

type UpdatePostRequest struct {
	PostID     string  `json:"postId"`
	UserID     string  `json:"userId"`
	Title      *string `json:"title"`
	Content    *string `json:"content"`
	CategoryID *string `json:"category"`
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

// postColumns resolves the category name and owner username on every read,
// the relational equivalent of the document store's populate.
const postColumns = `
		p.post_id, p.title, p.content, p.category_id, c.name AS category_name,
		p.user_id, u.username, p.featured_image, p.created_at, p.updated_at
`

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}
	if post.FeaturedImage == "" {
		post.FeaturedImage = "placeholder.jpg"
	}

	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	query := `
		INSERT INTO posts (post_id, title, content, category_id, user_id, featured_image, created_at, updated_at)
		VALUES (:post_id, :title, :content, :category_id, :user_id, :featured_image, :created_at, :updated_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		if isForeignKeyViolation(err, "category") {
			return apperrors.Wrap(apperrors.KindNotFound, "Category not found", err)
		}
		if isForeignKeyViolation(err, "user") {
			return apperrors.Wrap(apperrors.KindNotFound, "User not found", err)
		}
		return fmt.Errorf("failed to create post: %w", err)
	}

	return nil
}

func (r *postRepository) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	query := `
		SELECT` + postColumns + `
		FROM posts p
		JOIN categories c ON c.category_id = p.category_id
		JOIN users u ON u.user_id = p.user_id
		WHERE p.post_id = $1
	`

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.New(apperrors.KindNotFound, "Post not found")
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return &post, nil
}

// GetAll returns posts newest first.
func (r *postRepository) GetAll(ctx context.Context) ([]models.Post, error) {
	query := `
		SELECT` + postColumns + `
		FROM posts p
		JOIN categories c ON c.category_id = p.category_id
		JOIN users u ON u.user_id = p.user_id
		ORDER BY p.created_at DESC
	`

	posts := []models.Post{}
	err := r.db.SelectContext(ctx, &posts, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get posts: %w", err)
	}

	return posts, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	post.UpdatedAt = time.Now()

	query := `
		UPDATE posts SET
			title = :title,
			content = :content,
			category_id = :category_id,
			featured_image = :featured_image,
			updated_at = :updated_at
		WHERE post_id = :post_id
	`

	result, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		if isForeignKeyViolation(err, "category") {
			return apperrors.Wrap(apperrors.KindNotFound, "Category not found", err)
		}
		return fmt.Errorf("failed to update post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.New(apperrors.KindNotFound, "Post not found")
	}

	return nil
}

func (r *postRepository) Delete(ctx context.Context, postID string) error {
	query := `DELETE FROM posts WHERE post_id = $1`

	result, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.New(apperrors.KindNotFound, "Post not found")
	}

	return nil
}
