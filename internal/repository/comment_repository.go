package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"goblog/internal/apperrors"
	"goblog/internal/models"
)

type commentRepository struct {
	db *sqlx.DB
}

type CreateCommentRequest struct {
	UserID  string `json:"userId"`
	PostID  string `json:"postId"`
	Content string `json:"content"`
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	comment.CommentID = uuid.New().String()
	comment.CreatedAt = time.Now()

	query := `
		INSERT INTO comments (comment_id, content, user_id, post_id, created_at)
		VALUES (:comment_id, :content, :user_id, :post_id, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, comment)
	if err != nil {
		if isForeignKeyViolation(err, "post") {
			return apperrors.Wrap(apperrors.KindNotFound, "Post not found", err)
		}
		if isForeignKeyViolation(err, "user") {
			return apperrors.Wrap(apperrors.KindNotFound, "User not found", err)
		}
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return nil
}

// GetByPostID returns comments oldest first so they read as a thread.
func (r *commentRepository) GetByPostID(ctx context.Context, postID string) ([]models.Comment, error) {
	query := `
		SELECT m.comment_id, m.content, m.user_id, u.username, m.post_id, m.created_at
		FROM comments m
		JOIN users u ON u.user_id = m.user_id
		WHERE m.post_id = $1
		ORDER BY m.created_at ASC
	`

	comments := []models.Comment{}
	err := r.db.SelectContext(ctx, &comments, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}

	return comments, nil
}
