package handlers

import (
	"time"

	"goblog/internal/models"
)

// The API always uses "id" as the identifier field, on every resource.

type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type UserRef struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type PostResponse struct {
	ID            string      `json:"id"`
	Title         string      `json:"title"`
	Content       string      `json:"content"`
	Category      CategoryRef `json:"category"`
	User          UserRef     `json:"user"`
	FeaturedImage string      `json:"featuredImage"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

type CommentResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	User      UserRef   `json:"user"`
	PostID    string    `json:"postId"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:       user.UserID,
		Username: user.Username,
		Email:    user.Email,
	}
}

func toPostResponse(post *models.Post) PostResponse {
	return PostResponse{
		ID:      post.PostID,
		Title:   post.Title,
		Content: post.Content,
		Category: CategoryRef{
			ID:   post.CategoryID,
			Name: post.CategoryName,
		},
		User: UserRef{
			ID:       post.UserID,
			Username: post.Username,
		},
		FeaturedImage: post.FeaturedImage,
		CreatedAt:     post.CreatedAt,
		UpdatedAt:     post.UpdatedAt,
	}
}

func toCommentResponse(comment *models.Comment) CommentResponse {
	return CommentResponse{
		ID:      comment.CommentID,
		Content: comment.Content,
		User: UserRef{
			ID:       comment.UserID,
			Username: comment.Username,
		},
		PostID:    comment.PostID,
		CreatedAt: comment.CreatedAt,
	}
}
