package models

import (
	"time"
)

type User struct {
	UserID       string    `json:"id" db:"user_id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

type Category struct {
	CategoryID string    `json:"id" db:"category_id"`
	Name       string    `json:"name" db:"name"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}

// Post carries the category name and owner username resolved by the
// repository joins, so handlers do not need extra lookups.
type Post struct {
	PostID        string    `json:"id" db:"post_id"`
	Title         string    `json:"title" db:"title"`
	Content       string    `json:"content" db:"content"`
	CategoryID    string    `json:"-" db:"category_id"`
	CategoryName  string    `json:"-" db:"category_name"`
	UserID        string    `json:"-" db:"user_id"`
	Username      string    `json:"-" db:"username"`
	FeaturedImage string    `json:"featuredImage" db:"featured_image"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}

type Comment struct {
	CommentID string    `json:"id" db:"comment_id"`
	Content   string    `json:"content" db:"content"`
	UserID    string    `json:"-" db:"user_id"`
	Username  string    `json:"-" db:"username"`
	PostID    string    `json:"postId" db:"post_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
