package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/vkotenko/blogsrv/internal/logger"
	"github.com/vkotenko/blogsrv/internal/models"
)

// CommentReadRepository reads comments from the database.
type CommentReadRepository struct {
	db *sqlx.DB
}

// NewCommentReadRepository creates a new CommentReadRepository instance.
func NewCommentReadRepository(db *sqlx.DB) *CommentReadRepository {
	return &CommentReadRepository{db: db}
}

// ListByPostID returns the comments of a single post, oldest first. The
// filter runs in the store; callers never see another post's comments.
func (r *CommentReadRepository) ListByPostID(ctx context.Context, postID int64) ([]models.CommentDB, error) {
	const query = `
		SELECT c.id, c.post_id, c.author_id, u.username AS author, c.body
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.post_id = $1
		ORDER BY c.id
	`

	var comments []models.CommentDB
	if err := r.db.SelectContext(ctx, &comments, query, postID); err != nil {
		return nil, mapError(err)
	}
	return comments, nil
}

// CommentWriteRepository writes comments to the database.
type CommentWriteRepository struct {
	db *sqlx.DB
}

// NewCommentWriteRepository creates a new CommentWriteRepository instance.
func NewCommentWriteRepository(db *sqlx.DB) *CommentWriteRepository {
	return &CommentWriteRepository{db: db}
}

// Save inserts a new comment and returns its assigned id. A missing post
// or author fails with ErrForeignKeyViolation.
func (r *CommentWriteRepository) Save(ctx context.Context, postID, authorID int64, body string) (int64, error) {
	const query = `
		INSERT INTO comments (post_id, author_id, body)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int64
	err := r.db.GetContext(ctx, &id, query, postID, authorID, body)
	if err != nil {
		return 0, mapError(err)
	}

	logger.Log.Infow("comment saved", "id", id, "post_id", postID)
	return id, nil
}
