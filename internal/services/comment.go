package services

import (
	"context"
	"errors"

	"github.com/vkotenko/blogsrv/internal/logger"
	"github.com/vkotenko/blogsrv/internal/models"
	"github.com/vkotenko/blogsrv/internal/repositories"
)

// CommentReader defines read-only operations for comments.
type CommentReader interface {
	ListByPostID(ctx context.Context, postID int64) ([]models.CommentDB, error)
}

// CommentWriter defines write operations for comments.
type CommentWriter interface {
	Save(ctx context.Context, postID, authorID int64, body string) (int64, error)
}

// CommentService handles comment creation and per-post listing.
type CommentService struct {
	reader CommentReader
	writer CommentWriter
}

// NewCommentService creates a new CommentService instance.
func NewCommentService(reader CommentReader, writer CommentWriter) *CommentService {
	return &CommentService{
		reader: reader,
		writer: writer,
	}
}

// ListForPost returns only the comments belonging to the given post.
func (svc *CommentService) ListForPost(ctx context.Context, postID int64) ([]models.CommentDB, error) {
	return svc.reader.ListByPostID(ctx, postID)
}

// Create stores a comment by an authenticated author on a post. Writing
// against a post or author that no longer exists fails with ErrNotFound.
func (svc *CommentService) Create(ctx context.Context, postID, authorID int64, body string) (int64, error) {
	id, err := svc.writer.Save(ctx, postID, authorID, body)
	if err != nil {
		if errors.Is(err, repositories.ErrForeignKeyViolation) {
			logger.Log.Infow("comment references missing row", "post_id", postID, "author_id", authorID)
			return 0, ErrNotFound
		}
		logger.Log.Errorw("failed to save comment", "err", err)
		return 0, err
	}
	return id, nil
}
