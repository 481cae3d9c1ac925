package services

import (
	"context"
	"errors"
	"time"

	"github.com/vkotenko/blogsrv/internal/logger"
	"github.com/vkotenko/blogsrv/internal/models"
	"github.com/vkotenko/blogsrv/internal/repositories"
)

// PostReader defines read-only operations for posts.
type PostReader interface {
	GetByID(ctx context.Context, id int64) (*models.PostDB, error)
	ListAll(ctx context.Context) ([]models.PostDB, error)
}

// PostWriter defines write operations for posts.
type PostWriter interface {
	Save(ctx context.Context, post *models.PostDB) (int64, error)
	Update(ctx context.Context, post *models.PostDB) error
	Delete(ctx context.Context, id int64) error
}

// PostService handles the post lifecycle.
type PostService struct {
	reader PostReader
	writer PostWriter
	now    func() time.Time
}

// NewPostService creates a new PostService instance.
func NewPostService(reader PostReader, writer PostWriter) *PostService {
	return &PostService{
		reader: reader,
		writer: writer,
		now:    time.Now,
	}
}

// List returns all posts.
func (svc *PostService) List(ctx context.Context) ([]models.PostDB, error) {
	return svc.reader.ListAll(ctx)
}

// Get returns a single post or ErrNotFound.
func (svc *PostService) Get(ctx context.Context, id int64) (*models.PostDB, error) {
	post, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return post, nil
}

// Create stores a new post authored by the given user. The creation date
// is stamped here, once, in the human-readable post format; edits never
// touch it. A duplicate title fails with ErrTitleExists.
func (svc *PostService) Create(ctx context.Context, authorID int64, form models.PostForm) (int64, error) {
	post := &models.PostDB{
		AuthorID: authorID,
		Title:    form.Title,
		Subtitle: form.Subtitle,
		Body:     form.Body,
		ImgURL:   form.ImgURL,
		Date:     svc.now().Format(models.PostDateLayout),
	}

	id, err := svc.writer.Save(ctx, post)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrUniqueViolation):
			logger.Log.Infow("post title already exists", "title", form.Title)
			return 0, ErrTitleExists
		case errors.Is(err, repositories.ErrForeignKeyViolation):
			return 0, ErrBadReference
		}
		logger.Log.Errorw("failed to save post", "err", err)
		return 0, err
	}
	return id, nil
}

// Update rewrites the title, subtitle, image URL and body of an existing
// post. Returns ErrNotFound for a missing id and ErrTitleExists when the
// new title collides with another post.
func (svc *PostService) Update(ctx context.Context, id int64, form models.PostForm) error {
	post := &models.PostDB{
		ID:       id,
		Title:    form.Title,
		Subtitle: form.Subtitle,
		Body:     form.Body,
		ImgURL:   form.ImgURL,
	}

	if err := svc.writer.Update(ctx, post); err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return ErrNotFound
		case errors.Is(err, repositories.ErrUniqueViolation):
			return ErrTitleExists
		}
		logger.Log.Errorw("failed to update post", "err", err)
		return err
	}
	return nil
}

// Delete removes a post together with its comments. Returns ErrNotFound
// for a missing id.
func (svc *PostService) Delete(ctx context.Context, id int64) error {
	if err := svc.writer.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFound
		}
		logger.Log.Errorw("failed to delete post", "err", err)
		return err
	}
	return nil
}
