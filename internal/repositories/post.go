package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/vkotenko/blogsrv/internal/logger"
	"github.com/vkotenko/blogsrv/internal/models"
)

// PostReadRepository reads blog posts from the database.
type PostReadRepository struct {
	db *sqlx.DB
}

// NewPostReadRepository creates a new PostReadRepository instance.
func NewPostReadRepository(db *sqlx.DB) *PostReadRepository {
	return &PostReadRepository{db: db}
}

// GetByID returns the post with the given id joined with its author's
// username, or ErrNotFound.
func (r *PostReadRepository) GetByID(ctx context.Context, id int64) (*models.PostDB, error) {
	const query = `
		SELECT p.id, p.author_id, u.username AS author,
		       p.title, p.subtitle, p.body, p.img_url, p.date
		FROM blog_posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = $1
	`

	var post models.PostDB
	if err := r.db.GetContext(ctx, &post, query, id); err != nil {
		return nil, mapError(err)
	}
	return &post, nil
}

// ListAll returns every post, newest first.
func (r *PostReadRepository) ListAll(ctx context.Context) ([]models.PostDB, error) {
	const query = `
		SELECT p.id, p.author_id, u.username AS author,
		       p.title, p.subtitle, p.body, p.img_url, p.date
		FROM blog_posts p
		JOIN users u ON u.id = p.author_id
		ORDER BY p.id DESC
	`

	var posts []models.PostDB
	if err := r.db.SelectContext(ctx, &posts, query); err != nil {
		return nil, mapError(err)
	}
	return posts, nil
}

// PostWriteRepository writes blog posts to the database.
type PostWriteRepository struct {
	db *sqlx.DB
}

// NewPostWriteRepository creates a new PostWriteRepository instance.
func NewPostWriteRepository(db *sqlx.DB) *PostWriteRepository {
	return &PostWriteRepository{db: db}
}

// Save inserts a new post and returns its assigned id. A duplicate title
// fails with ErrUniqueViolation, a missing author with
// ErrForeignKeyViolation.
func (r *PostWriteRepository) Save(ctx context.Context, post *models.PostDB) (int64, error) {
	const query = `
		INSERT INTO blog_posts (author_id, title, subtitle, body, img_url, date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id int64
	err := r.db.GetContext(ctx, &id, query,
		post.AuthorID, post.Title, post.Subtitle, post.Body, post.ImgURL, post.Date)
	if err != nil {
		return 0, mapError(err)
	}

	logger.Log.Infow("post saved", "id", id, "title", post.Title)
	return id, nil
}

// Update rewrites the mutable fields of a post. The date column is left
// untouched. Returns ErrNotFound when the id does not exist.
func (r *PostWriteRepository) Update(ctx context.Context, post *models.PostDB) error {
	const query = `
		UPDATE blog_posts
		SET title = $2, subtitle = $3, body = $4, img_url = $5
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query,
		post.ID, post.Title, post.Subtitle, post.Body, post.ImgURL)
	if err != nil {
		return mapError(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}

	logger.Log.Infow("post updated", "id", post.ID, "title", post.Title)
	return nil
}

// Delete removes a post and its comments in a single transaction, so a
// half-deleted post can never be observed. Returns ErrNotFound when the
// id does not exist.
func (r *PostWriteRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM comments WHERE post_id = $1`, id); err != nil {
		return mapError(err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	logger.Log.Infow("post deleted", "id", id)
	return nil
}
