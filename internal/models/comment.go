package models

// CommentDB represents a comment row joined with its author's username.
type CommentDB struct {
	ID       int64  `db:"id"`
	PostID   int64  `db:"post_id"`
	AuthorID int64  `db:"author_id"`
	Author   string `db:"author"`
	Body     string `db:"body"`
}
