package models

// PostDB represents a blog post row joined with its author's username.
type PostDB struct {
	ID       int64  `db:"id"`
	AuthorID int64  `db:"author_id"`
	Author   string `db:"author"`
	Title    string `db:"title"`
	Subtitle string `db:"subtitle"`
	Body     string `db:"body"`
	ImgURL   string `db:"img_url"`
	// Date is the human-readable creation date, stamped once when the
	// post is created and never recomputed on edit.
	Date string `db:"date"`
}

// PostDateLayout is the format posts are date-stamped with.
const PostDateLayout = "January 02, 2006"
