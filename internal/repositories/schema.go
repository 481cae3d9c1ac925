package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// schema is applied at startup. Uniqueness of username, email and post
// title is enforced here so concurrent writes rely on the store rather
// than application-level locking. Comments follow their post on delete.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id BIGSERIAL PRIMARY KEY,
	username VARCHAR(250) NOT NULL UNIQUE,
	email VARCHAR(250) NOT NULL UNIQUE,
	password_hash VARCHAR(250) NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS blog_posts (
	id BIGSERIAL PRIMARY KEY,
	author_id BIGINT NOT NULL REFERENCES users(id),
	title VARCHAR(250) NOT NULL UNIQUE,
	subtitle VARCHAR(250) NOT NULL,
	date VARCHAR(250) NOT NULL,
	body TEXT NOT NULL,
	img_url VARCHAR(250) NOT NULL
);

CREATE TABLE IF NOT EXISTS comments (
	id BIGSERIAL PRIMARY KEY,
	author_id BIGINT NOT NULL REFERENCES users(id),
	post_id BIGINT NOT NULL REFERENCES blog_posts(id) ON DELETE CASCADE,
	body TEXT NOT NULL
);
`

// Bootstrap creates the tables if they do not exist yet.
func Bootstrap(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
