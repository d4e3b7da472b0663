package sqlite

import (
	"context"
	"database/sql"

	"github.com/inkwell-press/inkwell/internal/blog/domain"
	"github.com/inkwell-press/inkwell/internal/blog/store"
)

type postsRepo struct {
	db dbtx
}

// Every read joins the author's username for client convenience; password
// material never leaves the accounts table.
const postSelect = `
	SELECT p.id, p.title, p.summary, p.content, p.cover, p.author_id,
	       p.created_at, p.updated_at, a.username
	  FROM posts p
	  JOIN accounts a ON a.id = p.author_id`

func (r *postsRepo) CreatePost(ctx context.Context, p domain.Post) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO posts (id, title, summary, content, cover, author_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Title, p.Summary, p.Content, p.Cover, p.AuthorID, p.CreatedAt, p.UpdatedAt)
	return mapConstraint(err)
}

func (r *postsRepo) GetPostByID(ctx context.Context, id string) (domain.Post, error) {
	row := r.db.QueryRowContext(ctx, postSelect+` WHERE p.id = ?`, id)
	return scanPost(row)
}

func (r *postsRepo) ListPosts(ctx context.Context, limit int) ([]domain.Post, error) {
	rows, err := r.db.QueryContext(ctx,
		postSelect+` ORDER BY p.created_at DESC, p.id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]domain.Post, 0, limit)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// UpdatePost deliberately leaves author_id out of the statement: authorship
// is fixed at creation.
func (r *postsRepo) UpdatePost(ctx context.Context, p domain.Post) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE posts SET title = ?, summary = ?, content = ?, cover = ?, updated_at = ?
		  WHERE id = ?`,
		p.Title, p.Summary, p.Content, p.Cover, p.UpdatedAt, p.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *postsRepo) DeletePost(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func requireRowAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func scanPost(row rowScanner) (domain.Post, error) {
	var p domain.Post
	err := row.Scan(
		&p.ID, &p.Title, &p.Summary, &p.Content, &p.Cover, &p.AuthorID,
		&p.CreatedAt, &p.UpdatedAt, &p.AuthorUsername,
	)
	if err != nil {
		return domain.Post{}, mapNotFound(err)
	}
	return p, nil
}
