package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"socialapp/model"
)

type PostRepository struct {
	db Executor
}

func NewPostRepository(db *sqlx.DB) *PostRepository {
	return &PostRepository{db: db}
}

// WithTx returns a copy of the repository bound to tx.
func (r *PostRepository) WithTx(tx *sqlx.Tx) *PostRepository {
	return &PostRepository{db: tx}
}

// FindAll returns every post, newest first.
func (r *PostRepository) FindAll(ctx context.Context) ([]model.Post, error) {
	query, args, err := sb.
		Select("id", "username", "content", "created_at", "updated_at", "likes_count", "comments_count").
		From("posts").
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	posts := []model.Post{}
	if err := r.db.SelectContext(ctx, &posts, query, args...); err != nil {
		return nil, err
	}
	return posts, nil
}

// FindByID returns the post with the given id, or nil when it does not exist.
func (r *PostRepository) FindByID(ctx context.Context, id int64) (*model.Post, error) {
	query, args, err := sb.
		Select("id", "username", "content", "created_at", "updated_at", "likes_count", "comments_count").
		From("posts").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var post model.Post
	if err := r.db.GetContext(ctx, &post, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// Insert stores a new post and fills in its generated id.
func (r *PostRepository) Insert(ctx context.Context, p *model.Post) error {
	query, args, err := sb.
		Insert("posts").
		Columns("username", "content", "created_at", "updated_at", "likes_count", "comments_count").
		Values(p.Username, p.Content, p.CreatedAt, p.UpdatedAt, p.LikesCount, p.CommentsCount).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	p.ID, err = res.LastInsertId()
	return err
}

// Update overwrites username, content and updated_at of an existing post.
func (r *PostRepository) Update(ctx context.Context, p *model.Post) error {
	query, args, err := sb.
		Update("posts").
		Set("username", p.Username).
		Set("content", p.Content).
		Set("updated_at", p.UpdatedAt).
		Where(sq.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}

// UpdateCounts stores freshly computed like/comment counters and refreshes
// updated_at, mirroring a full save of the parent row.
func (r *PostRepository) UpdateCounts(ctx context.Context, id int64, likes, comments int, updatedAt time.Time) error {
	query, args, err := sb.
		Update("posts").
		Set("likes_count", likes).
		Set("comments_count", comments).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}

// Delete removes a post. Comments and likes go with it via the schema's
// ON DELETE CASCADE.
func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := sb.
		Delete("posts").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}
