package repository

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"socialapp/model"
)

type CommentRepository struct {
	db Executor
}

func NewCommentRepository(db *sqlx.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) WithTx(tx *sqlx.Tx) *CommentRepository {
	return &CommentRepository{db: tx}
}

// FindByPostID returns a post's comments, oldest first.
func (r *CommentRepository) FindByPostID(ctx context.Context, postID int64) ([]model.Comment, error) {
	query, args, err := sb.
		Select("id", "post_id", "username", "content", "created_at", "updated_at").
		From("comments").
		Where(sq.Eq{"post_id": postID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	comments := []model.Comment{}
	if err := r.db.SelectContext(ctx, &comments, query, args...); err != nil {
		return nil, err
	}
	return comments, nil
}

// FindByIDAndPostID returns the comment only when it belongs to the given
// post; a matching id under a different post is treated as absent.
func (r *CommentRepository) FindByIDAndPostID(ctx context.Context, id, postID int64) (*model.Comment, error) {
	query, args, err := sb.
		Select("id", "post_id", "username", "content", "created_at", "updated_at").
		From("comments").
		Where(sq.Eq{"id": id, "post_id": postID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var comment model.Comment
	if err := r.db.GetContext(ctx, &comment, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepository) CountByPostID(ctx context.Context, postID int64) (int, error) {
	query, args, err := sb.
		Select("COUNT(*)").
		From("comments").
		Where(sq.Eq{"post_id": postID}).
		ToSql()
	if err != nil {
		return 0, err
	}

	var n int
	if err := r.db.GetContext(ctx, &n, query, args...); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *CommentRepository) Insert(ctx context.Context, c *model.Comment) error {
	query, args, err := sb.
		Insert("comments").
		Columns("post_id", "username", "content", "created_at", "updated_at").
		Values(c.PostID, c.Username, c.Content, c.CreatedAt, c.UpdatedAt).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	c.ID, err = res.LastInsertId()
	return err
}

func (r *CommentRepository) Update(ctx context.Context, c *model.Comment) error {
	query, args, err := sb.
		Update("comments").
		Set("username", c.Username).
		Set("content", c.Content).
		Set("updated_at", c.UpdatedAt).
		Where(sq.Eq{"id": c.ID}).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}

func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := sb.
		Delete("comments").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}
