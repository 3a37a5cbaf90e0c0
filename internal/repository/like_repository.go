package repository

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"socialapp/model"
)

type LikeRepository struct {
	db Executor
}

func NewLikeRepository(db *sqlx.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

func (r *LikeRepository) WithTx(tx *sqlx.Tx) *LikeRepository {
	return &LikeRepository{db: tx}
}

// FindByPostIDAndUsername returns the user's like on the post, or nil when
// the user has not liked it.
func (r *LikeRepository) FindByPostIDAndUsername(ctx context.Context, postID int64, username string) (*model.Like, error) {
	query, args, err := sb.
		Select("id", "post_id", "username", "created_at").
		From("likes").
		Where(sq.Eq{"post_id": postID, "username": username}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var like model.Like
	if err := r.db.GetContext(ctx, &like, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &like, nil
}

func (r *LikeRepository) ExistsByPostIDAndUsername(ctx context.Context, postID int64, username string) (bool, error) {
	query, args, err := sb.
		Select("COUNT(*)").
		From("likes").
		Where(sq.Eq{"post_id": postID, "username": username}).
		ToSql()
	if err != nil {
		return false, err
	}

	var n int
	if err := r.db.GetContext(ctx, &n, query, args...); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *LikeRepository) CountByPostID(ctx context.Context, postID int64) (int, error) {
	query, args, err := sb.
		Select("COUNT(*)").
		From("likes").
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

func (r *LikeRepository) Insert(ctx context.Context, l *model.Like) error {
	query, args, err := sb.
		Insert("likes").
		Columns("post_id", "username", "created_at").
		Values(l.PostID, l.Username, l.CreatedAt).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	l.ID, err = res.LastInsertId()
	return err
}

func (r *LikeRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := sb.
		Delete("likes").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}
