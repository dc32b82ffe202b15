package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/EgorLis/file-vault/internal/domain"
)

const fileColumns = "id, user_id, name, type, is_public, parent_id, storage_key, created_at"

func (r *PGRepo) filesTable() string { return fmt.Sprintf("%s.files", r.schema) }

func scanFile(row pgx.Row) (domain.File, error) {
	var f domain.File
	err := row.Scan(&f.ID, &f.OwnerID, &f.Name, &f.Type, &f.Public, &f.ParentID, &f.StorageKey, &f.CreatedAt)
	return f, err
}

func (r *PGRepo) CreateFile(ctx context.Context, f domain.File) (domain.File, error) {
	q := r.qb().Insert(r.filesTable()).
		Columns("user_id", "name", "type", "is_public", "parent_id", "storage_key").
		Values(f.OwnerID, f.Name, f.Type, f.Public, f.ParentID, f.StorageKey).
		Suffix("RETURNING " + fileColumns)

	sqlStr, args, _ := q.ToSql()
	r.logSQL("CreateFile", sqlStr, args)

	start := time.Now()
	out, err := scanFile(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		r.logger.Printf("CreateFile scan error after %s: %v", time.Since(start), err)
		return domain.File{}, err
	}
	r.logger.Printf("CreateFile ok in %s id=%s name=%q type=%s", time.Since(start), out.ID, out.Name, out.Type)
	return out, nil
}

// FileByID — owner-scoped: чужой или несуществующий id неразличимы (ErrNotFound).
func (r *PGRepo) FileByID(ctx context.Context, id domain.FileID, owner domain.UserID) (domain.File, error) {
	q := r.qb().Select(fileColumns).
		From(r.filesTable()).
		Where(sq.Eq{"id": id, "user_id": owner})

	sqlStr, args, _ := q.ToSql()
	r.logSQL("FileByID", sqlStr, args)

	f, err := scanFile(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.File{}, domain.ErrNotFound
		}
		r.logger.Printf("FileByID scan error: %v", err)
		return domain.File{}, err
	}
	return f, nil
}

func (r *PGRepo) ParentByID(ctx context.Context, id domain.FileID) (domain.File, error) {
	q := r.qb().Select(fileColumns).
		From(r.filesTable()).
		Where(sq.Eq{"id": id})

	sqlStr, args, _ := q.ToSql()
	r.logSQL("ParentByID", sqlStr, args)

	f, err := scanFile(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.File{}, domain.ErrNotFound
		}
		r.logger.Printf("ParentByID scan error: %v", err)
		return domain.File{}, err
	}
	return f, nil
}

func (r *PGRepo) FilesByParent(ctx context.Context, owner domain.UserID, parent *domain.FileID) ([]domain.File, error) {
	q := r.qb().Select(fileColumns).
		From(r.filesTable()).
		Where(sq.Eq{"user_id": owner}).
		OrderBy("created_at")
	if parent == nil {
		q = q.Where("parent_id IS NULL")
	} else {
		q = q.Where(sq.Eq{"parent_id": *parent})
	}

	sqlStr, args, _ := q.ToSql()
	r.logSQL("FilesByParent", sqlStr, args)

	start := time.Now()
	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		r.logger.Printf("FilesByParent query error: %v", err)
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.File, 0)
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			r.logger.Printf("FilesByParent scan error: %v", err)
			return nil, err
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	r.logger.Printf("FilesByParent ok in %s count=%d", time.Since(start), len(out))
	return out, nil
}

// SetPublic меняет видимость только у владельца; update по (id, user_id)
// атомарен на стороне БД.
func (r *PGRepo) SetPublic(ctx context.Context, id domain.FileID, owner domain.UserID, public bool) (domain.File, error) {
	q := r.qb().Update(r.filesTable()).
		Set("is_public", public).
		Where(sq.Eq{"id": id, "user_id": owner}).
		Suffix("RETURNING " + fileColumns)

	sqlStr, args, _ := q.ToSql()
	r.logSQL("SetPublic", sqlStr, args)

	f, err := scanFile(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.File{}, domain.ErrNotFound
		}
		r.logger.Printf("SetPublic scan error: %v", err)
		return domain.File{}, err
	}
	r.logger.Printf("SetPublic ok id=%s public=%v", f.ID, f.Public)
	return f, nil
}

func (r *PGRepo) CountFiles(ctx context.Context) (int64, error) {
	q := r.qb().Select("count(*)").From(r.filesTable())

	sqlStr, args, _ := q.ToSql()
	r.logSQL("CountFiles", sqlStr, args)

	var n int64
	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&n); err != nil {
		r.logger.Printf("CountFiles error: %v", err)
		return 0, err
	}
	return n, nil
}
