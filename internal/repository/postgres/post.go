package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/healthcompanion/api/internal/model"
	"github.com/healthcompanion/api/internal/repository"
)

type postRepository struct {
	BaseRepository
}

func NewPostRepository(base BaseRepository) repository.PostRepository {
	return &postRepository{base}
}

// postAuthorRow joins a post with its author's display identity.
type postAuthorRow struct {
	model.Post
	AuthorType string `db:"author_user_type"`
	AuthorName string `db:"author_name"`
}

const postWithAuthorSelect = `
	SELECT p.*,
		u.user_type AS author_user_type,
		COALESCE(d.name, ph.name, pa.name, 'Unknown') AS author_name
	FROM posts p
	JOIN users u ON u.id = p.user_id
	LEFT JOIN doctors d ON u.user_type = 'doctor' AND d.user_id = u.id
	LEFT JOIN pharmacies ph ON u.user_type = 'pharmacy' AND ph.user_id = u.id
	LEFT JOIN patients pa ON u.user_type = 'patient' AND pa.user_id = u.id
`

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	post.CreatedAt = time.Now()

	query := `
		INSERT INTO posts (user_id, title, content, post_type, image_url, likes, created_at)
		VALUES ($1, $2, $3, $4, $5, 0, $6)
		RETURNING id
	`
	err := r.db.QueryRowxContext(ctx, query,
		post.UserID,
		post.Title,
		post.Content,
		post.PostType,
		post.ImageURL,
		post.CreatedAt,
	).Scan(&post.ID)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

func (r *postRepository) Get(ctx context.Context, id int64) (*model.PostWithAuthor, error) {
	var row postAuthorRow
	err := r.db.GetContext(ctx, &row, postWithAuthorSelect+` WHERE p.id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return row.toModel(), nil
}

func (r *postRepository) List(ctx context.Context, filters *model.PostFilters) ([]*model.PostWithAuthor, error) {
	query := postWithAuthorSelect + ` WHERE 1=1`
	args := []interface{}{}

	if filters != nil && filters.PostType != "" {
		args = append(args, filters.PostType)
		query += fmt.Sprintf(" AND p.post_type = $%d", len(args))
	}

	limit := 20
	if filters != nil && filters.Limit > 0 {
		limit = filters.Limit
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY p.created_at DESC LIMIT $%d", len(args))

	rows := []postAuthorRow{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	posts := make([]*model.PostWithAuthor, 0, len(rows))
	for i := range rows {
		posts = append(posts, rows[i].toModel())
	}
	return posts, nil
}

// IncrementLikes performs the increment in SQL so concurrent likes serialize
// on the row instead of racing through read-modify-write.
func (r *postRepository) IncrementLikes(ctx context.Context, id int64) (int, error) {
	var likes int
	err := r.db.QueryRowxContext(ctx,
		`UPDATE posts SET likes = likes + 1 WHERE id = $1 RETURNING likes`, id,
	).Scan(&likes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, repository.ErrNotFound
		}
		return 0, fmt.Errorf("failed to increment likes: %w", err)
	}
	return likes, nil
}

func (row *postAuthorRow) toModel() *model.PostWithAuthor {
	return &model.PostWithAuthor{
		Post: row.Post,
		Author: model.PostAuthor{
			UserType: row.AuthorType,
			Name:     row.AuthorName,
		},
	}
}
