package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"blogpress/internal/models"
)

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) GetAllSortedByPublishDate(ctx context.Context, includeDrafts bool) ([]models.Post, error) {
	query := `SELECT * FROM posts ORDER BY created DESC`
	if !includeDrafts {
		query = `SELECT * FROM posts WHERE published = TRUE ORDER BY created DESC`
	}

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query)
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}

	return posts, nil
}

func (r *postRepository) GetAllSortedByPublishDatePaged(ctx context.Context, includeDrafts bool, count, offset int) ([]models.Post, error) {
	query := `SELECT * FROM posts ORDER BY created DESC LIMIT $1 OFFSET $2`
	if !includeDrafts {
		query = `SELECT * FROM posts WHERE published = TRUE ORDER BY created DESC LIMIT $1 OFFSET $2`
	}

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, count, offset)
	if err != nil {
		return nil, fmt.Errorf("listing posts page: %w", err)
	}

	return posts, nil
}

func (r *postRepository) GetAllCount(ctx context.Context, includeDrafts bool) (int, error) {
	query := `SELECT COUNT(*) FROM posts`
	if !includeDrafts {
		query = `SELECT COUNT(*) FROM posts WHERE published = TRUE`
	}

	var count int
	err := r.db.GetContext(ctx, &count, query)
	if err != nil {
		return 0, fmt.Errorf("counting posts: %w", err)
	}

	return count, nil
}

func (r *postRepository) GetForAuthorSortedByPublishDate(ctx context.Context, author *models.User, includeDrafts bool, count, offset int) ([]models.Post, error) {
	query := `
		SELECT * FROM posts
		WHERE author_id = $1
		ORDER BY created DESC
		LIMIT $2 OFFSET $3
	`
	if !includeDrafts {
		query = `
			SELECT * FROM posts
			WHERE author_id = $1 AND published = TRUE
			ORDER BY created DESC
			LIMIT $2 OFFSET $3
		`
	}

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, author.ID, count, offset)
	if err != nil {
		return nil, fmt.Errorf("listing posts for author %q: %w", author.Username, err)
	}

	return posts, nil
}

func (r *postRepository) GetCountForAuthor(ctx context.Context, author *models.User) (int, error) {
	query := `SELECT COUNT(*) FROM posts WHERE author_id = $1 AND published = TRUE`

	var count int
	err := r.db.GetContext(ctx, &count, query, author.ID)
	if err != nil {
		return 0, fmt.Errorf("counting posts for author %q: %w", author.Username, err)
	}

	return count, nil
}

func (r *postRepository) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	query := `SELECT * FROM posts WHERE slug = $1`

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("post %q: %w", slug, ErrNotFound)
		}
		return nil, fmt.Errorf("getting post %q: %w", slug, err)
	}

	return &post, nil
}

func (r *postRepository) GetByID(ctx context.Context, postID int) (*models.Post, error) {
	query := `SELECT * FROM posts WHERE id = $1`

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("post %d: %w", postID, ErrNotFound)
		}
		return nil, fmt.Errorf("getting post %d: %w", postID, err)
	}

	return &post, nil
}

func (r *postRepository) GetSortedPublishedForTag(ctx context.Context, tag *models.Tag, count, offset int) ([]models.Post, error) {
	query := `
		SELECT p.* FROM posts p
		JOIN post_tags pt ON pt.post_id = p.id
		WHERE pt.tag_id = $1 AND p.published = TRUE
		ORDER BY p.created DESC
		LIMIT $2 OFFSET $3
	`

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, tag.ID, count, offset)
	if err != nil {
		return nil, fmt.Errorf("listing posts for tag %q: %w", tag.Name, err)
	}

	return posts, nil
}

func (r *postRepository) GetPublishedCountForTag(ctx context.Context, tag *models.Tag) (int, error) {
	query := `
		SELECT COUNT(*) FROM posts p
		JOIN post_tags pt ON pt.post_id = p.id
		WHERE pt.tag_id = $1 AND p.published = TRUE
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, tag.ID)
	if err != nil {
		return 0, fmt.Errorf("counting posts for tag %q: %w", tag.Name, err)
	}

	return count, nil
}

func (r *postRepository) FindPublishedOrdered(ctx context.Context, searchTerm string, count, offset int) ([]models.Post, error) {
	query := `
		SELECT * FROM posts
		WHERE published = TRUE AND (title ILIKE '%' || $1 || '%' OR contents ILIKE '%' || $1 || '%')
		ORDER BY created DESC
		LIMIT $2 OFFSET $3
	`

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, searchTerm, count, offset)
	if err != nil {
		return nil, fmt.Errorf("searching posts for %q: %w", searchTerm, err)
	}

	return posts, nil
}

func (r *postRepository) GetPublishedCountForSearchTerm(ctx context.Context, searchTerm string) (int, error) {
	query := `
		SELECT COUNT(*) FROM posts
		WHERE published = TRUE AND (title ILIKE '%' || $1 || '%' OR contents ILIKE '%' || $1 || '%')
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, searchTerm)
	if err != nil {
		return 0, fmt.Errorf("counting search results for %q: %w", searchTerm, err)
	}

	return count, nil
}

func (r *postRepository) Save(ctx context.Context, post *models.Post) error {
	if post.ID == 0 {
		if post.Created.IsZero() {
			post.Created = time.Now()
		}

		query := `
			INSERT INTO posts (slug, title, contents, published, created, author_id)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`

		err := r.db.GetContext(ctx, &post.ID, query,
			post.Slug, post.Title, post.Contents, post.Published, post.Created, post.AuthorID)
		if err != nil {
			return fmt.Errorf("creating post %q: %w", post.Slug, err)
		}

		return nil
	}

	query := `
		UPDATE posts SET
			slug = :slug,
			title = :title,
			contents = :contents,
			published = :published,
			created = :created,
			author_id = :author_id
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("updating post %d: %w", post.ID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("post %d: %w", post.ID, ErrNotFound)
	}

	return nil
}

func (r *postRepository) Delete(ctx context.Context, postID int) error {
	query := `DELETE FROM posts WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("deleting post %d: %w", postID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("post %d: %w", postID, ErrNotFound)
	}

	return nil
}
