package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"blogpress/internal/models"
)

type tagRepository struct {
	db *sqlx.DB
}

func NewTagRepository(db *sqlx.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) GetAll(ctx context.Context) ([]models.Tag, error) {
	query := `SELECT * FROM tags ORDER BY name`

	var tags []models.Tag
	err := r.db.SelectContext(ctx, &tags, query)
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}

	return tags, nil
}

func (r *tagRepository) GetAllWithPostCount(ctx context.Context) ([]models.TagWithPostCount, error) {
	query := `
		SELECT t.id, t.name, COUNT(p.id) AS post_count
		FROM tags t
		LEFT JOIN post_tags pt ON pt.tag_id = t.id
		LEFT JOIN posts p ON p.id = pt.post_id AND p.published = TRUE
		GROUP BY t.id, t.name
		ORDER BY t.name
	`

	var tags []models.TagWithPostCount
	err := r.db.SelectContext(ctx, &tags, query)
	if err != nil {
		return nil, fmt.Errorf("listing tags with post count: %w", err)
	}

	return tags, nil
}

func (r *tagRepository) GetForPost(ctx context.Context, post *models.Post) ([]models.Tag, error) {
	query := `
		SELECT t.* FROM tags t
		JOIN post_tags pt ON pt.tag_id = t.id
		WHERE pt.post_id = $1
		ORDER BY t.name
	`

	var tags []models.Tag
	err := r.db.SelectContext(ctx, &tags, query, post.ID)
	if err != nil {
		return nil, fmt.Errorf("listing tags for post %d: %w", post.ID, err)
	}

	return tags, nil
}

type postTagRow struct {
	PostID int    `db:"post_id"`
	TagID  int    `db:"tag_id"`
	Name   string `db:"name"`
}

// GetForAllPosts returns every post's tags in one query so listing views
// don't issue a tag lookup per post.
func (r *tagRepository) GetForAllPosts(ctx context.Context) (map[int][]models.Tag, error) {
	query := `
		SELECT pt.post_id, t.id AS tag_id, t.name
		FROM post_tags pt
		JOIN tags t ON t.id = pt.tag_id
		ORDER BY pt.post_id, t.name
	`

	var rows []postTagRow
	err := r.db.SelectContext(ctx, &rows, query)
	if err != nil {
		return nil, fmt.Errorf("listing tags for all posts: %w", err)
	}

	tagsForPosts := make(map[int][]models.Tag, len(rows))
	for _, row := range rows {
		tagsForPosts[row.PostID] = append(tagsForPosts[row.PostID], models.Tag{ID: row.TagID, Name: row.Name})
	}

	return tagsForPosts, nil
}

// GetByName is a byte-exact match, no case folding or trimming.
func (r *tagRepository) GetByName(ctx context.Context, name string) (*models.Tag, error) {
	query := `SELECT * FROM tags WHERE name = $1`

	var tag models.Tag
	err := r.db.GetContext(ctx, &tag, query, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("tag %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("getting tag %q: %w", name, err)
	}

	return &tag, nil
}

func (r *tagRepository) Save(ctx context.Context, tag *models.Tag) error {
	if tag.ID == 0 {
		query := `INSERT INTO tags (name) VALUES ($1) RETURNING id`

		err := r.db.GetContext(ctx, &tag.ID, query, tag.Name)
		if err != nil {
			return fmt.Errorf("creating tag %q: %w", tag.Name, err)
		}

		return nil
	}

	query := `UPDATE tags SET name = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, tag.Name, tag.ID)
	if err != nil {
		return fmt.Errorf("updating tag %d: %w", tag.ID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("tag %d: %w", tag.ID, ErrNotFound)
	}

	return nil
}

// DeleteForPost drops every pivot of a post. The tag rows themselves stay;
// orphan cleanup is DeleteOrphans, scheduled separately.
func (r *tagRepository) DeleteForPost(ctx context.Context, post *models.Post) error {
	query := `DELETE FROM post_tags WHERE post_id = $1`

	_, err := r.db.ExecContext(ctx, query, post.ID)
	if err != nil {
		return fmt.Errorf("deleting pivots for post %d: %w", post.ID, err)
	}

	return nil
}

func (r *tagRepository) Remove(ctx context.Context, tag *models.Tag, post *models.Post) error {
	query := `DELETE FROM post_tags WHERE tag_id = $1 AND post_id = $2`

	result, err := r.db.ExecContext(ctx, query, tag.ID, post.ID)
	if err != nil {
		return fmt.Errorf("removing tag %q from post %d: %w", tag.Name, post.ID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("pivot of tag %q and post %d: %w", tag.Name, post.ID, ErrNotFound)
	}

	return nil
}

func (r *tagRepository) Add(ctx context.Context, tag *models.Tag, post *models.Post) error {
	query := `INSERT INTO post_tags (tag_id, post_id) VALUES ($1, $2)`

	_, err := r.db.ExecContext(ctx, query, tag.ID, post.ID)
	if err != nil {
		return fmt.Errorf("adding tag %q to post %d: %w", tag.Name, post.ID, err)
	}

	return nil
}

func (r *tagRepository) DeleteOrphans(ctx context.Context) (int, error) {
	query := `DELETE FROM tags WHERE id NOT IN (SELECT tag_id FROM post_tags)`

	result, err := r.db.ExecContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("deleting orphan tags: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("checking deleted rows: %w", err)
	}

	return int(rowsAffected), nil
}
