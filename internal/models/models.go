package models

import (
	"net/url"
	"time"
)

type Post struct {
	ID        int       `json:"id" db:"id"`
	Slug      string    `json:"slug" db:"slug"`
	Title     string    `json:"title" db:"title"`
	Contents  string    `json:"contents" db:"contents"`
	Published bool      `json:"published" db:"published"`
	Created   time.Time `json:"created" db:"created"`
	AuthorID  int       `json:"authorId" db:"author_id"`
}

type Tag struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// URLEncodedName is derived from Name on every call, it is never stored.
func (t Tag) URLEncodedName() string {
	return url.PathEscape(t.Name)
}

type User struct {
	ID            int    `json:"id" db:"id"`
	Username      string `json:"username" db:"username"`
	Name          string `json:"name" db:"name"`
	Tagline       string `json:"tagline" db:"tagline"`
	Biography     string `json:"biography" db:"biography"`
	TwitterHandle string `json:"twitterHandle" db:"twitter_handle"`
}

// TagWithPostCount pairs a tag with the number of published posts carrying it.
type TagWithPostCount struct {
	Tag
	PostCount int `json:"postCount" db:"post_count"`
}

// UserWithPostCount pairs an author with the number of their published posts.
type UserWithPostCount struct {
	User
	PostCount int `json:"postCount" db:"post_count"`
}
