package model

import "time"

// Author identifies who wrote a document. Search matches on ID;
// Name is descriptive only.
type Author struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Document is the stored unit of content. Every field except ID is optional;
// pointers distinguish "absent" from an empty value. Created is supplied by
// the caller and never touched by the store once set.
type Document struct {
	ID      string     `json:"id"`
	Title   *string    `json:"title,omitempty"`
	Content *string    `json:"content,omitempty"`
	Author  *Author    `json:"author,omitempty"`
	Created *time.Time `json:"created,omitempty"`
}

// SearchRequest is a conjunction of optional filter criteria combined by
// logical AND. An empty or absent field means "match all" for that dimension.
type SearchRequest struct {
	TitlePrefixes    []string   `json:"title_prefixes,omitempty"`
	ContainsContents []string   `json:"contains_contents,omitempty"`
	AuthorIDs        []string   `json:"author_ids,omitempty"`
	CreatedFrom      *time.Time `json:"created_from,omitempty"`
	CreatedTo        *time.Time `json:"created_to,omitempty"`
}
