package store

import (
	"errors"
	"regexp"
	"strings"
	"sync"
	"time"

	"docstore/internal/document/model"

	"github.com/google/uuid"
)

// ErrNilDocument is returned by Save when called with a nil document.
var ErrNilDocument = errors.New("document must not be nil")

// DocumentStore keeps documents in an in-memory map keyed by id. It holds no
// index beyond the map itself; Search is a linear scan over the values. The
// mutex makes it safe for the websocket hub to read while handlers write.
type DocumentStore struct {
	mu        sync.RWMutex
	documents map[string]*model.Document
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{documents: make(map[string]*model.Document)}
}

// Save upserts the document, generating a fresh id when the caller left it
// empty. An existing entry with the same id is fully replaced; the Created
// field is never assigned or modified here. The stored pointer aliases the
// caller's document.
func (s *DocumentStore) Save(doc *model.Document) (*model.Document, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}

	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}

	s.mu.Lock()
	s.documents[doc.ID] = doc
	s.mu.Unlock()
	return doc, nil
}

// FindByID returns the stored document and whether it exists. An unknown id
// is not an error.
func (s *DocumentStore) FindByID(id string) (*model.Document, bool) {
	s.mu.RLock()
	doc, ok := s.documents[id]
	s.mu.RUnlock()
	return doc, ok
}

// Search returns every document matching all active filters on the request.
// A nil request, or one with every field empty, matches everything. Result
// order is unspecified.
func (s *DocumentStore) Search(req *model.SearchRequest) []*model.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]*model.Document, 0, len(s.documents))
	if req == nil {
		for _, doc := range s.documents {
			results = append(results, doc)
		}
		return results
	}

	wordPatterns := compileWordPatterns(req.ContainsContents)
	for _, doc := range s.documents {
		if !matchesTitle(doc, req.TitlePrefixes) {
			continue
		}
		if !matchesContent(doc, wordPatterns) {
			continue
		}
		if !matchesAuthor(doc, req.AuthorIDs) {
			continue
		}
		if !matchesCreated(doc, req.CreatedFrom, req.CreatedTo) {
			continue
		}
		results = append(results, doc)
	}
	return results
}

func matchesTitle(doc *model.Document, prefixes []string) bool {
	if len(prefixes) == 0 {
		return true
	}
	if doc.Title == nil {
		return false
	}
	title := strings.ToLower(*doc.Title)
	for _, prefix := range prefixes {
		if strings.HasPrefix(title, strings.ToLower(prefix)) {
			return true
		}
	}
	return false
}

// compileWordPatterns builds one case-insensitive whole-word matcher per
// search term. \b is RE2's ASCII word boundary, so "important" matches inside
// "Important content" but not inside "unimportant".
func compileWordPatterns(terms []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(terms))
	for _, term := range terms {
		patterns = append(patterns, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(term)+`\b`))
	}
	return patterns
}

func matchesContent(doc *model.Document, patterns []*regexp.Regexp) bool {
	if len(patterns) == 0 {
		return true
	}
	if doc.Content == nil {
		return false
	}
	for _, pattern := range patterns {
		if pattern.MatchString(*doc.Content) {
			return true
		}
	}
	return false
}

func matchesAuthor(doc *model.Document, authorIDs []string) bool {
	if len(authorIDs) == 0 {
		return true
	}
	if doc.Author == nil {
		return false
	}
	for _, id := range authorIDs {
		if doc.Author.ID == id {
			return true
		}
	}
	return false
}

// matchesCreated is inactive when both bounds are absent; with either bound
// supplied, a document without a created time never matches. Bounds are
// inclusive.
func matchesCreated(doc *model.Document, from, to *time.Time) bool {
	if from == nil && to == nil {
		return true
	}
	if doc.Created == nil {
		return false
	}
	if from != nil && doc.Created.Before(*from) {
		return false
	}
	if to != nil && doc.Created.After(*to) {
		return false
	}
	return true
}
