package service

import (
	"encoding/json"
	"time"

	"docstore/internal/document/model"
	"docstore/internal/document/store"
	"docstore/pkg/logger"
	"docstore/socket"
)

type DocumentService struct {
	Store *store.DocumentStore
	Hub   *socket.Hub
}

func NewDocumentService(st *store.DocumentStore, hub *socket.Hub) *DocumentService {
	return &DocumentService{Store: st, Hub: hub}
}

// Save upserts the document and broadcasts the result to watchers. A
// brand-new document (no id yet) without a creation time gets stamped with
// the current time; an existing document's created field is left to whatever
// the caller sent, since a save replaces the entry wholesale.
func (s *DocumentService) Save(userID string, doc *model.Document) (*model.Document, error) {
	if doc != nil && doc.ID == "" && doc.Created == nil {
		now := time.Now().UTC()
		doc.Created = &now
	}

	saved, err := s.Store.Save(doc)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(saved)
	if err != nil {
		logger.Sugar.Errorf("Failed to marshal saved document %s for broadcast: %v", saved.ID, err)
		return saved, nil
	}
	s.Hub.Broadcast <- socket.WSMessage{
		Type:    socket.DocSavedType,
		DocID:   saved.ID,
		UserID:  userID,
		Payload: payload,
	}
	return saved, nil
}

func (s *DocumentService) Get(id string) (*model.Document, bool) {
	return s.Store.FindByID(id)
}

func (s *DocumentService) Search(req *model.SearchRequest) []*model.Document {
	return s.Store.Search(req)
}
