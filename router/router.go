package router

import (
	"net/http"

	docHandler "docstore/internal/document"
	"docstore/internal/document/service"
	"docstore/internal/document/store"
	"docstore/middleware"
	"docstore/socket"
)

func Setup(docStore *store.DocumentStore, hub *socket.Hub) http.Handler {
	mux := http.NewServeMux()

	// WebSocket watch feed
	wsHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value(middleware.UserIDKey).(string)
		socket.ServeWs(hub, w, r, userID)
	})
	mux.Handle("/ws", middleware.AuthMiddleware(wsHandler))

	// REST API
	docService := service.NewDocumentService(docStore, hub)
	handler := docHandler.NewDocumentHandler(docService)
	auth := middleware.AuthMiddleware

	mux.Handle("/api/documents/save", auth(http.HandlerFunc(handler.SaveDocument)))
	mux.Handle("/api/documents/search", auth(http.HandlerFunc(handler.SearchDocuments)))
	mux.Handle("/api/documents", auth(http.HandlerFunc(handler.GetDocument)))

	return middleware.CORSMiddleware(mux)
}
