// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package manga

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/mangateca/internal/platform/request"
	"github.com/taibuivan/mangateca/internal/platform/respond"
	"github.com/taibuivan/mangateca/pkg/pagination"
)

type Handler struct {
	service    *Service
	writeGuard func(http.Handler) http.Handler
}

// NewHandler builds the manga routes. writeGuard wraps the mutating routes.
func NewHandler(service *Service, writeGuard func(http.Handler) http.Handler) *Handler {
	return &Handler{service: service, writeGuard: writeGuard}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public
	router.Get("/", handler.listMangas)
	router.Get("/{id}", handler.getManga)

	// Catalog writes
	router.Group(func(writeRoute chi.Router) {
		writeRoute.Use(handler.writeGuard)

		writeRoute.Post("/", handler.createManga)
		writeRoute.Put("/{id}", handler.updateManga)
		writeRoute.Delete("/{id}", handler.deleteManga)
	})
}

func (handler *Handler) listMangas(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	authorID, err := requestutil.QueryID(request, "authorId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	mangas, total, err := handler.service.ListMangas(request.Context(), Filter{AuthorID: authorID}, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, mangas, paginationParams.Meta(total))
}

func (handler *Handler) getManga(writer http.ResponseWriter, request *http.Request) {
	mangaID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	detail, err := handler.service.GetManga(request.Context(), mangaID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, detail)
}

func (handler *Handler) createManga(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	manga, err := handler.service.CreateManga(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, manga)
}

func (handler *Handler) updateManga(writer http.ResponseWriter, request *http.Request) {
	mangaID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Input
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	manga, err := handler.service.UpdateManga(request.Context(), mangaID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, manga)
}

func (handler *Handler) deleteManga(writer http.ResponseWriter, request *http.Request) {
	mangaID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteManga(request.Context(), mangaID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
