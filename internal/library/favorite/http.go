// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package favorite

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/mangateca/internal/platform/request"
	"github.com/taibuivan/mangateca/internal/platform/respond"
	"github.com/taibuivan/mangateca/pkg/pagination"
)

type Handler struct {
	service    *Service
	ownerGuard func(http.Handler) http.Handler
}

// NewHandler builds the favorite list routes. ownerGuard wraps the mutating routes.
func NewHandler(service *Service, ownerGuard func(http.Handler) http.Handler) *Handler {
	return &Handler{service: service, ownerGuard: ownerGuard}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public
	router.Get("/", handler.listFavoriteLists)
	router.Get("/{id}", handler.getFavoriteList)

	// Owner writes
	router.Group(func(ownerRoute chi.Router) {
		ownerRoute.Use(handler.ownerGuard)

		ownerRoute.Post("/", handler.createFavoriteList)
		ownerRoute.Put("/{id}", handler.updateFavoriteList)
		ownerRoute.Delete("/{id}", handler.deleteFavoriteList)
		ownerRoute.Post("/{id}/mangas", handler.addManga)
		ownerRoute.Delete("/{id}/mangas/{mangaId}", handler.removeManga)
	})
}

func (handler *Handler) listFavoriteLists(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	userID, err := requestutil.QueryID(request, "userId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	lists, total, err := handler.service.ListFavoriteLists(request.Context(), Filter{UserID: userID}, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, lists, paginationParams.Meta(total))
}

func (handler *Handler) getFavoriteList(writer http.ResponseWriter, request *http.Request) {
	listID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	list, err := handler.service.GetFavoriteList(request.Context(), listID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, list)
}

func (handler *Handler) createFavoriteList(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	list, err := handler.service.CreateFavoriteList(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, list)
}

func (handler *Handler) updateFavoriteList(writer http.ResponseWriter, request *http.Request) {
	listID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Input
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	list, err := handler.service.UpdateFavoriteList(request.Context(), listID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, list)
}

func (handler *Handler) deleteFavoriteList(writer http.ResponseWriter, request *http.Request) {
	listID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteFavoriteList(request.Context(), listID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) addManga(writer http.ResponseWriter, request *http.Request) {
	listID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input MangaInput
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	list, err := handler.service.AddManga(request.Context(), listID, input.MangaID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, list)
}

func (handler *Handler) removeManga(writer http.ResponseWriter, request *http.Request) {
	listID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	mangaID, err := requestutil.ID(request, "mangaId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	list, err := handler.service.RemoveManga(request.Context(), listID, mangaID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, list)
}
