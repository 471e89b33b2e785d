// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package evaluation

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

// NewHandler builds the evaluation routes. ownerGuard wraps the mutating routes.
func NewHandler(service *Service, ownerGuard func(http.Handler) http.Handler) *Handler {
	return &Handler{service: service, ownerGuard: ownerGuard}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public. The single path segment is a manga id, not an evaluation id.
	router.Get("/", handler.listEvaluations)
	router.Get("/{mangaId}", handler.listByManga)
	router.Get("/{mangaId}/summary", handler.summarize)

	// Owner writes
	router.Group(func(ownerRoute chi.Router) {
		ownerRoute.Use(handler.ownerGuard)

		ownerRoute.Post("/", handler.createEvaluation)
		ownerRoute.Put("/{id}", handler.updateEvaluation)
		ownerRoute.Delete("/{id}", handler.deleteEvaluation)
	})
}

func (handler *Handler) listEvaluations(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	mangaID, err := requestutil.QueryID(request, "mangaId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	evaluations, total, err := handler.service.ListEvaluations(request.Context(), Filter{MangaID: mangaID}, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, evaluations, paginationParams.Meta(total))
}

func (handler *Handler) listByManga(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	mangaID, err := requestutil.ID(request, "mangaId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	evaluations, total, err := handler.service.ListByManga(request.Context(), mangaID, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, evaluations, paginationParams.Meta(total))
}

func (handler *Handler) summarize(writer http.ResponseWriter, request *http.Request) {
	mangaID, err := requestutil.ID(request, "mangaId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	summary, err := handler.service.Summarize(request.Context(), mangaID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, summary)
}

func (handler *Handler) createEvaluation(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	evaluation, err := handler.service.CreateEvaluation(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, evaluation)
}

func (handler *Handler) updateEvaluation(writer http.ResponseWriter, request *http.Request) {
	evaluationID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Input
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	evaluation, err := handler.service.UpdateEvaluation(request.Context(), evaluationID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, evaluation)
}

func (handler *Handler) deleteEvaluation(writer http.ResponseWriter, request *http.Request) {
	evaluationID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteEvaluation(request.Context(), evaluationID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
