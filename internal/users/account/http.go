// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/mangateca/internal/platform/middleware"
	requestutil "github.com/taibuivan/mangateca/internal/platform/request"
	"github.com/taibuivan/mangateca/internal/platform/respond"
)

type Handler struct {
	service    *Service
	ownerGuard func(http.Handler) http.Handler
}

// NewHandler builds the account routes. ownerGuard wraps the routes that
// read or mutate a single account.
func NewHandler(service *Service, ownerGuard func(http.Handler) http.Handler) *Handler {
	return &Handler{service: service, ownerGuard: ownerGuard}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public
	router.Post("/register", handler.register)
	router.Post("/login", handler.login)

	// Current session
	router.Group(func(sessionRoute chi.Router) {
		sessionRoute.Use(middleware.RequireAuth)

		sessionRoute.Get("/me", handler.me)
		sessionRoute.Post("/logout", handler.logout)
	})

	// Single account
	router.Group(func(ownerRoute chi.Router) {
		ownerRoute.Use(handler.ownerGuard)

		ownerRoute.Get("/{id}", handler.getAccount)
		ownerRoute.Put("/{id}", handler.updateAccount)
		ownerRoute.Delete("/{id}", handler.deleteAccount)
		ownerRoute.Put("/{id}/favorites/{mangaId}", handler.addFavorite)
		ownerRoute.Delete("/{id}/favorites/{mangaId}", handler.removeFavorite)
	})
}

func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input RegisterInput
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	account, err := handler.service.Register(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, account)
}

func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input LoginInput
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.service.Login(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, session)
}

func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredSession(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Logout(request.Context(), claims); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredSession(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	account, err := handler.service.GetAccount(request.Context(), claims.UserID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, account)
}

func (handler *Handler) getAccount(writer http.ResponseWriter, request *http.Request) {
	accountID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	account, err := handler.service.GetAccount(request.Context(), accountID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, account)
}

func (handler *Handler) updateAccount(writer http.ResponseWriter, request *http.Request) {
	accountID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input UpdateInput
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	account, err := handler.service.UpdateAccount(request.Context(), accountID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, account)
}

func (handler *Handler) deleteAccount(writer http.ResponseWriter, request *http.Request) {
	accountID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteAccount(request.Context(), accountID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) addFavorite(writer http.ResponseWriter, request *http.Request) {
	handler.favorite(writer, request, handler.service.AddFavorite)
}

func (handler *Handler) removeFavorite(writer http.ResponseWriter, request *http.Request) {
	handler.favorite(writer, request, handler.service.RemoveFavorite)
}

func (handler *Handler) favorite(writer http.ResponseWriter, request *http.Request, mutate func(ctx context.Context, id, mangaID string) (*Account, error)) {
	accountID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	mangaID, err := requestutil.ID(request, "mangaId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	account, err := mutate(request.Context(), accountID, mangaID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, account)
}
