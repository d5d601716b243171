package api

import (
	"github.com/snsihub/showcase-portal-backend/services"
	"github.com/snsihub/showcase-portal-backend/store"
)

type routeHandlers struct {
	authHandler    authHandler
	formHandler    formHandler
	galleryHandler galleryHandler
	projectHandler projectHandler
	adminHandler   adminHandler
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(backend *services.Client, draftStore *store.DraftStore, issuer tokenIssuer) *routeHandlers {
	return &routeHandlers{
		authHandler:    newAuthHandler(backend, issuer),
		formHandler:    newFormHandler(draftStore, backend),
		galleryHandler: newGalleryHandler(backend),
		projectHandler: newProjectHandler(backend),
		adminHandler:   newAdminHandler(backend),
	}
}
