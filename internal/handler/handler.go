package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"fitography/internal/config"
	"fitography/internal/service"
	"fitography/internal/store"
)

type Handlers struct {
	Feed        store.Feed
	PostService service.PostService
	Cfg         *config.Config
	Validate    *validator.Validate
}

func NewHandlers(feed store.Feed, service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		Feed:        feed,
		PostService: service.Post,
		Cfg:         config,
		Validate:    validator.New(),
	}
}

func HomeHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		WriteError(w, "Not found", http.StatusNotFound)
		return
	}
	writeSuccess(w, map[string]string{
		"name":    "fitography",
		"tagline": "don't know what to wear? throw a fit.",
	}, http.StatusOK)
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{"status": "ok"}, http.StatusOK)
}
