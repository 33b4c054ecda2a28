package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/kipkoech44/study_quiz/store"
)

var validate = validator.New()

// Handler carries the injected store; every route method hangs off it.
type Handler struct {
	Store *store.Store
}

func New(s *store.Store) *Handler {
	return &Handler{Store: s}
}
