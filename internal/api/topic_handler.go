package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"forumhub/internal/api/shared"
	"forumhub/internal/domain"
	"forumhub/internal/store"
)

// defaultPageSize is the page size used when the request does not set one.
const defaultPageSize = 10

// TopicHandler handles the topic lifecycle endpoints.
type TopicHandler struct {
	topicStore store.TopicStore
	validator  *validator.Validate
}

// NewTopicHandler creates a new TopicHandler with the given dependencies.
func NewTopicHandler(topicStore store.TopicStore) *TopicHandler {
	return &TopicHandler{
		topicStore: topicStore,
		validator:  validator.New(),
	}
}

// Create handles POST /topicos.
// An exact (titulo, mensagem) duplicate is rejected with 409, whether the
// existing topic is active or soft-deleted.
func (h *TopicHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTopicRequest

	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: titulo, mensagem, autor and curso are required")
		return
	}

	// Pre-check for a friendlier message; the unique index is what
	// actually closes the race.
	if _, err := h.topicStore.FindByTitleAndMessage(r.Context(), req.Titulo, req.Mensagem); err == nil {
		shared.RespondWithError(w, r, http.StatusConflict, GetSafeErrorMessage(store.ErrDuplicateTopic))
		return
	} else if !errors.Is(err, store.ErrTopicNotFound) {
		HandleAPIError(w, r, err, "")
		return
	}

	topic, err := domain.NewTopic(req.Titulo, req.Mensagem, req.Autor, req.Curso)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid topic data: "+err.Error())
		return
	}

	if err := h.topicStore.Create(r.Context(), topic); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.Header().Set("Location", "/topicos/"+topic.ID.String())
	shared.RespondWithJSON(w, r, http.StatusCreated, newTopicResponse(topic))
}

// List handles GET /topicos with optional curso, ano, page and size
// query parameters. Only active topics are listed, creation time
// ascending.
func (h *TopicHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := store.TopicFilter{
		Course: r.URL.Query().Get("curso"),
	}

	if yearParam := r.URL.Query().Get("ano"); yearParam != "" {
		year, err := strconv.Atoi(yearParam)
		if err != nil || year <= 0 {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid ano parameter")
			return
		}
		filter.Year = year
	}

	page := 0
	if pageParam := r.URL.Query().Get("page"); pageParam != "" {
		parsed, err := strconv.Atoi(pageParam)
		if err != nil || parsed < 0 {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid page parameter")
			return
		}
		page = parsed
	}

	size := defaultPageSize
	if sizeParam := r.URL.Query().Get("size"); sizeParam != "" {
		parsed, err := strconv.Atoi(sizeParam)
		if err != nil || parsed <= 0 {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid size parameter")
			return
		}
		size = parsed
	}

	result, err := h.topicStore.List(r.Context(), filter, page, size)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newTopicPageResponse(result))
}

// Get handles GET /topicos/{id}.
// Soft-deleted topics are reported as 404.
func (h *TopicHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	topic, err := h.topicStore.GetActiveByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newTopicResponse(topic))
}

// Update handles PUT /topicos/{id}.
// Only the topic's author may update it; the comparison is
// case-insensitive on login. Absent patch fields keep their values.
func (h *TopicHandler) Update(w http.ResponseWriter, r *http.Request) {
	subject, ok := subjectFromRequest(w, r)
	if !ok {
		return
	}

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdateTopicRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	topic, err := h.topicStore.GetActiveByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if !topic.OwnedBy(subject) {
		HandleAPIError(w, r, domain.ErrNotTopicAuthor, "")
		return
	}

	patch := domain.TopicPatch{
		Title:   req.Titulo,
		Message: req.Mensagem,
	}
	if req.Status != nil {
		status, err := domain.ParseTopicStatus(*req.Status)
		if err != nil {
			HandleAPIError(w, r, err, "")
			return
		}
		patch.Status = &status
	}

	// Duplicate check against the effective post-patch pair; a hit on a
	// different topic is a conflict.
	newTitle := topic.Title
	if patch.Title != nil {
		newTitle = *patch.Title
	}
	newMessage := topic.Message
	if patch.Message != nil {
		newMessage = *patch.Message
	}
	if existing, err := h.topicStore.FindByTitleAndMessage(r.Context(), newTitle, newMessage); err == nil {
		if existing.ID != topic.ID {
			shared.RespondWithError(w, r, http.StatusConflict, GetSafeErrorMessage(store.ErrDuplicateTopic))
			return
		}
	} else if !errors.Is(err, store.ErrTopicNotFound) {
		HandleAPIError(w, r, err, "")
		return
	}

	topic.Apply(patch)

	if err := h.topicStore.Update(r.Context(), topic); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newTopicResponse(topic))
}

// Delete handles DELETE /topicos/{id}.
// Deletion is soft: the active flag is cleared and replies are kept.
func (h *TopicHandler) Delete(w http.ResponseWriter, r *http.Request) {
	subject, ok := subjectFromRequest(w, r)
	if !ok {
		return
	}

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	topic, err := h.topicStore.GetActiveByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if !topic.OwnedBy(subject) {
		HandleAPIError(w, r, domain.ErrNotTopicAuthor, "")
		return
	}

	topic.Deactivate()

	if err := h.topicStore.Update(r.Context(), topic); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}
