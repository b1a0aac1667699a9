package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"forumhub/internal/api/shared"
	"forumhub/internal/domain"
	"forumhub/internal/store"
)

// ReplyHandler handles the reply lifecycle endpoints nested under topics.
type ReplyHandler struct {
	replyStore store.ReplyStore
	topicStore store.TopicStore
	userStore  store.UserStore
	validator  *validator.Validate
}

// NewReplyHandler creates a new ReplyHandler with the given dependencies.
func NewReplyHandler(
	replyStore store.ReplyStore,
	topicStore store.TopicStore,
	userStore store.UserStore,
) *ReplyHandler {
	return &ReplyHandler{
		replyStore: replyStore,
		topicStore: topicStore,
		userStore:  userStore,
		validator:  validator.New(),
	}
}

// actingUser resolves the authenticated subject to its user record.
// Writes a response and returns false when resolution fails.
func (h *ReplyHandler) actingUser(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	subject, ok := subjectFromRequest(w, r)
	if !ok {
		return nil, false
	}

	user, err := h.userStore.GetByLogin(r.Context(), subject)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
			return nil, false
		}
		HandleAPIError(w, r, err, "")
		return nil, false
	}

	return user, true
}

// Create handles POST /topicos/{idTopico}/respostas.
// Replies can be posted to soft-deleted topics; only topic existence is
// checked.
func (h *ReplyHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := h.actingUser(w, r)
	if !ok {
		return
	}

	topicID, err := getPathUUID(r, "idTopico")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req CreateReplyRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: mensagem is required")
		return
	}

	topic, err := h.topicStore.GetByID(r.Context(), topicID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	reply, err := domain.NewReply(topic.ID, user.ID, req.Mensagem)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid reply data: "+err.Error())
		return
	}

	if err := h.replyStore.Create(r.Context(), reply); err != nil {
		// A dangling topic reference here means the topic vanished
		// between the existence check and the insert.
		if errors.Is(err, store.ErrInvalidEntity) {
			HandleAPIError(w, r, store.ErrTopicNotFound, "")
			return
		}
		HandleAPIError(w, r, err, "")
		return
	}

	reply.AuthorLogin = user.Login
	reply.TopicTitle = topic.Title

	w.Header().Set("Location", "/topicos/"+topic.ID.String()+"/respostas/"+reply.ID.String())
	shared.RespondWithJSON(w, r, http.StatusCreated, newReplyResponse(reply))
}

// List handles GET /topicos/{idTopico}/respostas.
// Replies of soft-deleted topics remain listable.
func (h *ReplyHandler) List(w http.ResponseWriter, r *http.Request) {
	topicID, err := getPathUUID(r, "idTopico")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	exists, err := h.topicStore.Exists(r.Context(), topicID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if !exists {
		HandleAPIError(w, r, store.ErrTopicNotFound, "")
		return
	}

	replies, err := h.replyStore.ListByTopic(r.Context(), topicID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	items := make([]ReplyListItem, 0, len(replies))
	for i := range replies {
		items = append(items, newReplyListItem(&replies[i]))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, items)
}

// loadReplyForTopic fetches the reply and enforces that it belongs to the
// topic named in the path. Writes a response and returns false on
// failure.
func (h *ReplyHandler) loadReplyForTopic(
	w http.ResponseWriter,
	r *http.Request,
) (*domain.Reply, bool) {
	topicID, err := getPathUUID(r, "idTopico")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return nil, false
	}

	replyID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return nil, false
	}

	reply, err := h.replyStore.GetByID(r.Context(), replyID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return nil, false
	}

	if !reply.BelongsTo(topicID) {
		HandleAPIError(w, r, domain.ErrReplyTopicMismatch, "")
		return nil, false
	}

	return reply, true
}

// Update handles PUT /topicos/{idTopico}/respostas/{id}.
// Only the reply's author may edit it; ownership is identity equality on
// the user ID, and a violation is a 400 per the existing contract.
func (h *ReplyHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := h.actingUser(w, r)
	if !ok {
		return
	}

	reply, ok := h.loadReplyForTopic(w, r)
	if !ok {
		return
	}

	if !reply.AuthoredBy(user.ID) {
		HandleAPIError(w, r, domain.ErrNotReplyAuthor, "")
		return
	}

	var req UpdateReplyRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: mensagem is required")
		return
	}

	reply.Message = req.Mensagem

	if err := h.replyStore.Update(r.Context(), reply); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newReplyResponse(reply))
}

// Delete handles DELETE /topicos/{idTopico}/respostas/{id}.
// Either the reply's author or the topic's author may delete; the topic
// author is matched by login, case-insensitively. Deletion is permanent.
func (h *ReplyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := h.actingUser(w, r)
	if !ok {
		return
	}

	reply, ok := h.loadReplyForTopic(w, r)
	if !ok {
		return
	}

	if !reply.AuthoredBy(user.ID) {
		topic, err := h.topicStore.GetByID(r.Context(), reply.TopicID)
		if err != nil {
			HandleAPIError(w, r, err, "")
			return
		}
		if !topic.OwnedBy(user.Login) {
			HandleAPIError(w, r, domain.ErrNotReplyOrTopicAuthor, "")
			return
		}
	}

	if err := h.replyStore.Delete(r.Context(), reply.ID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}
