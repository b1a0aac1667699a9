package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forumhub/internal/api/shared"
	"forumhub/internal/domain"
	"forumhub/internal/mocks"
)

// newTopicRouter mounts the handler the way the server does so path
// parameters resolve.
func newTopicRouter(h *TopicHandler) chi.Router {
	r := chi.NewRouter()
	r.Post("/topicos", h.Create)
	r.Get("/topicos", h.List)
	r.Get("/topicos/{id}", h.Get)
	r.Put("/topicos/{id}", h.Update)
	r.Delete("/topicos/{id}", h.Delete)
	return r
}

func doRequest(t *testing.T, router chi.Router, method, path, subject string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(method, path, body)
	if subject != "" {
		r = r.WithContext(shared.WithSubject(r.Context(), subject))
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func mustNewTopic(t *testing.T, title, message, author, course string) *domain.Topic {
	t.Helper()
	topic, err := domain.NewTopic(title, message, author, course)
	require.NoError(t, err)
	return topic
}

func TestTopicHandlerCreate(t *testing.T) {
	t.Parallel()

	topics := mocks.NewMockTopicStore()
	router := newTopicRouter(NewTopicHandler(topics))

	body := `{"titulo":"Dúvida de Go","mensagem":"Como uso interfaces?","autor":"aluno@forumhub.com","curso":"Go"}`
	w := doRequest(t, router, http.MethodPost, "/topicos", "", strings.NewReader(body))

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "/topicos/")

	var resp TopicResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Dúvida de Go", resp.Titulo)
	assert.Equal(t, "NAO_RESPONDIDO", resp.Status)

	// Posting the exact same pair again conflicts.
	w = doRequest(t, router, http.MethodPost, "/topicos", "", strings.NewReader(body))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Len(t, topics.Topics, 1)
}

func TestTopicHandlerCreateValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"malformed JSON", `{"titulo":`},
		{"missing titulo", `{"mensagem":"m","autor":"a@b.com","curso":"c"}`},
		{"missing mensagem", `{"titulo":"t","autor":"a@b.com","curso":"c"}`},
		{"missing autor", `{"titulo":"t","mensagem":"m","curso":"c"}`},
		{"missing curso", `{"titulo":"t","mensagem":"m","autor":"a@b.com"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTopicRouter(NewTopicHandler(mocks.NewMockTopicStore()))
			w := doRequest(t, router, http.MethodPost, "/topicos", "", strings.NewReader(tt.body))
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestTopicHandlerCreateConflictsWithSoftDeleted(t *testing.T) {
	t.Parallel()

	topics := mocks.NewMockTopicStore()
	deleted := mustNewTopic(t, "Dúvida de Go", "Como uso interfaces?", "aluno@forumhub.com", "Go")
	deleted.Deactivate()
	topics.Add(deleted)

	router := newTopicRouter(NewTopicHandler(topics))

	body := `{"titulo":"Dúvida de Go","mensagem":"Como uso interfaces?","autor":"outro@forumhub.com","curso":"Go"}`
	w := doRequest(t, router, http.MethodPost, "/topicos", "", strings.NewReader(body))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestTopicHandlerList(t *testing.T) {
	t.Parallel()

	topics := mocks.NewMockTopicStore()
	topics.Add(mustNewTopic(t, "t1", "m1", "a@b.com", "Go"))
	topics.Add(mustNewTopic(t, "t2", "m2", "a@b.com", "Java"))
	inactive := mustNewTopic(t, "t3", "m3", "a@b.com", "Go")
	inactive.Deactivate()
	topics.Add(inactive)

	router := newTopicRouter(NewTopicHandler(topics))

	w := doRequest(t, router, http.MethodGet, "/topicos", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var page TopicPageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Len(t, page.Content, 2, "soft-deleted topics are not listed")
	assert.Equal(t, int64(2), page.TotalElements)

	w = doRequest(t, router, http.MethodGet, "/topicos?curso=Go", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Len(t, page.Content, 1)
	assert.Equal(t, "Go", page.Content[0].Curso)
}

func TestTopicHandlerListRejectsBadParameters(t *testing.T) {
	t.Parallel()

	router := newTopicRouter(NewTopicHandler(mocks.NewMockTopicStore()))

	for _, path := range []string{
		"/topicos?ano=vinte",
		"/topicos?ano=0",
		"/topicos?ano=-2024",
		"/topicos?page=-1",
		"/topicos?page=x",
		"/topicos?size=0",
		"/topicos?size=x",
	} {
		w := doRequest(t, router, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}

func TestTopicHandlerGet(t *testing.T) {
	t.Parallel()

	topics := mocks.NewMockTopicStore()
	topic := mustNewTopic(t, "t1", "m1", "a@b.com", "Go")
	topics.Add(topic)
	deleted := mustNewTopic(t, "t2", "m2", "a@b.com", "Go")
	deleted.Deactivate()
	topics.Add(deleted)

	router := newTopicRouter(NewTopicHandler(topics))

	w := doRequest(t, router, http.MethodGet, "/topicos/"+topic.ID.String(), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp TopicResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, topic.ID, resp.ID)

	w = doRequest(t, router, http.MethodGet, "/topicos/"+deleted.ID.String(), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code, "soft-deleted topic reads as absent")

	w = doRequest(t, router, http.MethodGet, "/topicos/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTopicHandlerUpdate(t *testing.T) {
	t.Parallel()

	topics := mocks.NewMockTopicStore()
	topic := mustNewTopic(t, "t1", "m1", "aluno@forumhub.com", "Go")
	topics.Add(topic)

	router := newTopicRouter(NewTopicHandler(topics))

	body := `{"titulo":"novo titulo","status":"SOLUCIONADO"}`
	w := doRequest(t, router, http.MethodPut, "/topicos/"+topic.ID.String(),
		"aluno@forumhub.com", strings.NewReader(body))

	require.Equal(t, http.StatusOK, w.Code)

	var resp TopicResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "novo titulo", resp.Titulo)
	assert.Equal(t, "m1", resp.Mensagem, "absent field keeps its value")
	assert.Equal(t, "SOLUCIONADO", resp.Status)

	assert.Equal(t, "novo titulo", topics.Topics[topic.ID].Title)
}

func TestTopicHandlerUpdateAuthorization(t *testing.T) {
	t.Parallel()

	topics := mocks.NewMockTopicStore()
	topic := mustNewTopic(t, "t1", "m1", "aluno@forumhub.com", "Go")
	topics.Add(topic)

	router := newTopicRouter(NewTopicHandler(topics))

	// A different user gets 403 and the topic stays untouched.
	w := doRequest(t, router, http.MethodPut, "/topicos/"+topic.ID.String(),
		"outro@forumhub.com", strings.NewReader(`{"titulo":"hijacked"}`))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "t1", topics.Topics[topic.ID].Title)

	// The author matched with different casing succeeds.
	w = doRequest(t, router, http.MethodPut, "/topicos/"+topic.ID.String(),
		"ALUNO@forumhub.com", strings.NewReader(`{"titulo":"novo"}`))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "novo", topics.Topics[topic.ID].Title)
}

func TestTopicHandlerUpdateRejectsEmptyFieldValue(t *testing.T) {
	t.Parallel()

	topics := mocks.NewMockTopicStore()
	topic := mustNewTopic(t, "t1", "m1", "aluno@forumhub.com", "Go")
	topics.Add(topic)

	// Validate on write like the SQL store does, so an empty patched
	// field surfaces the domain sentinel instead of silently persisting.
	topics.UpdateFn = func(ctx context.Context, updated *domain.Topic) error {
		if err := updated.Validate(); err != nil {
			return err
		}
		topics.Topics[updated.ID] = updated
		return nil
	}

	router := newTopicRouter(NewTopicHandler(topics))

	for _, body := range []string{`{"titulo":""}`, `{"mensagem":""}`} {
		w := doRequest(t, router, http.MethodPut, "/topicos/"+topic.ID.String(),
			"aluno@forumhub.com", strings.NewReader(body))

		assert.Equal(t, http.StatusBadRequest, w.Code, body)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, resp, "mensagem")
	}
	assert.Equal(t, "t1", topics.Topics[topic.ID].Title)
	assert.Equal(t, "m1", topics.Topics[topic.ID].Message)
}

func TestTopicHandlerUpdateRejectsUnknownStatus(t *testing.T) {
	t.Parallel()

	topics := mocks.NewMockTopicStore()
	topic := mustNewTopic(t, "t1", "m1", "aluno@forumhub.com", "Go")
	topics.Add(topic)

	router := newTopicRouter(NewTopicHandler(topics))

	w := doRequest(t, router, http.MethodPut, "/topicos/"+topic.ID.String(),
		"aluno@forumhub.com", strings.NewReader(`{"status":"ABERTO"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, domain.TopicStatusUnanswered, topics.Topics[topic.ID].Status)
}

func TestTopicHandlerUpdateDuplicatePair(t *testing.T) {
	t.Parallel()

	topics := mocks.NewMockTopicStore()
	target := mustNewTopic(t, "t1", "m1", "aluno@forumhub.com", "Go")
	other := mustNewTopic(t, "t2", "m2", "aluno@forumhub.com", "Go")
	topics.Add(target)
	topics.Add(other)

	router := newTopicRouter(NewTopicHandler(topics))

	// Moving onto another topic's pair conflicts.
	w := doRequest(t, router, http.MethodPut, "/topicos/"+target.ID.String(),
		"aluno@forumhub.com", strings.NewReader(`{"titulo":"t2","mensagem":"m2"}`))
	assert.Equal(t, http.StatusConflict, w.Code)

	// Re-submitting the topic's own pair is not a conflict.
	w = doRequest(t, router, http.MethodPut, "/topicos/"+target.ID.String(),
		"aluno@forumhub.com", strings.NewReader(`{"titulo":"t1","mensagem":"m1"}`))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTopicHandlerUpdateMissingTopic(t *testing.T) {
	t.Parallel()

	router := newTopicRouter(NewTopicHandler(mocks.NewMockTopicStore()))

	w := doRequest(t, router, http.MethodPut, "/topicos/0b6fdbb8-3546-4532-9d5c-79a0a4d10917",
		"aluno@forumhub.com", strings.NewReader(`{"titulo":"novo"}`))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTopicHandlerDelete(t *testing.T) {
	t.Parallel()

	topics := mocks.NewMockTopicStore()
	topic := mustNewTopic(t, "t1", "m1", "aluno@forumhub.com", "Go")
	topics.Add(topic)

	router := newTopicRouter(NewTopicHandler(topics))

	// Non-author cannot delete.
	w := doRequest(t, router, http.MethodDelete, "/topicos/"+topic.ID.String(),
		"outro@forumhub.com", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.True(t, topics.Topics[topic.ID].Active)

	// The author soft-deletes; the row stays.
	w = doRequest(t, router, http.MethodDelete, "/topicos/"+topic.ID.String(),
		"aluno@forumhub.com", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	require.Contains(t, topics.Topics, topic.ID)
	assert.False(t, topics.Topics[topic.ID].Active)

	// Deleting again reads as absent.
	w = doRequest(t, router, http.MethodDelete, "/topicos/"+topic.ID.String(),
		"aluno@forumhub.com", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTopicHandlerRequiresSubjectForMutation(t *testing.T) {
	t.Parallel()

	topics := mocks.NewMockTopicStore()
	topic := mustNewTopic(t, "t1", "m1", "aluno@forumhub.com", "Go")
	topics.Add(topic)

	router := newTopicRouter(NewTopicHandler(topics))

	w := doRequest(t, router, http.MethodPut, "/topicos/"+topic.ID.String(),
		"", strings.NewReader(`{"titulo":"novo"}`))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, router, http.MethodDelete, "/topicos/"+topic.ID.String(), "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
