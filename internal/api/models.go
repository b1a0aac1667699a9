package api

import (
	"time"

	"github.com/google/uuid"

	"forumhub/internal/domain"
	"forumhub/internal/store"
)

// Request and response structures. The JSON keys are Portuguese because
// they are the wire contract existing clients rely on.

// RegisterUserRequest defines the payload for the user registration
// endpoint.
type RegisterUserRequest struct {
	Login string `json:"login" validate:"required,email"`
	Senha string `json:"senha" validate:"required,min=6,max=72"`
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Login string `json:"login" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}

// TokenResponse defines the successful response of the login endpoint.
type TokenResponse struct {
	Token string `json:"token"`
}

// UserResponse defines the public view of a user. The password hash is
// never part of it.
type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Login string    `json:"login"`
}

// CreateTopicRequest defines the payload for topic creation.
type CreateTopicRequest struct {
	Titulo   string `json:"titulo"   validate:"required"`
	Mensagem string `json:"mensagem" validate:"required"`
	Autor    string `json:"autor"    validate:"required"`
	Curso    string `json:"curso"    validate:"required"`
}

// UpdateTopicRequest defines the partial-update payload for topics.
// Absent fields leave the current values untouched.
type UpdateTopicRequest struct {
	Titulo   *string `json:"titulo"`
	Mensagem *string `json:"mensagem"`
	Status   *string `json:"status"`
}

// TopicResponse defines the detail view of a topic.
type TopicResponse struct {
	ID          uuid.UUID `json:"id"`
	Titulo      string    `json:"titulo"`
	Mensagem    string    `json:"mensagem"`
	DataCriacao time.Time `json:"dataCriacao"`
	Status      string    `json:"status"`
	Autor       string    `json:"autor"`
	Curso       string    `json:"curso"`
}

// TopicPageResponse defines one page of a topic listing.
type TopicPageResponse struct {
	Content       []TopicResponse `json:"content"`
	Page          int             `json:"page"`
	Size          int             `json:"size"`
	TotalElements int64           `json:"totalElements"`
	TotalPages    int             `json:"totalPages"`
}

// CreateReplyRequest defines the payload for reply creation.
type CreateReplyRequest struct {
	Mensagem string `json:"mensagem" validate:"required"`
}

// UpdateReplyRequest defines the payload for reply updates.
type UpdateReplyRequest struct {
	Mensagem string `json:"mensagem" validate:"required"`
}

// ReplyResponse defines the detail view of a reply.
type ReplyResponse struct {
	ID          uuid.UUID `json:"id"`
	Mensagem    string    `json:"mensagem"`
	NomeTopico  string    `json:"nomeTopico"`
	DataCriacao time.Time `json:"dataCriacao"`
	NomeAutor   string    `json:"nomeAutor"`
	Solucao     bool      `json:"solucao"`
}

// ReplyListItem defines a reply in the topic's reply listing.
type ReplyListItem struct {
	ID          uuid.UUID `json:"id"`
	Mensagem    string    `json:"mensagem"`
	DataCriacao time.Time `json:"dataCriacao"`
	NomeAutor   string    `json:"nomeAutor"`
	Solucao     bool      `json:"solucao"`
}

func newUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Login: user.Login,
	}
}

func newTopicResponse(topic *domain.Topic) TopicResponse {
	return TopicResponse{
		ID:          topic.ID,
		Titulo:      topic.Title,
		Mensagem:    topic.Message,
		DataCriacao: topic.CreatedAt,
		Status:      string(topic.Status),
		Autor:       topic.Author,
		Curso:       topic.Course,
	}
}

func newTopicPageResponse(page *store.TopicPage) TopicPageResponse {
	content := make([]TopicResponse, 0, len(page.Topics))
	for i := range page.Topics {
		content = append(content, newTopicResponse(&page.Topics[i]))
	}
	return TopicPageResponse{
		Content:       content,
		Page:          page.Page,
		Size:          page.Size,
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages,
	}
}

func newReplyResponse(reply *domain.Reply) ReplyResponse {
	return ReplyResponse{
		ID:          reply.ID,
		Mensagem:    reply.Message,
		NomeTopico:  reply.TopicTitle,
		DataCriacao: reply.CreatedAt,
		NomeAutor:   reply.AuthorLogin,
		Solucao:     reply.Solution,
	}
}

func newReplyListItem(reply *domain.Reply) ReplyListItem {
	return ReplyListItem{
		ID:          reply.ID,
		Mensagem:    reply.Message,
		DataCriacao: reply.CreatedAt,
		NomeAutor:   reply.AuthorLogin,
		Solucao:     reply.Solution,
	}
}
