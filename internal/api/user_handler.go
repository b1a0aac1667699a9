package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"forumhub/internal/api/shared"
	"forumhub/internal/domain"
	"forumhub/internal/service/auth"
	"forumhub/internal/store"
)

// UserHandler handles user registration and the current-user endpoint.
type UserHandler struct {
	userStore store.UserStore
	hasher    auth.PasswordHasher
	validator *validator.Validate
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(userStore store.UserStore, hasher auth.PasswordHasher) *UserHandler {
	return &UserHandler{
		userStore: userStore,
		hasher:    hasher,
		validator: validator.New(),
	}
}

// Register handles POST /usuarios.
// A duplicate login is a 400, matching the existing wire contract (not the
// 409 used for duplicate topics).
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterUserRequest

	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: login must be an email and senha at least 6 characters")
		return
	}

	user, err := domain.NewUser(req.Login, req.Senha)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid user data: "+err.Error())
		return
	}

	hashed, err := h.hasher.Hash(user.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create user")
		return
	}
	user.HashedPassword = hashed
	user.Password = ""

	if err := h.userStore.Create(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrLoginExists) {
			shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
			return
		}
		slog.Error("failed to create user", "error", err, "login", req.Login)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create user")
		return
	}

	w.Header().Set("Location", "/usuarios/"+user.ID.String())
	shared.RespondWithJSON(w, r, http.StatusCreated, newUserResponse(user))
}

// Me handles GET /usuarios/me.
// Returns 404 when the token subject no longer matches a stored user.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	subject, ok := subjectFromRequest(w, r)
	if !ok {
		return
	}

	user, err := h.userStore.GetByLogin(r.Context(), subject)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "User not found")
			return
		}
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newUserResponse(user))
}
