package v1handler

import (
	"net/http"

	"agenthub/pkg/storage"
)

type RegisterUserRequest struct {
	Username string `json:"username" validate:"max=50"`
	Email    string `json:"email"    validate:"omitempty,email,max=254"`
}

type UpdateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=1,max=50"`
	Email    *string `json:"email"    validate:"omitempty,email,max=254"`
}

// RegisterUser signs the caller's wallet in, creating the user on first use.
func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req RegisterUserRequest
	if err := h.decodeOptional(r, &req); err != nil {
		h.WriteError(w, r, err)

		return
	}

	user, err := h.deps.Marketplace.RegisterUser(r.Context(),
		CallerFromContext(r.Context()).Wallet, req.Username, req.Email)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, DomainUserToV1(user))
}

func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	user, err := h.deps.Marketplace.UserByWallet(r.Context(), CallerFromContext(r.Context()).Wallet)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, DomainUserToV1(user))
}

func (h *Handler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req UpdateUserRequest
	if err := h.decode(r, &req); err != nil {
		h.WriteError(w, r, err)

		return
	}

	user, err := h.deps.Marketplace.UpdateUser(r.Context(), CallerFromContext(r.Context()).Wallet,
		storage.UserUpdates{Username: req.Username, Email: req.Email})
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, DomainUserToV1(user))
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := userIDParam(r)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	user, err := h.deps.Marketplace.User(r.Context(), id)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, DomainUserToV1(user))
}
