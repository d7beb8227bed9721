package v1handler

import (
	"net/http"

	"agenthub/internal/marketplace"
	"agenthub/pkg/storage"
)

type CreateAgentRequest struct {
	Name             string         `json:"name"              validate:"required,max=100"`
	Description      string         `json:"description"       validate:"required,max=1000"`
	ShortDescription string         `json:"short_description" validate:"required,max=200"`
	Creator          string         `json:"creator"           validate:"required,max=100"`
	CreatorWallet    string         `json:"creator_wallet"    validate:"max=200"`
	Price            int64          `json:"price"             validate:"gte=0"`
	Category         string         `json:"category"          validate:"required,max=50"`
	Tags             []string       `json:"tags"              validate:"max=20,dive,max=50"`
	Avatar           string         `json:"avatar"`
	DemoLimit        *int           `json:"demo_limit"        validate:"omitempty,gte=0"`
	NFTTokenID       string         `json:"nft_token_id"`
	InputSchema      map[string]any `json:"input_schema"`
	CrewAIConfig     map[string]any `json:"crewai_config"`
}

type UpdateAgentRequest struct {
	Name             *string         `json:"name"              validate:"omitempty,min=1,max=100"`
	Description      *string         `json:"description"       validate:"omitempty,min=1,max=1000"`
	ShortDescription *string         `json:"short_description" validate:"omitempty,min=1,max=200"`
	Price            *int64          `json:"price"             validate:"omitempty,gte=0"`
	Category         *string         `json:"category"          validate:"omitempty,min=1,max=50"`
	Tags             *[]string       `json:"tags"              validate:"omitempty,max=20"`
	Avatar           *string         `json:"avatar"`
	IsActive         *bool           `json:"is_active"`
	IsApproved       *bool           `json:"is_approved"`
	DemoLimit        *int            `json:"demo_limit"        validate:"omitempty,gte=0"`
	NFTTokenID       *string         `json:"nft_token_id"`
	InputSchema      *map[string]any `json:"input_schema"`
	CrewAIConfig     *map[string]any `json:"crewai_config"`
}

type DemoRequest struct {
	Input      map[string]any `json:"input"`
	UserWallet string         `json:"user_wallet" validate:"max=200"`
}

type DemoResponse struct {
	JobID     string         `json:"job_id"`
	Status    string         `json:"status"`
	Message   string         `json:"message"`
	Output    map[string]any `json:"output"`
	DemoCount int64          `json:"demo_count"`
	DemoLimit int            `json:"demo_limit"`
}

type PurchaseRequest struct {
	TxHash string         `json:"tx_hash" validate:"required,max=128"`
	Input  map[string]any `json:"input"`
}

type PurchaseResponse struct {
	Transaction Transaction `json:"transaction"`
	Job         Job         `json:"job"`
}

// ListAgents returns active, approved agents unless the flags say otherwise.
func (h *Handler) ListAgents(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}
	isActive, err := queryBool(r, "is_active")
	if err != nil {
		h.WriteError(w, r, err)

		return
	}
	isApproved, err := queryBool(r, "is_approved")
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	agents, err := h.deps.Marketplace.ListAgents(r.Context(), marketplace.AgentQuery{
		IsActive:      isActive,
		IsApproved:    isApproved,
		Category:      r.URL.Query().Get("category"),
		CreatorWallet: r.URL.Query().Get("creator_wallet"),
		Limit:         page.Limit,
		Offset:        page.Offset,
	})
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, List[Agent]{
		Items:  DomainAgentsToV1(agents),
		Limit:  page.Limit,
		Offset: page.Offset,
	})
}

func (h *Handler) SearchAgents(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	agents, err := h.deps.Marketplace.SearchAgents(r.Context(), r.URL.Query().Get("q"), page.Limit, page.Offset)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, List[Agent]{
		Items:  DomainAgentsToV1(agents),
		Limit:  page.Limit,
		Offset: page.Offset,
	})
}

func (h *Handler) GetAgent(w http.ResponseWriter, r *http.Request) {
	id, err := agentIDParam(r)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	agent, err := h.deps.Marketplace.Agent(r.Context(), id)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, DomainAgentToV1(agent))
}

func (h *Handler) CreateAgent(w http.ResponseWriter, r *http.Request) {
	var req CreateAgentRequest
	if err := h.decode(r, &req); err != nil {
		h.WriteError(w, r, err)

		return
	}

	agent, err := h.deps.Marketplace.CreateAgent(r.Context(), CallerFromContext(r.Context()), marketplace.AgentInput{
		Name:             req.Name,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Creator:          req.Creator,
		CreatorWallet:    req.CreatorWallet,
		Price:            req.Price,
		Category:         req.Category,
		Tags:             req.Tags,
		Avatar:           req.Avatar,
		DemoLimit:        req.DemoLimit,
		NFTTokenID:       req.NFTTokenID,
		InputSchema:      req.InputSchema,
		CrewAIConfig:     req.CrewAIConfig,
	})
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, DomainAgentToV1(agent))
}

func (h *Handler) UpdateAgent(w http.ResponseWriter, r *http.Request) {
	id, err := agentIDParam(r)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}
	var req UpdateAgentRequest
	if err := h.decode(r, &req); err != nil {
		h.WriteError(w, r, err)

		return
	}

	agent, err := h.deps.Marketplace.UpdateAgent(r.Context(), CallerFromContext(r.Context()), id,
		storage.AgentUpdates{
			Name:             req.Name,
			Description:      req.Description,
			ShortDescription: req.ShortDescription,
			Price:            req.Price,
			Category:         req.Category,
			Tags:             req.Tags,
			Avatar:           req.Avatar,
			IsActive:         req.IsActive,
			IsApproved:       req.IsApproved,
			DemoLimit:        req.DemoLimit,
			NFTTokenID:       req.NFTTokenID,
			InputSchema:      req.InputSchema,
			CrewAIConfig:     req.CrewAIConfig,
		})
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, DomainAgentToV1(agent))
}

func (h *Handler) DeleteAgent(w http.ResponseWriter, r *http.Request) {
	id, err := agentIDParam(r)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	if err := h.deps.Marketplace.DeleteAgent(r.Context(), CallerFromContext(r.Context()), id); err != nil {
		h.WriteError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Demo runs a free demo. An authenticated caller is always counted under
// their own wallet; anonymous callers may name one in the body.
func (h *Handler) Demo(w http.ResponseWriter, r *http.Request) {
	id, err := agentIDParam(r)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}
	var req DemoRequest
	if err := h.decodeOptional(r, &req); err != nil {
		h.WriteError(w, r, err)

		return
	}
	if caller := CallerFromContext(r.Context()); !caller.Anonymous() {
		req.UserWallet = caller.Wallet
	}

	res, err := h.deps.Marketplace.Demo(r.Context(), id, marketplace.DemoRequest{
		Input:      req.Input,
		UserWallet: req.UserWallet,
	})
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, DemoResponse{
		JobID:     res.JobID.String(),
		Status:    string(res.Status),
		Message:   res.Message,
		Output:    res.Output,
		DemoCount: res.DemoCount,
		DemoLimit: res.DemoLimit,
	})
}

func (h *Handler) Purchase(w http.ResponseWriter, r *http.Request) {
	id, err := agentIDParam(r)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}
	var req PurchaseRequest
	if err := h.decode(r, &req); err != nil {
		h.WriteError(w, r, err)

		return
	}

	res, err := h.deps.Marketplace.Purchase(r.Context(), CallerFromContext(r.Context()), id,
		marketplace.PurchaseRequest{TxHash: req.TxHash, Input: req.Input})
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, PurchaseResponse{
		Transaction: DomainTransactionToV1(&res.Transaction),
		Job:         DomainJobToV1(&res.Job),
	})
}

func (h *Handler) AgentStats(w http.ResponseWriter, r *http.Request) {
	id, err := agentIDParam(r)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	stats, err := h.deps.Marketplace.JobStats(r.Context(), &id)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, DomainJobStatsToV1(stats))
}

func (h *Handler) AgentEarnings(w http.ResponseWriter, r *http.Request) {
	id, err := agentIDParam(r)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	total, err := h.deps.Marketplace.AgentEarnings(r.Context(), id)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, newEarnings(total))
}
