package v1handler

import (
	"time"

	"agenthub/pkg/cardano"
	"agenthub/pkg/domain"
)

type Agent struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Description      string         `json:"description"`
	ShortDescription string         `json:"short_description"`
	Creator          string         `json:"creator"`
	CreatorWallet    string         `json:"creator_wallet"`
	Price            int64          `json:"price"`
	PriceADA         string         `json:"price_ada"`
	Category         string         `json:"category"`
	Tags             []string       `json:"tags"`
	Avatar           string         `json:"avatar,omitempty"`
	IsActive         bool           `json:"is_active"`
	IsApproved       bool           `json:"is_approved"`
	DemoLimit        int            `json:"demo_limit"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	NFTTokenID       string         `json:"nft_token_id,omitempty"`
	InputSchema      map[string]any `json:"input_schema"`
	CrewAIConfig     map[string]any `json:"crewai_config"`
}

func DomainAgentToV1(in *domain.Agent) Agent {
	return Agent{
		ID:               in.ID.String(),
		Name:             in.Name,
		Description:      in.Description,
		ShortDescription: in.ShortDescription,
		Creator:          in.Creator,
		CreatorWallet:    in.CreatorWallet,
		Price:            in.Price,
		PriceADA:         cardano.FormatADA(in.Price),
		Category:         in.Category,
		Tags:             in.Tags,
		Avatar:           in.Avatar,
		IsActive:         in.IsActive,
		IsApproved:       in.IsApproved,
		DemoLimit:        in.DemoLimit,
		CreatedAt:        in.CreatedAt,
		UpdatedAt:        in.UpdatedAt,
		NFTTokenID:       in.NFTTokenID,
		InputSchema:      in.InputSchema,
		CrewAIConfig:     in.CrewAIConfig,
	}
}

func DomainAgentsToV1(in []domain.Agent) []Agent {
	out := make([]Agent, 0, len(in))
	for i := range in {
		out = append(out, DomainAgentToV1(&in[i]))
	}

	return out
}

type User struct {
	ID              string     `json:"id"`
	WalletAddress   string     `json:"wallet_address"`
	Username        string     `json:"username,omitempty"`
	Email           string     `json:"email,omitempty"`
	IsCreator       bool       `json:"is_creator"`
	IsAdmin         bool       `json:"is_admin"`
	CreatedAt       time.Time  `json:"created_at"`
	LastLoginAt     *time.Time `json:"last_login_at"`
	PurchasedAgents []string   `json:"purchased_agents"`
	CreatedAgents   []string   `json:"created_agents"`
}

func DomainUserToV1(in *domain.User) User {
	return User{
		ID:              in.ID.String(),
		WalletAddress:   in.WalletAddress,
		Username:        in.Username,
		Email:           in.Email,
		IsCreator:       in.IsCreator,
		IsAdmin:         in.IsAdmin,
		CreatedAt:       in.CreatedAt,
		LastLoginAt:     optTime(in.LastLoginAt),
		PurchasedAgents: idStrings(in.PurchasedAgents),
		CreatedAgents:   idStrings(in.CreatedAgents),
	}
}

type Transaction struct {
	ID          string     `json:"id"`
	TxHash      string     `json:"tx_hash"`
	FromWallet  string     `json:"from_wallet"`
	ToWallet    string     `json:"to_wallet"`
	Amount      int64      `json:"amount"`
	AgentID     string     `json:"agent_id"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	ConfirmedAt *time.Time `json:"confirmed_at"`
	BlockHeight *int64     `json:"block_height"`
}

func DomainTransactionToV1(in *domain.Transaction) Transaction {
	out := Transaction{
		ID:          in.ID.String(),
		TxHash:      in.TxHash,
		FromWallet:  in.FromWallet,
		ToWallet:    in.ToWallet,
		Amount:      in.Amount,
		AgentID:     in.AgentID.String(),
		Status:      string(in.Status),
		CreatedAt:   in.CreatedAt,
		ConfirmedAt: optTime(in.ConfirmedAt),
	}
	if in.BlockHeight > 0 {
		out.BlockHeight = &in.BlockHeight
	}

	return out
}

type Job struct {
	ID          string         `json:"id"`
	AgentID     string         `json:"agent_id"`
	UserWallet  string         `json:"user_wallet"`
	Status      string         `json:"status"`
	Input       map[string]any `json:"input"`
	Output      map[string]any `json:"output,omitempty"`
	Error       string         `json:"error,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	CompletedAt *time.Time     `json:"completed_at"`
	IsDemo      bool           `json:"is_demo"`
}

func DomainJobToV1(in *domain.AgentJob) Job {
	return Job{
		ID:          in.ID.String(),
		AgentID:     in.AgentID.String(),
		UserWallet:  in.UserWallet,
		Status:      string(in.Status),
		Input:       in.Input,
		Output:      in.Output,
		Error:       in.Error,
		CreatedAt:   in.CreatedAt,
		CompletedAt: optTime(in.CompletedAt),
		IsDemo:      in.IsDemo,
	}
}

type JobStats struct {
	Total     int64 `json:"total"`
	Queued    int64 `json:"queued"`
	Running   int64 `json:"running"`
	Completed int64 `json:"completed"`
	Failed    int64 `json:"failed"`
	Demos     int64 `json:"demos"`
}

func DomainJobStatsToV1(in domain.JobStats) JobStats {
	return JobStats(in)
}

type Earnings struct {
	Lovelace int64  `json:"lovelace"`
	ADA      string `json:"ada"`
}

func newEarnings(lovelace int64) Earnings {
	return Earnings{Lovelace: lovelace, ADA: cardano.FormatADA(lovelace)}
}

type List[T any] struct {
	Items  []T `json:"items"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

func optTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}

	return &t
}

func idStrings[T interface{ String() string }](ids []T) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}

	return out
}
