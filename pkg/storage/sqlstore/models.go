package sqlstore

import (
	"agenthub/pkg/domain"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// JSON documents (tags, schemas, id lists) are stored as TEXT so that the same
// schema works on both backends.

type sqlAgent struct {
	ID               uuid.UUID      `db:"id"`
	Name             string         `db:"name"`
	Description      string         `db:"description"`
	ShortDescription string         `db:"short_description"`
	Creator          string         `db:"creator"`
	CreatorWallet    string         `db:"creator_wallet"`
	Price            int64          `db:"price"`
	Category         string         `db:"category"`
	Tags             string         `db:"tags"`
	Avatar           sql.NullString `db:"avatar"`
	IsActive         bool           `db:"is_active"`
	IsApproved       bool           `db:"is_approved"`
	DemoLimit        int            `db:"demo_limit"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
	NFTTokenID       sql.NullString `db:"nft_token_id"`
	InputSchema      string         `db:"input_schema"`
	CrewAIConfig     string         `db:"crewai_config"`
}

func (m *sqlAgent) ToDomain() (*domain.Agent, error) {
	var tags []string
	if err := unmarshalText(m.Tags, &tags); err != nil {
		return nil, fmt.Errorf("could not unmarshal agent tags: %w", err)
	}
	var schema, crew map[string]any
	if err := unmarshalText(m.InputSchema, &schema); err != nil {
		return nil, fmt.Errorf("could not unmarshal agent input schema: %w", err)
	}
	if err := unmarshalText(m.CrewAIConfig, &crew); err != nil {
		return nil, fmt.Errorf("could not unmarshal agent crewai config: %w", err)
	}

	return &domain.Agent{
		ID:               domain.AgentID(m.ID),
		Name:             m.Name,
		Description:      m.Description,
		ShortDescription: m.ShortDescription,
		Creator:          m.Creator,
		CreatorWallet:    m.CreatorWallet,
		Price:            m.Price,
		Category:         m.Category,
		Tags:             nonNilSlice(tags),
		Avatar:           m.Avatar.String,
		IsActive:         m.IsActive,
		IsApproved:       m.IsApproved,
		DemoLimit:        m.DemoLimit,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
		NFTTokenID:       m.NFTTokenID.String,
		InputSchema:      nonNilMap(schema),
		CrewAIConfig:     nonNilMap(crew),
	}, nil
}

func (m *sqlAgent) FromDomain(a domain.Agent) error {
	tags, err := marshalText(nonNilSlice(a.Tags))
	if err != nil {
		return fmt.Errorf("could not marshal agent tags: %w", err)
	}
	schema, err := marshalText(nonNilMap(a.InputSchema))
	if err != nil {
		return fmt.Errorf("could not marshal agent input schema: %w", err)
	}
	crew, err := marshalText(nonNilMap(a.CrewAIConfig))
	if err != nil {
		return fmt.Errorf("could not marshal agent crewai config: %w", err)
	}

	*m = sqlAgent{
		ID:               uuid.UUID(a.ID),
		Name:             a.Name,
		Description:      a.Description,
		ShortDescription: a.ShortDescription,
		Creator:          a.Creator,
		CreatorWallet:    a.CreatorWallet,
		Price:            a.Price,
		Category:         a.Category,
		Tags:             tags,
		Avatar:           nullString(a.Avatar),
		IsActive:         a.IsActive,
		IsApproved:       a.IsApproved,
		DemoLimit:        a.DemoLimit,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
		NFTTokenID:       nullString(a.NFTTokenID),
		InputSchema:      schema,
		CrewAIConfig:     crew,
	}

	return nil
}

type sqlUser struct {
	ID              uuid.UUID      `db:"id"`
	WalletAddress   string         `db:"wallet_address"`
	Username        sql.NullString `db:"username"`
	Email           sql.NullString `db:"email"`
	IsCreator       bool           `db:"is_creator"`
	IsAdmin         bool           `db:"is_admin"`
	CreatedAt       time.Time      `db:"created_at"`
	LastLoginAt     sql.NullTime   `db:"last_login_at"`
	PurchasedAgents string         `db:"purchased_agents"`
	CreatedAgents   string         `db:"created_agents"`
}

func (m *sqlUser) ToDomain() (*domain.User, error) {
	purchased, err := unmarshalAgentIDs(m.PurchasedAgents)
	if err != nil {
		return nil, fmt.Errorf("could not unmarshal purchased agents: %w", err)
	}
	created, err := unmarshalAgentIDs(m.CreatedAgents)
	if err != nil {
		return nil, fmt.Errorf("could not unmarshal created agents: %w", err)
	}

	return &domain.User{
		ID:              domain.UserID(m.ID),
		WalletAddress:   m.WalletAddress,
		Username:        m.Username.String,
		Email:           m.Email.String,
		IsCreator:       m.IsCreator,
		IsAdmin:         m.IsAdmin,
		CreatedAt:       m.CreatedAt,
		LastLoginAt:     m.LastLoginAt.Time,
		PurchasedAgents: purchased,
		CreatedAgents:   created,
	}, nil
}

func (m *sqlUser) FromDomain(u domain.User) error {
	purchased, err := marshalAgentIDs(u.PurchasedAgents)
	if err != nil {
		return err
	}
	created, err := marshalAgentIDs(u.CreatedAgents)
	if err != nil {
		return err
	}

	*m = sqlUser{
		ID:              uuid.UUID(u.ID),
		WalletAddress:   u.WalletAddress,
		Username:        nullString(u.Username),
		Email:           nullString(u.Email),
		IsCreator:       u.IsCreator,
		IsAdmin:         u.IsAdmin,
		CreatedAt:       u.CreatedAt,
		LastLoginAt:     nullTime(u.LastLoginAt),
		PurchasedAgents: purchased,
		CreatedAgents:   created,
	}

	return nil
}

type sqlTransaction struct {
	ID          uuid.UUID     `db:"id"`
	TxHash      string        `db:"tx_hash"`
	FromWallet  string        `db:"from_wallet"`
	ToWallet    string        `db:"to_wallet"`
	Amount      int64         `db:"amount"`
	AgentID     uuid.UUID     `db:"agent_id"`
	Status      string        `db:"status"`
	CreatedAt   time.Time     `db:"created_at"`
	ConfirmedAt sql.NullTime  `db:"confirmed_at"`
	BlockHeight sql.NullInt64 `db:"block_height"`
}

func (m *sqlTransaction) ToDomain() *domain.Transaction {
	return &domain.Transaction{
		ID:          domain.TransactionID(m.ID),
		TxHash:      m.TxHash,
		FromWallet:  m.FromWallet,
		ToWallet:    m.ToWallet,
		Amount:      m.Amount,
		AgentID:     domain.AgentID(m.AgentID),
		Status:      domain.TransactionStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		ConfirmedAt: m.ConfirmedAt.Time,
		BlockHeight: m.BlockHeight.Int64,
	}
}

func (m *sqlTransaction) FromDomain(t domain.Transaction) {
	*m = sqlTransaction{
		ID:          uuid.UUID(t.ID),
		TxHash:      t.TxHash,
		FromWallet:  t.FromWallet,
		ToWallet:    t.ToWallet,
		Amount:      t.Amount,
		AgentID:     uuid.UUID(t.AgentID),
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt,
		ConfirmedAt: nullTime(t.ConfirmedAt),
		BlockHeight: sql.NullInt64{Int64: t.BlockHeight, Valid: t.BlockHeight > 0},
	}
}

type sqlJob struct {
	ID          uuid.UUID      `db:"id"`
	AgentID     uuid.UUID      `db:"agent_id"`
	UserWallet  string         `db:"user_wallet"`
	Status      string         `db:"status"`
	Input       string         `db:"input"`
	Output      sql.NullString `db:"output"`
	Error       sql.NullString `db:"error"`
	CreatedAt   time.Time      `db:"created_at"`
	CompletedAt sql.NullTime   `db:"completed_at"`
	IsDemo      bool           `db:"is_demo"`
}

func (m *sqlJob) ToDomain() (*domain.AgentJob, error) {
	var input, output map[string]any
	if err := unmarshalText(m.Input, &input); err != nil {
		return nil, fmt.Errorf("could not unmarshal job input: %w", err)
	}
	if err := unmarshalText(m.Output.String, &output); err != nil {
		return nil, fmt.Errorf("could not unmarshal job output: %w", err)
	}

	return &domain.AgentJob{
		ID:          domain.JobID(m.ID),
		AgentID:     domain.AgentID(m.AgentID),
		UserWallet:  m.UserWallet,
		Status:      domain.JobStatus(m.Status),
		Input:       nonNilMap(input),
		Output:      output,
		Error:       m.Error.String,
		CreatedAt:   m.CreatedAt,
		CompletedAt: m.CompletedAt.Time,
		IsDemo:      m.IsDemo,
	}, nil
}

func (m *sqlJob) FromDomain(j domain.AgentJob) error {
	input, err := marshalText(nonNilMap(j.Input))
	if err != nil {
		return fmt.Errorf("could not marshal job input: %w", err)
	}
	var output sql.NullString
	if j.Output != nil {
		out, err := marshalText(j.Output)
		if err != nil {
			return fmt.Errorf("could not marshal job output: %w", err)
		}
		output = nullString(out)
	}

	*m = sqlJob{
		ID:          uuid.UUID(j.ID),
		AgentID:     uuid.UUID(j.AgentID),
		UserWallet:  j.UserWallet,
		Status:      string(j.Status),
		Input:       input,
		Output:      output,
		Error:       nullString(j.Error),
		CreatedAt:   j.CreatedAt,
		CompletedAt: nullTime(j.CompletedAt),
		IsDemo:      j.IsDemo,
	}

	return nil
}

type sqlMemory struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	Agent     string    `db:"agent"`
	Goal      string    `db:"goal"`
	Result    string    `db:"result"`
	Tags      string    `db:"tags"`
}

func (m *sqlMemory) ToDomain() (*domain.MemoryItem, error) {
	var tags []string
	if err := unmarshalText(m.Tags, &tags); err != nil {
		return nil, fmt.Errorf("could not unmarshal memory tags: %w", err)
	}

	return &domain.MemoryItem{
		ID:        domain.MemoryID(m.ID),
		Timestamp: m.CreatedAt,
		Agent:     m.Agent,
		Goal:      m.Goal,
		Result:    m.Result,
		Tags:      nonNilSlice(tags),
	}, nil
}

func marshalText(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err //nolint: wrapcheck
	}

	return string(b), nil
}

// unmarshalText leaves v untouched for empty columns.
func unmarshalText(s string, v any) error {
	if s == "" {
		return nil
	}

	return json.Unmarshal([]byte(s), v) //nolint: wrapcheck
}

func marshalAgentIDs(ids []domain.AgentID) (string, error) {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}

	s, err := marshalText(out)
	if err != nil {
		return "", fmt.Errorf("could not marshal agent ids: %w", err)
	}

	return s, nil
}

func unmarshalAgentIDs(s string) ([]domain.AgentID, error) {
	var raw []string
	if err := unmarshalText(s, &raw); err != nil {
		return nil, err
	}

	out := make([]domain.AgentID, 0, len(raw))
	for _, r := range raw {
		id, err := domain.ParseAgentID(r)
		if err != nil {
			return nil, err //nolint: wrapcheck
		}
		out = append(out, id)
	}

	return out, nil
}

func nonNilSlice(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}

func nonNilMap(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}

	return m
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}
