package marketplace

import (
	"context"
	"fmt"

	"agenthub/pkg/domain"
	"agenthub/pkg/logger"
	"agenthub/pkg/storage"

	"go.uber.org/zap"
)

// SampleWallet owns the seeded sample agent.
const SampleWallet = "addr_test1qz2fxv2umyhttkxyxp8x0dlpdt3k6cwng5pxj3jhsydzer3jcu5d8ps7zex2k2xt3uqxgjqnnj0vs2f"

func sampleAgent() domain.Agent {
	return domain.Agent{
		Name: "Resume Helper AI",
		Description: "An AI agent that helps you create and improve your resume with personalized " +
			"suggestions and formatting.",
		ShortDescription: "AI-powered resume creation and improvement tool",
		Creator:          "Sample Creator",
		CreatorWallet:    SampleWallet,
		Price:            5_000_000,
		Category:         "productivity",
		Tags:             []string{"resume", "career", "ai", "writing"},
		IsActive:         true,
		IsApproved:       true,
		DemoLimit:        3,
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"currentResume": map[string]any{"type": "string", "description": "Your current resume text"},
				"targetJob": map[string]any{
					"type":        "string",
					"description": "Job title or description you are targeting",
				},
			},
			"required": []any{"currentResume"},
		},
		CrewAIConfig: map[string]any{
			"agent_type":  "resume_helper",
			"model":       "gpt-3.5-turbo",
			"temperature": 0.7,
		},
	}
}

// Seed inserts the sample creator and agent unless they already exist.
func (m *marketplace) Seed(ctx context.Context) (*SeedResult, error) {
	var res SeedResult
	if err := m.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		user, err := tx.UserByWallet(ctx, SampleWallet)
		if err != nil {
			return fmt.Errorf("could not get sample user: %w", err)
		}
		if user == nil {
			user, err = tx.StoreUser(ctx, domain.User{
				WalletAddress: SampleWallet,
				Username:      "sample_user",
				IsCreator:     true,
			})
			if err != nil {
				return fmt.Errorf("could not store sample user: %w", err)
			}
			res.UserCreated = true
		}

		agents, err := tx.Agents(ctx, storage.AgentFilter{CreatorWallet: SampleWallet, Limit: 1})
		if err != nil {
			return fmt.Errorf("could not list sample agents: %w", err)
		}
		if len(agents) > 0 {
			res.Agent = agents[0]
		} else {
			agent, err := tx.StoreAgent(ctx, sampleAgent())
			if err != nil {
				return fmt.Errorf("could not store sample agent: %w", err)
			}
			if err := tx.AddCreatedAgent(ctx, user.ID, agent.ID); err != nil {
				return fmt.Errorf("could not link sample agent: %w", err)
			}
			res.Agent = *agent
			res.AgentCreated = true
		}

		user, err = tx.UserByID(ctx, user.ID)
		if err != nil {
			return fmt.Errorf("could not reload sample user: %w", err)
		}
		res.User = *user

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not seed database: %w", err)
	}

	logger.Info(ctx, "database seeded",
		zap.Stringer("userID", res.User.ID),
		zap.Stringer("agentID", res.Agent.ID),
		zap.Bool("userCreated", res.UserCreated),
		zap.Bool("agentCreated", res.AgentCreated))

	return &res, nil
}
