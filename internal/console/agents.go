package console

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"agenthub/pkg/cardano"
	"agenthub/pkg/domain"
	"agenthub/pkg/logger"
	"agenthub/pkg/serrors"

	"go.uber.org/zap"
)

// maxMemoryResult bounds the result text kept in memory, in runes.
const maxMemoryResult = 2000

var (
	addressPattern = regexp.MustCompile(`addr_test[0-9a-z]+`)                 //nolint: gochecknoglobals
	amountPattern  = regexp.MustCompile(`amount\s*=\s*([0-9]+(?:\.[0-9]+)?)`) //nolint: gochecknoglobals
)

// Task is the goal handed to an agent, with optional extra context.
type Task struct {
	Goal    string
	Context string
}

// Agent is a named, single purpose assistant built on one console tool.
type Agent struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`

	run func(ctx context.Context, task Task) (string, error)
}

func (c *Console) registerAgents() []Agent {
	return []Agent{
		{
			Name:        "CIPResearcher",
			Description: "Generates a structured CIP draft for a given topic.",
			Skills:      []string{"draft_cip"},
			run: func(ctx context.Context, task Task) (string, error) {
				return c.DraftCIP(ctx, task.Goal)
			},
		},
		{
			Name:        "BalanceChecker",
			Description: "Retrieves ADA balance for a given address contained in the goal or context.",
			Skills:      []string{"get_balance"},
			run: func(ctx context.Context, task Task) (string, error) {
				addr := addressPattern.FindString(task.Goal + " " + task.Context)
				if addr == "" {
					return "No testnet address found in goal/context.", nil
				}

				return c.Balance(ctx, addr)
			},
		},
		{
			Name:        "TxSender",
			Description: "Sends ADA from the payment service wallet (testnet only). Goal must specify amount and to address.",
			Skills:      []string{"send_ada"},
			run: func(ctx context.Context, task Task) (string, error) {
				to := addressPattern.FindString(task.Goal + " " + task.Context)
				m := amountPattern.FindStringSubmatch(task.Goal)
				if to == "" || m == nil {
					return "Need addr_test... and amount=number in goal.", nil
				}

				lovelace, err := cardano.ParseADA(m[1])
				if err != nil {
					return "", err
				}
				res, err := c.SendADA(ctx, to, lovelace)
				if err != nil {
					return "", err
				}
				b, err := json.Marshal(res)
				if err != nil {
					return "", fmt.Errorf("could not marshal transfer: %w", err)
				}

				return string(b), nil
			},
		},
	}
}

// Agents lists the registered agents.
func (c *Console) Agents() []Agent {
	return c.agents
}

// RunAgent runs the agent called name (case-insensitive) and records a
// successful result in the shared memory log.
func (c *Console) RunAgent(ctx context.Context, name string, task Task) (string, error) {
	var agent *Agent
	for i := range c.agents {
		if strings.EqualFold(c.agents[i].Name, name) {
			agent = &c.agents[i]

			break
		}
	}
	if agent == nil {
		return "", serrors.With(serrors.ErrNotFound, "Agent not found: %s", name)
	}

	result, err := agent.run(ctx, task)
	if err != nil {
		return "", err
	}

	c.remember(ctx, domain.MemoryItem{
		Timestamp: time.Now().UTC(),
		Agent:     agent.Name,
		Goal:      task.Goal,
		Result:    truncate(result, maxMemoryResult),
		Tags:      deriveTags(task.Goal, result),
	})

	return result, nil
}

func (c *Console) remember(ctx context.Context, item domain.MemoryItem) {
	if c.deps.Memory == nil {
		return
	}
	if err := c.deps.Memory.StoreMemory(ctx, item); err != nil {
		logger.Warn(ctx, "could not store agent memory", zap.String("agent", item.Agent), zap.Error(err))
	}
}

func deriveTags(goal, result string) []string {
	goal = strings.ToLower(goal)

	tags := make([]string, 0, 4)
	if strings.Contains(goal, "cip") {
		tags = append(tags, "cip")
	}
	if strings.Contains(goal, "balance") {
		tags = append(tags, "balance")
	}
	if strings.Contains(goal, "send") || strings.Contains(goal, "amount=") {
		tags = append(tags, "transaction")
	}
	if strings.Contains(strings.ToLower(result), "error") {
		tags = append(tags, "error")
	}

	return tags
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}

	return string(r[:n])
}
