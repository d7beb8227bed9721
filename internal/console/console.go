// Package console implements the interactive Cardano tooling shell: a line
// oriented dispatcher mapping command keywords to explorer, text generation,
// payment and agent memory operations on the Preprod network.
package console

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"agenthub/pkg/cardano"
	"agenthub/pkg/explorer"
	"agenthub/pkg/logger"
	"agenthub/pkg/payment"
	"agenthub/pkg/storage"
	"agenthub/pkg/textgen"

	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"
)

// ErrNotPreprod is returned by New when the configured network is not Preprod.
var ErrNotPreprod = errors.New("CARDANO_NETWORK must be Preprod. Aborting.") //nolint: staticcheck

const (
	banner = "Cardano CIP Agent (Preprod)"
	prompt = "> "
)

// Deps are the services behind the tools. A nil dependency makes the tools
// relying on it fail with serrors.ErrUnavailable.
type Deps struct {
	Explorer  explorer.Explorer
	Generator textgen.Generator
	Payment   payment.Client
	Memory    storage.MemoryStorage
}

type Options struct {
	// Network must be exactly cardano.Preprod.
	Network string
	// Markdown renders generated documents for the terminal.
	Markdown bool
	// WordWrap is the rendering width used with Markdown.
	WordWrap int
}

type Console struct {
	deps     Deps
	out      io.Writer
	tools    []tool
	agents   []Agent
	renderer *glamour.TermRenderer
}

// New refuses to build a console for any network other than Preprod.
func New(deps Deps, out io.Writer, opts Options) (*Console, error) {
	if err := cardano.RequirePreprod(opts.Network); err != nil {
		return nil, ErrNotPreprod
	}

	c := &Console{deps: deps, out: out}
	c.tools = c.registry()
	c.agents = c.registerAgents()

	if opts.Markdown {
		wrap := opts.WordWrap
		if wrap <= 0 {
			wrap = 100
		}
		renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(wrap))
		if err != nil {
			return nil, fmt.Errorf("could not create markdown renderer: %w", err)
		}
		c.renderer = renderer
	}

	return c, nil
}

// Run reads commands from in until "exit", end of input or ctx cancellation.
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	c.println(banner)
	c.Help()

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for {
		c.print(prompt)
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" {
			break
		}

		_ = c.Exec(ctx, line)

		if ctx.Err() != nil {
			break
		}
	}
	c.println("\nGoodbye.")

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("could not read input: %w", err)
	}

	return nil
}

// Exec runs a single command line and prints its outcome. The returned error
// is the tool failure, if any, after it has been reported.
func (c *Console) Exec(ctx context.Context, line string) error {
	name, args, ok := ParseLine(line)
	if !ok {
		return nil
	}
	if name == "help" {
		c.Help()

		return nil
	}

	t, found := c.tool(name)
	if !found {
		c.println("Unknown command: " + name)
		c.Help()

		return fmt.Errorf("unknown command %q", name)
	}
	for _, req := range t.required {
		if _, ok := args[req]; !ok {
			c.printf("Missing required arg %s. Usage: %s\n", req, t.help)

			return fmt.Errorf("missing required arg %q", req)
		}
	}

	c.printf("\n[%s] Running with args %s\n", name, formatArgs(args))
	logger.Debug(ctx, "running console tool", zap.String("tool", name), zap.Any("args", args))

	result, err := t.fn(ctx, args)
	if err != nil {
		c.printf("[%s] ERROR: %s\n", name, err.Error())
		logger.Debug(ctx, "console tool failed", zap.String("tool", name), zap.Error(err))

		return err
	}

	out, err := c.format(result, t.markdown)
	if err != nil {
		c.printf("[%s] ERROR: %s\n", name, err.Error())

		return err
	}
	c.printf("[%s] Result:\n%s\n", name, out)

	return nil
}

// Help lists every command with its usage.
func (c *Console) Help() {
	c.println("\nAvailable commands:")
	for _, t := range c.tools {
		c.println(" - " + t.help)
	}
	c.println(" - help -> Show this list")
	c.println(" - exit -> Quit")
}

func (c *Console) tool(name string) (tool, bool) {
	i := slices.IndexFunc(c.tools, func(t tool) bool { return t.name == name })
	if i < 0 {
		return tool{}, false
	}

	return c.tools[i], true
}

func (c *Console) format(result any, markdown bool) (string, error) {
	if s, ok := result.(string); ok {
		if markdown && c.renderer != nil {
			rendered, err := c.renderer.Render(s)
			if err != nil {
				return s, nil
			}

			return rendered, nil
		}

		return s, nil
	}

	b, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("could not format result: %w", err)
	}

	return string(b), nil
}

func formatArgs(args map[string]string) string {
	keys := slices.Sorted(maps.Keys(args))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%q", k, args[k]))
	}

	return "{" + strings.Join(parts, " ") + "}"
}

func (c *Console) print(s string) {
	_, _ = io.WriteString(c.out, s)
}

func (c *Console) println(s string) {
	_, _ = io.WriteString(c.out, s+"\n")
}

func (c *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}
