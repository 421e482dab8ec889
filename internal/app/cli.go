package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"promptstudio/internal/catalog"
	"promptstudio/internal/config"
	"promptstudio/internal/domain"
	"promptstudio/internal/logging"
	"promptstudio/internal/prompt"
	"promptstudio/internal/service"
	"promptstudio/internal/suggest"
)

// cli holds the state shared by every subcommand.
type cli struct {
	version    string
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

// NewRootCommand builds the promptstudio command tree.
func NewRootCommand(version string) *cobra.Command {
	c := &cli{version: version}

	root := &cobra.Command{
		Use:   "promptstudio",
		Short: "Block-based prompt editor",
		Long: `promptstudio composes LLM prompts from typed blocks.

The editor runs either as an MCP server on stdio (for agents) or as an
HTTP API with a websocket event stream (for browsers). The assemble,
suggest and catalog commands work on block files without a server.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "path to a YAML config file")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		c.mcpCommand(),
		c.serveCommand(),
		c.assembleCommand(),
		c.suggestCommand(),
		c.catalogCommand(),
	)
	return root
}

// Execute runs the CLI and exits non-zero on failure.
func Execute(version string) {
	if err := NewRootCommand(version).Execute(); err != nil {
		os.Exit(1)
	}
}

func (c *cli) setup(*cobra.Command, []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.verbose {
		cfg.Logging.Level = "debug"
	}
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.logger = logger
	return nil
}

func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// ─────────────────────────────────────────────────────────────
// Servers
// ─────────────────────────────────────────────────────────────

func (c *cli) mcpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the editor over MCP on stdin/stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := signalContext(cmd.Context())
			defer cancel()

			a, err := New(c.cfg, c.logger)
			if err != nil {
				return err
			}
			defer a.Close()

			c.logger.Info("starting MCP stdio server")
			return a.ServeMCP(ctx, c.version)
		},
	}
}

func (c *cli) serveCommand() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API and event stream",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr != "" {
				c.cfg.Server.Addr = addr
			}
			ctx, cancel := signalContext(cmd.Context())
			defer cancel()

			a, err := New(c.cfg, c.logger)
			if err != nil {
				return err
			}
			defer a.Close()

			ln, err := net.Listen("tcp", c.cfg.Server.Addr)
			if err != nil {
				return fmt.Errorf("listen %s: %w", c.cfg.Server.Addr, err)
			}
			return a.ServeHTTP(ctx, ln)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return cmd
}

// ─────────────────────────────────────────────────────────────
// Offline commands
// ─────────────────────────────────────────────────────────────

func (c *cli) assembleCommand() *cobra.Command {
	var (
		input     string
		reasoning bool
		estimate  bool
	)
	cmd := &cobra.Command{
		Use:   "assemble <blocks.json|->",
		Short: "Print the prompt assembled from a block file",
		Long: `Reads blocks from a JSON file (or stdin with "-") and prints the assembled
prompt. The file may be an exported project or a bare array of blocks.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blocks, err := readBlocks(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			text := prompt.Assemble(blocks, input, reasoning)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, text)
			if estimate {
				e := prompt.EstimateText(text)
				fmt.Fprintf(out, "\n~%d tokens, ~$%.4f, ~%d response words\n", e.Tokens, e.Cost, e.ResponseWords)
			}
			for _, w := range prompt.Lint(blocks) {
				c.logger.Warn("prompt lint", zap.String("warning", w))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "test input appended to the prompt")
	cmd.Flags().BoolVar(&reasoning, "reasoning", false, "append the reasoning instruction")
	cmd.Flags().BoolVar(&estimate, "estimate", false, "print token and cost estimates")
	return cmd
}

func (c *cli) suggestCommand() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "suggest <blocks.json|->",
		Short: "List suggested next blocks for a block file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blocks, err := readBlocks(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			suggestions := suggest.Suggest(blocks)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), suggestions)
			}
			if len(suggestions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No suggestions.")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PRIORITY\tTYPE\tCATEGORY\tREASON")
			for _, s := range suggestions {
				fmt.Fprintf(w, "%d\t%s %s\t%s\t%s\n", s.Priority, s.Emoji, s.BlockType, s.Category, s.Reason)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func (c *cli) catalogCommand() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the block palette",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			palette := catalog.Palette()
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), palette)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, g := range palette {
				fmt.Fprintf(w, "%s %s\n", g.Emoji, g.Name)
				for _, e := range g.Entries {
					fmt.Fprintf(w, "  %s\t%s\t%s\n", e.Type, e.Label, e.Description)
				}
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

// readBlocks loads blocks from path, or from stdin when path is "-".
func readBlocks(stdin io.Reader, path string) ([]domain.Block, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read blocks: %w", err)
	}
	return decodeBlocks(data)
}

// decodeBlocks accepts an exported project document or a bare block array.
func decodeBlocks(data []byte) ([]domain.Block, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, errors.New("read blocks: empty input")
	}

	var blocks []domain.Block
	if data[0] == '[' {
		if err := json.Unmarshal(data, &blocks); err != nil {
			return nil, fmt.Errorf("decode blocks: %w", err)
		}
	} else {
		var doc service.ProjectExport
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode project: %w", err)
		}
		blocks = doc.Blocks
	}

	for i, b := range blocks {
		if !catalog.Has(b.Type) {
			return nil, fmt.Errorf("block %d: %w: %q", i, service.ErrUnknownBlockType, b.Type)
		}
		if strings.TrimSpace(b.ID) == "" {
			blocks[i].ID = fmt.Sprintf("block-%d", i+1)
		}
	}
	return blocks, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
