// Command regraft rebuilds scene hierarchy for one conversion job: it
// reads a flat node list produced by an import adapter, reconstructs
// parent/child structure from naming conventions and an optional external
// object tree, and writes the resulting forest for the export adapter.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/chazu/regraft/pkg/codec"
	"github.com/chazu/regraft/pkg/hierarchy"
)

// CLI is the top-level command structure for regraft.
type CLI struct {
	Debug bool `env:"REGRAFT_DEBUG" help:"Enable debug logging."`

	Input        string `arg:"" type:"existingfile" help:"Flat node list JSON from the import adapter."`
	Output       string `required:"" short:"o" type:"path" help:"Destination for the reconstructed forest JSON."`
	SourceFormat string `default:"obj" help:"Format the nodes were imported from."`
	TargetFormat string `default:"glb" help:"Format the forest will be exported to."`
	Hierarchy    string `type:"existingfile" help:"Optional external object tree payload (JSON)."`
}

// Run performs the whole reconstruction job.
func (cmd *CLI) Run() error {
	in, err := os.Open(cmd.Input)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	reg, err := codec.DecodeNodes(in)
	if err != nil {
		return fmt.Errorf("read nodes: %w", err)
	}
	slog.Info("loaded scene", "nodes", reg.Len(), "source", cmd.SourceFormat, "target", cmd.TargetFormat)

	var payload []byte
	if cmd.Hierarchy != "" && hierarchy.HierarchyAware(cmd.TargetFormat) {
		payload, err = os.ReadFile(cmd.Hierarchy)
		if err != nil {
			// Missing or unreadable payload degrades to flat output.
			slog.Warn("cannot read hierarchy payload", "path", cmd.Hierarchy, "err", err)
			payload = nil
		}
	}

	hierarchy.Rebuild(reg, hierarchy.Options{
		GroupSuffixes: hierarchy.SuffixAware(cmd.SourceFormat),
		ExternalTree:  payload,
	})

	out, err := os.Create(cmd.Output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer out.Close()

	if err := codec.EncodeForest(out, reg); err != nil {
		return fmt.Errorf("write forest: %w", err)
	}
	slog.Info("wrote forest", "path", cmd.Output, "nodes", reg.Len(), "roots", len(reg.Roots()))
	return nil
}

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("regraft"),
		kong.Description("Rebuild scene hierarchy lost by flat geometry formats."),
		kong.UsageOnError(),
	)

	setupLogger(cli.Debug)

	ctx.FatalIfErrorf(cli.Run())
}

func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}
