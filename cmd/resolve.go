package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"depmanager/internal/config"
	"depmanager/internal/dependency"
	"depmanager/internal/formatting"
	"depmanager/internal/reconciler"
	"depmanager/pkg/logging"
)

// resolveOptions holds the flags of the resolve command.
type resolveOptions struct {
	file     string
	output   string
	quiet    bool
	color    bool
	strict   bool
	watch    bool
	debounce time.Duration
}

func newResolveCmd() *cobra.Command {
	o := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the processing order of a dependency specification",
		Long: `Resolve a dependency specification into a processing order.

The specification is a YAML file whose 'dependencies' mapping lists, for each
target, the elements that depend on it:

  dependencies:
    A: [B, C]   # B and C depend on A
    C: [B]      # B depends on C
  elements: [D] # optional, elements without relations

Without --file the example above (minus D) is resolved, printing "A C B".

Examples:
  depmanager resolve
  depmanager resolve -f build.yaml -o table
  depmanager resolve -f build.yaml --strict
  depmanager resolve -f build.yaml --watch`,
		Args: cobra.NoArgs,
		RunE: o.run,
	}

	cmd.Flags().StringVarP(&o.file, "file", "f", "", "Path to the dependency specification (YAML)")
	cmd.Flags().StringVarP(&o.output, "output", "o", "console", "Output format (console, table, json, yaml)")
	cmd.Flags().BoolVarP(&o.quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.Flags().BoolVar(&o.color, "color", false, "Colorize table output")
	cmd.Flags().BoolVar(&o.strict, "strict", false, "Fail when elements cannot be ordered because of a cycle")
	cmd.Flags().BoolVarP(&o.watch, "watch", "w", false, "Re-resolve whenever the specification file changes")
	cmd.Flags().DurationVar(&o.debounce, "debounce", reconciler.DefaultDebounceInterval, "Quiet period before re-resolving in watch mode")

	return cmd
}

func (o *resolveOptions) run(cmd *cobra.Command, args []string) error {
	format, err := formatting.ParseOutputFormat(o.output)
	if err != nil {
		return err
	}
	formatter := formatting.NewFactory().CreateFormatter(formatting.Options{
		Format: format,
		Quiet:  o.quiet,
		Color:  o.color,
	})

	if !o.watch {
		return o.resolveOnce(cmd.OutOrStdout(), formatter)
	}
	if o.file == "" {
		return errors.New("--watch requires --file")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return o.watchLoop(ctx, cmd.OutOrStdout(), formatter)
}

// loadSpec returns the specification from --file, or the built-in example.
func (o *resolveOptions) loadSpec() (*config.Spec, error) {
	if o.file == "" {
		logging.Debug("Resolve", "No --file given, using the built-in example")
		return config.DefaultSpec(), nil
	}
	return config.LoadSpec(o.file)
}

// resolveOnce loads, builds and prints one resolution.
func (o *resolveOptions) resolveOnce(out io.Writer, formatter formatting.Formatter) error {
	spec, err := o.loadSpec()
	if err != nil {
		return err
	}

	m, err := spec.Build()
	if err != nil {
		return fmt.Errorf("building dependency graph: %w", err)
	}

	result := resultOf(m)
	if !result.Complete() {
		logging.Warn("Resolve", "%d of %d elements are on a dependency cycle and were left out", len(result.Unresolved), result.Total)
	}
	logging.Info("Resolve", "Resolved %d of %d elements", len(result.Order), result.Total)

	if err := formatter.Format(out, result); err != nil {
		return err
	}
	if o.strict && !result.Complete() {
		return &UnresolvedError{Elements: result.Unresolved}
	}
	return nil
}

func resultOf(m *dependency.Manager[string]) formatting.Result {
	return formatting.Result{
		Order:      m.GetDependencies(),
		Unresolved: m.Unresolved(),
		Total:      m.Len(),
	}
}

// watchLoop resolves once, then again after every change to the file, until
// ctx is done. Resolution errors are logged and do not end the loop.
func (o *resolveOptions) watchLoop(ctx context.Context, out io.Writer, formatter formatting.Formatter) error {
	detector, err := reconciler.NewFileDetector(o.file, o.debounce)
	if err != nil {
		return err
	}

	changes := make(chan reconciler.ChangeEvent, 1)
	g, gctx := errgroup.WithContext(ctx)

	if err := detector.Start(gctx, changes); err != nil {
		return fmt.Errorf("watching %s: %w", o.file, err)
	}

	o.reportWatch(out, formatter)

	g.Go(func() error {
		<-gctx.Done()
		return detector.Stop()
	})
	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case ev := <-changes:
				if ev.Operation == reconciler.OperationDelete {
					logging.Warn("Resolve", "%s was removed, waiting for it to come back", ev.FilePath)
					continue
				}
				o.reportWatch(out, formatter)
			}
		}
	})

	return g.Wait()
}

func (o *resolveOptions) reportWatch(out io.Writer, formatter formatting.Formatter) {
	if err := o.resolveOnce(out, formatter); err != nil {
		var se *config.SpecError
		if errors.As(err, &se) {
			logging.Error("Resolve", err, "Invalid specification:\n%s", se.DetailedError())
			return
		}
		logging.Error("Resolve", err, "Resolution failed")
	}
}
