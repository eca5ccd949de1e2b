package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/flowhigh/pkg/format"
)

// FormatOptions holds options for the format command.
type FormatOptions struct {
	Strip bool   // Drop markers without laying out
	Watch bool   // Re-render whenever the file changes
}

// NewFormatCommand creates the format command.
func NewFormatCommand() *cobra.Command {
	opts := &FormatOptions{}
	cmd := &cobra.Command{
		Use:   "format [file]",
		Short: "Lay out marker-annotated SQL",
		Long: `Render SQL annotated with FlowHigh layout markers in one of the
compact, balanced or comfortable styles (see --style). Reads stdin when no
file is given.`,
		Example: `  # Format with the configured style
  flowhigh format marked.sql

  # Re-render on every save
  flowhigh format marked.sql --style compact --watch`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.Strip, "strip", false, "Only remove the markers")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Watch the file and re-render on change")

	return cmd
}

func runFormat(cmd *cobra.Command, opts *FormatOptions, args []string) error {
	cc := NewCommandContext(cmd)

	style, err := format.ParseStyle(cc.Cfg.Style)
	if err != nil {
		return err
	}

	render := func(marked string) string {
		if opts.Strip {
			return format.Strip(marked)
		}
		return format.Format(marked, style)
	}

	if len(args) == 0 || args[0] == "-" {
		if opts.Watch {
			return fmt.Errorf("--watch needs a file")
		}
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		cc.Renderer.Println(render(string(data)))
		return nil
	}

	path := args[0]
	emit := func() error {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		cc.Renderer.Println(render(string(data)))
		return nil
	}
	if err := emit(); err != nil {
		return err
	}
	if !opts.Watch {
		return nil
	}
	return watchFile(cmd.Context(), cc.Logger, path, func() {
		if err := emit(); err != nil {
			cc.Renderer.Error(err.Error())
		}
	})
}

// watchFile calls onChange after every write to path until ctx is done.
// The parent directory is watched so editors that replace the file on save
// keep triggering events.
func watchFile(ctx context.Context, logger *slog.Logger, path string, onChange func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Close() //nolint:errcheck

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	logger.Debug("watching", slog.String("path", abs))

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Name != abs || (!ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create)) {
				continue
			}
			logger.Debug("file changed", slog.String("path", ev.Name), slog.String("op", ev.Op.String()))
			onChange()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", slog.Any("error", err))
		}
	}
}
