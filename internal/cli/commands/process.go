package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/flowhigh/internal/cli/output"
)

// ProcessOptions holds options for the process command.
type ProcessOptions struct {
	SQL       string // Inline SQL
	QueryName string // Name recorded with the submission
	Refresh   bool   // Ignore cached responses
	Raw       bool   // Print the response messages
}

// processResult is the machine-readable summary of one source.
type processResult struct {
	Source       string          `json:"source" yaml:"source"`
	Cached       bool            `json:"cached" yaml:"cached"`
	Statements   int             `json:"statements" yaml:"statements"`
	AntiPatterns int             `json:"antiPatterns" yaml:"antiPatterns"`
	Error        string          `json:"error,omitempty" yaml:"error,omitempty"`
	Response     json.RawMessage `json:"response,omitempty" yaml:"-"`
}

// NewProcessCommand creates the process command.
func NewProcessCommand() *cobra.Command {
	opts := &ProcessOptions{}
	cmd := &cobra.Command{
		Use:   "process [file...]",
		Short: "Submit SQL for analysis",
		Long: `Submit one or more SQL files to the FlowHigh API and summarise the results.

Files are processed concurrently (see --concurrency). Responses are cached
locally, keyed by SQL text and realm, unless --no-cache is given.`,
		Example: `  # Analyse two files
  flowhigh process orders.sql customers.sql

  # Analyse SQL from stdin and print the full response
  cat q.sql | flowhigh process - --raw -o json

  # Bypass the cache
  flowhigh process q.sql --refresh`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcess(cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.SQL, "sql", "", "SQL text to analyse")
	cmd.Flags().StringVar(&opts.QueryName, "query-name", "", "Query name stored with the submission")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "Ignore cached responses")
	cmd.Flags().BoolVar(&opts.Raw, "raw", false, "Include the response messages in the output")

	return cmd
}

func runProcess(cmd *cobra.Command, opts *ProcessOptions, args []string) error {
	cc := NewCommandContext(cmd)
	r := cc.Renderer

	sources, err := readSources(cmd.InOrStdin(), opts.SQL, args)
	if err != nil {
		return err
	}

	cache, closeCache, err := cc.OpenCache()
	if err != nil {
		return err
	}
	defer closeCache()

	a := &analyzer{
		client:  cc.Client(),
		cache:   cache,
		realmID: cc.Cfg.RealmID,
		refresh: opts.Refresh,
		logger:  cc.Logger,
	}

	analyses := make([]*Analysis, len(sources))
	errs := make([]error, len(sources))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(cc.Cfg.Concurrency)
	for i, src := range sources {
		g.Go(func() error {
			cc.Logger.Debug("processing", slog.String("source", src.Name))
			analyses[i], errs[i] = a.analyze(ctx, src, opts.QueryName)
			// a canceled context stops the remaining submissions
			return ctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	results := make([]processResult, len(sources))
	failed := 0
	for i, src := range sources {
		res := processResult{Source: src.Name}
		if errs[i] != nil {
			res.Error = errs[i].Error()
			failed++
		} else {
			an := analyses[i]
			res.Cached = an.Cached
			res.Statements = len(an.Submission.Statements())
			res.AntiPatterns = len(an.Submission.AllAntiPatterns())
			if opts.Raw {
				msg, err := an.Submission.JSONMessage()
				if err != nil {
					return err
				}
				res.Response = msg
			}
		}
		results[i] = res
	}

	ok, err := r.Data(results)
	if err != nil {
		return err
	}
	if !ok {
		renderProcess(r, results)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d submissions failed: %w", failed, len(sources), errors.Join(errs...))
	}
	return nil
}

func renderProcess(r *output.Renderer, results []processResult) {
	r.Header(1, "Submissions")
	rows := make([][]string, 0, len(results))
	for _, res := range results {
		status := "ok"
		switch {
		case res.Error != "":
			status = "failed"
		case res.Cached:
			status = "cached"
		}
		rows = append(rows, []string{
			res.Source,
			status,
			strconv.Itoa(res.Statements),
			strconv.Itoa(res.AntiPatterns),
		})
	}
	r.Table([]string{"Source", "Status", "Statements", "Anti-patterns"}, rows)

	for _, res := range results {
		if res.Error != "" {
			r.Error(res.Source + ": " + res.Error)
		}
		if len(res.Response) > 0 {
			r.Println()
			r.Header(2, res.Source)
			r.Println(output.FormatCodeBlock("json", string(res.Response)))
		}
	}
}
