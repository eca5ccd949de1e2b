package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/flowhigh/internal/cli/config"
	"github.com/leapstack-labs/flowhigh/internal/cli/output"
	"github.com/leapstack-labs/flowhigh/internal/query"
	"github.com/leapstack-labs/flowhigh/internal/state"
	"github.com/leapstack-labs/flowhigh/pkg/client"
	"github.com/leapstack-labs/flowhigh/pkg/convert"
	"github.com/leapstack-labs/flowhigh/pkg/submission"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext builds the context for cmd from the loaded configuration.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.GetLogger(cmd.Context()),
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.Output)),
	}
}

// getConfig returns the loaded configuration, or the defaults when the
// command runs outside the root command.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return config.Default()
}

// Client creates an API client from the configuration. An empty token
// falls back to the FLOWHIGH_TOKEN variable at request time.
func (cc *CommandContext) Client() *client.Client {
	var auth client.Authenticator = client.EnvToken{Var: client.DefaultTokenVar}
	if cc.Cfg.Token != "" {
		auth = client.StaticToken(cc.Cfg.Token)
	}
	return client.New(auth,
		client.WithBaseURL(cc.Cfg.APIURL),
		client.WithTimeout(cc.Cfg.Timeout),
		client.WithLogger(cc.Logger),
	)
}

// OpenCache opens the response cache. It returns a nil store when caching
// is disabled. The returned cleanup must be called.
func (cc *CommandContext) OpenCache() (state.Store, func(), error) {
	if cc.Cfg.NoCache {
		return nil, func() {}, nil
	}
	store := state.NewSQLiteStore(cc.Logger)
	if err := store.Open(cc.Cfg.CachePath); err != nil {
		return nil, nil, fmt.Errorf("failed to open cache: %w", err)
	}
	return store, func() { _ = store.Close() }, nil
}

// Source is one SQL text to analyse. QueryName, QueryID and RealmID come
// from the query header, when there is one.
type Source struct {
	Name      string
	SQL       string
	QueryName string
	QueryID   string
	RealmID   string
}

func newSource(name, content string) (Source, error) {
	f, err := query.ParseBytes([]byte(content))
	if err != nil {
		var he *query.HeaderError
		if errors.As(err, &he) {
			he.File = name
		}
		return Source{}, err
	}
	return Source{
		Name:      name,
		SQL:       f.SQL,
		QueryName: f.Header.Name,
		QueryID:   f.Header.QueryID,
		RealmID:   f.Header.RealmID,
	}, nil
}

// readSources resolves command arguments to SQL sources. "-" reads stdin;
// a path without ".sql" that does not exist is retried with the extension.
func readSources(stdin io.Reader, inline string, args []string) ([]Source, error) {
	var out []Source
	add := func(name, content string) error {
		src, err := newSource(name, content)
		if err != nil {
			return err
		}
		out = append(out, src)
		return nil
	}
	if inline != "" {
		if err := add("<inline>", inline); err != nil {
			return nil, err
		}
	}
	for _, arg := range args {
		if arg == "-" {
			data, err := io.ReadAll(stdin)
			if err != nil {
				return nil, fmt.Errorf("reading stdin: %w", err)
			}
			if err := add("<stdin>", string(data)); err != nil {
				return nil, err
			}
			continue
		}
		path := arg
		if _, err := os.Stat(path); os.IsNotExist(err) {
			path = client.SQLPath(arg)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", arg, err)
		}
		if err := add(filepath.Clean(path), string(data)); err != nil {
			return nil, err
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no SQL given: pass files, - for stdin, or --sql")
	}
	return out, nil
}

// Analysis is the outcome of analysing one source.
type Analysis struct {
	Source     Source
	Response   []byte
	Cached     bool
	Submission *submission.Submission
}

// analyzer fetches analyses, consulting the cache first.
type analyzer struct {
	client  *client.Client
	cache   state.Store
	realmID string
	refresh bool
	logger  *slog.Logger
}

// analyze submits src. A realm or query name set in the source's header
// wins over the configured realm and the queryName argument.
func (a *analyzer) analyze(ctx context.Context, src Source, queryName string) (*Analysis, error) {
	realmID := a.realmID
	if src.RealmID != "" {
		realmID = src.RealmID
	}
	if src.QueryName != "" {
		queryName = src.QueryName
	}
	key := state.Key(src.SQL, realmID)
	res := &Analysis{Source: src}

	if a.cache != nil && !a.refresh {
		if e, err := a.cache.Get(ctx, key); err == nil {
			a.logger.Debug("cache hit", slog.String("source", src.Name), slog.String("key", key))
			res.Response = e.Response
			res.Cached = true
		}
	}

	if res.Response == nil {
		data, err := a.client.Process(ctx, client.Request{
			SQL:       src.SQL,
			RealmID:   realmID,
			QueryID:   src.QueryID,
			QueryName: queryName,
		})
		if err != nil {
			return nil, err
		}
		res.Response = data
	}

	sub, err := submission.Parse(res.Response, convert.WithLogger(a.logger))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.Name, err)
	}
	res.Submission = sub

	if a.cache != nil && !res.Cached {
		entry := &state.Entry{Key: key, SQL: src.SQL, RealmID: realmID, QueryName: queryName, Response: res.Response}
		if err := a.cache.Put(ctx, entry); err != nil {
			a.logger.Warn("failed to cache response", slog.String("source", src.Name), slog.Any("error", err))
		}
	}
	return res, nil
}

// loadOne returns a single analysis, either from a saved response file or
// by analysing the one source named by args.
func loadOne(cmd *cobra.Command, cc *CommandContext, responseFile, inline string, args []string) (*Analysis, error) {
	if responseFile != "" {
		data, err := os.ReadFile(responseFile)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", responseFile, err)
		}
		sub, err := submission.Parse(data, convert.WithLogger(cc.Logger))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", responseFile, err)
		}
		return &Analysis{Source: Source{Name: responseFile}, Response: data, Submission: sub}, nil
	}

	sources, err := readSources(cmd.InOrStdin(), inline, args)
	if err != nil {
		return nil, err
	}
	if len(sources) != 1 {
		return nil, fmt.Errorf("expected one SQL source, got %d", len(sources))
	}

	cache, closeCache, err := cc.OpenCache()
	if err != nil {
		return nil, err
	}
	defer closeCache()

	a := &analyzer{client: cc.Client(), cache: cache, realmID: cc.Cfg.RealmID, logger: cc.Logger}
	return a.analyze(cmd.Context(), sources[0], "")
}
