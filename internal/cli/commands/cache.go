package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/flowhigh/internal/state"
)

type cacheEntry struct {
	Key       string    `json:"key" yaml:"key"`
	RealmID   string    `json:"realmID,omitempty" yaml:"realmID,omitempty"`
	QueryName string    `json:"queryName,omitempty" yaml:"queryName,omitempty"`
	SQL       string    `json:"sql" yaml:"sql"`
	Bytes     int       `json:"bytes" yaml:"bytes"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt"`
}

// NewCacheCommand creates the cache command and its subcommands.
func NewCacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the local response cache",
	}
	cmd.AddCommand(newCacheListCommand(), newCacheClearCommand(), newCacheRemoveCommand())
	return cmd
}

func newCacheListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List cached responses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc := NewCommandContext(cmd)
			store, closeCache, err := cc.OpenCache()
			if err != nil {
				return err
			}
			defer closeCache()
			if store == nil {
				return errCacheDisabled
			}

			entries, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			out := make([]cacheEntry, 0, len(entries))
			for _, e := range entries {
				out = append(out, cacheEntry{
					Key:       e.Key,
					RealmID:   e.RealmID,
					QueryName: e.QueryName,
					SQL:       e.SQL,
					Bytes:     len(e.Response),
					UpdatedAt: e.UpdatedAt,
				})
			}

			r := cc.Renderer
			ok, err := r.Data(out)
			if err != nil || ok {
				return err
			}
			r.Header(1, fmt.Sprintf("Cached responses (%d)", len(out)))
			rows := make([][]string, 0, len(out))
			for _, e := range out {
				rows = append(rows, []string{
					shortKey(e.Key),
					e.RealmID,
					oneLine(e.SQL, 48),
					strconv.Itoa(e.Bytes),
					e.UpdatedAt.Local().Format(time.DateTime),
				})
			}
			r.Table([]string{"Key", "Realm", "SQL", "Bytes", "Updated"}, rows)
			return nil
		},
	}
}

func newCacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached response",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc := NewCommandContext(cmd)
			store, closeCache, err := cc.OpenCache()
			if err != nil {
				return err
			}
			defer closeCache()
			if store == nil {
				return errCacheDisabled
			}

			n, err := store.Clear(cmd.Context())
			if err != nil {
				return err
			}
			cc.Renderer.Success(fmt.Sprintf("Removed %d cached responses", n))
			return nil
		},
	}
}

func newCacheRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <key-prefix>",
		Short: "Remove one cached response",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc := NewCommandContext(cmd)
			store, closeCache, err := cc.OpenCache()
			if err != nil {
				return err
			}
			defer closeCache()
			if store == nil {
				return errCacheDisabled
			}

			entries, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			var match []string
			for _, e := range entries {
				if strings.HasPrefix(e.Key, args[0]) {
					match = append(match, e.Key)
				}
			}
			switch len(match) {
			case 0:
				return fmt.Errorf("%w: %s", state.ErrNotFound, args[0])
			case 1:
			default:
				return fmt.Errorf("key prefix %q is ambiguous (%d matches)", args[0], len(match))
			}
			if err := store.Delete(cmd.Context(), match[0]); err != nil {
				return err
			}
			cc.Renderer.Success("Removed " + shortKey(match[0]))
			return nil
		},
	}
}

var errCacheDisabled = errors.New("the response cache is disabled (no_cache)")

// oneLine collapses whitespace and truncates s to at most n runes.
func oneLine(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func shortKey(k string) string {
	if len(k) > 12 {
		return k[:12]
	}
	return k
}
