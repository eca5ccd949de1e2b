package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRealmCommand creates the realm command.
func NewRealmCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "realm [realm-id]",
		Short: "List the queries stored in a realm",
		Long: `List the queries stored in a FlowHigh realm. The realm defaults to the
configured realm_id.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc := NewCommandContext(cmd)
			realmID := cc.Cfg.RealmID
			if len(args) == 1 {
				realmID = args[0]
			}
			if realmID == "" {
				return fmt.Errorf("no realm given: pass a realm id or set realm_id")
			}

			queries, err := cc.Client().RealmQueries(cmd.Context(), realmID)
			if err != nil {
				return err
			}

			r := cc.Renderer
			ok, err := r.Data(queries)
			if err != nil || ok {
				return err
			}
			r.Header(1, fmt.Sprintf("Realm %s (%d queries)", realmID, len(queries)))
			rows := make([][]string, 0, len(queries))
			for _, q := range queries {
				rows = append(rows, []string{q.QueryID, q.QueryName, oneLine(q.SQL, 60), q.Created})
			}
			r.Table([]string{"ID", "Name", "SQL", "Created"}, rows)
			return nil
		},
	}
}
