package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/flowhigh/pkg/model"
	"github.com/leapstack-labs/flowhigh/pkg/tree"
)

// TreeOptions holds options for the tree command.
type TreeOptions struct {
	SQL      string
	Response string
	IDs      bool // Prefix nodes with their registry id
	Depth    int  // Maximum depth, 0 for unlimited
}

type treeNode struct {
	ID       int        `json:"id" yaml:"id"`
	Label    string     `json:"label" yaml:"label"`
	Children []treeNode `json:"children,omitempty" yaml:"children,omitempty"`
}

// NewTreeCommand creates the tree command.
func NewTreeCommand() *cobra.Command {
	opts := &TreeOptions{}
	cmd := &cobra.Command{
		Use:   "tree [file]",
		Short: "Print the analysis tree of a query",
		Example: `  # Print the tree of a file
  flowhigh tree orders.sql --ids

  # Print two levels of a saved response
  flowhigh tree --response orders.json --depth 2`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.SQL, "sql", "", "SQL text to analyse")
	cmd.Flags().StringVar(&opts.Response, "response", "", "Read a saved API response instead of submitting SQL")
	cmd.Flags().BoolVar(&opts.IDs, "ids", false, "Show registry ids")
	cmd.Flags().IntVar(&opts.Depth, "depth", 0, "Maximum depth to print (0 = unlimited)")

	return cmd
}

func runTree(cmd *cobra.Command, opts *TreeOptions, args []string) error {
	cc := NewCommandContext(cmd)
	an, err := loadOne(cmd, cc, opts.Response, opts.SQL, args)
	if err != nil {
		return err
	}
	root := an.Submission.Tree()

	ok, err := cc.Renderer.Data(buildTree(root, opts.Depth, 1))
	if err != nil || ok {
		return err
	}

	var b strings.Builder
	tree.Walk(root, func(n tree.Node) bool {
		d := tree.Depth(n)
		if opts.Depth > 0 && d >= opts.Depth {
			return false
		}
		b.WriteString(strings.Repeat("  ", d))
		if opts.IDs {
			fmt.Fprintf(&b, "[%d] ", n.ID())
		}
		b.WriteString(model.Label(n.(model.Node)))
		b.WriteByte('\n')
		return true
	})
	cc.Renderer.Printf("%s", b.String())
	return nil
}

func buildTree(n model.Node, maxDepth, depth int) treeNode {
	tn := treeNode{ID: n.ID(), Label: model.Label(n)}
	if maxDepth > 0 && depth >= maxDepth {
		return tn
	}
	for _, c := range n.Children() {
		tn.Children = append(tn.Children, buildTree(c.(model.Node), maxDepth, depth+1))
	}
	return tn
}
