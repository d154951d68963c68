package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/site-search/internal/sitesearch"
)

var paginateCmd = &cobra.Command{
	Use:   "paginate PATH",
	Short: "Turn a relative pagination link into an absolute URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := sitesearch.NewClient(clientConfig())
		fmt.Fprintln(cmd.OutOrStdout(), c.Paginate(args[0]))
		return nil
	},
}

var relativeCmd = &cobra.Command{
	Use:   "relative URL",
	Short: "Strip scheme and host from a URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rel, err := sitesearch.RelativePath(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), rel)
		return nil
	},
}

var splitCmd = &cobra.Command{
	Use:   "split QUERY...",
	Short: "Separate an echoed query into search term and filters",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		term, filters, ok := sitesearch.SeparateSearchTermFromFilters(strings.Join(args, " "))
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "term:    %s\n", term)
		if ok {
			fmt.Fprintf(w, "filters: %s\n", filters)
		} else {
			fmt.Fprintln(w, "filters: (none)")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(paginateCmd, relativeCmd, splitCmd)
}
