package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/site-search/internal/sitesearch"
)

var queryCmd = &cobra.Command{
	Use:   "query [terms...]",
	Short: "Run a site search and print the results",
	Long: `Query builds a request URL from the search terms and options, fetches
the XML response and prints the parsed entries. With --pages N it follows
the next-page link up to N pages, stopping early when the API returns none.
A URL from a previous response (see paginate) can be queried with --url.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		pages, _ := flags.GetInt("pages")
		format, _ := flags.GetString("format")
		rawURL, _ := flags.GetString("url")

		c := sitesearch.NewClient(clientConfig())
		if rawURL == "" {
			opts, err := queryOptions(cmd)
			if err != nil {
				return err
			}
			rawURL, err = c.BuildURL(strings.Join(args, " "), opts)
			if err != nil {
				return err
			}
		}

		results, err := sitesearch.QueryMultiple[sitesearch.Result](cmd.Context(), c, pages, rawURL, nil)
		if len(results) == 0 {
			return err
		}

		w := cmd.OutOrStdout()
		var werr error
		switch format {
		case "json":
			werr = sitesearch.FormatJSON(results, w)
		case "yaml":
			werr = sitesearch.FormatYAML(results, w)
		default:
			sitesearch.FormatTable(results, w)
		}
		if werr != nil {
			return werr
		}
		return err
	},
}

// queryOptions reads the request options from the query flags.
func queryOptions(cmd *cobra.Command) (sitesearch.Options, error) {
	flags := cmd.Flags()
	site, _ := flags.GetString("site")
	start, _ := flags.GetInt("start")
	num, _ := flags.GetInt("num")
	raw, _ := flags.GetStringArray("param")

	var extra sitesearch.Params
	for _, kv := range raw {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return sitesearch.Options{}, fmt.Errorf("%w: --param %q must be key=value", sitesearch.ErrInvalidArgument, kv)
		}
		extra = extra.Set(key, value)
	}

	return sitesearch.Options{
		Site:  site,
		Start: start,
		Num:   num,
		Extra: extra,
	}, nil
}

func init() {
	queryCmd.Flags().String("cx", "", "search engine id (overrides config and .secrets/search-engine-id)")
	queryCmd.Flags().String("site", "", "restrict results to a site (as_sitesearch)")
	queryCmd.Flags().Int("start", 0, "offset of the first result")
	queryCmd.Flags().Int("num", 0, "results per page")
	queryCmd.Flags().StringArray("param", nil, "extra request parameter as key=value (repeatable, overrides defaults)")
	queryCmd.Flags().Int("pages", 1, "maximum number of pages to fetch")
	queryCmd.Flags().String("format", "table", "output format: table, json or yaml")
	queryCmd.Flags().String("url", "", "query this URL instead of building one from terms")

	if err := viper.BindPFlag("search_engine_id", queryCmd.Flags().Lookup("cx")); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(queryCmd)
}
