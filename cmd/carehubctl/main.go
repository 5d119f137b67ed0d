// Command carehubctl is a command-line client for the CareHub API.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jwalitptl/carehub-api/pkg/client"
	"github.com/jwalitptl/carehub-api/pkg/logger"
)

type app struct {
	server  string
	asJSON  bool
	verbose bool
	out     io.Writer
	client  *client.Client
}

func main() {
	_ = godotenv.Load()

	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	defaultServer := os.Getenv("CAREHUB_SERVER")
	if defaultServer == "" {
		defaultServer = "http://localhost:3001"
	}

	rootCmd := &cobra.Command{
		Use:           "carehubctl",
		Short:         "Command-line client for the CareHub API",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts := []client.Option{}
			if a.verbose {
				opts = append(opts, client.WithLogger(logger.NewLogger(&logger.Config{
					Level:  logger.DebugLevel,
					Output: os.Stderr,
				})))
			}
			a.client = client.New(a.server, opts...)
		},
	}
	rootCmd.SetOut(out)

	rootCmd.PersistentFlags().StringVar(&a.server, "server", defaultServer, "CareHub API base URL (env CAREHUB_SERVER)")
	rootCmd.PersistentFlags().BoolVar(&a.asJSON, "json", false, "print raw JSON")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log retries and cache activity to stderr")

	rootCmd.AddCommand(a.patientsCmd())
	rootCmd.AddCommand(a.appointmentsCmd())
	rootCmd.AddCommand(a.providersCmd())
	rootCmd.AddCommand(a.notificationsCmd())

	return rootCmd
}

func (a *app) printJSON(v interface{}) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// table prints rows under header unless --json was given, in which case v
// is printed instead.
func (a *app) table(v interface{}, header []string, rows [][]string) error {
	if a.asJSON {
		return a.printJSON(v)
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	printRow(tw, header)
	for _, r := range rows {
		printRow(tw, r)
	}
	return tw.Flush()
}

func printRow(w io.Writer, cols []string) {
	for i, c := range cols {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, c)
	}
	fmt.Fprintln(w)
}

func today() string {
	return time.Now().UTC().Format("2006-01-02")
}
