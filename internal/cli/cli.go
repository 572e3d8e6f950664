// Package cli implements the bizquery command line
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"bizquery/internal/core/lexicon"
	"bizquery/internal/core/translate"
	"bizquery/internal/core/version"
	"bizquery/internal/platform/logger"
	"bizquery/internal/services/api/query/domain"
	queryrepo "bizquery/internal/services/api/query/repo"
	querysvc "bizquery/internal/services/api/query/service"

	"github.com/spf13/cobra"
)

// env holds what every subcommand shares. The translator is built lazily so
// lexicon-only commands never start the worker pool
type env struct {
	out     io.Writer
	lx      *lexicon.Lexicon
	tr      *translate.Translator
	svc     *querysvc.Svc
	workers int
}

func (e *env) lexicon() (*lexicon.Lexicon, error) {
	if e.lx != nil {
		return e.lx, nil
	}
	lx, err := lexicon.Load()
	if err != nil {
		return nil, err
	}
	e.lx = lx
	return lx, nil
}

func (e *env) service() (*querysvc.Svc, error) {
	if e.svc != nil {
		return e.svc, nil
	}
	lx, err := e.lexicon()
	if err != nil {
		return nil, err
	}
	tr, err := translate.New(lx, translate.WithWorkers(e.workers))
	if err != nil {
		return nil, err
	}
	e.tr = tr
	e.svc = querysvc.New(tr, lx, nil, queryrepo.NewPG(), querysvc.Limits{})
	return e.svc, nil
}

func (e *env) close() {
	if e.tr != nil {
		e.tr.Close()
	}
}

// NewRoot builds the command tree writing results to out
func NewRoot(out io.Writer) *cobra.Command {
	e := &env{out: out}
	var logLevel string

	root := &cobra.Command{
		Use:   "bizquery",
		Short: "Translate business questions into SQL",
		Long: `bizquery turns short questions about credit facilities, loans, financial statements
and directors into Postgres queries using a fixed business vocabulary.`,
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			opt := logger.FromEnv()
			opt.Level = logLevel
			opt.Writer = os.Stderr
			opt.Component = "cli"
			logger.Init(opt)
		},
		PersistentPostRun: func(*cobra.Command, []string) { e.close() },
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().IntVar(&e.workers, "workers", translate.DefaultWorkers, "async translation workers (2 to 4)")

	root.AddCommand(
		translateCmd(e),
		demoCmd(e),
		termsCmd(e),
		classifyCmd(e),
		expandCmd(e),
		currencyCmd(e),
		versionCmd(e),
	)
	return root
}

func translateCmd(e *env) *cobra.Command {
	var async, asJSON bool
	cmd := &cobra.Command{
		Use:   "translate [question...]",
		Short: "Translate a question into SQL",
		Args:  cobra.MinimumNArgs(1),
		Example: `  bizquery translate "Show me all facilities over 1 million"
  bizquery translate --json which companies have utilization over 80%`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := e.service()
			if err != nil {
				return err
			}
			in := domain.ProcessInput{Query: strings.Join(args, " ")}
			run := svc.Process
			if async {
				run = svc.ProcessAsync
			}
			res, err := run(cmd.Context(), in)
			if err != nil {
				return err
			}
			return e.printResult(res, asJSON)
		},
	}
	cmd.Flags().BoolVar(&async, "async", false, "translate on the worker pool")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full result as JSON")
	return cmd
}

func demoCmd(e *env) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "demo [scenario]",
		Short: fmt.Sprintf("Translate the demo questions (1 to %d)", domain.DemoCount()),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := e.service()
			if err != nil {
				return err
			}
			scenarios := args
			if len(scenarios) == 0 {
				for i := 1; i <= domain.DemoCount(); i++ {
					scenarios = append(scenarios, fmt.Sprint(i))
				}
			}
			for i, sc := range scenarios {
				res, err := svc.Demo(cmd.Context(), sc)
				if err != nil {
					return err
				}
				if i > 0 && !asJSON {
					fmt.Fprintln(e.out)
				}
				if !asJSON {
					fmt.Fprintf(e.out, "Scenario %s\n", sc)
				}
				if err := e.printResult(res, asJSON); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print results as JSON")
	return cmd
}

func termsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "terms",
		Short: "List terminology, sample questions and supported entities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := e.service()
			if err != nil {
				return err
			}
			bt, err := svc.BusinessTerms(cmd.Context())
			if err != nil {
				return err
			}
			section := func(title string, lines []string) {
				fmt.Fprintln(e.out, title)
				for _, l := range lines {
					fmt.Fprintf(e.out, "  %s\n", l)
				}
			}
			section("Terms:", bt.SampleTerms)
			section("Sample queries:", bt.SampleQueries)
			section("Entities:", bt.SupportedEntities)
			return nil
		},
	}
}

func classifyCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "classify-entity <surface>",
		Short: "Print the entity kind of a name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			lx, err := e.lexicon()
			if err != nil {
				return err
			}
			fmt.Fprintln(e.out, lx.Classify(strings.Join(args, " ")))
			return nil
		},
	}
}

func expandCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "expand <term>",
		Short: "Expand an abbreviation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			lx, err := e.lexicon()
			if err != nil {
				return err
			}
			fmt.Fprintln(e.out, lx.Expand(strings.Join(args, " ")))
			return nil
		},
	}
}

func currencyCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "currency <alias>",
		Short: "Map a currency alias to its ISO code",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			lx, err := e.lexicon()
			if err != nil {
				return err
			}
			code := lx.NormalizeCurrency(args[0])
			if name, ok := lx.CurrencyName(code); ok {
				fmt.Fprintf(e.out, "%s (%s)\n", code, name)
				return nil
			}
			fmt.Fprintln(e.out, code)
			return nil
		},
	}
}

func versionCmd(e *env) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			bi := version.Info(version.ServiceCLI)
			if asJSON {
				return writeJSON(e.out, bi)
			}
			fmt.Fprintln(e.out, bi.String())
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

func (e *env) printResult(res domain.QueryResult, asJSON bool) error {
	if asJSON {
		return writeJSON(e.out, res)
	}
	fmt.Fprintf(e.out, "Question:   %s\n", res.OriginalQuery)
	fmt.Fprintf(e.out, "Normalized: %s\n", res.NormalizedQuery)
	fmt.Fprintf(e.out, "Intent:     %s\n", res.Intent)
	if res.Shortcut != "" {
		fmt.Fprintf(e.out, "Shortcut:   %s\n", res.Shortcut)
	}
	fmt.Fprintf(e.out, "SQL:        %s\n", res.GeneratedSQL)
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

