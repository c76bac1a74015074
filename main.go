package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/insightdelivered/statement-extractor/internal/convert"
	"github.com/insightdelivered/statement-extractor/internal/models"
	"github.com/insightdelivered/statement-extractor/internal/parser"
)

const version = "1.0.0"

var (
	typeFlag    string
	outputFlag  string
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "statement-extractor [flags] <input.pdf> [input2.pdf ...]",
	Short: "Convert account and securities statement PDFs to CSV",
	Long: `Statement Extractor
Converts the text of account statements (cash transactions) and
securities statements (trades and holdings) into semicolon separated
CSV files written next to the input as <input>.csv.

Statement types:
  account     - bookings with German dates, e.g. "04 Jan." / "Überweisung ..." / "2024"
  securities  - entries starting with a share count, e.g. "10,00 Stk. ..."
  auto        - detect from content (default)

Exit codes:
  0 success, 1 other failure, 2 input missing, 3 no extractable text,
  4 not enough data, 5 malformed record, 6 output not writable`,
	Example: `  # Auto-detect the statement type
  statement-extractor "Account statement.pdf"

  # Force the securities parser and choose the output path
  statement-extractor --type=securities --output=depot.csv "Statement of securities account.pdf"`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runConvert,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and exit",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("statement-extractor v%s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Log diagnostic details to stderr")
	rootCmd.Flags().StringVarP(&typeFlag, "type", "t", "auto", "Statement type: auto, account, securities")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output CSV file path (defaults to <input>.csv; single input only)")
	rootCmd.AddCommand(versionCmd, serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(models.KindOf(err).ExitCode())
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	kind, err := parser.ParseKind(typeFlag)
	if err != nil {
		return err
	}
	if outputFlag != "" && len(args) > 1 {
		return fmt.Errorf("--output can only be used with a single input file")
	}

	log := newLogger(verboseFlag)
	for _, inputPath := range args {
		res, err := convert.File(inputPath, convert.Options{
			Kind:   kind,
			Output: outputFlag,
			Log:    log.With().Str("input", inputPath).Logger(),
		})
		if err != nil {
			return err
		}

		if res.Table.Skipped > 0 {
			fmt.Printf("Warning: %d entr(y/ies) in %s did not match and were skipped\n", res.Table.Skipped, inputPath)
		}
		fmt.Printf("Data successfully written to %s\n", res.OutputPath)
	}
	return nil
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
	}).Level(level).With().Timestamp().Logger()
}
