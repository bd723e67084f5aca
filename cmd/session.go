package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/greencure/greencure-cli/advisor"
	"github.com/greencure/greencure-cli/advisory"
	"github.com/greencure/greencure-cli/history"
	"github.com/greencure/greencure-cli/report"
	"github.com/spf13/cobra"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Run an interactive advisory session",
	Long: `Start a session where multiple advisories accumulate in an in-memory log.
Within the session, "report" aggregates what was asked so far into a farm report.
Commands take key=value fields, e.g.:

  soil ph=6.2 organic_matter=medium drainage=good region="Nashik"
  diagnose crop=tomato symptoms="yellowing leaves, black spots" region=Pune
  report kind=soil-analysis from=2026-01-01

The log lives only for the duration of the session; nothing is persisted.`,
	RunE: runSession,
}

func init() {
	rootCmd.AddCommand(sessionCmd)

	sessionCmd.Flags().StringP("file", "f", "", "Read session commands from a file instead of stdin")
	sessionCmd.Flags().String("format", report.FormatText, "Report output format (text, markdown, json)")
}

var sessionCommands = map[string]advisory.Kind{
	"recommend": advisory.KindCropRecommendation,
	"diagnose":  advisory.KindDiseaseDiagnosis,
	"soil":      advisory.KindSoilAnalysis,
	"weather":   advisory.KindWeatherAdvisory,
	"market":    advisory.KindMarketAnalysis,
}

func runSession(cmd *cobra.Command, args []string) error {
	adv, err := newAdvisor()
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")

	var in io.Reader = os.Stdin
	interactive := true
	if file, _ := cmd.Flags().GetString("file"); file != "" {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("failed to open session file: %w", err)
		}
		defer f.Close()
		in = f
		interactive = false
	}

	if interactive {
		fmt.Println("GreenCure advisory session. Type 'help' for commands, 'exit' to leave.")
	}

	scanner := bufio.NewScanner(in)
	for {
		if interactive {
			fmt.Print("greencure> ")
		}
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		tokens, err := splitTokens(line)
		if err != nil {
			fmt.Println(err)
			continue
		}
		if len(tokens) == 0 {
			// A line of bare quotes tokenizes to nothing
			fmt.Println("Empty command, type 'help' for the list")
			continue
		}

		switch tokens[0] {
		case "exit", "quit":
			return nil
		case "help":
			printSessionHelp()
		case "report":
			runSessionReport(adv, tokens[1:], format)
		default:
			kind, ok := sessionCommands[tokens[0]]
			if !ok {
				fmt.Printf("Unknown command %q, type 'help' for the list\n", tokens[0])
				continue
			}
			req, err := parseFields(tokens[1:])
			if err != nil {
				fmt.Println(err)
				continue
			}
			answer, err := adv.Advise(cmd.Context(), kind, req)
			if err != nil {
				// Keep the session alive; the log is untouched on failure
				reportAdviseError(kind, err)
				continue
			}
			fmt.Println(answer)
		}
	}
	return scanner.Err()
}

func runSessionReport(adv *advisor.Advisor, args []string, format string) {
	q, err := parseReportQuery(args)
	if err != nil {
		fmt.Println(err)
		return
	}

	doc, err := adv.Report(q, format)
	if err != nil {
		var emptyErr *report.EmptyReportError
		if errors.As(err, &emptyErr) {
			fmt.Println("No advisories match this report query yet.")
			return
		}
		fmt.Printf("Failed to generate report: %v\n", err)
		return
	}
	fmt.Println(doc)
}

// parseReportQuery reads kind=, from=, and to= arguments. Dates are
// day-granular; the "to" bound covers the whole named day.
func parseReportQuery(args []string) (history.Query, error) {
	q := history.Query{}
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			return q, fmt.Errorf("expected key=value, got %q", arg)
		}
		switch name {
		case "kind":
			kind, err := advisory.ParseKind(value)
			if err != nil {
				return q, err
			}
			q.Kind = kind
		case "from":
			t, err := time.ParseInLocation("2006-01-02", value, time.Local)
			if err != nil {
				return q, fmt.Errorf("invalid from date %q, use YYYY-MM-DD", value)
			}
			q.From = t
		case "to":
			t, err := time.ParseInLocation("2006-01-02", value, time.Local)
			if err != nil {
				return q, fmt.Errorf("invalid to date %q, use YYYY-MM-DD", value)
			}
			q.To = t.Add(24*time.Hour - time.Nanosecond)
		default:
			return q, fmt.Errorf("unknown report argument %q", name)
		}
	}
	return q, nil
}

// parseFields turns key=value tokens into an advisory request.
func parseFields(tokens []string) (advisory.Request, error) {
	req := advisory.Request{}
	for _, token := range tokens {
		name, value, ok := strings.Cut(token, "=")
		if !ok {
			return nil, fmt.Errorf("expected key=value, got %q", token)
		}
		req[name] = value
	}
	return req, nil
}

// splitTokens splits on whitespace, honoring double quotes so field
// values can contain spaces.
func splitTokens(line string) ([]string, error) {
	var tokens []string
	var current strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case !inQuotes && (r == ' ' || r == '\t'):
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if inQuotes {
		return nil, fmt.Errorf("unterminated quote in %q", line)
	}
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}
	return tokens, nil
}

func printSessionHelp() {
	fmt.Print(`Commands:
  recommend location=... soil_type=... season=... farm_size=...
  diagnose  crop=... symptoms="..." region=...
  soil      ph=... organic_matter=low|medium|high drainage=poor|moderate|good region=...
  weather   location=... current_weather="..." crop_stage=...
  market    crop=... location=... quantity=...
  report    [kind=...] [from=YYYY-MM-DD] [to=YYYY-MM-DD]
  help      show this help
  exit      leave the session
`)
}
