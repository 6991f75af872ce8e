package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/npillmayer/latinga/internal/tracing"
	"github.com/spf13/cobra"
)

// defaultCheckLimit is the number of issues shown per file by --check.
const defaultCheckLimit = 5

// errIssuesFound signals a validation run with findings. It sets the exit
// status but is not reported as an error.
var errIssuesFound = errors.New("validation found issues")

var opts options

var rootCmd = &cobra.Command{
	Use:   "latinga [files...]",
	Short: "Convert Uzbek text between current and legacy Latin orthography",
	Long: `Converts Uzbek text to the legacy Latin orthography (ö ğ ş ç) or, with
--current, to the current one (oʻ gʻ sh ch). Uzbek Cyrillic is converted as
well. Without files, text is read from stdin and written to stdout.

Text between {] and [} is never converted; more protections may be given as
shield patterns or presets.`,
	Example: `  latinga matn.txt                 # writes matn-kelgusiga.txt
  latinga matn.txt --current       # writes matn-joriyga.txt
  latinga -f "docs/*.md" -u        # converts markdown files in place
  latinga --check=10 matn.txt      # validates, shows up to 10 issues`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		tracing.UseLog()
		if opts.verbose {
			tracing.Verbose()
		} else {
			tracing.Quiet()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := opts.complete(cmd); err != nil {
			return err
		}
		return run(&opts, args, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&opts.current, "current", "j", false, "convert to the current orthography (default: legacy)")
	pf.BoolVarP(&opts.overwrite, "overwrite", "u", false, "rewrite files in place")
	pf.StringVarP(&opts.glob, "glob", "f", "", `glob pattern for input files, e.g. "docs/*.md"`)
	pf.StringVarP(&opts.suffix, "suffix", "c", "", `suffix for output file names (default "-joriyga" or "-kelgusiga")`)
	pf.StringVarP(&opts.rules, "rules", "m", "", "substitution rules, file path or 'old:new;old2:new2'")
	pf.StringVarP(&opts.exceptions, "exceptions", "a", "", "exceptions, file path or comma separated list")
	pf.StringVar(&opts.suffixes, "suffixes", "", "suffixes following exceptions, file path or comma separated list")
	pf.StringArrayVarP(&opts.shields, "shield", "q", nil, "shield pattern, may be repeated")
	pf.StringVarP(&opts.shieldFile, "shield-file", "n", "", "file of shield patterns")
	pf.StringSliceVar(&opts.presets, "preset", nil, "shield presets: marker, code, web, latex, roman or all")
	pf.BoolVar(&opts.noDefaults, "no-defaults", false, "do not load the built-in Uzbek dictionaries")
	pf.StringVar(&opts.profile, "profile", "", "YAML profile with dictionaries and settings")
	pf.BoolVarP(&opts.verbose, "verbose", "b", false, "report progress")

	f := rootCmd.Flags()
	f.IntVarP(&opts.check, "check", "t", -1, "validate instead of converting, optionally giving the number of issues to show")
	f.Lookup("check").NoOptDefVal = strconv.Itoa(defaultCheckLimit)
	f.BoolVar(&opts.json, "json", false, "print validation results as JSON")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errIssuesFound) {
			fmt.Fprintf(os.Stderr, "latinga: %v\n", err)
		}
		os.Exit(1)
	}
}

// run converts or validates the inputs named by args and the options.
func run(o *options, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	tb, err := o.tables()
	if err != nil {
		return err
	}
	paths, err := discoverFiles(args, o.glob)
	if err != nil {
		return err
	}
	if len(paths) == 0 && (len(args) > 0 || o.glob != "") {
		return fmt.Errorf("no input files found")
	}
	if o.check >= 0 {
		var reports []report
		if len(paths) == 0 {
			reports, err = checkStdin(tb, stdin, o.check)
		} else {
			reports, err = checkFiles(tb, paths, o.check)
		}
		if err != nil {
			return err
		}
		if err = printReports(stdout, stderr, reports, o.json); err != nil {
			return err
		}
		for _, r := range reports {
			if r.err != nil || !r.Summary.OK() {
				return errIssuesFound
			}
		}
		return nil
	}
	if len(paths) == 0 {
		return convertStream(tb, stdin, stdout)
	}
	n, err := convertFiles(tb, paths, o, stderr)
	if o.verbose {
		fmt.Fprintf(stderr, "%d of %d files converted\n", n, len(paths))
	}
	return err
}
