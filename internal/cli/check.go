package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/npillmayer/latinga"
)

// report is the validation result for one input.
type report struct {
	File    string          `json:"file"`
	Summary latinga.Summary `json:"summary"`
	text    string
	err     error
}

// checkFiles validates files in parallel, one engine per worker. Reports
// are returned in the order of paths.
func checkFiles(tb *tables, paths []string, limit int) ([]report, error) {
	reports := make([]report, len(paths))
	queue := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < workers(len(paths)); i++ {
		e, err := tb.newEngine()
		if err != nil {
			close(queue)
			wg.Wait()
			return nil, err
		}
		wg.Add(1)
		go func(e *latinga.Engine) {
			defer wg.Done()
			defer e.Dispose()
			for k := range queue {
				r := &reports[k]
				r.File = paths[k]
				if r.text, r.err = readText(paths[k]); r.err == nil {
					r.Summary = e.Validate(r.text, limit)
				}
			}
		}(e)
	}
	for k := range paths {
		queue <- k
	}
	close(queue)
	wg.Wait()
	return reports, nil
}

// checkStdin validates all of r.
func checkStdin(tb *tables, r io.Reader, limit int) ([]report, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	e, err := tb.newEngine()
	if err != nil {
		return nil, err
	}
	defer e.Dispose()
	text := string(data)
	return []report{{File: "stdin", Summary: e.Validate(text, limit), text: text}}, nil
}

// printReports writes reports either as JSON to stdout, or rendered for
// humans to stderr. Files which could not be read are reported to stderr.
func printReports(stdout, stderr io.Writer, reports []report, asJSON bool) error {
	var ok []report
	for _, r := range reports {
		if r.err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", r.File, r.err)
			continue
		}
		if r.Summary.Issues == nil {
			r.Summary.Issues = []latinga.Issue{}
		}
		ok = append(ok, r)
	}
	if asJSON {
		if ok == nil {
			ok = []report{}
		}
		out, err := json.MarshalIndent(ok, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, string(out))
		return err
	}
	for _, r := range ok {
		if r.Summary.OK() {
			continue
		}
		fmt.Fprintf(stderr, "\nchecking %s\n", r.File)
		for _, issue := range r.Summary.Issues {
			renderIssue(stderr, r.File, r.text, issue)
		}
		if more := r.Summary.Total - len(r.Summary.Issues); more > 0 {
			fmt.Fprintf(stderr, "... and %d more\n", more)
		}
	}
	return nil
}

// renderIssue prints an issue with its location, the line of text it is
// found in and a caret below its column.
//
//    error: unconverted "şahar", should be "shahar" (matn.txt:3:7)
//      |
//    3 | Bu şahar
//      |    ^
//
func renderIssue(w io.Writer, file, text string, issue latinga.Issue) {
	msg := fmt.Sprintf("%s %q", issue.Category, issue.Text)
	if issue.Suggestion != "" {
		msg += fmt.Sprintf(", should be %q", issue.Suggestion)
	}
	fmt.Fprintf(w, "%s: %s (%s:%d:%d)\n", issue.Severity, msg, file, issue.Line, issue.Column)
	num := strconv.Itoa(issue.Line)
	gutter := strings.Repeat(" ", len(num))
	fmt.Fprintf(w, "%s |\n", gutter)
	line := lineOf(text, issue.Line)
	fmt.Fprintf(w, "%s | %s\n", num, line)
	fmt.Fprintf(w, "%s | %s^\n", gutter, caretPadding(line, issue.Column))
}

// lineOf returns line n (1-based) of text, without line terminator.
func lineOf(text string, n int) string {
	for i := 1; i < n; i++ {
		k := strings.IndexByte(text, '\n')
		if k < 0 {
			return ""
		}
		text = text[k+1:]
	}
	if k := strings.IndexByte(text, '\n'); k >= 0 {
		text = text[:k]
	}
	return strings.TrimSuffix(text, "\r")
}
