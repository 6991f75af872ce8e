package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/latinga"
	"github.com/npillmayer/latinga/internal/tracing"
)

// discoverFiles collects existing regular files named by paths or matching
// the glob pattern. The result is sorted and free of duplicates.
func discoverFiles(paths []string, pattern string) ([]string, error) {
	found := treeset.NewWithStringComparator()
	for _, p := range paths {
		if isRegular(p) {
			found.Add(filepath.Clean(p))
		}
	}
	if pattern != "" {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		for _, p := range matches {
			if isRegular(p) {
				found.Add(filepath.Clean(p))
			}
		}
	}
	files := make([]string, 0, found.Size())
	for _, v := range found.Values() {
		files = append(files, v.(string))
	}
	return files, nil
}

func isRegular(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// outputPath inserts suffix between the stem and the extension of path.
func outputPath(path, suffix string) string {
	ext := filepath.Ext(path)
	base := filepath.Base(path)
	if ext == base { // dot file without extension
		ext = ""
	}
	stem := strings.TrimSuffix(base, ext)
	return filepath.Join(filepath.Dir(path), stem+suffix+ext)
}

// isOutputPath is true if path looks like the output of a conversion.
func isOutputPath(path, suffix string) bool {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == base {
		ext = ""
	}
	return suffix != "" && strings.HasSuffix(strings.TrimSuffix(base, ext), suffix)
}

// sanitizeSuffix drops characters which are unsafe in file names.
func sanitizeSuffix(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' || r == '.' {
			return r
		}
		return -1
	}, s)
}

// atomicWrite replaces the file at path by data. The data is written to a
// temporary file in the same directory first, which is renamed to path.
func atomicWrite(path string, data []byte) error {
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("write temp: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err = tmp.Write(data); err == nil {
		err = tmp.Chmod(mode)
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("write temp: %w", err)
	}
	return os.Rename(tmpPath, path)
}

// readText reads a UTF-8 text file.
func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: not a UTF-8 text file", path)
	}
	return string(data), nil
}

// convertFile converts the file at path. With overwrite set, the file is
// replaced, but only if conversion changes it. Otherwise the result goes
// to a new file named with suffix.
func convertFile(e *latinga.Engine, path string, overwrite bool, suffix string) error {
	text, err := readText(path)
	if err != nil {
		return err
	}
	out := e.Transliterate(text)
	if overwrite {
		if out == text {
			return nil
		}
		return atomicWrite(path, []byte(out))
	}
	return atomicWrite(outputPath(path, suffix), []byte(out))
}

// convertFiles converts files in parallel. Every worker uses an engine of
// its own. It returns the number of files converted; failures are reported
// to stderr.
func convertFiles(tb *tables, paths []string, o *options, stderr io.Writer) (int, error) {
	suffix := o.outputSuffix()
	queue := make(chan string)
	var mu sync.Mutex
	var wg sync.WaitGroup
	converted, failed := 0, 0
	for i := 0; i < workers(len(paths)); i++ {
		e, err := tb.newEngine()
		if err != nil {
			close(queue)
			wg.Wait()
			return converted, err
		}
		wg.Add(1)
		go func(e *latinga.Engine) {
			defer wg.Done()
			defer e.Dispose()
			for path := range queue {
				if o.verbose {
					tracing.Infof("converting %s", path)
				}
				err := convertFile(e, path, o.overwrite, suffix)
				mu.Lock()
				if err != nil {
					fmt.Fprintf(stderr, "%s: %v\n", path, err)
					failed++
				} else {
					converted++
				}
				mu.Unlock()
			}
		}(e)
	}
	for _, p := range paths {
		queue <- p
	}
	close(queue)
	wg.Wait()
	if failed > 0 {
		return converted, fmt.Errorf("%d of %d files failed", failed, len(paths))
	}
	return converted, nil
}

// workers is the number of goroutines for n files.
func workers(n int) int {
	w := runtime.NumCPU()
	if n < w {
		w = n
	}
	if w < 1 {
		w = 1
	}
	return w
}

// convertStream converts all of r to w.
func convertStream(tb *tables, r io.Reader, w io.Writer) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	e, err := tb.newEngine()
	if err != nil {
		return err
	}
	defer e.Dispose()
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(e.Transliterate(string(data))); err != nil {
		return err
	}
	return bw.Flush()
}
