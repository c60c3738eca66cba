//nolint:revive // Package name kept as "log" for stable internal imports.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
)

var (
	mu        sync.Mutex
	debugMode = false
	stdout    io.Writer
	stderr    io.Writer
)

// SetDebugMode enables or disables debug logging
func SetDebugMode(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	debugMode = enabled
}

// SetOutput redirects informational and error output. A nil writer restores
// the process stdout/stderr.
func SetOutput(out, errOut io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	stdout = out
	stderr = errOut
}

func outWriter() io.Writer {
	if stdout != nil {
		return stdout
	}
	return os.Stdout
}

func errWriter() io.Writer {
	if stderr != nil {
		return stderr
	}
	return os.Stderr
}

func writeLine(w io.Writer, prefix, format string, elem ...any) {
	_, _ = fmt.Fprintln(w, prefix+fmt.Sprintf(format, elem...))
}

// Debug logs debug messages when debug mode is enabled
func Debug(format string, elem ...any) {
	mu.Lock()
	defer mu.Unlock()
	if debugMode {
		writeLine(outWriter(), color.CyanString("[DEBUG] "), format, elem...)
	}
}

// DebugH2 logs indented debug messages when debug mode is enabled
func DebugH2(format string, elem ...any) {
	mu.Lock()
	defer mu.Unlock()
	if debugMode {
		writeLine(outWriter(), color.CyanString("  [DEBUG] "), format, elem...)
	}
}

// Error logs an error message to stderr. Multi-line messages get the prefix
// on every line.
func Error(format string, elem ...any) {
	mu.Lock()
	defer mu.Unlock()
	message := fmt.Sprintf(format, elem...)
	for _, line := range strings.Split(strings.TrimSpace(message), "\n") {
		_, _ = fmt.Fprintln(errWriter(), color.RedString("[x] ")+strings.TrimSpace(line))
	}
}

// ErrorH2 logs an indented error message to stderr
func ErrorH2(format string, elem ...any) {
	mu.Lock()
	defer mu.Unlock()
	writeLine(errWriter(), color.RedString("  [x] "), format, elem...)
}

// Warn logs a non-fatal problem
func Warn(format string, elem ...any) {
	mu.Lock()
	defer mu.Unlock()
	writeLine(errWriter(), color.YellowString("[!] "), format, elem...)
}

// Info logs an informational message
func Info(format string, elem ...any) {
	mu.Lock()
	defer mu.Unlock()
	writeLine(outWriter(), color.BlueString("[x] "), format, elem...)
}

// InfoH2 logs an indented informational message
func InfoH2(format string, elem ...any) {
	mu.Lock()
	defer mu.Unlock()
	writeLine(outWriter(), color.GreenString("  [x] "), format, elem...)
}

// InfoH3 logs a double-indented informational message
func InfoH3(format string, elem ...any) {
	mu.Lock()
	defer mu.Unlock()
	writeLine(outWriter(), color.YellowString("    [x] "), format, elem...)
}

// Success logs a completed step
func Success(format string, elem ...any) {
	mu.Lock()
	defer mu.Unlock()
	writeLine(outWriter(), color.GreenString("[✓] "), format, elem...)
}

// Highlight renders a value the way the logger highlights user-supplied data.
func Highlight(value string) string {
	return color.YellowString("%s", value)
}
