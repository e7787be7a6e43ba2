// tools/logs is a dev tool for viewing fmcat logs with colors
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/sleuth-io/fmcat/internal/cache"
	"github.com/sleuth-io/fmcat/internal/constants"
)

var (
	timeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	debugStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	pathStyle  = lipgloss.NewStyle().Bold(true)
)

// filter selects log lines by substring and run id
type filter struct {
	text string
	run  string
}

func (f filter) matches(line string) bool {
	if f.text != "" && !strings.Contains(line, f.text) {
		return false
	}
	if f.run != "" && !strings.HasPrefix(extractValue(line, "run"), f.run) {
		return false
	}
	return true
}

func main() {
	lines := flag.Int("n", 20, "number of lines to show before following")
	text := flag.String("f", "", "filter logs by substring (e.g., -f \"copy failed\")")
	run := flag.String("run", "", "only show lines from the run id with this prefix")
	noFollow := flag.Bool("no-follow", false, "print the last lines and exit")
	flag.Parse()

	cacheDir, err := cache.GetCacheDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not determine log path: %v\n", err)
		os.Exit(1)
	}
	logPath := filepath.Join(cacheDir, constants.LogFile)
	f := filter{text: *text, run: *run}

	fmt.Println(pathStyle.Render(logPath))
	fmt.Println("---------------------------------------")

	if err := showLastLines(os.Stdout, logPath, *lines, f); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading log: %v\n", err)
		os.Exit(1)
	}
	if *noFollow {
		return
	}
	if err := followFile(os.Stdout, logPath, f); err != nil {
		fmt.Fprintf(os.Stderr, "Error following log: %v\n", err)
		os.Exit(1)
	}
}

func showLastLines(w io.Writer, path string, n int, f filter) error {
	if n <= 0 {
		return nil
	}
	lines, err := readTailLines(path, 200)
	if err != nil {
		return err
	}

	var matched []string
	for _, line := range lines {
		if f.matches(line) {
			matched = append(matched, line)
		}
	}
	if len(matched) > n {
		matched = matched[len(matched)-n:]
	}
	for _, line := range matched {
		fmt.Fprintln(w, colorizeLine(line))
	}
	return nil
}

// readTailLines reads approximately the last n lines of path by seeking near the end
func readTailLines(path string, n int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	// slog text lines are short; 512 bytes per line is generous
	pos := max(0, stat.Size()-int64(n*512))
	if _, err := file.Seek(pos, io.SeekStart); err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	if pos > 0 {
		scanner.Scan() // partial line
	}

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

func followFile(w io.Writer, path string, f filter) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		return err
	}

	reader := bufio.NewReader(file)
	for {
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			time.Sleep(100 * time.Millisecond)
			continue
		}
		if err != nil {
			return err
		}
		line = strings.TrimRight(line, "\n")
		if f.matches(line) {
			fmt.Fprintln(w, colorizeLine(line))
		}
	}
}

// colorizeLine renders a slog text line as "HH:MM:SS LVL msg -- key=value ..."
func colorizeLine(line string) string {
	level := extractValue(line, "level")
	timeVal := extractValue(line, "time")
	msg := extractValue(line, "msg")
	if level == "" && msg == "" {
		return line
	}

	var parts []string
	if len(timeVal) >= 19 {
		parts = append(parts, timeStyle.Render(timeVal[11:19]))
	}
	if level != "" {
		parts = append(parts, levelStyle(level).Render(levelShort(level)))
	}
	if msg != "" {
		parts = append(parts, msg)
	}

	out := strings.Join(parts, " ")
	if rest := extractRemaining(line, []string{"time", "level", "msg"}); rest != "" {
		out += " -- " + rest
	}
	return out
}

func valuePattern(key string) *regexp.Regexp {
	return regexp.MustCompile(`(?:^|\s)` + regexp.QuoteMeta(key) + `=(?:"((?:[^"\\]|\\.)*)"|(\S+))`)
}

func extractValue(line, key string) string {
	match := valuePattern(key).FindStringSubmatch(line)
	if match == nil {
		return ""
	}
	if match[1] != "" {
		return match[1]
	}
	return match[2]
}

func extractRemaining(line string, exclude []string) string {
	result := line
	for _, key := range exclude {
		result = valuePattern(key).ReplaceAllString(result, " ")
	}
	return strings.Join(strings.Fields(result), " ")
}

func levelStyle(level string) lipgloss.Style {
	switch strings.ToUpper(level) {
	case "ERROR":
		return errorStyle
	case "WARN", "WARNING":
		return warnStyle
	case "INFO":
		return infoStyle
	case "DEBUG":
		return debugStyle
	default:
		return lipgloss.NewStyle()
	}
}

func levelShort(level string) string {
	switch strings.ToUpper(level) {
	case "ERROR":
		return "ERR"
	case "WARN", "WARNING":
		return "WRN"
	case "INFO":
		return "INF"
	case "DEBUG":
		return "DBG"
	default:
		return level
	}
}
