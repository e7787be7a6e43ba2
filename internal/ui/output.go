package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/term"

	"github.com/sleuth-io/fmcat/internal/ui/theme"
)

// Output provides styled terminal output.
type Output struct {
	out    io.Writer
	err    io.Writer
	theme  theme.Theme
	silent bool
	noTTY  bool
	width  int
}

// NewOutput creates a new styled output instance.
func NewOutput(out, err io.Writer) *Output {
	width := 80 // default
	if w, _, e := term.GetSize(int(os.Stdout.Fd())); e == nil && w > 0 {
		width = w
	}
	return &Output{
		out:    out,
		err:    err,
		theme:  theme.Current(),
		silent: IsSilent(),
		noTTY:  !IsTTY(out) || NoColor(),
		width:  width,
	}
}

// Wrap wraps text to fit the terminal width.
func (o *Output) Wrap(text string) string {
	if o.width <= 0 {
		return text
	}
	return wordwrap.String(text, o.width)
}

// SetSilent enables or disables silent mode (suppresses stdout).
func (o *Output) SetSilent(silent bool) {
	o.silent = silent
}

// IsSilent returns whether silent mode is enabled.
func (o *Output) IsSilent() bool {
	return o.silent
}

// Interactive reports whether live widgets such as progress bars should be drawn.
func (o *Output) Interactive() bool {
	return !o.silent && !o.noTTY
}

// Writer returns the underlying stdout writer.
func (o *Output) Writer() io.Writer {
	return o.out
}

func (o *Output) line(w io.Writer, style func(theme.Styles) string, text string) {
	if o.noTTY {
		fmt.Fprintln(w, text)
		return
	}
	fmt.Fprintln(w, style(o.theme.Styles()))
}

// Success prints a success message with checkmark.
func (o *Output) Success(msg string) {
	if o.silent {
		return
	}
	text := o.theme.Symbols().Success + " " + msg
	o.line(o.out, func(s theme.Styles) string { return s.Success.Render(text) }, text)
}

// Error prints an error message with X mark to stderr.
func (o *Output) Error(msg string) {
	text := o.Wrap(o.theme.Symbols().Error + " " + msg)
	o.line(o.err, func(s theme.Styles) string { return s.Error.Render(text) }, text)
}

// Warning prints a warning message to stderr.
func (o *Output) Warning(msg string) {
	text := o.Wrap(o.theme.Symbols().Warning + " " + msg)
	o.line(o.err, func(s theme.Styles) string { return s.Warning.Render(text) }, text)
}

// Info prints an info message with arrow.
func (o *Output) Info(msg string) {
	if o.silent {
		return
	}
	text := o.theme.Symbols().Info + " " + msg
	o.line(o.out, func(s theme.Styles) string { return s.Info.Render(text) }, text)
}

// Header prints a bold header.
func (o *Output) Header(text string) {
	if o.silent {
		return
	}
	o.line(o.out, func(s theme.Styles) string { return s.Header.Render(text) }, text)
}

// SubHeader prints a styled sub-header.
func (o *Output) SubHeader(text string) {
	if o.silent {
		return
	}
	o.line(o.out, func(s theme.Styles) string { return s.SubHeader.Render(text) }, text)
}

// Muted prints muted/dim text.
func (o *Output) Muted(msg string) {
	if o.silent {
		return
	}
	o.line(o.out, func(s theme.Styles) string { return s.Muted.Render(msg) }, msg)
}

// Println prints a line to stdout.
func (o *Output) Println(args ...any) {
	if o.silent {
		return
	}
	fmt.Fprintln(o.out, args...)
}

// Printf prints formatted output to stdout.
func (o *Output) Printf(format string, args ...any) {
	if o.silent {
		return
	}
	fmt.Fprintf(o.out, format, args...)
}

// Newline prints an empty line.
func (o *Output) Newline() {
	if o.silent {
		return
	}
	fmt.Fprintln(o.out)
}

// KeyValue prints a key-value pair.
func (o *Output) KeyValue(key, value string) {
	if o.silent {
		return
	}
	if o.noTTY {
		fmt.Fprintf(o.out, "%s: %s\n", key, value)
		return
	}
	styles := o.theme.Styles()
	fmt.Fprintln(o.out, styles.Key.Render(key+":")+" "+styles.Value.Render(value))
}

// ListItem prints a single bulleted, indented item.
func (o *Output) ListItem(item string) {
	if o.silent {
		return
	}
	sym := o.theme.Symbols().Bullet
	if o.noTTY {
		fmt.Fprintf(o.out, "  %s %s\n", sym, item)
		return
	}
	fmt.Fprintf(o.out, "  %s %s\n", o.theme.Styles().Bullet.Render(sym), item)
}

// SuccessItem prints an indented success item.
func (o *Output) SuccessItem(item string) {
	if o.silent {
		return
	}
	sym := o.theme.Symbols().Success
	if o.noTTY {
		fmt.Fprintf(o.out, "  %s %s\n", sym, item)
		return
	}
	fmt.Fprintf(o.out, "  %s %s\n", o.theme.Styles().Success.Render(sym), item)
}

// ErrorItem prints an indented error item to stderr.
func (o *Output) ErrorItem(item string) {
	sym := o.theme.Symbols().Error
	if o.noTTY {
		fmt.Fprintf(o.err, "  %s %s\n", sym, item)
		return
	}
	fmt.Fprintf(o.err, "  %s %s\n", o.theme.Styles().Error.Render(sym), item)
}
