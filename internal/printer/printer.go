// Package printer writes human oriented status output to stderr.
package printer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hay-kot/criterio"
	"golang.org/x/term"
)

// ANSI color codes (Tokyo Night palette)
const (
	ColorReset     = "\033[0m"
	ColorRed       = "\033[38;2;215;95;107m"  // #d75f6b
	ColorGreen     = "\033[38;2;158;206;106m" // #9ece6a
	ColorYellow    = "\033[38;2;224;175;104m" // #e0af68
	ColorGray      = "\033[38;2;86;95;137m"   // #565f89
	ColorBold      = "\033[1m"
	ColorUnderline = "\033[4m"
)

// Symbols
const (
	Check = "✔"
	Cross = "✘"
	Dot   = "•"
)

type ctxKey struct{}

// Printer writes colored, line oriented output.
type Printer struct {
	w     io.Writer
	color bool
}

// New returns a Printer for w. Colors are enabled only when w is a terminal
// and NO_COLOR is unset.
func New(w io.Writer) *Printer {
	return NewColor(w, isTerminal(w) && os.Getenv("NO_COLOR") == "")
}

// NewColor returns a Printer with colors forced on or off.
func NewColor(w io.Writer, color bool) *Printer {
	return &Printer{w: w, color: color}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// NewContext returns a context carrying p.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the printer stored in ctx, or a stderr printer.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stderr)
}

// FatalError prints err in a boxed block. It does not exit.
func (p *Printer) FatalError(err error) {
	if err == nil {
		return
	}

	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		p.box("Error", p.paint(ColorGray, err.Error()))
		return
	}

	var body []string
	if prefix := errorPrefix(err, fieldErrs); prefix != "" {
		body = append(body, p.paint(ColorGray, prefix), "")
	}
	for _, fe := range fieldErrs {
		line := p.paint(ColorRed, Cross) + " "
		if fe.Field != "" {
			line += p.paint(ColorGray, fe.Field+": ")
		}
		body = append(body, line+fe.Err.Error())
	}

	p.box("Validation Error", body...)
}

// errorPrefix returns the context wrapped around fieldErrs, such as
// "invalid length" in "invalid length: length: too short".
func errorPrefix(err error, fieldErrs criterio.FieldErrors) string {
	msg := err.Error()
	idx := strings.Index(msg, fieldErrs.Error())
	if idx <= 0 {
		return ""
	}
	return strings.TrimSuffix(msg[:idx], ": ")
}

func (p *Printer) box(title string, body ...string) {
	edge := p.paint(ColorRed, "│")

	p.line(p.paint(ColorRed, "╭ " + title))
	for _, l := range body {
		if l == "" {
			p.line(edge)
			continue
		}
		p.line(edge + " " + l)
	}
	p.line(p.paint(ColorRed, "╵"))
}

func (p *Printer) Errorf(format string, args ...any) {
	p.status(ColorRed, Cross, format, args...)
}

func (p *Printer) Successf(format string, args ...any) {
	p.status(ColorGreen, Check, format, args...)
}

func (p *Printer) Infof(format string, args ...any) {
	p.status(ColorGray, Dot, format, args...)
}

func (p *Printer) Warnf(format string, args ...any) {
	p.status(ColorYellow, Dot, format, args...)
}

func (p *Printer) status(color, symbol, format string, args ...any) {
	p.line(p.paint(color, symbol+" "+fmt.Sprintf(format, args...)))
}

// Printf prints an uncolored line.
func (p *Printer) Printf(format string, args ...any) {
	p.line(fmt.Sprintf(format, args...))
}

// Field prints an indented "label: value" pair with a dimmed label.
func (p *Printer) Field(label, value string) {
	p.line("  " + p.paint(ColorGray, label+":") + " " + value)
}

// Section prints a bold, underlined header.
func (p *Printer) Section(title string) {
	p.line(p.paint(ColorBold+ColorUnderline, title))
}

func (p *Printer) CheckItem(label, detail string) { p.item(ColorGreen, Check, label, detail) }

func (p *Printer) WarnItem(label, detail string) { p.item(ColorYellow, Dot, label, detail) }

func (p *Printer) FailItem(label, detail string) { p.item(ColorRed, Cross, label, detail) }

func (p *Printer) item(color, symbol, label, detail string) {
	l := "  " + p.paint(color, symbol) + " " + label
	if detail != "" {
		l += ": " + detail
	}
	p.line(l)
}

func (p *Printer) line(s string) {
	_, _ = io.WriteString(p.w, s+"\n")
}

func (p *Printer) paint(color, text string) string {
	if !p.color {
		return text
	}
	return color + text + ColorReset
}
