package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/CodMac/go-treesitter-fht-analyzer/model"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	ruleColor    = color.New(color.FgCyan)
	pathColor    = color.New(color.Bold)
)

// TextWriter 以 "file:line:col: severity id: message" 的格式输出诊断。
type TextWriter struct {
	w     io.Writer
	color bool
}

// NewTextWriter 仅在 w 为终端且 colorize 为 true 时输出颜色。
func NewTextWriter(w io.Writer, colorize bool) *TextWriter {
	return &TextWriter{w: w, color: colorize && IsTerminal(w)}
}

// IsTerminal 判断 w 是否为交互式终端。
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (t *TextWriter) WriteDiagnostic(d model.Diagnostic) error {
	sev := d.Severity().String()
	loc := d.Location.String()
	id := d.RuleID()
	if t.color {
		loc = pathColor.Sprint(loc)
		id = ruleColor.Sprint(id)
		switch d.Severity() {
		case model.SeverityError:
			sev = errorColor.Sprint(sev)
		case model.SeverityWarning:
			sev = warningColor.Sprint(sev)
		}
	}
	_, err := fmt.Fprintf(t.w, "%s: %s %s: %s\n", loc, sev, id, d.Message())
	return err
}

// WriteAll 输出所有诊断，最后输出一行汇总。
func (t *TextWriter) WriteAll(diags []model.Diagnostic, files int) error {
	errs := 0
	for _, d := range diags {
		if d.Severity() == model.SeverityError {
			errs++
		}
		if err := t.WriteDiagnostic(d); err != nil {
			return err
		}
	}
	summary := fmt.Sprintf("%d file(s) analyzed, %d diagnostic(s), %d error(s)", files, len(diags), errs)
	if t.color && errs > 0 {
		summary = errorColor.Sprint(summary)
	}
	_, err := fmt.Fprintln(t.w, summary)
	return err
}
