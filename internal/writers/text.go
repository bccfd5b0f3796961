package writers

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fatih/color"

	"fqlint/core/validate"
	"fqlint/internal/lint"
)

func init() { Register("text", writeText) }

type palette struct {
	loc, code *color.Color
	sev       map[validate.Severity]*color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		loc:  color.New(color.Bold),
		code: color.New(color.FgCyan),
		sev: map[validate.Severity]*color.Color{
			validate.Low:    color.New(color.FgBlue),
			validate.Medium: color.New(color.FgYellow),
			validate.High:   color.New(color.FgRed, color.Bold),
		},
	}
	for _, c := range append([]*color.Color{p.loc, p.code}, p.sev[validate.Low], p.sev[validate.Medium], p.sev[validate.High]) {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s validate.Severity) string {
	if c, ok := p.sev[s]; ok {
		return c.Sprint(s)
	}
	return s.String()
}

// FormatText renders one finding as a single line without colour:
//
//	path:record: [CODE] Name (severity) field[:pos]: message
func FormatText(f lint.Finding) string {
	return formatText(newPalette(false), f)
}

func formatText(p palette, f lint.Finding) string {
	d := f.Diagnosis
	where := d.Field.String()
	if n, ok := d.Position.Get(); ok {
		where = fmt.Sprintf("%s:%d", where, n)
	}
	return fmt.Sprintf("%s: %s %s (%s) %s: %s",
		p.loc.Sprintf("%s:%d", f.Path, f.Record),
		p.code.Sprintf("[%s]", d.Code),
		d.CheckName, p.severity(f.Severity), where, d.Message)
}

func writeText(w io.Writer, in <-chan lint.Finding, opts Options) error {
	p := newPalette(opts.Color)
	bw := bufio.NewWriter(w)
	line := func(f lint.Finding) error {
		_, err := fmt.Fprintln(bw, formatText(p, f))
		return err
	}
	if opts.Sort {
		for _, f := range collect(in, opts) {
			if err := line(f); err != nil {
				return err
			}
		}
	} else {
		for f := range in {
			if err := line(f); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
