package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
)

// PrettyPrint writes calendars to a terminal or any other writer.
type PrettyPrint struct {
	// Out defaults to color.Output.
	Out io.Writer
	// Markers appends the span marker column to cell tables.
	Markers bool
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

// NewLine writes an empty line.
func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out())
}

// Title writes a bold, underlined heading.
func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

// Table writes rows as aligned columns.
func (pp *PrettyPrint) Table(header []string, rows [][]string) {
	table := uitable.New()
	table.MaxColWidth = 40
	table.Separator = "  "

	h := make([]interface{}, len(header))
	for i, v := range header {
		h[i] = strings.ToUpper(v)
	}
	table.AddRow(h...)
	for _, row := range rows {
		r := make([]interface{}, len(row))
		for i, v := range row {
			r[i] = v
		}
		table.AddRow(r...)
	}
	_, _ = fmt.Fprintln(pp.out(), table.String())
}

// JSON writes v as indented JSON.
func (pp *PrettyPrint) JSON(v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(pp.out(), string(b))
	return err
}
