package formatter

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"
)

// TableFormatter formats output as aligned text tables.
type TableFormatter struct{}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter() *TableFormatter {
	return &TableFormatter{}
}

// Name returns the formatter name.
func (f *TableFormatter) Name() string {
	return "table"
}

// FormatList formats a list of records as a table.
func (f *TableFormatter) FormatList(w io.Writer, kind Kind, records []map[string]any, opts FormatOptions) error {
	if len(records) == 0 {
		fmt.Fprintf(w, "No %s records found.\n", kind.Name)
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	cols := columns(kind, opts, records...)

	if !opts.NoHeader {
		headers := make([]string, len(cols))
		for i, col := range cols {
			headers[i] = strings.ToUpper(col)
		}
		fmt.Fprintln(tw, strings.Join(headers, "\t"))
	}

	for _, record := range records {
		values := make([]string, len(cols))
		for i, col := range cols {
			values[i] = f.formatValue(record[col], opts.MaxWidth)
		}
		fmt.Fprintln(tw, strings.Join(values, "\t"))
	}

	return tw.Flush()
}

// FormatRecord formats a single record as key-value pairs.
func (f *TableFormatter) FormatRecord(w io.Writer, kind Kind, record map[string]any, opts FormatOptions) error {
	if record == nil {
		fmt.Fprintf(w, "No %s record.\n", kind.Name)
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, col := range columns(kind, opts, record) {
		fmt.Fprintf(tw, "%s:\t%s\n", f.formatLabel(col), f.formatValue(record[col], 0))
	}
	return tw.Flush()
}

// FormatError formats an error message.
func (f *TableFormatter) FormatError(w io.Writer, err error) error {
	_, werr := fmt.Fprintf(w, "Error: %s\n", err.Error())
	return werr
}

// formatLabel turns snake_case into Title Case.
func (f *TableFormatter) formatLabel(name string) string {
	words := strings.Split(name, "_")
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + word[1:]
		}
	}
	return strings.Join(words, " ")
}

func (f *TableFormatter) formatValue(val any, maxWidth int) string {
	var str string
	switch v := val.(type) {
	case nil:
		return "-"
	case string:
		str = v
	case bool:
		if v {
			str = "yes"
		} else {
			str = "no"
		}
	case float64:
		str = strconv.FormatFloat(v, 'g', -1, 64)
	case int, int64:
		str = fmt.Sprint(v)
	case time.Time:
		str = v.Format(time.RFC3339)
	case time.Duration:
		str = v.String()
	case []string:
		str = strings.Join(v, ", ")
	default:
		b, _ := json.Marshal(v)
		str = string(b)
	}

	if maxWidth > 3 && len(str) > maxWidth {
		str = str[:maxWidth-3] + "..."
	}
	return str
}
