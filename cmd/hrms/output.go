package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

func printTable(w io.Writer, columns []string, rows [][]string) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(columns, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	_ = tw.Flush()
}

// printFieldErrors prints form errors in the given field order.
func printFieldErrors(w io.Writer, fields []string, errs map[string]string) {
	for _, field := range fields {
		if msg, ok := errs[field]; ok {
			fmt.Fprintf(w, "  %s: %s\n", field, msg)
		}
	}
}
