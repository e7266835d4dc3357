// Package main provides the CLI entrypoint for school-transform.
//
// school-transform converts school enrollment data between flat rows (CSV, XLSX)
// and a school tree (XML, YAML):
//
//	school-transform roster.csv school.xml
//	school-transform school.yaml roster.xlsx
//
// The conversion direction follows from the two file extensions.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
