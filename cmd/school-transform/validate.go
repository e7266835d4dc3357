package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"school-transform/internal/diagnostic"
	"school-transform/internal/format"
)

// Argument validation codes.
const (
	codeArgCount               = "arg_count"
	codeSourceNotFound         = "source_not_found"
	codeSourceNoExtension      = "source_no_extension"
	codeSourceUnsupported      = "source_unsupported"
	codeDestinationNoExtension = "destination_no_extension"
	codeSameExtension          = "same_extension"
	codeDestinationUnsupported = "destination_unsupported"
)

// validateArgs checks the positional arguments before any file is read. Checks run
// in a fixed order and stop at the first failure.
func validateArgs(args []string) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	if len(args) != 2 {
		res.AddError(codeArgCount, fmt.Sprintf("expected exactly two arguments, got %d", len(args)), "", "")
		return res
	}

	src, dst := args[0], args[1]

	if info, err := os.Stat(src); err != nil || info.IsDir() {
		res.AddError(codeSourceNotFound, fmt.Sprintf("file %s does not exist", src), "", "source")
		return res
	}

	srcExt := extension(src)
	if srcExt == "" {
		res.AddError(codeSourceNoExtension, fmt.Sprintf("cannot get an extension from %s", src), "", "source")
		return res
	}

	if _, err := format.ByExtension(srcExt); err != nil {
		res.AddError(codeSourceUnsupported, unsupportedMessage(srcExt), "", "source")
		return res
	}

	dstExt := extension(dst)
	if dstExt == "" {
		res.AddError(codeDestinationNoExtension, fmt.Sprintf("cannot get an extension from %s", dst), "", "destination")
		return res
	}

	if strings.EqualFold(srcExt, dstExt) {
		res.AddError(codeSameExtension, fmt.Sprintf("both files have the extension %s", srcExt), "", "destination")
		return res
	}

	if _, err := format.ByExtension(dstExt); err != nil {
		res.AddError(codeDestinationUnsupported, unsupportedMessage(dstExt), "", "destination")
		return res
	}

	return res
}

// extension returns the extension of path, or "" when there is none.
func extension(path string) string {
	ext := strings.TrimSpace(filepath.Ext(path))
	if ext == "." {
		return ""
	}

	return ext
}

func unsupportedMessage(ext string) string {
	return fmt.Sprintf("no format handles %s (supported: %s)", ext, strings.Join(supportedExtensions(), ", "))
}

func supportedExtensions() []string {
	var exts []string
	for _, f := range format.Formats() {
		exts = append(exts, f.Extensions...)
	}

	return exts
}
