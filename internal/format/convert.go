package format

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"school-transform/internal/config"
	"school-transform/internal/diagnostic"
	"school-transform/internal/flat"
	"school-transform/internal/transform"
	"school-transform/internal/tree"
)

const filePerm = 0o644

// Result summarises one conversion.
type Result struct {
	From       Tag
	To         Tag
	Direction  Direction
	Records    int
	Grades     int
	Classrooms int
	// Diagnostics holds header and consistency findings. It never holds errors.
	Diagnostics *diagnostic.Diagnostics
}

// Converter runs conversions between files.
type Converter struct {
	Config config.Config
	Logger *slog.Logger
}

// NewConverter returns a converter using cfg. A nil logger falls back to slog.Default.
func NewConverter(cfg config.Config, logger *slog.Logger) *Converter {
	if logger == nil {
		logger = slog.Default()
	}

	return &Converter{Config: cfg, Logger: logger}
}

// Convert reads srcPath in full, runs the transform its format pair calls for and
// writes dstPath. Nothing is written when reading or transforming fails.
func (c *Converter) Convert(srcPath, dstPath string) (*Result, error) {
	src, err := ByExtension(filepath.Ext(srcPath))
	if err != nil {
		return nil, fmt.Errorf("source %s: %w", srcPath, err)
	}

	dst, err := ByExtension(filepath.Ext(dstPath))
	if err != nil {
		return nil, fmt.Errorf("destination %s: %w", dstPath, err)
	}

	dir, err := Resolve(src, dst)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(srcPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", srcPath, err)
	}

	c.Logger.Debug("read source",
		slog.String("path", srcPath),
		slog.String("format", src.Tag.String()),
		slog.Int("bytes", len(data)))

	res := &Result{From: src.Tag, To: dst.Tag, Direction: dir, Diagnostics: &diagnostic.Diagnostics{}}

	var out bytes.Buffer

	switch dir {
	case DirectionRollUp:
		err = c.rollUp(src.Tag, dst.Tag, data, &out, res)
	case DirectionDenormalize:
		err = c.denormalize(src.Tag, dst.Tag, data, &out, res)
	}

	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(dstPath, out.Bytes(), filePerm); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", dstPath, err)
	}

	c.report(res)

	return res, nil
}

func (c *Converter) rollUp(from, to Tag, data []byte, out *bytes.Buffer, res *Result) error {
	opts := flat.ReadOptions{HasHeader: c.Config.Flat.HasHeader, Sheet: c.Config.Flat.Sheet}

	store, err := flatCodecs[from].read(bytes.NewReader(data), opts)
	if err != nil {
		return fmt.Errorf("failed to read %s records: %w", from, err)
	}

	if opts.HasHeader {
		res.Diagnostics.Merge(flat.CheckHeader(store.Header))
	}

	res.Diagnostics.Merge(transform.InspectRecords(store.Records))

	school := transform.RollUp(store.Records, tree.New(c.Config.School.Name, c.Config.School.ID))
	res.Records = len(store.Records)
	res.Grades, res.Classrooms, _ = school.Counts()

	if err := treeCodecs[to].write(out, &school); err != nil {
		return fmt.Errorf("failed to write %s tree: %w", to, err)
	}

	return nil
}

func (c *Converter) denormalize(from, to Tag, data []byte, out *bytes.Buffer, res *Result) error {
	school, err := treeCodecs[from].read(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to read %s tree: %w", from, err)
	}

	res.Diagnostics.Merge(transform.InspectSchool(*school))

	records := transform.Denormalize(*school)
	res.Records = len(records)
	res.Grades, res.Classrooms, _ = school.Counts()

	if err := flatCodecs[to].write(out, records, c.Config.Flat.Sheet); err != nil {
		return fmt.Errorf("failed to write %s records: %w", to, err)
	}

	return nil
}

func (c *Converter) report(res *Result) {
	for _, d := range res.Diagnostics.Warnings {
		c.Logger.Warn(d.Message, diagAttrs(d)...)
	}

	for _, d := range res.Diagnostics.Infos {
		c.Logger.Debug(d.Message, diagAttrs(d)...)
	}

	c.Logger.Info("conversion complete",
		slog.String("from", res.From.String()),
		slog.String("to", res.To.String()),
		slog.String("direction", res.Direction.String()),
		slog.Int("records", res.Records),
		slog.Int("grades", res.Grades),
		slog.Int("classrooms", res.Classrooms),
		slog.Int("warnings", len(res.Diagnostics.Warnings)))
}

func diagAttrs(d diagnostic.Diagnostic) []any {
	attrs := []any{slog.String("code", d.Code)}
	if d.Scope != "" {
		attrs = append(attrs, slog.String("scope", d.Scope))
	}

	if d.Ref != "" {
		attrs = append(attrs, slog.String("ref", d.Ref))
	}

	if len(d.Suggestions) > 0 {
		attrs = append(attrs, slog.Any("suggestions", d.Suggestions))
	}

	return attrs
}
