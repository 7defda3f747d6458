package generate

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/GoFEDS/GoFEDS/internal/project"
)

// export writes one CSV file per notional table into the export directory.
// Numeric columns are written bare and everything else is quoted, so a
// downstream import can tell the two apart without a schema in hand.
func (g *Generator) export(ctx context.Context) error {
	if g.exportDir == "" {
		log.Debug().Str("run", g.runID).Msg("no export directory, skipping export")
		return nil
	}

	if err := os.MkdirAll(g.exportDir, 0o755); err != nil {
		return errors.Wrapf(err, "create export directory %s", g.exportDir)
	}

	for _, table := range g.tree.Tables {
		if err := g.exportTable(ctx, table); err != nil {
			return err
		}
	}

	return nil
}

func (g *Generator) exportTable(ctx context.Context, table *project.Table) error {
	name := tableName(g.tree.ID, table.Title)

	cols := make([]string, 0, len(table.Fields))
	for _, field := range table.Fields {
		cols = append(cols, field.Title)
	}

	rows, err := g.db.WithContext(ctx).
		Raw(fmt.Sprintf("SELECT %s FROM %s", strings.Join(cols, ", "), name)).
		Rows()
	if err != nil {
		return errors.Wrapf(err, "select from %s", name)
	}
	defer rows.Close()

	path := filepath.Join(g.exportDir, name+".csv")
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer file.Close()

	w := bufio.NewWriter(file)

	header := make([]string, len(table.Fields))
	for i, field := range table.Fields {
		header[i] = quoteCSV(field.Title)
	}
	if _, err := w.WriteString(strings.Join(header, ",") + "\n"); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}

	scanned := make([]any, len(cols))
	targets := make([]any, len(cols))
	for i := range scanned {
		targets[i] = &scanned[i]
	}

	out := make([]string, len(cols))
	for rows.Next() {
		if err := rows.Scan(targets...); err != nil {
			return errors.Wrapf(err, "scan row from %s", name)
		}
		for i, field := range table.Fields {
			out[i] = formatCSVValue(field.FieldType, scanned[i])
		}
		if _, err := w.WriteString(strings.Join(out, ",") + "\n"); err != nil {
			return errors.Wrapf(err, "write %s", path)
		}
	}
	if err := rows.Err(); err != nil {
		return errors.Wrapf(err, "read rows from %s", name)
	}

	if err := w.Flush(); err != nil {
		return errors.Wrapf(err, "flush %s", path)
	}

	log.Info().Str("run", g.runID).Str("file", path).Msg("exported table")

	return nil
}

func numericField(ft project.FieldType) bool {
	switch ft {
	case project.FieldPrimaryKey, project.FieldForeignKey, project.FieldInt, project.FieldCurrency:
		return true
	default:
		return false
	}
}

// formatCSVValue renders a scanned database value for the CSV file. Money
// columns always show two decimal places regardless of how the driver
// hands the value back.
func formatCSVValue(ft project.FieldType, v any) string {
	var s string
	switch value := v.(type) {
	case nil:
		s = ""
	case []byte:
		s = string(value)
	case string:
		s = value
	case int64:
		s = strconv.FormatInt(value, 10)
	case float64:
		if ft == project.FieldCurrency {
			s = strconv.FormatFloat(value, 'f', 2, 64)
		} else {
			s = strconv.FormatFloat(value, 'f', -1, 64)
		}
	default:
		s = fmt.Sprint(value)
	}

	if numericField(ft) {
		return s
	}
	return quoteCSV(s)
}

func quoteCSV(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
