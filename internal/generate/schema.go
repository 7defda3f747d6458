package generate

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/GoFEDS/GoFEDS/internal/project"
)

// Notional table titles the Revenue pipeline populates.
const (
	TableCustomer      = "Customer"
	TableProduct       = "Product"
	TableInvoice       = "Invoice"
	TableInvoiceDetail = "InvoiceDetail"
)

// tableName builds the concrete table name for one notional table of one
// project, so runs for different projects never collide.
func tableName(projectID uint64, title string) string {
	return fmt.Sprintf("%s%d", strings.ToLower(strings.ReplaceAll(title, " ", "")), projectID)
}

func sqlColumnType(ft project.FieldType) string {
	switch ft {
	case project.FieldPrimaryKey, project.FieldForeignKey, project.FieldInt:
		return "INTEGER"
	case project.FieldCurrency:
		return "DECIMAL(12,2)"
	default:
		return "TEXT"
	}
}

// createSchema drops and recreates the concrete tables for every notional
// table in the tree. Key columns get no PRIMARY KEY constraint because the
// key anomalies deliberately produce duplicate values.
func (g *Generator) createSchema(ctx context.Context) error {
	for _, table := range g.tree.Tables {
		name := tableName(g.tree.ID, table.Title)

		if err := g.db.WithContext(ctx).Exec("DROP TABLE IF EXISTS " + name).Error; err != nil {
			return errors.Wrapf(err, "drop table %s", name)
		}

		cols := make([]string, 0, len(table.Fields))
		for _, field := range table.Fields {
			cols = append(cols, field.Title+" "+sqlColumnType(field.FieldType))
		}

		ddl := fmt.Sprintf("CREATE TABLE %s (%s)", name, strings.Join(cols, ", "))
		if err := g.db.WithContext(ctx).Exec(ddl).Error; err != nil {
			return errors.Wrapf(err, "create table %s", name)
		}
	}

	return nil
}

// lookupTable finds a notional table by title, as a generation error when
// the project's business area doesn't have it.
func (g *Generator) lookupTable(title string) (*project.Table, error) {
	table, ok := g.tree.Table(title)
	if !ok {
		return nil, errors.Wrapf(ErrGeneration, "project has no %q table", title)
	}
	return table, nil
}

// insertRows bulk-inserts positional rows into a notional table's concrete
// table. Row layout must match the table's field order.
func (g *Generator) insertRows(ctx context.Context, table *project.Table, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}

	name := tableName(g.tree.ID, table.Title)

	cols := make([]string, 0, len(table.Fields))
	for _, field := range table.Fields {
		cols = append(cols, field.Title)
	}
	placeholders := "(" + strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ") + ")"

	const batchSize = 100

	for start := 0; start < len(rows); start += batchSize {
		end := start + batchSize
		if end > len(rows) {
			end = len(rows)
		}
		batch := rows[start:end]

		values := make([]string, 0, len(batch))
		args := make([]any, 0, len(batch)*len(cols))
		for _, row := range batch {
			if len(row) != len(cols) {
				return errors.Wrapf(ErrGeneration,
					"row for table %s has %d values, want %d", name, len(row), len(cols))
			}
			values = append(values, placeholders)
			args = append(args, row...)
		}

		stmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES %s",
			name, strings.Join(cols, ", "), strings.Join(values, ", "))
		if err := g.db.WithContext(ctx).Exec(stmt, args...).Error; err != nil {
			return errors.Wrapf(err, "insert into %s", name)
		}
	}

	return nil
}
