// Package project assembles the in-memory representation of a project:
// business area, notional tables, and field specs, each carrying resolved
// typed settings, plus the overlay of user-chosen values.
package project

import (
	"github.com/pkg/errors"

	"github.com/GoFEDS/GoFEDS/internal/settings"
)

// FieldType declares what a field spec's column holds.
type FieldType string

// Known field types.
const (
	FieldPrimaryKey FieldType = "pk"
	FieldForeignKey FieldType = "fk"
	FieldText       FieldType = "text"
	FieldZip        FieldType = "zip"
	FieldPhone      FieldType = "phone"
	FieldEmail      FieldType = "email"
	FieldDate       FieldType = "date"
	FieldChoice     FieldType = "choice"
	FieldCurrency   FieldType = "currency"
	FieldInt        FieldType = "int"
)

var knownFieldTypes = map[FieldType]struct{}{
	FieldPrimaryKey: {}, FieldForeignKey: {}, FieldText: {}, FieldZip: {},
	FieldPhone: {}, FieldEmail: {}, FieldDate: {}, FieldChoice: {},
	FieldCurrency: {}, FieldInt: {},
}

// KnownFieldType reports whether ft is one of the declared field types.
func KnownFieldType(ft FieldType) bool {
	_, ok := knownFieldTypes[ft]
	return ok
}

// Tree is the assembled project: resolved settings at every level, owned
// strictly parent-to-child. The Registry scoping machine names and
// visibility rules lives and dies with the tree.
type Tree struct {
	ID                uint64
	Title             string
	Description       string
	Slug              string
	BusinessAreaID    uint64
	BusinessAreaTitle string

	Settings []settings.Setting
	Tables   []*Table

	Registry *settings.Registry
}

// Table is one notional table inside the tree.
type Table struct {
	ID          uint64
	Title       string
	Description string
	Settings    []settings.Setting
	Fields      []*Field
}

// Field is one field spec inside a notional table.
type Field struct {
	ID          uint64
	Title       string
	Description string
	FieldType   FieldType
	Settings    []settings.Setting
}

// Lookup returns the setting registered under the given machine name
// anywhere in the tree.
func (t *Tree) Lookup(machineName string) (settings.Setting, bool) {
	return t.Registry.Lookup(machineName)
}

// Table returns the notional table with the given title.
func (t *Tree) Table(title string) (*Table, bool) {
	for _, table := range t.Tables {
		if table.Title == title {
			return table, true
		}
	}
	return nil, false
}

func newField(id uint64, title, description string, fieldType FieldType) (*Field, error) {
	if !KnownFieldType(fieldType) {
		return nil, errors.Wrapf(settings.ErrConfiguration,
			"field spec %q has unknown field type %q", title, fieldType)
	}

	return &Field{
		ID:          id,
		Title:       title,
		Description: description,
		FieldType:   fieldType,
	}, nil
}
