package project

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/GoFEDS/GoFEDS/internal/db/controller/area"
	"github.com/GoFEDS/GoFEDS/internal/db/controller/definition"
	projectctl "github.com/GoFEDS/GoFEDS/internal/db/controller/project"
	"github.com/GoFEDS/GoFEDS/internal/db/models"
	"github.com/GoFEDS/GoFEDS/internal/settings"
)

// Assemble builds the default project tree: business-area settings first,
// then per-table settings in table display order, then per-field settings in
// field order. The tree owns a fresh registry, so machine-name uniqueness is
// scoped to this one assembly. Any failure aborts the whole assembly; a
// partial tree is never returned.
func Assemble(db *gorm.DB, projectID uint64) (*Tree, error) {
	proj, err := projectctl.Get(db, projectID)
	if err != nil {
		return nil, errors.Wrapf(err, "assemble project %d", projectID)
	}

	businessArea, err := area.Get(db, proj.BusinessAreaID)
	if err != nil {
		return nil, errors.Wrapf(err, "assemble project %d", projectID)
	}

	defs, err := definition.Definitions(db)
	if err != nil {
		return nil, errors.Wrapf(err, "assemble project %d", projectID)
	}

	baseDefs := definitionsToBase(defs)

	tree := &Tree{
		ID:                proj.ID,
		Title:             proj.Title,
		Description:       proj.Description,
		Slug:              proj.Slug,
		BusinessAreaID:    businessArea.ID,
		BusinessAreaTitle: businessArea.Title,
		Registry:          settings.NewRegistry(),
	}

	areaRows, err := definition.AreaOverrides(db, businessArea.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "assemble project %d", projectID)
	}

	tree.Settings, err = settings.Gather(tree.Registry, baseDefs, areaOverrides(areaRows))
	if err != nil {
		return nil, errors.Wrapf(err, "business area %q", businessArea.Title)
	}

	tables, err := area.Tables(db, businessArea.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "assemble project %d", projectID)
	}

	for _, tableRow := range tables {
		table, err := assembleTable(db, tree.Registry, baseDefs, tableRow)
		if err != nil {
			return nil, err
		}
		tree.Tables = append(tree.Tables, table)
	}

	return tree, nil
}

func assembleTable(db *gorm.DB, reg *settings.Registry, baseDefs []settings.Definition, row models.NotionalTable) (*Table, error) {
	table := &Table{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
	}

	overrideRows, err := definition.TableOverrides(db, row.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "table %q", row.Title)
	}

	table.Settings, err = settings.Gather(reg, baseDefs, tableOverrides(overrideRows))
	if err != nil {
		return nil, errors.Wrapf(err, "table %q", row.Title)
	}

	fieldRows, err := area.Fields(db, row.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "table %q", row.Title)
	}

	for _, fieldRow := range fieldRows {
		field, err := newField(fieldRow.ID, fieldRow.Title, fieldRow.Description, FieldType(fieldRow.FieldType))
		if err != nil {
			return nil, errors.Wrapf(err, "table %q", row.Title)
		}

		fieldOverrideRows, err := definition.FieldOverrides(db, fieldRow.ID)
		if err != nil {
			return nil, errors.Wrapf(err, "field %q", fieldRow.Title)
		}

		field.Settings, err = settings.Gather(reg, baseDefs, fieldOverrides(fieldOverrideRows))
		if err != nil {
			return nil, errors.Wrapf(err, "field %q", fieldRow.Title)
		}

		table.Fields = append(table.Fields, field)
	}

	return table, nil
}

func definitionsToBase(defs []models.SettingDefinition) []settings.Definition {
	out := make([]settings.Definition, len(defs))
	for i, def := range defs {
		out[i] = settings.Definition{
			ID:          def.ID,
			Title:       def.Title,
			Description: def.Description,
			Group:       def.SettingGroup,
			Type:        def.SettingType,
			Params:      def.Params,
		}
	}
	return out
}

func areaOverrides(rows []models.BusinessAreaSetting) []settings.Override {
	out := make([]settings.Override, len(rows))
	for i, row := range rows {
		out[i] = settings.Override{
			ID:          row.ID,
			SettingID:   row.SettingDefinitionID,
			MachineName: row.MachineName,
			Order:       row.DisplayOrder,
			Params:      row.Params,
		}
	}
	return out
}

func tableOverrides(rows []models.NotionalTableSetting) []settings.Override {
	out := make([]settings.Override, len(rows))
	for i, row := range rows {
		out[i] = settings.Override{
			ID:          row.ID,
			SettingID:   row.SettingDefinitionID,
			MachineName: row.MachineName,
			Order:       row.DisplayOrder,
			Params:      row.Params,
		}
	}
	return out
}

func fieldOverrides(rows []models.FieldSpecSetting) []settings.Override {
	out := make([]settings.Override, len(rows))
	for i, row := range rows {
		out[i] = settings.Override{
			ID:          row.ID,
			SettingID:   row.SettingDefinitionID,
			MachineName: row.MachineName,
			Order:       row.DisplayOrder,
			Params:      row.Params,
		}
	}
	return out
}
