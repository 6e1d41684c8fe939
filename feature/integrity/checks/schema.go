package checks

import (
	"fmt"
	"reflect"
	"strings"

	"game-catalog/core/database"
	"game-catalog/feature/games/models"

	"gorm.io/gorm"
)

// SchemaReport is the result of comparing the store against the Game model.
type SchemaReport struct {
	Driver  string                 `json:"driver"`
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

type TableReport struct {
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
	Status         string   `json:"status"` // "ok", "error"
}

// CheckSchema verifies the games table using the GORM model as the source of truth.
// Extra columns in the table are allowed.
func CheckSchema(db *gorm.DB) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	model := reflect.TypeOf(models.Game{})
	tableName := models.Game{}.TableName()

	report := &SchemaReport{
		Driver:  db.Dialector.Name(),
		Tables:  make(map[string]TableReport),
		Matched: true,
		Errors:  []string{},
	}

	tbl := TableReport{
		MissingColumns: []string{},
		TypeMismatches: []string{},
		Status:         "ok",
	}

	actualCols, err := database.GetTableColumns(db, tableName)
	if err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", tableName, err))
		report.Matched = false
		return report, nil
	}
	if len(actualCols) == 0 {
		report.Errors = append(report.Errors, fmt.Sprintf("Table %s does not exist", tableName))
	}

	actual := make(map[string]database.ColumnInfo, len(actualCols))
	for _, col := range actualCols {
		actual[col.Field] = col
	}

	for i := 0; i < model.NumField(); i++ {
		tag := model.Field(i).Tag.Get("gorm")

		colName := parseGormColumn(tag)
		if colName == "" {
			continue
		}

		col, exists := actual[colName]
		if !exists {
			tbl.MissingColumns = append(tbl.MissingColumns, colName)
			tbl.Status = "error"
			report.Matched = false
			continue
		}

		// Soft check
		if expType := strings.ToLower(parseGormType(tag)); expType != "" && !typeCompatible(report.Driver, expType, col.Type) {
			tbl.TypeMismatches = append(tbl.TypeMismatches, fmt.Sprintf("%s: expected %s, got %s", colName, expType, col.Type))
			tbl.Status = "error"
			report.Matched = false
		}
	}

	report.Tables[tableName] = tbl
	return report, nil
}

// typeCompatible compares declared column types. sqlite only enforces type
// affinity, so any TEXT-affinity column (CHAR, CLOB or TEXT in the declared
// type) satisfies a varchar or text field there.
func typeCompatible(driver, expected, actual string) bool {
	if strings.Contains(actual, expected) {
		return true
	}
	if driver != database.DriverSQLite {
		return false
	}
	return hasTextAffinity(expected) && hasTextAffinity(actual)
}

func hasTextAffinity(declared string) bool {
	if strings.Contains(declared, "int") {
		return false
	}
	return strings.Contains(declared, "char") || strings.Contains(declared, "clob") || strings.Contains(declared, "text")
}

func parseGormColumn(tag string) string {
	for _, p := range strings.Split(tag, ";") {
		if strings.HasPrefix(p, "column:") {
			return strings.TrimPrefix(p, "column:")
		}
	}
	return ""
}

func parseGormType(tag string) string {
	for _, p := range strings.Split(tag, ";") {
		if strings.HasPrefix(p, "type:") {
			return strings.TrimPrefix(p, "type:")
		}
	}
	return ""
}
