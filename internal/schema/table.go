package schema

import (
	"encoding/json"
	"strings"

	"tinyDB/internal/sqlerr"
)

// ColumnSpec is a column exactly as the grammar produced it.
type ColumnSpec struct {
	Name       string
	DataType   DataType
	PrimaryKey bool
}

// TableSpec is a CREATE TABLE body exactly as the grammar produced it.
// Nothing beyond its shape has been checked yet; call Validate.
type TableSpec struct {
	Name    string
	Columns []ColumnSpec
}

// Validate is shorthand for schema.Validate(s).
func (s TableSpec) Validate() (*TableDefinition, error) {
	return Validate(s)
}

// ColumnDefinition is a column of a validated table.
type ColumnDefinition struct {
	name       string
	dataType   DataType
	primaryKey bool
}

func (c ColumnDefinition) Name() string       { return c.name }
func (c ColumnDefinition) DataType() DataType { return c.dataType }
func (c ColumnDefinition) PrimaryKey() bool   { return c.primaryKey }

// TableDefinition is a table schema that has passed Validate. It is never
// modified afterwards and is safe to share between goroutines.
type TableDefinition struct {
	name            string
	columns         []ColumnDefinition
	primaryKeyIndex int
}

func (t *TableDefinition) Name() string { return t.name }

// Columns returns a copy of the columns in declaration order.
func (t *TableDefinition) Columns() []ColumnDefinition {
	out := make([]ColumnDefinition, len(t.columns))
	copy(out, t.columns)
	return out
}

func (t *TableDefinition) NumColumns() int               { return len(t.columns) }
func (t *TableDefinition) Column(i int) ColumnDefinition { return t.columns[i] }
func (t *TableDefinition) PrimaryKeyIndex() int          { return t.primaryKeyIndex }
func (t *TableDefinition) PrimaryKey() ColumnDefinition  { return t.columns[t.primaryKeyIndex] }

// ColumnIndex returns the position of the named column, or -1.
func (t *TableDefinition) ColumnIndex(name string) int {
	for i, c := range t.columns {
		if c.name == name {
			return i
		}
	}
	return -1
}

// Equal reports whether two validated tables describe the same schema.
func (t *TableDefinition) Equal(other *TableDefinition) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.name != other.name || t.primaryKeyIndex != other.primaryKeyIndex || len(t.columns) != len(other.columns) {
		return false
	}
	for i := range t.columns {
		if t.columns[i] != other.columns[i] {
			return false
		}
	}
	return true
}

// String renders the table as a statement that parses back to an equal table.
func (t *TableDefinition) String() string {
	var b strings.Builder
	b.WriteString("CREATE TABLE ")
	b.WriteString(t.name)
	b.WriteString(" (")
	for i, c := range t.columns {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c.name)
		b.WriteByte(' ')
		b.WriteString(c.dataType.String())
		if c.primaryKey {
			b.WriteString(" PRIMARY KEY")
		}
	}
	b.WriteByte(')')
	return b.String()
}

type columnJSON struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	Nullable   bool   `json:"nullable"`
	PrimaryKey bool   `json:"primary_key"`
}

type tableJSON struct {
	Name            string       `json:"name"`
	Columns         []columnJSON `json:"columns"`
	PrimaryKeyIndex int          `json:"primary_key_index"`
}

func (t *TableDefinition) MarshalJSON() ([]byte, error) {
	out := tableJSON{
		Name:            t.name,
		Columns:         make([]columnJSON, len(t.columns)),
		PrimaryKeyIndex: t.primaryKeyIndex,
	}
	for i, c := range t.columns {
		out.Columns[i] = columnJSON{
			Name:       c.name,
			Type:       c.dataType.Raw.String(),
			Nullable:   c.dataType.IsNullable,
			PrimaryKey: c.primaryKey,
		}
	}
	return json.Marshal(out)
}

func validateColumn(c ColumnSpec) *sqlerr.StatementValidationError {
	if c.Name == "" {
		return sqlerr.Validation("A column must have a name")
	}
	return nil
}

// Validate checks a parsed table against the schema rules and returns the
// validated definition. The checks run in a fixed order so the reported
// problem is always the first one in declaration order:
//
//  1. the table has a name
//  2. the table has at least one column
//  3. per column: its name is not a duplicate, then the column itself is valid
//  4. exactly one column is the primary key
//
// The argument is not modified.
func Validate(spec TableSpec) (*TableDefinition, error) {
	if spec.Name == "" {
		return nil, sqlerr.Validation("A table must have a name")
	}
	if len(spec.Columns) == 0 {
		return nil, sqlerr.Validation("A table must have at least one column")
	}

	seen := make(map[string]struct{}, len(spec.Columns))
	primaryKeyCount := 0
	primaryKeyIndex := -1
	for i, c := range spec.Columns {
		if _, dup := seen[c.Name]; dup {
			return nil, sqlerr.Validation("Problem at column %d: There is more than one column with name `%s` in table definition", i+1, c.Name)
		}
		seen[c.Name] = struct{}{}
		if err := validateColumn(c); err != nil {
			return nil, sqlerr.Validation("Problem at column %d: %s", i+1, err.Message)
		}
		if c.PrimaryKey {
			primaryKeyCount++
			primaryKeyIndex = i
		}
	}
	if primaryKeyCount != 1 {
		return nil, sqlerr.Validation("A table must have exactly 1 PRIMARY KEY column, not %d", primaryKeyCount)
	}

	columns := make([]ColumnDefinition, len(spec.Columns))
	for i, c := range spec.Columns {
		columns[i] = ColumnDefinition{name: c.Name, dataType: c.DataType, primaryKey: c.PrimaryKey}
	}
	return &TableDefinition{
		name:            spec.Name,
		columns:         columns,
		primaryKeyIndex: primaryKeyIndex,
	}, nil
}
