package schema

import (
	"strings"
)

// sqliteTypes maps scalar types to SQLite column types. UInt128 and Uuid
// do not fit a 64-bit INTEGER and are kept as 16-byte blobs.
var sqliteTypes = map[DataTypeRaw]string{
	TypeUInt8:     "INTEGER",
	TypeUInt16:    "INTEGER",
	TypeUInt32:    "INTEGER",
	TypeUInt64:    "INTEGER",
	TypeUInt128:   "BLOB",
	TypeBool:      "BOOLEAN",
	TypeTimestamp: "INTEGER",
	TypeUuid:      "BLOB",
	TypeString:    "TEXT",
}

// SQLiteType returns the SQLite column type for t.
func SQLiteType(t DataTypeRaw) string {
	if s, ok := sqliteTypes[t]; ok {
		return s
	}
	return "BLOB"
}

// SQLiteDDL renders the table as a SQLite CREATE TABLE statement.
// Identifiers are double-quoted so names that are SQLite keywords survive.
func (t *TableDefinition) SQLiteDDL() string {
	var b strings.Builder
	b.WriteString("CREATE TABLE ")
	b.WriteString(quoteIdent(t.name))
	b.WriteString(" (\n")
	for i, c := range t.columns {
		b.WriteString("  ")
		b.WriteString(quoteIdent(c.name))
		b.WriteByte(' ')
		b.WriteString(SQLiteType(c.dataType.Raw))
		if c.primaryKey {
			b.WriteString(" PRIMARY KEY")
		}
		if !c.dataType.IsNullable {
			b.WriteString(" NOT NULL")
		}
		if i < len(t.columns)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString(");")
	return b.String()
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
