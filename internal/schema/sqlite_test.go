package schema

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

// TestSQLiteDDL_Accepted creates the rendered table in an in-memory SQLite
// database and reads the schema back through PRAGMA table_info.
func TestSQLiteDDL_Accepted(t *testing.T) {
	spec := usersSpec()
	spec.Columns = append(spec.Columns,
		col("select", TypeUuid, false, false),
		col("weird\"name", TypeUInt128, true, false),
	)
	table, err := Validate(spec)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(table.SQLiteDDL()); err != nil {
		t.Fatalf("exec DDL failed: %v\n%s", err, table.SQLiteDDL())
	}

	rows, err := db.Query(`PRAGMA table_info("users")`)
	if err != nil {
		t.Fatalf("table_info: %v", err)
	}
	defer rows.Close()

	type info struct {
		name    string
		typ     string
		notNull bool
		pk      bool
	}
	var got []info
	for rows.Next() {
		var (
			cid     int
			i       info
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &i.name, &i.typ, &notNull, &dflt, &pk); err != nil {
			t.Fatalf("scan: %v", err)
		}
		i.notNull = notNull == 1
		i.pk = pk > 0
		got = append(got, i)
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("rows: %v", err)
	}

	want := []info{
		{"id", "INTEGER", true, true},
		{"name", "TEXT", true, false},
		{"age", "INTEGER", false, false},
		{"select", "BLOB", true, false},
		{"weird\"name", "BLOB", false, false},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d columns, got %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("column %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}
