package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"tinyDB/internal/sql"
	"tinyDB/internal/sqlerr"
)

// runLocal parses stmt in-process and formats the outcome for the prompt.
func runLocal(stmt string, showSQLite bool) string {
	parsed, err := sql.Parse(stmt)
	if err != nil {
		return formatError(err)
	}

	ct, ok := parsed.(*sql.CreateTableStmt)
	if !ok {
		return fmt.Sprintf("Unsupported statement type: %T", parsed)
	}

	var b strings.Builder
	b.WriteString(ct.Table.String())
	fmt.Fprintf(&b, "\n%d columns, primary key `%s`", ct.Table.NumColumns(), ct.Table.PrimaryKey().Name())
	if ct.IfNotExists {
		b.WriteString(" (if not exists)")
	}
	if showSQLite {
		b.WriteString("\n")
		b.WriteString(ct.Table.SQLiteDDL())
	}
	return b.String()
}

func formatError(err error) string {
	e, ok := sqlerr.As(err)
	if !ok {
		return fmt.Sprintf("Error: %v", err)
	}
	body, jerr := json.Marshal(e)
	if jerr != nil {
		return fmt.Sprintf("Error: %v", err)
	}
	return string(body)
}

type remote struct {
	url  string
	http *http.Client
}

// run POSTs stmt to the server and returns the indented response body.
func (c *remote) run(stmt string) string {
	resp, err := c.http.Post(c.url, "text/plain; charset=utf-8", strings.NewReader(stmt))
	if err != nil {
		return fmt.Sprintf("Failed to send statement: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Sprintf("Failed to read response: %v", err)
	}
	if len(body) == 0 {
		return resp.Status
	}

	var out bytes.Buffer
	if err := json.Indent(&out, body, "", "  "); err != nil {
		return string(body)
	}
	return out.String()
}
