package sql

import (
	"encoding/json"

	"tinyDB/internal/schema"
)

// Statement is the common interface for all SQL statements.
type Statement interface {
	stmtNode()
}

// CreateTableStmt represents a parsed and validated CREATE TABLE statement.
type CreateTableStmt struct {
	IfNotExists bool
	Table       *schema.TableDefinition
}

func (*CreateTableStmt) stmtNode() {}

func (s *CreateTableStmt) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Statement   string                  `json:"statement"`
		IfNotExists bool                    `json:"if_not_exists"`
		Table       *schema.TableDefinition `json:"table"`
	}{"create_table", s.IfNotExists, s.Table})
}
