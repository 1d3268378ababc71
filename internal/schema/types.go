package schema

import (
	"fmt"
	"strings"

	"tinyDB/internal/sqlerr"
)

// DataTypeRaw is a scalar column type without nullability.
type DataTypeRaw uint8

const (
	TypeUInt8 DataTypeRaw = iota
	TypeUInt16
	TypeUInt32
	TypeUInt64
	TypeUInt128
	TypeBool
	TypeTimestamp
	TypeUuid
	TypeString
)

var dataTypeNames = [...]string{
	TypeUInt8:     "UInt8",
	TypeUInt16:    "UInt16",
	TypeUInt32:    "UInt32",
	TypeUInt64:    "UInt64",
	TypeUInt128:   "UInt128",
	TypeBool:      "Bool",
	TypeTimestamp: "Timestamp",
	TypeUuid:      "Uuid",
	TypeString:    "String",
}

// dataTypesByLowerName is keyed by the lowercased type name.
var dataTypesByLowerName = func() map[string]DataTypeRaw {
	m := make(map[string]DataTypeRaw, len(dataTypeNames))
	for t, name := range dataTypeNames {
		m[strings.ToLower(name)] = DataTypeRaw(t)
	}
	return m
}()

// AllDataTypes lists every scalar type in declaration order.
func AllDataTypes() []DataTypeRaw {
	out := make([]DataTypeRaw, len(dataTypeNames))
	for i := range dataTypeNames {
		out[i] = DataTypeRaw(i)
	}
	return out
}

// ParseDataTypeRaw maps a type name to its DataTypeRaw, ignoring case.
// Unknown names yield a *sqlerr.StatementValidationError.
func ParseDataTypeRaw(candidate string) (DataTypeRaw, error) {
	if t, ok := dataTypesByLowerName[strings.ToLower(candidate)]; ok {
		return t, nil
	}
	return 0, sqlerr.Validation("`%s` does not refer to a supported type", candidate)
}

func (t DataTypeRaw) String() string {
	if int(t) < len(dataTypeNames) {
		return dataTypeNames[t]
	}
	return fmt.Sprintf("DataTypeRaw(%d)", uint8(t))
}

// DataType is a scalar type together with its nullability, as written in
// a column definition: `UInt64` or `NULLABLE(UInt64)`.
type DataType struct {
	Raw        DataTypeRaw
	IsNullable bool
}

func (t DataType) String() string {
	if t.IsNullable {
		return "NULLABLE(" + t.Raw.String() + ")"
	}
	return t.Raw.String()
}
