package schema

import (
	"strconv"

	"github.com/google/uuid"
	"lukechampine.com/uint128"

	"tinyDB/internal/sqlerr"
)

// RawValue is a single scalar value carrying its native width.
// The set of implementations is closed.
type RawValue interface {
	Type() DataTypeRaw
	String() string
	rawValue()
}

type (
	UInt8Value     uint8
	UInt16Value    uint16
	UInt32Value    uint32
	UInt64Value    uint64
	UInt128Value   uint128.Uint128
	BoolValue      bool
	TimestampValue int64 // seconds since the Unix epoch
	UuidValue      uuid.UUID
	StringValue    string
)

func (UInt8Value) Type() DataTypeRaw     { return TypeUInt8 }
func (UInt16Value) Type() DataTypeRaw    { return TypeUInt16 }
func (UInt32Value) Type() DataTypeRaw    { return TypeUInt32 }
func (UInt64Value) Type() DataTypeRaw    { return TypeUInt64 }
func (UInt128Value) Type() DataTypeRaw   { return TypeUInt128 }
func (BoolValue) Type() DataTypeRaw      { return TypeBool }
func (TimestampValue) Type() DataTypeRaw { return TypeTimestamp }
func (UuidValue) Type() DataTypeRaw      { return TypeUuid }
func (StringValue) Type() DataTypeRaw    { return TypeString }

func (v UInt8Value) String() string     { return strconv.FormatUint(uint64(v), 10) }
func (v UInt16Value) String() string    { return strconv.FormatUint(uint64(v), 10) }
func (v UInt32Value) String() string    { return strconv.FormatUint(uint64(v), 10) }
func (v UInt64Value) String() string    { return strconv.FormatUint(uint64(v), 10) }
func (v UInt128Value) String() string   { return uint128.Uint128(v).String() }
func (v BoolValue) String() string      { return strconv.FormatBool(bool(v)) }
func (v TimestampValue) String() string { return strconv.FormatInt(int64(v), 10) }
func (v UuidValue) String() string      { return uuid.UUID(v).String() }
func (v StringValue) String() string    { return strconv.Quote(string(v)) }

func (UInt8Value) rawValue()     {}
func (UInt16Value) rawValue()    {}
func (UInt32Value) rawValue()    {}
func (UInt64Value) rawValue()    {}
func (UInt128Value) rawValue()   {}
func (BoolValue) rawValue()      {}
func (TimestampValue) rawValue() {}
func (UuidValue) rawValue()      {}
func (StringValue) rawValue()    {}

// InstanceKind tells how a DataInstance relates to column nullability.
type InstanceKind uint8

const (
	// KindDirect is a value stored in a non-nullable column.
	KindDirect InstanceKind = iota
	// KindNullable is a present value stored in a nullable column.
	KindNullable
	// KindNull is the absence of a value in a nullable column.
	KindNull
)

func (k InstanceKind) String() string {
	switch k {
	case KindDirect:
		return "direct"
	case KindNullable:
		return "nullable"
	case KindNull:
		return "null"
	default:
		return "InstanceKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// DataInstance is one cell as seen by a storage layer.
//
// The instance alone does not know which column it belongs to; whoever
// stores it must call Check against the column's declared DataType.
type DataInstance struct {
	kind  InstanceKind
	value RawValue
}

// Direct wraps a value destined for a non-nullable column.
func Direct(v RawValue) DataInstance { return DataInstance{kind: KindDirect, value: v} }

// Nullable wraps a present value destined for a nullable column.
func Nullable(v RawValue) DataInstance { return DataInstance{kind: KindNullable, value: v} }

// Null is the absent value of a nullable column.
func Null() DataInstance { return DataInstance{kind: KindNull} }

func (d DataInstance) Kind() InstanceKind { return d.kind }

// Value returns the wrapped value; ok is false for Null.
func (d DataInstance) Value() (v RawValue, ok bool) {
	if d.kind == KindNull || d.value == nil {
		return nil, false
	}
	return d.value, true
}

func (d DataInstance) String() string {
	switch d.kind {
	case KindNull:
		return "NULL"
	case KindDirect, KindNullable:
		if d.value == nil {
			return "<missing>"
		}
		return d.value.String()
	default:
		return d.kind.String()
	}
}

// Check reports whether the instance may be stored in a column of type dt.
func (d DataInstance) Check(dt DataType) error {
	switch d.kind {
	case KindNull:
		if !dt.IsNullable {
			return sqlerr.Validation("NULL cannot be stored in a non-nullable %s column", dt)
		}
		return nil
	case KindDirect:
		if dt.IsNullable {
			return sqlerr.Validation("A value for a %s column must be nullable-wrapped", dt)
		}
	case KindNullable:
		if !dt.IsNullable {
			return sqlerr.Validation("A nullable-wrapped value cannot be stored in a non-nullable %s column", dt)
		}
	default:
		return sqlerr.Validation("Unknown data instance kind %s", d.kind)
	}
	if d.value == nil {
		return sqlerr.Validation("A %s value is missing its payload", d.kind)
	}
	if d.value.Type() != dt.Raw {
		return sqlerr.Validation("Expected a %s value, got %s", dt.Raw, d.value.Type())
	}
	return nil
}
