package descriptions

// PersistenceType is the storage representation a ScalarKind maps to.
type PersistenceType string

const (
	PersistenceString PersistenceType = "string"
	PersistenceDouble PersistenceType = "double"
	PersistenceFloat  PersistenceType = "float"
	PersistenceInt64  PersistenceType = "int64"
)

// ScalarKind is one of the fixed set of primitive value types a property
// can hold.
type ScalarKind int

const (
	ScalarString ScalarKind = iota
	ScalarInt
	ScalarDate
	ScalarDouble
	ScalarFloat
	ScalarBool
	ScalarSeconds
	ScalarMilliseconds
	ScalarURL
	ScalarColor
)

type scalarInfo struct {
	surfaceName  string
	persistence  PersistenceType
	objcOptional bool
}

var scalarTable = map[ScalarKind]scalarInfo{
	ScalarString:       {"string", PersistenceString, false},
	ScalarInt:          {"int", PersistenceInt64, false},
	ScalarDate:         {"date", PersistenceDouble, true},
	ScalarDouble:       {"double", PersistenceDouble, false},
	ScalarFloat:        {"float", PersistenceFloat, false},
	ScalarBool:         {"bool", PersistenceInt64, false},
	ScalarSeconds:      {"time", PersistenceDouble, false},
	ScalarMilliseconds: {"milliseconds", PersistenceDouble, false},
	ScalarURL:          {"url", PersistenceString, true},
	ScalarColor:        {"color", PersistenceString, true},
}

// SurfaceName returns the serialization-format spelling of k. Note that
// [ScalarSeconds] encodes as "time", not "seconds", matching the literal
// wire spelling so existing description files keep decoding.
func (k ScalarKind) SurfaceName() string { return scalarTable[k].surfaceName }

// Persistence returns the storage representation k maps to.
func (k ScalarKind) Persistence() PersistenceType { return scalarTable[k].persistence }

// ObjCOptional reports whether k is represented as an Optional in
// generated Objective-C-compatible code (e.g. URL and Color are bridged
// types that are always optional on that platform).
func (k ScalarKind) ObjCOptional() bool { return scalarTable[k].objcOptional }

// ScalarKindFromSurfaceName returns the ScalarKind whose SurfaceName
// matches name, and true, or false if name matches no scalar kind.
func ScalarKindFromSurfaceName(name string) (ScalarKind, bool) {
	for k, info := range scalarTable {
		if info.surfaceName == name {
			return k, true
		}
	}

	return 0, false
}
