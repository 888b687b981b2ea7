package descriptions

import "github.com/lucidgen/core/version"

// SystemPropertyName is one of the two reserved, generator-managed
// property names every entity may opt into.
type SystemPropertyName string

const (
	SystemPropertyIsSynced       SystemPropertyName = "is_synced"
	SystemPropertyLastRemoteRead SystemPropertyName = "last_remote_read"
)

// ReservedSystemPropertyNames lists every name an [EntityProperty] must
// not collide with.
var ReservedSystemPropertyNames = []SystemPropertyName{
	SystemPropertyIsSynced, SystemPropertyLastRemoteRead,
}

// IsReservedSystemPropertyName reports whether name collides with a
// reserved system property name.
func IsReservedSystemPropertyName(name string) bool {
	for _, r := range ReservedSystemPropertyNames {
		if string(r) == name {
			return true
		}
	}

	return false
}

// SystemProperty is a fixed-shape, reserved property that descriptions/serde
// can synthesize onto an entity (is_synced, last_remote_read). Its
// mutability, nullability, default, and persistence type are fixed per
// name rather than configurable; see the Mutable/Nullable/Default/
// Persistence methods below.
type SystemProperty struct {
	Name            SystemPropertyName
	AddedAtVersion  *version.Version
	UseLegacyNaming bool // set only by the last_remote_read legacy migration
}

type systemPropertyFixed struct {
	mutable     bool
	nullable    bool
	defaultVal  DefaultValue
	persistence PersistenceType
}

var systemPropertyFixedFields = map[SystemPropertyName]systemPropertyFixed{
	SystemPropertyIsSynced: {
		mutable: true, nullable: false,
		defaultVal: NewDefaultValueBool(true), persistence: PersistenceInt64,
	},
	SystemPropertyLastRemoteRead: {
		mutable: true, nullable: true,
		defaultVal: NewDefaultValueNil(), persistence: PersistenceDouble,
	},
}

// Mutable reports whether this system property is mutable.
func (p SystemProperty) Mutable() bool { return systemPropertyFixedFields[p.Name].mutable }

// Nullable reports whether this system property is nullable.
func (p SystemProperty) Nullable() bool { return systemPropertyFixedFields[p.Name].nullable }

// Default returns this system property's fixed default value.
func (p SystemProperty) Default() DefaultValue { return systemPropertyFixedFields[p.Name].defaultVal }

// Persistence returns this system property's fixed persistence type.
func (p SystemProperty) Persistence() PersistenceType {
	return systemPropertyFixedFields[p.Name].persistence
}
