package descriptions

import "github.com/lucidgen/core/version"

// EntityProperty is a single field on an [Entity].
type EntityProperty struct {
	Name           string
	Key            string // default = Name
	MatchExactKey  bool
	PreviousName   string
	PersistedName  string
	AddedAtVersion *version.Version
	PropertyType   PropertyType
	Nullable       bool
	DefaultValue   *DefaultValue
	LogError       bool // default true
	UseForEquality bool // default true
	Mutable        bool
	ObjC           bool
	Unused         bool
	Lazy           bool
	Platforms      []Platform
}

// EffectiveKey returns p.Key, defaulting to p.Name when Key was never set
// explicitly (descriptions/serde sets Key = Name at decode time, so this is
// mostly a defensive fallback for hand-built values).
func (p EntityProperty) EffectiveKey() string {
	if p.Key != "" {
		return p.Key
	}

	return p.Name
}

// SubtypeProperty is a single field of a properties-variant [Subtype]. The
// subtype-property invariant requires LogError = true or a non-nil
// DefaultValue; descriptions/serde enforces this at decode time.
type SubtypeProperty struct {
	Name         string
	PropertyType PropertyType
	Nullable     bool
	DefaultValue *DefaultValue
	LogError     bool
	Unused       bool
}

// MetadataProperty is a single field of an [Entity]'s metadata shape.
type MetadataProperty struct {
	Name         string
	PropertyType PropertyType
	Nullable     bool
}
