package descriptions

import (
	"sort"

	"github.com/lucidgen/core/version"
)

// EntityCacheSizeKind discriminates the [EntityCacheSize] sum type.
type EntityCacheSizeKind int

const (
	EntityCacheSizeGroup EntityCacheSizeKind = iota
	EntityCacheSizeFixed
)

// CacheSizeGroup names a pre-set cache size bucket.
type CacheSizeGroup int

const (
	CacheSizeSmall CacheSizeGroup = iota
	CacheSizeMedium
	CacheSizeLarge
)

// groupCounts gives each [CacheSizeGroup] a concrete item count that any
// generator sizing an actual LRU cache needs.
var groupCounts = map[CacheSizeGroup]int{
	CacheSizeSmall:  50,
	CacheSizeMedium: 500,
	CacheSizeLarge:  5000,
}

// EntityCacheSize is the sum type for how large an entity's in-memory
// cache should be: a named group, or a fixed count.
type EntityCacheSize struct {
	Kind  EntityCacheSizeKind
	Group CacheSizeGroup
	Fixed int
}

// DefaultEntityCacheSize is the default cache size (group medium) applied
// when the input omits cache_size.
func DefaultEntityCacheSize() EntityCacheSize {
	return EntityCacheSize{Kind: EntityCacheSizeGroup, Group: CacheSizeMedium}
}

func NewEntityCacheSizeGroup(g CacheSizeGroup) EntityCacheSize {
	return EntityCacheSize{Kind: EntityCacheSizeGroup, Group: g}
}

func NewEntityCacheSizeFixed(n int) EntityCacheSize {
	return EntityCacheSize{Kind: EntityCacheSizeFixed, Fixed: n}
}

// Count returns the concrete item count this cache size resolves to.
func (c EntityCacheSize) Count() int {
	if c.Kind == EntityCacheSizeFixed {
		return c.Fixed
	}

	return groupCounts[c.Group]
}

// VersionHistoryItem records one point in an entity's schema evolution:
// the version it was introduced in and the migration behavior to apply
// when moving across it.
type VersionHistoryItem struct {
	Version                         version.Version
	PreviousName                    string
	IgnoreMigrationChecks           bool
	IgnorePropertyMigrationChecksOn []string
}

// Entity is a persistable domain object description.
type Entity struct {
	Name                  string
	PersistedName         string
	Platforms             []Platform
	Remote                bool // default true
	Persist               bool // default false
	Identifier            EntityIdentifier
	Metadata              []MetadataProperty // nil means void/absent
	Properties            []EntityProperty   // sorted by name
	SystemProperties      []SystemProperty   // sorted by canonical name
	IdentifierTypeID      string
	LegacyPreviousName    string
	LegacyAddedAtVersion  *version.Version
	VersionHistory        []VersionHistoryItem
	QueryContext          string
	ClientQueueName       string
	CacheSize             EntityCacheSize
	Sendable              bool
}

// SortProperties sorts e.Properties by name and e.SystemProperties by
// canonical system-property name, in place.
func (e *Entity) SortProperties() {
	sort.Slice(e.Properties, func(i, j int) bool { return e.Properties[i].Name < e.Properties[j].Name })
	sort.Slice(e.SystemProperties, func(i, j int) bool {
		return e.SystemProperties[i].Name < e.SystemProperties[j].Name
	})
}

// AddedAtVersion returns the version e was first added at: the version of
// the first version-history item if any exist, otherwise
// LegacyAddedAtVersion, otherwise nil.
func (e Entity) AddedAtVersion() *version.Version {
	if len(e.VersionHistory) > 0 {
		v := e.VersionHistory[0].Version
		return &v
	}

	return e.LegacyAddedAtVersion
}

// HasSystemProperty reports whether e declares the named system property.
func (e Entity) HasSystemProperty(name SystemPropertyName) bool {
	for _, sp := range e.SystemProperties {
		if sp.Name == name {
			return true
		}
	}

	return false
}
