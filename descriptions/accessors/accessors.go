package accessors

import (
	"sort"
	"strings"

	"github.com/lucidgen/core/descriptions"
	"github.com/lucidgen/core/descriptions/descerr"
	"github.com/lucidgen/core/version"
)

// UsedProperties returns e's properties with Unused = false.
func UsedProperties(e descriptions.Entity) []descriptions.EntityProperty {
	out := make([]descriptions.EntityProperty, 0, len(e.Properties))

	for _, p := range e.Properties {
		if !p.Unused {
			out = append(out, p)
		}
	}

	return out
}

// Values returns e's used properties that are not relationships.
func Values(e descriptions.Entity) []descriptions.EntityProperty {
	var out []descriptions.EntityProperty

	for _, p := range UsedProperties(e) {
		if !p.PropertyType.IsRelationship() {
			out = append(out, p)
		}
	}

	return out
}

// Relationships returns e's used properties that are relationships.
func Relationships(e descriptions.Entity) []descriptions.EntityProperty {
	var out []descriptions.EntityProperty

	for _, p := range UsedProperties(e) {
		if p.PropertyType.IsRelationship() {
			out = append(out, p)
		}
	}

	return out
}

// ValuesThenRelationships concatenates [Values] then [Relationships].
func ValuesThenRelationships(e descriptions.Entity) []descriptions.EntityProperty {
	out := Values(e)
	return append(out, Relationships(e)...)
}

// OrderedProperty is one element of
// [ValuesThenRelationshipsThenSystemProperties]: either an entity
// property or a system property, never both. Modeled as a small sum
// rather than a common interface since the two underlying types share no
// behavior beyond a name.
type OrderedProperty struct {
	Property *descriptions.EntityProperty
	System   *descriptions.SystemProperty
}

// Name returns the property's name, regardless of which variant is set.
func (p OrderedProperty) Name() string {
	if p.Property != nil {
		return p.Property.Name
	}

	if p.System != nil {
		return string(p.System.Name)
	}

	return ""
}

// ValuesThenRelationshipsThenSystemProperties concatenates
// [ValuesThenRelationships] with e's system properties, in that order.
func ValuesThenRelationshipsThenSystemProperties(e descriptions.Entity) []OrderedProperty {
	vr := ValuesThenRelationships(e)
	out := make([]OrderedProperty, 0, len(vr)+len(e.SystemProperties))

	for i := range vr {
		out = append(out, OrderedProperty{Property: &vr[i]})
	}

	for i := range e.SystemProperties {
		out = append(out, OrderedProperty{System: &e.SystemProperties[i]})
	}

	return out
}

func findProperty(e *descriptions.Entity, name string) (descriptions.EntityProperty, bool) {
	for _, p := range e.Properties {
		if p.Name == name {
			return p, true
		}
	}

	return descriptions.EntityProperty{}, false
}

func relationshipTargets(e descriptions.Entity, includeIDOnly bool) []string {
	var out []string

	for _, p := range UsedProperties(e) {
		if !p.PropertyType.IsRelationship() {
			continue
		}

		if p.PropertyType.Relationship.IDOnly && !includeIDOnly {
			continue
		}

		out = append(out, p.PropertyType.Relationship.EntityName)
	}

	return out
}

// ExtractablePropertyEntities performs a depth-first traversal from
// entity through properties that are relationships with IDOnly = false,
// visiting each relationship target at most once, and returns the sorted
// unique set of every entity name visited, including entity itself.
func ExtractablePropertyEntities(d *descriptions.Descriptions, entity *descriptions.Entity) ([]string, error) {
	visited := map[string]bool{entity.Name: true}

	var walk func(e *descriptions.Entity) error

	walk = func(e *descriptions.Entity) error {
		for _, target := range relationshipTargets(*e, false) {
			if visited[target] {
				continue
			}

			visited[target] = true

			te, err := d.Entity(target)
			if err != nil {
				return err
			}

			if err := walk(te); err != nil {
				return err
			}
		}

		return nil
	}

	if err := walk(entity); err != nil {
		return nil, err
	}

	out := make([]string, 0, len(visited))
	for name := range visited {
		out = append(out, name)
	}

	sort.Strings(out)

	return out, nil
}

// HasRelationshipLoop reports whether entity's relationship graph (every
// relationship, including id-only ones) revisits a name already seen in
// this traversal.
func HasRelationshipLoop(d *descriptions.Descriptions, entity *descriptions.Entity) bool {
	visited := map[string]bool{}
	loop := false

	var walk func(name string)

	walk = func(name string) {
		if visited[name] {
			loop = true
			return
		}

		visited[name] = true

		e, err := d.Entity(name)
		if err != nil {
			return
		}

		for _, target := range relationshipTargets(*e, true) {
			walk(target)
		}
	}

	walk(entity.Name)

	return loop
}

// HasAnyLazy reports whether entity has any lazy property, or any
// non-id-only relationship target (transitively) does, memoizing results
// by entity name in memo to terminate on cycles.
func HasAnyLazy(d *descriptions.Descriptions, entity *descriptions.Entity, memo map[string]bool) bool {
	if v, ok := memo[entity.Name]; ok {
		return v
	}

	memo[entity.Name] = false

	result := false

	for _, p := range UsedProperties(*entity) {
		if p.Lazy {
			result = true
			break
		}
	}

	if !result {
		for _, target := range relationshipTargets(*entity, false) {
			te, err := d.Entity(target)
			if err != nil {
				continue
			}

			if HasAnyLazy(d, te, memo) {
				result = true
				break
			}
		}
	}

	memo[entity.Name] = result

	return result
}

// PropertyRelationshipPair is one property-and-its-relationship pair
// pointing at a given target entity.
type PropertyRelationshipPair struct {
	Property     descriptions.EntityProperty
	Relationship descriptions.Relationship
}

// RelationshipsForIdentifierDerivation maps each relationship target
// entity name to the list of (property, relationship) pairs on entity
// that point at it.
func RelationshipsForIdentifierDerivation(
	entity *descriptions.Entity,
) map[string][]PropertyRelationshipPair {
	out := map[string][]PropertyRelationshipPair{}

	for _, p := range entity.Properties {
		if !p.PropertyType.IsRelationship() {
			continue
		}

		rel := p.PropertyType.Relationship
		out[rel.EntityName] = append(out[rel.EntityName], PropertyRelationshipPair{Property: p, Relationship: rel})
	}

	return out
}

// RelationshipIDs computes the [descriptions.RelationshipID] list implied
// by entity's identifier:
//
//   - void or scalar -> empty
//   - property(p) where p is a relationship -> one RelationshipID
//     resolving through d to the target entity's canonical name
//   - property(p) otherwise -> empty
//   - property(p) where entity has no property p -> PropertyNotFound error
//   - relationships(_, ids) -> ids, as-is
func RelationshipIDs(
	d *descriptions.Descriptions, entity *descriptions.Entity, ident descriptions.EntityIdentifier,
) ([]descriptions.RelationshipID, error) {
	switch ident.IdentifierType.Kind {
	case descriptions.IdentifierTypeRelationships:
		return ident.IdentifierType.RelationshipIDs, nil
	case descriptions.IdentifierTypeProperty:
		p, ok := findProperty(entity, ident.IdentifierType.PropertyName)
		if !ok {
			return nil, descerr.NewPropertyNotFound(entity.Name, ident.IdentifierType.PropertyName)
		}

		if !p.PropertyType.IsRelationship() {
			return nil, nil
		}

		target, err := d.Entity(p.PropertyType.Relationship.EntityName)
		if err != nil {
			return nil, err
		}

		return []descriptions.RelationshipID{
			{EntityName: target.Name, ToIdentifierName: target.Identifier.Key},
		}, nil
	default:
		return nil, nil
	}
}

// EquivalentIdentifierTypeID resolves entity's
// EntityIdentifier.IdentifierTypeID equivalent: entity.Identifier's
// EquivalentIdentifierName resolved through d if set; otherwise, for a
// property(p) identifier where p is a relationship, the target entity's
// IdentifierTypeID; otherwise ("", false).
func EquivalentIdentifierTypeID(d *descriptions.Descriptions, entity *descriptions.Entity) (string, bool) {
	ident := entity.Identifier

	if ident.EquivalentIdentifierName != "" {
		target, err := d.Entity(ident.EquivalentIdentifierName)
		if err != nil {
			return "", false
		}

		return target.IdentifierTypeID, true
	}

	if ident.IdentifierType.Kind != descriptions.IdentifierTypeProperty {
		return "", false
	}

	p, ok := findProperty(entity, ident.IdentifierType.PropertyName)
	if !ok || !p.PropertyType.IsRelationship() {
		return "", false
	}

	target, err := d.Entity(p.PropertyType.Relationship.EntityName)
	if err != nil {
		return "", false
	}

	return target.IdentifierTypeID, true
}

// VersionRange is a half-open [From, To] span during which a named
// property's migration checks were ignored.
type VersionRange struct {
	From version.Version
	To   version.Version
}

// IgnoredVersionRangesByPropertyName folds entity's version history into a
// map from property name to the list of version ranges during which that
// property's migration checks were ignored. Fails with
// [descerr.KindEntityAddedAtVersionNotFound] if entity has no effective
// added-at version.
func IgnoredVersionRangesByPropertyName(entity *descriptions.Entity) (map[string][]VersionRange, error) {
	added := entity.AddedAtVersion()
	if added == nil {
		return nil, descerr.NewEntityAddedAtVersionNotFound(entity.Name)
	}

	out := map[string][]VersionRange{}
	from := *added

	for _, item := range entity.VersionHistory {
		for _, name := range item.IgnorePropertyMigrationChecksOn {
			out[name] = append(out[name], VersionRange{From: from, To: item.Version})
		}

		from = item.Version
	}

	return out, nil
}

// AddedAtVersion returns entity's effective added-at version: the first
// version_history entry's version, or LegacyAddedAtVersion, or nil.
func AddedAtVersion(entity *descriptions.Entity) *version.Version {
	return entity.AddedAtVersion()
}

// NameForVersion returns the name entity was known by at v: if entity has
// no version history, its current name; otherwise the PreviousName of the
// earliest history item whose Version is strictly greater than v and
// which sets PreviousName, or entity's current name if none qualifies.
func NameForVersion(entity *descriptions.Entity, v version.Version) string {
	if len(entity.VersionHistory) == 0 {
		return entity.Name
	}

	var best *descriptions.VersionHistoryItem

	for i := range entity.VersionHistory {
		item := &entity.VersionHistory[i]
		if item.Version.Compare(v) <= 0 || item.PreviousName == "" {
			continue
		}

		if best == nil || item.Version.Less(best.Version) {
			best = item
		}
	}

	if best == nil {
		return entity.Name
	}

	return best.PreviousName
}

// PreviousNameForCoreData returns the PreviousName of entity's first
// version-history item that sets one, and true, or ("", false) if none
// does.
func PreviousNameForCoreData(entity *descriptions.Entity) (string, bool) {
	for _, item := range entity.VersionHistory {
		if item.PreviousName != "" {
			return item.PreviousName, true
		}
	}

	return "", false
}

// InitializerKind classifies how a [descriptions.ReadWriteEndpointPayload]
// constructs its entity value out of the raw payload body.
type InitializerKind int

const (
	InitFromSubkey InitializerKind = iota
	MapFromSubstruct
	InitFromKey
	InitFromRoot
)

// Initializer is the result of [InitializerType]: a kind plus, for
// [InitFromRoot], the entity key to read the value from directly off the
// payload root.
type Initializer struct {
	Kind      InitializerKind
	EntityKey string
}

// InitializerType classifies p's (base_key?, entity.entity_key?,
// entity.structure) triple into the initializer shape a generator should
// emit.
func InitializerType(p *descriptions.ReadWriteEndpointPayload) Initializer {
	hasBaseKey := p.BaseKey != nil
	hasEntityKey := p.Entity.EntityKey != ""

	switch {
	case hasBaseKey && hasEntityKey && p.Entity.Structure == descriptions.EndpointEntityNestedArray:
		return Initializer{Kind: MapFromSubstruct}
	case hasBaseKey && hasEntityKey:
		return Initializer{Kind: InitFromSubkey}
	case hasBaseKey:
		return Initializer{Kind: InitFromKey}
	default:
		return Initializer{Kind: InitFromRoot, EntityKey: p.Entity.EntityKey}
	}
}

// AllExcludedPaths returns p.ExcludedPaths plus, for every excluded path
// whose first dotted component equals p.Entity.EntityName, a rewritten
// path rooted at p's base_key/entity_key prefix.
func AllExcludedPaths(p *descriptions.ReadWriteEndpointPayload) []string {
	out := append([]string{}, p.ExcludedPaths...)

	var rootParts []string

	if p.BaseKey != nil {
		rootParts = append(rootParts, p.BaseKey.Parts()...)
	}

	if p.Entity.EntityKey != "" {
		rootParts = append(rootParts, p.Entity.EntityKey)
	}

	rootPrefix := strings.Join(rootParts, ".")
	if rootPrefix == "" {
		return out
	}

	for _, path := range p.ExcludedPaths {
		root, rest, ok := splitFirstDot(path)
		if !ok || root != p.Entity.EntityName {
			continue
		}

		out = append(out, rootPrefix+"."+rest)
	}

	return out
}

func splitFirstDot(s string) (root, rest string, ok bool) {
	i := strings.IndexByte(s, '.')
	if i < 0 {
		return "", "", false
	}

	return s[:i], s[i+1:], true
}

// HasVoidMetadata reports whether entity's metadata is nil and every
// relationship property either is id-only or its target (excluding names
// already present in visited, to tolerate cycles) itself has void
// metadata. Callers should pass a fresh map and reuse it across the
// traversal; HasVoidMetadata mutates it.
func HasVoidMetadata(d *descriptions.Descriptions, entity *descriptions.Entity, visited map[string]bool) bool {
	if entity.Metadata != nil {
		return false
	}

	if visited == nil {
		visited = map[string]bool{}
	}

	if visited[entity.Name] {
		return true
	}

	visited[entity.Name] = true

	for _, p := range entity.Properties {
		if !p.PropertyType.IsRelationship() {
			continue
		}

		rel := p.PropertyType.Relationship
		if rel.IDOnly || visited[rel.EntityName] {
			continue
		}

		target, err := d.Entity(rel.EntityName)
		if err != nil {
			return false
		}

		if !HasVoidMetadata(d, target, visited) {
			return false
		}
	}

	return true
}
