package serde

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/lucidgen/core/descriptions"
	"github.com/lucidgen/core/descriptions/descerr"
	"github.com/lucidgen/core/version"
)

// Decode parses data (YAML or JSON -- the latter is a subset of the
// former) into a [descriptions.Descriptions] tree, applying every
// defaulting, legacy-alias, and cross-field validation rule the format
// requires.
func Decode(data []byte) (*descriptions.Descriptions, error) {
	var raw obj

	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("serde: %w", err)
	}

	subtypes, err := decodeSubtypes(objSliceField(raw, k("subtypes")...))
	if err != nil {
		return nil, err
	}

	entities, err := decodeEntities(objSliceField(raw, k("entities")...))
	if err != nil {
		return nil, err
	}

	endpoints, err := decodeEndpoints(objSliceField(raw, k("endpoints")...))
	if err != nil {
		return nil, err
	}

	targets, err := decodeTargets(raw)
	if err != nil {
		return nil, err
	}

	v, err := decodeVersion(raw)
	if err != nil {
		return nil, err
	}

	d := &descriptions.Descriptions{
		Subtypes:  subtypes,
		Entities:  entities,
		Endpoints: endpoints,
		Targets:   targets,
		Version:   v,
	}

	resolveRelationshipIdentifierTargets(d)

	return d, nil
}

// resolveRelationshipIdentifierTargets fills in the ToIdentifierName of
// every identifier-derived [descriptions.RelationshipID] now that the
// full aggregate (and its name index) is available. The wire format only
// carries the target entity name
// ("derived_from_relationships ... is present as a list of entity
// names"); the identifying key on that target is not nameable until the
// aggregate exists, so this is deferred to a post-pass rather than
// resolved during the per-entity decode above.
func resolveRelationshipIdentifierTargets(d *descriptions.Descriptions) {
	for i := range d.Entities {
		ids := d.Entities[i].Identifier.IdentifierType.RelationshipIDs
		for j := range ids {
			target, err := d.Entity(ids[j].EntityName)
			if err != nil {
				continue
			}

			ids[j].ToIdentifierName = target.Identifier.Key
		}
	}
}

func decodeVersion(raw obj) (version.Version, error) {
	s, ok := strFieldPtr(raw, k("version")...)
	if !ok || s == "" {
		return version.Zero(), nil
	}

	return version.Parse(s, version.SourceDescription)
}

func decodeTargets(raw obj) (descriptions.Targets, error) {
	items := objSliceField(raw, k("targets")...)

	out := descriptions.Targets{
		App:            descriptions.Target{Name: descriptions.TargetApp},
		AppTests:       descriptions.Target{Name: descriptions.TargetAppTests},
		AppTestSupport: descriptions.Target{Name: descriptions.TargetAppTestSupport},
	}

	for _, it := range items {
		t := descriptions.Target{
			Name:       descriptions.TargetName(strField(it, "", k("name")...)),
			ModuleName: strField(it, "", k("module_name")...),
			OutputPath: strField(it, "", k("output_path")...),
			IsSelected: boolField(it, false, k("is_selected")...),
		}

		switch t.Name {
		case descriptions.TargetApp:
			out.App = t
		case descriptions.TargetAppTests:
			out.AppTests = t
		case descriptions.TargetAppTestSupport:
			out.AppTestSupport = t
		}
	}

	return out, nil
}

func decodePlatforms(o obj) []descriptions.Platform {
	raw := strSliceField(o, k("platforms")...)
	if raw == nil {
		return nil
	}

	out := make([]descriptions.Platform, 0, len(raw))
	for _, p := range raw {
		out = append(out, descriptions.Platform(p))
	}

	return descriptions.SortedPlatforms(out)
}

// --- Subtypes ---

func decodeSubtypes(items []obj) ([]descriptions.Subtype, error) {
	out := make([]descriptions.Subtype, 0, len(items))

	for _, it := range items {
		s, err := decodeSubtype(it)
		if err != nil {
			return nil, err
		}

		out = append(out, s)
	}

	return out, nil
}

func decodeSubtype(o obj) (descriptions.Subtype, error) {
	name := strField(o, "", k("name")...)

	items, err := decodeSubtypeItems(o)
	if err != nil {
		return descriptions.Subtype{}, err
	}

	return descriptions.Subtype{
		Name:                  name,
		Items:                 items,
		ManualImplementations: strSliceField(o, k("manual_implementations")...),
		ObjC:                  boolField(o, false, k("objc")...),
		Platforms:             decodePlatforms(o),
	}, nil
}

func decodeSubtypeItems(o obj) (descriptions.SubtypeItems, error) {
	if v, ok := field(o, k("cases")...); ok {
		return decodeSubtypeCases(v)
	}

	if v, ok := field(o, k("options")...); ok {
		return decodeSubtypeOptions(v)
	}

	if v, ok := field(o, k("properties")...); ok {
		return decodeSubtypeItemsProperties(v)
	}

	return descriptions.SubtypeItems{}, descerr.NewDataCorrupted("subtype has none of cases/options/properties")
}

func decodeSubtypeCases(v any) (descriptions.SubtypeItems, error) {
	if list, ok := asSlice(v); ok {
		return descriptions.NewSubtypeItemsCases(toStrings(list), nil, ""), nil
	}

	m, ok := asObj(v)
	if !ok {
		return descriptions.SubtypeItems{}, descerr.NewDataCorrupted("cases")
	}

	used := strSliceField(m, k("used")...)
	unused := strSliceField(m, k("unused")...)
	objcNone := strField(m, "", k("objc_none_case")...)

	return descriptions.NewSubtypeItemsCases(used, unused, objcNone), nil
}

func decodeSubtypeOptions(v any) (descriptions.SubtypeItems, error) {
	if list, ok := asSlice(v); ok {
		return descriptions.NewSubtypeItemsOptions(toStrings(list), nil), nil
	}

	m, ok := asObj(v)
	if !ok {
		return descriptions.SubtypeItems{}, descerr.NewDataCorrupted("options")
	}

	used := strSliceField(m, k("used")...)
	unused := strSliceField(m, k("unused")...)

	return descriptions.NewSubtypeItemsOptions(used, unused), nil
}

func decodeSubtypeItemsProperties(v any) (descriptions.SubtypeItems, error) {
	list, ok := asSlice(v)
	if !ok {
		return descriptions.SubtypeItems{}, descerr.NewDataCorrupted("properties")
	}

	props := make([]descriptions.SubtypeProperty, 0, len(list))

	for _, it := range list {
		m, ok := asObj(it)
		if !ok {
			continue
		}

		p, err := decodeSubtypeProperty(m)
		if err != nil {
			return descriptions.SubtypeItems{}, err
		}

		if p.Unused {
			continue
		}

		props = append(props, p)
	}

	sortSubtypeProperties(props)

	return descriptions.NewSubtypeItemsProperties(props), nil
}

func decodeSubtypeProperty(o obj) (descriptions.SubtypeProperty, error) {
	name := strField(o, "", k("name")...)

	pt, err := decodePropertyType(o, true)
	if err != nil {
		return descriptions.SubtypeProperty{}, err
	}

	var dv *descriptions.DefaultValue

	if raw, ok := field(o, k("default_value")...); ok {
		v, err := decodeDefaultValue(raw)
		if err != nil {
			return descriptions.SubtypeProperty{}, err
		}

		dv = v
	}

	logError := boolField(o, true, k("log_error")...)

	if !logError && dv == nil {
		return descriptions.SubtypeProperty{}, descerr.NewSubtypePropertyRequiresLogErrorOrDefault(name, "log_error")
	}

	warnLegacyAlias(o, name, k("nullable"), "optional")

	return descriptions.SubtypeProperty{
		Name:         name,
		PropertyType: pt,
		Nullable:     boolField(o, false, ks("nullable", "optional")...),
		DefaultValue: dv,
		LogError:     logError,
		Unused:       boolField(o, false, k("unused")...),
	}, nil
}

func sortSubtypeProperties(props []descriptions.SubtypeProperty) {
	sort.Slice(props, func(i, j int) bool { return props[i].Name < props[j].Name })
}

// --- Property type / default value ---

func decodePropertyType(o obj, allowDictionary bool) (descriptions.PropertyType, error) {
	raw, ok := field(o, k("type")...)
	if !ok {
		return descriptions.PropertyType{}, descerr.NewUnsupportedType("")
	}

	return decodePropertyTypeValue(raw, allowDictionary)
}

func decodePropertyTypeValue(raw any, allowDictionary bool) (descriptions.PropertyType, error) {
	if s, ok := raw.(string); ok {
		if sk, ok := descriptions.ScalarKindFromSurfaceName(s); ok {
			return descriptions.NewPropertyTypeScalar(sk), nil
		}

		return descriptions.NewPropertyTypeSubtype(s), nil
	}

	m, ok := asObj(raw)
	if !ok {
		return descriptions.PropertyType{}, descerr.NewUnsupportedType(fmt.Sprintf("%v", raw))
	}

	kind := strField(m, "", k("type")...)

	switch kind {
	case "relationship":
		rel, err := decodeRelationship(m)
		if err != nil {
			return descriptions.PropertyType{}, err
		}

		return descriptions.NewPropertyTypeRelationship(rel), nil
	case "subtype":
		return descriptions.NewPropertyTypeSubtype(strField(m, "", k("name")...)), nil
	case "array":
		elemRaw, ok := field(m, k("element")...)
		if !ok {
			return descriptions.PropertyType{}, descerr.NewUnsupportedType("array")
		}

		elem, err := decodePropertyTypeValue(elemRaw, allowDictionary)
		if err != nil {
			return descriptions.PropertyType{}, err
		}

		return descriptions.NewPropertyTypeArray(elem), nil
	case "dictionary":
		if !allowDictionary {
			return descriptions.PropertyType{}, descerr.NewUnsupportedType("dictionary")
		}

		keyRaw := strField(m, "", k("key")...)

		dk, ok := descriptions.ScalarKindFromSurfaceName(keyRaw)
		if !ok {
			return descriptions.PropertyType{}, descerr.NewUnsupportedType(keyRaw)
		}

		valRaw, ok := field(m, k("value")...)
		if !ok {
			return descriptions.PropertyType{}, descerr.NewUnsupportedType("dictionary")
		}

		val, err := decodePropertyTypeValue(valRaw, allowDictionary)
		if err != nil {
			return descriptions.PropertyType{}, err
		}

		return descriptions.NewPropertyTypeDictionary(dk, val), nil
	default:
		return descriptions.PropertyType{}, descerr.NewUnsupportedType(kind)
	}
}

func decodeRelationship(m obj) (descriptions.Relationship, error) {
	assoc := descriptions.AssociationToOne
	if strField(m, "to_one", k("association")...) == "to_many" {
		assoc = descriptions.AssociationToMany
	}

	return descriptions.Relationship{
		EntityName:    strField(m, "", k("entity_name")...),
		Association:   assoc,
		IDOnly:        boolField(m, false, k("id_only")...),
		FailableItems: boolField(m, true, k("failable_items")...),
		Platforms:     decodePlatforms(m),
	}, nil
}

func decodeDefaultValue(raw any) (*descriptions.DefaultValue, error) {
	switch v := raw.(type) {
	case bool:
		dv := descriptions.NewDefaultValueBool(v)
		return &dv, nil
	case int:
		dv := descriptions.NewDefaultValueInt(v)
		return &dv, nil
	case int64:
		dv := descriptions.NewDefaultValueInt(int(v))
		return &dv, nil
	case uint64:
		dv := descriptions.NewDefaultValueInt(int(v))
		return &dv, nil
	case float64:
		dv := descriptions.NewDefaultValueFloat(v)
		return &dv, nil
	case string:
		return decodeDefaultValueString(v)
	default:
		return nil, descerr.NewUnsupportedType(fmt.Sprintf("%v", raw))
	}
}

func decodeDefaultValueString(s string) (*descriptions.DefaultValue, error) {
	switch s {
	case "current_date":
		dv := descriptions.NewDefaultValueCurrentDate()
		return &dv, nil
	case "nil":
		dv := descriptions.NewDefaultValueNil()
		return &dv, nil
	}

	if strings.HasPrefix(s, ".") && len(s) > 1 {
		dv := descriptions.NewDefaultValueEnumCase(s[1:])
		return &dv, nil
	}

	if strings.HasSuffix(s, "ms") {
		if n, err := strconv.ParseFloat(strings.TrimSuffix(s, "ms"), 64); err == nil {
			dv := descriptions.NewDefaultValueMilliseconds(n)
			return &dv, nil
		}
	}

	if strings.HasSuffix(s, "s") {
		if n, err := strconv.ParseFloat(strings.TrimSuffix(s, "s"), 64); err == nil {
			dv := descriptions.NewDefaultValueSeconds(n)
			return &dv, nil
		}
	}

	dv := descriptions.NewDefaultValueString(s)

	return &dv, nil
}

// --- Entities ---

func decodeEntities(items []obj) ([]descriptions.Entity, error) {
	out := make([]descriptions.Entity, 0, len(items))

	for _, it := range items {
		e, err := decodeEntity(it)
		if err != nil {
			return nil, err
		}

		out = append(out, e)
	}

	return out, nil
}

func decodeEntity(o obj) (descriptions.Entity, error) {
	name := strField(o, "", k("name")...)

	ident, err := decodeIdentifier(o)
	if err != nil {
		return descriptions.Entity{}, err
	}

	props, err := decodeEntityProperties(o)
	if err != nil {
		return descriptions.Entity{}, err
	}

	for _, p := range props {
		if descriptions.IsReservedSystemPropertyName(p.Name) {
			return descriptions.Entity{}, descerr.NewSystemPropertyNameCollision(p.Name)
		}
	}

	sysProps, err := decodeSystemProperties(o)
	if err != nil {
		return descriptions.Entity{}, err
	}

	versionHistory, err := decodeVersionHistory(o)
	if err != nil {
		return descriptions.Entity{}, err
	}

	var legacyAdded *version.Version

	if len(versionHistory) == 0 {
		if s, ok := strFieldPtr(o, k("added_at_version")...); ok && s != "" {
			v, err := version.Parse(s, version.SourceDescription)
			if err != nil {
				return descriptions.Entity{}, err
			}

			legacyAdded = &v
		}
	}

	legacyPreviousName := ""

	if len(versionHistory) == 0 {
		legacyPreviousName = strField(o, "", k("previous_name")...)
	}

	var metadata []descriptions.MetadataProperty

	for _, mo := range objSliceField(o, k("metadata")...) {
		mp, err := decodeMetadataProperty(mo)
		if err != nil {
			return descriptions.Entity{}, err
		}

		metadata = append(metadata, mp)
	}

	cacheSize, err := decodeCacheSize(o)
	if err != nil {
		return descriptions.Entity{}, err
	}

	e := descriptions.Entity{
		Name:                 name,
		PersistedName:        strField(o, "", k("persisted_name")...),
		Platforms:            decodePlatforms(o),
		Remote:               boolField(o, true, k("remote")...),
		Persist:              boolField(o, false, k("persist")...),
		Identifier:           ident,
		Metadata:             metadata,
		Properties:           props,
		SystemProperties:     sysProps,
		IdentifierTypeID:     strField(o, "", k("identifier_type_id")...),
		LegacyPreviousName:   legacyPreviousName,
		LegacyAddedAtVersion: legacyAdded,
		VersionHistory:       versionHistory,
		QueryContext:         strField(o, "", k("query_context")...),
		ClientQueueName:      strField(o, "", k("client_queue_name")...),
		CacheSize:            cacheSize,
		Sendable:             boolField(o, false, k("sendable")...),
	}

	e.SortProperties()

	return e, nil
}

func decodeCacheSize(o obj) (descriptions.EntityCacheSize, error) {
	raw, ok := field(o, k("cache_size")...)
	if !ok {
		return descriptions.DefaultEntityCacheSize(), nil
	}

	if s, ok := raw.(string); ok {
		switch s {
		case "small":
			return descriptions.NewEntityCacheSizeGroup(descriptions.CacheSizeSmall), nil
		case "medium":
			return descriptions.NewEntityCacheSizeGroup(descriptions.CacheSizeMedium), nil
		case "large":
			return descriptions.NewEntityCacheSizeGroup(descriptions.CacheSizeLarge), nil
		default:
			return descriptions.EntityCacheSize{}, descerr.NewUnsupportedType(s)
		}
	}

	if n, ok := numeric(raw); ok {
		return descriptions.NewEntityCacheSizeFixed(int(n)), nil
	}

	if m, ok := asObj(raw); ok {
		if fixed, ok := field(m, k("fixed")...); ok {
			if n, ok := numeric(fixed); ok {
				return descriptions.NewEntityCacheSizeFixed(int(n)), nil
			}
		}

		if group, ok := field(m, k("group")...); ok {
			if s, ok := group.(string); ok {
				return decodeCacheSize(obj{"cache_size": s})
			}
		}
	}

	return descriptions.EntityCacheSize{}, descerr.NewUnsupportedType("cache_size")
}

func numeric(v any) (float64, bool) {
	switch v.(type) {
	case int, int64, uint64, float64, float32:
		return toFloat(v), true
	default:
		return 0, false
	}
}

func decodeVersionHistory(o obj) ([]descriptions.VersionHistoryItem, error) {
	items := objSliceField(o, k("version_history")...)
	if len(items) == 0 {
		return nil, nil
	}

	out := make([]descriptions.VersionHistoryItem, 0, len(items))

	for _, it := range items {
		s := strField(it, "", k("version")...)

		v, err := version.Parse(s, version.SourceDescription)
		if err != nil {
			return nil, err
		}

		out = append(out, descriptions.VersionHistoryItem{
			Version:                         v,
			PreviousName:                    strField(it, "", k("previous_name")...),
			IgnoreMigrationChecks:           boolField(it, false, k("ignore_migration_checks")...),
			IgnorePropertyMigrationChecksOn: strSliceField(it, k("ignore_property_migration_checks_on")...),
		})
	}

	return out, nil
}

func decodeEntityProperties(o obj) ([]descriptions.EntityProperty, error) {
	items := objSliceField(o, k("properties")...)

	out := make([]descriptions.EntityProperty, 0, len(items))

	for _, it := range items {
		p, err := decodeEntityProperty(it)
		if err != nil {
			return nil, err
		}

		out = append(out, p)
	}

	return out, nil
}

func decodeEntityProperty(o obj) (descriptions.EntityProperty, error) {
	name := strField(o, "", k("name")...)
	key := strField(o, name, k("key")...)

	pt, err := decodePropertyType(o, false)
	if err != nil {
		return descriptions.EntityProperty{}, err
	}

	var dv *descriptions.DefaultValue

	if raw, ok := field(o, k("default_value")...); ok {
		v, err := decodeDefaultValue(raw)
		if err != nil {
			return descriptions.EntityProperty{}, err
		}

		dv = v
	}

	var addedAt *version.Version

	if s, ok := strFieldPtr(o, k("added_at_version")...); ok && s != "" {
		v, err := version.Parse(s, version.SourceDescription)
		if err != nil {
			return descriptions.EntityProperty{}, err
		}

		addedAt = &v
	}

	warnLegacyAlias(o, name, k("previous_name"), "legacy_previous_name")
	warnLegacyAlias(o, name, k("nullable"), "optional")
	warnLegacyAlias(o, name, k("lazy"), "extra")

	return descriptions.EntityProperty{
		Name:           name,
		Key:            key,
		MatchExactKey:  boolField(o, false, k("match_exact_key")...),
		PreviousName:   strField(o, "", ks("previous_name", "legacy_previous_name")...),
		PersistedName:  strField(o, "", k("persisted_name")...),
		AddedAtVersion: addedAt,
		PropertyType:   pt,
		Nullable:       boolField(o, false, ks("nullable", "optional")...),
		DefaultValue:   dv,
		LogError:       boolField(o, true, k("log_error")...),
		UseForEquality: boolField(o, true, k("use_for_equality")...),
		Mutable:        boolField(o, false, k("mutable")...),
		ObjC:           boolField(o, false, k("objc")...),
		Unused:         boolField(o, false, k("unused")...),
		Lazy:           boolField(o, false, ks("lazy", "extra")...),
		Platforms:      decodePlatforms(o),
	}, nil
}

// warnLegacyAlias logs a non-fatal warning when property (identified by
// propertyName) was decoded from legacyKey rather than one of the current
// primary keys -- the document still carries a retired spelling that decode
// tolerates but a future format revision may reject.
func warnLegacyAlias(o obj, propertyName string, primary []string, legacyKey string) {
	if !usedLegacyAlias(o, primary, legacyKey) {
		return
	}

	slog.Warn("serde: entity property uses legacy alias",
		slog.String("property", propertyName), slog.String("legacy_key", legacyKey))
}

func decodeSystemProperties(o obj) ([]descriptions.SystemProperty, error) {
	items := objSliceField(o, k("system_properties")...)

	out := make([]descriptions.SystemProperty, 0, len(items))

	hasLastRemoteRead := false

	for _, it := range items {
		sp, err := decodeSystemProperty(it)
		if err != nil {
			return nil, err
		}

		if sp.Name == descriptions.SystemPropertyLastRemoteRead {
			hasLastRemoteRead = true
		}

		out = append(out, sp)
	}

	legacyFlag := boolField(o, false, k("last_remote_read")...)
	if legacyFlag {
		if hasLastRemoteRead {
			return nil, descerr.NewIncompatiblePropertyKey("last_remote_read")
		}

		slog.Warn("serde: entity uses legacy top-level last_remote_read flag",
			slog.String("legacy_key", "last_remote_read"))

		out = append(out, descriptions.SystemProperty{
			Name:            descriptions.SystemPropertyLastRemoteRead,
			UseLegacyNaming: true,
		})
	}

	sortSystemProperties(out)

	return out, nil
}

func sortSystemProperties(sps []descriptions.SystemProperty) {
	sort.Slice(sps, func(i, j int) bool { return sps[i].Name < sps[j].Name })
}

func decodeSystemProperty(o obj) (descriptions.SystemProperty, error) {
	name := descriptions.SystemPropertyName(strField(o, "", k("name")...))

	if name != descriptions.SystemPropertyIsSynced && name != descriptions.SystemPropertyLastRemoteRead {
		return descriptions.SystemProperty{}, descerr.NewUnsupportedType(string(name))
	}

	var addedAt *version.Version

	if s, ok := strFieldPtr(o, k("added_at_version")...); ok && s != "" {
		v, err := version.Parse(s, version.SourceDescription)
		if err != nil {
			return descriptions.SystemProperty{}, err
		}

		addedAt = &v
	}

	return descriptions.SystemProperty{
		Name:            name,
		AddedAtVersion:  addedAt,
		UseLegacyNaming: boolField(o, false, k("use_legacy_naming")...),
	}, nil
}

func decodeMetadataProperty(o obj) (descriptions.MetadataProperty, error) {
	pt, err := decodePropertyType(o, false)
	if err != nil {
		return descriptions.MetadataProperty{}, err
	}

	name := strField(o, "", k("name")...)

	warnLegacyAlias(o, name, k("nullable"), "optional")

	return descriptions.MetadataProperty{
		Name:         name,
		PropertyType: pt,
		Nullable:     boolField(o, false, ks("nullable", "optional")...),
	}, nil
}

// --- Identifier ---

func decodeIdentifier(o obj) (descriptions.EntityIdentifier, error) {
	io, ok := objField(o, k("identifier")...)
	if !ok {
		return descriptions.EntityIdentifier{
			Key:            descriptions.DefaultIdentifierKey,
			IdentifierType: descriptions.NewIdentifierTypeVoid(),
		}, nil
	}

	typeStr, hasType := strFieldPtr(io, k("type")...)

	var (
		idType descriptions.IdentifierType
		err    error
	)

	switch {
	case !hasType || typeStr == "":
		idType = descriptions.NewIdentifierTypeVoid()
	case typeStr == "property":
		idType = descriptions.NewIdentifierTypeProperty(strField(io, "", k("property_name")...))
	default:
		idType, err = decodeScalarOrRelationshipsIdentifier(io, typeStr)
		if err != nil {
			return descriptions.EntityIdentifier{}, err
		}
	}

	var atomic *bool

	if v, ok := field(io, k("atomic")...); ok {
		if b, ok := v.(bool); ok {
			atomic = &b
		}
	}

	return descriptions.EntityIdentifier{
		Key:                      strField(io, descriptions.DefaultIdentifierKey, k("key")...),
		IdentifierType:           idType,
		EquivalentIdentifierName: strField(io, "", k("equivalent_identifier_name")...),
		ObjC:                     boolField(io, false, k("objc")...),
		Atomic:                   atomic,
	}, nil
}

func decodeScalarOrRelationshipsIdentifier(io obj, typeStr string) (descriptions.IdentifierType, error) {
	sk, ok := descriptions.ScalarKindFromSurfaceName(typeStr)
	if !ok {
		return descriptions.IdentifierType{}, descerr.NewUnknownType(typeStr)
	}

	names := strSliceField(io, k("derived_from_relationships")...)
	if names == nil {
		return descriptions.NewIdentifierTypeScalar(sk), nil
	}

	ids := make([]descriptions.RelationshipID, 0, len(names))
	for _, n := range names {
		ids = append(ids, descriptions.RelationshipID{EntityName: n})
	}

	return descriptions.NewIdentifierTypeRelationships(sk, ids), nil
}

// --- Endpoints ---

func decodeEndpoints(items []obj) ([]descriptions.EndpointPayload, error) {
	out := make([]descriptions.EndpointPayload, 0, len(items))

	for _, it := range items {
		e, err := decodeEndpointPayload(it)
		if err != nil {
			return nil, err
		}

		out = append(out, e)
	}

	return out, nil
}

func decodeEndpointPayload(o obj) (descriptions.EndpointPayload, error) {
	name := strField(o, "", k("name")...)

	e := descriptions.EndpointPayload{Name: name}

	if rw, ok := objField(o, ks("read_write", "readWrite")...); ok {
		if _, has := field(rw, k("http_method")...); has {
			return descriptions.EndpointPayload{}, descerr.NewEndpointRequiresSeparateReadAndWritePayloads(name)
		}

		payload, err := decodeReadWrite(rw, true)
		if err != nil {
			return descriptions.EndpointPayload{}, err
		}

		e.ReadPayload = payload
		e.WritePayload = payload
	} else {
		if ro, ok := objField(o, k("read")...); ok {
			payload, err := decodeReadWrite(ro, false)
			if err != nil {
				return descriptions.EndpointPayload{}, err
			}

			e.ReadPayload = payload
		}

		if wo, ok := objField(o, k("write")...); ok {
			payload, err := decodeReadWrite(wo, false)
			if err != nil {
				return descriptions.EndpointPayload{}, err
			}

			e.WritePayload = payload
		}
	}

	if e.ReadPayload == nil && e.WritePayload == nil {
		return descriptions.EndpointPayload{}, descerr.NewEndpointRequiresAtLeastOnePayload(name)
	}

	if to, ok := objField(o, k("tests")...); ok {
		t := descriptions.EndpointTests{
			IncludesRead:  boolField(to, false, k("includes_read")...),
			IncludesWrite: boolField(to, false, k("includes_write")...),
		}

		if !t.HasAnyType() {
			return descriptions.EndpointPayload{}, descerr.NewEndpointTestsRequiresAtLeastOneType()
		}

		e.Tests = &t
	}

	return e, nil
}

func decodeReadWrite(o obj, shared bool) (*descriptions.ReadWriteEndpointPayload, error) {
	eo, ok := objField(o, k("entity")...)
	if !ok {
		return nil, descerr.NewUnsupportedPayloadIdentifier()
	}

	entity, err := decodeEndpointEntity(eo)
	if err != nil {
		return nil, err
	}

	var variations []descriptions.EndpointPayloadEntity

	for _, vo := range objSliceField(o, k("entity_variations")...) {
		v, err := decodeEndpointEntity(vo)
		if err != nil {
			return nil, err
		}

		variations = append(variations, v)
	}

	var metadata []descriptions.MetadataProperty

	for _, mo := range objSliceField(o, k("metadata")...) {
		mp, err := decodeMetadataProperty(mo)
		if err != nil {
			return nil, err
		}

		metadata = append(metadata, mp)
	}

	bk := decodeBaseKey(o)

	payload := &descriptions.ReadWriteEndpointPayload{
		BaseKey:          bk,
		Entity:           entity,
		EntityVariations: variations,
		ExcludedPaths:    strSliceField(o, k("excluded_paths")...),
		Metadata:         metadata,
	}

	if !shared {
		m := descriptions.HTTPMethod(strField(o, string(descriptions.DefaultHTTPMethod), k("http_method")...))
		payload.HTTPMethod = &m
	}

	return payload, nil
}

func decodeBaseKey(o obj) *descriptions.BaseKey {
	raw, ok := field(o, k("base_key")...)
	if !ok {
		return nil
	}

	if s, ok := raw.(string); ok {
		bk := descriptions.NewBaseKeySingle(s)
		return &bk
	}

	if list, ok := asSlice(raw); ok {
		bk := descriptions.NewBaseKeyArray(toStrings(list))
		return &bk
	}

	return nil
}

func decodeEndpointEntity(o obj) (descriptions.EndpointPayloadEntity, error) {
	structStr := strField(o, "single", k("structure")...)

	var structure descriptions.EndpointEntityStructure

	switch structStr {
	case "single":
		structure = descriptions.EndpointEntitySingle
	case "array":
		structure = descriptions.EndpointEntityArray
	case "nested_array", "nestedArray":
		structure = descriptions.EndpointEntityNestedArray
	default:
		return descriptions.EndpointPayloadEntity{}, descerr.NewUnsupportedType(structStr)
	}

	return descriptions.EndpointPayloadEntity{
		EntityKey:  strField(o, "", k("entity_key")...),
		EntityName: strField(o, "", k("entity_name")...),
		Structure:  structure,
		Nullable:   boolField(o, false, k("nullable")...),
	}, nil
}

func toStrings(items []any) []string {
	out := make([]string, 0, len(items))

	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}

	return out
}
