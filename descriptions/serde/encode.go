package serde

import (
	"encoding/json"
	"fmt"

	"github.com/lucidgen/core/descriptions"
	"github.com/lucidgen/core/version"
)

// Encode re-serializes d back into the textual format [Decode] reads,
// omitting any field that equals its documented default and never
// emitting a legacy-only alias key.
func Encode(d *descriptions.Descriptions) ([]byte, error) {
	root := obj{}

	if len(d.Subtypes) > 0 {
		subtypes := make([]obj, 0, len(d.Subtypes))
		for _, s := range d.Subtypes {
			subtypes = append(subtypes, encodeSubtype(s))
		}

		root["subtypes"] = subtypes
	}

	if len(d.Entities) > 0 {
		entities := make([]obj, 0, len(d.Entities))
		for _, e := range d.Entities {
			entities = append(entities, encodeEntity(e))
		}

		root["entities"] = entities
	}

	if len(d.Endpoints) > 0 {
		endpoints := make([]obj, 0, len(d.Endpoints))
		for _, e := range d.Endpoints {
			endpoints = append(endpoints, encodeEndpoint(e))
		}

		root["endpoints"] = endpoints
	}

	if targets := encodeTargets(d.Targets); len(targets) > 0 {
		root["targets"] = targets
	}

	if d.Version != version.Zero() {
		root["version"] = d.Version.String()
	}

	out, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serde: %w", err)
	}

	return out, nil
}

func encodeTargets(t descriptions.Targets) []obj {
	var out []obj

	for _, target := range []descriptions.Target{t.App, t.AppTests, t.AppTestSupport} {
		if target == (descriptions.Target{Name: target.Name}) {
			continue
		}

		o := obj{"name": string(target.Name)}

		if target.ModuleName != "" {
			o["module_name"] = target.ModuleName
		}

		if target.OutputPath != "" {
			o["output_path"] = target.OutputPath
		}

		if target.IsSelected {
			o["is_selected"] = true
		}

		out = append(out, o)
	}

	return out
}

func encodePlatforms(ps []descriptions.Platform) []string {
	if len(ps) == 0 {
		return nil
	}

	sorted := descriptions.SortedPlatforms(ps)
	out := make([]string, 0, len(sorted))

	for _, p := range sorted {
		out = append(out, string(p))
	}

	return out
}

func encodeSubtype(s descriptions.Subtype) obj {
	o := obj{"name": s.Name}

	switch s.Items.Kind {
	case descriptions.SubtypeItemsCases:
		c := obj{}
		if len(s.Items.UsedCases) > 0 {
			c["used"] = s.Items.UsedCases
		}

		if len(s.Items.UnusedCases) > 0 {
			c["unused"] = s.Items.UnusedCases
		}

		if s.Items.ObjCNoneCase != "" {
			c["objc_none_case"] = s.Items.ObjCNoneCase
		}

		o["cases"] = c
	case descriptions.SubtypeItemsOptions:
		opt := obj{}
		if len(s.Items.UsedOptions) > 0 {
			opt["used"] = s.Items.UsedOptions
		}

		if len(s.Items.UnusedOptions) > 0 {
			opt["unused"] = s.Items.UnusedOptions
		}

		o["options"] = opt
	case descriptions.SubtypeItemsProperties:
		props := make([]obj, 0, len(s.Items.Properties))
		for _, p := range s.Items.Properties {
			props = append(props, encodeSubtypeProperty(p))
		}

		o["properties"] = props
	}

	if len(s.ManualImplementations) > 0 {
		o["manual_implementations"] = s.ManualImplementations
	}

	if s.ObjC {
		o["objc"] = true
	}

	if ps := encodePlatforms(s.Platforms); ps != nil {
		o["platforms"] = ps
	}

	return o
}

func encodeSubtypeProperty(p descriptions.SubtypeProperty) obj {
	o := obj{"name": p.Name, "type": encodePropertyType(p.PropertyType)}

	if p.Nullable {
		o["nullable"] = true
	}

	if p.DefaultValue != nil {
		o["default_value"] = encodeDefaultValue(*p.DefaultValue)
	}

	if !p.LogError {
		o["log_error"] = false
	}

	if p.Unused {
		o["unused"] = true
	}

	return o
}

func encodePropertyType(t descriptions.PropertyType) any {
	switch t.Kind {
	case descriptions.PropertyTypeScalar:
		return t.Scalar.SurfaceName()
	case descriptions.PropertyTypeSubtype:
		return t.SubtypeName
	case descriptions.PropertyTypeRelationship:
		assoc := "to_one"
		if t.Relationship.Association == descriptions.AssociationToMany {
			assoc = "to_many"
		}

		o := obj{
			"type":        "relationship",
			"entity_name": t.Relationship.EntityName,
			"association": assoc,
		}

		if t.Relationship.IDOnly {
			o["id_only"] = true
		}

		if !t.Relationship.FailableItems {
			o["failable_items"] = false
		}

		if ps := encodePlatforms(t.Relationship.Platforms); ps != nil {
			o["platforms"] = ps
		}

		return o
	case descriptions.PropertyTypeArray:
		return obj{"type": "array", "element": encodePropertyType(*t.Element)}
	case descriptions.PropertyTypeDictionary:
		return obj{
			"type":  "dictionary",
			"key":   t.DictKey.SurfaceName(),
			"value": encodePropertyType(*t.DictValue),
		}
	default:
		return nil
	}
}

func encodeDefaultValue(v descriptions.DefaultValue) any {
	switch v.Kind {
	case descriptions.DefaultValueBool:
		return v.Bool
	case descriptions.DefaultValueInt:
		return v.Int
	case descriptions.DefaultValueFloat:
		return v.Float
	case descriptions.DefaultValueString:
		return v.String
	default:
		return v.CanonicalString()
	}
}

func encodeEntity(e descriptions.Entity) obj {
	o := obj{"name": e.Name}

	if e.PersistedName != "" {
		o["persisted_name"] = e.PersistedName
	}

	if ps := encodePlatforms(e.Platforms); ps != nil {
		o["platforms"] = ps
	}

	o["remote"] = e.Remote // always emitted verbatim, unlike other defaulted fields.

	if e.Persist {
		o["persist"] = true
	}

	if ident := encodeIdentifier(e.Identifier); len(ident) > 0 {
		o["identifier"] = ident
	}

	if len(e.Metadata) > 0 {
		md := make([]obj, 0, len(e.Metadata))
		for _, m := range e.Metadata {
			md = append(md, encodeMetadataProperty(m))
		}

		o["metadata"] = md
	}

	if len(e.Properties) > 0 {
		props := make([]obj, 0, len(e.Properties))
		for _, p := range e.Properties {
			props = append(props, encodeEntityProperty(p))
		}

		o["properties"] = props
	}

	if len(e.SystemProperties) > 0 {
		sps := make([]obj, 0, len(e.SystemProperties))
		for _, sp := range e.SystemProperties {
			sps = append(sps, encodeSystemProperty(sp))
		}

		o["system_properties"] = sps
	}

	if e.IdentifierTypeID != "" {
		o["identifier_type_id"] = e.IdentifierTypeID
	}

	if len(e.VersionHistory) > 0 {
		vh := make([]obj, 0, len(e.VersionHistory))
		for _, item := range e.VersionHistory {
			vo := obj{"version": item.Version.String()}

			if item.PreviousName != "" {
				vo["previous_name"] = item.PreviousName
			}

			if item.IgnoreMigrationChecks {
				vo["ignore_migration_checks"] = true
			}

			if len(item.IgnorePropertyMigrationChecksOn) > 0 {
				vo["ignore_property_migration_checks_on"] = item.IgnorePropertyMigrationChecksOn
			}

			vh = append(vh, vo)
		}

		o["version_history"] = vh
	} else {
		if e.LegacyAddedAtVersion != nil {
			o["added_at_version"] = e.LegacyAddedAtVersion.String()
		}

		if e.LegacyPreviousName != "" {
			o["previous_name"] = e.LegacyPreviousName
		}
	}

	if e.QueryContext != "" {
		o["query_context"] = e.QueryContext
	}

	if e.ClientQueueName != "" {
		o["client_queue_name"] = e.ClientQueueName
	}

	if e.CacheSize != descriptions.DefaultEntityCacheSize() {
		o["cache_size"] = encodeCacheSize(e.CacheSize)
	}

	if e.Sendable {
		o["sendable"] = true
	}

	return o
}

func encodeCacheSize(c descriptions.EntityCacheSize) any {
	if c.Kind == descriptions.EntityCacheSizeFixed {
		return c.Fixed
	}

	switch c.Group {
	case descriptions.CacheSizeSmall:
		return "small"
	case descriptions.CacheSizeLarge:
		return "large"
	default:
		return "medium"
	}
}

func encodeIdentifier(ident descriptions.EntityIdentifier) obj {
	o := obj{}

	if ident.Key != "" && ident.Key != descriptions.DefaultIdentifierKey {
		o["key"] = ident.Key
	}

	switch ident.IdentifierType.Kind {
	case descriptions.IdentifierTypeVoid:
		// absent "type" on re-serialization, per decode's void-on-absence rule.
	case descriptions.IdentifierTypeProperty:
		o["type"] = "property"
		o["property_name"] = ident.IdentifierType.PropertyName
	case descriptions.IdentifierTypeScalar:
		o["type"] = ident.IdentifierType.ScalarKind.SurfaceName()
	case descriptions.IdentifierTypeRelationships:
		o["type"] = ident.IdentifierType.ScalarKind.SurfaceName()

		names := make([]string, 0, len(ident.IdentifierType.RelationshipIDs))
		for _, r := range ident.IdentifierType.RelationshipIDs {
			names = append(names, r.EntityName)
		}

		o["derived_from_relationships"] = names
	}

	if ident.EquivalentIdentifierName != "" {
		o["equivalent_identifier_name"] = ident.EquivalentIdentifierName
	}

	if ident.ObjC {
		o["objc"] = true
	}

	if ident.Atomic != nil {
		o["atomic"] = *ident.Atomic
	}

	return o
}

func encodeEntityProperty(p descriptions.EntityProperty) obj {
	o := obj{"name": p.Name, "type": encodePropertyType(p.PropertyType)}

	if p.Key != "" && p.Key != p.Name {
		o["key"] = p.Key
	}

	if p.MatchExactKey {
		o["match_exact_key"] = true
	}

	if p.PreviousName != "" {
		o["previous_name"] = p.PreviousName
	}

	if p.PersistedName != "" {
		o["persisted_name"] = p.PersistedName
	}

	if p.AddedAtVersion != nil {
		o["added_at_version"] = p.AddedAtVersion.String()
	}

	if p.Nullable {
		o["nullable"] = true
	}

	if p.DefaultValue != nil {
		o["default_value"] = encodeDefaultValue(*p.DefaultValue)
	}

	if !p.LogError {
		o["log_error"] = false
	}

	if !p.UseForEquality {
		o["use_for_equality"] = false
	}

	if p.Mutable {
		o["mutable"] = true
	}

	if p.ObjC {
		o["objc"] = true
	}

	if p.Unused {
		o["unused"] = true
	}

	if p.Lazy {
		o["lazy"] = true
	}

	if ps := encodePlatforms(p.Platforms); ps != nil {
		o["platforms"] = ps
	}

	return o
}

func encodeSystemProperty(sp descriptions.SystemProperty) obj {
	o := obj{"name": string(sp.Name)}

	if sp.AddedAtVersion != nil {
		o["added_at_version"] = sp.AddedAtVersion.String()
	}

	if sp.UseLegacyNaming {
		o["use_legacy_naming"] = true
	}

	return o
}

func encodeMetadataProperty(m descriptions.MetadataProperty) obj {
	o := obj{"name": m.Name, "type": encodePropertyType(m.PropertyType)}

	if m.Nullable {
		o["nullable"] = true
	}

	return o
}

func encodeEndpoint(e descriptions.EndpointPayload) obj {
	o := obj{"name": e.Name}

	if e.SharesReadWrite() {
		o["read_write"] = encodeReadWrite(*e.ReadPayload, true)
	} else {
		if e.ReadPayload != nil {
			o["read"] = encodeReadWrite(*e.ReadPayload, false)
		}

		if e.WritePayload != nil {
			o["write"] = encodeReadWrite(*e.WritePayload, false)
		}
	}

	if e.Tests != nil {
		o["tests"] = obj{
			"includes_read":  e.Tests.IncludesRead,
			"includes_write": e.Tests.IncludesWrite,
		}
	}

	return o
}

func encodeReadWrite(p descriptions.ReadWriteEndpointPayload, shared bool) obj {
	o := obj{"entity": encodeEndpointEntity(p.Entity)}

	if p.BaseKey != nil {
		switch p.BaseKey.Kind {
		case descriptions.BaseKeySingle:
			o["base_key"] = p.BaseKey.Single
		case descriptions.BaseKeyArray:
			o["base_key"] = p.BaseKey.Array
		}
	}

	if len(p.EntityVariations) > 0 {
		vs := make([]obj, 0, len(p.EntityVariations))
		for _, v := range p.EntityVariations {
			vs = append(vs, encodeEndpointEntity(v))
		}

		o["entity_variations"] = vs
	}

	if len(p.ExcludedPaths) > 0 {
		o["excluded_paths"] = p.ExcludedPaths
	}

	if len(p.Metadata) > 0 {
		md := make([]obj, 0, len(p.Metadata))
		for _, m := range p.Metadata {
			md = append(md, encodeMetadataProperty(m))
		}

		o["metadata"] = md
	}

	if !shared && p.HTTPMethod != nil && *p.HTTPMethod != descriptions.DefaultHTTPMethod {
		o["http_method"] = string(*p.HTTPMethod)
	}

	return o
}

func encodeEndpointEntity(e descriptions.EndpointPayloadEntity) obj {
	o := obj{"entity_name": e.EntityName}

	if e.EntityKey != "" {
		o["entity_key"] = e.EntityKey
	}

	switch e.Structure {
	case descriptions.EndpointEntityArray:
		o["structure"] = "array"
	case descriptions.EndpointEntityNestedArray:
		o["structure"] = "nested_array"
	default:
		// "single" is the default and is omitted.
	}

	if e.Nullable {
		o["nullable"] = true
	}

	return o
}
