package serde_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucidgen/core/descriptions"
	"github.com/lucidgen/core/descriptions/descerr"
	"github.com/lucidgen/core/descriptions/serde"
	"github.com/lucidgen/core/log"
	"github.com/lucidgen/core/stringtest"
)

func TestDecode_LegacyAliasesOptionalAndExtra(t *testing.T) {
	src := stringtest.Input(`
		entities:
		  - name: Widget
		    properties:
		      - name: label
		        type: string
		        optional: true
		      - name: weight
		        type: float
		        extra: true
	`)
	d, err := serde.Decode([]byte(src))
	require.NoError(t, err)
	require.Len(t, d.Entities, 1)

	e, err := d.Entity("Widget")
	require.NoError(t, err)

	label, err := propertyNamed(e.Properties, "label")
	require.NoError(t, err)
	assert.True(t, label.Nullable, "optional should set Nullable via legacy alias")

	weight, err := propertyNamed(e.Properties, "weight")
	require.NoError(t, err)
	assert.True(t, weight.Lazy, "extra should set Lazy via legacy alias")
}

func propertyNamed(props []descriptions.EntityProperty, name string) (descriptions.EntityProperty, error) {
	for _, p := range props {
		if p.Name == name {
			return p, nil
		}
	}

	return descriptions.EntityProperty{}, assert.AnError
}

func TestDecode_EntityDefaults(t *testing.T) {
	src := `
entities:
  - name: Widget
`
	d, err := serde.Decode([]byte(src))
	require.NoError(t, err)

	e, err := d.Entity("Widget")
	require.NoError(t, err)

	assert.True(t, e.Remote)
	assert.False(t, e.Persist)
	assert.Equal(t, descriptions.DefaultIdentifierKey, e.Identifier.Key)
	assert.Equal(t, descriptions.IdentifierTypeVoid, e.Identifier.IdentifierType.Kind)
	assert.Equal(t, descriptions.DefaultEntityCacheSize(), e.CacheSize)
}

func TestDecode_PropertySystemNameCollision(t *testing.T) {
	src := `
entities:
  - name: Widget
    properties:
      - name: is_synced
        type: bool
`
	_, err := serde.Decode([]byte(src))
	require.Error(t, err)
	assert.True(t, descerr.Of(err, descerr.KindSystemPropertyNameCollision))
}

func TestDecode_LastRemoteReadLegacyFlagConflictsWithExplicitSystemProperty(t *testing.T) {
	src := `
entities:
  - name: Widget
    last_remote_read: true
    system_properties:
      - name: last_remote_read
`
	_, err := serde.Decode([]byte(src))
	require.Error(t, err)
	assert.True(t, descerr.Of(err, descerr.KindIncompatiblePropertyKey))
}

func TestDecode_LastRemoteReadLegacyFlagSynthesizesSystemProperty(t *testing.T) {
	src := stringtest.Input(`
		entities:
		  - name: Widget
		    last_remote_read: true
	`)
	d, err := serde.Decode([]byte(src))
	require.NoError(t, err)

	e, err := d.Entity("Widget")
	require.NoError(t, err)
	require.Len(t, e.SystemProperties, 1)
	assert.Equal(t, descriptions.SystemPropertyLastRemoteRead, e.SystemProperties[0].Name)
	assert.True(t, e.SystemProperties[0].UseLegacyNaming)
}

func TestDecode_LegacyAliasesLogWarnings(t *testing.T) {
	var buf bytes.Buffer

	prev := slog.Default()
	slog.SetDefault(slog.New(log.NewHandler(&buf, log.LevelWarn, log.FormatJSON)))

	t.Cleanup(func() { slog.SetDefault(prev) })

	src := stringtest.Input(`
		entities:
		  - name: Widget
		    properties:
		      - name: label
		        type: string
		        legacy_previous_name: name
		        extra: true
		        optional: true
	`)
	_, err := serde.Decode([]byte(src))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "legacy alias")
	assert.Contains(t, out, `"legacy_key":"legacy_previous_name"`)
	assert.Contains(t, out, `"legacy_key":"extra"`)
	assert.Contains(t, out, `"legacy_key":"optional"`)
}

func TestDecode_EndpointRequiresAtLeastOnePayload(t *testing.T) {
	src := `
endpoints:
  - name: widgets
`
	_, err := serde.Decode([]byte(src))
	require.Error(t, err)
	assert.True(t, descerr.Of(err, descerr.KindEndpointRequiresAtLeastOnePayload))
}

func TestDecode_EndpointSharedReadWriteRejectsHTTPMethod(t *testing.T) {
	src := `
endpoints:
  - name: widgets
    read_write:
      entity:
        entity_name: Widget
      http_method: put
`
	_, err := serde.Decode([]byte(src))
	require.Error(t, err)
	assert.True(t, descerr.Of(err, descerr.KindEndpointRequiresSeparateReadAndWritePayloads))
}

func TestDecode_EndpointTestsRequiresAtLeastOneType(t *testing.T) {
	src := `
endpoints:
  - name: widgets
    read:
      entity:
        entity_name: Widget
    tests:
      includes_read: false
      includes_write: false
`
	_, err := serde.Decode([]byte(src))
	require.Error(t, err)
	assert.True(t, descerr.Of(err, descerr.KindEndpointTestsRequiresAtLeastOneType))
}

func TestDecode_SubtypeItemsPrecedenceCasesBeforeOptionsBeforeProperties(t *testing.T) {
	src := `
subtypes:
  - name: Status
    cases:
      used: [active, inactive]
    options:
      used: [a]
    properties:
      - name: x
        type: string
`
	d, err := serde.Decode([]byte(src))
	require.NoError(t, err)

	s, err := d.Subtype("Status")
	require.NoError(t, err)
	assert.Equal(t, descriptions.SubtypeItemsCases, s.Items.Kind)
	assert.Equal(t, []string{"active", "inactive"}, s.Items.UsedCases)
}

func TestDecode_SubtypeWithNoItemsVariantIsDataCorrupted(t *testing.T) {
	src := `
subtypes:
  - name: Status
`
	_, err := serde.Decode([]byte(src))
	require.Error(t, err)
	assert.True(t, descerr.Of(err, descerr.KindDataCorrupted))
}

func TestDecode_SubtypePropertyRequiresLogErrorOrDefault(t *testing.T) {
	src := `
subtypes:
  - name: Status
    properties:
      - name: x
        type: string
        log_error: false
`
	_, err := serde.Decode([]byte(src))
	require.Error(t, err)
	assert.True(t, descerr.Of(err, descerr.KindSubtypePropertyRequiresLogErrorOrDefault))
}

func TestDecode_SubtypePropertyLogErrorFalseAllowedWithDefault(t *testing.T) {
	src := `
subtypes:
  - name: Status
    properties:
      - name: x
        type: string
        log_error: false
        default_value: fallback
`
	d, err := serde.Decode([]byte(src))
	require.NoError(t, err)

	s, err := d.Subtype("Status")
	require.NoError(t, err)
	require.Len(t, s.Items.Properties, 1)
	assert.False(t, s.Items.Properties[0].LogError)
	require.NotNil(t, s.Items.Properties[0].DefaultValue)
}

func TestDecode_UnusedSubtypePropertiesAreDropped(t *testing.T) {
	src := `
subtypes:
  - name: Status
    properties:
      - name: x
        type: string
      - name: y
        type: string
        unused: true
`
	d, err := serde.Decode([]byte(src))
	require.NoError(t, err)

	s, err := d.Subtype("Status")
	require.NoError(t, err)
	require.Len(t, s.Items.Properties, 1)
	assert.Equal(t, "x", s.Items.Properties[0].Name)
}

func TestDecode_CacheSizeVariants(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want descriptions.EntityCacheSize
	}{
		{
			name: "group string",
			src:  "cache_size: large",
			want: descriptions.NewEntityCacheSizeGroup(descriptions.CacheSizeLarge),
		},
		{
			name: "bare fixed number",
			src:  "cache_size: 42",
			want: descriptions.NewEntityCacheSizeFixed(42),
		},
		{
			name: "fixed object form",
			src:  "cache_size:\n      fixed: 7",
			want: descriptions.NewEntityCacheSizeFixed(7),
		},
		{
			name: "group object form",
			src:  "cache_size:\n      group: small",
			want: descriptions.NewEntityCacheSizeGroup(descriptions.CacheSizeSmall),
		},
		{
			name: "absent",
			src:  "",
			want: descriptions.DefaultEntityCacheSize(),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src := "entities:\n  - name: Widget\n    " + tc.src
			d, err := serde.Decode([]byte(src))
			require.NoError(t, err)

			e, err := d.Entity("Widget")
			require.NoError(t, err)
			assert.Equal(t, tc.want, e.CacheSize)
		})
	}
}

func TestDecode_CacheSizeUnsupportedString(t *testing.T) {
	src := "entities:\n  - name: Widget\n    cache_size: huge"
	_, err := serde.Decode([]byte(src))
	require.Error(t, err)
	assert.True(t, descerr.Of(err, descerr.KindUnsupportedType))
}

func TestDecode_IdentifierTypeDispatch(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantKind descriptions.IdentifierTypeKind
	}{
		{
			name:     "absent identifier block is void",
			src:      "",
			wantKind: descriptions.IdentifierTypeVoid,
		},
		{
			name:     "explicit property",
			src:      "identifier:\n      type: property\n      property_name: label",
			wantKind: descriptions.IdentifierTypeProperty,
		},
		{
			name:     "scalar",
			src:      "identifier:\n      type: string",
			wantKind: descriptions.IdentifierTypeScalar,
		},
		{
			name:     "scalar derived from relationships",
			src:      "identifier:\n      type: string\n      derived_from_relationships: [Parent]",
			wantKind: descriptions.IdentifierTypeRelationships,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src := "entities:\n  - name: Widget\n    " + tc.src
			d, err := serde.Decode([]byte(src))
			require.NoError(t, err)

			e, err := d.Entity("Widget")
			require.NoError(t, err)
			assert.Equal(t, tc.wantKind, e.Identifier.IdentifierType.Kind)
		})
	}
}

func TestDecode_IdentifierUnknownTypeString(t *testing.T) {
	src := "entities:\n  - name: Widget\n    identifier:\n      type: not-a-real-type"
	_, err := serde.Decode([]byte(src))
	require.Error(t, err)
	assert.True(t, descerr.Of(err, descerr.KindUnknownType))
}

func TestDecode_RelationshipIdentifierResolvesTargetKey(t *testing.T) {
	src := `
entities:
  - name: Parent
    identifier:
      key: parent_id
  - name: Child
    identifier:
      type: string
      derived_from_relationships: [Parent]
`
	d, err := serde.Decode([]byte(src))
	require.NoError(t, err)

	child, err := d.Entity("Child")
	require.NoError(t, err)
	require.Len(t, child.Identifier.IdentifierType.RelationshipIDs, 1)
	assert.Equal(t, "parent_id", child.Identifier.IdentifierType.RelationshipIDs[0].ToIdentifierName)
}

func TestDecode_DefaultValueStringSuffixes(t *testing.T) {
	src := stringtest.Input(`
		subtypes:
		  - name: Holder
		    properties:
		      - name: ttl
		        type: float
		        default_value: 30s
		      - name: timeout
		        type: float
		        default_value: 250ms
		      - name: label
		        type: string
		        default_value: hello
		      - name: tag
		        type: string
		        default_value: .active
		      - name: empty
		        type: string
		        default_value: "nil"
	`)
	d, err := serde.Decode([]byte(src))
	require.NoError(t, err)

	s, err := d.Subtype("Holder")
	require.NoError(t, err)

	byName := map[string]descriptions.DefaultValue{}
	for _, p := range s.Items.Properties {
		byName[p.Name] = *p.DefaultValue
	}

	assert.Equal(t, descriptions.DefaultValueSeconds, byName["ttl"].Kind)
	assert.InEpsilon(t, 30.0, byName["ttl"].Float, 0.0001)
	assert.Equal(t, descriptions.DefaultValueMilliseconds, byName["timeout"].Kind)
	assert.InEpsilon(t, 250.0, byName["timeout"].Float, 0.0001)
	assert.Equal(t, descriptions.DefaultValueString, byName["label"].Kind)
	assert.Equal(t, descriptions.DefaultValueEnumCase, byName["tag"].Kind)
	assert.Equal(t, "active", byName["tag"].EnumCase)
	assert.Equal(t, descriptions.DefaultValueNil, byName["empty"].Kind)
}

func TestDecode_VersionAbsentIsZero(t *testing.T) {
	d, err := serde.Decode([]byte(`entities: []`))
	require.NoError(t, err)
	assert.True(t, d.Version.Major == 0 && d.Version.Minor == 0)
}
