package serde_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/lucidgen/core/descriptions"
	"github.com/lucidgen/core/descriptions/serde"
	"github.com/lucidgen/core/stringtest"
)

func roundTrip(t *testing.T, src string) *descriptions.Descriptions {
	t.Helper()

	d, err := serde.Decode([]byte(src))
	require.NoError(t, err)

	encoded, err := serde.Encode(d)
	require.NoError(t, err)

	again, err := serde.Decode(encoded)
	require.NoError(t, err)

	return again
}

var cmpDescriptionsOpts = cmp.Options{
	cmpopts.IgnoreUnexported(descriptions.Descriptions{}),
	cmpopts.EquateEmpty(),
}

func TestRoundTrip_FullEntityGraph(t *testing.T) {
	src := `
version: "2.1.0"
subtypes:
  - name: Status
    cases:
      used: [active, inactive]
      unused: [deprecated]
      objc_none_case: inactive
    objc: true
    platforms: [ios, server]
entities:
  - name: Parent
    platforms: [ios]
    identifier:
      key: parent_id
      type: string
    properties:
      - name: title
        type: string
        nullable: true
    version_history:
      - version: "1.0.0"
      - version: "2.0.0"
        previous_name: OldParent
  - name: Child
    remote: false
    persist: true
    identifier:
      type: string
      derived_from_relationships: [Parent]
    properties:
      - name: owner
        type:
          type: relationship
          entity_name: Parent
          association: to_one
      - name: weight
        type: float
        default_value: 30s
    system_properties:
      - name: is_synced
    cache_size: 42
endpoints:
  - name: children
    read:
      entity:
        entity_name: Child
        structure: array
    write:
      entity:
        entity_name: Child
      http_method: put
    tests:
      includes_read: true
`
	d, err := serde.Decode([]byte(src))
	require.NoError(t, err)

	again := roundTrip(t, src)

	if diff := cmp.Diff(d, again, cmpDescriptionsOpts); diff != "" {
		t.Errorf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEncode_RemoteAlwaysEmittedVerbatim(t *testing.T) {
	src := `
entities:
  - name: Widget
`
	d, err := serde.Decode([]byte(src))
	require.NoError(t, err)

	out, err := serde.Encode(d)
	require.NoError(t, err)

	var root map[string]any
	require.NoError(t, json.Unmarshal(out, &root))

	entities, ok := root["entities"].([]any)
	require.True(t, ok)
	require.Len(t, entities, 1)

	entity, ok := entities[0].(map[string]any)
	require.True(t, ok)

	remote, present := entity["remote"]
	require.True(t, present, "remote must always be emitted even at its default value")
	require.Equal(t, true, remote)
}

func TestEncode_MinimalEntityGoldenOutput(t *testing.T) {
	src := `
entities:
  - name: Widget
`
	d, err := serde.Decode([]byte(src))
	require.NoError(t, err)

	out, err := serde.Encode(d)
	require.NoError(t, err)

	want := stringtest.JoinLF(
		`{`,
		`  "entities": [`,
		`    {`,
		`      "name": "Widget",`,
		`      "remote": true`,
		`    }`,
		`  ]`,
		`}`,
	)
	require.Equal(t, want, string(out))
}

func TestEncode_DefaultedFieldsAreOmitted(t *testing.T) {
	src := `
entities:
  - name: Widget
    properties:
      - name: label
        type: string
`
	d, err := serde.Decode([]byte(src))
	require.NoError(t, err)

	out, err := serde.Encode(d)
	require.NoError(t, err)

	var root map[string]any
	require.NoError(t, json.Unmarshal(out, &root))

	entity := root["entities"].([]any)[0].(map[string]any)
	_, hasPersist := entity["persist"]
	require.False(t, hasPersist, "persist at its default (false) should be omitted")
	_, hasCacheSize := entity["cache_size"]
	require.False(t, hasCacheSize, "cache_size at its default (medium) should be omitted")

	props := entity["properties"].([]any)[0].(map[string]any)
	_, hasKey := props["key"]
	require.False(t, hasKey, "key equal to name should be omitted")
	_, hasLogError := props["log_error"]
	require.False(t, hasLogError, "log_error at its default (true) should be omitted")
}

func TestRoundTrip_SubtypeOptionsAndProperties(t *testing.T) {
	src := `
subtypes:
  - name: Flags
    options:
      used: [a, b]
  - name: Shape
    properties:
      - name: radius
        type: float
        default_value: 1.0
      - name: color
        type: string
        nullable: true
        default_value: red
`
	d := roundTrip(t, src)

	flags, err := d.Subtype("Flags")
	require.NoError(t, err)
	require.Equal(t, descriptions.SubtypeItemsOptions, flags.Items.Kind)
	require.Equal(t, []string{"a", "b"}, flags.Items.UsedOptions)

	shape, err := d.Subtype("Shape")
	require.NoError(t, err)
	require.Equal(t, descriptions.SubtypeItemsProperties, shape.Items.Kind)
	require.Len(t, shape.Items.Properties, 2)
}

func TestRoundTrip_EndpointSharedReadWrite(t *testing.T) {
	src := stringtest.Input(`
		endpoints:
		  - name: widgets
		    read_write:
		      entity:
		        entity_name: Widget
		      base_key: [data, widget]
		      excluded_paths: [internal_id]
	`)
	d := roundTrip(t, src)

	ep, err := d.Endpoint("widgets")
	require.NoError(t, err)
	require.True(t, ep.SharesReadWrite())
	require.Equal(t, []string{"data", "widget"}, ep.ReadPayload.BaseKey.Array)
	require.Equal(t, []string{"internal_id"}, ep.ReadPayload.ExcludedPaths)
}

func TestRoundTrip_ArrayAndDictionaryPropertyTypes(t *testing.T) {
	src := stringtest.Input(`
		subtypes:
		  - name: Holder
		    properties:
		      - name: tags
		        type:
		          type: array
		          element: string
		      - name: counts
		        type:
		          type: dictionary
		          key: string
		          value: int
	`)
	d := roundTrip(t, src)

	s, err := d.Subtype("Holder")
	require.NoError(t, err)

	var tags, counts descriptions.SubtypeProperty

	for _, p := range s.Items.Properties {
		switch p.Name {
		case "tags":
			tags = p
		case "counts":
			counts = p
		}
	}

	require.Equal(t, descriptions.PropertyTypeArray, tags.PropertyType.Kind)
	scalar, ok := tags.PropertyType.LeafScalar()
	require.True(t, ok)
	require.Equal(t, descriptions.ScalarString, scalar)

	require.Equal(t, descriptions.PropertyTypeDictionary, counts.PropertyType.Kind)
	require.Equal(t, descriptions.ScalarString, counts.PropertyType.DictKey)
}
