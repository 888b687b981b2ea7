package descriptions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucidgen/core/descriptions"
	"github.com/lucidgen/core/descriptions/descerr"
	"github.com/lucidgen/core/version"
)

func mustParseVersions(t *testing.T, ss ...string) []version.Version {
	t.Helper()

	out := make([]version.Version, 0, len(ss))

	for _, s := range ss {
		v, err := version.Parse(s, version.SourceGitTag)
		require.NoError(t, err)
		out = append(out, v)
	}

	return out
}

func TestModelMappingHistory(t *testing.T) {
	allVersions := mustParseVersions(t,
		"release_1.0", "release_1.1", "beta_release_1.2", "release_1.2", "release_1.3")

	addedAt := allVersions[0]   // release_1.0
	renamedAt := allVersions[3] // release_1.2

	d := &descriptions.Descriptions{
		Entities: []descriptions.Entity{
			{
				Name: "Widget",
				VersionHistory: []descriptions.VersionHistoryItem{
					{Version: addedAt},
					{Version: renamedAt, PreviousName: "OldWidget"},
				},
			},
		},
	}

	out := d.ModelMappingHistory(allVersions)

	require.NotEmpty(t, out)
	assert.Equal(t, allVersions[1], out[0], "greatest release strictly before release_1.2 that isn't a matching release is release_1.1")

	for _, v := range out {
		assert.NotEqual(t, addedAt.String(), v.String(), "the entity's own added-at version must never appear")
	}
}

func TestClientQueueNames_MainAlwaysFirst(t *testing.T) {
	d := &descriptions.Descriptions{
		Entities: []descriptions.Entity{
			{Name: "Widget", ClientQueueName: "background"},
			{Name: "Gadget", ClientQueueName: "main"},
			{Name: "Gizmo"},
		},
	}

	names := d.ClientQueueNames()
	assert.Equal(t, []string{"main", "background"}, names)
}

func TestClientQueueNames_NoExplicitQueuesYieldsOnlyMain(t *testing.T) {
	d := &descriptions.Descriptions{Entities: []descriptions.Entity{{Name: "Widget"}}}
	assert.Equal(t, []string{"main"}, d.ClientQueueNames())
}

func TestEndpointsWithMergeableIdentifiers(t *testing.T) {
	entity := descriptions.EndpointPayloadEntity{EntityName: "Widget"}

	mutableWrite := &descriptions.ReadWriteEndpointPayload{Entity: entity}
	immutableWrite := &descriptions.ReadWriteEndpointPayload{Entity: descriptions.EndpointPayloadEntity{EntityName: "Frozen"}}

	d := &descriptions.Descriptions{
		Entities: []descriptions.Entity{
			{Name: "Widget", Properties: []descriptions.EntityProperty{{Name: "label", Mutable: true}}},
			{Name: "Frozen", Properties: []descriptions.EntityProperty{{Name: "label", Mutable: false}}},
		},
		Endpoints: []descriptions.EndpointPayload{
			{Name: "zzz_last", WritePayload: mutableWrite},
			{Name: "frozen_endpoint", WritePayload: immutableWrite},
			{Name: "read_only", ReadPayload: &descriptions.ReadWriteEndpointPayload{Entity: entity}},
		},
	}

	out, err := d.EndpointsWithMergeableIdentifiers()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "zzz_last", out[0].Name)
}

func TestEndpointsWithMergeableIdentifiers_UnknownEntityFails(t *testing.T) {
	d := &descriptions.Descriptions{
		Endpoints: []descriptions.EndpointPayload{
			{
				Name: "orphan",
				WritePayload: &descriptions.ReadWriteEndpointPayload{
					Entity: descriptions.EndpointPayloadEntity{EntityName: "DoesNotExist"},
				},
			},
		},
	}

	_, err := d.EndpointsWithMergeableIdentifiers()
	require.Error(t, err)
	assert.True(t, descerr.Of(err, descerr.KindEntityNotFound))
}
