package version_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucidgen/core/version"
)

func TestParse_DescriptionDotted(t *testing.T) {
	v, err := version.Parse("1.2.3", version.SourceDescription)
	require.NoError(t, err)
	assert.Equal(t, 1, v.Major)
	assert.Equal(t, 2, v.Minor)
	assert.True(t, v.HasPatch())
	assert.Equal(t, 3, v.Patch)
	assert.False(t, v.HasBuild())
	assert.Equal(t, version.TagOther, v.Tag)
}

func TestParse_GitTagWithBuild(t *testing.T) {
	v, err := version.Parse("release_2.10-7", version.SourceGitTag)
	require.NoError(t, err)
	assert.Equal(t, 2, v.Major)
	assert.Equal(t, 10, v.Minor)
	assert.False(t, v.HasPatch())
	assert.True(t, v.HasBuild())
	assert.Equal(t, 7, v.Build)
	assert.Equal(t, version.TagReleaseAppStore, v.Tag)
}

func TestParse_BetaReleaseCoreData(t *testing.T) {
	v, err := version.Parse("beta_release_1_4-9", version.SourceCoreData)
	require.NoError(t, err)
	assert.Equal(t, 1, v.Major)
	assert.Equal(t, 4, v.Minor)
	assert.Equal(t, 9, v.Build)
	assert.Equal(t, version.TagReleaseBeta, v.Tag)
}

func TestParse_MissingMajorMinor(t *testing.T) {
	_, err := version.Parse("not-a-version", version.SourceDescription)
	require.ErrorIs(t, err, version.ErrCouldNotFormFromString)
}

func TestCompare_Ordering(t *testing.T) {
	mustParse := func(s string) version.Version {
		v, err := version.Parse(s, version.SourceGitTag)
		require.NoError(t, err)

		return v
	}

	v123 := mustParse("1.2.3")
	v1231 := mustParse("1.2.3-1")
	v124 := mustParse("1.2.4")

	assert.True(t, v123.Less(v1231))
	assert.True(t, v1231.Less(v124))
	assert.True(t, v123.Less(v124))
}

func TestIsMatchingRelease(t *testing.T) {
	a, err := version.Parse("1.2.3-5", version.SourceGitTag)
	require.NoError(t, err)
	b, err := version.Parse("1.2.3-9", version.SourceGitTag)
	require.NoError(t, err)

	assert.True(t, a.IsMatchingRelease(b))

	c, err := version.Parse("1.2.4", version.SourceGitTag)
	require.NoError(t, err)
	assert.False(t, a.IsMatchingRelease(c))
}

func TestZero(t *testing.T) {
	z := version.Zero()
	assert.Equal(t, 0, z.Major)
	assert.Equal(t, 0, z.Minor)
	assert.False(t, z.HasPatch())
	assert.False(t, z.HasBuild())
	assert.Equal(t, version.TagOther, z.Tag)
}

func TestString(t *testing.T) {
	v, err := version.Parse("1.2.3-7", version.SourceGitTag)
	require.NoError(t, err)
	assert.Equal(t, "1.2.3-7", v.String())
}
