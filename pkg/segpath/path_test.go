package segpath_test

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/pathlex/pkg/patherrors"
	"github.com/macropower/pathlex/pkg/segment"
	"github.com/macropower/pathlex/pkg/segpath"
)

func TestParseRoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"/",
		".",
		"..",
		"C:/foo/bar/../",
		"./foo.bar",
		"../../a/b",
		"/usr/local/bin/",
		"..foo/.bar/...",
		"a/./b",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			p, err := segpath.Parse(input)
			require.NoError(t, err)
			assert.Equal(t, input, p.String())

			again, err := segpath.Parse(p.String())
			require.NoError(t, err)
			assert.True(t, p.Equal(again))
		})
	}
}

func TestParseNormalizesSeparatorRuns(t *testing.T) {
	t.Parallel()

	p := segpath.MustParse(`C:\\foo//bar\/`)
	assert.Equal(t, "C:/foo/bar/", p.String())
	assert.Equal(t, `C:\foo\bar\`, p.RenderWith('\\'))
}

func TestPlatform(t *testing.T) {
	t.Parallel()

	p := segpath.MustParse("C:/foo/bar/../")
	want := strings.ReplaceAll("C:/foo/", "/", string(filepath.Separator))

	assert.Equal(t, want, p.Dedot().Platform())
	assert.Equal(t, p.Platform(), p.Native())
}

func TestFromNative(t *testing.T) {
	t.Parallel()

	p, err := segpath.FromNative(filepath.Join("a", "b"))
	require.NoError(t, err)
	assert.Equal(t, "a/b", p.String())

	_, err = segpath.FromNative("a/\xff/b")
	require.ErrorIs(t, err, patherrors.ErrConvert)
}

func TestEqual(t *testing.T) {
	t.Parallel()

	ab := segpath.MustParse("a/b")
	adotb := segpath.MustParse("a/./b")

	assert.False(t, ab.Equal(adotb))
	assert.True(t, ab.Equal(adotb.Dedot()))
	assert.True(t, ab.Equal(segpath.MustParse(`a\b`)))
	assert.True(t, (&segpath.Path{}).Equal(segpath.MustParse("")))
}

func TestHash(t *testing.T) {
	t.Parallel()

	assert.Equal(t, segpath.MustParse("a/b").Hash(), segpath.MustParse(`a\\b`).Hash())
	assert.NotEqual(t, segpath.MustParse("a/b").Hash(), segpath.MustParse("a/b/").Hash())

	split := segpath.FromSegments(segment.Lit("a"), segment.Lit("b"))
	merged := segpath.FromSegments(segment.Lit("ab"))
	assert.False(t, split.Equal(merged))
	assert.NotEqual(t, split.Hash(), merged.Hash())
	assert.Equal(t, split.String(), merged.String())
}

func TestAccessors(t *testing.T) {
	t.Parallel()

	p := segpath.MustParse("/a/..")
	assert.Equal(t, 4, p.Len())
	assert.False(t, p.IsEmpty())

	last, ok := p.Last()
	require.True(t, ok)
	assert.Equal(t, segment.ParentDir(), last)

	segs := p.Segments()
	segs[0] = segment.Lit("x")
	assert.Equal(t, "/a/..", p.String())

	empty := &segpath.Path{}
	assert.True(t, empty.IsEmpty())
	_, ok = empty.Last()
	assert.False(t, ok)
}

func TestTextMarshaling(t *testing.T) {
	t.Parallel()

	type doc struct {
		Path *segpath.Path `json:"path"`
	}

	b, err := json.Marshal(doc{Path: segpath.MustParse(`C:\foo\.\bar`)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"path": "C:/foo/./bar"}`, string(b))

	var got doc
	require.NoError(t, json.Unmarshal([]byte(`{"path": "x/../y"}`), &got))
	require.NotNil(t, got.Path)
	assert.Equal(t, "y", got.Path.Dedot().String())
}

func TestMustParse(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		segpath.MustParse("anything at all")
	})
}
