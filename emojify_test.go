package emojify

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/emojify/assets"
	"github.com/npillmayer/emojify/match"
	"github.com/npillmayer/emojify/seqtab"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cdn = "https://s.w.org/images/core/emoji/15.1/72x72/"

func TestNoEmoji(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojify")
	defer teardown()
	//
	for _, text := range []string{
		"",
		"Hello, World!",
		"\u2019s \u00A9 2024 \u263A #1",
		"&#x41;&#x1f642",
		"\xff\xfe broken UTF-8",
	} {
		assert.Equal(t, text, Encode(text))
		assert.Equal(t, text, Staticize(text))
	}
}

func TestSimpleAndComposite(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojify")
	defer teardown()
	//
	assert.Equal(t, "&#x1f642;", Encode("\U0001F642"))
	woman := "\U0001F46E\U0001F3FC\u200D\u2640\uFE0F"
	refs := Encode(woman)
	assert.Equal(t, "&#x1f46e;&#x1f3fc;&#x200d;&#x2640;&#xfe0f;", refs)
	assert.Equal(t, refs, Encode(refs))
	img := Staticize(woman)
	assert.Contains(t, img, `src="`+cdn+`1f46e-1f3fc-200d-2640-fe0f.png"`)
	assert.Equal(t, img, Staticize(refs))
	assert.Contains(t, img, `alt="`+woman+`"`)
}

func TestPatterns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojify")
	defer teardown()
	//
	cp, ent := Pattern(match.Codepoints), Pattern(match.Entities)
	assert.NotEqual(t, cp, ent)
	assert.True(t, strings.HasPrefix(ent, "(?i)"))
	assert.Contains(t, cp, `\x{1f642}`)
	assert.Contains(t, ent, "&#x1f642;")
	assert.Equal(t, cp, Pattern(match.Codepoints))
}

func TestNewWithConfiguration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojify")
	defer teardown()
	//
	conf := testconfig.Conf{
		KeyRasterURL: "https://cdn.example.org/png/",
		KeyVectorURL: "https://cdn.example.org/svg/",
		KeyClass:     "emoji",
	}
	rw, err := New(conf)
	require.NoError(t, err)
	out := rw.Staticize("\U0001F9DA")
	assert.Contains(t, out, `src="https://cdn.example.org/png/1f9da.png"`)
	assert.Contains(t, out, `class="emoji"`)
	s := rw.Settings()
	assert.Equal(t, "https://cdn.example.org/png/", s.BaseURL)
	assert.Equal(t, "https://cdn.example.org/svg/", s.SVGURL)
	assert.Equal(t, seqtab.Default(), rw.Table())
	// the default rewriter is not affected
	assert.Contains(t, Staticize("\U0001F9DA"), `src="`+cdn+`1f9da.png"`)
}

func TestResolverOverride(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojify")
	defer teardown()
	//
	rw, err := New(nil)
	require.NoError(t, err)
	assert.Contains(t, rw.Staticize("\U0001F642"), cdn)
	encoded := rw.Encode("Servus \U0001F642!")
	rw.Resolver().Register(assets.Raster, assets.Const("/local/emoji/"))
	assert.Contains(t, rw.Staticize("\U0001F642"), `src="/local/emoji/1f642.png"`)
	assert.Equal(t, encoded, rw.Encode("Servus \U0001F642!"))
	assert.Equal(t, "Servus &#x1f642;!", encoded)
	rw.Resolver().Remove(assets.Raster)
	assert.Contains(t, rw.Staticize("\U0001F642"), cdn)
}

func TestStatuses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojify")
	defer teardown()
	//
	rw, err := New(testconfig.Conf{KeyStatuses: "fully-qualified"})
	require.NoError(t, err)
	assert.Less(t, rw.Table().Len(), seqtab.Default().Len())
	assert.Equal(t, "15.1", rw.Table().Version())
	// skin tone modifiers are components and are not loaded
	assert.Equal(t, "\U0001F3FC", rw.Encode("\U0001F3FC"))
	assert.Equal(t, "&#x1f3fc;", Encode("\U0001F3FC"))
	//
	rw, err = New(testconfig.Conf{KeyStatuses: "unqualified, component"})
	require.NoError(t, err)
	assert.Equal(t, "&#x263a;", rw.Encode("\u263A"))
	//
	_, err = New(testconfig.Conf{KeyStatuses: "fully-qualified,sort-of"})
	assert.True(t, errors.Is(err, seqtab.ErrBadStatus))
}
