package xpos

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestParse(t *testing.T) {
	tag, err := Parse("Ncsmd")
	require.NoError(t, err)
	assert.Equal(t, "Ncsmd", tag.String())
	assert.Equal(t, byte('N'), tag.Category())
	assert.Equal(t, "Nc", tag.Prefix())

	for _, raw := range []string{"", "ncsmd", "-", "'s"} {
		_, err := Parse(raw)
		assert.True(t, errors.Is(err, ErrMalformed), raw)
	}
}

func TestShortTags(t *testing.T) {
	tag := MustParse("W")
	assert.Equal(t, "W", tag.Prefix())
	assert.Equal(t, GenderUnknown, tag.Gender())
	assert.Equal(t, TenseUnknown, tag.Tense())
	_, ok := tag.At(4)
	assert.False(t, ok)
	assert.False(t, tag.Oblique())
	assert.Panics(t, func() { MustParse("") })
}

func TestOblique(t *testing.T) {
	oblique := []string{"Ncsmd", "Ncsmg", "Ncsmge*", "Ncpmge", "Nn-mv", "Nv"}
	for _, raw := range oblique {
		assert.True(t, MustParse(raw).Oblique(), raw)
	}
	direct := []string{"Ncsmn", "Ncpmne", "Nt", "Nn-mn", "Aq-smn"}
	for _, raw := range direct {
		assert.False(t, MustParse(raw).Oblique(), raw)
	}
}

func TestEmphatic(t *testing.T) {
	assert.True(t, MustParse("Ncpmne").Emphatic())
	assert.True(t, MustParse("Ncsmge*").Emphatic())
	assert.True(t, MustParse("Pp1s--e").Emphatic())
	assert.False(t, MustParse("Ncsmg").Emphatic())
}

func TestNounFields(t *testing.T) {
	tag := MustParse("Ncpfg")
	assert.True(t, tag.Plural())
	assert.Equal(t, GenderFeminine, tag.Gender())
	assert.Equal(t, CaseGenitive, tag.FinalCase())

	tag = MustParse("Ncsmd")
	assert.False(t, tag.Plural())
	assert.Equal(t, GenderMasculine, tag.Gender())
	assert.Equal(t, CaseDative, tag.FinalCase())

	assert.Equal(t, GenderUnknown, MustParse("Aq-smn").Gender())
}

func TestVerbFields(t *testing.T) {
	assert.True(t, MustParse("V-f--r").Relative())
	assert.False(t, MustParse("V-f").Relative())
	assert.True(t, MustParse("Vm-2p").Imperative())
	assert.Equal(t, TenseConditional, MustParse("V-h1p").Tense())
	assert.Equal(t, TensePast, MustParse("V-s0").Tense())

	person, ok := MustParse("V-h1p").Person()
	assert.True(t, ok)
	assert.Equal(t, byte('1'), person)
	person, ok = MustParse("V-s0").Person()
	assert.True(t, ok)
	assert.Equal(t, byte('0'), person)
	_, ok = MustParse("V-p").Person()
	assert.False(t, ok)
}

func TestPrefixHelpers(t *testing.T) {
	tag := MustParse("Pp3sm-e")
	assert.True(t, tag.HasPrefix("Pp"))
	assert.True(t, tag.HasAnyPrefix("Px", "Pp"))
	assert.False(t, tag.Is("Pp"))
	assert.True(t, MustParse("Cc").Is("Cs", "Cc"))
}
