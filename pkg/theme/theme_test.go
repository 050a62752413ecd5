package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/weekend/pkg/activity"
)

func TestRegistry(t *testing.T) {
	assert.Equal(t, []ID{Default, Lazy, Adventurous, Family}, IDs())

	lazy, ok := Lookup(Lazy)
	require.True(t, ok)
	assert.Equal(t, "Lazy Weekend", lazy.Name)

	_, ok = Lookup("gothic")
	assert.False(t, ok)
	assert.Equal(t, Default, Get("gothic").ID)
}

func TestAllIsACopy(t *testing.T) {
	all := All()
	all[0].SuggestedMoods[0] = "grumpy"
	assert.Equal(t, "relaxed", Get(Default).SuggestedMoods[0])
}

func TestParse(t *testing.T) {
	id, err := Parse(" Family ")
	require.NoError(t, err)
	assert.Equal(t, Family, id)

	_, err = Parse("gothic")
	assert.Error(t, err)
}

func TestRecommended(t *testing.T) {
	c := activity.Default()
	hike, _ := c.Lookup(1)
	spa, _ := c.Lookup(14)

	adv := Get(Adventurous)
	assert.True(t, adv.Recommended(hike))
	assert.False(t, adv.Recommended(spa))
	assert.True(t, Get(Lazy).Recommended(spa))

	assert.Len(t, c.Matching(adv.SuggestedMoods), 9)
}

func TestParseHSL(t *testing.T) {
	h, s, l, err := ParseHSL("hsl(158, 64%, 52%)")
	require.NoError(t, err)
	assert.InDelta(t, 158, h, 1e-9)
	assert.InDelta(t, 0.64, s, 1e-9)
	assert.InDelta(t, 0.52, l, 1e-9)

	for _, bad := range []string{"", "rgb(1,2,3)", "hsl(1,2)", "hsl(a, 2%, 3%)"} {
		_, _, _, err := ParseHSL(bad)
		assert.Error(t, err, bad)
	}
}

func TestHex(t *testing.T) {
	got, err := HexOf("hsl(0, 100%, 50%)")
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", got)

	p, s, a, err := Get(Family).Colors.Hex()
	require.NoError(t, err)
	for _, v := range []string{p, s, a} {
		assert.Len(t, v, 7)
	}
	assert.NotEqual(t, p, s)
}
