package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateLegacyRecord(t *testing.T) {
	in := []RawProduct{{
		"id":       float64(1),
		"name":     "Spice Rack",
		"price":    float64(450),
		"image":    "a.jpg",
		"category": "Kitchen",
	}}

	out, changed := Migrate(in)
	require.True(t, changed)
	require.Len(t, out, 1)

	assert.Equal(t, []interface{}{"a.jpg"}, out[0]["images"])
	assert.NotContains(t, out[0], "image")
	assert.Equal(t, "Decors", out[0]["category"])
	// untouched fields pass through
	assert.Equal(t, "Spice Rack", out[0]["name"])
}

func TestMigrateCategoryMap(t *testing.T) {
	cases := map[string]string{
		"Home Decor": "Decors",
		"Kitchen":    "Decors",
		"Storage":    "Decors",
		"Wall Art":   "Decors",
		"Self Care":  "Gifts",
		"Gifts":      "Gifts",
		"Decors":     "Decors",
	}
	for legacy, want := range cases {
		out, _ := Migrate([]RawProduct{{"category": legacy, "images": []interface{}{"x.jpg"}}})
		assert.Equal(t, want, out[0]["category"], "category %q", legacy)
	}
}

func TestMigrateIdempotent(t *testing.T) {
	in := []RawProduct{
		{"name": "Candle", "image": "c.jpg", "category": "Self Care"},
		{"name": "Vase", "images": []interface{}{"v.jpg"}, "category": "Decors"},
	}

	once, changed := Migrate(in)
	require.True(t, changed)

	twice, changedAgain := Migrate(once)
	assert.False(t, changedAgain)
	assert.Equal(t, once, twice)
}

func TestMigrateDoesNotTouchCurrentRecords(t *testing.T) {
	in := []RawProduct{{"name": "Vase", "images": []interface{}{"v.jpg"}, "category": "Decors"}}
	out, changed := Migrate(in)
	assert.False(t, changed)
	assert.Equal(t, in, out)
}

func TestMigrateKeepsSingularImageWhenImagesPresent(t *testing.T) {
	// rule (a) only applies when images is absent; an extra legacy field
	// rides along as an unrecognized field
	in := []RawProduct{{"image": "old.jpg", "images": []interface{}{"new.jpg"}, "category": "Gifts"}}
	out, changed := Migrate(in)
	assert.False(t, changed)
	assert.Equal(t, "old.jpg", out[0]["image"])
}

func TestMigrateRecordWithoutAnyImageIsPassedThrough(t *testing.T) {
	in := []RawProduct{{"name": "Broken", "category": "Gifts"}}
	out, changed := Migrate(in)
	assert.False(t, changed)
	assert.NotContains(t, out[0], "images")
}

func TestMigrateEmpty(t *testing.T) {
	out, changed := Migrate(nil)
	assert.False(t, changed)
	assert.Empty(t, out)
}
