package adminapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateImages(t *testing.T) {
	out, valid := validateImages([]string{" a.jpg ", "", "b.jpg"})
	assert.True(t, valid)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, out)

	_, valid = validateImages(nil)
	assert.False(t, valid)

	_, valid = validateImages([]string{"  ", ""})
	assert.False(t, valid)
}
