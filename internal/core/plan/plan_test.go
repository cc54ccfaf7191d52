package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLimitFor(t *testing.T) {
	assert.Equal(t, int64(100), LimitFor("demo"))
	assert.Equal(t, int64(500), LimitFor("onetime"))
	assert.Equal(t, int64(1000), LimitFor("basic"))
	assert.Equal(t, int64(5000), LimitFor("standard"))
	assert.Equal(t, Unlimited, LimitFor("premium"))
}

func TestLimitForUnknownDefaultsToDemo(t *testing.T) {
	assert.Equal(t, int64(100), LimitFor("unknown-plan"))
	assert.Equal(t, int64(100), LimitFor(""))
}

func TestLimitForIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, Unlimited, LimitFor("Premium"))
	assert.Equal(t, int64(5000), LimitFor(" STANDARD "))
}
