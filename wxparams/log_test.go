package wxparams

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_SetLogLevel(t *testing.T) {
	for _, level := range []string{"DEBUG", "info", "WARN", "CRITICAL", "ERROR"} {
		assert.NoError(t, SetLogLevel(level))
	}
	assert.ErrorIs(t, SetLogLevel("VERBOSE"), ErrUnknownLogLevel)
}
