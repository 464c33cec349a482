package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestionOptionValues(t *testing.T) {
	q := Question{Options: `["A","B","C"]`}
	assert.Equal(t, []string{"A", "B", "C"}, q.OptionValues())

	empty := Question{}
	assert.Nil(t, empty.OptionValues())

	malformed := Question{Options: "not json"}
	assert.Nil(t, malformed.OptionValues())
}
