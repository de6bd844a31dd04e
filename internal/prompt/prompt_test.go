package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsole(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader("Y\n\n42\nDELETE EVERYTHING\n"), &out)

	assert.True(t, c.Confirm("Add more?"))
	assert.Equal(t, 150, c.AskInt("How many appointments?", 150))
	assert.Equal(t, 42, c.AskInt("How many records?", 25))
	assert.Equal(t, "DELETE EVERYTHING", c.Ask("Type it: "))
	// input exhausted
	assert.False(t, c.Confirm("Again?"))

	assert.Contains(t, out.String(), "Add more? (y/n): ")
	assert.Contains(t, out.String(), "How many appointments? [150]: ")
}

func TestIsYes(t *testing.T) {
	assert.True(t, IsYes("y"))
	assert.True(t, IsYes(" Y "))
	assert.False(t, IsYes("yes"))
	assert.False(t, IsYes(""))
}

func TestAutoConfirm(t *testing.T) {
	next := NewScripted("typed")
	a := NewAutoConfirm(next)

	assert.True(t, a.Confirm("anything"))
	assert.Equal(t, 7, a.AskInt("count", 7))
	assert.Equal(t, "typed", a.Ask("free text"))
	assert.Len(t, next.Asked, 1)
}

func TestScripted(t *testing.T) {
	s := NewScripted("n", "12")
	assert.False(t, s.Confirm("q1"))
	assert.Equal(t, 12, s.AskInt("q2", 3))
	assert.Equal(t, 3, s.AskInt("q3", 3))
	assert.Equal(t, []string{"q1", "q2", "q3"}, s.Asked)
}
