package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPulseProduct(t *testing.T) {
	const chain = `broadcaster -> a
%a -> inv, con
&inv -> b
%b -> con
&con -> output`
	assert.Equal(t, 11687500, pulseProduct(chain, 1000))

	// The button's own pulse counts.
	n := parseNetwork(chain)
	low, high := n.press(nil)
	assert.Equal(t, 4, low)
	assert.Equal(t, 4, high)
}

func TestPressesToActivate(t *testing.T) {
	// b first fires high on press 2, d on press 4.
	const counter = `broadcaster -> a
%a -> b
%b -> con, d
%d -> con
&con -> rx`
	got, err := pressesToActivate(counter, "rx", 100)
	require.NoError(t, err)
	assert.Equal(t, 4, got)

	_, err = pressesToActivate(counter+"\n%e -> rx", "rx", 100)
	assert.Error(t, err)

	_, err = pressesToActivate(counter, "output", 100)
	assert.Error(t, err)
}
