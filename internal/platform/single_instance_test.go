package platform

import (
	"net"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuardAddressIsStableAndInRange(t *testing.T) {
	address := guardAddress("DanaOverlay")
	assert.Equal(t, address, guardAddress("DanaOverlay"))

	_, portText, err := net.SplitHostPort(address)
	require.NoError(t, err)
	port, err := strconv.Atoi(portText)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, port, minGuardPort)
	assert.LessOrEqual(t, port, maxGuardPort)
}

func TestAcquireSingleInstanceRejectsSecondOwner(t *testing.T) {
	name := "DanaOverlay-test-" + t.Name()
	guard, err := AcquireSingleInstance(name)
	if err != nil {
		t.Skipf("guard port unavailable: %v", err)
	}

	_, err = AcquireSingleInstance(name)
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	require.NoError(t, guard.Release())
	require.NoError(t, guard.Release())

	again, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	require.NoError(t, again.Release())
}

func TestNoopHider(t *testing.T) {
	hider := NoopHider()
	assert.False(t, hider.SupportsHiddenAttribute())
	assert.NoError(t, hider.Hide("missing"))
	assert.NoError(t, hider.Unhide("missing"))
}
