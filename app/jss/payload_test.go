package jss

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPayloadComputerWithName(t *testing.T) {
	out, err := BuildPayload(KindComputer, "Lab Mac 12", "AT-42")
	require.NoError(t, err)

	s := string(out)
	assert.True(t, strings.HasPrefix(s, `<?xml version="1.0" encoding="UTF-8" standalone="no"?>`))
	assert.Contains(t, s, "<computer><general>")
	assert.Contains(t, s, "<name>Lab Mac 12</name>")
	assert.Contains(t, s, "<asset_tag>AT-42</asset_tag>")
	assert.True(t, strings.HasSuffix(s, "</computer>"))
}

func TestBuildPayloadMobileDeviceWithoutName(t *testing.T) {
	out, err := BuildPayload(KindMobileDevice, "", "AT-7")
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, "<mobile_device><general>")
	assert.NotContains(t, s, "<name>")
	assert.Contains(t, s, "<asset_tag>AT-7</asset_tag>")
}

func TestBuildPayloadEmptyAssetTagStillPresent(t *testing.T) {
	// blank tags are pushed as-is; guarding against them is a policy
	// decision left to the operator
	out, err := BuildPayload(KindComputer, "", "")
	require.NoError(t, err)
	assert.Contains(t, string(out), "<asset_tag></asset_tag>")
}

func TestBuildPayloadEscapesMarkup(t *testing.T) {
	out, err := BuildPayload(KindComputer, `Eve's <Mac>`, "AT&1")
	require.NoError(t, err)

	s := string(out)
	assert.NotContains(t, s, "<Mac>")
	assert.Contains(t, s, "AT&amp;1")
}

func TestKindResource(t *testing.T) {
	assert.Equal(t, "computers", KindComputer.Resource())
	assert.Equal(t, "mobiledevices", KindMobileDevice.Resource())
}

func TestParseKind(t *testing.T) {
	k, ok := ParseKind("mobile_device")
	require.True(t, ok)
	assert.Equal(t, KindMobileDevice, k)

	_, ok = ParseKind("toaster")
	assert.False(t, ok)
}

func TestProbeOrderMobileFirst(t *testing.T) {
	require.Len(t, ProbeOrder, 2)
	assert.Equal(t, KindMobileDevice, ProbeOrder[0])
	assert.Equal(t, KindComputer, ProbeOrder[1])
}
