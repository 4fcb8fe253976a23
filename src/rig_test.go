package outrigger

import (
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRigNilHandle(t *testing.T) {
	assert.Equal(t, int(syscall.EINVAL), set_frequency(nil, 1))
	assert.Equal(t, uint64(0), get_frequency(nil))
	assert.Equal(t, int(syscall.EINVAL), set_mode(nil, MODE_USB))
	assert.Equal(t, MODE_UNKNOWN, get_mode(nil))
	assert.Equal(t, VFO_UNKNOWN, get_vfo(nil))
	assert.Equal(t, -1, get_ptt(nil))
	assert.Equal(t, -1, get_squelch(nil))
	assert.Equal(t, -1, get_smeter(nil))
	assert.Equal(t, int(syscall.EINVAL), close_rig(nil))
}

func TestRigMissingOperations(t *testing.T) {
	// A rig with no callbacks: acknowledgement ops say ENOTSUP,
	// query ops return their sentinel.
	var r = &rig{}

	assert.Equal(t, int(syscall.ENOTSUP), set_frequency(r, 1))
	assert.Equal(t, uint64(0), get_frequency(r))
	assert.Equal(t, int(syscall.ENOTSUP), set_split_frequency(r, 1, 2))
	var ret, _, _ = get_split_frequency(r)
	assert.Equal(t, int(syscall.ENOTSUP), ret)
	assert.Equal(t, int(syscall.ENOTSUP), set_ptt(r, true))
	assert.Equal(t, -1, get_ptt(r))
	assert.Equal(t, 0, close_rig(r))
}

func TestRigModeMaskGates(t *testing.T) {
	var called = false
	var r = &rig{
		supported_modes: MODE_USB | MODE_LSB,
		set_mode: func(cbdata any, m rig_modes) int {
			called = true
			return 0
		},
	}

	assert.Equal(t, 0, set_mode(r, MODE_USB))
	assert.True(t, called)

	called = false
	assert.Equal(t, int(syscall.ENOTSUP), set_mode(r, MODE_FM))
	assert.False(t, called)
}

func TestRigVFOMaskGates(t *testing.T) {
	var r = &rig{
		supported_vfos: VFO_A | VFO_B,
		set_vfo:        func(cbdata any, v vfos) int { return 0 },
	}

	assert.Equal(t, 0, set_vfo(r, VFO_B))
	assert.Equal(t, int(syscall.ENOTSUP), set_vfo(r, VFO_MEMORY))
	assert.Equal(t, int(syscall.ENOTSUP), set_vfo(r, VFO_COM))
}

func TestRigModeBitsDisjoint(t *testing.T) {
	var all = []rig_modes{MODE_CW, MODE_CWN, MODE_CWR, MODE_CWRN,
		MODE_AM, MODE_LSB, MODE_USB, MODE_FM, MODE_FSK}

	var union rig_modes
	for _, m := range all {
		assert.Zero(t, union&m, "mode bits must be disjoint")
		union |= m
	}
}

func TestSupportedRigsTable(t *testing.T) {
	var seen = map[string]bool{}
	for _, sr := range supported_rigs {
		assert.NotEmpty(t, sr.name)
		assert.NotNil(t, sr.init)
		assert.False(t, seen[sr.name])
		seen[sr.name] = true
	}
	assert.True(t, seen["TS-940S"])
}

func TestInitRigUnknownModel(t *testing.T) {
	var d = write_test_config(t, `
[shack]
rig = TS-0000
`)

	assert.Nil(t, init_rig(d, "shack"))
}
