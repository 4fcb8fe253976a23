package outrigger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write_test_config(t *testing.T, contents string) *config_dict {
	t.Helper()

	var path = filepath.Join(t.TempDir(), "outrigger.ini")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))

	var d = load_config(path)
	require.NotNil(t, d)
	return d
}

func TestConfigLookups(t *testing.T) {
	var d = write_test_config(t, `
[shack]
rig = TS-940S
rigctld_address = 127.0.0.1
port = /dev/ttyU0
speed = 4800
`)

	assert.Equal(t, []string{"shack"}, config_sections(d))

	assert.Equal(t, "TS-940S", get_string(d, "shack", "rig", ""))
	assert.Equal(t, "/dev/ttyU0", get_string(d, "shack", "port", ""))
	assert.Equal(t, 4800, get_int(d, "shack", "speed", 9600))

	// Defaults apply for missing keys and unparsable ints.
	assert.Equal(t, "4532", get_string(d, "shack", "rigctld_port", "4532"))
	assert.Equal(t, 9600, get_int(d, "shack", "nonexistent", 9600))
	assert.Equal(t, 7, get_int(d, "shack", "rig", 7))
}

func TestConfigSetDefault(t *testing.T) {
	var d = write_test_config(t, `
[shack]
rig = TS-940S
stopbits = 1
`)

	// set_default must not clobber an explicit setting...
	assert.Equal(t, 0, set_default(d, "shack", "stopbits", "2"))
	assert.Equal(t, 1, get_int(d, "shack", "stopbits", 2))

	// ...but fills in missing ones.
	assert.Equal(t, 0, set_default(d, "shack", "speed", "4800"))
	assert.Equal(t, 4800, get_int(d, "shack", "speed", 9600))
}

func TestConfigNilSafety(t *testing.T) {
	assert.Equal(t, "x", get_string(nil, "a", "b", "x"))
	assert.Equal(t, 9, get_int(nil, "a", "b", 9))
	assert.Equal(t, -1, set_default(nil, "a", "b", "c"))
}

func TestConfigMissingFile(t *testing.T) {
	assert.Nil(t, load_config("/nonexistent/outrigger.ini"))
}

func TestConfigMultipleRigs(t *testing.T) {
	var d = write_test_config(t, `
[hf]
rig = TS-940S

[vhf]
rig = TS-711

[uhf]
rig = TS-811
`)

	assert.Equal(t, []string{"hf", "vhf", "uhf"}, config_sections(d))
}
