package outrigger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

/* A scripted rig for driving the dispatcher without any hardware. */

type stub_rig struct {
	freq     uint64
	mode     rig_modes
	vfo      vfos
	ptt      int
	split    bool
	split_rx uint64
	split_tx uint64
	smeter   int /* -1 = not fitted */

	set_freq_calls  []uint64
	set_split_calls [][2]uint64
	set_vfo_calls   []vfos
}

func stub_connection(sr *stub_rig) (*connection, *rig) {
	var r = &rig{
		supported_modes: MODE_CW | MODE_CWR | MODE_AM | MODE_LSB | MODE_USB | MODE_FM | MODE_FSK,
		supported_vfos:  VFO_A | VFO_B | VFO_MEMORY,
	}
	r.set_frequency = func(cbdata any, f uint64) int {
		sr.set_freq_calls = append(sr.set_freq_calls, f)
		sr.freq = f
		return 0
	}
	r.get_frequency = func(cbdata any) uint64 { return sr.freq }
	r.set_split_frequency = func(cbdata any, rx uint64, tx uint64) int {
		sr.set_split_calls = append(sr.set_split_calls, [2]uint64{rx, tx})
		sr.split = true
		sr.split_rx = rx
		sr.split_tx = tx
		return 0
	}
	r.get_split_frequency = func(cbdata any) (int, uint64, uint64) {
		if !sr.split {
			return 2, 0, 0
		}
		return 0, sr.split_rx, sr.split_tx
	}
	r.set_mode = func(cbdata any, m rig_modes) int { sr.mode = m; return 0 }
	r.get_mode = func(cbdata any) rig_modes { return sr.mode }
	r.set_vfo = func(cbdata any, v vfos) int {
		sr.set_vfo_calls = append(sr.set_vfo_calls, v)
		sr.vfo = v
		return 0
	}
	r.get_vfo = func(cbdata any) vfos { return sr.vfo }
	r.set_ptt = func(cbdata any, tx bool) int {
		sr.ptt = IfThenElse(tx, 1, 0)
		return 0
	}
	r.get_ptt = func(cbdata any) int { return sr.ptt }
	if sr.smeter >= 0 {
		r.get_smeter = func(cbdata any) int { return sr.smeter }
	}

	return &connection{rig: r}, r
}

func dispatch(c *connection, line string) string {
	c.tx_buf = nil
	rigctld_handle_command(c, []byte(line))
	return string(c.tx_buf)
}

func TestRigctldSetFreq(t *testing.T) {
	var sr = &stub_rig{vfo: VFO_A, smeter: -1}
	var c, _ = stub_connection(sr)

	assert.Equal(t, "RPRT 0\n", dispatch(c, "F 14250000"))
	require.Len(t, sr.set_freq_calls, 1)
	assert.Equal(t, uint64(14250000), sr.set_freq_calls[0])

	// Scenario 2: read it back.
	assert.Equal(t, "14250000\n", dispatch(c, "f"))
}

func TestRigctldSetFreqBadArg(t *testing.T) {
	var sr = &stub_rig{smeter: -1}
	var c, _ = stub_connection(sr)

	assert.Equal(t, "RPRT -1\n", dispatch(c, "F"))
	assert.Equal(t, "RPRT -1\n", dispatch(c, "F x"))
	assert.Empty(t, sr.set_freq_calls)
}

func TestRigctldGetFreqZeroIsError(t *testing.T) {
	var sr = &stub_rig{smeter: -1}
	var c, _ = stub_connection(sr)

	assert.Equal(t, "RPRT -1\n", dispatch(c, "f"))
}

func TestRigctldErrnoNegated(t *testing.T) {
	var sr = &stub_rig{smeter: -1}
	var c, r = stub_connection(sr)
	r.set_frequency = func(cbdata any, f uint64) int { return 13 } /* EACCES */

	assert.Equal(t, "RPRT -13\n", dispatch(c, "F 14250000"))
}

func TestRigctldLongFormRewrite(t *testing.T) {
	var sr = &stub_rig{vfo: VFO_A, smeter: -1}
	var c, _ = stub_connection(sr)

	// Scenario 3: long form with the extra passband argument.
	assert.Equal(t, "RPRT 0\n", dispatch(c, "\\set_mode USB 2400"))
	assert.Equal(t, MODE_USB, sr.mode)

	// Scenario 4.
	assert.Equal(t, "USB\n0\n", dispatch(c, "m"))
}

func TestRigctldModeNames(t *testing.T) {
	var sr = &stub_rig{smeter: -1}
	var c, _ = stub_connection(sr)

	var names = map[string]rig_modes{
		"USB":  MODE_USB,
		"LSB":  MODE_LSB,
		"CW":   MODE_CW,
		"CWR":  MODE_CWR,
		"RTTY": MODE_FSK,
		"AM":   MODE_AM,
		"FM":   MODE_FM,
	}
	for name, mode := range names {
		require.Equal(t, "RPRT 0\n", dispatch(c, "M "+name+" 0"), name)
		assert.Equal(t, mode, sr.mode, name)
	}

	// Unknown names are a protocol error.
	assert.Equal(t, "RPRT -1\n", dispatch(c, "M WSPR 0"))
}

func TestRigctldVFO(t *testing.T) {
	var sr = &stub_rig{vfo: VFO_A, smeter: -1}
	var c, _ = stub_connection(sr)

	assert.Equal(t, "VFOA\n", dispatch(c, "v"))

	assert.Equal(t, "RPRT 0\n", dispatch(c, "V VFOB"))
	assert.Equal(t, VFO_B, sr.vfo)
	assert.Equal(t, "RPRT 0\n", dispatch(c, "V VFO")) /* alias for VFOA */
	assert.Equal(t, VFO_A, sr.vfo)
	assert.Equal(t, "RPRT 0\n", dispatch(c, "V MEM"))
	assert.Equal(t, VFO_MEMORY, sr.vfo)

	assert.Equal(t, "RPRT -1\n", dispatch(c, "V VFOC"))
}

func TestRigctldPTT(t *testing.T) {
	var sr = &stub_rig{smeter: -1}
	var c, _ = stub_connection(sr)

	assert.Equal(t, "0\n", dispatch(c, "t"))
	assert.Equal(t, "RPRT 0\n", dispatch(c, "T 1"))
	assert.Equal(t, "1\n", dispatch(c, "t"))
	assert.Equal(t, "RPRT 0\n", dispatch(c, "T 0"))
	assert.Equal(t, "0\n", dispatch(c, "t"))
}

func TestRigctldDCDUnsupported(t *testing.T) {
	// Zero-argument read of an unsupported operation: exactly one
	// RPRT -1 and nothing else.
	var sr = &stub_rig{smeter: -1}
	var c, _ = stub_connection(sr)

	assert.Equal(t, "RPRT -1\n", dispatch(c, "\x8b"))
}

func TestRigctldChkVFO(t *testing.T) {
	var sr = &stub_rig{smeter: -1}
	var c, _ = stub_connection(sr)

	// Scenario 5.
	assert.Equal(t, "CHKVFO 0\n", dispatch(c, "\\chk_vfo"))
}

func TestRigctldGetLevel(t *testing.T) {
	var sr = &stub_rig{smeter: 52}
	var c, _ = stub_connection(sr)

	assert.Equal(t, "3\n", dispatch(c, "l STRENGTH"))
	assert.Equal(t, "RPRT -1\n", dispatch(c, "l SQL"))

	var none = &stub_rig{smeter: -1}
	var c2, _ = stub_connection(none)
	assert.Equal(t, "RPRT -1\n", dispatch(c2, "l STRENGTH"))
}

func TestRigctldSplitVFOEnable(t *testing.T) {
	var sr = &stub_rig{vfo: VFO_A, freq: 14250000, smeter: -1}
	var c, r = stub_connection(sr)

	// The toggle dance reads the other VFO's frequency.  The stub
	// reports a different frequency once VFO B is selected.
	r.get_frequency = func(cbdata any) uint64 {
		if sr.vfo == VFO_B {
			return 14300000
		}
		return 14250000
	}

	assert.Equal(t, "RPRT 0\n", dispatch(c, "S 1 VFOB"))

	// Toggled away and back.
	require.Equal(t, []vfos{VFO_B, VFO_A}, sr.set_vfo_calls)
	require.Len(t, sr.set_split_calls, 1)
	assert.Equal(t, [2]uint64{14250000, 14300000}, sr.set_split_calls[0])

	// Scenario: get_split_vfo reports split on, TX on the other VFO.
	assert.Equal(t, "1\nVFOB\n", dispatch(c, "s"))
}

func TestRigctldSplitVFODisable(t *testing.T) {
	var sr = &stub_rig{vfo: VFO_A, freq: 14250000, smeter: -1}
	var c, _ = stub_connection(sr)

	assert.Equal(t, "RPRT 0\n", dispatch(c, "S 0 VFOA"))
	require.Len(t, sr.set_freq_calls, 1)
	assert.Equal(t, uint64(14250000), sr.set_freq_calls[0])
}

func TestRigctldSplitVFOFailureAborts(t *testing.T) {
	var sr = &stub_rig{vfo: VFO_A, smeter: -1}
	var c, r = stub_connection(sr)
	r.get_frequency = func(cbdata any) uint64 { return 0 }

	assert.Equal(t, "RPRT -1\n", dispatch(c, "S 1 VFOB"))
	assert.Empty(t, sr.set_split_calls)
}

func TestRigctldGetSplitFreqFallback(t *testing.T) {
	// Bug-for-bug: when split is off, a *successful* frequency read
	// aborts with RPRT -1 and a failed one prints its zero.
	var sr = &stub_rig{vfo: VFO_A, freq: 14250000, smeter: -1}
	var c, _ = stub_connection(sr)

	assert.Equal(t, "RPRT -1\n", dispatch(c, "i"))

	sr.freq = 0
	assert.Equal(t, "0\n", dispatch(c, "i"))

	sr.split = true
	sr.split_rx = 14250000
	sr.split_tx = 14300000
	assert.Equal(t, "14300000\n", dispatch(c, "i"))
}

func TestRigctldDumpState(t *testing.T) {
	var sr = &stub_rig{smeter: 40}
	var c, _ = stub_connection(sr)

	var out = dispatch(c, "\\dump_state")
	var lines = strings.Split(out, "\n")
	require.Equal(t, 23, len(lines)) /* 22 lines plus the trailing empty split */
	assert.Equal(t, "", lines[22])

	// Scenario 6: 19th line is the get-level mask, last is set-parm.
	assert.Equal(t, "0x40000000", lines[18])
	assert.Equal(t, "0x0", lines[21])
	assert.Equal(t, "0", lines[0])

	// Without an S-meter the level mask is zero.
	var none = &stub_rig{smeter: -1}
	var c2, _ = stub_connection(none)
	var out2 = dispatch(c2, "\\dump_state")
	assert.Equal(t, "0x0", strings.Split(out2, "\n")[18])
}

func TestRigctldConcatenatedShortCommands(t *testing.T) {
	var sr = &stub_rig{vfo: VFO_A, freq: 14250000, mode: MODE_USB, smeter: -1}
	var c, _ = stub_connection(sr)

	assert.Equal(t, "14250000\nUSB\n0\nVFOA\n", dispatch(c, "fmv"))
	assert.Equal(t, "14250000\nVFOA\n", dispatch(c, "f v"))
}

func TestRigctldArgCommandTerminatesLine(t *testing.T) {
	var sr = &stub_rig{vfo: VFO_A, smeter: -1}
	var c, _ = stub_connection(sr)

	// Everything after an argument-taking command belongs to it.
	var out = dispatch(c, "F 14250000 fmv")
	assert.Equal(t, "RPRT 0\n", out)
}

func TestRigctldUnknownCommand(t *testing.T) {
	var sr = &stub_rig{smeter: -1}
	var c, _ = stub_connection(sr)

	assert.Equal(t, "RPRT -1\n", dispatch(c, "Z"))
	assert.Equal(t, "RPRT -1\n", dispatch(c, "\\warp_factor 9"))
}

func TestShortenCmdsTableOrdering(t *testing.T) {
	// Longer names must come first so they are never clipped by a
	// shorter prefix.
	for i := 1; i < len(long_commands); i++ {
		assert.GreaterOrEqual(t,
			len(long_commands[i-1].long), len(long_commands[i].long))
	}
}

func TestShortenCmds(t *testing.T) {
	assert.Equal(t, "F 14250000", string(shorten_cmds([]byte("\\set_freq 14250000"))))
	assert.Equal(t, "\x8f", string(shorten_cmds([]byte("\\dump_state"))))
	assert.Equal(t, "l STRENGTH", string(shorten_cmds([]byte("\\get_level STRENGTH"))))
	assert.Equal(t, "I 14300000", string(shorten_cmds([]byte("\\set_split_freq 14300000"))))
}

/*
 * Round-trip law: shorten_cmds applied twice equals shorten_cmds
 * applied once, on arbitrary mixtures of long forms, short forms and
 * junk.
 */
func TestShortenCmdsIdempotent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		var n = rapid.IntRange(0, 5).Draw(rt, "n")
		var sb strings.Builder
		for i := 0; i < n; i++ {
			if rapid.Bool().Draw(rt, "kind") {
				sb.WriteString(long_commands[rapid.IntRange(0, len(long_commands)-1).Draw(rt, "cmd")].long)
			} else {
				sb.WriteString(rapid.StringMatching(`[a-zA-Z0-9 ]{0,8}`).Draw(rt, "text"))
			}
		}

		var once = shorten_cmds([]byte(sb.String()))
		var twice = shorten_cmds(append([]byte(nil), once...))
		require.Equal(rt, string(once), string(twice))
	})
}

func TestGetArg(t *testing.T) {
	var arg, rest = get_arg("F 14250000")
	assert.Equal(t, "14250000", arg)
	assert.Equal(t, "", rest)

	arg, rest = get_arg("M USB 2400")
	assert.Equal(t, "USB", arg)
	assert.Equal(t, "2400", rest)

	arg, _ = get_arg("f")
	assert.Equal(t, "", arg)
}

func TestTxRprt(t *testing.T) {
	var c = &connection{}

	tx_rprt(c, 0)
	assert.Equal(t, "RPRT 0\n", string(c.tx_buf))

	c.tx_buf = nil
	tx_rprt(c, 13)
	assert.Equal(t, "RPRT -13\n", string(c.tx_buf))

	c.tx_buf = nil
	tx_rprt(c, -1)
	assert.Equal(t, "RPRT -1\n", string(c.tx_buf))
}
