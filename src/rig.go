package outrigger

/*------------------------------------------------------------------
 *
 * Purpose:   	Generic rig API.
 *
 * Description:	A rig is a polymorphic handle: the driver fills in the
 *		operations it actually implements and leaves the rest
 *		nil.  The wrappers below are the only things the TCP
 *		front end calls, and they turn a missing operation into
 *		the documented failure value without ever touching the
 *		wire.
 *
 *---------------------------------------------------------------*/

import (
	"syscall"
)

type rig_modes uint32

const (
	MODE_UNKNOWN rig_modes = 0
	MODE_CW      rig_modes = 0x01
	MODE_CWN     rig_modes = 0x02 /* CW, narrow filter */
	MODE_CWR     rig_modes = 0x04 /* CW, reverse sideband */
	MODE_CWRN    rig_modes = 0x08
	MODE_AM      rig_modes = 0x10
	MODE_LSB     rig_modes = 0x20
	MODE_USB     rig_modes = 0x40
	MODE_FM      rig_modes = 0x80
	MODE_FSK     rig_modes = 0x100
)

type vfos uint32

const (
	VFO_UNKNOWN vfos = 0
	VFO_A       vfos = 0x01
	VFO_B       vfos = 0x02
	VFO_MEMORY  vfos = 0x04
	VFO_COM     vfos = 0x08 // TS-711/TS-811 specific "COM" function.
)

type rig struct {
	supported_modes rig_modes // Bitmask of supported modes.
	supported_vfos  vfos      // Bitmask of supported VFOs.

	/* Callbacks */
	close               func(cbdata any) int
	set_frequency       func(cbdata any, freq uint64) int
	get_frequency       func(cbdata any) uint64
	set_split_frequency func(cbdata any, freq_rx uint64, freq_tx uint64) int
	get_split_frequency func(cbdata any) (int, uint64, uint64)
	set_mode            func(cbdata any, mode rig_modes) int
	get_mode            func(cbdata any) rig_modes
	set_vfo             func(cbdata any, vfo vfos) int
	get_vfo             func(cbdata any) vfos
	set_ptt             func(cbdata any, tx bool) int
	get_ptt             func(cbdata any) int
	get_squelch         func(cbdata any) int
	get_smeter          func(cbdata any) int

	cbdata any
}

type supported_rig struct {
	name string
	init func(d *config_dict, section string) *rig
}

var supported_rigs = []supported_rig{
	{"TS-940S", ts940s_init},
	{"TS-711", ts711_init},
	{"TS-811", ts811_init},
}

/*-------------------------------------------------------------------
 *
 * Name:        init_rig
 *
 * Purpose:	Initialize the rig defined in the specified section of
 *		the configuration dictionary.
 *
 * Description:	The "rig" key selects the driver.  After the driver
 *		comes up, an optional GPIO PTT override replaces the
 *		CAT PTT operations (see ptt.go).
 *
 *--------------------------------------------------------------------*/

func init_rig(d *config_dict, section string) *rig {
	var name = get_string(d, section, "rig", "")
	if name == "" {
		or_error("Section [%s] has no rig model.", section)
		return nil
	}

	for _, sr := range supported_rigs {
		if sr.name == name {
			var ret = sr.init(d, section)
			if ret != nil {
				ptt_apply_override(d, section, ret)
			}
			return ret
		}
	}

	or_error("Section [%s]: unknown rig model \"%s\".", section, name)
	return nil
}

func close_rig(r *rig) int {
	if r == nil {
		return int(syscall.EINVAL)
	}
	if r.close == nil {
		return 0
	}
	return r.close(r.cbdata)
}

/*
 * Sets the frequency of the currently selected VFO to freq.
 *
 * Returns 0 on success or an errno value on failure.
 */
func set_frequency(r *rig, freq uint64) int {
	if r == nil {
		return int(syscall.EINVAL)
	}
	if r.set_frequency == nil {
		return int(syscall.ENOTSUP)
	}
	return r.set_frequency(r.cbdata, freq)
}

/*
 * Reads the currently displayed frequency of the currently selected
 * VFO.  Returns 0 on failure.
 */
func get_frequency(r *rig) uint64 {
	if r == nil || r.get_frequency == nil {
		return 0
	}
	return r.get_frequency(r.cbdata)
}

func set_split_frequency(r *rig, freq_rx uint64, freq_tx uint64) int {
	if r == nil {
		return int(syscall.EINVAL)
	}
	if r.set_split_frequency == nil {
		return int(syscall.ENOTSUP)
	}
	return r.set_split_frequency(r.cbdata, freq_rx, freq_tx)
}

/*
 * Reads the split pair.  Returns (0, rx, tx) when split is engaged,
 * or a nonzero errno value when it is not (or cannot be read).
 */
func get_split_frequency(r *rig) (int, uint64, uint64) {
	if r == nil {
		return int(syscall.EINVAL), 0, 0
	}
	if r.get_split_frequency == nil {
		return int(syscall.ENOTSUP), 0, 0
	}
	return r.get_split_frequency(r.cbdata)
}

func set_mode(r *rig, mode rig_modes) int {
	if r == nil {
		return int(syscall.EINVAL)
	}
	if r.set_mode == nil {
		return int(syscall.ENOTSUP)
	}
	if (r.supported_modes & mode) == 0 {
		return int(syscall.ENOTSUP)
	}
	return r.set_mode(r.cbdata, mode)
}

/*
 * Returns MODE_UNKNOWN on failure.
 */
func get_mode(r *rig) rig_modes {
	if r == nil || r.get_mode == nil {
		return MODE_UNKNOWN
	}
	return r.get_mode(r.cbdata)
}

func set_vfo(r *rig, vfo vfos) int {
	if r == nil {
		return int(syscall.EINVAL)
	}
	if r.set_vfo == nil {
		return int(syscall.ENOTSUP)
	}
	if (r.supported_vfos & vfo) == 0 {
		return int(syscall.ENOTSUP)
	}
	return r.set_vfo(r.cbdata, vfo)
}

/*
 * Returns VFO_UNKNOWN on failure.
 */
func get_vfo(r *rig) vfos {
	if r == nil || r.get_vfo == nil {
		return VFO_UNKNOWN
	}
	return r.get_vfo(r.cbdata)
}

func set_ptt(r *rig, tx bool) int {
	if r == nil {
		return int(syscall.EINVAL)
	}
	if r.set_ptt == nil {
		return int(syscall.ENOTSUP)
	}
	return r.set_ptt(r.cbdata, tx)
}

/*
 * Returns 1 if the rig is currently transmitting, 0 if it is not,
 * and -1 on failure.
 */
func get_ptt(r *rig) int {
	if r == nil || r.get_ptt == nil {
		return -1
	}
	return r.get_ptt(r.cbdata)
}

func get_squelch(r *rig) int {
	if r == nil || r.get_squelch == nil {
		return -1
	}
	return r.get_squelch(r.cbdata)
}

func get_smeter(r *rig) int {
	if r == nil || r.get_smeter == nil {
		return -1
	}
	return r.get_smeter(r.cbdata)
}

/* end rig.go */
