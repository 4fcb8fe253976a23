package outrigger

/*------------------------------------------------------------------
 *
 * Purpose:   	Kenwood TS-711 (2 m all-mode base).
 *
 * Description:	Same command dialect as the TS-940S.  This is one of
 *		the two rigs with the extra "COM" channel behind the
 *		VFO function selector.
 *
 *---------------------------------------------------------------*/

import (
	"syscall"
)

func ts711_close(cbdata any) int {
	var khf, ok = cbdata.(*kenwood_hf)
	if !ok || khf == nil {
		return int(syscall.EINVAL)
	}

	kenwood_hf_command(khf, true, KW_HF_CMD_LO)
	kenwood_hf_command(khf, true, KW_HF_CMD_LK, khf_uint(SW_OFF))
	kenwood_hf_command(khf, true, KW_HF_CMD_AI, khf_uint(SW_ON))

	return io_end(khf.handle)
}

func ts711_init(d *config_dict, section string) *rig {
	var khf = kenwood_hf_new(d, section)

	var ret = &rig{
		supported_modes:     MODE_CW | MODE_LSB | MODE_USB | MODE_FM,
		supported_vfos:      VFO_A | VFO_B | VFO_MEMORY | VFO_COM,
		close:               ts711_close,
		set_frequency:       kenwood_hf_set_frequency,
		get_frequency:       kenwood_hf_get_frequency,
		set_split_frequency: kenwood_hf_set_split_frequency,
		get_split_frequency: kenwood_hf_get_split_frequency,
		set_mode:            kenwood_hf_set_mode,
		get_mode:            kenwood_hf_get_mode,
		set_vfo:             kenwood_hf_set_vfo,
		get_vfo:             kenwood_hf_get_vfo,
		set_ptt:             kenwood_hf_set_ptt,
		get_ptt:             kenwood_hf_get_ptt,
		cbdata:              khf,
	}

	kenwood_hf_setbits(khf.set_cmds[:], KW_HF_CMD_AI, KW_HF_CMD_DN,
		KW_HF_CMD_UP, KW_HF_CMD_DS, KW_HF_CMD_FA, KW_HF_CMD_FB,
		KW_HF_CMD_FN, KW_HF_CMD_LK, KW_HF_CMD_LO, KW_HF_CMD_MC,
		KW_HF_CMD_MD, KW_HF_CMD_MS, KW_HF_CMD_MW, KW_HF_CMD_RC,
		KW_HF_CMD_RD, KW_HF_CMD_RU, KW_HF_CMD_RT, KW_HF_CMD_RX,
		KW_HF_CMD_TX, KW_HF_CMD_SC, KW_HF_CMD_SP, KW_HF_CMD_TN,
		KW_HF_CMD_TO, KW_HF_CMD_XT)
	kenwood_hf_setbits(khf.read_cmds[:], KW_HF_CMD_DS, KW_HF_CMD_FA,
		KW_HF_CMD_FB, KW_HF_CMD_ID, KW_HF_CMD_IF, KW_HF_CMD_LK,
		KW_HF_CMD_MR, KW_HF_CMD_MS)

	set_default(d, section, "type", "serial")
	set_default(d, section, "speed", "4800")
	set_default(d, section, "databits", "8")
	set_default(d, section, "stopbits", "2")
	set_default(d, section, "parity", "None")

	khf.handle = io_start_from_config(d, section, kenwood_hf_read_response, kenwood_hf_handle_extra, khf)
	if khf.handle == nil {
		return nil
	}

	kenwood_hf_command(khf, true, KW_HF_CMD_LK, khf_uint(SW_ON))
	kenwood_hf_command(khf, true, KW_HF_CMD_AI, khf_uint(SW_ON))

	return ret
}
