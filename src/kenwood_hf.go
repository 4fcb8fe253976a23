package outrigger

/*------------------------------------------------------------------
 *
 * Purpose:   	Rig communications for rigs speaking the Kenwood HF
 *		protocol (Kenwood, Elecraft, etc).
 *
 * Description:	The protocol is ASCII frames terminated by ';'.  A
 *		command is a two (sometimes three) letter mnemonic
 *		followed by fixed-width parameter columns and the
 *		terminator, no separators:
 *
 *			FA00014250000;
 *
 *		A read is the bare mnemonic (plus selector columns for
 *		MR) and the reply echoes the mnemonic in front of the
 *		answer columns.  Everything about a command -- its
 *		mnemonic, reply prefix, and which parameters appear in
 *		the set, read and answer roles -- lives in the tables
 *		below.  Individual rig models are just capability
 *		bitmaps over this table plus serial defaults.
 *
 *		The "IF" reply is the rig's full state snapshot in 15
 *		fixed columns.  Prefer one IF over a flurry of targeted
 *		queries: the rig builds it atomically.
 *
 *---------------------------------------------------------------*/

import (
	"fmt"
	"math"
	"syscall"
)

type khf_param struct {
	name         string
	cols         int
	print_format string
	scan_format  string
	typ          byte /* 'U' unsigned, 'I' signed, 'Q' 64-bit unsigned, 'S' string */
}

const (
	SW_OFF = 0
	SW_ON  = 1
)

type khf_mode uint

const (
	KHF_MODE_LSB khf_mode = iota + 1
	KHF_MODE_USB
	KHF_MODE_CW
	KHF_MODE_FM
	KHF_MODE_AM
	KHF_MODE_FSK
	KHF_MODE_CWN
)

type khf_function uint

const (
	FUNCTION_VFO_A khf_function = iota
	FUNCTION_VFO_B
	FUNCTION_MEMORY
	FUNCTION_COM
)

const (
	KHF_RECEIVE  = 0
	KHF_TRANSMIT = 1
)

type kenwood_if struct {
	freq      uint64
	step      uint
	rit       int
	rit_on    uint
	xit_on    uint
	bank      uint
	channel   uint
	tx        uint
	mode      uint
	function  uint
	scan      uint
	split     uint
	tone      uint
	tone_freq uint
	offset    uint
}

const (
	KHF_PARAM_SW = iota + 1
	KHF_PARAM_MODE
	KHF_PARAM_FUNCTION
	KHF_PARAM_FREQUENCY
	KHF_PARAM_RIT_FREQUENCY
	KHF_PARAM_STEP_FREQUENCY
	KHF_PARAM_MEMORY_CHANNEL
	KHF_PARAM_MEMORY_BANK
	KHF_PARAM_MEM_SPLIT_SPEC
	KHF_PARAM_MEMORY_LOCKOUT
	KHF_PARAM_TX_RX
	KHF_PARAM_PASSBAND
	KHF_PARAM_OFFSET
	KHF_PARAM_TONE_FREQUENCY
	KHF_PARAM_CALL_SIGN
	KHF_PARAM_MODEL_NO
)

var khf_params = []khf_param{
	{"DUMMY", 0, "", "", 0},
	{"SW", 1, "%01d", "%1d", 'U'},
	{"MODE", 1, "%01d", "%1d", 'U'},
	{"FUNCTION", 1, "%01d", "%1d", 'U'},
	{"FREQUENCY", 11, "%011d", "%11d", 'Q'},
	{"RIT FREQUENCY", 5, "%+05d", "%5d", 'I'},
	{"STEP FREQUENCY", 5, "%05d", "%5d", 'U'},
	{"MEMORY CHANNEL", 2, "%02d", "%2d", 'U'},
	{"MEMORY BANK", 1, "%01d", "%1d", 'U'},
	{"MEMORY CHANNEL SPLIT SPECIFICATION", 1, "%01d", "%1d", 'U'},
	{"MEMORY LOCKOUT", 1, "%01d", "%1d", 'U'},
	{"TX/RX", 1, "%01d", "%1d", 'U'},
	{"PASSBAND", 2, "%02d", "%2d", 'U'},
	{"OFFSET", 1, "%01d", "%d", 'U'},
	{"TONE FREQUENCY", 2, "%02d", "%2d", 'U'},
	{"CALL SIGN", 6, "%-6.6s", "%6c", 'S'},
	{"MODEL NO.", 3, "%03d", "%3d", 'U'},
}

type kenwood_hf_commands int

const (
	KW_HF_CMD_AI kenwood_hf_commands = iota
	KW_HF_CMD_AT1
	KW_HF_CMD_DI
	KW_HF_CMD_DN
	KW_HF_CMD_UP
	KW_HF_CMD_DS
	KW_HF_CMD_FA
	KW_HF_CMD_FB
	KW_HF_CMD_FN
	KW_HF_CMD_HD
	KW_HF_CMD_ID
	KW_HF_CMD_IF
	KW_HF_CMD_LK
	KW_HF_CMD_LO
	KW_HF_CMD_MC
	KW_HF_CMD_MD
	KW_HF_CMD_MR
	KW_HF_CMD_MS
	KW_HF_CMD_MW
	KW_HF_CMD_OS
	KW_HF_CMD_RC
	KW_HF_CMD_RD
	KW_HF_CMD_RU
	KW_HF_CMD_RT
	KW_HF_CMD_RX
	KW_HF_CMD_TX
	KW_HF_CMD_SC
	KW_HF_CMD_SH
	KW_HF_CMD_SL
	KW_HF_CMD_SP
	KW_HF_CMD_ST
	KW_HF_CMD_TN
	KW_HF_CMD_TO
	KW_HF_CMD_VB
	KW_HF_CMD_VR
	KW_HF_CMD_XT
	KW_HF_CMD_COUNT
)

type khf_command struct {
	cmd           string
	read_prefix   string
	cmd_num       kenwood_hf_commands
	set_params    []int
	get_params    []int
	answer_params []int
}

var khf_cmd = []khf_command{
	{"AI", "AI", KW_HF_CMD_AI,
		[]int{KHF_PARAM_SW},
		nil,
		nil,
	},
	{"AT1", "AT", KW_HF_CMD_AT1,
		nil,
		nil,
		nil,
	},
	{"DI", "DI", KW_HF_CMD_DI,
		nil,
		nil,
		[]int{KHF_PARAM_CALL_SIGN, KHF_PARAM_CALL_SIGN},
	},
	{"DN", "DN", KW_HF_CMD_DN,
		nil,
		nil,
		nil,
	},
	{"UP", "UP", KW_HF_CMD_UP,
		nil,
		nil,
		nil,
	},
	{"DS", "DS", KW_HF_CMD_DS,
		[]int{KHF_PARAM_SW},
		nil,
		[]int{KHF_PARAM_SW},
	},
	{"FA", "FA", KW_HF_CMD_FA,
		[]int{KHF_PARAM_FREQUENCY},
		nil,
		[]int{KHF_PARAM_FREQUENCY},
	},
	{"FB", "FB", KW_HF_CMD_FB,
		[]int{KHF_PARAM_FREQUENCY},
		nil,
		[]int{KHF_PARAM_FREQUENCY},
	},
	{"FN", "FN", KW_HF_CMD_FN,
		[]int{KHF_PARAM_FUNCTION},
		nil,
		nil,
	},
	{"HD", "HD", KW_HF_CMD_HD,
		[]int{KHF_PARAM_SW},
		nil,
		[]int{KHF_PARAM_SW},
	},
	{"ID", "ID", KW_HF_CMD_ID,
		nil,
		nil,
		[]int{KHF_PARAM_MODEL_NO},
	},
	{"IF", "IF", KW_HF_CMD_IF,
		nil,
		nil,
		[]int{
			KHF_PARAM_FREQUENCY,
			KHF_PARAM_STEP_FREQUENCY,
			KHF_PARAM_RIT_FREQUENCY,
			KHF_PARAM_SW,
			KHF_PARAM_SW,
			KHF_PARAM_MEMORY_BANK,
			KHF_PARAM_MEMORY_CHANNEL,
			KHF_PARAM_TX_RX,
			KHF_PARAM_MODE,
			KHF_PARAM_FUNCTION,
			KHF_PARAM_SW,
			KHF_PARAM_SW,
			KHF_PARAM_SW,
			KHF_PARAM_TONE_FREQUENCY,
			KHF_PARAM_OFFSET,
		},
	},
	{"LK", "LK", KW_HF_CMD_LK,
		[]int{KHF_PARAM_SW},
		nil,
		[]int{KHF_PARAM_SW},
	},
	{"LO", "LO", KW_HF_CMD_LO,
		nil,
		nil,
		nil,
	},
	{"MC", "MC", KW_HF_CMD_MC,
		[]int{KHF_PARAM_MEMORY_BANK, KHF_PARAM_MEMORY_CHANNEL},
		nil,
		nil,
	},
	{"MD", "MD", KW_HF_CMD_MD,
		[]int{KHF_PARAM_MODE},
		nil,
		nil,
	},
	{"MR", "MR", KW_HF_CMD_MR,
		nil,
		[]int{
			KHF_PARAM_MEM_SPLIT_SPEC,
			KHF_PARAM_MEMORY_BANK,
			KHF_PARAM_MEMORY_CHANNEL,
		},
		[]int{
			KHF_PARAM_MEM_SPLIT_SPEC,
			KHF_PARAM_MEMORY_BANK,
			KHF_PARAM_MEMORY_CHANNEL,
			KHF_PARAM_FREQUENCY,
			KHF_PARAM_MODE,
			KHF_PARAM_MEMORY_LOCKOUT,
			KHF_PARAM_SW,
			KHF_PARAM_TONE_FREQUENCY,
			KHF_PARAM_OFFSET,
		},
	},
	{"MS", "MS", KW_HF_CMD_MS,
		[]int{KHF_PARAM_SW},
		nil,
		[]int{KHF_PARAM_SW},
	},
	{"MW", "MW", KW_HF_CMD_MW,
		[]int{
			KHF_PARAM_MEM_SPLIT_SPEC,
			KHF_PARAM_MEMORY_BANK,
			KHF_PARAM_MEMORY_CHANNEL,
			KHF_PARAM_FREQUENCY,
			KHF_PARAM_MODE,
			KHF_PARAM_MEMORY_LOCKOUT,
			KHF_PARAM_SW,
			KHF_PARAM_TONE_FREQUENCY,
			KHF_PARAM_OFFSET,
		},
		nil,
		nil,
	},
	{"OS", "OS", KW_HF_CMD_OS,
		[]int{KHF_PARAM_TONE_FREQUENCY},
		nil,
		nil,
	},
	{"RC", "RC", KW_HF_CMD_RC,
		nil,
		nil,
		nil,
	},
	{"RD", "RD", KW_HF_CMD_RD,
		nil,
		nil,
		nil,
	},
	{"RU", "RU", KW_HF_CMD_RU,
		nil,
		nil,
		nil,
	},
	{"RT", "RT", KW_HF_CMD_RT,
		[]int{KHF_PARAM_SW},
		nil,
		nil,
	},
	{"RX", "RX", KW_HF_CMD_RX,
		nil,
		nil,
		nil,
	},
	{"TX", "TX", KW_HF_CMD_TX,
		nil,
		nil,
		nil,
	},
	{"SC", "SC", KW_HF_CMD_SC,
		[]int{KHF_PARAM_SW},
		nil,
		nil,
	},
	{"SH", "SH", KW_HF_CMD_SH,
		[]int{KHF_PARAM_PASSBAND},
		nil,
		[]int{KHF_PARAM_PASSBAND},
	},
	{"SL", "SL", KW_HF_CMD_SL,
		[]int{KHF_PARAM_PASSBAND},
		nil,
		[]int{KHF_PARAM_PASSBAND},
	},
	{"SP", "SP", KW_HF_CMD_SP,
		[]int{KHF_PARAM_SW},
		nil,
		nil,
	},
	{"ST", "ST", KW_HF_CMD_ST,
		[]int{KHF_PARAM_STEP_FREQUENCY},
		nil,
		nil,
	},
	{"TN", "TN", KW_HF_CMD_TN,
		[]int{KHF_PARAM_TONE_FREQUENCY},
		nil,
		nil,
	},
	{"TO", "TO", KW_HF_CMD_TO,
		[]int{KHF_PARAM_SW},
		nil,
		nil,
	},
	{"VB", "VB", KW_HF_CMD_VB,
		[]int{KHF_PARAM_PASSBAND},
		nil,
		[]int{KHF_PARAM_PASSBAND},
	},
	{"VR", "VR", KW_HF_CMD_VR,
		nil,
		nil,
		nil,
	},
	{"XT", "XT", KW_HF_CMD_XT,
		[]int{KHF_PARAM_SW},
		nil,
		nil,
	},
}

const khf_cmd_bytes = (int(KW_HF_CMD_COUNT) + 7) / 8

type kenwood_hf struct {
	handle *io_handle

	/* Per-model capability bitmaps, indexed by command number. */
	set_cmds  [khf_cmd_bytes]byte
	read_cmds [khf_cmd_bytes]byte

	response_timeout uint /* ms to wait for the first byte of a reply */
	char_timeout     uint /* ms per byte and per write */
}

func kenwood_hf_new(d *config_dict, section string) *kenwood_hf {
	return &kenwood_hf{
		response_timeout: uint(get_int(d, section, "response_timeout", 1000)),
		char_timeout:     uint(get_int(d, section, "char_timeout", 50)),
	}
}

func kenwood_hf_setbits(array []byte, bits ...kenwood_hf_commands) {
	for _, bit := range bits {
		array[bit/8] |= 1 << (bit % 8)
	}
}

func kenwood_hf_cmd_set(khf *kenwood_hf, cmd kenwood_hf_commands) bool {
	return khf.set_cmds[cmd/8]&(1<<(cmd%8)) != 0
}

func kenwood_hf_cmd_read(khf *kenwood_hf, cmd kenwood_hf_commands) bool {
	return khf.read_cmds[cmd/8]&(1<<(cmd%8)) != 0
}

/*
 * This handles any "extra" responses received,
 * ie: AI mode.
 *
 * Any lock may be held, so MUST NOT lock or post semaphores.
 */
func kenwood_hf_handle_extra(cbdata any, resp *io_response) {
	if resp == nil {
		return
	}
	or_trace("serial < (unsolicited)", resp.msg)
}

/*
 * Reads a single semicolon terminated frame from the rig.
 * Returns nil on timeout or error; the reader treats that as
 * end-of-stream for one message.
 */
func kenwood_hf_read_response(cbdata any) *io_response {
	var khf = cbdata.(*kenwood_hf)

	if io_wait_read(khf.handle, khf.response_timeout) != 1 {
		return nil
	}

	var msg []byte
	var one [1]byte
	for {
		var rd = io_read(khf.handle, one[:], khf.char_timeout)
		if rd != 1 {
			return nil
		}
		msg = append(msg, one[0])
		if one[0] == ';' {
			or_trace("serial <", msg)
			return &io_response{len: len(msg), msg: msg}
		}
	}
}

/*
 * Sends the command string to the rig.
 * Returns the number of bytes written, or -1.
 */
func kenwood_send(khf *kenwood_hf, cmd []byte) int {
	if khf == nil {
		return -1
	}
	return io_write(khf.handle, cmd, khf.char_timeout)
}

func kenwood_find_command(cmd kenwood_hf_commands) *khf_command {
	for i := range khf_cmd {
		if khf_cmd[i].cmd_num == cmd {
			return &khf_cmd[i]
		}
	}
	return nil
}

/*
 * One typed command parameter.  The type letter selects which field
 * is live, matching the parameter table entry it is formatted with.
 */

type khf_arg struct {
	typ byte
	u   uint
	i   int
	q   uint64
	s   string
}

func khf_uint(v uint) khf_arg   { return khf_arg{typ: 'U', u: v} }
func khf_int(v int) khf_arg     { return khf_arg{typ: 'I', i: v} }
func khf_quad(v uint64) khf_arg { return khf_arg{typ: 'Q', q: v} }
func khf_str(v string) khf_arg  { return khf_arg{typ: 'S', s: v} }

/*-------------------------------------------------------------------
 *
 * Name:        kenwood_hf_rscanf
 *
 * Purpose:	Parse the answer columns of a response.
 *
 * Inputs:	cmd	- Command whose answer layout to use.
 *		resp	- Response, mnemonic included.
 *		outs	- One pointer per answer parameter
 *			  (*uint, *int, *uint64 or *string).
 *
 * Returns:	Count of successfully parsed columns, or khf_eof when
 *		the response does not carry this command's mnemonic.
 *		A failed column leaves the type's sentinel in the
 *		output and does not count.
 *
 *--------------------------------------------------------------------*/

const khf_eof = -1

func kenwood_hf_rscanf(cmd kenwood_hf_commands, resp *io_response, outs ...any) int {
	if resp == nil {
		return khf_eof
	}
	var cmdinfo = kenwood_find_command(cmd)
	if cmdinfo == nil {
		return khf_eof
	}

	var pos = len(cmdinfo.cmd)
	if pos > len(resp.msg) || string(resp.msg[:pos]) != cmdinfo.cmd {
		return khf_eof
	}

	var ret = 0
	for i, pnum := range cmdinfo.answer_params {
		if i >= len(outs) {
			break
		}
		var p = &khf_params[pnum]

		var field string
		if pos+p.cols <= len(resp.msg) {
			field = string(resp.msg[pos : pos+p.cols])
		}

		var res = 0
		switch p.typ {
		case 'I':
			var ival = outs[i].(*int)
			if n, _ := fmt.Sscanf(field, p.scan_format, ival); n == 1 {
				res = 1
			} else {
				*ival = math.MaxInt32
			}
		case 'U':
			var uval = outs[i].(*uint)
			if n, _ := fmt.Sscanf(field, p.scan_format, uval); n == 1 {
				res = 1
			} else {
				*uval = math.MaxUint32
			}
		case 'Q':
			var qval = outs[i].(*uint64)
			if n, _ := fmt.Sscanf(field, p.scan_format, qval); n == 1 {
				res = 1
			} else {
				*qval = math.MaxUint64
			}
		case 'S':
			var sval = outs[i].(*string)
			if len(field) == p.cols {
				*sval = field
				res = 1
			} else {
				*sval = ""
			}
		}

		pos += p.cols
		ret += res
	}

	return ret
}

/*-------------------------------------------------------------------
 *
 * Name:        kenwood_hf_command
 *
 * Purpose:	Format and issue one command.
 *
 * Inputs:	set	- true for a set, false for a read.
 *		cmd	- Command number.
 *		args	- One typed value per parameter in the set (or
 *			  read selector) vector.
 *
 * Returns:	For a read: the matching response.  For a set: a stub
 *		response whose len is the transmit byte count (no reply
 *		is awaited; the rig stays quiet unless AI mode pipes
 *		up, and that goes to the async callback).  nil on
 *		capability refusal, argument mismatch, or transport
 *		failure.
 *
 *--------------------------------------------------------------------*/

func kenwood_hf_command(khf *kenwood_hf, set bool, cmd kenwood_hf_commands, args ...khf_arg) *io_response {
	var cmdinfo = kenwood_find_command(cmd)
	if cmdinfo == nil {
		return nil
	}

	if set {
		if !kenwood_hf_cmd_set(khf, cmd) {
			return nil
		}
	} else {
		if !kenwood_hf_cmd_read(khf, cmd) {
			return nil
		}
	}

	var par = IfThenElse(set, cmdinfo.set_params, cmdinfo.get_params)
	if len(args) != len(par) {
		return nil
	}

	var cmdstr = []byte(cmdinfo.cmd)
	for i, pnum := range par {
		var p = &khf_params[pnum]
		if args[i].typ != p.typ {
			return nil
		}
		switch p.typ {
		case 'Q':
			cmdstr = append(cmdstr, fmt.Sprintf(p.print_format, args[i].q)...)
		case 'U':
			cmdstr = append(cmdstr, fmt.Sprintf(p.print_format, args[i].u)...)
		case 'I':
			cmdstr = append(cmdstr, fmt.Sprintf(p.print_format, args[i].i)...)
		case 'S':
			cmdstr = append(cmdstr, fmt.Sprintf(p.print_format, args[i].s)...)
		default:
			return nil
		}
	}
	cmdstr = append(cmdstr, ';')

	if set {
		var n = kenwood_send(khf, cmdstr)
		if n < 0 {
			return nil
		}
		return &io_response{len: n}
	}

	if kenwood_send(khf, cmdstr) < 0 {
		return nil
	}
	return io_get_response(khf.handle, []byte(cmdinfo.read_prefix), len(cmdinfo.read_prefix), 0)
}

/*
 * Parse an IF state snapshot.  Returns nil when the response is
 * missing or carries no usable columns.
 */
func kenwood_parse_if(resp *io_response) *kenwood_if {
	var rif = new(kenwood_if)

	switch kenwood_hf_rscanf(KW_HF_CMD_IF, resp, &rif.freq, &rif.step, &rif.rit,
		&rif.rit_on, &rif.xit_on, &rif.bank, &rif.channel, &rif.tx,
		&rif.mode, &rif.function, &rif.scan, &rif.split, &rif.tone,
		&rif.tone_freq, &rif.offset) {
	case khf_eof, 0:
		return nil
	default:
		return rif
	}
}

/* Fetch and parse one IF snapshot, nil on any failure. */

func kenwood_hf_get_if(khf *kenwood_hf) *kenwood_if {
	var resp = kenwood_hf_command(khf, false, KW_HF_CMD_IF)
	if resp == nil {
		return nil
	}
	return kenwood_parse_if(resp)
}

/*-------------------------------------------------------------------
 *
 * Name:        kenwood_hf_set_frequency
 *
 * Purpose:	Set the frequency of the currently selected VFO.
 *
 * Description:	The rig only accepts a frequency write for the VFO it
 *		is sitting on, so ask for an IF snapshot first and pick
 *		FA or FB to match.  When the rig is on a memory channel
 *		(or the COM channel) there is no VFO to write, which
 *		surfaces as "permission denied" rather than inventing a
 *		VFO change the operator didn't ask for.
 *
 *--------------------------------------------------------------------*/

func kenwood_hf_set_frequency(cbdata any, freq uint64) int {
	var khf, ok = cbdata.(*kenwood_hf)
	if !ok || khf == nil {
		return int(syscall.EINVAL)
	}

	// First, get the current VFO.
	var rif = kenwood_hf_get_if(khf)
	if rif == nil {
		return int(syscall.EIO)
	}

	// TODO: Ensure we're not changing bands too
	var cmd kenwood_hf_commands
	switch khf_function(rif.function) {
	case FUNCTION_MEMORY, FUNCTION_COM:
		return int(syscall.EACCES)
	case FUNCTION_VFO_A:
		cmd = KW_HF_CMD_FA
	case FUNCTION_VFO_B:
		cmd = KW_HF_CMD_FB
	default:
		return int(syscall.EIO)
	}

	if kenwood_hf_command(khf, true, cmd, khf_quad(freq)) == nil {
		return int(syscall.ENODEV)
	}
	return 0
}

func kenwood_hf_get_frequency(cbdata any) uint64 {
	var khf, ok = cbdata.(*kenwood_hf)
	if !ok || khf == nil {
		return 0
	}

	var rif = kenwood_hf_get_if(khf)
	if rif == nil {
		return 0
	}
	if rif.freq == math.MaxUint64 {
		return 0
	}
	return rif.freq
}

func kenwood_hf_mode_from_rig_mode(rmode rig_modes) (khf_mode, bool) {
	switch rmode {
	case MODE_LSB:
		return KHF_MODE_LSB, true
	case MODE_USB:
		return KHF_MODE_USB, true
	case MODE_CW:
		return KHF_MODE_CW, true
	case MODE_FM:
		return KHF_MODE_FM, true
	case MODE_AM:
		return KHF_MODE_AM, true
	case MODE_FSK:
		return KHF_MODE_FSK, true
	case MODE_CWN:
		return KHF_MODE_CWN, true
	default:
		return 0, false
	}
}

func kenwood_hf_rig_mode_from_mode(mode khf_mode) rig_modes {
	switch mode {
	case KHF_MODE_LSB:
		return MODE_LSB
	case KHF_MODE_USB:
		return MODE_USB
	case KHF_MODE_CW:
		return MODE_CW
	case KHF_MODE_FM:
		return MODE_FM
	case KHF_MODE_AM:
		return MODE_AM
	case KHF_MODE_FSK:
		return MODE_FSK
	case KHF_MODE_CWN:
		return MODE_CWN
	default:
		return MODE_UNKNOWN
	}
}

func kenwood_hf_set_mode(cbdata any, rmode rig_modes) int {
	var khf, ok = cbdata.(*kenwood_hf)
	if !ok || khf == nil {
		return int(syscall.EINVAL)
	}

	var mode, mode_ok = kenwood_hf_mode_from_rig_mode(rmode)
	if !mode_ok {
		return int(syscall.EINVAL)
	}

	if kenwood_hf_command(khf, true, KW_HF_CMD_MD, khf_uint(uint(mode))) == nil {
		return int(syscall.ENODEV)
	}
	return 0
}

func kenwood_hf_get_mode(cbdata any) rig_modes {
	var khf, ok = cbdata.(*kenwood_hf)
	if !ok || khf == nil {
		return MODE_UNKNOWN
	}

	var rif = kenwood_hf_get_if(khf)
	if rif == nil {
		return MODE_UNKNOWN
	}
	return kenwood_hf_rig_mode_from_mode(khf_mode(rif.mode))
}

func kenwood_hf_function_from_vfo(vfo vfos) (khf_function, bool) {
	switch vfo {
	case VFO_A:
		return FUNCTION_VFO_A, true
	case VFO_B:
		return FUNCTION_VFO_B, true
	case VFO_MEMORY:
		return FUNCTION_MEMORY, true
	case VFO_COM:
		return FUNCTION_COM, true
	default:
		return 0, false
	}
}

func kenwood_hf_vfo_from_function(function khf_function) vfos {
	switch function {
	case FUNCTION_VFO_A:
		return VFO_A
	case FUNCTION_VFO_B:
		return VFO_B
	case FUNCTION_MEMORY:
		return VFO_MEMORY
	case FUNCTION_COM:
		return VFO_COM
	default:
		return VFO_UNKNOWN
	}
}

func kenwood_hf_set_vfo(cbdata any, vfo vfos) int {
	var khf, ok = cbdata.(*kenwood_hf)
	if !ok || khf == nil {
		return int(syscall.EINVAL)
	}

	var function, fn_ok = kenwood_hf_function_from_vfo(vfo)
	if !fn_ok {
		return int(syscall.EINVAL)
	}

	if kenwood_hf_command(khf, true, KW_HF_CMD_FN, khf_uint(uint(function))) == nil {
		return int(syscall.ENODEV)
	}
	return 0
}

func kenwood_hf_get_vfo(cbdata any) vfos {
	var khf, ok = cbdata.(*kenwood_hf)
	if !ok || khf == nil {
		return VFO_UNKNOWN
	}

	var rif = kenwood_hf_get_if(khf)
	if rif == nil {
		return VFO_UNKNOWN
	}
	return kenwood_hf_vfo_from_function(khf_function(rif.function))
}

func kenwood_hf_set_ptt(cbdata any, tx bool) int {
	var khf, ok = cbdata.(*kenwood_hf)
	if !ok || khf == nil {
		return int(syscall.EINVAL)
	}

	var cmd = IfThenElse(tx, KW_HF_CMD_TX, KW_HF_CMD_RX)
	if kenwood_hf_command(khf, true, cmd) == nil {
		return int(syscall.ENODEV)
	}
	return 0
}

func kenwood_hf_get_ptt(cbdata any) int {
	var khf, ok = cbdata.(*kenwood_hf)
	if !ok || khf == nil {
		return -1
	}

	var rif = kenwood_hf_get_if(khf)
	if rif == nil {
		return -1
	}
	switch rif.tx {
	case KHF_RECEIVE:
		return 0
	case KHF_TRANSMIT:
		return 1
	default:
		return -1
	}
}

/*-------------------------------------------------------------------
 *
 * Name:        kenwood_hf_set_split_frequency
 *
 * Purpose:	Program a split pair: receive on the current VFO,
 *		transmit on the other one.
 *
 * Description:	Writes the RX frequency to whichever VFO the rig is
 *		on, the TX frequency to its sibling, then turns the
 *		split switch on.  Memory/COM has no VFO pair to split
 *		across, same interlock as a plain frequency write.
 *
 *--------------------------------------------------------------------*/

func kenwood_hf_set_split_frequency(cbdata any, freq_rx uint64, freq_tx uint64) int {
	var khf, ok = cbdata.(*kenwood_hf)
	if !ok || khf == nil {
		return int(syscall.EINVAL)
	}

	var rif = kenwood_hf_get_if(khf)
	if rif == nil {
		return int(syscall.EIO)
	}

	var rxcmd, txcmd kenwood_hf_commands
	switch khf_function(rif.function) {
	case FUNCTION_MEMORY, FUNCTION_COM:
		return int(syscall.EACCES)
	case FUNCTION_VFO_A:
		rxcmd = KW_HF_CMD_FA
		txcmd = KW_HF_CMD_FB
	case FUNCTION_VFO_B:
		rxcmd = KW_HF_CMD_FB
		txcmd = KW_HF_CMD_FA
	default:
		return int(syscall.EIO)
	}

	if kenwood_hf_command(khf, true, rxcmd, khf_quad(freq_rx)) == nil {
		return int(syscall.ENODEV)
	}
	if kenwood_hf_command(khf, true, txcmd, khf_quad(freq_tx)) == nil {
		return int(syscall.ENODEV)
	}
	if kenwood_hf_command(khf, true, KW_HF_CMD_SP, khf_uint(SW_ON)) == nil {
		return int(syscall.ENODEV)
	}
	return 0
}

/*
 * Reads the split pair back.  The IF snapshot carries the receive
 * side and the split switch; the transmit side is a direct read of
 * the other VFO.
 */
func kenwood_hf_get_split_frequency(cbdata any) (int, uint64, uint64) {
	var khf, ok = cbdata.(*kenwood_hf)
	if !ok || khf == nil {
		return int(syscall.EINVAL), 0, 0
	}

	var rif = kenwood_hf_get_if(khf)
	if rif == nil {
		return int(syscall.EIO), 0, 0
	}
	if rif.split != SW_ON {
		return int(syscall.ENOENT), 0, 0 /* split not engaged */
	}

	var othercmd kenwood_hf_commands
	switch khf_function(rif.function) {
	case FUNCTION_VFO_A:
		othercmd = KW_HF_CMD_FB
	case FUNCTION_VFO_B:
		othercmd = KW_HF_CMD_FA
	default:
		return int(syscall.EACCES), 0, 0
	}

	var resp = kenwood_hf_command(khf, false, othercmd)
	if resp == nil {
		return int(syscall.EIO), 0, 0
	}

	var freq_tx uint64
	if kenwood_hf_rscanf(othercmd, resp, &freq_tx) != 1 {
		return int(syscall.EIO), 0, 0
	}

	return 0, rif.freq, freq_tx
}

/* end kenwood_hf.go */
