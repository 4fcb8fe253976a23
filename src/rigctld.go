package outrigger

/*------------------------------------------------------------------
 *
 * Purpose:   	TCP front end speaking the rigctld control protocol.
 *
 * Description:	One listener (per address family) for every rig
 *		section that asks for one.  Clients get the usual
 *		line-oriented command language:
 *
 *			F 14250000        set frequency
 *			f                 get frequency
 *			\set_freq 14250000   long form of the same
 *
 *		Long forms are rewritten to their single-byte aliases
 *		before dispatch, so the dispatcher only ever sees the
 *		short ones.  Several short commands may share a line;
 *		a command that takes arguments eats the rest of the
 *		line.
 *
 *		The whole front end is one thread multiplexed with
 *		poll().  Sockets are non-blocking; per-connection rx
 *		and tx buffers absorb the difference.  Only one
 *		complete line is dispatched per connection per loop
 *		iteration so a chatty client cannot starve the others.
 *
 *		A rig section may also ask for a pseudo terminal
 *		endpoint (rigctld_pty).  That gives the same command
 *		language to local programs that only know how to open
 *		a serial device.  The slave side is kept open here so
 *		the master never sees a hangup between clients, and a
 *		symlink with a stable name points at whatever pts the
 *		kernel handed out.
 *
 *---------------------------------------------------------------*/

import (
	"bytes"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/creack/pty"
	"github.com/spf13/pflag"
	"golang.org/x/sys/unix"
)

type listener struct {
	rig    *rig
	socket int
}

type connection struct {
	socket int
	rig    *rig

	rx_buf []byte
	tx_buf []byte

	is_pty     bool
	pty_master *os.File
	pty_slave  *os.File

	closed bool
}

type rigctld struct {
	rigs        []*rig
	listeners   []*listener
	connections []*connection
}

func rigctld_new() *rigctld {
	return &rigctld{}
}

/*-------------------------------------------------------------------
 *
 * Name:        rigctld_add_rig
 *
 * Purpose:     Bring up one rig and its control endpoints.
 *
 * Inputs:	d	- Configuration dictionary.
 *		section - Rig section name.
 *
 * Returns:	Number of endpoints (listeners plus pty) serving the
 *		rig.  0 means the rig was dropped.
 *
 *--------------------------------------------------------------------*/

func rigctld_add_rig(s *rigctld, d *config_dict, section string) int {
	var addr = get_string(d, section, "rigctld_address", "")
	if addr == "" {
		return 0
	}
	var port = get_string(d, section, "rigctld_port", "4532")

	if tf := get_string(d, section, "trace_timestamp_format", ""); tf != "" {
		trace_timestamp_format = tf
	}

	var r = init_rig(d, section)
	if r == nil {
		or_error("Rig [%s] failed to initialize, dropping it.", section)
		return 0
	}

	var endpoint_count = 0

	var portnum, portErr = net.LookupPort("tcp", port)
	var ips, ipErr = net.LookupIP(addr)
	if portErr != nil || ipErr != nil {
		or_error("Rig [%s]: cannot resolve %s:%s", section, addr, port)
	} else {
		for _, ip := range ips {
			var fd = rigctld_listen_one(ip, portnum)
			if fd < 0 {
				continue
			}
			s.listeners = append(s.listeners, &listener{rig: r, socket: fd})
			endpoint_count++
			or_info("Rig [%s]: listening on %s port %d.", section, ip, portnum)
		}
	}

	var pty_link = get_string(d, section, "rigctld_pty", "")
	if pty_link != "" {
		if rigctld_attach_pty(s, r, pty_link) {
			endpoint_count++
		}
	}

	if endpoint_count == 0 {
		close_rig(r)
		return 0
	}

	s.rigs = append(s.rigs, r)

	if get_int(d, section, "dns_sd_enabled", 0) > 0 {
		dns_sd_announce(get_string(d, section, "dns_sd_name", ""), section, portnum)
	}

	return endpoint_count
}

/* One bound, listening, non-blocking socket.  -1 on failure. */

func rigctld_listen_one(ip net.IP, port int) int {
	var family = unix.AF_INET6
	if ip.To4() != nil {
		family = unix.AF_INET
	}

	var fd, err = unix.Socket(family, unix.SOCK_STREAM|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		return -1
	}

	// Without this, a quick restart finds the port still in
	// TIME_WAIT and the bind fails.
	unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEADDR, 1)

	if err = unix.SetNonblock(fd, true); err != nil {
		unix.Close(fd)
		return -1
	}

	var sa unix.Sockaddr
	if family == unix.AF_INET {
		var sa4 = &unix.SockaddrInet4{Port: port}
		copy(sa4.Addr[:], ip.To4())
		sa = sa4
	} else {
		var sa6 = &unix.SockaddrInet6{Port: port}
		copy(sa6.Addr[:], ip.To16())
		sa = sa6
	}

	if err = unix.Bind(fd, sa); err != nil {
		unix.Close(fd)
		return -1
	}
	if err = unix.Listen(fd, 5); err != nil {
		unix.Close(fd)
		return -1
	}

	return fd
}

/*-------------------------------------------------------------------
 *
 * Name:        rigctld_attach_pty
 *
 * Purpose:     Create the pseudo terminal endpoint for a rig and
 *		join it to the event loop as a permanent connection.
 *
 *--------------------------------------------------------------------*/

func rigctld_attach_pty(s *rigctld, r *rig, linkpath string) bool {
	var ptmx, pts, err = pty.Open()
	if err != nil {
		or_error("Could not create pseudo terminal: %s.", err)
		return false
	}

	if err = unix.SetNonblock(int(ptmx.Fd()), true); err != nil {
		or_error("Can't set pseudo terminal to nonblocking: %s", err)
		ptmx.Close()
		pts.Close()
		return false
	}

	/*
	 * The device name is not the same every time.  Create a symlink
	 * with a stable name so client configuration does not need to
	 * change when the pts number does.
	 */
	os.Remove(linkpath)
	if err = os.Symlink(pts.Name(), linkpath); err != nil {
		or_error("Could not create symlink %s: %s.", linkpath, err)
		ptmx.Close()
		pts.Close()
		return false
	}

	or_info("Rig control is available on %s (%s)", linkpath, pts.Name())

	s.connections = append(s.connections, &connection{
		socket:     int(ptmx.Fd()),
		rig:        r,
		is_pty:     true,
		pty_master: ptmx,
		pty_slave:  pts,
	})
	return true
}

func rigctld_close_connection(s *rigctld, c *connection) {
	if c.closed {
		return
	}
	c.closed = true
	if c.is_pty {
		c.pty_master.Close()
		c.pty_slave.Close()
	} else {
		unix.Close(c.socket)
	}
}

/* Reply buffering. */

func tx_append(c *connection, str string) {
	c.tx_buf = append(c.tx_buf, str...)
}

func tx_printf(c *connection, format string, a ...any) {
	tx_append(c, fmt.Sprintf(format, a...))
}

/*
 * Acknowledgement line.  0 is success; driver errno values come in
 * positive and go out negated, which is what rigctl clients expect.
 */
func tx_rprt(c *connection, ret int) {
	if ret > 0 {
		ret = 0 - ret
	}
	tx_printf(c, "RPRT %d\n", ret)
}

/*-------------------------------------------------------------------
 *
 * Name:        shorten_cmds
 *
 * Purpose:     Rewrite backslash long-form command names into their
 *		single-byte aliases.
 *
 * Description:	The table is ordered by decreasing token length so a
 *		longer name can never be clipped by a shorter prefix.
 *		Applying this to an already-short line changes nothing,
 *		so it is safe to do unconditionally.
 *
 *--------------------------------------------------------------------*/

var long_commands = []struct {
	long  string
	short byte
}{
	{"\\set_split_freq", 'I'},
	{"\\get_split_freq", 'i'},
	{"\\set_split_mode", 'X'},
	{"\\get_split_mode", 'x'},
	{"\\set_split_vfo", 'S'},
	{"\\get_split_vfo", 's'},
	{"\\dump_state", 0x8f},
	{"\\get_level", 'l'},
	{"\\set_freq", 'F'},
	{"\\get_freq", 'f'},
	{"\\set_mode", 'M'},
	{"\\get_mode", 'm'},
	{"\\set_ptt", 'T'},
	{"\\get_ptt", 't'},
	{"\\get_dcd", 0x8b},
	{"\\chk_vfo", 0xf0},
	{"\\set_vfo", 'V'},
	{"\\get_vfo", 'v'},
}

func shorten_cmds(line []byte) []byte {
	for _, lc := range long_commands {
		line = bytes.ReplaceAll(line, []byte(lc.long), []byte{lc.short})
	}
	return line
}

/*
 * Argument grammar: skip to the first space, step over it, then take
 * everything up to the next space or end of line.  Returns the
 * argument and whatever follows it.
 */
func get_arg(s string) (string, string) {
	var i = strings.IndexByte(s, ' ')
	if i < 0 {
		return "", ""
	}
	s = s[i+1:]
	var j = strings.IndexByte(s, ' ')
	if j < 0 {
		return s, ""
	}
	return s[:j], s[j+1:]
}

/* Mode names on the wire. */

func mode_from_name(name string) rig_modes {
	switch name {
	case "USB":
		return MODE_USB
	case "LSB":
		return MODE_LSB
	case "CW":
		return MODE_CW
	case "CWR":
		return MODE_CWR
	case "RTTY":
		return MODE_FSK
	case "AM":
		return MODE_AM
	case "FM":
		return MODE_FM
	default:
		return MODE_UNKNOWN
	}
}

func name_from_mode(mode rig_modes) string {
	switch mode {
	case MODE_USB:
		return "USB"
	case MODE_LSB:
		return "LSB"
	case MODE_CW:
		return "CW"
	case MODE_CWR:
		return "CWR"
	case MODE_FSK:
		return "RTTY"
	case MODE_AM:
		return "AM"
	case MODE_FM:
		return "FM"
	default:
		return ""
	}
}

func vfo_from_name(name string) vfos {
	switch name {
	case "VFOA", "VFO":
		return VFO_A
	case "VFOB":
		return VFO_B
	case "MEM":
		return VFO_MEMORY
	default:
		return VFO_UNKNOWN
	}
}

/*-------------------------------------------------------------------
 *
 * Name:        rigctld_handle_command
 *
 * Purpose:     Dispatch one complete request line.
 *
 * Description:	After the long-form rewrite the line is a sequence of
 *		single-byte commands.  Commands that take arguments
 *		consume the rest of the line and end it.  Any parse
 *		failure produces exactly one "RPRT -1" line.
 *
 *--------------------------------------------------------------------*/

func rigctld_handle_command(c *connection, line []byte) {
	or_trace("tcp <", line)

	line = shorten_cmds(line)

	var s = string(line)
	for len(s) > 0 {
		if s[0] == ' ' || s[0] == '\t' {
			s = s[1:]
			continue
		}

		switch s[0] {
		case 'F': /* set_freq <Hz> */
			var arg, _ = get_arg(s)
			var u64, err = strconv.ParseUint(arg, 10, 64)
			if arg == "" || err != nil {
				tx_append(c, "RPRT -1\n")
			} else {
				tx_rprt(c, set_frequency(c.rig, u64))
			}
			return

		case 'f': /* get_freq */
			var u64 = get_frequency(c.rig)
			if u64 == 0 {
				tx_append(c, "RPRT -1\n")
			} else {
				tx_printf(c, "%d\n", u64)
			}
			s = s[1:]

		case 'I': /* set_split_freq <TX Hz> */
			var arg, _ = get_arg(s)
			var u64, err = strconv.ParseUint(arg, 10, 64)
			if arg == "" || err != nil {
				tx_append(c, "RPRT -1\n")
				return
			}
			var ret, rx_freq, _ = get_split_frequency(c.rig)
			if ret != 0 {
				tx_rprt(c, ret)
			} else {
				tx_rprt(c, set_split_frequency(c.rig, rx_freq, u64))
			}
			return

		case 'i': /* get_split_freq */
			rigctld_cmd_get_split_freq(c)
			s = s[1:]

		case 'M', 'X': /* set_mode <mode> <passband> */
			var arg, _ = get_arg(s)
			var mode = mode_from_name(arg)
			// The passband width argument is consumed with the
			// rest of the line and discarded.
			if mode == MODE_UNKNOWN {
				tx_append(c, "RPRT -1\n")
			} else {
				tx_rprt(c, set_mode(c.rig, mode))
			}
			return

		case 'm', 'x': /* get_mode */
			var name = name_from_mode(get_mode(c.rig))
			if name == "" {
				tx_append(c, "RPRT -1\n")
			} else {
				tx_printf(c, "%s\n0\n", name)
			}
			s = s[1:]

		case 'V': /* set_vfo <VFOA|VFOB|MEM> */
			var arg, _ = get_arg(s)
			var vfo = vfo_from_name(arg)
			if vfo == VFO_UNKNOWN {
				tx_append(c, "RPRT -1\n")
			} else {
				tx_rprt(c, set_vfo(c.rig, vfo))
			}
			return

		case 'v': /* get_vfo */
			switch get_vfo(c.rig) {
			case VFO_A:
				tx_append(c, "VFOA\n")
			case VFO_B:
				tx_append(c, "VFOB\n")
			case VFO_MEMORY:
				tx_append(c, "MEM\n")
			default:
				tx_append(c, "RPRT -1\n")
			}
			s = s[1:]

		case 'S': /* set_split_vfo <0|1> <VFO> */
			rigctld_cmd_set_split_vfo(c, s)
			return

		case 's': /* get_split_vfo */
			rigctld_cmd_get_split_vfo(c)
			s = s[1:]

		case 'T': /* set_ptt <0|1> */
			var arg, _ = get_arg(s)
			var i, err = strconv.Atoi(arg)
			if arg == "" || err != nil {
				tx_append(c, "RPRT -1\n")
			} else {
				tx_rprt(c, set_ptt(c.rig, i != 0))
			}
			return

		case 't': /* get_ptt */
			switch get_ptt(c.rig) {
			case 0:
				tx_append(c, "0\n")
			case 1:
				tx_append(c, "1\n")
			default:
				tx_append(c, "RPRT -1\n")
			}
			s = s[1:]

		case 0x8b: /* get_dcd */
			switch get_squelch(c.rig) {
			case 0:
				tx_append(c, "0\n")
			case 1:
				tx_append(c, "1\n")
			default:
				tx_append(c, "RPRT -1\n")
			}
			s = s[1:]

		case 'l': /* get_level STRENGTH */
			var arg, _ = get_arg(s)
			if arg != "STRENGTH" {
				tx_append(c, "RPRT -1\n")
				return
			}
			var i = get_smeter(c.rig)
			if i == -1 {
				tx_append(c, "RPRT -1\n")
			} else {
				tx_printf(c, "%d\n", i-49)
			}
			return

		case 0xf0: /* chk_vfo */
			tx_append(c, "CHKVFO 0\n")
			s = s[1:]

		case 0x8f: /* dump_state */
			rigctld_cmd_dump_state(c)
			s = s[1:]

		default:
			tx_append(c, "RPRT -1\n")
			return
		}
	}
}

/*
 * The "no split" fallback below looks inverted -- a successful
 * frequency read aborts and a failed one prints its zero -- but this
 * is what clients in the field grew up with, so it stays.
 */
func rigctld_cmd_get_split_freq(c *connection) {
	var ret, _, tx_freq = get_split_frequency(c.rig)
	if ret != 0 {
		tx_freq = get_frequency(c.rig)
		if tx_freq != 0 {
			tx_append(c, "RPRT -1\n")
			return
		}
	}
	tx_printf(c, "%d\n", tx_freq)
}

func rigctld_cmd_set_split_vfo(c *connection, s string) {
	var arg, _ = get_arg(s)
	var i, err = strconv.Atoi(arg)
	if arg == "" || err != nil {
		tx_append(c, "RPRT -1\n")
		return
	}

	if i == 0 {
		// Disable split by pinning the current frequency to the
		// current VFO.
		var u64 = get_frequency(c.rig)
		if u64 == 0 {
			tx_append(c, "RPRT -1\n")
		} else {
			tx_rprt(c, set_frequency(c.rig, u64))
		}
		return
	}

	// "Enable split"
	// First, switch to the "other" VFO to get the frequency
	var vfo = get_vfo(c.rig)
	var rx_freq = get_frequency(c.rig)
	if rx_freq == 0 {
		tx_append(c, "RPRT -1\n")
		return
	}
	switch vfo {
	case VFO_A:
		if set_vfo(c.rig, VFO_B) != 0 {
			tx_append(c, "RPRT -1\n")
			return
		}
	case VFO_B:
		if set_vfo(c.rig, VFO_A) != 0 {
			tx_append(c, "RPRT -1\n")
			return
		}
	default:
	}
	var tx_freq = get_frequency(c.rig)
	if tx_freq == 0 {
		tx_append(c, "RPRT -1\n")
		return
	}
	// Now switch back
	if set_vfo(c.rig, vfo) != 0 {
		tx_append(c, "RPRT -1\n")
		return
	}
	// And finally, set the split.
	tx_rprt(c, set_split_frequency(c.rig, rx_freq, tx_freq))
}

func rigctld_cmd_get_split_vfo(c *connection) {
	var ret, _, _ = get_split_frequency(c.rig)
	var vfo = get_vfo(c.rig)

	var buf string
	switch vfo {
	case VFO_A:
		buf = IfThenElse(ret == 0, "VFOB", "VFOA")
	case VFO_B:
		buf = IfThenElse(ret == 0, "VFOA", "VFOB")
	case VFO_MEMORY:
		buf = "MEM"
	default:
		buf = ""
	}

	if buf == "" {
		tx_append(c, "RPRT -1\n")
	} else {
		tx_printf(c, "%d\n%s\n", IfThenElse(ret == 0, 1, 0), buf)
	}
}

/*
 * Fixed capability block, one datum per line.  Clients parse this
 * positionally, so the layout is part of the wire protocol: 22 lines,
 * the get-level mask on line 19, set-parm last.
 */
func rigctld_cmd_dump_state(c *connection) {
	var get_level = "0x0"
	if c.rig != nil && c.rig.get_smeter != nil {
		get_level = "0x40000000" /* STRENGTH */
	}

	tx_append(c,
		"0\n"+ // Protocol version
			"1\n"+ // Rig model (dummy)
			"2\n"+ // ITU region (!)
			// RX info: lowest/highest freq, modes available, low power, high power, VFOs, antennas
			"0 9999999999999 0x1ff -1 -1 0x10000003 0x01\n"+
			// Terminated with all zeros
			"0 0 0 0 0 0 0\n"+
			// TX info (as above)
			"0 9999999999999 0x1ff -1 -1 0x10000003 0x01\n"+
			"0 0 0 0 0 0 0\n"+
			// Tuning steps available, modes, steps
			"0 0\n"+
			// Filter sizes, mode, bandwidth
			"0 0\n"+
			// End of filter list
			"0 0\n"+
			"0\n"+ // Max RIT
			"0\n"+ // Max XIT
			"0\n"+ // Max IF shift
			"0\n"+ // "announces"
			"\n"+ // Preamp settings
			"\n"+ // Attenuator settings
			"0x0\n"+ // has get func
			"0x0\n") // has set func
	tx_printf(c, "%s\n", get_level) // get level
	tx_append(c,
		"0x0\n"+ // set level
			"0x0\n"+ // get param
			"0x0\n") // set param
}

/*-------------------------------------------------------------------
 *
 * Name:        rigctld_main_loop
 *
 * Purpose:     The event loop.  Never returns in normal operation.
 *
 * Description:	Readiness order per iteration: errors, then writes,
 *		then reads, then at most one buffered line per
 *		connection, then accepts.  When a connection still has
 *		a complete line buffered the poll timeout drops to
 *		zero so the leftover is served on the very next spin
 *		instead of waiting for new traffic.
 *
 *--------------------------------------------------------------------*/

func rigctld_main_loop(s *rigctld) {
	for {
		if len(s.listeners) == 0 && len(s.connections) == 0 {
			return
		}

		var pollfds = make([]unix.PollFd, 0, len(s.listeners)+len(s.connections))
		for _, l := range s.listeners {
			pollfds = append(pollfds, unix.PollFd{Fd: int32(l.socket), Events: unix.POLLIN})
		}

		var timeout = -1
		for _, c := range s.connections {
			var events int16 = unix.POLLIN
			if len(c.tx_buf) > 0 {
				events |= unix.POLLOUT
			}
			if bytes.IndexByte(c.rx_buf, '\n') >= 0 {
				timeout = 0
			}
			pollfds = append(pollfds, unix.PollFd{Fd: int32(c.socket), Events: events})
		}

		Assert(len(pollfds) == len(s.listeners)+len(s.connections))

		var _, err = unix.Poll(pollfds, timeout)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return
		}

		for i, c := range s.connections {
			var revents = pollfds[len(s.listeners)+i].Revents

			// First, the exceptions... we'll just close it for now.
			if revents&(unix.POLLERR|unix.POLLNVAL) != 0 {
				rigctld_close_connection(s, c)
				continue
			}

			// Next the writes
			if revents&unix.POLLOUT != 0 && len(c.tx_buf) > 0 {
				var n, werr = unix.Write(c.socket, c.tx_buf)
				if werr != nil {
					if werr != unix.EAGAIN {
						rigctld_close_connection(s, c)
						continue
					}
				} else if n > 0 {
					c.tx_buf = c.tx_buf[n:]
				}
			}

			// Now the reads.
			if revents&unix.POLLIN != 0 {
				var avail, ierr = unix.IoctlGetInt(c.socket, unix.TIOCINQ)
				if ierr != nil {
					rigctld_close_connection(s, c)
					continue
				}
				if avail == 0 {
					// Ready to read with nothing there is EOF.
					if !c.is_pty {
						rigctld_close_connection(s, c)
						continue
					}
				} else {
					var buf = make([]byte, avail)
					var n, rerr = unix.Read(c.socket, buf)
					if rerr != nil || n <= 0 {
						if !c.is_pty || (rerr != unix.EAGAIN && rerr != unix.EIO) {
							rigctld_close_connection(s, c)
							continue
						}
					} else {
						c.rx_buf = append(c.rx_buf, buf[:n]...)
					}
				}
			}

			// One complete line per iteration, whether it arrived
			// just now or was left over from a previous burst.
			if j := bytes.IndexByte(c.rx_buf, '\n'); j >= 0 {
				var line = bytes.TrimSuffix(c.rx_buf[:j], []byte{'\r'})
				var rest = c.rx_buf[j+1:]
				c.rx_buf = append([]byte(nil), rest...)
				rigctld_handle_command(c, line)
			}
		}

		// Drop closed connections.
		var alive = s.connections[:0]
		for _, c := range s.connections {
			if !c.closed {
				alive = append(alive, c)
			}
		}
		s.connections = alive

		// Accept new connections...
		for i, l := range s.listeners {
			if pollfds[i].Revents&unix.POLLIN != 0 {
				var nfd, _, aerr = unix.Accept(l.socket)
				if aerr != nil {
					continue
				}
				unix.SetNonblock(nfd, true)
				s.connections = append(s.connections, &connection{socket: nfd, rig: l.rig})
			}
		}
	}
}

func rigctld_cleanup(s *rigctld) {
	for _, c := range s.connections {
		rigctld_close_connection(s, c)
	}
	s.connections = nil
	for _, l := range s.listeners {
		unix.Close(l.socket)
	}
	s.listeners = nil
	for _, r := range s.rigs {
		close_rig(r)
	}
	s.rigs = nil
}

/*-------------------------------------------------------------------
 *
 * Name:        RigctldMain
 *
 * Purpose:     Entry point for the or-rigctld daemon.
 *
 * Usage:	or-rigctld -c <config> [-f] [-d]
 *
 *--------------------------------------------------------------------*/

func RigctldMain() {
	var configFileName = pflag.StringP("config-file", "c", "", "Configuration file name (INI, one section per rig).")
	var foreground = pflag.BoolP("foreground", "f", false, "Remain in the foreground, do not detach.")
	var debug = pflag.CountP("debug", "d", "Increase debug verbosity.  Repeat for protocol traces.")
	var help = pflag.BoolP("help", "h", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s - rig control daemon speaking the rigctld protocol.\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Usage: or-rigctld -c <config> [options]\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Where <config> is the path to the ini file.\n")
	}

	pflag.Parse()

	if *help || *configFileName == "" {
		pflag.Usage()
		os.Exit(1)
	}

	or_log_init(*debug)

	// Running under a supervisor is the expected deployment; -f is
	// accepted for compatibility and for shells.
	if !*foreground {
		or_debug("No -f given; staying attached anyway, detach is the supervisor's job.")
	}

	var d = load_config(*configFileName)
	if d == nil {
		os.Exit(1)
	}

	var sections = config_sections(d)
	if len(sections) == 0 {
		or_error("No rigs found!  Aborting.")
		os.Exit(1)
	}

	var s = rigctld_new()
	var active_rig_count = 0
	for _, section := range sections {
		active_rig_count += rigctld_add_rig(s, d, section)
	}

	if active_rig_count == 0 {
		or_error("Unable to set up any sockets!  Aborting.")
		os.Exit(1)
	}

	var sig = make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		<-sig
		rigctld_cleanup(s)
		os.Exit(0)
	}()

	rigctld_main_loop(s)

	rigctld_cleanup(s)
}

/* end rigctld.go */
