package outrigger

/*------------------------------------------------------------------
 *
 * Purpose:   	Interface to serial port, hiding operating system differences.
 *
 * Description:	Rigs are wired up with whatever RS-232 framing their
 *		era demanded (the TS-940S wants 4800 bps 8N2), so this
 *		exposes the full speed / word length / stop bits /
 *		parity / flow selection from the configuration section.
 *
 *		Reads and writes take a millisecond timeout.  A CAT
 *		exchange is request/response on a half-duplex link, so
 *		the timeout is the only thing standing between us and a
 *		rig that was switched off mid-command.
 *
 *---------------------------------------------------------------*/

import (
	"strings"
	"time"

	serial "github.com/daedaluz/goserial"
	"golang.org/x/sys/unix"
)

type serial_port struct {
	port *serial.Port
	name string
}

var serial_speeds = map[int]serial.CFlag{
	300:    serial.B300,
	1200:   serial.B1200,
	2400:   serial.B2400,
	4800:   serial.B4800,
	9600:   serial.B9600,
	19200:  serial.B19200,
	38400:  serial.B38400,
	57600:  serial.B57600,
	115200: serial.B115200,
}

/*-------------------------------------------------------------------
 *
 * Name:	serial_port_open_from_config
 *
 * Purpose:	Open and configure the serial port named in a rig's
 *		configuration section.
 *
 * Inputs:	d	- Configuration dictionary.
 *		section	- Rig section name.
 *
 *		Keys consulted: port, speed, databits, stopbits,
 *		parity, flow.  Model files fill in defaults with
 *		set_default() before calling this.
 *
 * Returns 	Handle for serial port, or nil on failure.
 *
 *---------------------------------------------------------------*/

func serial_port_open_from_config(d *config_dict, section string) *serial_port {
	var name = get_string(d, section, "port", "")
	if name == "" {
		or_error("Rig [%s] has no serial port configured.", section)
		return nil
	}

	var speed = get_int(d, section, "speed", 9600)
	var bspeed, speed_ok = serial_speeds[speed]
	if !speed_ok {
		or_error("Rig [%s]: unsupported serial speed %d.", section, speed)
		return nil
	}

	var csize serial.CFlag
	switch get_int(d, section, "databits", 8) {
	case 8:
		csize = serial.CS8
	case 7:
		csize = serial.CS7
	case 6:
		csize = serial.CS6
	case 5:
		csize = serial.CS5
	default:
		or_error("Rig [%s]: databits must be 5, 6, 7 or 8.", section)
		return nil
	}

	// The stop bits default is 2, not 1: every rig this daemon grew
	// up with is 8N2.  See DESIGN.md for the history of this default.
	var cstop serial.CFlag
	switch get_int(d, section, "stopbits", 2) {
	case 1:
		cstop = 0
	case 2:
		cstop = serial.CSTOPB
	default:
		or_error("Rig [%s]: stopbits must be 1 or 2.", section)
		return nil
	}

	var cparity serial.CFlag
	var parity = get_string(d, section, "parity", "N")
	if parity == "" {
		parity = "N"
	}
	switch strings.ToUpper(parity)[0] {
	case 'N':
		cparity = 0
	case 'O':
		cparity = serial.PARENB | serial.PARODD
	case 'E':
		cparity = serial.PARENB
	case 'H': /* "mark" parity, always 1 */
		cparity = serial.PARENB | serial.CMSPAR | serial.PARODD
	case 'L': /* "space" parity, always 0 */
		cparity = serial.PARENB | serial.CMSPAR
	default:
		or_error("Rig [%s]: parity must be one of N, O, E, H, L.", section)
		return nil
	}

	var cflow serial.CFlag
	var flow = get_string(d, section, "flow", "N")
	if flow == "" {
		flow = "N"
	}
	switch strings.ToUpper(flow)[0] {
	case 'N':
		cflow = 0
	case 'C':
		cflow = serial.CRTSCTS
	default:
		or_error("Rig [%s]: flow must be N or C.", section)
		return nil
	}

	var p, err = serial.Open(name, serial.NewOptions())
	if err != nil {
		or_error("Could not open serial port %s: %s.", name, err)
		return nil
	}

	var attrs, attrErr = p.GetAttr()
	if attrErr != nil {
		or_error("Could not read attributes of %s: %s.", name, attrErr)
		p.Close()
		return nil
	}

	attrs.MakeRaw()
	attrs.Cflag &^= serial.CSIZE | serial.CSTOPB | serial.PARENB | serial.PARODD | serial.CMSPAR | serial.CRTSCTS
	attrs.Cflag |= csize | cstop | cparity | cflow | serial.CLOCAL | serial.CREAD
	attrs.SetSpeed(bspeed)

	if setErr := p.SetAttr(serial.TCSANOW, attrs); setErr != nil {
		or_error("Could not configure serial port %s: %s.", name, setErr)
		p.Close()
		return nil
	}

	or_debug("Opened serial port %s (%d bps).", name, speed)

	return &serial_port{port: p, name: name}
}

/* Wait for readiness on the underlying descriptor.
 * Returns 1 when ready, 0 on timeout, -1 on error. */

func serial_wait(fd int, events int16, timeout_ms uint) int {
	var pfd = []unix.PollFd{{Fd: int32(fd), Events: events}}
	for {
		var n, err = unix.Poll(pfd, int(timeout_ms))
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return -1
		}
		if n == 0 {
			return 0
		}
		return 1
	}
}

func (s *serial_port) wait_read(timeout_ms uint) int {
	return serial_wait(s.port.Fd(), unix.POLLIN, timeout_ms)
}

func (s *serial_port) wait_write(timeout_ms uint) int {
	return serial_wait(s.port.Fd(), unix.POLLOUT, timeout_ms)
}

/*-------------------------------------------------------------------
 *
 * Name:        read / write
 *
 * Purpose:     Byte transfer with a millisecond deadline.
 *
 * Returns:	Number of bytes transferred, or -1 on error or timeout.
 *
 *--------------------------------------------------------------------*/

func (s *serial_port) read(buf []byte, timeout_ms uint) int {
	var n, err = s.port.ReadTimeout(buf, time.Duration(timeout_ms)*time.Millisecond)
	if err != nil || n <= 0 {
		return -1
	}
	return n
}

func (s *serial_port) write(buf []byte, timeout_ms uint) int {
	if s.wait_write(timeout_ms) != 1 {
		return -1
	}
	var n, err = s.port.Write(buf)
	if err != nil || n != len(buf) {
		return -1
	}
	or_trace("serial >", buf)
	return n
}

/* Bytes already buffered by the driver. */

func (s *serial_port) pending() int {
	var n, err = unix.IoctlGetInt(s.port.Fd(), unix.TIOCINQ)
	if err != nil {
		return -1
	}
	return n
}

func (s *serial_port) close() error {
	return s.port.Close()
}

/* end serial_port.go */
