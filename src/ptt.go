package outrigger

/*------------------------------------------------------------------
 *
 * Purpose:   	Activate an output line for push to talk (PTT).
 *
 * Description:	Most rigs handled here key up over CAT (the Kenwood
 *		TX;/RX; pair), but plenty of stations run the PTT wire
 *		to a GPIO pin instead: the CAT link may predate
 *		computer keying, or the operator wants hard keying
 *		that works even when the serial link wedges.
 *
 *		When a section says
 *
 *			ptt_type = gpio
 *			ptt_gpio_chip = gpiochip0
 *			ptt_gpio_line = 17
 *			ptt_gpio_invert = 0
 *
 *		the rig's PTT operations are replaced with ones that
 *		drive the pin through the character-device GPIO API.
 *
 *---------------------------------------------------------------*/

import (
	"strings"
	"syscall"

	"github.com/warthog618/go-gpiocdev"
)

/*-------------------------------------------------------------------
 *
 * Name:        ptt_apply_override
 *
 * Purpose:     Replace a rig's PTT operations with GPIO ones when the
 *		configuration asks for it.
 *
 * Description:	The line state is remembered locally so get_ptt does
 *		not have to read the pin back; only the front-end
 *		thread ever calls these.
 *
 *--------------------------------------------------------------------*/

func ptt_apply_override(d *config_dict, section string, r *rig) {
	var ptype = get_string(d, section, "ptt_type", "cat")
	if !strings.EqualFold(ptype, "gpio") {
		return
	}

	var chip = get_string(d, section, "ptt_gpio_chip", "gpiochip0")
	var line = get_int(d, section, "ptt_gpio_line", -1)
	var invert = get_int(d, section, "ptt_gpio_invert", 0) != 0

	if line < 0 {
		or_error("Rig [%s]: ptt_type = gpio needs ptt_gpio_line.", section)
		return
	}

	var initial = 0
	if invert {
		initial = 1
	}

	var l, err = gpiocdev.RequestLine(chip, line,
		gpiocdev.AsOutput(initial),
		gpiocdev.WithConsumer("or-rigctld"))
	if err != nil {
		or_error("Rig [%s]: could not request GPIO %s:%d for PTT: %s", section, chip, line, err)
		return
	}

	or_info("Rig [%s]: PTT via GPIO %s line %d.", section, chip, line)

	var transmitting = false

	r.set_ptt = func(cbdata any, tx bool) int {
		var v = 0
		if tx {
			v = 1
		}
		if invert {
			v = 1 - v
		}
		if setErr := l.SetValue(v); setErr != nil {
			or_error("PTT GPIO write failed: %s", setErr)
			return int(syscall.EIO)
		}
		transmitting = tx
		return 0
	}

	r.get_ptt = func(cbdata any) int {
		if transmitting {
			return 1
		}
		return 0
	}
}

/* end ptt.go */
