package outrigger

/*------------------------------------------------------------------
 *
 * Purpose:   	Announce the rig control TCP service using DNS-SD
 *
 * Description:
 *
 *     Most people have typed in enough IP addresses and ports by now,
 *     and would rather just pick an available rig off the local
 *     network.  Logging programs on a laptop or tablet can browse for
 *     the control port instead of being configured with it.
 *
 *     This uses the pure-Go github.com/brutella/dnssd package for
 *     cross-platform mDNS/DNS-SD service announcement without
 *     requiring any system daemon or C library dependencies.
 *
 *---------------------------------------------------------------*/

import (
	"context"
	"fmt"
	"os"

	"github.com/brutella/dnssd"
)

const DNS_SD_SERVICE = "_rigctld._tcp"

func dns_sd_default_service_name(section string) string {
	var hostname, err = os.Hostname()
	if err != nil {
		return fmt.Sprintf("Outrigger on %s", section)
	}
	return fmt.Sprintf("Outrigger %s on %s", section, hostname)
}

func dns_sd_announce(name string, section string, port int) {
	if name == "" {
		name = dns_sd_default_service_name(section)
	}

	var cfg = dnssd.Config{ //nolint:exhaustruct
		Name: name,
		Type: DNS_SD_SERVICE,
		Port: port,
	}

	var sv, svErr = dnssd.NewService(cfg)
	if svErr != nil {
		or_error("DNS-SD: Failed to create service: %v", svErr)

		return
	}

	var rp, rpErr = dnssd.NewResponder()
	if rpErr != nil {
		or_error("DNS-SD: Failed to create responder: %v", rpErr)

		return
	}

	var _, addErr = rp.Add(sv)
	if addErr != nil {
		or_error("DNS-SD: Failed to add service: %v", addErr)

		return
	}

	or_info("DNS-SD: Announcing rig control on port %d as '%s'", port, name)

	go func() {
		var respondErr = rp.Respond(context.Background())
		if respondErr != nil {
			or_error("DNS-SD: Responder error: %v", respondErr)
		}
	}()
}

/* end dns_sd.go */
