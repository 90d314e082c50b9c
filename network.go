package main

import (
	"net"
)

// localIP returns the first global-unicast IPv4 address on any interface,
// for reporting in the state reply. Empty when the host has none yet;
// joining a network is the host's business, not ours.
func localIP() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return ""
	}
	for _, a := range addrs {
		ipn, ok := a.(*net.IPNet)
		if !ok {
			continue
		}
		ip := ipn.IP.To4()
		if ip != nil && ip.IsGlobalUnicast() {
			return ip.String()
		}
	}
	return ""
}
