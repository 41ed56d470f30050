package testutil

import (
	"fmt"

	"github.com/mikepitagno/cisco-duplex-check/pkg/inspect"
	"github.com/mikepitagno/cisco-duplex-check/pkg/snmp"
)

// FixturePort describes one interface on a fixture switch, with wire-level
// ifOperStatus and dot3StatsDuplexStatus values.
type FixturePort struct {
	Index  int
	Name   string
	Alias  string
	Oper   int
	Duplex int // 0 = no EtherLike-MIB entry for this port
}

// Switch builds a StaticGateway answering every OID duplexcheck queries
// for the given ports, in the order given.
func Switch(sysDescr string, ports ...FixturePort) *StaticGateway {
	gw := &StaticGateway{
		Scalars:  map[string]interface{}{inspect.OIDSysDescr: sysDescr},
		Subtrees: map[string][]snmp.PDU{},
	}
	for _, p := range ports {
		gw.Subtrees[inspect.OIDIfDescr] = append(gw.Subtrees[inspect.OIDIfDescr], snmp.PDU{
			OID:   fmt.Sprintf(".%s.%d", inspect.OIDIfDescr, p.Index),
			Value: p.Name,
		})
		if p.Alias != "" {
			gw.Scalars[fmt.Sprintf("%s.%d", inspect.OIDIfAlias, p.Index)] = p.Alias
		}
		gw.Scalars[fmt.Sprintf("%s.%d", inspect.OIDIfOperStatus, p.Index)] = p.Oper
		if p.Duplex != 0 {
			gw.Scalars[fmt.Sprintf("%s.%d", inspect.OIDDuplex, p.Index)] = p.Duplex
		}
	}
	return gw
}
