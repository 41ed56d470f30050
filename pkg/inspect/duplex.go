// Package inspect polls a switch's interface tables over SNMP and
// classifies each active port's duplex state.
package inspect

// Standard interface MIB subtrees queried during inspection. Per-port
// values are addressed as <root>.<ifIndex>.
const (
	OIDSysDescr     = "1.3.6.1.2.1.1.1.0"       // SNMPv2-MIB sysDescr, reachability probe
	OIDIfDescr      = "1.3.6.1.2.1.2.2.1.2"     // IF-MIB ifDescr
	OIDIfOperStatus = "1.3.6.1.2.1.2.2.1.8"     // IF-MIB ifOperStatus
	OIDIfAlias      = "1.3.6.1.2.1.31.1.1.1.18" // IF-MIB ifAlias
	OIDDuplex       = "1.3.6.1.2.1.10.7.2.1.19" // EtherLike-MIB dot3StatsDuplexStatus
)

// OperStatus is an IF-MIB ifOperStatus value.
type OperStatus int64

const (
	OperUp           OperStatus = 1
	OperDown         OperStatus = 2
	OperTesting      OperStatus = 3
	OperUnknown      OperStatus = 4
	OperDormant      OperStatus = 5
	OperNotPresent   OperStatus = 6
	OperLowLayerDown OperStatus = 7
)

// MarshalJSON renders the status as its symbolic name.
func (s OperStatus) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

func (s OperStatus) String() string {
	switch s {
	case OperUp:
		return "up"
	case OperDown:
		return "down"
	case OperTesting:
		return "testing"
	case OperUnknown:
		return "unknown"
	case OperDormant:
		return "dormant"
	case OperNotPresent:
		return "notPresent"
	case OperLowLayerDown:
		return "lowerLayerDown"
	}
	return "other"
}

// Duplex is the classified duplex state of a port.
type Duplex uint8

const (
	DuplexUnknown Duplex = iota
	DuplexHalf
	DuplexFull
)

// MarshalJSON renders the duplex state as its symbolic name.
func (d Duplex) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d Duplex) String() string {
	switch d {
	case DuplexHalf:
		return "half"
	case DuplexFull:
		return "full"
	}
	return "unknown"
}

// ParseDuplex maps a dot3StatsDuplexStatus integer to a Duplex. The MIB
// defines 1=unknown, 2=halfDuplex, 3=fullDuplex; anything else, including
// values from agents that never answer, classifies as unknown.
func ParseDuplex(v int64) Duplex {
	switch v {
	case 2:
		return DuplexHalf
	case 3:
		return DuplexFull
	}
	return DuplexUnknown
}
