package inspect

import (
	"fmt"

	"github.com/mikepitagno/cisco-duplex-check/pkg/inventory"
	"github.com/mikepitagno/cisco-duplex-check/pkg/snmp"
	"github.com/mikepitagno/cisco-duplex-check/pkg/util"
)

// Port is one classified interface: ifDescr as the port name, ifAlias as
// the operator-assigned description.
type Port struct {
	Name  string `json:"name"`
	Alias string `json:"alias,omitempty"`
}

// DeviceReport is the outcome of inspecting one device. Unreachable is a
// tagged variant rather than a sentinel: a device that failed SNMP contact
// carries empty port lists and must still appear in the final report.
type DeviceReport struct {
	Device      string `json:"device"`
	Unreachable bool   `json:"unreachable,omitempty"`
	Half        []Port `json:"half_duplex"`
	Full        []Port `json:"full_duplex"`
}

// PortStatus is a full inventory row for the ports listing: every
// interface on the device with its live operational and duplex state.
type PortStatus struct {
	Index  int        `json:"index"`
	Name   string     `json:"name"`
	Alias  string     `json:"alias,omitempty"`
	Oper   OperStatus `json:"oper_status"`
	Duplex Duplex     `json:"duplex"`
}

// Inspector polls devices one at a time through a snmp.Dialer. Cache is
// optional; when set, interface name/alias inventories are served from
// disk instead of re-walking ifDescr.
type Inspector struct {
	Dialer snmp.Dialer
	Cache  *inventory.Cache
}

// New returns an Inspector over the given dialer.
func New(d snmp.Dialer) *Inspector {
	return &Inspector{Dialer: d}
}

// Inspect classifies every active port on device. It never returns an
// error: SNMP failure is converted to an unreachable report and the run
// continues with the next device.
func (ins *Inspector) Inspect(device string) DeviceReport {
	log := util.WithDevice(device)

	gw, err := ins.Dialer.Dial(device)
	if err != nil {
		log.Debugf("dial failed: %v", err)
		return DeviceReport{Device: device, Unreachable: true}
	}
	defer gw.Close()

	// Reachability probe before walking tables, as the tool has always done.
	if _, err := gw.Get(OIDSysDescr); err != nil {
		log.Debugf("sysDescr probe failed: %v", err)
		return DeviceReport{Device: device, Unreachable: true}
	}

	ports, err := ins.interfaces(gw, device)
	if err != nil {
		log.Debugf("interface walk failed: %v", err)
		return DeviceReport{Device: device, Unreachable: true}
	}

	report := DeviceReport{Device: device}
	for _, p := range ports {
		st, err := gw.Get(fmt.Sprintf("%s.%d", OIDIfOperStatus, p.Index))
		if err != nil {
			// Fail-fast per device: a dead status query means the session
			// is gone, not that one port is odd.
			log.Debugf("ifOperStatus.%d failed: %v", p.Index, err)
			return DeviceReport{Device: device, Unreachable: true}
		}
		code, _ := st.Int()
		if OperStatus(code) != OperUp {
			continue
		}

		dup, err := gw.Get(fmt.Sprintf("%s.%d", OIDDuplex, p.Index))
		if err != nil {
			// A port with no duplex answer degrades to unknown and is
			// excluded from classification.
			log.Debugf("duplex.%d unanswered: %v", p.Index, err)
			continue
		}
		v, _ := dup.Int()
		switch ParseDuplex(v) {
		case DuplexHalf:
			report.Half = append(report.Half, Port{Name: p.Name, Alias: p.Alias})
		case DuplexFull:
			report.Full = append(report.Full, Port{Name: p.Name, Alias: p.Alias})
		}
	}
	return report
}

// Inventory returns every interface on device with live operational and
// duplex state. Unlike Inspect, errors propagate: the caller named a
// single explicit target and wants to know why it failed.
func (ins *Inspector) Inventory(device string) ([]PortStatus, error) {
	gw, err := ins.Dialer.Dial(device)
	if err != nil {
		return nil, err
	}
	defer gw.Close()

	if _, err := gw.Get(OIDSysDescr); err != nil {
		return nil, err
	}

	ports, err := ins.interfaces(gw, device)
	if err != nil {
		return nil, err
	}

	out := make([]PortStatus, 0, len(ports))
	for _, p := range ports {
		st, err := gw.Get(fmt.Sprintf("%s.%d", OIDIfOperStatus, p.Index))
		if err != nil {
			return nil, err
		}
		code, _ := st.Int()

		row := PortStatus{
			Index: p.Index,
			Name:  p.Name,
			Alias: p.Alias,
			Oper:  OperStatus(code),
		}
		if row.Oper == OperUp {
			if dup, err := gw.Get(fmt.Sprintf("%s.%d", OIDDuplex, p.Index)); err == nil {
				v, _ := dup.Int()
				row.Duplex = ParseDuplex(v)
			}
		}
		out = append(out, row)
	}
	return out, nil
}

// interfaces returns the device's name/alias inventory, from the cache
// when enabled and present, otherwise from an ifDescr walk with a
// per-interface ifAlias lookup. Alias failures are cosmetic and degrade
// to an empty description.
func (ins *Inspector) interfaces(gw snmp.Gateway, device string) ([]inventory.Port, error) {
	if ins.Cache != nil {
		if ports, ok := ins.Cache.Load(device); ok {
			util.WithDevice(device).Debugf("inventory served from cache (%d interfaces)", len(ports))
			return ports, nil
		}
	}

	pdus, err := gw.Walk(OIDIfDescr)
	if err != nil {
		return nil, err
	}

	ports := make([]inventory.Port, 0, len(pdus))
	for _, pdu := range pdus {
		idx, ok := snmp.Index(OIDIfDescr, pdu.OID)
		if !ok {
			continue
		}
		alias := ""
		if a, err := gw.Get(fmt.Sprintf("%s.%d", OIDIfAlias, idx)); err == nil {
			alias = a.Str()
		}
		ports = append(ports, inventory.Port{Index: idx, Name: pdu.Str(), Alias: alias})
	}

	if ins.Cache != nil {
		if err := ins.Cache.Store(device, ports); err != nil {
			util.WithDevice(device).Warnf("could not cache inventory: %v", err)
		}
	}
	return ports, nil
}
