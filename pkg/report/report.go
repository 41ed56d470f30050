// Package report aggregates per-device inspection results into the final
// duplex report and renders its fixed text format.
package report

import (
	"fmt"
	"strings"

	"github.com/mikepitagno/cisco-duplex-check/pkg/inspect"
)

// Summary is the finalized run result: the devices that have at least one
// half-duplex port, plus every per-device report in device-list order.
type Summary struct {
	HalfDuplexSwitches []string               `json:"half_duplex_switches"`
	Reports            []inspect.DeviceReport `json:"devices"`
}

// Build is pure aggregation: input order is preserved and a device lands
// in HalfDuplexSwitches exactly when its half-duplex list is non-empty.
func Build(reports []inspect.DeviceReport) Summary {
	s := Summary{Reports: reports}
	for _, r := range reports {
		if !r.Unreachable && len(r.Half) > 0 {
			s.HalfDuplexSwitches = append(s.HalfDuplexSwitches, r.Device)
		}
	}
	return s
}

// Text renders the report. The layout is a compatibility contract:
//
//	Switches with Half-Duplex Ports: SW1, SW3
//
//	SW1 Half-Duplex Ports:
//	  FastEthernet0/1 - printer-3f
//	SW1 Full Duplex Ports:
//	  GigabitEthernet0/1 - uplink-core
//
//	SW2 - No Half Duplex Ports
//	SW2 Full Duplex Ports:
//	  ...
//
//	SW3 - SNMP Failure
//
// Device names are upper-cased. An empty run (no devices) renders as an
// empty string, asserting nothing.
func (s Summary) Text() string {
	if len(s.Reports) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Switches with Half-Duplex Ports: ")
	if len(s.HalfDuplexSwitches) == 0 {
		b.WriteString("none")
	} else {
		names := make([]string, len(s.HalfDuplexSwitches))
		for i, d := range s.HalfDuplexSwitches {
			names[i] = strings.ToUpper(d)
		}
		b.WriteString(strings.Join(names, ", "))
	}
	b.WriteString("\n\n")

	for _, r := range s.Reports {
		name := strings.ToUpper(r.Device)
		if r.Unreachable {
			fmt.Fprintf(&b, "%s - SNMP Failure\n\n", name)
			continue
		}
		if len(r.Half) > 0 {
			fmt.Fprintf(&b, "%s Half-Duplex Ports:\n", name)
			writePorts(&b, r.Half)
		} else {
			fmt.Fprintf(&b, "%s - No Half Duplex Ports\n", name)
		}
		fmt.Fprintf(&b, "%s Full Duplex Ports:\n", name)
		writePorts(&b, r.Full)
		b.WriteString("\n")
	}
	return b.String()
}

func writePorts(b *strings.Builder, ports []inspect.Port) {
	for _, p := range ports {
		if p.Alias != "" {
			fmt.Fprintf(b, "  %s - %s\n", p.Name, p.Alias)
		} else {
			fmt.Fprintf(b, "  %s\n", p.Name)
		}
	}
}
