// Package testutil provides a deterministic SNMP fixture backend so
// inspection and report tests run without a live network.
package testutil

import (
	"fmt"

	"github.com/mikepitagno/cisco-duplex-check/pkg/snmp"
)

// StaticGateway serves canned SNMP data. Scalars answer Get; Subtrees
// answer Walk in the order given. GetErrs forces a transport error for
// specific OIDs.
type StaticGateway struct {
	Scalars  map[string]interface{}
	Subtrees map[string][]snmp.PDU
	GetErrs  map[string]error
	WalkErr  error
	Closed   bool
}

func (s *StaticGateway) Get(oid string) (snmp.PDU, error) {
	if err, ok := s.GetErrs[oid]; ok {
		return snmp.PDU{}, err
	}
	v, ok := s.Scalars[oid]
	if !ok {
		return snmp.PDU{}, fmt.Errorf("get %s: %w", oid, snmp.ErrNoSuchObject)
	}
	return snmp.PDU{OID: oid, Value: v}, nil
}

func (s *StaticGateway) Walk(root string) ([]snmp.PDU, error) {
	if s.WalkErr != nil {
		return nil, s.WalkErr
	}
	pdus, ok := s.Subtrees[root]
	if !ok {
		return nil, nil
	}
	return pdus, nil
}

func (s *StaticGateway) Close() error {
	s.Closed = true
	return nil
}

// StaticDialer maps device names to fixture gateways. Dialing a device
// without an entry fails, simulating an unreachable target.
type StaticDialer struct {
	Gateways map[string]*StaticGateway
}

func (d StaticDialer) Dial(target string) (snmp.Gateway, error) {
	gw, ok := d.Gateways[target]
	if !ok {
		return nil, fmt.Errorf("dial %s: no response", target)
	}
	return gw, nil
}
