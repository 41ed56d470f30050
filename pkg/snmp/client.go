package snmp

import (
	"fmt"
	"time"

	g "github.com/gosnmp/gosnmp"
)

const (
	defaultPort    = 161
	defaultTimeout = 2 * time.Second
)

// ClientConfig holds per-run transport settings and implements Dialer
// over gosnmp with SNMP v2c community auth.
type ClientConfig struct {
	Community string
	Port      uint16
	Timeout   time.Duration
	Retries   int
}

// Dial opens a UDP session to target and verifies nothing; reachability
// is probed by the caller's first query.
func (c ClientConfig) Dial(target string) (Gateway, error) {
	port := c.Port
	if port == 0 {
		port = defaultPort
	}
	timeout := c.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	conn := &g.GoSNMP{
		Target:    target,
		Port:      port,
		Community: c.Community,
		Version:   g.Version2c,
		Timeout:   timeout,
		Retries:   c.Retries,
	}
	if err := conn.Connect(); err != nil {
		return nil, fmt.Errorf("snmp connect %s: %w", target, err)
	}
	return &client{conn: conn}, nil
}

type client struct {
	conn *g.GoSNMP
}

func (c *client) Get(oid string) (PDU, error) {
	pkt, err := c.conn.Get([]string{oid})
	if err != nil {
		return PDU{}, fmt.Errorf("snmp get %s: %w", oid, err)
	}
	if pkt.Error != g.NoError {
		return PDU{}, fmt.Errorf("snmp get %s: %s", oid, pkt.Error)
	}
	if len(pkt.Variables) == 0 {
		return PDU{}, fmt.Errorf("snmp get %s: %w", oid, ErrNoSuchObject)
	}
	v := pkt.Variables[0]
	switch v.Type {
	case g.NoSuchObject, g.NoSuchInstance, g.Null:
		return PDU{}, fmt.Errorf("snmp get %s: %w", oid, ErrNoSuchObject)
	}
	return toPDU(v), nil
}

func (c *client) Walk(root string) ([]PDU, error) {
	vars, err := c.conn.WalkAll(root)
	if err != nil {
		return nil, fmt.Errorf("snmp walk %s: %w", root, err)
	}
	pdus := make([]PDU, 0, len(vars))
	for _, v := range vars {
		pdus = append(pdus, toPDU(v))
	}
	return pdus, nil
}

func (c *client) Close() error {
	if c.conn.Conn != nil {
		return c.conn.Conn.Close()
	}
	return nil
}

func toPDU(v g.SnmpPDU) PDU {
	if v.Type == g.OctetString {
		if b, ok := v.Value.([]byte); ok {
			return PDU{OID: v.Name, Value: string(b)}
		}
	}
	return PDU{OID: v.Name, Value: v.Value}
}
