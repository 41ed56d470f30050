// Package snmp defines the query capability duplexcheck uses to talk to
// switches: scalar gets and subtree walks against a single device. The
// production implementation runs over gosnmp; tests substitute a fixture.
package snmp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNoSuchObject is returned by Get when the device answers but has no
// value at the requested OID.
var ErrNoSuchObject = errors.New("no such object")

// PDU is a single (OID, value) pair returned by a query. OctetString
// payloads are converted to Go strings at the transport boundary.
type PDU struct {
	OID   string
	Value interface{}
}

// Int returns the value as an int64. The second return is false when the
// value is not an integer type.
func (p PDU) Int() (int64, bool) {
	switch n := p.Value.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	}
	return 0, false
}

// Str returns the value as a string, converting byte slices and falling
// back to fmt formatting for anything else.
func (p PDU) Str() string {
	switch s := p.Value.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	case nil:
		return ""
	}
	return fmt.Sprint(p.Value)
}

// Gateway answers queries against one device. Walk returns leaf pairs in
// SNMP lexicographic order (ascending interface index for IF-MIB tables).
type Gateway interface {
	Get(oid string) (PDU, error)
	Walk(root string) ([]PDU, error)
	Close() error
}

// Dialer opens a Gateway per device. The session is scoped to a single
// device's inspection and closed when done.
type Dialer interface {
	Dial(target string) (Gateway, error)
}

// Index extracts the table index from a leaf OID under root.
// Index("1.3.6.1.2.1.2.2.1.2", ".1.3.6.1.2.1.2.2.1.2.10101") returns 10101.
func Index(root, oid string) (int, bool) {
	suffix, ok := strings.CutPrefix(canonical(oid), canonical(root)+".")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(suffix)
	if err != nil {
		return 0, false
	}
	return n, true
}

// canonical strips the leading dot gosnmp puts on returned OID names.
func canonical(oid string) string {
	return strings.TrimPrefix(oid, ".")
}
