// Package mail delivers the duplex report by email through an SMTP relay.
package mail

import (
	"bytes"
	"fmt"
	"net/smtp"
	"strings"
)

// DeliveryError reports a failed SMTP session or a rejected send. It is
// fatal at the delivery step: the report was computed but never left.
type DeliveryError struct {
	Host string
	Err  error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("smtp delivery via %s: %v", e.Host, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// Message is a plain-text email.
type Message struct {
	From    string
	To      string
	Subject string
	Body    string
}

// Bytes renders the message with headers and a UTF-8 plain-text body.
func (m Message) Bytes() []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "From: %s\r\n", m.From)
	fmt.Fprintf(&b, "To: %s\r\n", m.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", m.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(m.Body)
	return b.Bytes()
}

// Mailer sends a message. The production implementation speaks SMTP;
// tests substitute failures to exercise delivery-error handling.
type Mailer interface {
	Send(Message) error
}

// SMTP sends through a relay host without authentication, the way switch
// report relays on management networks are usually run.
type SMTP struct {
	Host string
}

// Send transmits m, wrapping any session or send failure in a
// DeliveryError.
func (s SMTP) Send(m Message) error {
	if err := smtp.SendMail(Addr(s.Host), nil, m.From, []string{m.To}, m.Bytes()); err != nil {
		return &DeliveryError{Host: s.Host, Err: err}
	}
	return nil
}

// Addr appends the default SMTP port when host has none.
func Addr(host string) string {
	if strings.Contains(host, ":") {
		return host
	}
	return host + ":25"
}
