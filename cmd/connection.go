// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Cinderworks

package cmd

import (
	"bufio"
	"context"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
	"go.bug.st/serial"
	"golang.org/x/term"

	"github.com/cinderworks/espflash/pkg/esprom"
)

// SerialTransport drives a local serial port. The target's reset (EN) and
// bootstrap (IO0) straps are wired to RTS and DTR on the usual dev-board
// auto-reset circuit.
type SerialTransport struct {
	port serial.Port
}

func (s *SerialTransport) Write(p []byte) (int, error) {
	return s.port.Write(p)
}

func (s *SerialTransport) ReadUpTo(n int, timeout time.Duration) ([]byte, error) {
	if err := s.port.SetReadTimeout(timeout); err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	k, err := s.port.Read(buf)
	if err != nil {
		return nil, err
	}
	if k == 0 {
		// go.bug.st/serial reports an expired read timeout as a zero-length
		// read with no error.
		return nil, esprom.ErrTimeout
	}
	return buf[:k], nil
}

func (s *SerialTransport) SetControlLines(reset, boot bool) error {
	if err := s.port.SetRTS(reset); err != nil {
		return err
	}
	return s.port.SetDTR(boot)
}

func (s *SerialTransport) SetBaudRate(baud int) error {
	return s.port.SetMode(&serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
}

func (s *SerialTransport) Close() error {
	return s.port.Close()
}

// ErrConnectionClosed is returned when reading from a closed WebSocket connection
var ErrConnectionClosed = fmt.Errorf("websocket connection closed")

// WebSocketTransport tunnels the byte stream through a serial-over-WebSocket
// bridge as binary messages. The bridge carries no control lines and owns
// the physical baud rate, so SetControlLines reports unsupported (the
// handshake then expects the target to already be in its bootloader) and
// SetBaudRate is a no-op.
type WebSocketTransport struct {
	conn      *websocket.Conn
	buf       []byte
	bufOffset int
	closed    bool
}

func (w *WebSocketTransport) Write(p []byte) (int, error) {
	err := w.conn.WriteMessage(websocket.BinaryMessage, p)
	if err != nil {
		return 0, err
	}
	return len(p), nil
}

func (w *WebSocketTransport) ReadUpTo(n int, timeout time.Duration) ([]byte, error) {
	if w.closed {
		return nil, ErrConnectionClosed
	}

	// Serve buffered bytes from the previous message first
	if w.bufOffset < len(w.buf) {
		end := w.bufOffset + n
		if end > len(w.buf) {
			end = len(w.buf)
		}
		out := w.buf[w.bufOffset:end]
		w.bufOffset = end
		return out, nil
	}

	if err := w.conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
		return nil, err
	}
	for {
		messageType, data, err := w.conn.ReadMessage()
		if err != nil {
			if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
				return nil, esprom.ErrTimeout
			}
			w.closed = true
			return nil, err
		}
		if messageType != websocket.BinaryMessage {
			continue
		}
		if len(data) == 0 {
			continue
		}

		w.buf = data
		w.bufOffset = n
		if w.bufOffset > len(w.buf) {
			w.bufOffset = len(w.buf)
		}
		return w.buf[:w.bufOffset], nil
	}
}

func (w *WebSocketTransport) SetControlLines(reset, boot bool) error {
	return esprom.ErrControlLinesUnsupported
}

func (w *WebSocketTransport) SetBaudRate(baud int) error {
	return nil
}

func (w *WebSocketTransport) Close() error {
	w.closed = true
	return w.conn.Close()
}

// OpenSerialTransport opens a serial port transport
func OpenSerialTransport(portName string, baudRate int) (esprom.Transport, error) {
	mode := &serial.Mode{
		BaudRate: baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(portName, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %v", portName, err)
	}

	return &SerialTransport{port: port}, nil
}

// OpenWebSocketTransport opens a WebSocket bridge transport with HTTP Basic auth
func OpenWebSocketTransport(wsURL, username, password string, skipSSLVerify bool) (esprom.Transport, error) {
	u, err := url.Parse(wsURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %v", err)
	}

	switch u.Scheme {
	case "ws", "wss":
		// OK
	default:
		return nil, fmt.Errorf("unsupported URL scheme: %s (use ws:// or wss://)", u.Scheme)
	}

	dialer := websocket.Dialer{
		HandshakeTimeout: 10 * time.Second,
	}

	if u.Scheme == "wss" {
		dialer.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: skipSSLVerify,
		}
	}

	headers := http.Header{}
	if username != "" && password != "" {
		credentials := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
		headers.Set("Authorization", "Basic "+credentials)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	conn, resp, err := dialer.DialContext(ctx, wsURL, headers)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("WebSocket connection failed (HTTP %d): %v", resp.StatusCode, err)
		}
		return nil, fmt.Errorf("WebSocket connection failed: %v", err)
	}

	return &WebSocketTransport{conn: conn}, nil
}

// GetPassword retrieves password from environment or prompts user
func GetPassword() (string, error) {
	if pw := os.Getenv("ESPFLASH_PASSWORD"); pw != "" {
		return pw, nil
	}

	fmt.Fprint(os.Stderr, "Password: ")

	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		// Fallback to regular input if terminal functions fail
		reader := bufio.NewReader(os.Stdin)
		password, err := reader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("failed to read password: %v", err)
		}
		fmt.Fprintln(os.Stderr)
		return strings.TrimSpace(password), nil
	}

	fmt.Fprintln(os.Stderr)
	return string(passwordBytes), nil
}

// OpenTransport opens either a serial or WebSocket transport based on flags
func OpenTransport() (esprom.Transport, string, error) {
	if wsURL != "" {
		password := ""
		if wsUsername != "" {
			var err error
			password, err = GetPassword()
			if err != nil {
				return nil, "", err
			}
		}

		conn, err := OpenWebSocketTransport(wsURL, wsUsername, password, wsNoSSLVerify)
		if err != nil {
			return nil, "", err
		}
		return conn, fmt.Sprintf("WebSocket %s", wsURL), nil
	}

	if portName == "" {
		return nil, "", fmt.Errorf("no connection specified: use --port or --url")
	}

	conn, err := OpenSerialTransport(portName, baudRate)
	if err != nil {
		return nil, "", err
	}
	return conn, fmt.Sprintf("Serial %s @ %d baud", portName, baudRate), nil
}

// openSession opens a transport per the connection flags, wraps it in a
// connected session, and returns a cleanup func that closes both.
func openSession() (*esprom.Session, func(), error) {
	tr, connInfo, err := OpenTransport()
	if err != nil {
		return nil, nil, err
	}

	opts := []esprom.Option{
		esprom.WithBaudRate(baudRate),
		esprom.WithErrorLog(log.Printf),
	}
	if verbose {
		opts = append(opts, esprom.WithDebugLog(log.Printf))
	}

	var traceFile *os.File
	if tracePath != "" {
		traceFile, err = os.Create(tracePath)
		if err != nil {
			tr.Close()
			return nil, nil, fmt.Errorf("cannot create trace file: %v", err)
		}
		opts = append(opts, esprom.WithTrace(traceFile))
	}

	sess := esprom.NewSession(tr, opts...)
	cleanup := func() {
		sess.Close()
		if traceFile != nil {
			traceFile.Close()
		}
	}

	fmt.Printf("Connection: %s\n", connInfo)
	return sess, cleanup, nil
}
