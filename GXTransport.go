package gxmonitor

// --------------------------------------------------------------------------
//
//	Gurux Ltd
//
// Filename:        $HeadURL$
//
// Version:         $Revision$,
//
//	$Date$
//	$Author$
//
// # Copyright (c) Gurux Ltd
//
// ---------------------------------------------------------------------------
//
//	DESCRIPTION
//
// This file is a part of Gurux Device Framework.
//
// Gurux Device Framework is Open Source software; you can redistribute it
// and/or modify it under the terms of the GNU General Public License
// as published by the Free Software Foundation; version 2 of the License.
// Gurux Device Framework is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU General Public License for more details.
//
// More information of Gurux products: https://www.gurux.org
//
// This code is licensed under the GNU General Public License v2.
// Full text may be retrieved at http://www.gnu.org/licenses/gpl-2.0.txt
// ---------------------------------------------------------------------------

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/Gurux/gxcommon-go"
)

// Transport is a point-to-point byte channel to a device.
//
// Open returns the receiving and sending halves of the channel. Reading
// returns io.EOF when the device ends the stream; closing the reader cancels a
// pending read. Closing the writer flushes pending output but leaves the
// channel open. Close releases the channel.
type Transport interface {
	Open(ctx context.Context, baudRate gxcommon.BaudRate) (io.ReadCloser, io.WriteCloser, error)
	Close() error
}

// DeviceSelector hands out the transport a session connects to. It returns an
// error when no device is available or the selection is declined.
type DeviceSelector interface {
	RequestDevice(ctx context.Context) (Transport, error)
}

// SelectorFunc adapts a function to DeviceSelector.
type SelectorFunc func(ctx context.Context) (Transport, error)

// RequestDevice implements DeviceSelector.
func (f SelectorFunc) RequestDevice(ctx context.Context) (Transport, error) {
	return f(ctx)
}

// GetPortNames returns the list of available serial ports.
func GetPortNames() ([]string, error) {
	return getPortNames()
}

// SerialSelector selects a serial port of the host.
type SerialSelector struct {
	Settings SerialSettings
}

// RequestDevice implements DeviceSelector. Without a configured port name the
// first available port is used.
func (s SerialSelector) RequestDevice(ctx context.Context) (Transport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	settings := s.Settings
	if settings.Port == "" {
		names, err := getPortNames()
		if err != nil {
			return nil, err
		}
		if len(names) == 0 {
			return nil, ErrNoDeviceSelected
		}
		settings.Port = names[0]
	}
	return NewSerialTransport(settings), nil
}

// SerialTransport is a Transport over a serial port.
type SerialTransport struct {
	settings SerialSettings
	mu       sync.Mutex
	p        *port
}

// NewSerialTransport returns a closed serial transport for the given settings.
func NewSerialTransport(settings SerialSettings) *SerialTransport {
	if settings.DataBits == 0 {
		settings.DataBits = 8
	}
	if settings.StopBits == 0 {
		settings.StopBits = gxcommon.StopBitsOne
	}
	return &SerialTransport{settings: settings}
}

// String returns the port name.
func (t *SerialTransport) String() string {
	return t.settings.Port
}

// Settings returns the used port settings.
func (t *SerialTransport) Settings() SerialSettings {
	return t.settings
}

// Open implements Transport.
func (t *SerialTransport) Open(ctx context.Context, baudRate gxcommon.BaudRate) (io.ReadCloser, io.WriteCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.p != nil {
		return nil, nil, fmt.Errorf("serial port %s is already open", t.settings.Port)
	}
	p, err := openPort(t.settings, baudRate)
	if err != nil {
		return nil, nil, err
	}
	t.p = p
	return &portReader{p: p}, &portWriter{p: p}, nil
}

// Close implements Transport.
func (t *SerialTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.p == nil {
		return nil
	}
	err := t.p.close()
	t.p = nil
	return err
}

type portReader struct {
	p *port
}

func (r *portReader) Read(b []byte) (int, error) {
	return r.p.read(b)
}

// Close cancels a pending read. The port itself stays open.
func (r *portReader) Close() error {
	return r.p.cancelRead()
}

type portWriter struct {
	p      *port
	closed atomic.Bool
}

func (w *portWriter) Write(b []byte) (int, error) {
	if w.closed.Load() {
		return 0, os.ErrClosed
	}
	return w.p.write(b)
}

// Close waits until queued output has been transmitted.
func (w *portWriter) Close() error {
	if w.closed.Swap(true) {
		return nil
	}
	if err := w.p.drain(); err != nil && !errors.Is(err, os.ErrClosed) {
		return err
	}
	return nil
}
