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
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/Gurux/gxcommon-go"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// GXMonitor is a serial monitor session. It owns one connection at a time,
// decodes received data according to its Config and delivers data and
// lifecycle notifications to the subscribed handlers.
type GXMonitor struct {
	config   Config
	selector DeviceSelector
	events   *emitter
	log      *zap.Logger

	// ctl serializes Connect and Disconnect.
	ctl   sync.Mutex
	state atomic.Int32
	conn  *connection

	// sink of the open connection, nil otherwise.
	sink atomic.Pointer[encodeSink]

	mu         sync.RWMutex
	name       string
	traceLevel gxcommon.TraceLevel
	// Printer for localized messages.
	p *message.Printer

	bytesSent     atomic.Uint64
	bytesReceived atomic.Uint64
}

// connection holds the handles of one open transport.
type connection struct {
	name      string
	transport Transport
	reader    chunkReader
	// inputDone reports the end of the decode pipe in text mode.
	inputDone <-chan error
	sink      *encodeSink
	// ready is closed once the connected event has been delivered.
	ready    chan struct{}
	loopDone chan struct{}
	canceled atomic.Bool
	// dispatching is set while the read loop runs event handlers.
	dispatching atomic.Bool
}

// Option configures a GXMonitor.
type Option func(*GXMonitor)

// WithLogger sets the logger. The default logger discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(g *GXMonitor) {
		if log != nil {
			g.log = log
		}
	}
}

// WithTraceLevel sets the initial trace level.
func WithTraceLevel(level gxcommon.TraceLevel) Option {
	return func(g *GXMonitor) {
		g.traceLevel = level
	}
}

// WithLanguage selects the language of event messages.
func WithLanguage(tag language.Tag) Option {
	return func(g *GXMonitor) {
		g.p = message.NewPrinter(tag)
	}
}

// NewGXMonitor creates an idle monitor that connects to the devices handed out
// by selector.
func NewGXMonitor(config Config, selector DeviceSelector, opts ...Option) (*GXMonitor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if selector == nil {
		return nil, errors.New("device selector is nil")
	}
	g := &GXMonitor{
		config:   config,
		selector: selector,
		log:      zap.NewNop(),
		p:        message.NewPrinter(language.AmericanEnglish),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.events = newEmitter(g.log)
	return g, nil
}

// Mode returns the configured mode.
func (g *GXMonitor) Mode() Mode {
	return g.config.Mode
}

// Config returns the session configuration.
func (g *GXMonitor) Config() Config {
	return g.config
}

// State returns the current session state.
func (g *GXMonitor) State() State {
	return State(g.state.Load())
}

// IsOpen reports whether the session is open.
func (g *GXMonitor) IsOpen() bool {
	return g.State() == StateOpen
}

// GetName returns the name of the connected transport, or an empty string.
func (g *GXMonitor) GetName() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.name
}

func (g *GXMonitor) setName(name string) {
	g.mu.Lock()
	g.name = name
	g.mu.Unlock()
}

func (g *GXMonitor) String() string {
	return fmt.Sprintf("%s %s", g.config.Mode, g.State())
}

// Subscribe registers h for events of the given kind. Handlers of the same
// kind are called in registration order.
func (g *GXMonitor) Subscribe(kind EventKind, h Handler) Subscription {
	return g.events.subscribe(kind, h)
}

// Unsubscribe removes a handler. It reports whether the handler was registered.
func (g *GXMonitor) Unsubscribe(s Subscription) bool {
	return g.events.unsubscribe(s)
}

// GetTrace returns the trace level.
func (g *GXMonitor) GetTrace() gxcommon.TraceLevel {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.traceLevel
}

// SetTrace sets the trace level.
func (g *GXMonitor) SetTrace(traceLevel gxcommon.TraceLevel) {
	g.mu.Lock()
	g.traceLevel = traceLevel
	g.mu.Unlock()
}

// Localize messages for the specified language.
// No errors is returned if language is not supported.
func (g *GXMonitor) Localize(tag language.Tag) {
	g.mu.Lock()
	g.p = message.NewPrinter(tag)
	g.mu.Unlock()
}

// GetBytesSent returns the number of bytes queued for sending.
func (g *GXMonitor) GetBytesSent() uint64 {
	return g.bytesSent.Load()
}

// GetBytesReceived returns the number of bytes read from the transport.
func (g *GXMonitor) GetBytesReceived() uint64 {
	return g.bytesReceived.Load()
}

// ResetByteCounters resets the sent and received byte counters.
func (g *GXMonitor) ResetByteCounters() {
	g.bytesSent.Store(0)
	g.bytesReceived.Store(0)
}

// Connect selects a device, opens it with the given baud rate and starts the
// read loop. Failures are returned and also emitted as error events.
// Events are emitted after the session lock is released, so handlers may call
// Connect and Disconnect.
func (g *GXMonitor) Connect(ctx context.Context, baudRate gxcommon.BaudRate) error {
	var out outbox
	c, err := g.connect(ctx, baudRate, &out)
	if c == nil {
		out.flush(g.events)
		return err
	}
	c.dispatching.Store(true)
	out.flush(g.events)
	// A trace handler may already have torn the connection down.
	if !c.canceled.Load() {
		g.events.emit(Event{Kind: EventConnected, Message: g.sprintf("msg.serial_connected")})
	}
	c.dispatching.Store(false)
	close(c.ready)
	return nil
}

func (g *GXMonitor) connect(ctx context.Context, baudRate gxcommon.BaudRate, out *outbox) (*connection, error) {
	g.ctl.Lock()
	defer g.ctl.Unlock()
	if !g.state.CompareAndSwap(int32(StateIdle), int32(StateConnecting)) {
		g.fail(out, ErrAlreadyConnected, g.sprintf("msg.already_connected"))
		return nil, ErrAlreadyConnected
	}
	g.traceState(out, StateConnecting)

	t, err := g.selector.RequestDevice(ctx)
	if err == nil && t == nil {
		err = ErrNoDeviceSelected
	}
	if err != nil {
		g.setState(out, StateIdle)
		if !errors.Is(err, ErrNoDeviceSelected) {
			err = fmt.Errorf("%w: %w", ErrNoDeviceSelected, err)
		}
		g.fail(out, err, g.sprintf("msg.no_serial_port_selected"))
		return nil, err
	}
	name := transportName(t)
	g.trace(out, gxcommon.TraceTypesInfo, g.sprintf("msg.connecting_to", name, int(baudRate)))
	r, w, err := t.Open(ctx, baudRate)
	if err != nil {
		g.setState(out, StateIdle)
		err = fmt.Errorf("%w: %w", ErrOpenFailed, err)
		msg := g.sprintf("msg.connect_failed", name, err)
		g.trace(out, gxcommon.TraceTypesError, msg)
		g.fail(out, err, msg)
		return nil, err
	}

	c := &connection{
		name:      name,
		transport: t,
		ready:     make(chan struct{}),
		loopDone:  make(chan struct{}),
	}
	c.reader, c.inputDone = g.newPipeline(r)
	c.sink = newEncodeSink(w, func(err error) { g.writeFailed(c, err) })
	g.conn = c
	g.setName(name)
	g.sink.Store(c.sink)
	g.setState(out, StateOpen)

	g.log.Info("serial port connected", zap.String("port", name),
		zap.Stringer("mode", g.config.Mode), zap.Int("baudRate", int(baudRate)))
	g.trace(out, gxcommon.TraceTypesInfo, g.sprintf("msg.connected_to", name))
	go g.readLoop(c)
	return c, nil
}

// newPipeline wires the decode stages for the configured mode.
func (g *GXMonitor) newPipeline(r io.ReadCloser) (chunkReader, <-chan error) {
	if g.config.Mode == ModeByte {
		raw := newByteReader(r, &g.bytesReceived)
		if g.config.Hex {
			hex := NewHexTransformer()
			hex.KeepEmptyTail = g.config.KeepEmptyTail
			return newTransformReader(decimalReader{src: raw}, hex), nil
		}
		return raw, nil
	}
	pipe := startDecodePipe(r, &g.bytesReceived)
	if g.config.ParseLines {
		return newTransformReader(pipe, NewLineTransformer()), pipe.done
	}
	return pipe, pipe.done
}

// readLoop delivers data until the stream ends. It starts once the connected
// event has been delivered. A read failure is reported after the loop is
// marked done, so error handlers may call Disconnect, and is followed by a
// forced teardown.
func (g *GXMonitor) readLoop(c *connection) {
	<-c.ready
	err := g.pumpData(c)
	close(c.loopDone)
	if err == nil {
		return
	}
	msg := g.sprintf("msg.connection_failed", err)
	g.log.Error("read loop failed", zap.String("port", c.name), zap.Error(err))
	g.trace(g.events, gxcommon.TraceTypesError, msg)
	g.fail(g.events, err, msg)
	if err := g.disconnect(context.Background(), c); err != nil {
		g.log.Warn("teardown after read failure", zap.String("port", c.name), zap.Error(err))
	}
}

func (g *GXMonitor) pumpData(c *connection) error {
	for {
		v, err := c.reader.read()
		if err != nil {
			if c.canceled.Load() || errors.Is(err, errStreamCanceled) {
				g.log.Debug("read loop canceled", zap.String("port", c.name))
				return nil
			}
			if errors.Is(err, io.EOF) {
				g.log.Debug("read loop done", zap.String("port", c.name))
				return nil
			}
			return fmt.Errorf("%w: %w", ErrReadFailed, err)
		}
		c.dispatching.Store(true)
		if g.traceEnabled(gxcommon.TraceTypesReceived) {
			if str, err := gxcommon.ToString(v); err == nil {
				g.trace(g.events, gxcommon.TraceTypesReceived, "RX: "+str)
			}
		}
		g.events.emit(Event{Kind: EventData, Data: v})
		c.dispatching.Store(false)
	}
}

// Disconnect cancels the read loop, flushes pending output and closes the
// transport. It does nothing when the session is idle. Only a failure to close
// the transport is returned; it is also emitted as an error event.
func (g *GXMonitor) Disconnect(ctx context.Context) error {
	return g.disconnect(ctx, nil)
}

// disconnect tears down the current connection and then emits the collected
// events. When only is set the connection must still be the current one.
func (g *GXMonitor) disconnect(ctx context.Context, only *connection) error {
	var out outbox
	err := g.teardown(ctx, only, &out)
	out.flush(g.events)
	return err
}

func (g *GXMonitor) teardown(ctx context.Context, only *connection, out *outbox) error {
	g.ctl.Lock()
	defer g.ctl.Unlock()
	c := g.conn
	if g.State() == StateIdle || c == nil || (only != nil && c != only) {
		return nil
	}
	g.setState(out, StateClosing)
	g.trace(out, gxcommon.TraceTypesInfo, g.sprintf("msg.closing_connection", c.name))

	c.canceled.Store(true)
	if err := c.reader.cancel(); err != nil {
		g.log.Debug("cancel reader", zap.String("port", c.name), zap.Error(err))
	}
	// A handler running on the read loop can not wait for the loop itself.
	// The loop ends with its next read.
	if !c.dispatching.Load() {
		select {
		case <-c.loopDone:
		case <-ctx.Done():
			g.log.Warn("read loop not stopped", zap.String("port", c.name), zap.Error(ctx.Err()))
		}
	}
	if c.inputDone != nil {
		select {
		case err := <-c.inputDone:
			if err != nil {
				g.log.Debug("decode pipe stopped", zap.String("port", c.name), zap.Error(err))
			}
		case <-ctx.Done():
			g.log.Warn("decode pipe not stopped", zap.String("port", c.name), zap.Error(ctx.Err()))
		}
	}

	g.sink.Store(nil)
	c.sink.close()
	if err := c.sink.wait(ctx); err != nil {
		g.log.Warn("close writer", zap.String("port", c.name), zap.Error(err))
	}

	var ret error
	if err := c.transport.Close(); err != nil {
		ret = fmt.Errorf("%w: %w", ErrCloseFailed, err)
		g.log.Error("close serial port", zap.String("port", c.name), zap.Error(err))
		g.fail(out, ret, g.sprintf("msg.close_failed", c.name, err))
	}
	g.conn = nil
	g.setName("")
	g.setState(out, StateIdle)

	g.log.Info("serial port disconnected", zap.String("port", c.name))
	g.trace(out, gxcommon.TraceTypesInfo, g.sprintf("msg.connection_closed", c.name))
	out.emit(Event{Kind: EventDisconnected, Message: g.sprintf("msg.serial_disconnected")})
	return ret
}

// Send queues data for the device. Strings are sent as UTF-8. Send never
// blocks on the device and reports failures only through error events.
func (g *GXMonitor) Send(data any) {
	sink := g.sink.Load()
	if sink == nil || g.State() != StateOpen {
		g.fail(g.events, ErrNoConnection, g.sprintf("msg.no_connection"))
		return
	}
	tmp, err := gxcommon.ToBytes(data, binary.BigEndian)
	if err != nil {
		g.fail(g.events, fmt.Errorf("%w: %w", ErrWriteFailed, err), g.sprintf("msg.send_failed", err))
		return
	}
	if len(tmp) == 0 {
		return
	}
	if !sink.write(tmp) {
		g.fail(g.events, ErrNoConnection, g.sprintf("msg.no_connection"))
		return
	}
	g.bytesSent.Add(uint64(len(tmp)))
	if g.traceEnabled(gxcommon.TraceTypesSent) {
		if str, err := gxcommon.ToString(data); err == nil {
			g.trace(g.events, gxcommon.TraceTypesSent, "TX: "+str)
		}
	}
}

func (g *GXMonitor) writeFailed(c *connection, err error) {
	if c.canceled.Load() {
		g.log.Debug("write after cancel", zap.String("port", c.name), zap.Error(err))
		return
	}
	err = fmt.Errorf("%w: %w", ErrWriteFailed, err)
	g.log.Warn("write failed", zap.String("port", c.name), zap.Error(err))
	g.fail(g.events, err, g.sprintf("msg.send_failed", err))
}

// notifier receives events, either directly or collected for later.
type notifier interface {
	emit(Event)
}

// outbox collects events raised while the session lock is held.
type outbox struct {
	events []Event
}

func (o *outbox) emit(ev Event) {
	o.events = append(o.events, ev)
}

func (o *outbox) flush(n notifier) {
	for _, ev := range o.events {
		n.emit(ev)
	}
	o.events = nil
}

func (g *GXMonitor) fail(n notifier, err error, msg string) {
	n.emit(Event{Kind: EventError, Err: err, Message: msg})
}

func (g *GXMonitor) setState(n notifier, s State) {
	g.state.Store(int32(s))
	g.traceState(n, s)
}

func (g *GXMonitor) traceState(n notifier, s State) {
	if g.traceEnabled(gxcommon.TraceTypesInfo) {
		g.trace(n, gxcommon.TraceTypesInfo, g.sprintf("msg.state_changed", s.MediaState().String()))
	}
}

func (g *GXMonitor) traceEnabled(traceType gxcommon.TraceTypes) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return !(int(g.traceLevel) < int(traceType))
}

func (g *GXMonitor) trace(n notifier, traceType gxcommon.TraceTypes, msg string) {
	if !g.traceEnabled(traceType) {
		return
	}
	p := gxcommon.NewTraceEventArgs(traceType, msg, "")
	n.emit(Event{Kind: EventTrace, Data: *p, Message: msg})
}

func (g *GXMonitor) sprintf(key string, a ...any) string {
	g.mu.RLock()
	p := g.p
	g.mu.RUnlock()
	return p.Sprintf(key, a...)
}

func transportName(t Transport) string {
	if s, ok := t.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", t)
}

//nolint:errcheck
func init() {
	// --- English (default) ---
	message.SetString(language.AmericanEnglish, "msg.already_connected", "Close current connection first")
	message.SetString(language.AmericanEnglish, "msg.closing_connection", "Closing connection to %s")
	message.SetString(language.AmericanEnglish, "msg.connection_closed", "Connection closed to %s")
	message.SetString(language.AmericanEnglish, "msg.connection_failed", "Connection failed: %v")
	message.SetString(language.AmericanEnglish, "msg.close_failed", "Closing %s failed: %v")
	message.SetString(language.AmericanEnglish, "msg.connected_to", "Connected to %s")
	message.SetString(language.AmericanEnglish, "msg.connect_failed", "Connect to %s failed: %v")
	message.SetString(language.AmericanEnglish, "msg.connecting_to", "Connecting to %s at %d baud")
	message.SetString(language.AmericanEnglish, "msg.no_serial_port_selected", "No serial port selected. Please select a serial port.")
	message.SetString(language.AmericanEnglish, "msg.no_connection", "No serial port")
	message.SetString(language.AmericanEnglish, "msg.send_failed", "Send failed: %v")
	message.SetString(language.AmericanEnglish, "msg.serial_connected", "Serial port connected")
	message.SetString(language.AmericanEnglish, "msg.serial_disconnected", "Serial port disconnected")
	message.SetString(language.AmericanEnglish, "msg.state_changed", "Media state changed to %s")

	// --- German (de) ---
	message.SetString(language.German, "msg.already_connected", "Bitte zuerst die aktuelle Verbindung schließen")
	message.SetString(language.German, "msg.closing_connection", "Verbindung zu %s wird geschlossen")
	message.SetString(language.German, "msg.connection_closed", "Verbindung zu %s wurde geschlossen")
	message.SetString(language.German, "msg.connection_failed", "Verbindung fehlgeschlagen: %v")
	message.SetString(language.German, "msg.close_failed", "Schließen von %s fehlgeschlagen: %v")
	message.SetString(language.German, "msg.connected_to", "Verbunden mit %s")
	message.SetString(language.German, "msg.connect_failed", "Verbindung zu %s fehlgeschlagen: %v")
	message.SetString(language.German, "msg.connecting_to", "Verbinde mit %s mit %d Baud")
	message.SetString(language.German, "msg.no_serial_port_selected", "Kein serieller Port ausgewählt. Bitte wählen Sie einen seriellen Port aus.")
	message.SetString(language.German, "msg.no_connection", "Kein serieller Port")
	message.SetString(language.German, "msg.send_failed", "Senden fehlgeschlagen: %v")
	message.SetString(language.German, "msg.serial_connected", "Serieller Port verbunden")
	message.SetString(language.German, "msg.serial_disconnected", "Serieller Port getrennt")
	message.SetString(language.German, "msg.state_changed", "Medienstatus geändert zu %s")

	// --- Finnish (fi) ---
	message.SetString(language.Finnish, "msg.already_connected", "Sulje nykyinen yhteys ensin")
	message.SetString(language.Finnish, "msg.closing_connection", "Suljetaan yhteys kohteeseen %s")
	message.SetString(language.Finnish, "msg.connection_closed", "Yhteys suljettu kohteeseen %s")
	message.SetString(language.Finnish, "msg.connection_failed", "Yhteyden muodostus epäonnistui: %v")
	message.SetString(language.Finnish, "msg.close_failed", "Kohteen %s sulkeminen epäonnistui: %v")
	message.SetString(language.Finnish, "msg.connected_to", "Yhdistetty kohteeseen %s")
	message.SetString(language.Finnish, "msg.connect_failed", "Yhteyden muodostus kohteeseen %s epäonnistui: %v")
	message.SetString(language.Finnish, "msg.connecting_to", "Yhdistetään kohteeseen %s nopeudella %d")
	message.SetString(language.Finnish, "msg.no_serial_port_selected", "Sarjaporttia ei ole valittu. Valitse sarjaportti.")
	message.SetString(language.Finnish, "msg.no_connection", "Ei sarjaporttia")
	message.SetString(language.Finnish, "msg.send_failed", "Lähetys epäonnistui: %v")
	message.SetString(language.Finnish, "msg.serial_connected", "Sarjaportti yhdistetty")
	message.SetString(language.Finnish, "msg.serial_disconnected", "Sarjaportti suljettu")
	message.SetString(language.Finnish, "msg.state_changed", "Median tila muuttui: %s")

	// --- Swedish (sv) ---
	message.SetString(language.Swedish, "msg.already_connected", "Stäng den aktuella anslutningen först")
	message.SetString(language.Swedish, "msg.closing_connection", "Stänger anslutning till %s")
	message.SetString(language.Swedish, "msg.connection_closed", "Anslutning stängd till %s")
	message.SetString(language.Swedish, "msg.connection_failed", "Anslutningen misslyckades: %v")
	message.SetString(language.Swedish, "msg.close_failed", "Stängning av %s misslyckades: %v")
	message.SetString(language.Swedish, "msg.connected_to", "Ansluten till %s")
	message.SetString(language.Swedish, "msg.connect_failed", "Anslutning till %s misslyckades: %v")
	message.SetString(language.Swedish, "msg.connecting_to", "Ansluter till %s med %d baud")
	message.SetString(language.Swedish, "msg.no_serial_port_selected", "Ingen seriell port vald. Välj en seriell port.")
	message.SetString(language.Swedish, "msg.no_connection", "Ingen seriell port")
	message.SetString(language.Swedish, "msg.send_failed", "Sändning misslyckades: %v")
	message.SetString(language.Swedish, "msg.serial_connected", "Seriell port ansluten")
	message.SetString(language.Swedish, "msg.serial_disconnected", "Seriell port frånkopplad")
	message.SetString(language.Swedish, "msg.state_changed", "Medietillstånd ändrat till %s")

	// --- Spanish (es) ---
	message.SetString(language.Spanish, "msg.already_connected", "Cierre primero la conexión actual")
	message.SetString(language.Spanish, "msg.closing_connection", "Cerrando conexión con %s")
	message.SetString(language.Spanish, "msg.connection_closed", "Conexión cerrada con %s")
	message.SetString(language.Spanish, "msg.connection_failed", "Error de conexión: %v")
	message.SetString(language.Spanish, "msg.close_failed", "Error al cerrar %s: %v")
	message.SetString(language.Spanish, "msg.connected_to", "Conectado a %s")
	message.SetString(language.Spanish, "msg.connect_failed", "Error al conectar con %s: %v")
	message.SetString(language.Spanish, "msg.connecting_to", "Conectando a %s a %d baudios")
	message.SetString(language.Spanish, "msg.no_serial_port_selected", "No se ha seleccionado ningún puerto serie. Seleccione un puerto serie.")
	message.SetString(language.Spanish, "msg.no_connection", "No hay puerto serie")
	message.SetString(language.Spanish, "msg.send_failed", "Error de envío: %v")
	message.SetString(language.Spanish, "msg.serial_connected", "Puerto serie conectado")
	message.SetString(language.Spanish, "msg.serial_disconnected", "Puerto serie desconectado")
	message.SetString(language.Spanish, "msg.state_changed", "Estado del medio cambiado a %s")

	// --- Estonian (et) ---
	message.SetString(language.Estonian, "msg.already_connected", "Sulgege kõigepealt praegune ühendus")
	message.SetString(language.Estonian, "msg.closing_connection", "Suletakse ühendus sihtkohta %s")
	message.SetString(language.Estonian, "msg.connection_closed", "Ühendus suleti sihtkohta %s")
	message.SetString(language.Estonian, "msg.connection_failed", "Ühendus ebaõnnestus: %v")
	message.SetString(language.Estonian, "msg.close_failed", "%s sulgemine ebaõnnestus: %v")
	message.SetString(language.Estonian, "msg.connected_to", "Ühendatud sihtkohta %s")
	message.SetString(language.Estonian, "msg.connect_failed", "Ühendamine sihtkohta %s ebaõnnestus: %v")
	message.SetString(language.Estonian, "msg.connecting_to", "Ühendatakse sihtkohta %s kiirusel %d")
	message.SetString(language.Estonian, "msg.no_serial_port_selected", "Ühtegi jadaporti pole valitud. Palun valige jadaport.")
	message.SetString(language.Estonian, "msg.no_connection", "Jadaport puudub")
	message.SetString(language.Estonian, "msg.send_failed", "Saatmine ebaõnnestus: %v")
	message.SetString(language.Estonian, "msg.serial_connected", "Jadaport ühendatud")
	message.SetString(language.Estonian, "msg.serial_disconnected", "Jadaport lahti ühendatud")
	message.SetString(language.Estonian, "msg.state_changed", "Meedia olek muutus: %s")
}
