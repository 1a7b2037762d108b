// Package gxmonitor provides a serial monitor session for Gurux components.
// A session connects to one serial device, decodes the received bytes into
// the representation chosen at construction and delivers data, errors and
// lifecycle changes to subscribed handlers.
//
// Features
//
//   - Text mode: received bytes are decoded as UTF-8, optionally split into lines.
//   - Byte mode: raw bytes, or lowercase hex strings ("0a ", "ff ").
//   - Events: connected, disconnected, data, error and trace notifications.
//   - Deterministic teardown: Disconnect cancels the reader, joins the read
//     loop, flushes pending output and closes the port before it returns.
//   - Localized event messages through golang.org/x/text.
//
// # Construction
//
// Use NewGXMonitor with a Config and a DeviceSelector. SerialSelector picks a
// serial port of the host; any other Transport can be plugged in through
// SelectorFunc.
//
// Example
//
//	selector := gxmonitor.SerialSelector{Settings: gxmonitor.DefaultSerialSettings("/dev/ttyUSB0")}
//	monitor, err := gxmonitor.NewGXMonitor(gxmonitor.Config{Mode: gxmonitor.ModeText, ParseLines: true}, selector)
//	if err != nil {
//	    // handle invalid config
//	}
//	monitor.Subscribe(gxmonitor.EventData, func(e gxmonitor.Event) {
//	    fmt.Println(e.Data)
//	})
//	monitor.Subscribe(gxmonitor.EventError, func(e gxmonitor.Event) {
//	    // log/handle e.Err
//	})
//	if err := monitor.Connect(ctx, 9600); err != nil {
//	    // handle connect error
//	}
//	defer monitor.Disconnect(ctx)
//	monitor.Send("hello\n")
//
// # Errors
//
// Connect returns its failures and also emits them as error events. Read,
// write and send failures are only emitted. Disconnect returns an error only
// when the transport refuses to close. All errors wrap one of the Err*
// sentinels and can be tested with errors.Is.
//
// # Notes
//
// The zero value of GXMonitor is not ready for use; always construct via
// NewGXMonitor. Data events are delivered on the read loop goroutine.
// Handlers of any event may call Connect, Disconnect and Send. Send never
// blocks on the device. Long-running work in event handlers should be
// offloaded to a separate goroutine.
package gxmonitor
