//go:build windows

package gxmonitor

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync/atomic"
	"unsafe"

	"github.com/Gurux/gxcommon-go"
	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

type port struct {
	h        windows.Handle
	ovRead   windows.Overlapped
	ovWrite  windows.Overlapped
	closing  windows.Handle
	canceled atomic.Bool
}

// getPortNames retrieves the list of available serial port names by querying the registry.
func getPortNames() ([]string, error) {
	const path = `HARDWARE\DEVICEMAP\SERIALCOMM`

	key, err := registry.OpenKey(registry.LOCAL_MACHINE, path, registry.QUERY_VALUE)
	if err != nil {
		if err == registry.ErrNotExist {
			return []string{}, nil
		}
		return nil, err
	}
	defer func() {
		_ = key.Close()
	}()

	valueNames, err := key.ReadValueNames(-1)
	if err != nil {
		return nil, err
	}
	var ports []string
	for _, name := range valueNames {
		port, _, err := key.GetStringValue(name)
		if err == nil {
			ports = append(ports, port)
		}
	}
	return ports, nil
}

const (
	dcbFBinary         = 1 << 0
	dcbFParity         = 1 << 1
	dcbFErrorChar      = 1 << 10
	dcbFNull           = 1 << 11
	dcbFAbortOnError   = 1 << 14
	dcbFDtrControlMask = 0x3 << 4  // bits 4-5
	dcbFRtsControlMask = 0x3 << 12 // bits 12-13
)

// XON/XOFF control characters
const (
	xon  byte = 0x11
	xoff byte = 0x13
)

func openPort(s SerialSettings, baudRate gxcommon.BaudRate) (*port, error) {
	if strings.TrimSpace(s.Port) == "" {
		return nil, errors.New("invalid serial port name")
	}
	p := &port{}
	closing, err := windows.CreateEvent(nil, 1, 0, nil) // manual-reset
	if err != nil {
		return nil, fmt.Errorf("CreateEvent(closing) failed: %w", err)
	}
	p.closing = closing

	h, err := windows.CreateFile(
		windows.StringToUTF16Ptr(`\\.\`+s.Port),
		windows.GENERIC_READ|windows.GENERIC_WRITE,
		0,
		nil,
		windows.OPEN_EXISTING,
		windows.FILE_FLAG_OVERLAPPED,
		0,
	)
	if err != nil {
		_ = p.close()
		return nil, fmt.Errorf("failed to open port %q: %w", s.Port, err)
	}
	p.h = h

	if p.ovRead.HEvent, err = windows.CreateEvent(nil, 1, 0, nil); err != nil {
		_ = p.close()
		return nil, fmt.Errorf("CreateEvent(read) failed: %w", err)
	}
	if p.ovWrite.HEvent, err = windows.CreateEvent(nil, 1, 0, nil); err != nil {
		_ = p.close()
		return nil, fmt.Errorf("CreateEvent(write) failed: %w", err)
	}
	if err := p.configure(s, baudRate); err != nil {
		_ = p.close()
		return nil, err
	}
	if err := windows.PurgeComm(p.h,
		windows.PURGE_TXCLEAR|windows.PURGE_TXABORT|windows.PURGE_RXCLEAR|windows.PURGE_RXABORT,
	); err != nil {
		_ = p.close()
		return nil, fmt.Errorf("PurgeComm failed: %w", err)
	}
	return p, nil
}

func (p *port) configure(s SerialSettings, baudRate gxcommon.BaudRate) error {
	var d windows.DCB
	d.DCBlength = uint32(unsafe.Sizeof(d))
	if err := windows.GetCommState(p.h, &d); err != nil {
		return fmt.Errorf("GetCommState failed: %w", err)
	}
	d.BaudRate = uint32(baudRate)
	d.ByteSize = byte(s.DataBits)
	d.Parity = byte(s.Parity)
	switch s.StopBits {
	case gxcommon.StopBitsOne:
		d.StopBits = 0 // ONESTOPBIT
	case gxcommon.StopBitsTwo:
		d.StopBits = 2 // TWOSTOPBITS
	default:
		return gxcommon.ErrInvalidArgument
	}
	d.Flags |= dcbFBinary
	if d.Parity != 0 {
		d.Flags |= dcbFParity
	} else {
		d.Flags &^= dcbFParity
	}
	d.Flags &^= dcbFNull | dcbFErrorChar | dcbFAbortOnError | dcbFDtrControlMask | dcbFRtsControlMask
	d.XonChar = xon
	d.XoffChar = xoff
	if err := windows.SetCommState(p.h, &d); err != nil {
		return fmt.Errorf("SetCommState failed: %w", err)
	}
	// Return as soon as any byte is available.
	timeouts := windows.CommTimeouts{ReadIntervalTimeout: 0xFFFFFFFF, ReadTotalTimeoutMultiplier: 0xFFFFFFFF, ReadTotalTimeoutConstant: 0xFFFFFFFE}
	if err := windows.SetCommTimeouts(p.h, &timeouts); err != nil {
		return fmt.Errorf("SetCommTimeouts failed: %w", err)
	}
	return nil
}

func (p *port) read(b []byte) (int, error) {
	for {
		if p.canceled.Load() || p.h == 0 {
			return 0, os.ErrClosed
		}
		var n uint32
		_ = windows.ResetEvent(p.ovRead.HEvent)
		err := windows.ReadFile(p.h, b, &n, &p.ovRead)
		if err != nil && !errors.Is(err, windows.ERROR_IO_PENDING) {
			if p.canceled.Load() {
				return 0, os.ErrClosed
			}
			return 0, fmt.Errorf("read failed: %w", err)
		}
		if errors.Is(err, windows.ERROR_IO_PENDING) {
			handles := []windows.Handle{p.closing, p.ovRead.HEvent}
			idx, werr := windows.WaitForMultipleObjects(handles, false, windows.INFINITE)
			if werr != nil {
				return 0, fmt.Errorf("read wait failed: %w", werr)
			}
			if idx == windows.WAIT_OBJECT_0 {
				_ = windows.CancelIoEx(p.h, &p.ovRead)
				return 0, os.ErrClosed
			}
			if gerr := windows.GetOverlappedResult(p.h, &p.ovRead, &n, true); gerr != nil {
				if errors.Is(gerr, windows.ERROR_OPERATION_ABORTED) || p.canceled.Load() {
					return 0, os.ErrClosed
				}
				return 0, fmt.Errorf("read failed: %w", gerr)
			}
		}
		if n != 0 {
			return int(n), nil
		}
	}
}

func (p *port) write(data []byte) (int, error) {
	if p.h == 0 {
		return 0, os.ErrClosed
	}
	if len(data) == 0 {
		return 0, nil
	}
	var n uint32
	_ = windows.ResetEvent(p.ovWrite.HEvent)
	err := windows.WriteFile(p.h, data, &n, &p.ovWrite)
	if err == nil {
		return int(n), nil
	}
	if !errors.Is(err, windows.ERROR_IO_PENDING) {
		return 0, fmt.Errorf("write failed: %w", err)
	}
	if gerr := windows.GetOverlappedResult(p.h, &p.ovWrite, &n, true); gerr != nil {
		return int(n), fmt.Errorf("write failed: %w", gerr)
	}
	return int(n), nil
}

// drain waits until all output has been transmitted.
func (p *port) drain() error {
	if p.h == 0 {
		return os.ErrClosed
	}
	return windows.FlushFileBuffers(p.h)
}

// cancelRead wakes a pending read through the closing event.
func (p *port) cancelRead() error {
	if p.canceled.Swap(true) {
		return nil
	}
	if p.closing != 0 {
		return windows.SetEvent(p.closing)
	}
	return nil
}

func (p *port) close() error {
	if p.closing != 0 {
		_ = windows.SetEvent(p.closing)
	}
	if p.h != 0 && p.h != windows.InvalidHandle {
		_ = windows.CancelIoEx(p.h, nil)
	}
	if p.ovRead.HEvent != 0 {
		_ = windows.CloseHandle(p.ovRead.HEvent)
		p.ovRead.HEvent = 0
	}
	if p.ovWrite.HEvent != 0 {
		_ = windows.CloseHandle(p.ovWrite.HEvent)
		p.ovWrite.HEvent = 0
	}
	var err error
	if p.h != 0 {
		err = windows.CloseHandle(p.h)
		p.h = 0
	}
	if p.closing != 0 {
		_ = windows.CloseHandle(p.closing)
		p.closing = 0
	}
	return err
}
