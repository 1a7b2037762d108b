//go:build linux || darwin

package gxmonitor

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/Gurux/gxcommon-go"
	"golang.org/x/sys/unix"
)

// cmspar selects mark/space parity where the kernel supports it.
const cmspar = 0x40000000

type port struct {
	fd       int
	name     string
	cancelR  int
	cancelW  int
	canceled atomic.Bool
}

func globPorts(patterns []string, accept func(string) bool) ([]string, error) {
	var devices []string
	seen := make(map[string]struct{})
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, err
		}
		for _, device := range matches {
			if _, ok := seen[device]; ok || !accept(device) {
				continue
			}
			seen[device] = struct{}{}
			devices = append(devices, device)
		}
	}
	return devices, nil
}

func openPort(s SerialSettings, baudRate gxcommon.BaudRate) (*port, error) {
	fd, err := unix.Open(s.Port, unix.O_RDWR|unix.O_NOCTTY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0666)
	if err != nil {
		return nil, &os.PathError{Op: "open", Path: s.Port, Err: err}
	}
	p := &port{fd: fd, name: s.Port, cancelR: -1, cancelW: -1}
	if err := p.configure(s, baudRate); err != nil {
		_ = p.close()
		return nil, err
	}
	var pipe [2]int
	if err := unix.Pipe(pipe[:]); err != nil {
		_ = p.close()
		return nil, err
	}
	p.cancelR, p.cancelW = pipe[0], pipe[1]
	_ = unix.SetNonblock(p.cancelW, true)
	return p, nil
}

func (p *port) configure(s SerialSettings, baudRate gxcommon.BaudRate) error {
	t, err := unix.IoctlGetTermios(p.fd, ioctlGetTermios)
	if err != nil {
		return fmt.Errorf("tcgetattr failed: %w", err)
	}
	// Raw mode.
	t.Cflag |= unix.CLOCAL | unix.CREAD
	t.Lflag &^= unix.ICANON | unix.ECHO | unix.ECHOE | unix.ECHOK | unix.ECHONL | unix.ISIG | unix.IEXTEN
	t.Oflag &^= unix.OPOST | unix.ONLCR | unix.OCRNL
	t.Iflag &^= unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IGNBRK

	if err := setSpeed(t, int(baudRate)); err != nil {
		return err
	}

	t.Cflag &^= unix.CSIZE
	switch s.DataBits {
	case 5:
		t.Cflag |= unix.CS5
	case 6:
		t.Cflag |= unix.CS6
	case 7:
		t.Cflag |= unix.CS7
	case 8:
		t.Cflag |= unix.CS8
	default:
		return errors.New("invalid databits (must be 5..8)")
	}

	switch s.StopBits {
	case gxcommon.StopBitsOne:
		t.Cflag &^= unix.CSTOPB
	case gxcommon.StopBitsTwo:
		t.Cflag |= unix.CSTOPB
	default:
		return errors.New("invalid stopbits (must be one or two)")
	}

	t.Iflag &^= unix.INPCK | unix.ISTRIP
	t.Cflag &^= unix.PARENB | unix.PARODD
	if hasCMSPAR {
		t.Cflag &^= cmspar
	}
	switch s.Parity {
	case gxcommon.ParityNone:
	case gxcommon.ParityEven:
		t.Cflag |= unix.PARENB
	case gxcommon.ParityOdd:
		t.Cflag |= unix.PARENB | unix.PARODD
	case gxcommon.ParityMark:
		if !hasCMSPAR {
			return errors.New("mark parity requested but CMSPAR not supported")
		}
		t.Cflag |= unix.PARENB | cmspar | unix.PARODD
	case gxcommon.ParitySpace:
		if !hasCMSPAR {
			return errors.New("space parity requested but CMSPAR not supported")
		}
		t.Cflag |= unix.PARENB | cmspar
	default:
		return errors.New("invalid parity")
	}

	// No software or hardware flow control.
	t.Iflag &^= unix.IXON | unix.IXOFF
	t.Cflag &^= unix.CRTSCTS
	if err := unix.IoctlSetTermios(p.fd, ioctlSetTermios, t); err != nil {
		return fmt.Errorf("tcsetattr failed: %w", err)
	}
	return flushInput(p.fd)
}

func (p *port) read(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}
	for {
		if p.canceled.Load() {
			return 0, os.ErrClosed
		}
		pfds := []unix.PollFd{
			{Fd: int32(p.fd), Events: unix.POLLIN},
			{Fd: int32(p.cancelR), Events: unix.POLLIN},
		}
		if _, err := unix.Poll(pfds, -1); err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return 0, err
		}
		if pfds[1].Revents != 0 {
			return 0, os.ErrClosed
		}
		if pfds[0].Revents&unix.POLLNVAL != 0 {
			return 0, os.ErrClosed
		}
		if pfds[0].Revents&unix.POLLERR != 0 {
			return 0, fmt.Errorf("%s: device error", p.name)
		}
		if pfds[0].Revents&(unix.POLLIN|unix.POLLHUP) == 0 {
			continue
		}
		n, err := unix.Read(p.fd, b)
		if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return 0, err
		}
		if n == 0 {
			// Hang up.
			return 0, io.EOF
		}
		return n, nil
	}
}

func (p *port) write(b []byte) (int, error) {
	written := 0
	for written < len(b) {
		n, err := unix.Write(p.fd, b[written:])
		if n > 0 {
			written += n
		}
		switch {
		case errors.Is(err, unix.EAGAIN):
			pfds := []unix.PollFd{{Fd: int32(p.fd), Events: unix.POLLOUT}}
			if _, err := unix.Poll(pfds, -1); err != nil && !errors.Is(err, unix.EINTR) {
				return written, err
			}
		case errors.Is(err, unix.EINTR):
		case err != nil:
			return written, err
		}
	}
	return written, nil
}

// cancelRead wakes a pending read through the cancel pipe.
func (p *port) cancelRead() error {
	if p.canceled.Swap(true) {
		return nil
	}
	if _, err := unix.Write(p.cancelW, []byte{0}); err != nil && !errors.Is(err, unix.EAGAIN) {
		return err
	}
	return nil
}

func (p *port) close() error {
	if p.cancelR >= 0 {
		_ = unix.Close(p.cancelR)
		p.cancelR = -1
	}
	if p.cancelW >= 0 {
		_ = unix.Close(p.cancelW)
		p.cancelW = -1
	}
	if p.fd < 0 {
		return nil
	}
	err := unix.Close(p.fd)
	p.fd = -1
	return err
}
