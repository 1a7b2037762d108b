//go:build linux

package gxmonitor

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

const (
	ioctlGetTermios = unix.TCGETS
	ioctlSetTermios = unix.TCSETS
	hasCMSPAR       = true
)

// toUnixBaudrate maps a baud rate to the corresponding constant in the unix package.
var toUnixBaudrate = map[int]uint32{
	50:     unix.B50,
	75:     unix.B75,
	110:    unix.B110,
	134:    unix.B134,
	150:    unix.B150,
	200:    unix.B200,
	300:    unix.B300,
	600:    unix.B600,
	1200:   unix.B1200,
	1800:   unix.B1800,
	2400:   unix.B2400,
	4800:   unix.B4800,
	9600:   unix.B9600,
	19200:  unix.B19200,
	38400:  unix.B38400,
	57600:  unix.B57600,
	115200: unix.B115200,
	230400: unix.B230400,
	460800: unix.B460800,
	921600: unix.B921600,
}

// getPortNames returns the serial devices that have a driver bound in sysfs.
func getPortNames() ([]string, error) {
	return globPorts([]string{
		"/dev/ttyS*",
		"/dev/ttyUSB*",
		"/dev/ttyXRUSB*",
		"/dev/ttyACM*",
		"/dev/ttyAMA*",
		"/dev/rfcomm*",
		"/dev/ttyAP*",
	}, func(device string) bool {
		_, err := os.Stat(filepath.Join("/sys/class/tty", filepath.Base(device), "device"))
		return err == nil
	})
}

func setSpeed(t *unix.Termios, baudRate int) error {
	speed, ok := toUnixBaudrate[baudRate]
	if !ok {
		return fmt.Errorf("unsupported baud rate: %d", baudRate)
	}
	t.Cflag &^= unix.CBAUD
	t.Cflag |= speed
	t.Ispeed = speed
	t.Ospeed = speed
	return nil
}

func flushInput(fd int) error {
	return unix.IoctlSetInt(fd, unix.TCFLSH, unix.TCIFLUSH)
}

// drain waits until all output has been transmitted (tcdrain).
func (p *port) drain() error {
	if p.fd < 0 {
		return os.ErrClosed
	}
	return unix.IoctlSetInt(p.fd, unix.TCSBRK, 1)
}
