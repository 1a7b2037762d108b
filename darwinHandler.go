//go:build darwin

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
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

const (
	ioctlGetTermios = unix.TIOCGETA
	ioctlSetTermios = unix.TIOCSETA
	hasCMSPAR       = false
)

// toUnixBaudrate maps a baud rate to the corresponding constant in the unix package.
var toUnixBaudrate = map[int]uint64{
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
}

func getPortNames() ([]string, error) {
	return globPorts([]string{"/dev/tty.*", "/dev/cu.*"}, func(string) bool { return true })
}

func setSpeed(t *unix.Termios, baudRate int) error {
	speed, ok := toUnixBaudrate[baudRate]
	if !ok {
		return fmt.Errorf("unsupported baud rate: %d", baudRate)
	}
	t.Ispeed = speed
	t.Ospeed = speed
	return nil
}

func ioctlPointer(fd int, req uint, value int) error {
	v := value
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(req), uintptr(unsafe.Pointer(&v)))
	if errno != 0 {
		return errno
	}
	return nil
}

func flushInput(fd int) error {
	return ioctlPointer(fd, unix.TIOCFLUSH, unix.TCIFLUSH)
}

// drain waits until all output has been transmitted (tcdrain).
func (p *port) drain() error {
	if p.fd < 0 {
		return os.ErrClosed
	}
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(p.fd), uintptr(unix.TIOCDRAIN), 0)
	if errno != 0 {
		return errno
	}
	return nil
}
