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

import "errors"

var (
	// ErrAlreadyConnected is returned by Connect when the session is not idle.
	ErrAlreadyConnected = errors.New("close current connection first")
	// ErrNoDeviceSelected is returned when the device selector declines or finds no port.
	ErrNoDeviceSelected = errors.New("no port selected")
	// ErrOpenFailed wraps the reason the transport could not be opened.
	ErrOpenFailed = errors.New("open failed")
	// ErrNoConnection is reported when data is sent while the session is not open.
	ErrNoConnection = errors.New("no serial port")
	// ErrReadFailed wraps a failure of the read loop.
	ErrReadFailed = errors.New("read failed")
	// ErrWriteFailed wraps a failure of the encode sink.
	ErrWriteFailed = errors.New("write failed")
	// ErrCloseFailed wraps a failure to close the transport.
	ErrCloseFailed = errors.New("close failed")
	// ErrInvalidMode is returned for a mode other than text or byte.
	ErrInvalidMode = errors.New("invalid mode")
)
