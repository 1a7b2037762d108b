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

	"github.com/Gurux/gxcommon-go"
)

// State is the lifecycle state of a monitor session.
type State int32

const (
	// StateIdle means there is no connection.
	StateIdle State = iota
	// StateConnecting means Connect is acquiring and opening the transport.
	StateConnecting
	// StateOpen means the read loop runs and data can be sent.
	StateOpen
	// StateClosing means Disconnect is tearing the connection down.
	StateClosing
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateConnecting:
		return "Connecting"
	case StateOpen:
		return "Open"
	case StateClosing:
		return "Closing"
	}
	return fmt.Sprintf("State(%d)", int32(s))
}

// MediaState maps the session state to the Gurux media state.
func (s State) MediaState() gxcommon.MediaState {
	switch s {
	case StateConnecting:
		return gxcommon.MediaStateOpening
	case StateOpen:
		return gxcommon.MediaStateOpen
	case StateClosing:
		return gxcommon.MediaStateClosing
	}
	return gxcommon.MediaStateClosed
}
