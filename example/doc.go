/*
Package main contains a command-line serial monitor built on gxmonitor.

The example shows how to:
  - configure the session and the serial port from flags or a YAML file
  - subscribe to connected, disconnected, data, error and trace events
  - send a message
  - disconnect cleanly on timeout or interrupt
*/
package main
