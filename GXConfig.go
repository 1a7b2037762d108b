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
	"strings"

	"github.com/Gurux/gxcommon-go"
	"gopkg.in/yaml.v3"
)

// Mode selects how received bytes are presented.
type Mode int

const (
	// ModeText decodes received bytes as UTF-8 text.
	ModeText Mode = iota
	// ModeByte delivers raw bytes, or hex strings when Config.Hex is set.
	ModeByte
)

func (m Mode) String() string {
	switch m {
	case ModeText:
		return "text"
	case ModeByte:
		return "byte"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode returns the mode with the given name.
func ParseMode(value string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "text":
		return ModeText, nil
	case "byte":
		return ModeByte, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMode, value)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *Mode) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (m Mode) MarshalYAML() (any, error) {
	return m.String(), nil
}

// Config selects the decode pipeline of a session. Hex and KeepEmptyTail are
// only used in byte mode and ParseLines only in text mode.
type Config struct {
	Mode       Mode `yaml:"mode"`
	Hex        bool `yaml:"hex"`
	ParseLines bool `yaml:"parseLines"`
	// KeepEmptyTail renders an empty hex remainder at the end of the stream
	// as "0 ". See HexTransformer.
	KeepEmptyTail bool `yaml:"keepEmptyTail"`
}

// Validate checks that the mode is known.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeText, ModeByte:
		return nil
	}
	return fmt.Errorf("%w: %d", ErrInvalidMode, int(c.Mode))
}

// SerialSettings describes the serial port used by SerialSelector. An empty
// Port selects the first available port.
type SerialSettings struct {
	Port     string
	DataBits int
	Parity   gxcommon.Parity
	StopBits gxcommon.StopBits
}

// DefaultSerialSettings returns 8 data bits, no parity and one stop bit.
func DefaultSerialSettings(port string) SerialSettings {
	return SerialSettings{Port: port, DataBits: 8, Parity: gxcommon.ParityNone, StopBits: gxcommon.StopBitsOne}
}

type serialSettingsYAML struct {
	Port     string `yaml:"port"`
	DataBits int    `yaml:"dataBits"`
	Parity   string `yaml:"parity"`
	StopBits string `yaml:"stopBits"`
}

// UnmarshalYAML implements yaml.Unmarshaler. Parity and stop bits are given by name.
func (s *SerialSettings) UnmarshalYAML(value *yaml.Node) error {
	raw := serialSettingsYAML{Port: s.Port, DataBits: s.DataBits}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	s.Port = raw.Port
	s.DataBits = raw.DataBits
	if raw.Parity != "" {
		p, err := gxcommon.ParityParse(raw.Parity)
		if err != nil {
			return fmt.Errorf("parity: %w", err)
		}
		s.Parity = p
	}
	if raw.StopBits != "" {
		sb, err := gxcommon.StopBitsParse(raw.StopBits)
		if err != nil {
			return fmt.Errorf("stopBits: %w", err)
		}
		s.StopBits = sb
	}
	return nil
}

// LogConfig defines logger settings for NewLogger.
type LogConfig struct {
	// Level: debug, info, warn, error
	Level string `yaml:"level"`
	// Format: console or json
	Format string `yaml:"format"`
	// Outputs: stdout, stderr or file paths
	Outputs  []string       `yaml:"outputs"`
	Rotation RotationConfig `yaml:"rotation"`
}

// RotationConfig controls log file rotation for file outputs.
type RotationConfig struct {
	Enable     bool `yaml:"enable"`
	MaxSizeMB  int  `yaml:"maxSizeMB"`
	MaxBackups int  `yaml:"maxBackups"`
	MaxAgeDays int  `yaml:"maxAgeDays"`
	Compress   bool `yaml:"compress"`
}

// FileConfig is the content of a monitor configuration file.
type FileConfig struct {
	Monitor  Config            `yaml:"monitor"`
	Serial   SerialSettings    `yaml:"serial"`
	BaudRate gxcommon.BaudRate `yaml:"baudRate"`
	Log      LogConfig         `yaml:"log"`
}

// DefaultFileConfig returns the values used for settings missing from a file.
func DefaultFileConfig() *FileConfig {
	return &FileConfig{
		Monitor:  Config{Mode: ModeText, ParseLines: true},
		Serial:   DefaultSerialSettings(""),
		BaudRate: gxcommon.BaudRate(9600),
		Log: LogConfig{
			Level:   "info",
			Format:  "console",
			Outputs: []string{"stderr"},
		},
	}
}

// LoadConfig reads a YAML configuration file over the defaults.
func LoadConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultFileConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Monitor.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
