package gxmonitor

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Gurux/gxcommon-go"
	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "monitor.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
monitor:
  mode: byte
  hex: true
  keepEmptyTail: true
serial:
  port: /dev/ttyUSB1
  dataBits: 7
  parity: Even
baudRate: 115200
log:
  level: debug
  format: json
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Monitor.Mode != ModeByte || !cfg.Monitor.Hex || !cfg.Monitor.KeepEmptyTail {
		t.Errorf("monitor = %+v", cfg.Monitor)
	}
	if cfg.Serial.Port != "/dev/ttyUSB1" || cfg.Serial.DataBits != 7 {
		t.Errorf("serial = %+v", cfg.Serial)
	}
	if cfg.Serial.Parity != gxcommon.ParityEven {
		t.Errorf("parity = %v, want Even", cfg.Serial.Parity)
	}
	if cfg.Serial.StopBits != gxcommon.StopBitsOne {
		t.Errorf("stop bits = %v, default not kept", cfg.Serial.StopBits)
	}
	if cfg.BaudRate != gxcommon.BaudRate(115200) {
		t.Errorf("baud rate = %v", cfg.BaudRate)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("log = %+v", cfg.Log)
	}
	if len(cfg.Log.Outputs) != 1 || cfg.Log.Outputs[0] != "stderr" {
		t.Errorf("outputs = %v, default not kept", cfg.Log.Outputs)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "{}\n"))
	if err != nil {
		t.Fatal(err)
	}
	def := DefaultFileConfig()
	if cfg.Monitor != def.Monitor || cfg.BaudRate != def.BaudRate || cfg.Serial != def.Serial {
		t.Errorf("cfg = %+v, want %+v", cfg, def)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: %v", err)
	}
	if _, err := LoadConfig(writeConfig(t, "monitor:\n  mode: morse\n")); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("unknown mode: %v, want ErrInvalidMode", err)
	}
	if _, err := LoadConfig(writeConfig(t, "serial:\n  parity: Sometimes\n")); err == nil {
		t.Error("unknown parity accepted")
	}
	if _, err := LoadConfig(writeConfig(t, "monitor: [1, 2\n")); err == nil {
		t.Error("malformed yaml accepted")
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModeText, false},
		{"text", ModeText, false},
		{" Byte ", ModeByte, false},
		{"hex", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v", tt.in, err)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestModeMarshalYAML(t *testing.T) {
	out, err := yaml.Marshal(Config{Mode: ModeByte, Hex: true})
	if err != nil {
		t.Fatal(err)
	}
	var back Config
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatal(err)
	}
	if back.Mode != ModeByte || !back.Hex {
		t.Errorf("decoded %+v from %s", back, out)
	}
}

func TestConfigValidate(t *testing.T) {
	if err := (Config{Mode: ModeByte}).Validate(); err != nil {
		t.Errorf("byte mode: %v", err)
	}
	if err := (Config{Mode: Mode(7)}).Validate(); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("Validate() = %v, want ErrInvalidMode", err)
	}
}
