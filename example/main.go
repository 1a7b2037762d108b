package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/Gurux/gxcommon-go"
	"github.com/Gurux/gxmonitor-go"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var (
	config   = flag.String("c", "", "YAML configuration file.")
	port     = flag.String("S", "", "Port name. The first available port is used if empty.")
	baudRate = flag.Int("b", 0, "Baud rate")
	dataBits = flag.Int("d", 0, "DataBits (5, 6, 7, 8)")
	parity   = flag.String("p", "", "Parity (None, Odd, Even, Mark, Space)")
	stopBits = flag.String("s", "", "StopBits (One, Two)")
	mode     = flag.String("mode", "", "Mode (text, byte)")
	hex      = flag.Bool("hex", false, "Show received bytes as hex in byte mode.")
	lines    = flag.Bool("lines", false, "Split received text into lines in text mode.")
	message  = flag.String("m", "", "Send message")
	t        = flag.String("t", "", "Trace level.")
	w        = flag.Int("w", 1000, "WaitTime in milliseconds. 0 waits until interrupted.")
	lang     = flag.String("lang", "", "Used language.")
	logLevel = flag.String("log", "", "Log level (debug, info, warn, error).")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func loadSettings() (*gxmonitor.FileConfig, error) {
	cfg := gxmonitor.DefaultFileConfig()
	if *config != "" {
		var err error
		if cfg, err = gxmonitor.LoadConfig(*config); err != nil {
			return nil, err
		}
	}
	if *port != "" {
		cfg.Serial.Port = *port
	}
	if *baudRate != 0 {
		cfg.BaudRate = gxcommon.BaudRate(*baudRate)
	}
	if *dataBits != 0 {
		cfg.Serial.DataBits = *dataBits
	}
	if *parity != "" {
		p, err := gxcommon.ParityParse(*parity)
		if err != nil {
			return nil, fmt.Errorf("parsing parity: %w", err)
		}
		cfg.Serial.Parity = p
	}
	if *stopBits != "" {
		sb, err := gxcommon.StopBitsParse(*stopBits)
		if err != nil {
			return nil, fmt.Errorf("parsing stop bits: %w", err)
		}
		cfg.Serial.StopBits = sb
	}
	if *mode != "" {
		m, err := gxmonitor.ParseMode(*mode)
		if err != nil {
			return nil, err
		}
		cfg.Monitor.Mode = m
	}
	if *hex {
		cfg.Monitor.Hex = true
	}
	if *lines {
		cfg.Monitor.ParseLines = true
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	return cfg, nil
}

func run() error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	logger, err := gxmonitor.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	opts := []gxmonitor.Option{gxmonitor.WithLogger(logger)}
	if *lang != "" {
		tag, err := language.Parse(*lang)
		if err != nil {
			return fmt.Errorf("parsing language: %w", err)
		}
		opts = append(opts, gxmonitor.WithLanguage(tag))
	}
	if *t != "" {
		tl, err := gxcommon.TraceLevelParse(*t)
		if err != nil {
			return err
		}
		opts = append(opts, gxmonitor.WithTraceLevel(tl))
	}

	monitor, err := gxmonitor.NewGXMonitor(cfg.Monitor, gxmonitor.SerialSelector{Settings: cfg.Serial}, opts...)
	if err != nil {
		return err
	}
	monitor.Subscribe(gxmonitor.EventConnected, func(e gxmonitor.Event) {
		fmt.Println(e.Message)
	})
	monitor.Subscribe(gxmonitor.EventDisconnected, func(e gxmonitor.Event) {
		fmt.Println(e.Message)
	})
	monitor.Subscribe(gxmonitor.EventError, func(e gxmonitor.Event) {
		fmt.Fprintln(os.Stderr, "error:", e.Message)
	})
	monitor.Subscribe(gxmonitor.EventTrace, func(e gxmonitor.Event) {
		fmt.Printf("Trace: %s\n", e.Message)
	})
	monitor.Subscribe(gxmonitor.EventData, func(e gxmonitor.Event) {
		switch v := e.Data.(type) {
		case []byte:
			fmt.Printf("% x\n", v)
		case string:
			if cfg.Monitor.Mode == gxmonitor.ModeByte {
				fmt.Print(v)
			} else {
				fmt.Println(v)
			}
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Mode: %s\n", monitor.Mode())
	if err := monitor.Connect(ctx, cfg.BaudRate); err != nil {
		ports, perr := gxmonitor.GetPortNames()
		if perr == nil {
			fmt.Fprintln(os.Stderr, "Available serial ports: "+strings.Join(ports, ","))
		}
		return err
	}
	logger.Info("monitoring", zap.String("port", monitor.GetName()))
	if *message != "" {
		monitor.Send(*message + "\n")
	}

	if *w > 0 {
		select {
		case <-ctx.Done():
		case <-time.After(time.Duration(*w) * time.Millisecond):
		}
	} else {
		<-ctx.Done()
	}
	//Close the connection.
	closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return monitor.Disconnect(closeCtx)
}
