// Package config declares the kong CLI surface of keyconv.
package config

import "github.com/PaulW/rp2040-keyboard-converter-sub001/internal/cmd"

// LogConfig groups the logging flags shared by every command.
type LogConfig struct {
	Level     string `help:"Log level (trace, debug, info, warn, error)" default:"info" env:"KEYCONV_LOG_LEVEL"`
	File      string `help:"Log file (console only when unset)" env:"KEYCONV_LOG_FILE"`
	TraceFile string `help:"Raw event/report trace file" env:"KEYCONV_TRACE_FILE"`
}

// CLI is the root command tree.
type CLI struct {
	ConfigFile string    `name:"config" help:"Configuration file path" env:"KEYCONV_CONFIG"`
	Log        LogConfig `embed:"" prefix:"log."`

	Run       cmd.Run           `cmd:"" help:"Convert a decoder event stream into HID reports"`
	Check     cmd.Check         `cmd:"" help:"Validate a keymap definition file"`
	Keyboards cmd.Keyboards     `cmd:"" help:"List built-in keyboard profiles"`
	Config    cmd.ConfigCommand `cmd:"" help:"Configuration helpers"`
}
