package main

import (
	"flag"
	"fmt"
	"strconv"

	"go.uber.org/multierr"
)

const _defaultCacheSize = 16

// _defaultFiles is the batch processed when no files are given.
var _defaultFiles = func() []string {
	files := make([]string, 20)
	for i := range files {
		files[i] = fmt.Sprintf("file%d.txt", i+1)
	}
	return files
}()

type config struct {
	OutDir      string
	Mode        mode
	KeepDecoded bool
	ShowEncoded bool
	ShowDecoded bool
	CacheSize   int
	LogFile     string
	Verbose     bool

	Files []string
}

func newConfig(flag *flag.FlagSet) *config {
	var c config
	c.RegisterFlags(flag)
	return &c
}

func (c *config) RegisterFlags(flag *flag.FlagSet) {
	// No help here because we put it all in _usage.
	flag.StringVar(&c.OutDir, "out", "", "")
	flag.Var(&c.Mode, "mode", "")
	flag.BoolVar(&c.KeepDecoded, "keep-decoded", false, "")
	flag.BoolVar(&c.ShowEncoded, "show-encoded", false, "")
	flag.BoolVar(&c.ShowDecoded, "show-decoded", false, "")
	flag.IntVar(&c.CacheSize, "cache", 0, "")
	flag.StringVar(&c.LogFile, "log", "", "")
	flag.BoolVar(&c.Verbose, "verbose", false, "")
}

// FillDefaults fills unset values with their defaults.
func (c *config) FillDefaults() {
	if len(c.OutDir) == 0 {
		c.OutDir = "."
	}
	if len(c.Mode) == 0 {
		c.Mode = _modeText
	}
	if c.CacheSize == 0 {
		c.CacheSize = _defaultCacheSize
	}
	if len(c.Files) == 0 {
		c.Files = _defaultFiles
	}
}

// Validate reports problems with the configuration.
func (c *config) Validate() (err error) {
	if len(c.Mode) > 0 {
		err = multierr.Append(err, c.Mode.Validate())
	}
	if c.CacheSize < 0 {
		err = multierr.Append(err, fmt.Errorf("cache size must not be negative: %d", c.CacheSize))
	}
	return err
}

// Args rebuilds a list of flags from which this configuration may be
// parsed. Files are not included.
func (c *config) Args() []string {
	var args []string
	if len(c.OutDir) > 0 {
		args = append(args, "-out", c.OutDir)
	}
	if len(c.Mode) > 0 {
		args = append(args, "-mode", c.Mode.String())
	}
	if c.KeepDecoded {
		args = append(args, "-keep-decoded")
	}
	if c.ShowEncoded {
		args = append(args, "-show-encoded")
	}
	if c.ShowDecoded {
		args = append(args, "-show-decoded")
	}
	if c.CacheSize != 0 {
		args = append(args, "-cache", strconv.Itoa(c.CacheSize))
	}
	if len(c.LogFile) > 0 {
		args = append(args, "-log", c.LogFile)
	}
	if c.Verbose {
		args = append(args, "-verbose")
	}
	return args
}
