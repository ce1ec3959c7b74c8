package main

import (
	"flag"
	"io"
	"testing"

	"github.com/maxatome/go-testdeep/td"
)

func TestConfigParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give []string
		want config
	}{
		{desc: "no args"}, // zero values
		{
			desc: "out",
			give: []string{"-out", "build"},
			want: config{OutDir: "build"},
		},
		{
			desc: "mode",
			give: []string{"--mode", "bytes"},
			want: config{Mode: _modeBytes},
		},
		{
			desc: "show",
			give: []string{"-show-encoded", "-show-decoded", "-keep-decoded"},
			want: config{ShowEncoded: true, ShowDecoded: true, KeepDecoded: true},
		},
		{
			desc: "cache",
			give: []string{"-cache", "3"},
			want: config{CacheSize: 3},
		},
		{
			desc: "verbose",
			give: []string{"--verbose"},
			want: config{Verbose: true},
		},
		{
			desc: "log",
			give: []string{"--log", "log.txt"},
			want: config{LogFile: "log.txt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			fset := flag.NewFlagSet(t.Name(), flag.ContinueOnError)
			cfg := newConfig(fset)

			td.CmpNoError(t, fset.Parse(tt.give))
			td.Cmp(t, cfg, &tt.want)

			t.Run("args", func(t *testing.T) {
				args := cfg.Args()

				fset := flag.NewFlagSet(t.Name(), flag.ContinueOnError)
				got := newConfig(fset)

				if !td.CmpNoError(t, fset.Parse(args)) {
					return
				}

				td.Cmp(t, got, cfg)
			})
		})
	}
}

func TestConfigParseInvalidMode(t *testing.T) {
	t.Parallel()

	fset := flag.NewFlagSet(t.Name(), flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	newConfig(fset)

	err := fset.Parse([]string{"-mode", "gzip"})
	td.Cmp(t, err, td.String(`invalid value "gzip" for flag -mode: unknown mode "gzip": must be "text" or "bytes"`))
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give config
		want string // error message, if any
	}{
		{desc: "zero"},
		{
			desc: "negative cache",
			give: config{CacheSize: -1},
			want: "cache size must not be negative: -1",
		},
		{
			desc: "bad mode",
			give: config{Mode: "zip"},
			want: `unknown mode "zip": must be "text" or "bytes"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			err := tt.give.Validate()
			if len(tt.want) == 0 {
				td.CmpNoError(t, err)
			} else {
				td.Cmp(t, err, td.String(tt.want))
			}
		})
	}
}

func TestConfigFillDefaults(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		var cfg config
		cfg.FillDefaults()
		td.Cmp(t, cfg, config{
			OutDir:    ".",
			Mode:      _modeText,
			CacheSize: _defaultCacheSize,
			Files:     _defaultFiles,
		})
	})

	t.Run("keeps values", func(t *testing.T) {
		t.Parallel()

		cfg := config{
			OutDir:    "out",
			Mode:      _modeBytes,
			CacheSize: 2,
			Files:     []string{"a.txt"},
		}
		cfg.FillDefaults()
		td.Cmp(t, cfg, config{
			OutDir:    "out",
			Mode:      _modeBytes,
			CacheSize: 2,
			Files:     []string{"a.txt"},
		})
	})
}

func TestDefaultFiles(t *testing.T) {
	t.Parallel()

	td.Cmp(t, _defaultFiles, td.Len(20))
	td.Cmp(t, _defaultFiles[0], "file1.txt")
	td.Cmp(t, _defaultFiles[19], "file20.txt")
}

func TestUsageHasAllConfigFlags(t *testing.T) {
	// We use _usage to write the user facing help. Make sure that every
	// flag registered by newConfig has a corresponding entry in _usage.

	fset := flag.NewFlagSet(t.Name(), flag.ContinueOnError)
	newConfig(fset)

	fset.VisitAll(func(f *flag.Flag) {
		td.Cmp(t, _usage, td.Contains("\t-"+f.Name),
			"flag %q should be documented", f.Name)
	})
}
