package main

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"
	"slices"
	"unicode/utf8"

	"github.com/abhinav/huffpack/internal/huffman"
	"github.com/abhinav/huffpack/internal/log"
	"github.com/abhinav/huffpack/internal/modelcache"
	"github.com/abhinav/huffpack/internal/paniclog"
	"github.com/benbjohnson/clock"
	"github.com/rivo/uniseg"
	"go.uber.org/multierr"
)

// app encodes, decodes and reports on a batch of files.
type app struct {
	Log    *log.Logger
	Stdout io.Writer
	FS     fileSystem
	Clock  clock.Clock

	runes *modelcache.Cache[rune]
	bytes *modelcache.Cache[byte]

	// outputs maps each file written to the output directory
	// to the input it was written for.
	outputs map[string]string
}

// Run processes every file in the configuration.
// Failures for individual files do not stop the batch;
// they are reported together at the end.
func (a *app) Run(cfg *config) (err error) {
	cfg.FillDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}

	if a.runes, err = modelcache.New[rune](cfg.CacheSize); err != nil {
		return err
	}
	if a.bytes, err = modelcache.New[byte](cfg.CacheSize); err != nil {
		return err
	}

	if err := a.FS.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	a.outputs = make(map[string]string)

	var processed, failed int
	for _, name := range cfg.Files {
		ok, ferr := a.processFile(cfg, name)
		if ferr != nil {
			failed++
			err = multierr.Append(err, fmt.Errorf("%v: %w", name, ferr))
			continue
		}
		if ok {
			processed++
		}
	}

	a.Log.Debug("done", "processed", processed, log.OmitEmpty(slog.Int, "failed", failed))
	a.Log.WithName("cache").Debug("model cache",
		slog.Group("runes", "hits", a.runes.Hits(), "misses", a.runes.Misses()),
		slog.Group("bytes", "hits", a.bytes.Hits(), "misses", a.bytes.Misses()),
	)
	return err
}

// processFile handles a single file.
// ok is false if the file was skipped.
func (a *app) processFile(cfg *config, name string) (ok bool, err error) {
	logger := a.Log.With("file", name)

	pw := &log.Writer{Log: logger, Level: log.Error}
	defer multierr.AppendInvoke(&err, multierr.Close(pw))
	defer paniclog.Recover(&err, pw)

	info, err := a.FS.Stat(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Info("file does not exist, skipping")
			return false, nil
		}
		return false, err
	}
	if info.IsDir() {
		logger.Info("file is a directory, skipping")
		return false, nil
	}

	data, err := a.readFile(name)
	if err != nil {
		return false, err
	}
	if len(data) == 0 {
		logger.Info("file is empty, skipping")
		return false, nil
	}

	start := a.Clock.Now()
	report := fileReport{
		Name:         name,
		Mode:         cfg.Mode,
		OriginalSize: info.Size(),
	}

	if report.Mode == _modeText && !utf8.Valid(data) {
		logger.Warn("file is not valid UTF-8, encoding bytes instead")
		report.Mode = _modeBytes
	}

	job := codecJob{
		app:    a,
		cfg:    cfg,
		log:    logger,
		report: &report,
	}
	switch report.Mode {
	case _modeText:
		report.Characters = uniseg.GraphemeClusterCount(string(data))
		err = runCodec(&job, a.runes, []rune(string(data)), func(rs []rune) []byte {
			return []byte(string(rs))
		})
	default:
		err = runCodec(&job, a.bytes, data, func(bs []byte) []byte {
			return bs
		})
	}
	if err != nil {
		return false, err
	}
	report.Elapsed = a.Clock.Since(start)

	logger.Debug("processed", "report", report.String())
	return true, report.Write(a.Stdout)
}

func (a *app) readFile(name string) (_ []byte, err error) {
	f, err := a.FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	return io.ReadAll(f)
}

// claimOutput records that the named output file belongs to input.
// It fails if another input already wrote to the same file.
func (a *app) claimOutput(name, input string) error {
	if prev, ok := a.outputs[name]; ok && prev != input {
		return fmt.Errorf("output %v already written for %v", name, prev)
	}
	a.outputs[name] = input
	return nil
}

func (a *app) writeFile(name string, write func(io.Writer) error) (err error) {
	f, err := a.FS.Create(name)
	if err != nil {
		return err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	return write(f)
}

// codecJob carries the state shared by the steps of encoding one file.
type codecJob struct {
	app    *app
	cfg    *config
	log    *log.Logger
	report *fileReport
}

func (j *codecJob) outPath(prefix, suffix string) string {
	return filepath.Join(j.cfg.OutDir, prefix+filepath.Base(j.report.Name)+suffix)
}

// runCodec encodes symbols to the output directory, reads the encoded file
// back and verifies that it decodes to the same symbols.
// toBytes converts decoded symbols back into file contents.
func runCodec[S cmp.Ordered](j *codecJob, cache *modelcache.Cache[S], symbols []S, toBytes func([]S) []byte) error {
	a := j.app

	model, hit, err := cache.Get(huffman.Analyze(symbols))
	if err != nil {
		return fmt.Errorf("build model: %w", err)
	}
	j.report.CacheHit = hit
	j.report.Symbols = symbolRows(model)
	j.log.Debug("built model", "symbols", len(j.report.Symbols), "cacheHit", hit)

	encPath := j.outPath("encoded_", ".bin")
	decPath := j.outPath("decoded_", "")
	if err := a.claimOutput(encPath, j.report.Name); err != nil {
		return err
	}
	if j.cfg.KeepDecoded {
		if err := a.claimOutput(decPath, j.report.Name); err != nil {
			return err
		}
	}

	err = a.writeFile(encPath, func(w io.Writer) error {
		_, err := model.WriteFrame(w, symbols)
		return err
	})
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	frame, decoded, err := readEncoded(a.FS, encPath, model)
	if err != nil {
		return fmt.Errorf("decode %v: %w", encPath, err)
	}
	if !slices.Equal(symbols, decoded) {
		return fmt.Errorf("decode %v: round trip mismatch: got %d symbols, want %d",
			encPath, len(decoded), len(symbols))
	}

	info, err := a.FS.Stat(encPath)
	if err != nil {
		return err
	}
	j.report.EncodedSize = info.Size()

	if j.cfg.ShowEncoded {
		j.report.Encoded = frame.Bits()
	}

	contents := toBytes(decoded)
	if j.cfg.ShowDecoded {
		j.report.Decoded = string(contents)
	}

	if j.cfg.KeepDecoded {
		err := a.writeFile(decPath, func(w io.Writer) error {
			_, err := w.Write(contents)
			return err
		})
		if err != nil {
			return fmt.Errorf("write decoded: %w", err)
		}
		j.report.DecodedPath = decPath
		j.log.Debug("wrote decoded file", "path", decPath)
	}

	return nil
}

// readEncoded decodes the frame stored in the named file,
// returning the raw frame alongside the decoded symbols.
func readEncoded[S cmp.Ordered](fsys fileSystem, name string, model *huffman.Model[S]) (_ huffman.Frame, _ []S, err error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, nil, err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	var raw bytes.Buffer
	decoded, err := model.ReadFrame(io.TeeReader(f, &raw))
	if err != nil {
		return nil, nil, err
	}
	return huffman.Frame(raw.Bytes()), decoded, nil
}
