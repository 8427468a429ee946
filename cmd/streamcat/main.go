// SPDX-License-Identifier: EPL-2.0

// Command streamcat opens sounds by basename, shapes them with the stream
// wrappers and writes the result as a 16-bit PCM WAV file.
//
//	streamcat -in intro,theme -loops 2 -limit 30000 -out mix.wav
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/ik5/audstream"
	"github.com/ik5/audstream/audio"
	"github.com/ik5/audstream/formats/wav"
	"github.com/ik5/audstream/internal/config"
)

var (
	errNoInput      = errors.New("no input given")
	errNoOutput     = errors.New("no output given")
	errEndlessLoop  = errors.New("-loops 0 needs -limit")
	errBadRange     = errors.New("invalid range")
	errNotStereo    = errors.New("-reverse needs a stereo input")
	errInputMissing = errors.New("input not found")
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatalf("streamcat: %v", err)
	}
}

type options struct {
	configPath   string
	envFile      string
	inputs       []string
	output       string
	loops        int
	startMs      int
	endMs        int
	limitMs      int
	reverse      bool
	mono         bool
	allowMissing bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	var (
		opts options
		in   string
	)

	fs := flag.NewFlagSet("streamcat", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	fs.StringVar(&opts.envFile, "env", "", "dotenv file with AUDSTREAM_* overrides")
	fs.StringVar(&in, "in", "", "comma separated basenames, played one after another")
	fs.StringVar(&opts.output, "out", "", "output WAV file")
	fs.IntVar(&opts.loops, "loops", 1, "times to play each input, 0 loops forever")
	fs.IntVar(&opts.startMs, "start", 0, "start of the played range in ms")
	fs.IntVar(&opts.endMs, "end", 0, "end of the played range in ms, 0 for the end of the input")
	fs.IntVar(&opts.limitMs, "limit", 0, "cut the output after this many ms")
	fs.BoolVar(&opts.reverse, "reverse", false, "swap the left and right channels")
	fs.BoolVar(&opts.mono, "mono", false, "fold the output to mono")
	fs.BoolVar(&opts.allowMissing, "allow-missing", false, "skip inputs that cannot be opened")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	for _, name := range strings.Split(in, ",") {
		if name = strings.TrimSpace(name); name != "" {
			opts.inputs = append(opts.inputs, name)
		}
	}

	switch {
	case len(opts.inputs) == 0:
		return nil, errNoInput
	case opts.output == "":
		return nil, errNoOutput
	case opts.loops < 0:
		return nil, fmt.Errorf("-loops %d: must not be negative", opts.loops)
	case opts.loops == 0 && opts.limitMs <= 0:
		return nil, errEndlessLoop
	case opts.startMs < 0 || opts.endMs < 0 || opts.limitMs < 0:
		return nil, fmt.Errorf("%w: negative time", errBadRange)
	case opts.endMs > 0 && opts.endMs <= opts.startMs:
		return nil, fmt.Errorf("%w: start %dms, end %dms", errBadRange, opts.startMs, opts.endMs)
	}

	return &opts, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.configPath, opts.envFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := cfg.NewLogger(stderr)
	audio.SetLogger(logger)
	defer audio.SetLogger(nil)

	src, err := buildPipeline(cfg, opts, logger)
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(opts.output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer out.Close()

	bufSize := cfg.Output.BufferSize - cfg.Output.BufferSize%src.Channels()
	bufSize = max(bufSize, src.Channels())

	n, err := wav.Encode(out, src, bufSize)
	if err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}

	frames := n / src.Channels()
	logger.Info("streamcat: wrote output", "file", opts.output,
		"frames", frames, "rate", src.Rate(), "channels", src.Channels())
	fmt.Fprintf(stdout, "%s: %d frames, %d Hz, %d channels\n",
		opts.output, frames, src.Rate(), src.Channels())

	return nil
}

// buildPipeline opens every input, shapes it and queues the results in
// order. The returned stream owns everything below it.
func buildPipeline(cfg *config.Config, opts *options, logger *slog.Logger) (audio.Stream, error) {
	var inputs []audio.Stream

	closeAll := func() {
		for _, s := range inputs {
			_ = s.Close()
		}
	}

	for _, name := range opts.inputs {
		s, err := openInput(cfg.Search.Dirs, name)
		if err != nil {
			if opts.allowMissing {
				logger.Warn("streamcat: skipping input", "input", name, "err", err)
				continue
			}
			closeAll()
			return nil, err
		}

		shaped, err := shape(s, opts)
		if err != nil {
			_ = s.Close()
			closeAll()
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		inputs = append(inputs, audio.NewResampler(shaped, cfg.OutputRate(), audio.DisposeYes))
	}

	if len(inputs) == 0 {
		logger.Warn("streamcat: no input could be opened, writing silence")
		return audio.NewNullStream(cfg), nil
	}

	mono := cfg.Output.Mono || opts.mono
	for _, s := range inputs[1:] {
		if s.Channels() != inputs[0].Channels() {
			mono = true
		}
	}

	if mono {
		for i, s := range inputs {
			if s.Channels() > 1 {
				inputs[i] = audio.NewMonoMixer(s, audio.DisposeYes)
			}
		}
	}

	queue := audio.NewQueuingStream(cfg.OutputRate(), inputs[0].Channels())
	for _, s := range inputs {
		queue.QueueStream(s, audio.DisposeYes)
	}
	queue.Finish()

	if opts.limitMs > 0 {
		return audio.NewLimitingStream(queue, audio.NewTimestamp(opts.limitMs, cfg.OutputRate()), audio.DisposeYes), nil
	}

	return queue, nil
}

// openInput tries basename in each search directory in order.
func openInput(dirs []string, basename string) (audio.SeekableStream, error) {
	for _, dir := range dirs {
		s, err := audstream.OpenStreamFile(os.DirFS(dir), basename)
		if err == nil {
			return s, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", errInputMissing, basename)
}

// shape applies the range, loop and channel options to s, taking
// ownership of it on success.
func shape(s audio.SeekableStream, opts *options) (audio.Stream, error) {
	if opts.reverse && s.Channels() != 2 {
		return nil, fmt.Errorf("%w: %d channels", errNotStereo, s.Channels())
	}

	rate := s.Rate()
	start := audio.NewTimestamp(opts.startMs, rate)
	end := s.Length()
	if opts.endMs > 0 {
		end = audio.NewTimestamp(opts.endMs, rate)
	}

	var out audio.Stream = s

	switch {
	case opts.startMs > 0 || opts.endMs > 0:
		if !start.Less(end) {
			return nil, fmt.Errorf("%w: start %dms past the end at %dms", errBadRange, start.Msecs(), end.Msecs())
		}
		if opts.loops == 1 {
			out = audio.NewSubSeekableStream(s, start, end, audio.DisposeYes)
		} else {
			out = audio.NewSubLoopingStream(s, opts.loops, start, end, audio.DisposeYes)
		}
	case opts.loops != 1:
		out = audio.NewLoopingStream(s, opts.loops, audio.DisposeYes)
	}

	if opts.reverse {
		out = audio.NewReversedStereoStream(out, audio.DisposeYes)
	}

	return out, nil
}
