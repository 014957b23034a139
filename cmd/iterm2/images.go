// ABOUTME: show and download subcommands: read files, prepare payloads, emit File sequences
// ABOUTME: Files are read concurrently with errgroup and written in argument order

package main

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/norm"

	"github.com/mauromedda/iterm2-go/internal/imgprep"
	ilog "github.com/mauromedda/iterm2-go/internal/log"
	"github.com/mauromedda/iterm2-go/pkg/iterm2"
)

type imageArgs struct {
	width     *iterm2.Dimension
	height    *iterm2.Dimension
	name      string
	maxPixels int
	preserve  optionalBool
	noName    bool
	files     []string
}

func parseImageArgs(e *env, name string, args []string) (imageArgs, error) {
	var (
		a             imageArgs
		width, height string
	)

	fs := newFlagSet(e, name)
	fs.StringVar(&width, "width", "", "Width: auto, N (cells), Npx, or N% (default from config)")
	fs.StringVar(&height, "height", "", "Height: auto, N (cells), Npx, or N% (default from config)")
	fs.StringVar(&a.name, "name", "", "File name to report (default: base name of FILE)")
	fs.BoolVar(&a.noName, "no-name", false, "Do not send a file name or size")
	fs.IntVar(&a.maxPixels, "max-pixels", e.settings.MaxPixelLimit(), "Downscale images whose longest edge exceeds this (0 disables; show only)")
	fs.Var(&a.preserve, "preserve-aspect-ratio", "Keep the image aspect ratio (true/false)")

	if err := parseFlags(fs, args); err != nil {
		return a, err
	}
	var err error
	if a.width, err = dimensionFlag("-width", width, e.settings.WidthDimension); err != nil {
		return a, err
	}
	if a.height, err = dimensionFlag("-height", height, e.settings.HeightDimension); err != nil {
		return a, err
	}
	if !a.preserve.set && e.settings.PreserveAspectRatio != nil {
		a.preserve = optionalBool{value: *e.settings.PreserveAspectRatio, set: true}
	}
	a.files = fs.Args()
	if len(a.files) == 0 {
		a.files = []string{"-"}
	}
	if a.name != "" && len(a.files) > 1 {
		return a, usagef("-name applies to a single file")
	}
	return a, nil
}

// dimensionFlag parses an explicit flag value, or falls back to the
// configured dimension. nil means the key is left out of the sequence.
func dimensionFlag(flagName, value string, configured func() (iterm2.Dimension, bool)) (*iterm2.Dimension, error) {
	if value == "" {
		if d, ok := configured(); ok {
			return &d, nil
		}
		return nil, nil
	}
	d, err := iterm2.ParseDimension(value)
	if err != nil {
		return nil, usagef("%s: %v", flagName, err)
	}
	return &d, nil
}

// payload is one file's contents and the name reported to the terminal.
type payload struct {
	path string
	name string
	data []byte
}

// readPayloads reads every file concurrently; stdin ("-") may appear once.
func readPayloads(e *env, a imageArgs) ([]payload, error) {
	stdinSeen := false
	for _, f := range a.files {
		if f == "-" {
			if stdinSeen {
				return nil, usagef("stdin (-) given more than once")
			}
			stdinSeen = true
		}
	}

	out := make([]payload, len(a.files))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, path := range a.files {
		g.Go(func() error {
			var (
				f   *iterm2.File
				err error
			)
			if path == "-" {
				f, err = iterm2.NewFileFromReader(e.stdin)
			} else {
				f, err = iterm2.ReadFile(path)
			}
			if err != nil {
				return err
			}
			p := payload{path: path, data: f.Bytes()}
			switch {
			case a.name != "":
				p.name = a.name
			case path != "-":
				p.name = norm.NFC.String(filepath.Base(path))
			}
			out[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (a imageArgs) build(p payload) *iterm2.File {
	f := iterm2.NewFile(p.data)
	if !a.noName {
		if p.name != "" {
			f.Name(iterm2.EncodeName(p.name))
		}
		f.Size(uint64(len(p.data)))
	}
	if a.width != nil {
		f.Width(*a.width)
	}
	if a.height != nil {
		f.Height(*a.height)
	}
	if a.preserve.set {
		f.PreserveAspectRatio(a.preserve.value)
	}
	return f
}

func runShow(e *env, args []string) error {
	a, err := parseImageArgs(e, "show", args)
	if err != nil {
		return err
	}
	if a.maxPixels < 0 {
		return usagef("-max-pixels must not be negative")
	}
	payloads, err := readPayloads(e, a)
	if err != nil {
		return err
	}

	for _, p := range payloads {
		res, err := imgprep.Prepare(p.data, a.maxPixels)
		if err != nil {
			return fmt.Errorf("preparing %s: %w", p.path, err)
		}
		if res.Resized {
			ilog.Debug("%s: downscaled %dx%d -> %dx%d", p.path,
				res.Original.Width, res.Original.Height, res.Size.Width, res.Size.Height)
		}
		p.data = res.Data

		f := a.build(p)
		ilog.Debug("showing %s (%s, %s)", p.path, res.MIME, humanize.Bytes(uint64(len(p.data))))
		if err := f.Show(e.out); err != nil {
			return err
		}
	}
	return nil
}

func runDownload(e *env, args []string) error {
	a, err := parseImageArgs(e, "download", args)
	if err != nil {
		return err
	}
	payloads, err := readPayloads(e, a)
	if err != nil {
		return err
	}

	for _, p := range payloads {
		f := a.build(p)
		ilog.Debug("sending %s (%s)", p.path, humanize.Bytes(uint64(len(p.data))))
		if err := f.Download(e.out); err != nil {
			return err
		}
	}
	return nil
}
