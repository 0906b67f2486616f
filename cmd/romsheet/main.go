package main

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/codegangsta/cli"
	"github.com/kevin-cantwell/romsheet"
)

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	app := cli.NewApp()
	app.Version = "0.1.0"
	app.Name = "romsheet"
	app.Usage = "A command-line tool for rendering 8x8 character ROM dumps as font sheets."
	app.UsageText = "romsheet [options] INPUT OUTPUT [OFFSET]"
	app.Author = "Kevin Cantwell"
	app.Email = "kevin.cantwell@gmail.com"
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "format,f",
			Usage: "`FORMAT` of the output image: png, bmp, tiff, qoi or gif. Defaults to the OUTPUT extension, or png.",
		},
		cli.IntFlag{
			Name:  "scale,s",
			Usage: "`SCALE` = 2 doubles the size of every pixel in the output image.",
			Value: 1,
		},
		cli.BoolFlag{
			Name:  "preview,p",
			Usage: "Prints the sheet to stdout as braille symbols.",
		},
		cli.BoolFlag{
			Name:  "invert,i",
			Usage: "Inverts the preview.",
		},
		cli.BoolFlag{
			Name:  "dump,d",
			Usage: "Prints every glyph to stdout as text.",
		},
		cli.StringFlag{
			Name:  "config,c",
			Usage: "YAML `FILE` with default values for any of the options and for OFFSET.",
		},
		cli.BoolFlag{
			Name:  "quiet,q",
			Usage: "Only prints warnings and errors.",
		},
	}
	app.Action = func(c *cli.Context) error {
		args := c.Args()
		if len(args) != 2 && len(args) != 3 {
			cli.ShowAppHelp(c)
			return errors.New("wrong argument count")
		}

		cfg := config{Scale: 1}
		if path := c.String("config"); path != "" {
			var err error
			if cfg, err = loadConfig(path); err != nil {
				return err
			}
		}
		cfg.override(c)
		if len(args) == 3 {
			offset, err := parseOffset(args[2])
			if err != nil {
				return fmt.Errorf("invalid offset %q", args[2])
			}
			cfg.Offset = offset
		}
		if err := cfg.validate(); err != nil {
			return err
		}

		info := log.New(stderr, "", 0)
		if cfg.Quiet {
			info.SetOutput(ioutil.Discard)
		}
		warn := log.New(stderr, "", 0)

		return convert(args[0], args[1], cfg, info, warn, stdout)
	}
	return app
}

// parseOffset reads OFFSET as a decimal byte count, or as hex with a 0x
// prefix. Leading zeros never mean octal.
func parseOffset(s string) (int64, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return strconv.ParseInt(s[2:], 16, 64)
	}
	return strconv.ParseInt(s, 10, 64)
}

func convert(input, output string, cfg config, info, warn *log.Logger, stdout io.Writer) error {
	format, err := cfg.format(output)
	if err != nil {
		return err
	}

	info.Printf("Reading character ROM from: %s", input)
	src, err := romsheet.OpenSource(input, cfg.Offset)
	if err != nil {
		return err
	}
	defer src.Close()
	if src.Compressed {
		info.Printf("Decompressed %s to %d bytes", input, src.Usable+cfg.Offset)
	}

	conv := romsheet.NewConverter(
		romsheet.WithLogger(warn),
		romsheet.WithFormat(format),
		romsheet.WithScale(cfg.Scale),
	)
	info.Printf("Writing %s image to: %s", format, output)
	img, err := conv.ConvertFile(output, src)
	if err != nil {
		return err
	}

	if cfg.Preview {
		opts := []romsheet.PreviewOpt{}
		if cols, ok := terminalColumns(stdout); ok {
			opts = append(opts, romsheet.WithColumns(cols))
		}
		if cfg.Invert {
			opts = append(opts, romsheet.WithInvertedColors())
		}
		if err := romsheet.NewPreview(stdout, opts...).Encode(img); err != nil {
			return err
		}
	}

	if cfg.Dump {
		return dump(input, cfg.Offset, warn, stdout)
	}
	return nil
}

func dump(input string, offset int64, warn *log.Logger, stdout io.Writer) error {
	src, err := romsheet.OpenSource(input, offset)
	if err != nil {
		return err
	}
	defer src.Close()
	res, err := romsheet.Dump(stdout, src)
	if err != nil {
		return err
	}
	if res.Trailing > 0 {
		warn.Printf("warning: %d bytes at the end of %s were not processed", res.Trailing, input)
	}
	return nil
}
