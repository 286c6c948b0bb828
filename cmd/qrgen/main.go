package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"syscall"

	"github.com/agtkh/qrgen"
	"github.com/agtkh/qrgen/coding"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
)

var formats = []string{"png", "pbm", "utf8", "ascii"}

var g = struct {
	fn     string // output filename
	latin1 bool   // recode input as Latin-1
	rev    bool   // reverse colours
	help   bool   // show usage
}{}

func main() {
	log.SetFlags(0)
	getopt.SetParameters("[string ...]")
	getopt.Flag(&g.help, 'h', "show this help")
	ver := getopt.Unsigned('v', 0, &getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 0, Max: 40},
		"QR code version; 0 selects the smallest that fits", "ver")
	lev := getopt.Enum('l',
		[]string{"l", "m", "q", "h", "L", "M", "Q", "H"}, "m",
		"error correction level, lowest to highest", "l|m|q|h")
	mask := getopt.Signed('k', -1, &getopt.SignedLimit{Base: 0, Bits: 8, Min: -1, Max: 7},
		"data mask; -1 selects the lowest penalty mask", "mask")
	scale := getopt.Unsigned('s', 8, &getopt.UnsignedLimit{Base: 0, Bits: 16, Min: 1, Max: 1 << 12},
		"image pixels per QR module; ignored for types utf8 and ascii",
		"scale")
	border := getopt.Unsigned('m', 4, &getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 0, Max: 64},
		"quiet zone modules", "margin")
	ff := getopt.Enum('t', formats, "", "output format, one of: "+
		strings.Join(formats, ", ")+
		"; if no -o is given and standard output is a TTY, "+
		"default is utf8, otherwise png", "type")
	getopt.Flag(&g.fn, 'o', `output file, or "-" for standard output`,
		"file")
	getopt.Flag(&g.latin1, '1', "recode input as Latin-1 before encoding")
	getopt.Flag(&g.rev, 'i', "invert colours")
	getopt.Parse()
	if g.help {
		getopt.PrintUsage(os.Stdout)
		return
	}

	var s string
	if args := getopt.Args(); len(args) != 0 {
		s = strings.Join(args, " ")
	} else {
		var b strings.Builder
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			log.Fatalln(err)
		}
		s, _ = strings.CutSuffix(
			strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	}
	if g.latin1 {
		var err error
		if s, err = qrgen.Latin1(s); err != nil {
			log.Fatalln(err)
		}
	}

	if *ff == "" {
		if !getopt.IsSet('o') && isatty.IsTerminal(uintptr(syscall.Stdout)) {
			*ff = "utf8"
		} else {
			*ff = "png"
		}
	}

	c, err := qrgen.EncodeData([]byte(s), coding.Version(*ver),
		qrgen.Level(strings.Index("lmqhLMQH", *lev)&3),
		coding.Mask(*mask))
	if err != nil {
		log.Fatalln(err)
	}
	c.Scale = int(*scale)
	c.Border = int(*border)
	c.Reverse = g.rev

	w := os.Stdout
	if g.fn != "" && g.fn != "-" {
		if w, err = os.Create(g.fn); err != nil {
			log.Fatalln(err)
		}
	}
	switch *ff {
	case "png":
		err = c.EncodePNG(w)
	case "pbm":
		err = c.EncodePBM(w)
	case "utf8":
		_, err = fmt.Fprint(w, c)
	case "ascii":
		err = ascii(c, w)
	}
	if err == nil && w != os.Stdout {
		err = w.Close()
	}
	if err != nil {
		log.Fatalln(err)
	}
}

// ascii renders the code two characters per module.
func ascii(c *qrgen.Code, w io.Writer) error {
	siz, bord := c.Size, c.Border
	var b strings.Builder
	for y := -bord; y < siz+bord; y++ {
		for x := -bord; x < siz+bord; x++ {
			p := "  "
			if c.Black(x, y) != c.Reverse {
				p = "##"
			}
			b.WriteString(p)
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
