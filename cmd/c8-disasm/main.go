package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hexaflex/c8vm/arch"
)

func main() {
	config := parseArgs()

	program, err := os.ReadFile(config.Input)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	out, close := makeWriter(config)
	defer close()

	if err := disassemble(out, program, config.Origin); err != nil {
		fmt.Fprintln(os.Stderr, err)
		close()
		os.Exit(1)
	}
}

// disassemble writes one line per instruction word in program: the
// address, the raw word and its assembler representation. Instructions
// which overwrite VF are marked as such. A trailing odd byte is written
// as a DB directive.
func disassemble(w io.Writer, program []byte, origin int) error {
	bw := bufio.NewWriter(w)

	for i := 0; i+1 < len(program); i += 2 {
		word := uint16(program[i])<<8 | uint16(program[i+1])
		text := arch.Disassemble(word)

		if arch.SetsFlag(arch.Decode(word)) {
			fmt.Fprintf(bw, "%03x  %04x  %-20s ; VF\n", origin+i, word, text)
		} else {
			fmt.Fprintf(bw, "%03x  %04x  %s\n", origin+i, word, text)
		}
	}

	if len(program)%2 != 0 {
		i := len(program) - 1
		fmt.Fprintf(bw, "%03x  %02x    DB   0x%02X\n", origin+i, program[i], program[i])
	}

	return bw.Flush()
}

// makeWriter creates an output writer and a cleanup function for it.
func makeWriter(c *Config) (io.Writer, func()) {
	if c.Output == "" {
		return os.Stdout, func() {}
	}

	dir, _ := filepath.Split(c.Output)
	if dir != "" {
		if err := os.MkdirAll(dir, 0744); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	fd, err := os.Create(c.Output)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	return fd, func() { fd.Close() }
}
