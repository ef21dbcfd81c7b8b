package main

import (
	"bytes"
	"testing"
)

func TestDisassemble(t *testing.T) {
	program := []byte{
		0x00, 0xe0,
		0x81, 0x24,
		0x12, 0x00,
		0xff,
	}

	var out bytes.Buffer
	if err := disassemble(&out, program, 0x200); err != nil {
		t.Fatal(err)
	}

	want := "200  00e0  CLS\n" +
		"202  8124  ADD  V1, V2          ; VF\n" +
		"204  1200  JP   0x200\n" +
		"206  ff    DB   0xFF\n"

	if out.String() != want {
		t.Fatalf("output mismatch:\nwant:\n%s\nhave:\n%s", want, out.String())
	}
}
