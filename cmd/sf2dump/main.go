// Command sf2dump prints the raw RIFF chunk tree of a SoundFont file.
//
// Usage:
//
//	sf2dump <file.sf2>
//
// Each chunk is printed with its tag, declared size and offset. LIST chunks
// are descended into; INFO text is shown inline and pdta chunks show their
// record count. Nothing is validated beyond what is needed to walk the tree,
// which makes the tool useful on files the decoder rejects.
package main

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-audio/riff"
)

// Useful to confirm what is actually in a bank before blaming the decoder.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: sf2dump <file.sf2>")
		os.Exit(1)
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := dump(os.Stdout, f); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

var listID = [4]byte{'L', 'I', 'S', 'T'}

// recordWidths maps pdta sub-chunks to their record size.
var recordWidths = map[string]int{
	"phdr": 38, "pbag": 4, "pmod": 10, "pgen": 4,
	"inst": 22, "ibag": 4, "imod": 10, "igen": 4,
	"shdr": 46,
}

// dump walks the RIFF tree read from r and writes one line per chunk to w.
func dump(w io.Writer, r io.Reader) error {
	p := riff.New(r)

	id, size, err := p.IDnSize()
	if err != nil {
		return fmt.Errorf("read RIFF header: %w", err)
	}
	p.ID, p.Size = id, size
	if p.ID != riff.RiffID {
		return fmt.Errorf("%q - %w", p.ID[:], riff.ErrFmtNotSupported)
	}
	if err := binary.Read(r, binary.BigEndian, &p.Format); err != nil {
		return fmt.Errorf("read form id: %w", err)
	}

	fmt.Fprintf(w, "RIFF '%s' (size: %d, offset: 0)\n", p.Format[:], p.Size)
	return dumpChunks(w, p, 12, 1, "")
}

// dumpChunks prints the chunks p yields until its reader is exhausted.
// offset is the stream position of the first chunk; form is the enclosing
// LIST form id.
func dumpChunks(w io.Writer, p *riff.Parser, offset int64, depth int, form string) error {
	indent := strings.Repeat("  ", depth)

	for {
		ch, err := p.NextChunk()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("chunk at offset %d: %w", offset, err)
		}
		tag := string(ch.ID[:])

		if ch.ID == listID {
			var listForm [4]byte
			if _, err := io.ReadFull(ch, listForm[:]); err != nil {
				return fmt.Errorf("LIST form at offset %d: %w", offset+8, err)
			}
			fmt.Fprintf(w, "%sLIST '%s' (size: %d, offset: %d)\n", indent, listForm[:], ch.Size, offset)
			if err := dumpChunks(w, riff.New(ch), offset+12, depth+1, string(listForm[:])); err != nil {
				return err
			}
		} else {
			fmt.Fprintf(w, "%s%s (size: %d, offset: %d)%s\n", indent, tag, ch.Size, offset, describe(ch, form, tag))
			ch.Drain()
		}

		offset += 8 + int64(ch.Size)
	}
}

// describe returns a short summary of a leaf chunk's payload. It may consume
// part of the chunk; the caller drains the rest.
func describe(ch *riff.Chunk, form, tag string) string {
	switch form {
	case "INFO":
		if tag == "ifil" || tag == "iver" {
			var v [2]uint16
			if err := ch.ReadLE(&v); err != nil {
				return ""
			}
			return fmt.Sprintf(" %d.%d", v[0], v[1])
		}
		buf := make([]byte, min(ch.Size, 256))
		n, _ := io.ReadFull(ch, buf)
		text, _, _ := bytes.Cut(buf[:n], []byte{0})
		return fmt.Sprintf(" %q", text)

	case "sdta":
		if tag == "smpl" {
			return fmt.Sprintf(" %d samples", ch.Size/2)
		}
		return fmt.Sprintf(" %d bytes", ch.Size)

	case "pdta":
		if width, ok := recordWidths[tag]; ok {
			if ch.Size%width != 0 {
				return fmt.Sprintf(" not a multiple of %d", width)
			}
			return fmt.Sprintf(" %d records", ch.Size/width)
		}
	}
	return ""
}
