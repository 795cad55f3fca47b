// reiodump prints the contents of a binary file as an offset-addressed
// hex and ASCII dump, or as fixed-width words decoded in a chosen byte
// order.
//
//	reiodump [-offset n] [-count n] [-width 1|2|4|8] [-order little|big|native] <file>
package main

import (
	"encoding/binary"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/reiolib/reio"
)

var (
	offset = flag.Int64("offset", 0, "byte offset to start dumping at")
	count  = flag.Int64("count", -1, "number of bytes to dump, -1 for the rest of the file")
	width  = flag.Int("width", 1, "word width in bytes: 1, 2, 4 or 8")
	order  = flag.String("order", "native", "byte order for multi-byte words: little, big or native")
)

func byteOrder(name string) binary.ByteOrder {
	switch name {
	case "little":
		return binary.LittleEndian
	case "big":
		return binary.BigEndian
	case "native":
		return binary.NativeEndian
	}
	panic("unknown byte order: " + name)
}

func readWord(d *reio.Decoder, width int) (uint64, error) {
	switch width {
	case 1:
		v, err := d.ReadUint8()
		return uint64(v), err
	case 2:
		v, err := d.ReadUint16()
		return uint64(v), err
	case 4:
		v, err := d.ReadUint32()
		return uint64(v), err
	case 8:
		return d.ReadUint64()
	}
	panic(fmt.Sprintf("unsupported word width: %v", width))
}

// printable maps a byte to its ASCII character, or '.' outside the
// printable range.
func printable(b byte) byte {
	if b < 0x20 || b > 0x7E {
		return '.'
	}
	return b
}

func dumpBytes(in *reio.FileInputStream, remaining int64) {
	row := make([]byte, 16)

	for remaining != 0 {
		n := len(row)
		if remaining > 0 && remaining < int64(n) {
			n = int(remaining)
		}

		n, err := in.Read(row[:n])
		if err == io.EOF {
			return
		}
		if err != nil {
			panic(err)
		}

		fmt.Printf("%08x ", in.Position()-int64(n))
		for i := 0; i < len(row); i++ {
			if i == 8 {
				fmt.Print(" ")
			}
			if i < n {
				fmt.Printf(" %02x", row[i])
			} else {
				fmt.Print("   ")
			}
		}

		fmt.Print("  |")
		for _, b := range row[:n] {
			fmt.Printf("%c", printable(b))
		}
		fmt.Println("|")

		if remaining > 0 {
			remaining -= int64(n)
		}
	}
}

func dumpWords(in *reio.FileInputStream, remaining int64, width int, order binary.ByteOrder) {
	d := reio.NewDecoder(in, order)
	perRow := 16 / width

	for col := 0; remaining != 0; {
		pos := in.Position()

		w, err := readWord(d, width)
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			break
		}
		if err != nil {
			panic(err)
		}

		if col == 0 {
			fmt.Printf("%08x ", pos)
		}
		fmt.Printf(" %0*x", width*2, w)

		if col = (col + 1) % perRow; col == 0 {
			fmt.Println()
		}
		if remaining > 0 {
			remaining -= int64(width)
		}
	}

	fmt.Println()
}

func main() {
	flag.Parse()

	if flag.NArg() < 1 {
		panic("Usage: reiodump [-offset n] [-count n] [-width 1|2|4|8] [-order little|big|native] <file>")
	}

	in, err := reio.NewFileInputStream(flag.Arg(0))
	if err != nil {
		panic(err)
	}
	defer in.Close()

	if *offset != 0 {
		if _, err = in.Seek(*offset, io.SeekStart); err != nil {
			panic(err)
		}
	}

	fmt.Printf("File   = %v\n", flag.Arg(0))
	fmt.Printf("Length = %v\n\n", in.Length())

	if *width == 1 {
		dumpBytes(in, *count)
	} else {
		dumpWords(in, *count, *width, byteOrder(*order))
	}
}
