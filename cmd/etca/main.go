// Command etca is a thin CLI wrapper: extension-sniffing dispatch onto
// the container/codec/imageio packages (.etca in -> decode, otherwise ->
// encode). It contains no tile or entropy logic of its own — the CLI
// surface is out of scope as a feature per spec §1, but the library
// still needs to be runnable.
package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/etca-codec/etca/codec"
	"github.com/etca-codec/etca/container"
	"github.com/etca-codec/etca/imageio"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprint(os.Stderr, "Encode: etca <input-image>\nDecode: etca <input.etca>\n")
		os.Exit(1)
	}

	inputPath := os.Args[1]
	ext := strings.ToLower(filepath.Ext(inputPath))
	base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))

	if ext == ".etca" {
		if err := decodeFile(inputPath, base+".png"); err != nil {
			fmt.Fprintln(os.Stderr, "decode error:", err)
			os.Exit(1)
		}
		fmt.Printf("Decoded %s -> %s\n", inputPath, base+".png")
		return
	}

	outPath := base + ".etca"
	if err := encodeFile(inputPath, outPath); err != nil {
		fmt.Fprintln(os.Stderr, "encode error:", err)
		os.Exit(1)
	}
	fmt.Printf("Encoded %s -> %s\n", inputPath, outPath)
}

func encodeFile(inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	img, _, err := image.Decode(in)
	if err != nil {
		return err
	}

	buf := imageio.ToPixelBuffer(img)

	comp := codec.NewCompressor(codec.Default())
	result, err := comp.Compress(buf)
	if err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	return container.WriteContainer(out, uint32(result.W), uint32(result.H), container.ModeLossy, nil, result.Bytes)
}

func decodeFile(inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	c, err := container.ReadContainer(in)
	if err != nil {
		return err
	}

	cfg := codec.Default()
	if c.Mode == container.ModeLossless {
		cfg = codec.Lossless()
	}

	decomp := codec.NewDecompressor(cfg)
	buf := decomp.Decompress(codec.CompressedImage{W: int(c.Width), H: int(c.Height), Bytes: c.Payload})

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	return png.Encode(out, imageio.FromPixelBuffer(buf))
}
