// vesseldoc is a CLI utility for working with vessel documents without
// opening the viewer.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/Faultbox/vesselcad/internal/vessel"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "new":
		cmdNew(args)
	case "info":
		cmdInfo(args)
	case "normalize":
		cmdNormalize(args)
	case "add-nozzle":
		cmdAddNozzle(args)
	case "add-lug":
		cmdAddLug(args)
	case "add-saddle":
		cmdAddSaddle(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`vesseldoc - vessel document utility

Usage:
  vesseldoc <command> [options]

Commands:
  new <file.json> [flags]                   Create a fresh document
  info <file.json>                          Show document summary
  normalize <file.json>                     Clamp out-of-range values and re-save
  add-nozzle <file.json> <size> <pos> <angle>  Add a nozzle and save
  add-lug <file.json> <style> <swl> <pos> <angle>  Add a lifting lug and save
  add-saddle <file.json> <pos>              Add a support saddle and save

Examples:
  vesseldoc new tank.json -length 8000 -diameter 3000
  vesseldoc info tank.json
  vesseldoc add-nozzle tank.json DN100 4000 90
  vesseldoc add-lug tank.json trunnion 10t 2000 90`)
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func load(path string) *vessel.State {
	st, err := vessel.LoadFile(path)
	if err != nil {
		fail("%v", err)
	}
	return st
}

func save(st *vessel.State, path string) {
	if err := st.SaveFile(path); err != nil {
		fail("%v", err)
	}
}

func parseFloat(s, what string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		fail("invalid %s %q", what, s)
	}
	return v
}

func cmdNew(args []string) {
	fs := flag.NewFlagSet("new", flag.ExitOnError)
	length := fs.Float64("length", 6000, "tangent-to-tangent length (mm)")
	diameter := fs.Float64("diameter", 2000, "shell diameter (mm)")
	ratio := fs.Float64("ratio", 2, "head depth ratio")
	vertical := fs.Bool("vertical", false, "vertical orientation")

	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: vesseldoc new <file.json> [flags]")
		os.Exit(1)
	}
	path := args[0]
	fs.Parse(args[1:])

	st := vessel.New()
	st.Length = *length
	st.Diameter = *diameter
	st.HeadRatio = *ratio
	if *vertical {
		st.Orientation = vessel.Vertical
	}
	st.Normalize()

	save(st, path)
	fmt.Printf("created %s (%gx%g mm)\n", path, st.Length, st.Diameter)
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: vesseldoc info <file.json>")
		os.Exit(1)
	}
	st := load(args[0])

	fmt.Printf("id:          %s\n", st.ID)
	fmt.Printf("orientation: %s\n", st.Orientation)
	fmt.Printf("length:      %g mm\n", st.Length)
	fmt.Printf("diameter:    %g mm\n", st.Diameter)
	fmt.Printf("head depth:  %g mm (ratio %g)\n", st.HeadDepth(), st.HeadRatio)

	fmt.Printf("\nnozzles (%d):\n", len(st.Nozzles))
	for _, n := range st.Nozzles {
		fmt.Printf("  %-6s %-7s pos=%-8g angle=%-6g mode=%s\n",
			n.Name, n.Size, n.Pos, n.Angle, n.Mode)
	}

	fmt.Printf("lugs (%d):\n", len(st.Lugs))
	for _, l := range st.Lugs {
		fmt.Printf("  %-6s %-8s %-4s pos=%-8g angle=%g\n",
			l.Name, l.Style, l.SWL, l.Pos, l.Angle)
	}

	fmt.Printf("saddles (%d):\n", len(st.Saddles))
	for _, s := range st.Saddles {
		fmt.Printf("  %-6s pos=%g\n", s.Tag, s.Pos)
	}

	fmt.Printf("decals (%d):\n", len(st.Decals))
	for _, d := range st.Decals {
		fmt.Printf("  pos=%-8g angle=%-6g scale=%-5g %s\n", d.Pos, d.Angle, d.Scale, d.Image)
	}
}

func cmdNormalize(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: vesseldoc normalize <file.json>")
		os.Exit(1)
	}
	// Loading already clamps and repairs; saving persists the result.
	st := load(args[0])
	save(st, args[0])
	fmt.Printf("normalized %s\n", args[0])
}

func cmdAddNozzle(args []string) {
	if len(args) < 4 {
		fmt.Fprintln(os.Stderr, "Usage: vesseldoc add-nozzle <file.json> <size> <pos> <angle>")
		os.Exit(1)
	}
	st := load(args[0])
	i := st.AddNozzle(args[1], parseFloat(args[2], "pos"), parseFloat(args[3], "angle"))
	save(st, args[0])
	fmt.Printf("added nozzle %s\n", st.Nozzles[i].Name)
}

func cmdAddLug(args []string) {
	if len(args) < 5 {
		fmt.Fprintln(os.Stderr, "Usage: vesseldoc add-lug <file.json> <style> <swl> <pos> <angle>")
		os.Exit(1)
	}
	style := vessel.LugStyle(args[1])
	if style != vessel.PadEye && style != vessel.Trunnion {
		fail("unknown lug style %q (pad-eye or trunnion)", args[1])
	}
	st := load(args[0])
	i := st.AddLug(style, args[2], parseFloat(args[3], "pos"), parseFloat(args[4], "angle"))
	save(st, args[0])
	fmt.Printf("added lug %s\n", st.Lugs[i].Name)
}

func cmdAddSaddle(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: vesseldoc add-saddle <file.json> <pos>")
		os.Exit(1)
	}
	st := load(args[0])
	i := st.AddSaddle(parseFloat(args[1], "pos"))
	save(st, args[0])
	fmt.Printf("added saddle %s\n", st.Saddles[i].Tag)
}
