package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/seqsense/pcgol/mat"
)

var (
	rootFlag       = flag.String("root", "", "root joint position as \"x,y,z\"")
	midFlag        = flag.String("mid", "", "mid joint position as \"x,y,z\"")
	endFlag        = flag.String("end", "", "end joint position as \"x,y,z\"")
	multiplierFlag = flag.Float64("multiplier", defaultMultiplier, "pole distance multiplier")
	sceneFlag      = flag.String("scene", "", "scene file to load")
	selectFlag     = flag.String("select", "", "comma separated names to select")
	placeFlag      = flag.Bool("place", false, "place a locator at the pole vector of the selected joints")
	saveFlag       = flag.String("save", "", "write the scene to this file before exit")
	exportFlag     = flag.String("export", "", "write the scene as a point cloud to this file")
	consoleFlag    = flag.Bool("console", false, "read console commands from stdin")
)

func main() {
	flag.Parse()
	log.SetFlags(0)

	if flag.NFlag() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	cmd := newCommandContext(&sceneIOImpl{}, &pcdIOImpl{})
	cmd.logf = log.Printf

	if err := cmd.SetMultiplier(float32(*multiplierFlag)); err != nil {
		return err
	}

	tupleMode := *rootFlag != "" || *midFlag != "" || *endFlag != ""
	sceneMode := *sceneFlag != "" || *selectFlag != "" || *placeFlag ||
		*saveFlag != "" || *exportFlag != "" || *consoleFlag
	if tupleMode && sceneMode {
		return errors.New("joint position flags cannot be mixed with scene flags")
	}

	if tupleMode {
		if *rootFlag == "" || *midFlag == "" || *endFlag == "" {
			return errors.New("-root, -mid and -end must be given together")
		}
		root, err := parseTuple(*rootFlag)
		if err != nil {
			return err
		}
		mid, err := parseTuple(*midFlag)
		if err != nil {
			return err
		}
		end, err := parseTuple(*endFlag)
		if err != nil {
			return err
		}
		pole, err := cmd.PoleVectorAt(root, mid, end, cmd.Multiplier())
		if err != nil {
			return err
		}
		fmt.Printf("%g %g %g\n", pole[0], pole[1], pole[2])
		return nil
	}

	if *sceneFlag != "" {
		if err := cmd.LoadScene(*sceneFlag); err != nil {
			return err
		}
	}
	if *selectFlag != "" {
		names := strings.Split(*selectFlag, ",")
		for i, name := range names {
			names[i] = strings.TrimSpace(name)
		}
		if err := cmd.Select(names...); err != nil {
			return err
		}
	}
	if *placeFlag {
		res, err := cmd.PoleVector()
		if err != nil {
			return err
		}
		fmt.Println(res.Locator + " " + formatVec3(res.Pos))
	}
	if *consoleFlag {
		if err := runConsole(cmd, os.Stdin, os.Stdout); err != nil {
			return err
		}
	}
	if *saveFlag != "" {
		if err := cmd.SaveScene(*saveFlag); err != nil {
			return err
		}
	}
	if *exportFlag != "" {
		if err := cmd.ExportPCD(*exportFlag); err != nil {
			return err
		}
	}
	return nil
}

// runConsole executes console commands line by line. A failed command
// does not stop the loop.
func runConsole(cmd *commandContext, r io.Reader, w io.Writer) error {
	c := &console{cmd: cmd}
	s := bufio.NewScanner(r)
	for s.Scan() {
		out, err := c.Run(s.Text())
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			continue
		}
		if out != "" {
			fmt.Fprintln(w, out)
		}
	}
	return s.Err()
}

func parseTuple(s string) (mat.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return mat.Vec3{}, fmt.Errorf("position must be three comma separated numbers: %q", s)
	}
	var p mat.Vec3
	for i, part := range parts {
		v, err := parseFinite(strings.TrimSpace(part))
		if err != nil {
			return mat.Vec3{}, err
		}
		p[i] = v
	}
	return p, nil
}
