package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"runtime/trace"
	"time"

	"github.com/colinrgodsey/vec3d/lib/config"
	"github.com/colinrgodsey/vec3d/lib/surface"
	"github.com/colinrgodsey/vec3d/lib/vec"

	"github.com/pkg/profile"
)

var (
	configPath string
	outPath    string

	doTrace bool
	doProf  bool
)

func main() {
	flag.StringVar(&configPath, "config", "./config.hjson", "Path to HJSON config file")
	flag.StringVar(&outPath, "out", "", "Output path override (- for stdout)")

	flag.BoolVar(&doTrace, "trace", false, "Enable tracing (debug)")
	flag.BoolVar(&doProf, "prof", false, "Enable profiling (debug)")
	flag.Parse()

	conf, err := config.LoadConfig(configPath)
	if err != nil {
		fail(err)
	}
	if outPath != "" {
		conf.OutPath = outPath
	}

	if doTrace {
		trace.Start(os.Stderr)
		defer trace.Stop()
	}

	if doProf {
		st := profile.Start()

		go func() {
			time.Sleep(20 * time.Second)
			st.Stop()
			os.Exit(0)
		}()
	}

	samples, err := surface.LoadSampleFile(conf.SamplesPath)
	if err != nil {
		fail(err)
	}
	interp, err := surface.Interpolator(samples)
	if err != nil {
		fail(err)
	}
	normals := surface.NormalField(interp, conf.Max, conf.Stride)

	out := os.Stdout
	if conf.OutPath != "" && conf.OutPath != "-" {
		if out, err = os.Create(conf.OutPath); err != nil {
			fail(err)
		}
		defer out.Close()
	}

	w := bufio.NewWriter(out)
	defer w.Flush()
	for _, n := range normals {
		if err := vec.Fprint(w, n); err != nil {
			fail(err)
		}
		if err := w.WriteByte('\n'); err != nil {
			fail(err)
		}
	}
	fmt.Fprintf(os.Stderr, "info:wrote %v normals\n", len(normals))
}

func fail(err error) {
	fmt.Println(err)
	os.Exit(1)
}
