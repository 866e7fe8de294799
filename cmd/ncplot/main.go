// Command ncplot interprets an NC/G-code program and prints or plots the
// resulting tool path.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cncplot/gcodego/dialect"
	"github.com/cncplot/gcodego/engine"
	"github.com/cncplot/gcodego/engine/emit"
	"github.com/cncplot/gcodego/parser"
	"github.com/cncplot/gcodego/plotter"
)

func main() {
	dialectName := flag.String("dialect", "iso-turn", "iso-turn or siemens-mill")
	maxSegment := flag.Float64("max-segment", 0.5, "maximum chord length in mm for ordinary motion")
	cycleSegment := flag.Float64("cycle-segment", 0.1, "maximum chord length in mm for canned-cycle geometry")
	svgOut := flag.String("svg", "", "write an SVG rendering of the tool path to this file")
	jsonLog := flag.Bool("json", false, "emit JSON event logs instead of text")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: ncplot [flags] <program.nc>")
		os.Exit(2)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("read program: %v", err)
	}

	var p parser.Parser
	var d engine.Dialect
	switch *dialectName {
	case "iso-turn":
		p = parser.NewISOParser()
		d = dialect.ISOTurn{}
	case "siemens-mill":
		p = parser.NewSiemensParser()
		d = dialect.SiemensMill{}
	default:
		log.Fatalf("unknown dialect %q (want iso-turn or siemens-mill)", *dialectName)
	}

	nodes, err := parser.ParseProgram(p, string(data))
	if err != nil {
		log.Fatalf("parse: %v", err)
	}

	emitter := emit.NewLogEmitter(os.Stderr, *jsonLog)
	canal := engine.NewCanal("CH1",
		engine.WithDialect(d),
		engine.WithMaxSegment(*maxSegment),
		engine.WithCycleSegment(*cycleSegment),
		engine.WithEmitter(emitter),
	)

	if err := canal.RunNCCodeList(context.Background(), nodes); err != nil {
		log.Fatalf("run: %v", err)
	}

	path := canal.GetToolPath()
	totalPoints := 0
	totalDuration := 0.0
	for _, seg := range path {
		totalPoints += len(seg.Points)
		totalDuration += seg.Duration
	}
	fmt.Printf("%d nodes executed, %d motion segments, %d points, %.3fs total\n",
		len(canal.GetExecNodes()), len(path), totalPoints, totalDuration)

	if *svgOut != "" {
		svg, err := plotter.NewSVGPlotter().Plot(path)
		if err != nil {
			log.Fatalf("plot: %v", err)
		}
		if err := os.WriteFile(*svgOut, svg, 0o644); err != nil {
			log.Fatalf("write svg: %v", err)
		}
	}
}
