// Command trustbench loads a persisted certification graph, recomputes
// trust, prints the top peers and a single peer's vertex info, and
// optionally runs the restored sock-account experiment
// (original_source/advogato/experiments/confused_1.py) against it.
//
//	trustbench -graph ./graphs/<id>.graph -top 20 -target "Carola Gene"
//	trustbench -graph ./graphs/<id>.graph -experiment sockattack -target "Carola Gene"
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/noahlevenson/trust/persist"
	"github.com/noahlevenson/trust/trust"
)

func main() {
	graphPath := flag.String("graph", "", "path to a persisted graph file (required)")
	seed := flag.String("seed", "seed", "seed peer key in the certification graph")
	target := flag.String("target", "", "peer to report vertex info for")
	topN := flag.Int("top", 20, "number of top peers to print")
	experiment := flag.String("experiment", "", `optional experiment to run: "sockattack"`)
	adversary := flag.String("adversary", "Adversary", "adversary peer name for -experiment sockattack")
	socks := flag.Int("socks", 500, "number of sock accounts for -experiment sockattack")
	flag.Parse()

	if *graphPath == "" {
		fmt.Fprintln(os.Stderr, "usage error: -graph is required")
		flag.Usage()
		os.Exit(1)
	}

	g, id, err := persist.Load(*graphPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded graph %s (%d vertices, %d edges)\n", id, g.VertexCount(), g.EdgeCount())

	cfg := trust.NewConfig(*seed)
	flowed, err := trust.ComputeTrust(g, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printTop(flowed, *topN)
	if *target != "" {
		printVertexInfo(flowed, *target)
	}

	switch *experiment {
	case "":
		// nothing more to do
	case "sockattack":
		if *target == "" {
			fmt.Fprintln(os.Stderr, "usage error: -experiment sockattack requires -target")
			os.Exit(1)
		}
		runSockAttack(g, cfg, *target, *adversary, *socks)
	default:
		fmt.Fprintf(os.Stderr, "usage error: unknown experiment %q\n", *experiment)
		os.Exit(1)
	}
}

func printTop(flowed *trust.FlowedGraph, n int) {
	top := trust.TopPeers(flowed, n)
	fmt.Printf("\nTop %d peers by trust:\n", len(top))
	for i, s := range top {
		fmt.Printf("%d. %s, %d\n", i+1, s.Peer, s.Trust)
	}
}

func printVertexInfo(flowed *trust.FlowedGraph, peer string) {
	info, err := trust.VertexInfo(flowed, peer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	fmt.Printf("\n%s: trust=%d\n", peer, info.SelfFlow)
	for _, e := range info.InEdges {
		fmt.Printf("  <- %s (%d)\n", e.Peer, e.Flow)
	}
	for _, e := range info.OutEdges {
		fmt.Printf("  -> %s (%d)\n", e.Peer, e.Flow)
	}
}
