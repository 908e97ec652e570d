package main

import (
	"fmt"

	"github.com/noahlevenson/trust/core"
	"github.com/noahlevenson/trust/trust"
)

// runSockAttack reproduces experiments/confused_1.py: target is tricked
// into certifying adversary, then adversary nests n sock accounts under
// itself. Prints target's and adversary's trust before and after each
// stage, the way the original experiment script narrates its own
// observations.
func runSockAttack(g *core.Graph[string], cfg trust.Config, target, adversary string, n int) {
	fmt.Printf("\n*** BEGIN EXPERIMENT: sockattack (target=%q, adversary=%q, n=%d) ***\n", target, adversary, n)

	before, err := trust.ComputeTrust(g, cfg)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	printVertexInfo(before, target)

	if err := g.AddEdge(target, adversary, 1); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	afterCert, err := trust.ComputeTrust(g, cfg)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	fmt.Println("\nAfter target certifies adversary:")
	printVertexInfo(afterCert, target)
	printVertexInfo(afterCert, adversary)

	for i := 0; i < n; i++ {
		if err := g.AddEdge(adversary, fmt.Sprintf("%s sock %d", adversary, i), 1); err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}
	}
	afterSocks, err := trust.ComputeTrust(g, cfg)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	fmt.Printf("\nAfter adversary nests %d sock accounts:\n", n)
	printVertexInfo(afterSocks, target)
	printVertexInfo(afterSocks, adversary)

	winners := 0
	for i := 0; i < n; i++ {
		info, err := trust.VertexInfo(afterSocks, fmt.Sprintf("%s sock %d", adversary, i))
		if err == nil && info.SelfFlow > 0 {
			winners++
		}
	}
	fmt.Printf("\n%d of %d sock accounts received flow.\n", winners, n)
}
