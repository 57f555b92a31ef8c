// Command oddpath runs Network Diversion on a planar graph file and
// prints the cheapest diversion cost.
//
// Usage: oddpath <file> <s> <t> <du> <dv>
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/arborfell/oddpath/diversion"
	"github.com/arborfell/oddpath/planar"
)

func main() {
	if len(os.Args) != 6 {
		fmt.Fprintf(os.Stderr, "usage: %s <file> <s> <t> <du> <dv>\n", os.Args[0])
		os.Exit(1)
	}

	s, err1 := strconv.Atoi(os.Args[2])
	t, err2 := strconv.Atoi(os.Args[3])
	du, err3 := strconv.Atoi(os.Args[4])
	dv, err4 := strconv.Atoi(os.Args[5])
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		fmt.Fprintln(os.Stderr, "s, t, du and dv must be integers")
		os.Exit(1)
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not open %s: %v\n", os.Args[1], err)
		os.Exit(1)
	}
	defer f.Close()

	pg, err := planar.Parse[float64](f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not read graph: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()
	res := diversion.Solve(pg, s, t, du, dv)
	elapsed := time.Since(start)

	if !res.Found() {
		fmt.Println("No found")
		os.Exit(1)
	}
	fmt.Printf("%.2f\n", res.Cost().MustValue())
	fmt.Fprintf(os.Stderr, "time taken: %s\n", elapsed)
}
