package main

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/lukaszgryglicki/orbitals/internal/orbitals"
)

func main() {
	orbitals.Debug = os.Getenv("DEBUG") != ""
	orbitals.XYZ = os.Getenv("XYZ") != ""
	profile := os.Getenv("PROFILE") != ""
	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	cfg := orbitals.ConfigPath
	if len(os.Args) > 1 {
		cfg = os.Args[1]
	}
	if err := orbitals.Run(cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
