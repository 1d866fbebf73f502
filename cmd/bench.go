/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/hpfem/hpbasis/hpfe"
	"github.com/hpfem/hpbasis/refel"
	"github.com/hpfem/hpbasis/utils"
)

// BenchCmd represents the bench command
var BenchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time basis evaluation and report the per-point cost",
	Long: `
Times repeated shape function evaluation, gradient evaluation and
nodal-to-modal conversion, optionally writing a pprof profile,

hpbasis bench -e quad -n 8 --profile cpu`,
	Run: func(cmd *cobra.Command, args []string) {
		bp := processParameters(cmd)
		if bp.PolynomialOrder == 0 {
			bp.PolynomialOrder, _ = cmd.Flags().GetInt("order")
		}
		if bp.SamplesPerAxis == 0 {
			bp.SamplesPerAxis, _ = cmd.Flags().GetInt("samples")
		}
		reps, _ := cmd.Flags().GetInt("reps")
		prof, _ := cmd.Flags().GetString("profile")
		switch prof {
		case "cpu":
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		case "mem":
			defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
		}
		sf := buildBasis(bp)
		RunBench(sf, bp.SamplesPerAxis, reps)
	},
}

func init() {
	rootCmd.AddCommand(BenchCmd)
	BenchCmd.Flags().StringP("element", "e", "tria", "reference element: point, segment, tria, quad")
	BenchCmd.Flags().IntP("order", "n", 6, "polynomial degree of the basis")
	BenchCmd.Flags().StringSliceP("orientations", "o", nil, "edge orientations, positive or negative per edge")
	BenchCmd.Flags().IntP("samples", "s", 20, "samples per axis of the reference element")
	BenchCmd.Flags().IntP("reps", "r", 100, "number of repetitions per kernel")
	BenchCmd.Flags().String("profile", "", "write a pprof profile: cpu or mem")
	BenchCmd.Flags().StringP("paramFile", "I", "", "YAML file of basis parameters, overrides the other flags")
}

// RunBench times the three evaluation kernels over a sample grid.
func RunBench(sf hpfe.ScalarShapeFunctions, samples, reps int) {
	var (
		R       = sampleGrid(sf.RefEl(), samples)
		_, Npts = R.Dims()
	)
	if Npts == 0 {
		Npts = 1
	}
	logger.Info("benchmarking", "element", sf.RefEl(), "order", sf.Degree(),
		"points", Npts, "reps", reps)
	fmt.Printf("%-10s %14s %14s\n", "kernel", "total", "per point")
	report := func(name string, d time.Duration) {
		fmt.Printf("%-10s %14s %14s\n", name, d, d/time.Duration(reps*Npts))
	}
	start := time.Now()
	for r := 0; r < reps; r++ {
		sf.EvalShapeFunctions(R)
	}
	report("eval", time.Since(start))
	if sf.RefEl() != refel.Point {
		start = time.Now()
		for r := 0; r < reps; r++ {
			sf.GradShapeFunctions(R)
		}
		report("grad", time.Since(start))
	}
	nodevals := utils.NewVector(sf.NumEvaluationNodes())
	for i := range nodevals.DataP {
		nodevals.DataP[i] = 1
	}
	start = time.Now()
	for r := 0; r < reps; r++ {
		sf.NodalValuesToDofs(nodevals)
	}
	report("dofs", time.Since(start))
}
