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
	"os"

	"github.com/spf13/cobra"

	"github.com/hpfem/hpbasis/hpfe"
	"github.com/hpfem/hpbasis/refel"
	"github.com/hpfem/hpbasis/utils"
)

// TabulateCmd represents the tabulate command
var TabulateCmd = &cobra.Command{
	Use:   "tabulate",
	Short: "Print shape function values or gradients on a sample grid",
	Long: `
Evaluates the hierarchic shape functions of a reference element on a uniform
sample grid and prints one row per shape function,

hpbasis tabulate -e quad -n 3 --gradients`,
	Run: func(cmd *cobra.Command, args []string) {
		bp := processParameters(cmd)
		if bp.PolynomialOrder == 0 {
			bp.PolynomialOrder, _ = cmd.Flags().GetInt("order")
		}
		if bp.SamplesPerAxis == 0 {
			bp.SamplesPerAxis, _ = cmd.Flags().GetInt("samples")
		}
		gradients, _ := cmd.Flags().GetBool("gradients")
		nodal, _ := cmd.Flags().GetBool("nodal")
		bp.Print()
		sf := buildBasis(bp)
		R := sampleGrid(sf.RefEl(), bp.SamplesPerAxis)
		Tabulate(sf, R, gradients, nodal)
	},
}

func init() {
	rootCmd.AddCommand(TabulateCmd)
	TabulateCmd.Flags().StringP("element", "e", "segment", "reference element: point, segment, tria, quad")
	TabulateCmd.Flags().IntP("order", "n", 3, "polynomial degree of the basis")
	TabulateCmd.Flags().StringSliceP("orientations", "o", nil, "edge orientations, positive or negative per edge")
	TabulateCmd.Flags().IntP("samples", "s", 5, "samples per axis of the reference element")
	TabulateCmd.Flags().StringP("paramFile", "I", "", "YAML file of basis parameters, overrides the other flags")
	TabulateCmd.Flags().BoolP("gradients", "g", false, "print reference gradients instead of values")
	TabulateCmd.Flags().Bool("nodal", false, "print the nodal (cardinal) functions built from the hierarchic set")
}

// sampleGrid builds reference coordinates covering the element with n samples
// per axis. Triangle points keep x+y <= 1.
func sampleGrid(re refel.RefEl, n int) (R utils.Matrix) {
	if n < 2 {
		n = 2
	}
	h := 1. / float64(n-1)
	switch re {
	case refel.Point:
		return utils.Matrix{}
	case refel.Segment:
		R = utils.NewMatrix(1, n)
		for j := 0; j < n; j++ {
			R.Set(0, j, float64(j)*h)
		}
	case refel.Triangle:
		R = utils.NewMatrix(2, n*(n+1)/2)
		var c int
		for i := 0; i < n; i++ {
			for j := 0; j < n-i; j++ {
				R.Set(0, c, float64(j)*h)
				R.Set(1, c, float64(i)*h)
				c++
			}
		}
	case refel.Quad:
		R = utils.NewMatrix(2, n*n)
		var c int
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				R.Set(0, c, float64(j)*h)
				R.Set(1, c, float64(i)*h)
				c++
			}
		}
	}
	return
}

// Tabulate prints the basis evaluated at the columns of R. With nodal set, the
// hierarchic set is recombined into cardinal functions that are one at a
// single evaluation node and zero at the others.
func Tabulate(sf hpfe.ScalarShapeFunctions, R utils.Matrix, gradients, nodal bool) {
	var (
		B utils.Matrix
	)
	if gradients {
		B = sf.GradShapeFunctions(R)
	} else {
		B = sf.EvalShapeFunctions(R)
	}
	if nodal {
		V := sf.EvalShapeFunctions(sf.EvaluationNodes())
		logger.Debug("interpolation matrix", "cond", V.ConditionNumber())
		W, err := V.Inverse()
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		B = W.Mul(B)
	}
	if gradients {
		B.Print("Gradients")
	} else {
		B.Print("Values")
	}
}
