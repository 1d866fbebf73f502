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
	"math"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hpfem/hpbasis/hpfe"
	"github.com/hpfem/hpbasis/refel"
	"github.com/hpfem/hpbasis/utils"
)

// PlotCmd represents the plot command
var PlotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Plot the segment shape functions in an interactive chart",
	Long: `
Draws the hierarchic segment shape functions over [0,1], one line series per
shape function,

hpbasis plot -n 6 -f 2,3,4`,
	Run: func(cmd *cobra.Command, args []string) {
		bp := processParameters(cmd)
		if bp.PolynomialOrder == 0 {
			bp.PolynomialOrder, _ = cmd.Flags().GetInt("order")
		}
		if bp.SamplesPerAxis == 0 {
			bp.SamplesPerAxis, _ = cmd.Flags().GetInt("samples")
		}
		if len(bp.Functions) == 0 {
			bp.Functions, _ = cmd.Flags().GetIntSlice("functions")
		}
		sf := buildBasis(bp)
		if sf.RefEl() != refel.Segment {
			fmt.Printf("error: plotting is only available for the segment basis\n")
			os.Exit(1)
		}
		dr, _ := cmd.Flags().GetInt("delay")
		PlotShapeFunctions(sf, bp.SamplesPerAxis, bp.Functions,
			time.Duration(dr)*time.Millisecond)
	},
}

func init() {
	rootCmd.AddCommand(PlotCmd)
	PlotCmd.Flags().StringP("element", "e", "segment", "reference element, only segment can be plotted")
	PlotCmd.Flags().IntP("order", "n", 6, "polynomial degree of the basis")
	PlotCmd.Flags().StringSliceP("orientations", "o", nil, "edge orientations, unused for the segment")
	PlotCmd.Flags().IntP("samples", "s", 101, "samples along the segment")
	PlotCmd.Flags().IntSliceP("functions", "f", nil, "shape function indices to draw, empty draws all")
	PlotCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay between line series")
	PlotCmd.Flags().StringP("paramFile", "I", "", "YAML file of basis parameters, overrides the other flags")
}

// PlotShapeFunctions draws the selected shape functions and leaves the chart
// up until the process is interrupted.
func PlotShapeFunctions(sf hpfe.ScalarShapeFunctions, samples int, fns []int, graphDelay time.Duration) {
	R := sampleGrid(refel.Segment, samples)
	B := sf.EvalShapeFunctions(R)
	if len(fns) == 0 {
		for i := 0; i < sf.NumShapeFunctions(); i++ {
			fns = append(fns, i)
		}
	}
	lc := utils.NewLineChart(1920, 1280, 0, 1, B.Min()-0.1, B.Max()+0.1)
	for k, i := range fns {
		if i < 0 || i >= sf.NumShapeFunctions() {
			fmt.Printf("error: no shape function %d in a basis of %d\n", i, sf.NumShapeFunctions())
			os.Exit(1)
		}
		color := -1 + 2*float64(k)/math.Max(1, float64(len(fns)-1))
		lc.Plot(graphDelay, R.Row(0).DataP, B.Row(i).DataP, color, fmt.Sprintf("phi[%d]", i))
	}
	logger.Info("chart is up, close with Ctrl-C", "series", len(fns))
	time.Sleep(1000 * time.Second)
}
