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

	"github.com/spf13/cobra"

	"github.com/hpfem/hpbasis/hpfe"
)

// NodesCmd represents the nodes command
var NodesCmd = &cobra.Command{
	Use:   "nodes",
	Short: "Print the evaluation nodes and dof layout of a basis",
	Long: `
Prints the interpolation nodes backing nodal-to-modal conversion together
with the split of shape functions over vertices, edges and the interior,

hpbasis nodes -e tria -n 5`,
	Run: func(cmd *cobra.Command, args []string) {
		bp := processParameters(cmd)
		if bp.PolynomialOrder == 0 {
			bp.PolynomialOrder, _ = cmd.Flags().GetInt("order")
		}
		sf := buildBasis(bp)
		dc := hpfe.DofLayout(sf.RefEl(), sf.Degree())
		fmt.Printf("%v of degree %d\n", sf.RefEl(), sf.Degree())
		fmt.Printf("%d\t\t= shape functions\n", dc.Total)
		fmt.Printf("%d\t\t= per vertex\n", dc.PerNode)
		fmt.Printf("%d\t\t= per edge\n", dc.PerEdge)
		fmt.Printf("%d\t\t= interior\n", dc.Interior)
		nodes := sf.EvaluationNodes()
		if nodes.IsEmpty() {
			fmt.Printf("single evaluation node at the vertex itself\n")
			return
		}
		nodes.Print("EvaluationNodes")
	},
}

func init() {
	rootCmd.AddCommand(NodesCmd)
	NodesCmd.Flags().StringP("element", "e", "segment", "reference element: point, segment, tria, quad")
	NodesCmd.Flags().IntP("order", "n", 3, "polynomial degree of the basis")
	NodesCmd.Flags().StringSliceP("orientations", "o", nil, "edge orientations, positive or negative per edge")
	NodesCmd.Flags().StringP("paramFile", "I", "", "YAML file of basis parameters, overrides the other flags")
}
