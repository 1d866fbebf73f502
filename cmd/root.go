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
	"io/ioutil"
	"os"

	"github.com/charmbracelet/log"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hpfem/hpbasis/InputParameters"
	"github.com/hpfem/hpbasis/hpfe"
	"github.com/hpfem/hpbasis/refel"
)

var (
	cfgFile string
	verbose bool
	logger  = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
	})
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hpbasis",
	Short: "Hierarchic shape function toolkit for hp finite elements",
	Long: `
Tabulates, plots and benchmarks the hierarchic (integrated Legendre / Jacobi)
scalar shape function bases on the reference point, segment, triangle and
quadrilateral,

hpbasis tabulate -e tria -n 4`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.hpbasis.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug output")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		// Search config in home directory with name ".hpbasis" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".hpbasis")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		logger.Debug("using config file", "path", viper.ConfigFileUsed())
	}
}

// processParameters assembles the basis parameters from a YAML file when one
// is given, otherwise from the per-command flags.
func processParameters(cmd *cobra.Command) (bp *InputParameters.BasisParameters) {
	var (
		err error
	)
	bp = &InputParameters.BasisParameters{}
	paramFile, _ := cmd.Flags().GetString("paramFile")
	if len(paramFile) != 0 {
		var data []byte
		if data, err = ioutil.ReadFile(paramFile); err != nil {
			panic(err)
		}
		if err = bp.Parse(data); err != nil {
			panic(err)
		}
		return
	}
	bp.ElementType, _ = cmd.Flags().GetString("element")
	bp.PolynomialOrder, _ = cmd.Flags().GetInt("order")
	bp.EdgeOrientations, _ = cmd.Flags().GetStringSlice("orientations")
	return
}

// buildBasis validates the parameters and constructs the shape function set.
func buildBasis(bp *InputParameters.BasisParameters) (sf hpfe.ScalarShapeFunctions) {
	var (
		err error
		re  refel.RefEl
	)
	if re, err = bp.RefEl(); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	orient, err := bp.Orientations()
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	logger.Debug("constructing basis", "element", re, "order", bp.PolynomialOrder)
	sf = hpfe.New(re, bp.PolynomialOrder, orient)
	return
}
