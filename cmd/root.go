/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/seamark/divelog/cmd/dive"
	"github.com/seamark/divelog/cmd/journal"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "divelog",
	Short: "Log dives and view synthesized depth profiles",
	Long: `Keeps a journal of your dives. Dives entered with only summary
statistics (max depth, average depth, duration) get a plausible depth
profile synthesized for them, rendered in the left pane.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := journal.NewFileService(viper.GetString("journal.dir"))
		if err != nil {
			return err
		}
		p := tea.NewProgram(initialModel(svc, knownDevices()))

		_, err = p.Run()

		return err
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.divelog.yaml)")
}

// knownDevices loads the dive computers listed in the config file, e.g.
//
//	devices:
//	  - model: Perdix 2
//	    deviceid: 0xdeadbeef
//	    serial: "12345"
//	    firmware: v1.2
func knownDevices() []dive.Device {
	var devices []dive.Device
	if err := viper.UnmarshalKey("devices", &devices); err != nil {
		fmt.Fprintln(os.Stderr, "Ignoring malformed devices config:", err)
		return nil
	}
	return devices
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".divelog" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".divelog")

		// Provide default journal directory (~/.divelog/journal)
		viper.SetDefault("journal.dir", filepath.Join(home, ".divelog", "journal"))
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
