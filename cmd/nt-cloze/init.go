package main

import (
	"fmt"
	"os"

	"github.com/julien-sobczak/the-clozewriter/internal/core"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Init a new notebook",
	Long:  `Set up local directory as the root of a new notebook.`,
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to read current working directory: %v\n", err)
			os.Exit(1)
		}
		config, err := core.InitConfigFromDirectory(cwd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error while initializing configuration: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Initialized empty notebook in %s\n", config.RootDirectory)
	},
}
