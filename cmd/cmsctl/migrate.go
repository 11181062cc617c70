package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update every table",
	RunE: func(cmd *cobra.Command, args []string) error {
		color.Yellow("Migrating schema...")
		if _, err := openDB(); err != nil {
			return err
		}
		color.Green("Schema is up to date")
		return nil
	},
}
