package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"warehouse.GO/config"
	stockService "warehouse.GO/service/stock"
)

var (
	importFile  string
	importBatch int
)

var importCmd = &cobra.Command{
	Use:   "stock:import",
	Short: "Import stock items from CSV",
	Run: func(cmd *cobra.Command, args []string) {
		f, err := os.Open(importFile)
		if err != nil {
			fmt.Printf("Failed to open CSV: %v\n", err)
			return
		}
		defer f.Close()

		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			return
		}

		res, err := stockService.ImportCSV(db, f, importBatch)
		if err != nil {
			fmt.Printf("Import failed: %v\n", err)
			return
		}

		for _, w := range res.Warnings {
			fmt.Printf("  [warn] %s\n", w)
		}
		fmt.Printf(`
=== Import Report ===
Imported:  %d
Skipped:   %d
=====================
`, res.Imported, res.Skipped)
	},
}

func init() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "CSV file path (required)")
	importCmd.MarkFlagRequired("file")
	importCmd.Flags().IntVar(&importBatch, "batch-size", 500, "Batch size for DB operations")
	rootCmd.AddCommand(importCmd)
}
