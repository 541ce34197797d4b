package main

import (
	"fmt"

	"github.com/mayatech/storefront/storage"
	"github.com/spf13/cobra"
)

var seedForce bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the catalog with the default products and courses",
	Long: `Seed writes the default catalog into the data store. It is a no-op
when the store already holds a catalog, unless --force is given, in
which case the existing lists are dropped and re-seeded.`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().BoolVar(&seedForce, "force", false, "drop any existing catalog before seeding")
}

func runSeed(cmd *cobra.Command, args []string) error {
	if seedForce {
		sto, err := storage.OpenFileStore(storeDir)
		if err != nil {
			return fmt.Errorf("opening store at %s: %w", storeDir, err)
		}
		if err := sto.Delete(storage.KeyProducts); err != nil {
			return fmt.Errorf("dropping products: %w", err)
		}
		if err := sto.Delete(storage.KeyCourses); err != nil {
			return fmt.Errorf("dropping courses: %w", err)
		}
	}

	cat, err := openCatalog()
	if err != nil {
		return err
	}

	fmt.Printf("catalog ready: %d products, %d courses\n", len(cat.Products()), len(cat.Courses()))
	return nil
}
