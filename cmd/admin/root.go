package main

import (
	"fmt"
	"os"

	"github.com/mayatech/storefront/core/catalog"
	"github.com/mayatech/storefront/core/ids"
	"github.com/mayatech/storefront/storage"
	"github.com/spf13/cobra"
)

var storeDir string

var rootCmd = &cobra.Command{
	Use:   "admin",
	Short: "Maintenance tooling for the storefront data store",
	Long: `admin manages the storefront's on-disk data store directly,
without going through the HTTP API. It can seed the catalog,
list its contents and add products or courses.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storeDir, "store-dir", "./data", "directory holding the JSON data store")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openCatalog opens the store directory and loads (seeding if empty)
// the catalog, the same way the server does on boot.
func openCatalog() (*catalog.Store, error) {
	sto, err := storage.OpenFileStore(storeDir)
	if err != nil {
		return nil, fmt.Errorf("opening store at %s: %w", storeDir, err)
	}

	cat := catalog.NewStore(sto, ids.NewGenerator())
	if err := cat.Load(); err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return cat, nil
}
