package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listProductsCmd = &cobra.Command{
	Use:   "list-products",
	Short: "Print the products in the catalog",
	RunE:  runListProducts,
}

var listCoursesCmd = &cobra.Command{
	Use:   "list-courses",
	Short: "Print the courses in the catalog",
	RunE:  runListCourses,
}

func init() {
	rootCmd.AddCommand(listProductsCmd)
	rootCmd.AddCommand(listCoursesCmd)
}

func runListProducts(cmd *cobra.Command, args []string) error {
	cat, err := openCatalog()
	if err != nil {
		return err
	}

	for _, p := range cat.Products() {
		fmt.Printf("%-6s %-35s %8.2f  %-12s stock=%d\n", p.ID, p.Name, p.Price, p.Category, p.Stock)
	}
	return nil
}

func runListCourses(cmd *cobra.Command, args []string) error {
	cat, err := openCatalog()
	if err != nil {
		return err
	}

	for _, c := range cat.Courses() {
		fmt.Printf("%-6s %-40s %8.2f  %-12s %d modules\n", c.ID, c.Title, c.Price, c.Difficulty, len(c.Modules))
	}
	return nil
}
