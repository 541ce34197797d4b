package main

import (
	"fmt"
	"strings"

	"github.com/mayatech/storefront/core/catalog"
	"github.com/mayatech/storefront/validate"
	"github.com/spf13/cobra"
)

var addProduct catalog.ProductNew
var addProductCondition string

var addProductCmd = &cobra.Command{
	Use:   "add-product",
	Short: "Add a product to the catalog",
	RunE:  runAddProduct,
}

var (
	addCourse           catalog.CourseNew
	addCourseDifficulty string
	addCourseModules    []string
)

var addCourseCmd = &cobra.Command{
	Use:   "add-course",
	Short: "Add a course to the catalog",
	Long: `Add a course to the catalog. Modules are given as repeated
--module flags in "Title:Content" form.`,
	RunE: runAddCourse,
}

func init() {
	rootCmd.AddCommand(addProductCmd)
	rootCmd.AddCommand(addCourseCmd)

	f := addProductCmd.Flags()
	f.StringVar(&addProduct.Name, "name", "", "product name")
	f.StringVar(&addProduct.Description, "description", "", "product description")
	f.Float64Var(&addProduct.Price, "price", 0, "unit price")
	f.StringVar(&addProduct.ImageURL, "image-url", "", "image URL")
	f.StringVar(&addProduct.Category, "category", "", "product category")
	f.IntVar(&addProduct.Stock, "stock", 0, "units in stock")
	f.Float64Var(&addProduct.Rating, "rating", 0, "average rating, 0 to 5")
	f.IntVar(&addProduct.Reviews, "reviews", 0, "review count")
	f.StringVar(&addProductCondition, "condition", "New", "New, Used or Refurbished")

	g := addCourseCmd.Flags()
	g.StringVar(&addCourse.Title, "title", "", "course title")
	g.StringVar(&addCourse.ShortDescription, "short-description", "", "one-line description")
	g.StringVar(&addCourse.LongDescription, "long-description", "", "full description")
	g.StringVar(&addCourse.ImageURL, "image-url", "", "image URL")
	g.StringVar(&addCourse.Instructor, "instructor", "", "instructor name")
	g.StringVar(&addCourse.Duration, "duration", "", "human-readable duration")
	g.Float64Var(&addCourse.Price, "price", 0, "course price")
	g.StringVar(&addCourseDifficulty, "difficulty", "Beginner", "Beginner, Intermediate or Advanced")
	g.StringArrayVar(&addCourseModules, "module", nil, `module in "Title:Content" form, repeatable`)
}

func runAddProduct(cmd *cobra.Command, args []string) error {
	addProduct.Condition = catalog.Condition(addProductCondition)

	if err := validate.Check(addProduct); err != nil {
		return err
	}

	cat, err := openCatalog()
	if err != nil {
		return err
	}

	p, err := cat.AddProduct(addProduct)
	if err != nil {
		return err
	}

	fmt.Printf("added product %s: %s\n", p.ID, p.Name)
	return nil
}

func runAddCourse(cmd *cobra.Command, args []string) error {
	addCourse.Difficulty = catalog.Difficulty(addCourseDifficulty)

	for _, m := range addCourseModules {
		title, content, ok := strings.Cut(m, ":")
		if !ok {
			return fmt.Errorf("malformed module %q, want \"Title:Content\"", m)
		}
		addCourse.Modules = append(addCourse.Modules, catalog.Module{Title: title, Content: content})
	}

	if err := validate.Check(addCourse); err != nil {
		return err
	}

	cat, err := openCatalog()
	if err != nil {
		return err
	}

	c, err := cat.AddCourse(addCourse)
	if err != nil {
		return err
	}

	fmt.Printf("added course %s: %s\n", c.ID, c.Title)
	return nil
}
