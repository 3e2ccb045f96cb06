package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/catalog-admin/internal/client/models"
	"github.com/dmitrijs2005/catalog-admin/internal/client/store"
)

const maxCell = 40

func categoryLabel(cats store.Categories, id string) string {
	if name := cats.Name(id); name != "" {
		return name
	}
	return id
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// renderCatalog prints the list screen: heading, error banner or table and
// the pager.
func renderCatalog(w io.Writer, c store.Catalog, cats store.Categories, hasPrev, hasNext bool) {
	switch {
	case c.SearchMode():
		fmt.Fprintf(w, "Search results for %q\n", c.SearchQuery)
	case c.SelectedCategory != "":
		fmt.Fprintf(w, "Products in %s (page %d)\n", categoryLabel(cats, c.SelectedCategory), c.CurrentPage)
	default:
		fmt.Fprintf(w, "Products (page %d)\n", c.CurrentPage)
	}

	if c.Error != "" {
		fmt.Fprintf(w, "Error: %s (type 'retry' to try again)\n", c.Error)
		return
	}
	if len(c.Products) == 0 {
		fmt.Fprintln(w, "No products found.")
	} else {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tPRICE\tCATEGORY\tSLUG\tIMAGE")
		for _, p := range c.Products {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
				p.ID,
				truncate(p.Name, maxCell),
				formatPrice(p),
				truncate(productCategory(p, cats), maxCell),
				p.Slug,
				truncate(p.CoverImage(), maxCell),
			)
		}
		_ = tw.Flush()
	}

	if c.SearchMode() {
		return
	}
	var pager []string
	if hasPrev {
		pager = append(pager, "'prev'")
	}
	if hasNext {
		pager = append(pager, "'next'")
	}
	if len(pager) > 0 {
		fmt.Fprintf(w, "Page %d: %s for more\n", c.CurrentPage, strings.Join(pager, " / "))
	}
}

func productCategory(p models.Product, cats store.Categories) string {
	if p.Category.Name != "" {
		return p.Category.Name
	}
	return categoryLabel(cats, p.Category.ID)
}

func formatPrice(p models.Product) string {
	return "$" + p.Price.StringFixed(2)
}

// renderProduct prints the detail screen.
func renderProduct(w io.Writer, p models.Product) {
	fmt.Fprintln(w, p.Name)
	fmt.Fprintln(w, strings.Repeat("=", len([]rune(p.Name))))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", p.ID)
	fmt.Fprintf(tw, "Slug:\t%s\n", p.Slug)
	fmt.Fprintf(tw, "Price:\t%s\n", formatPrice(p))
	fmt.Fprintf(tw, "Category:\t%s\n", p.Category.Name)
	if !p.CreatedAt.IsZero() {
		fmt.Fprintf(tw, "Created:\t%s\n", p.CreatedAt.Format("2006-01-02 15:04"))
	}
	if !p.UpdatedAt.IsZero() {
		fmt.Fprintf(tw, "Updated:\t%s\n", p.UpdatedAt.Format("2006-01-02 15:04"))
	}
	_ = tw.Flush()

	fmt.Fprintln(w)
	fmt.Fprintln(w, p.Description)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Images:")
	if len(p.Images) == 0 {
		fmt.Fprintf(w, "  %s\n", models.PlaceholderImage)
	}
	for _, img := range p.Images {
		fmt.Fprintf(w, "  %s\n", img)
	}
}

func renderCategories(w io.Writer, cats store.Categories) {
	if len(cats.Items) == 0 {
		fmt.Fprintln(w, "No categories.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME")
	for _, c := range cats.Items {
		fmt.Fprintf(tw, "%s\t%s\n", c.ID, c.Name)
	}
	_ = tw.Flush()
}
