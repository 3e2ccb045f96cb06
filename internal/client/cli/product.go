package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/catalog-admin/internal/client/services"
	"github.com/dmitrijs2005/catalog-admin/internal/client/validation"
)

// Show prints the detail screen for slug.
func (a *App) Show(ctx context.Context, slug string) error {
	if !a.requireAuth(ctx) {
		return nil
	}

	p, err := a.catalog.LoadProduct(ctx, slug)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s (type 'show %s' to try again)\n", a.store.Snapshot().Catalog.DetailError, slug)
		return err
	}
	renderProduct(a.out, *p)
	return nil
}

// Create runs the new product form. On success the list is shown with the
// product on top.
func (a *App) Create(ctx context.Context) error {
	if !a.requireAuth(ctx) {
		return nil
	}

	fmt.Fprintln(a.out, "New product")
	form, err := a.readForm(ctx, validation.ProductForm{})
	if err != nil {
		return err
	}

	p, err := a.catalog.Create(ctx, form)
	if err != nil {
		a.reportFormError(err, services.MsgCreateProduct)
		return err
	}

	fmt.Fprintf(a.out, "Product %q created.\n", p.Name)
	a.renderList()
	return nil
}

// Edit loads product id into the form; pressing Enter keeps a value. On
// success the product's detail screen is shown.
func (a *App) Edit(ctx context.Context, id string) error {
	if !a.requireAuth(ctx) {
		return nil
	}

	current, err := a.catalog.LoadForEdit(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", a.store.Snapshot().Catalog.DetailError)
		return err
	}

	fmt.Fprintf(a.out, "Edit product %s\n", current.Name)
	form, err := a.readForm(ctx, validation.FormFromProduct(*current))
	if err != nil {
		return err
	}

	p, err := a.catalog.Update(ctx, id, form)
	if err != nil {
		a.reportFormError(err, services.MsgUpdateProduct)
		return err
	}

	fmt.Fprintf(a.out, "Product %q updated.\n", p.Name)
	renderProduct(a.out, *p)
	return nil
}

// Delete asks for confirmation and removes the product. A failure is shown
// as an alert the user has to acknowledge.
func (a *App) Delete(ctx context.Context, id string) error {
	if !a.requireAuth(ctx) {
		return nil
	}

	name := id
	c := a.store.Snapshot().Catalog
	if i := c.FindProduct(id); i >= 0 {
		name = c.Products[i].Name
	}

	ok, err := confirm(a.reader, fmt.Sprintf("Are you sure you want to delete %q? This action cannot be undone.", name), a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.catalog.Delete(ctx, id); err != nil {
		waitEnter(a.reader, services.UserMessage(err, services.MsgDeleteProduct), a.out)
		return err
	}

	fmt.Fprintf(a.out, "Product %q deleted.\n", name)
	a.renderList()
	return nil
}

// readForm prompts for every product field, offering cur as defaults.
func (a *App) readForm(ctx context.Context, cur validation.ProductForm) (validation.ProductForm, error) {
	var (
		form validation.ProductForm
		err  error
	)

	if form.Name, err = getTextWithDefault(a.reader, "Name", cur.Name, a.out); err != nil {
		return form, err
	}
	if form.Description, err = getTextWithDefault(a.reader, "Description", cur.Description, a.out); err != nil {
		return form, err
	}
	if form.Price, err = getTextWithDefault(a.reader, "Price", cur.Price, a.out); err != nil {
		return form, err
	}

	if err := a.categories.Load(ctx, false); err == nil {
		renderCategories(a.out, a.store.Snapshot().Categories)
	}
	if form.CategoryID, err = getTextWithDefault(a.reader, "Category ID", cur.CategoryID, a.out); err != nil {
		return form, err
	}

	prompt := "Image URLs, one per line"
	if imgs := validation.NonBlank(cur.Images); len(imgs) > 0 {
		prompt = fmt.Sprintf("Image URLs, one per line (empty keeps %d current)", len(imgs))
	}
	images, err := getLines(a.reader, prompt, a.out)
	if err != nil {
		return form, err
	}
	if len(images) == 0 {
		images = cur.Images
	}
	form.Images = images

	return form, nil
}

func (a *App) reportFormError(err error, fallback string) {
	var fe validation.FieldErrors
	if errors.As(err, &fe) {
		fmt.Fprintln(a.out, "Please fix the following:")
		for _, field := range []string{
			validation.FieldName,
			validation.FieldDescription,
			validation.FieldPrice,
			validation.FieldCategory,
			validation.FieldImages,
		} {
			if msg, ok := fe[field]; ok {
				fmt.Fprintf(a.out, "  %s: %s\n", field, msg)
			}
		}
		return
	}
	fmt.Fprintln(a.out, "Error:", services.UserMessage(err, fallback))
}
