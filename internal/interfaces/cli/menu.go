package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jhoicas/retail-pos/internal/application/billing"
	"github.com/jhoicas/retail-pos/internal/application/usecase"
	"github.com/jhoicas/retail-pos/internal/domain"
	"github.com/jhoicas/retail-pos/internal/domain/repository"
	"github.com/jhoicas/retail-pos/pkg/logger"
)

// Mensajes del menú. Se mantienen los textos exactos de la interfaz clásica
// de la tienda, que el personal ya conoce.
const (
	msgInvalidChoice  = "Invalid choice. Please try again."
	msgNotFound       = "Product not found."
	msgQtyPositive    = "Quantity should be greater than zero."
	msgInsufficient   = "Insufficient stock."
	msgUnexpected     = "Unexpected error. Please try again."
	msgAddInvalid     = "Invalid input. ID, price, and quantity should be numbers greater than zero."
	msgDuplicateID    = "Duplicate ID. Try again."
	msgIDQtyNumbers   = "Invalid input. ID and quantity should be numbers greater than zero."
	msgIDPositive     = "Invalid input. Product ID should be numbers greater than zero."
	msgPriceNumbers   = "Invalid input. Price should be numbers."
	msgPricePositive  = "Price should be greater than zero."
	msgBillCancelled  = "No products selected. Bill generation cancelled."
	msgEmptyCatalogue = "No products in the database."
	msgGoodbye        = "Thank you for using Retail Shop Billing System."
)

// Menu es el loop interactivo de la caja: un menú numerado por iteración,
// estrictamente secuencial, sin sesiones concurrentes.
type Menu struct {
	uc       *usecase.ProductUseCase
	products repository.ProductRepository
	txRunner billing.TxRunner
	log      *logger.Logger
	p        *prompt
	out      io.Writer
}

// NewMenu construye el menú. in/out se inyectan para poder probar el loop con
// buffers en lugar de la terminal real.
func NewMenu(
	uc *usecase.ProductUseCase,
	products repository.ProductRepository,
	txRunner billing.TxRunner,
	log *logger.Logger,
	in io.Reader,
	out io.Writer,
) *Menu {
	return &Menu{
		uc:       uc,
		products: products,
		txRunner: txRunner,
		log:      log,
		p:        newPrompt(in, out),
		out:      out,
	}
}

// Run ejecuta el loop del menú hasta que el operador elige salir o se agota
// la entrada (EOF). Ningún error de una operación es fatal: se reporta y se
// vuelve al menú.
func (m *Menu) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(m.out, "\nRetail Shop Billing System")
		fmt.Fprintln(m.out, "1. Add Product")
		fmt.Fprintln(m.out, "2. Increase Quantity")
		fmt.Fprintln(m.out, "3. Change Price")
		fmt.Fprintln(m.out, "4. Search Product")
		fmt.Fprintln(m.out, "5. Delete Product")
		fmt.Fprintln(m.out, "6. View All Products")
		fmt.Fprintln(m.out, "7. Generate Bill")
		fmt.Fprintln(m.out, "8. Exit")

		choice, err := m.p.line("Enter your choice: ")
		if err != nil {
			return nil // EOF: salir sin alharaca
		}

		switch choice {
		case "1":
			err = m.addProduct(ctx)
		case "2":
			err = m.increaseQuantity(ctx)
		case "3":
			err = m.changePrice(ctx)
		case "4":
			err = m.searchProduct(ctx)
		case "5":
			err = m.deleteProduct(ctx)
		case "6":
			err = m.viewAllProducts(ctx)
		case "7":
			err = m.generateBill(ctx)
		case "8":
			fmt.Fprintln(m.out, msgGoodbye)
			return nil
		default:
			fmt.Fprintln(m.out, msgInvalidChoice)
		}
		if err != nil {
			// Solo errores de E/S de la terminal llegan aquí.
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// addProduct da de alta un producto con ID elegido por el operador.
func (m *Menu) addProduct(ctx context.Context) error {
	id, err := m.p.int64("Enter product ID: ")
	if errors.Is(err, errInput) {
		fmt.Fprintln(m.out, msgAddInvalid)
		return nil
	}
	if err != nil {
		return err
	}
	name, err := m.p.line("Enter product name: ")
	if err != nil {
		return err
	}
	price, err := m.p.decimal("Enter product price: ")
	if errors.Is(err, errInput) {
		fmt.Fprintln(m.out, msgAddInvalid)
		return nil
	}
	if err != nil {
		return err
	}
	qty, err := m.p.int64("Enter product quantity: ")
	if errors.Is(err, errInput) {
		fmt.Fprintln(m.out, msgAddInvalid)
		return nil
	}
	if err != nil {
		return err
	}

	_, err = m.uc.Create(ctx, id, name, price, qty)
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		fmt.Fprintln(m.out, msgAddInvalid)
	case errors.Is(err, domain.ErrDuplicate):
		fmt.Fprintln(m.out, msgDuplicateID)
	case err != nil:
		m.log.Error().Err(err).Int64("product_id", id).Msg("alta de producto")
		fmt.Fprintln(m.out, msgUnexpected)
	default:
		m.log.Info().Int64("product_id", id).Str("name", name).Msg("producto creado")
		fmt.Fprintln(m.out, "Product added successfully.")
	}
	return nil
}

// increaseQuantity repone stock de un producto existente.
func (m *Menu) increaseQuantity(ctx context.Context) error {
	id, err := m.p.int64("Enter product ID: ")
	if errors.Is(err, errInput) {
		fmt.Fprintln(m.out, msgIDQtyNumbers)
		return nil
	}
	if err != nil {
		return err
	}

	if _, err := m.uc.GetByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			fmt.Fprintln(m.out, msgNotFound)
			return nil
		}
		m.log.Error().Err(err).Int64("product_id", id).Msg("consulta de producto")
		fmt.Fprintln(m.out, msgUnexpected)
		return nil
	}

	qty, err := m.p.int64("Enter quantity to increase: ")
	if errors.Is(err, errInput) {
		fmt.Fprintln(m.out, msgIDQtyNumbers)
		return nil
	}
	if err != nil {
		return err
	}

	err = m.uc.IncreaseQuantity(ctx, id, qty)
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		fmt.Fprintln(m.out, msgQtyPositive)
	case errors.Is(err, domain.ErrNotFound):
		fmt.Fprintln(m.out, msgNotFound)
	case err != nil:
		m.log.Error().Err(err).Int64("product_id", id).Msg("reposición de stock")
		fmt.Fprintln(m.out, msgUnexpected)
	default:
		fmt.Fprintln(m.out, "Quantity updated successfully.")
	}
	return nil
}

// changePrice fija un nuevo precio para un producto existente.
func (m *Menu) changePrice(ctx context.Context) error {
	id, err := m.p.int64("Enter product ID to change the price: ")
	if errors.Is(err, errInput) {
		fmt.Fprintln(m.out, msgPriceNumbers)
		return nil
	}
	if err != nil {
		return err
	}

	product, err := m.uc.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			fmt.Fprintln(m.out, msgNotFound)
			return nil
		}
		m.log.Error().Err(err).Int64("product_id", id).Msg("consulta de producto")
		fmt.Fprintln(m.out, msgUnexpected)
		return nil
	}

	price, err := m.p.decimal(fmt.Sprintf("Enter the new price for %s: ", product.Name))
	if errors.Is(err, errInput) {
		fmt.Fprintln(m.out, msgPriceNumbers)
		return nil
	}
	if err != nil {
		return err
	}

	err = m.uc.ChangePrice(ctx, id, price)
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		fmt.Fprintln(m.out, msgPricePositive)
	case errors.Is(err, domain.ErrNotFound):
		fmt.Fprintln(m.out, msgNotFound)
	case err != nil:
		m.log.Error().Err(err).Int64("product_id", id).Msg("cambio de precio")
		fmt.Fprintln(m.out, msgUnexpected)
	default:
		fmt.Fprintln(m.out, "Price updated successfully.")
	}
	return nil
}

// searchProduct busca por ID exacto o subcadena del nombre.
func (m *Menu) searchProduct(ctx context.Context) error {
	term, err := m.p.line("Enter product ID or name to search: ")
	if err != nil {
		return err
	}
	products, err := m.uc.Search(ctx, term)
	if err != nil {
		m.log.Error().Err(err).Str("term", term).Msg("búsqueda de productos")
		fmt.Fprintln(m.out, msgUnexpected)
		return nil
	}
	if len(products) == 0 {
		fmt.Fprintln(m.out, msgNotFound)
		return nil
	}
	for _, p := range products {
		fmt.Fprintln(m.out, productLine(p))
	}
	return nil
}

// deleteProduct busca coincidencias, pide el ID exacto y confirma antes de borrar.
func (m *Menu) deleteProduct(ctx context.Context) error {
	term, err := m.p.line("Enter product name to search for products to delete: ")
	if err != nil {
		return err
	}
	matches, err := m.uc.Search(ctx, term)
	if err != nil {
		m.log.Error().Err(err).Str("term", term).Msg("búsqueda para borrado")
		fmt.Fprintln(m.out, msgUnexpected)
		return nil
	}
	if len(matches) == 0 {
		fmt.Fprintln(m.out, msgNotFound)
		return nil
	}

	fmt.Fprintln(m.out, "Matching Products:")
	for _, p := range matches {
		fmt.Fprintln(m.out, productLine(p))
	}

	id, err := m.p.int64("Enter the ID of the product you want to delete: ")
	if errors.Is(err, errInput) {
		fmt.Fprintln(m.out, msgIDPositive)
		return nil
	}
	if err != nil {
		return err
	}

	// El ID tiene que estar entre las coincidencias listadas.
	var found bool
	for _, p := range matches {
		if p.ID == id {
			found = true
			break
		}
	}
	if !found {
		fmt.Fprintln(m.out, msgNotFound)
		return nil
	}

	confirm, err := m.p.line("Do you want to delete this product? (y/n): ")
	if err != nil {
		return err
	}
	switch strings.ToLower(confirm) {
	case "y":
		if err := m.uc.Delete(ctx, id); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				fmt.Fprintln(m.out, msgNotFound)
				return nil
			}
			m.log.Error().Err(err).Int64("product_id", id).Msg("borrado de producto")
			fmt.Fprintln(m.out, msgUnexpected)
			return nil
		}
		m.log.Info().Int64("product_id", id).Msg("producto eliminado")
		fmt.Fprintln(m.out, "Product deleted successfully.")
	case "n":
		fmt.Fprintln(m.out, "Deletion cancelled.")
	default:
		fmt.Fprintln(m.out, "Invalid option.")
	}
	return nil
}

// viewAllProducts lista el catálogo completo.
func (m *Menu) viewAllProducts(ctx context.Context) error {
	products, err := m.uc.List(ctx)
	if err != nil {
		m.log.Error().Err(err).Msg("listado de productos")
		fmt.Fprintln(m.out, msgUnexpected)
		return nil
	}
	if len(products) == 0 {
		fmt.Fprintln(m.out, msgEmptyCatalogue)
		return nil
	}
	for _, p := range products {
		fmt.Fprintln(m.out, productLine(p))
	}
	return nil
}

// generateBill acumula líneas contra el catálogo hasta el centinela 0 y
// imprime la factura. Los descuentos de stock se confirman línea a línea.
func (m *Menu) generateBill(ctx context.Context) error {
	session := billing.NewSession(m.products, m.txRunner)
	m.log.Debug().Str("session_id", session.ID()).Msg("sesión de facturación iniciada")

	for {
		id, err := m.p.int64("Enter product ID to add to the bill (0 to finish): ")
		if errors.Is(err, errInput) {
			fmt.Fprintln(m.out, msgIDQtyNumbers)
			continue
		}
		if err != nil {
			return err
		}
		if id < 0 {
			fmt.Fprintln(m.out, msgIDPositive)
			continue
		}
		if id == 0 {
			break
		}

		product, err := session.Lookup(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				fmt.Fprintln(m.out, msgNotFound)
				continue
			}
			m.log.Error().Err(err).Int64("product_id", id).Msg("consulta de producto en facturación")
			fmt.Fprintln(m.out, msgUnexpected)
			continue
		}

		qty, err := m.p.int64(fmt.Sprintf("Enter quantity for %s: ", product.Name))
		if errors.Is(err, errInput) {
			fmt.Fprintln(m.out, msgIDQtyNumbers)
			continue
		}
		if err != nil {
			return err
		}

		err = session.AddLine(ctx, product, qty)
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			fmt.Fprintln(m.out, msgQtyPositive)
		case errors.Is(err, domain.ErrInsufficientStock):
			fmt.Fprintln(m.out, msgInsufficient)
		case err != nil:
			m.log.Error().Err(err).
				Str("session_id", session.ID()).
				Int64("product_id", id).
				Msg("línea de facturación")
			fmt.Fprintln(m.out, msgUnexpected)
		}
	}

	invoice, err := session.Finalize()
	if err != nil {
		return err
	}
	if invoice == nil {
		fmt.Fprintln(m.out, msgBillCancelled)
		return nil
	}
	renderInvoice(m.out, invoice)
	m.log.Info().
		Str("session_id", session.ID()).
		Int("lines", len(invoice.Lines)).
		Str("total", invoice.Total.StringFixed(2)).
		Msg("factura emitida")
	return nil
}
