package cli

import (
	"fmt"
	"io"

	"github.com/jhoicas/retail-pos/internal/application/billing"
	"github.com/jhoicas/retail-pos/internal/domain/entity"
)

// productLine formatea un producto para los listados.
func productLine(p *entity.Product) string {
	return fmt.Sprintf("ID: %d, Name: %s, Price: %s, Quantity: %d",
		p.ID, p.Name, p.Price.StringFixed(2), p.Quantity)
}

// renderInvoice imprime la factura: una línea por producto en orden de primera
// inserción y el total al final, todo con dos decimales.
func renderInvoice(w io.Writer, inv *billing.Invoice) {
	fmt.Fprintln(w, "\n************ Invoice *************")
	for _, line := range inv.Lines {
		fmt.Fprintf(w, "%s @ %s x%d = %s\n",
			line.Name, line.UnitPrice.StringFixed(2), line.Quantity, line.Subtotal().StringFixed(2))
	}
	fmt.Fprintf(w, "Total Price: %s\n", inv.Total.StringFixed(2))
	fmt.Fprintln(w, "**********************************")
}
