package cli_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retail-pos/internal/application/usecase"
	"github.com/jhoicas/retail-pos/internal/domain/entity"
	"github.com/jhoicas/retail-pos/internal/infrastructure/memory"
	"github.com/jhoicas/retail-pos/internal/interfaces/cli"
	"github.com/jhoicas/retail-pos/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test: el menú corre contra repos en memoria con entrada scripteada
// ──────────────────────────────────────────────────────────────────────────────

type menuFixture struct {
	repo *memory.ProductRepo
	out  *bytes.Buffer
}

// runMenu ejecuta el loop del menú con la entrada dada (el script debe
// terminar en "8\n" o dejar que el EOF cierre el loop) y productos sembrados.
func runMenu(t *testing.T, input string, products ...entity.Product) *menuFixture {
	t.Helper()

	repo := memory.NewProductRepository()
	movements := memory.NewStockMovementRepository()
	for i := range products {
		require.NoError(t, repo.Create(context.Background(), &products[i]))
	}
	txRunner := memory.NewTxRunner(repo, movements)
	uc := usecase.NewProductUseCase(repo, txRunner)
	log := logger.New(logger.Config{Env: "development", Level: "error"})

	var out bytes.Buffer
	menu := cli.NewMenu(uc, repo, txRunner, log, strings.NewReader(input), &out)
	require.NoError(t, menu.Run(context.Background()))

	return &menuFixture{repo: repo, out: &out}
}

func pen() entity.Product {
	return entity.Product{ID: 1, Name: "Pen", Price: decimal.RequireFromString("10.00"), Quantity: 5}
}

// ──────────────────────────────────────────────────────────────────────────────
// Generate Bill (opción 7)
// ──────────────────────────────────────────────────────────────────────────────

// Escenario de referencia completo por la terminal: tres altas del mismo
// producto, la última rechazada por stock, centinela 0 y factura final.
func TestMenu_GenerateBill_EscenarioPen(t *testing.T) {
	script := strings.Join([]string{
		"7", // Generate Bill
		"1", "3", // Pen x3 -> stock 2
		"1", "2", // Pen x2 -> stock 0
		"1", "1", // rechazado: Insufficient stock.
		"0", // centinela
		"8", // Exit
	}, "\n") + "\n"

	f := runMenu(t, script, pen())
	out := f.out.String()

	assert.Contains(t, out, "Insufficient stock.")
	assert.Contains(t, out, "Pen @ 10.00 x5 = 50.00")
	assert.Contains(t, out, "Total Price: 50.00")

	p, err := f.repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.EqualValues(t, 0, p.Quantity, "el stock debe quedar descontado")
}

// Centinela 0 sin líneas: se cancela y no se imprime factura.
func TestMenu_GenerateBill_SinLineasCancela(t *testing.T) {
	f := runMenu(t, "7\n0\n8\n", pen())
	out := f.out.String()

	assert.Contains(t, out, "No products selected. Bill generation cancelled.")
	assert.NotContains(t, out, "Invoice")
	assert.NotContains(t, out, "Total Price:")
}

// Entradas inválidas dentro del loop de facturación: se reportan y se vuelve
// a preguntar sin abortar la sesión ni revertir descuentos previos.
func TestMenu_GenerateBill_EntradasInvalidasReintentan(t *testing.T) {
	script := strings.Join([]string{
		"7",
		"1", "2", // Pen x2 aceptado
		"abc",      // no numérico
		"-5",       // negativo
		"99",       // inexistente
		"1", "xyz", // cantidad no numérica
		"1", "0", // cantidad no positiva
		"0",
		"8",
	}, "\n") + "\n"

	f := runMenu(t, script, pen())
	out := f.out.String()

	assert.Contains(t, out, "Invalid input. ID and quantity should be numbers greater than zero.")
	assert.Contains(t, out, "Invalid input. Product ID should be numbers greater than zero.")
	assert.Contains(t, out, "Product not found.")
	assert.Contains(t, out, "Quantity should be greater than zero.")
	assert.Contains(t, out, "Pen @ 10.00 x2 = 20.00")

	p, _ := f.repo.GetByID(context.Background(), 1)
	assert.EqualValues(t, 3, p.Quantity, "solo la línea aceptada descuenta stock")
}

// ──────────────────────────────────────────────────────────────────────────────
// Add Product (opción 1)
// ──────────────────────────────────────────────────────────────────────────────

func TestMenu_AddProduct_AltaExitosa(t *testing.T) {
	f := runMenu(t, "1\n5\nMarker\n18.75\n40\n8\n")
	assert.Contains(t, f.out.String(), "Product added successfully.")

	p, err := f.repo.GetByID(context.Background(), 5)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Marker", p.Name)
	assert.Equal(t, "18.75", p.Price.StringFixed(2))
	assert.EqualValues(t, 40, p.Quantity)
}

func TestMenu_AddProduct_EntradaInvalidaYDuplicado(t *testing.T) {
	// ID no numérico aborta el alta; un segundo alta con el mismo ID reporta duplicado.
	script := "1\nabc\n1\n1\nPen\n10.00\n5\n1\n1\nOtro\n2.00\n3\n8\n"
	f := runMenu(t, script)
	out := f.out.String()

	assert.Contains(t, out, "Invalid input. ID, price, and quantity should be numbers greater than zero.")
	assert.Contains(t, out, "Product added successfully.")
	assert.Contains(t, out, "Duplicate ID. Try again.")

	p, _ := f.repo.GetByID(context.Background(), 1)
	assert.Equal(t, "Pen", p.Name, "el duplicado no debe pisar el registro original")
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete Product (opción 5)
// ──────────────────────────────────────────────────────────────────────────────

func TestMenu_DeleteProduct_ConfirmacionYCancelacion(t *testing.T) {
	// Sin coincidencias -> Product not found, sin más prompts.
	f := runMenu(t, "5\nXYZ\n8\n", pen())
	assert.Contains(t, f.out.String(), "Product not found.")

	// Confirmación "n" no borra.
	f = runMenu(t, "5\nPen\n1\nn\n8\n", pen())
	assert.Contains(t, f.out.String(), "Deletion cancelled.")
	p, _ := f.repo.GetByID(context.Background(), 1)
	assert.NotNil(t, p)

	// Respuesta desconocida -> Invalid option, no borra.
	f = runMenu(t, "5\nPen\n1\nquizás\n8\n", pen())
	assert.Contains(t, f.out.String(), "Invalid option.")
	p, _ = f.repo.GetByID(context.Background(), 1)
	assert.NotNil(t, p)

	// Confirmación "y" borra.
	f = runMenu(t, "5\nPen\n1\ny\n8\n", pen())
	assert.Contains(t, f.out.String(), "Product deleted successfully.")
	p, _ = f.repo.GetByID(context.Background(), 1)
	assert.Nil(t, p)
}

func TestMenu_DeleteProduct_IDFueraDeCoincidencias(t *testing.T) {
	f := runMenu(t, "5\nPen\n42\n8\n", pen())
	assert.Contains(t, f.out.String(), "Matching Products:")
	assert.Contains(t, f.out.String(), "Product not found.")

	p, _ := f.repo.GetByID(context.Background(), 1)
	assert.NotNil(t, p, "no debe borrarse nada")
}

// ──────────────────────────────────────────────────────────────────────────────
// Resto del menú
// ──────────────────────────────────────────────────────────────────────────────

func TestMenu_OpcionInvalidaReintenta(t *testing.T) {
	f := runMenu(t, "9\n8\n")
	assert.Contains(t, f.out.String(), "Invalid choice. Please try again.")
	assert.Contains(t, f.out.String(), "Thank you for using Retail Shop Billing System.")
}

func TestMenu_ViewAll_CatalogoVacio(t *testing.T) {
	f := runMenu(t, "6\n8\n")
	assert.Contains(t, f.out.String(), "No products in the database.")
}

func TestMenu_SearchYViewAll_Listan(t *testing.T) {
	notebook := entity.Product{ID: 2, Name: "Notebook", Price: decimal.RequireFromString("45.50"), Quantity: 30}
	f := runMenu(t, "4\nPen\n6\n8\n", pen(), notebook)
	out := f.out.String()

	assert.Contains(t, out, "ID: 1, Name: Pen, Price: 10.00, Quantity: 5")
	assert.Contains(t, out, "ID: 2, Name: Notebook, Price: 45.50, Quantity: 30")
}

func TestMenu_IncreaseQuantityYChangePrice(t *testing.T) {
	script := strings.Join([]string{
		"2", "1", "10", // +10 al stock de Pen
		"3", "1", "12.50", // nuevo precio
		"3", "1", "0", // precio no positivo rechazado
		"8",
	}, "\n") + "\n"
	f := runMenu(t, script, pen())
	out := f.out.String()

	assert.Contains(t, out, "Quantity updated successfully.")
	assert.Contains(t, out, "Price updated successfully.")
	assert.Contains(t, out, "Price should be greater than zero.")

	p, _ := f.repo.GetByID(context.Background(), 1)
	assert.EqualValues(t, 15, p.Quantity)
	assert.Equal(t, "12.50", p.Price.StringFixed(2))
}
