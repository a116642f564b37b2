package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// errInput marca entrada no numérica donde se esperaba un número. Se reporta
// localmente y se vuelve a preguntar; nunca aborta la operación en curso.
var errInput = errors.New("entrada no numérica")

// prompt lee respuestas del operador línea a línea. Los captions se escriben
// en out (stdout) para no mezclarse con el log.
type prompt struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompt(in io.Reader, out io.Writer) *prompt {
	return &prompt{in: bufio.NewReader(in), out: out}
}

// line muestra el caption y devuelve la línea sin espacios extremos.
// Un error aquí es de E/S (p.ej. EOF), no de formato.
func (p *prompt) line(caption string) (string, error) {
	fmt.Fprint(p.out, caption)
	text, err := p.in.ReadString('\n')
	if err != nil && text == "" {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// int64 lee un entero. Entrada no numérica -> errInput.
func (p *prompt) int64(caption string) (int64, error) {
	text, err := p.line(caption)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, errInput
	}
	return n, nil
}

// decimal lee un monto. Entrada no numérica -> errInput.
func (p *prompt) decimal(caption string) (decimal.Decimal, error) {
	text, err := p.line(caption)
	if err != nil {
		return decimal.Zero, err
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, errInput
	}
	return d, nil
}
