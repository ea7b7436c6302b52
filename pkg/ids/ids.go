// Package ids genera los identificadores cortos de registros (productos, vendas, danos).
package ids

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Length largo de los ids cortos.
const Length = 9

// New devuelve 9 caracteres hexadecimales en mayúscula tomados de un UUID v4.
func New() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:Length])
}

// Sale id de venta: "S-" + id corto.
func Sale() string {
	return "S-" + New()
}

// CashEntry id de movimiento de caixa: "cf-" + milisegundos Unix del instante dado.
func CashEntry(at time.Time) string {
	return "cf-" + strconv.FormatInt(at.UnixMilli(), 10)
}

// Suffix devuelve los últimos n caracteres de id (o id completo si es más corto).
func Suffix(id string, n int) string {
	if len(id) <= n {
		return id
	}
	return id[len(id)-n:]
}
