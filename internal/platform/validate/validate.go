// Package validate reúne las validaciones de forma que la capa de UI aplica
// antes de llamar al registro. El registro no las re-chequea.
package validate

import "strings"

// IsValidEmail comprueba el formato básico de un email: contiene "@" y ".".
// Es deliberadamente laxo; la unicidad real la garantiza el almacén.
func IsValidEmail(email string) bool {
	return strings.Contains(email, "@") && strings.Contains(email, ".")
}

// FormatName normaliza un nombre: recorta espacios y pasa a formato Título.
func FormatName(name string) string {
	fields := strings.Fields(name)
	for i, f := range fields {
		r := []rune(strings.ToLower(f))
		if len(r) > 0 {
			r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		}
		fields[i] = string(r)
	}
	return strings.Join(fields, " ")
}
