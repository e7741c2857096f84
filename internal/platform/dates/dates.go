// Package dates centraliza el formato canónico de fechas en la frontera con
// el almacén durable. En memoria las fechas son time.Time; en las tablas se
// guardan como texto YYYY-MM-DD.
package dates

import "time"

// Layout es el formato canónico de fecha (ISO 8601, solo fecha).
const Layout = "2006-01-02"

// Format serializa una fecha al formato canónico.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Parse interpreta una fecha en formato canónico.
func Parse(s string) (time.Time, error) {
	return time.Parse(Layout, s)
}

// ParseOrToday es la política de recuperación ante fechas mal guardadas:
// si el texto no parsea, se sustituye por la fecha de hoy y la carga continúa.
// Es una recuperación deliberadamente lossy; nunca se rechaza la fila.
func ParseOrToday(s string) time.Time {
	t, err := Parse(s)
	if err != nil {
		return Today()
	}
	return t
}

// Today devuelve la fecha actual truncada a medianoche UTC.
func Today() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
