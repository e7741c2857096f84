package pets

import "time"

// Pet representa una mascota registrada en la clínica. El id y el clientID
// son inmutables tras la construcción: la UI puede leer y editar los campos
// de presentación, pero nunca tocar identidad ni clave foránea.
type Pet struct {
	id       string
	clientID string

	Name      string
	Species   string
	Breed     string
	BirthDate time.Time

	history History
}

// History es el historial médico de una mascota: cuatro registros ordenados.
// Se mantiene solo en memoria; el esquema durable no tiene tabla de historial
// (hueco documentado, no una contradicción).
type History struct {
	Vaccinations []VaccinationEntry
	Weights      []WeightEntry
	Observations []NoteEntry
	Treatments   []NoteEntry
}

// VaccinationEntry es una vacuna aplicada en una fecha.
type VaccinationEntry struct {
	Vaccine string
	Date    time.Time
}

// WeightEntry es una medición de peso en kilos.
type WeightEntry struct {
	Kilos float64
	Date  time.Time
}

// NoteEntry es una anotación de texto libre con fecha (observaciones y
// tratamientos comparten forma).
type NoteEntry struct {
	Note string
	Date time.Time
}

// New construye una mascota ligada a su cliente dueño. Se guarda solo el id
// del cliente, no un puntero: la vuelta Pet -> Cliente es clave foránea pura,
// igual que en el esquema durable, y así no hay ciclo de referencias.
func New(id, clientID, name, species, breed string, birthDate time.Time) *Pet {
	return &Pet{
		id:        id,
		clientID:  clientID,
		Name:      name,
		Species:   species,
		Breed:     breed,
		BirthDate: birthDate,
	}
}

func (p *Pet) ID() string       { return p.id }
func (p *Pet) ClientID() string { return p.clientID }

// History expone el historial en vivo. Contrato laxo heredado del diseño
// original: quien llama puede leer los registros directamente, pero los
// appends deberían ir por los métodos del registro.
func (p *Pet) History() *History { return &p.history }

func (p *Pet) AddVaccination(vaccine string, date time.Time) {
	p.history.Vaccinations = append(p.history.Vaccinations, VaccinationEntry{Vaccine: vaccine, Date: date})
}

func (p *Pet) RecordWeight(kilos float64, date time.Time) {
	p.history.Weights = append(p.history.Weights, WeightEntry{Kilos: kilos, Date: date})
}

func (p *Pet) AddObservation(note string, date time.Time) {
	p.history.Observations = append(p.history.Observations, NoteEntry{Note: note, Date: date})
}

func (p *Pet) AddTreatment(note string, date time.Time) {
	p.history.Treatments = append(p.history.Treatments, NoteEntry{Note: note, Date: date})
}
