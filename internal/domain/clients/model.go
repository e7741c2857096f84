package clients

import "clinica-vet/internal/domain/pets"

// Client representa al dueño de cero o más mascotas. El id es inmutable tras
// la construcción; el email es la clave de búsqueda y es único en el almacén.
type Client struct {
	id string

	Name  string
	Phone string
	Email string

	pets []*pets.Pet
}

func New(id, name, phone, email string) *Client {
	return &Client{
		id:    id,
		Name:  name,
		Phone: phone,
		Email: email,
	}
}

func (c *Client) ID() string { return c.id }

// Pets devuelve la lista en vivo de mascotas del cliente (relación de
// propiedad exclusiva: cada mascota tiene exactamente un dueño).
func (c *Client) Pets() []*pets.Pet { return c.pets }

// AddPet engancha una mascota ya persistida a la lista en memoria.
// Lo llama el registro tras un insert exitoso o durante la carga inicial.
func (c *Client) AddPet(p *pets.Pet) {
	c.pets = append(c.pets, p)
}
