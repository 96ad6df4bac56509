package topic

import "errors"

// ID identifies one of the fixed study topics.
type ID string

const (
	Evolucion     ID = "evolucion"
	Abiogenesis   ID = "abiogenesis"
	VanHelmont    ID = "van_helmont"
	Pasteur       ID = "pasteur"
	HaldaneOparin ID = "haldane_oparin"
	UreyMiller    ID = "urey_miller"
	Panspermia    ID = "panspermia"
)

var ErrUnknownTopic = errors.New("unknown topic")

type Topic struct {
	ID          ID
	Title       string
	Description string
}

var catalog = []Topic{
	{ID: Evolucion, Title: "Evolución", Description: "El cambio en las características de las poblaciones biológicas a través de generaciones."},
	{ID: Abiogenesis, Title: "Abiogénesis", Description: "El origen natural de la vida a partir de materia inerte."},
	{ID: VanHelmont, Title: "Van Helmont", Description: "La teoría de la generación espontánea y experimentos iniciales."},
	{ID: Pasteur, Title: "Louis Pasteur", Description: "Refutación definitiva de la generación espontánea. Biogénesis."},
	{ID: HaldaneOparin, Title: "Haldane y Oparín", Description: "Teoría físico-química del origen de la vida en la Tierra primitiva."},
	{ID: UreyMiller, Title: "Urey y Miller", Description: "Experimento que simuló las condiciones de la Tierra primitiva."},
	{ID: Panspermia, Title: "Panspermia", Description: "Hipótesis de que la vida existe en todo el Universo."},
}

// Catalog returns every topic in display order. The returned slice is a copy.
func Catalog() []Topic {
	out := make([]Topic, len(catalog))
	copy(out, catalog)
	return out
}

func Lookup(id ID) (Topic, bool) {
	for _, t := range catalog {
		if t.ID == id {
			return t, true
		}
	}
	return Topic{}, false
}

// Parse validates a raw topic key.
func Parse(raw string) (ID, error) {
	id := ID(raw)
	if _, ok := Lookup(id); !ok {
		return "", ErrUnknownTopic
	}
	return id, nil
}
