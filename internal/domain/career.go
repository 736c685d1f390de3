package domain

// Career is a single entry in the catalog. Careers are defined once at
// startup and never mutated.
type Career struct {
	ID          CareerID `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
}

// Category groups careers under a heading. Careers keep their listing order.
type Category struct {
	ID      CategoryID `json:"id" yaml:"id"`
	Title   string     `json:"title" yaml:"title"`
	Careers []Career   `json:"careers" yaml:"careers"`
}
