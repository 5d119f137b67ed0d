package model

type Provider struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Title     string `json:"title"`
	Specialty string `json:"specialty"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	PhotoURL  string `json:"photoUrl"`
	Color     string `json:"color"`
}

// DisplayName is the "Dr. Lastname" form denormalized onto appointments and notes.
func (p *Provider) DisplayName() string {
	return "Dr. " + p.LastName
}
