// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "fmt"

type Seller struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	StartDate string `json:"start_date,omitempty"`
	Position  string `json:"position,omitempty"`
}

// FullName retorna o nome de exibição do vendedor ("Nome Sobrenome")
func (s Seller) FullName() string {
	return fmt.Sprintf("%s %s", s.FirstName, s.LastName)
}
