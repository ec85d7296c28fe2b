package models

// Messages returned to clients when a record lookup comes back empty.
const (
	CustomerNotFound = "Cliente não encontrado"
	ProductNotFound  = "Produto não encontrado"
)
