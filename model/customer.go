// model/customer.go
package model

type Customer struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	CPF      string `json:"cpf"`
	Birthday Date   `json:"birthday"`
}

// CreateCustomerReq is the payload of POST /customers and PUT /customers/:id.
// swagger:model CreateCustomerReq
type CreateCustomerReq struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required,numeric,min=10,max=11"`
	CPF      string `json:"cpf" validate:"required,numeric,len=11"`
	Birthday string `json:"birthday" validate:"required,datetime=2006-01-02"`
}
