package transport

import "errors"

// ProductDTO is both the request and response body for products.
// The id is server-assigned and ignored on input.
type ProductDTO struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	QuantityInStock int     `json:"quantityInStock"`
}

func (p *ProductDTO) Validate() error {
	if p.Name == "" {
		return errors.New("product name is required")
	}
	if len(p.Name) > 100 {
		return errors.New("product name cannot exceed 100 characters")
	}
	if len(p.Description) > 500 {
		return errors.New("description cannot exceed 500 characters")
	}
	if p.Price <= 0 {
		return errors.New("price must be positive")
	}
	if p.QuantityInStock <= 0 {
		return errors.New("quantity must be positive")
	}
	return nil
}

// UserDTO is the read/update representation. It never carries a password.
type UserDTO struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Active    bool   `json:"active"`
}

func (u *UserDTO) Validate() error {
	if u.Username == "" {
		return errors.New("username is required")
	}
	if u.FirstName == "" {
		return errors.New("first name is required")
	}
	if u.LastName == "" {
		return errors.New("last name is required")
	}
	if u.Email == "" {
		return errors.New("email is required")
	}
	return nil
}

// CreateUserRequest is the creation-only representation, the single place a
// plaintext password crosses the wire. It is never echoed back.
type CreateUserRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func (r *CreateUserRequest) Validate() error {
	if r.Username == "" {
		return errors.New("username is required")
	}
	if r.Password == "" {
		return errors.New("password is required")
	}
	if r.FirstName == "" {
		return errors.New("first name is required")
	}
	if r.LastName == "" {
		return errors.New("last name is required")
	}
	if r.Email == "" {
		return errors.New("email is required")
	}
	return nil
}
