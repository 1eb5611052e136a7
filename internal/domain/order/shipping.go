package order

import (
	"regexp"
	"strings"
)

var postalCodeRegex = regexp.MustCompile(`^\d{5}$`)

// ShippingAddress is optional delivery information stored with the order.
type ShippingAddress struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	District   string `json:"district"`
	Province   string `json:"province"`
	PostalCode string `json:"postalCode"`
}

func NewShippingAddress(name, phone, address, district, province, postalCode string) (*ShippingAddress, error) {
	a := &ShippingAddress{
		Name:       strings.TrimSpace(name),
		Phone:      strings.TrimSpace(phone),
		Address:    strings.TrimSpace(address),
		District:   strings.TrimSpace(district),
		Province:   strings.TrimSpace(province),
		PostalCode: strings.TrimSpace(postalCode),
	}
	if a.Name == "" || a.Phone == "" || a.Address == "" || a.District == "" || a.Province == "" {
		return nil, ErrInvalidShipping
	}
	if !postalCodeRegex.MatchString(a.PostalCode) {
		return nil, ErrInvalidShipping
	}
	return a, nil
}
