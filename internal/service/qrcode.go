package service

import (
	"github.com/skip2/go-qrcode"
)

// DefaultQRGenerator encodes the customer menu URL for a table, the code
// printed on the physical table stand.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(tableNumber string) ([]byte, error) {
	return qrcode.Encode(g.BaseURL+"/"+tableNumber, qrcode.Medium, 256)
}
