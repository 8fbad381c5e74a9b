package ticket

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/theoremus-urban-solutions/transit-demo/store"
)

const qrSize = 256

// Ticket is a synthesized, display-only ticket.
type Ticket struct {
	ID            string  `json:"id"`
	RouteID       string  `json:"routeId"`
	RouteName     string  `json:"routeName"`
	PassengerType string  `json:"passengerType"`
	Quantity      int     `json:"quantity"`
	Price         float64 `json:"price"`
	Date          string  `json:"date"`
	IssuedAt      string  `json:"issuedAt"`
	QRCode        string  `json:"qrCode"` // base64 PNG encoding the ticket id
}

// Issue creates a ticket for quantity passengers of the given type on a
// route. The route is read only; nothing is stored.
func Issue(r *store.Route, passengerType string, quantity int, date string) (*Ticket, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1, got %d", quantity)
	}
	id := uuid.NewString()
	png, err := qrcode.Encode("TICKET:"+id, qrcode.Medium, qrSize)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return &Ticket{
		ID:            id,
		RouteID:       r.ID,
		RouteName:     r.Name,
		PassengerType: passengerType,
		Quantity:      quantity,
		Price:         store.PriceFor(r, passengerType, quantity),
		Date:          date,
		IssuedAt:      time.Now().UTC().Format(time.RFC3339),
		QRCode:        base64.StdEncoding.EncodeToString(png),
	}, nil
}
