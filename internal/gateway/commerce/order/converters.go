package order

import (
	"strconv"
	"strings"

	"github.com/Andresg1046/AppTracking/internal/entities"
	"github.com/Andresg1046/AppTracking/internal/geo"
)

const (
	metaLatitude  = "_shipping_latitude"
	metaLongitude = "_shipping_longitude"
)

func toDomain(dto *orderDTO) *entities.Order {
	if dto == nil {
		return nil
	}

	return &entities.Order{
		ID:                  dto.ID,
		Number:              dto.Number,
		Status:              entities.OrderStatusType(dto.Status),
		CustomerName:        strings.TrimSpace(dto.Billing.FirstName + " " + dto.Billing.LastName),
		CustomerPhone:       dto.Billing.Phone,
		ShippingAddress:     formatAddress(dto.Shipping),
		DeliveryCoordinates: extractCoordinates(dto.MetaData),
	}
}

func formatAddress(s shippingDTO) string {
	parts := make([]string, 0, 4)
	for _, part := range []string{s.Address1, s.Address2, s.City, s.Postcode} {
		if strings.TrimSpace(part) != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}

// extractCoordinates picks the geocoded drop-off out of the order meta.
// Orders placed without geocoding simply have no coordinates.
func extractCoordinates(meta []metaEntry) *entities.Coordinates {
	var lat, lng *float64
	for _, entry := range meta {
		switch entry.Key {
		case metaLatitude:
			if v, err := strconv.ParseFloat(entry.Value, 64); err == nil {
				lat = &v
			}
		case metaLongitude:
			if v, err := strconv.ParseFloat(entry.Value, 64); err == nil {
				lng = &v
			}
		}
	}

	if lat == nil || lng == nil || !geo.ValidCoordinates(*lat, *lng) {
		return nil
	}
	return &entities.Coordinates{Latitude: *lat, Longitude: *lng}
}
