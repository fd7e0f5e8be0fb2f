package enum

import "fmt"

// ItemField identifies one editable column of a billing row
type ItemField string

const (
	FieldName     ItemField = "name"
	FieldQuantity ItemField = "quantity"
	FieldPrice    ItemField = "price"
	FieldTotal    ItemField = "total"
)

// ParseItemField validates a field name coming from the API
func ParseItemField(s string) (ItemField, error) {
	switch ItemField(s) {
	case FieldName, FieldQuantity, FieldPrice, FieldTotal:
		return ItemField(s), nil
	}
	return "", fmt.Errorf("unknown item field %q", s)
}

func (f ItemField) String() string {
	return string(f)
}
