package products

import (
	"encoding/json"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// priceFormat allows an integer part plus at most two decimal digits.
var priceFormat = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

// ProductPayload is the raw request body for create and update. Pointer
// and json.Number fields keep missing, mistyped and invalid values
// distinguishable so each can get its own message.
type ProductPayload struct {
	Name       *string          `json:"name"`
	CategoryID *json.Number     `json:"category_id"`
	Price      *json.Number     `json:"price"`
	Active     *json.RawMessage `json:"active"`
}

// Validated holds the normalized fields that passed validation. Only
// fields present in the payload are set, which is what the partial
// update path relies on.
type Validated struct {
	Name       *string
	CategoryID *uint
	Price      *decimal.Decimal
	Active     *bool
}

// Fields returns the column map for a store update.
func (v Validated) Fields() map[string]any {
	fields := map[string]any{}
	if v.Name != nil {
		fields["name"] = *v.Name
	}
	if v.CategoryID != nil {
		fields["category_id"] = *v.CategoryID
	}
	if v.Price != nil {
		fields["price"] = *v.Price
	}
	if v.Active != nil {
		fields["active"] = *v.Active
	}
	return fields
}

// CategoryChecker answers the referential check for category_id.
type CategoryChecker interface {
	Exists(id uint) (bool, error)
}

type Validator struct {
	categories CategoryChecker
}

func NewValidator(categories CategoryChecker) *Validator {
	return &Validator{categories: categories}
}

// Validate applies the field rules. With partial set, absent fields are
// skipped instead of required; fields that are present always get the
// full rule set. A non-nil error means the category lookup itself
// failed, not that the payload is invalid.
func (v *Validator) Validate(p ProductPayload, partial bool) (Validated, map[string][]string, error) {
	out := Validated{}
	errs := map[string][]string{}

	if p.Name == nil {
		if !partial {
			errs["name"] = append(errs["name"], "Product name is required")
		}
	} else if name := strings.TrimSpace(*p.Name); name == "" {
		errs["name"] = append(errs["name"], "Product name is required")
	} else if utf8.RuneCountInString(name) > 255 {
		errs["name"] = append(errs["name"], "Product name must not exceed 255 characters")
	} else {
		out.Name = &name
	}

	if p.CategoryID == nil {
		if !partial {
			errs["category_id"] = append(errs["category_id"], "Category is required")
		}
	} else if id, err := p.CategoryID.Int64(); err != nil || id < 1 {
		errs["category_id"] = append(errs["category_id"], "Category ID must be a valid number")
	} else {
		exists, err := v.categories.Exists(uint(id))
		if err != nil {
			return Validated{}, nil, err
		}
		if !exists {
			errs["category_id"] = append(errs["category_id"], "Selected category does not exist")
		} else {
			cid := uint(id)
			out.CategoryID = &cid
		}
	}

	if p.Price == nil {
		if !partial {
			errs["price"] = append(errs["price"], "Price is required")
		}
	} else {
		raw := p.Price.String()
		price, err := decimal.NewFromString(raw)
		if err != nil {
			errs["price"] = append(errs["price"], "Price must be a valid number")
		} else {
			if price.IsNegative() {
				errs["price"] = append(errs["price"], "Price must be greater than or equal to 0")
			}
			if !priceFormat.MatchString(raw) {
				errs["price"] = append(errs["price"], "Price must have maximum 2 decimal places")
			}
			if len(errs["price"]) == 0 {
				out.Price = &price
			}
		}
	}

	if p.Active == nil {
		if !partial {
			errs["active"] = append(errs["active"], "Active status is required")
		}
	} else {
		switch strings.TrimSpace(string(*p.Active)) {
		case "true":
			t := true
			out.Active = &t
		case "false":
			f := false
			out.Active = &f
		default:
			errs["active"] = append(errs["active"], "Active status must be true or false")
		}
	}

	if len(errs) > 0 {
		return Validated{}, errs, nil
	}
	return out, nil, nil
}
