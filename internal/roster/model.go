package roster

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	ErrField1Required = errors.New("field 1 is required")
	ErrImageRequired  = errors.New("profile image is required")
	ErrNotFound       = errors.New("recipient not found")
	ErrDuplicateID    = errors.New("recipient identifier already in roster")
)

var validate = validator.New()

// Recipient is one person on the roster. Values are never mutated after
// NewRecipient returns; the roster hands out copies.
type Recipient struct {
	ID        string `json:"id"`
	Field1    string `json:"field1" validate:"required"`
	Field2    string `json:"field2"`
	Field3    string `json:"field3"`
	ImagePath string `json:"image_path" validate:"required"`
}

// Fields returns the three display fields in card order.
func (r Recipient) Fields() [3]string {
	return [3]string{r.Field1, r.Field2, r.Field3}
}

// NewRecipient validates the form values and assigns a fresh random identifier.
func NewRecipient(field1, field2, field3, imagePath string) (Recipient, error) {
	r := Recipient{
		Field1:    field1,
		Field2:    field2,
		Field3:    field3,
		ImagePath: imagePath,
	}
	if err := validate.Struct(r); err != nil {
		return Recipient{}, validationError(err)
	}
	r.ID = uuid.NewString()
	return r, nil
}

// validationError maps the first failing field to its sentinel.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	for _, fe := range verrs {
		switch fe.Field() {
		case "Field1":
			return ErrField1Required
		case "ImagePath":
			return ErrImageRequired
		}
	}
	return err
}
