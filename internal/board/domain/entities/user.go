// Package entities содержит доменные сущности доски задач и строгие
// декодеры ответов удаленного сервиса.
package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Geo представляет географические координаты адреса.
type Geo struct {
	Lat string
	Lng string
}

// Address представляет почтовый адрес пользователя.
type Address struct {
	Street  string
	Suite   string
	City    string
	Zipcode string
	Geo     Geo
}

// Company представляет компанию пользователя.
type Company struct {
	Name        string
	CatchPhrase string
	BS          string
}

// User представляет основную сущность домена пользователя.
// После получения с сервера значение не изменяется локально.
type User struct {
	ID       int
	Name     string
	Username string
	Email    string
	Phone    string
	Website  string
	Company  Company
	Address  Address
}

// UserWithTasks объединяет пользователя с упорядоченным списком его задач.
// Значение собирается композицией и не имеет собственной идентичности.
type UserWithTasks struct {
	User  User
	Tasks []Task
}

// ValidateUserID проверяет, что идентификатор пользователя положителен.
func ValidateUserID(userID int) error {
	if userID <= 0 {
		return ErrInvalidUserID
	}
	return nil
}

// Проволочное представление пользователя: указатели позволяют отличить
// отсутствующее обязательное поле от пустого значения.
type userWire struct {
	ID       *int         `json:"id"`
	Name     *string      `json:"name"`
	Username string       `json:"username"`
	Email    *string      `json:"email"`
	Phone    string       `json:"phone"`
	Website  string       `json:"website"`
	Company  *companyWire `json:"company"`
	Address  *addressWire `json:"address"`
}

type companyWire struct {
	Name        string `json:"name"`
	CatchPhrase string `json:"catchPhrase"`
	BS          string `json:"bs"`
}

type addressWire struct {
	Street  string  `json:"street"`
	Suite   string  `json:"suite"`
	City    string  `json:"city"`
	Zipcode string  `json:"zipcode"`
	Geo     geoWire `json:"geo"`
}

type geoWire struct {
	Lat string `json:"lat"`
	Lng string `json:"lng"`
}

// DecodeUser разбирает одиночную запись пользователя.
// Неизвестные и отсутствующие обязательные поля приводят к ErrMalformedResponse.
func DecodeUser(data []byte) (*User, error) {
	var wire userWire
	if err := decodeStrict(data, &wire); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return wire.toEntity()
}

// DecodeUsers разбирает коллекцию пользователей.
func DecodeUsers(data []byte) ([]User, error) {
	var wires []userWire
	if err := decodeStrict(data, &wires); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	users := make([]User, 0, len(wires))
	for _, wire := range wires {
		user, err := wire.toEntity()
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, nil
}

// toEntity проверяет обязательные поля и собирает доменную сущность.
func (w *userWire) toEntity() (*User, error) {
	switch {
	case w.ID == nil || *w.ID <= 0:
		return nil, fmt.Errorf("%w: user record has no valid id", ErrMalformedResponse)
	case w.Name == nil || *w.Name == "":
		return nil, fmt.Errorf("%w: user record has no name", ErrMalformedResponse)
	case w.Email == nil || *w.Email == "":
		return nil, fmt.Errorf("%w: user record has no email", ErrMalformedResponse)
	case w.Company == nil:
		return nil, fmt.Errorf("%w: user record has no company", ErrMalformedResponse)
	case w.Address == nil:
		return nil, fmt.Errorf("%w: user record has no address", ErrMalformedResponse)
	}

	return &User{
		ID:       *w.ID,
		Name:     *w.Name,
		Username: w.Username,
		Email:    *w.Email,
		Phone:    w.Phone,
		Website:  w.Website,
		Company: Company{
			Name:        w.Company.Name,
			CatchPhrase: w.Company.CatchPhrase,
			BS:          w.Company.BS,
		},
		Address: Address{
			Street:  w.Address.Street,
			Suite:   w.Address.Suite,
			City:    w.Address.City,
			Zipcode: w.Address.Zipcode,
			Geo: Geo{
				Lat: w.Address.Geo.Lat,
				Lng: w.Address.Geo.Lng,
			},
		},
	}, nil
}

// decodeStrict разбирает JSON, отклоняя неизвестные поля.
func decodeStrict(data []byte, target any) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return err
	}
	return nil
}
