package users

import "time"

// User representa un dueño de mascotas registrado.
// Password guarda el hash bcrypt, nunca el texto plano.
// CreatedAt/UpdatedAt son bookkeeping interno: jamás se serializan.
type User struct {
	ID       int64
	Name     string
	Surname  string
	Email    string // único
	Phone    string // único
	Password string // hash bcrypt
	Birthday time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
