package domain

import (
	"errors"
	"net/mail"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Default profile values applied when a signup request omits the optional
// fields. These match the original Mesto product defaults.
const (
	DefaultUserName   = "Жак-Ив Кусто"
	DefaultUserAbout  = "Исследователь"
	DefaultUserAvatar = "https://pictures.s3.yandex.net/resources/jacques-cousteau_1604399756.png"
)

// User field bounds.
const (
	MinNameLength     = 2
	MaxNameLength     = 30
	MinPasswordLength = 6
)

// Common validation errors
var (
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters long")
	ErrNameLength          = errors.New("name must be between 2 and 30 characters long")
	ErrAboutLength         = errors.New("about must be between 2 and 30 characters long")
	ErrInvalidAvatar       = errors.New("avatar must be a valid URL")
)

// User represents a registered user of the Mesto application.
// The password hash is stored in the `password` document field, which every
// read path except the credentials lookup excludes via projection, and is
// never serialized to JSON.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"     json:"id"`
	Name           string             `bson:"name"              json:"name"`
	About          string             `bson:"about"             json:"about"`
	Avatar         string             `bson:"avatar"            json:"avatar"`
	Email          string             `bson:"email"             json:"email"`
	Password       string             `bson:"-"                 json:"-"` // Plaintext, only populated during signup
	HashedPassword string             `bson:"password,omitempty" json:"-"`
}

// NewUser creates a new User from signup input, applying the product defaults
// for any omitted profile field. Returns an error if validation fails.
//
// NOTE: The plaintext password is carried on the struct; the caller must hash
// it into HashedPassword before the user is stored.
func NewUser(name, about, avatar, email, password string) (*User, error) {
	if name == "" {
		name = DefaultUserName
	}
	if about == "" {
		about = DefaultUserAbout
	}
	if avatar == "" {
		avatar = DefaultUserAvatar
	}

	user := &User{
		Name:     name,
		About:    about,
		Avatar:   avatar,
		Email:    email,
		Password: password,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if err := validateLength(u.Name, ErrNameLength); err != nil {
		return err
	}
	if err := validateLength(u.About, ErrAboutLength); err != nil {
		return err
	}

	if !validURL(u.Avatar) {
		return ErrInvalidAvatar
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}
	if _, err := mail.ParseAddress(u.Email); err != nil {
		return ErrInvalidEmail
	}

	if u.Password != "" {
		if len(u.Password) < MinPasswordLength {
			return ErrPasswordTooShort
		}
	} else if u.HashedPassword == "" {
		// Existing users read back from the store carry only the hash.
		return ErrEmptyPassword
	}

	return nil
}

func validateLength(s string, lengthErr error) error {
	n := len([]rune(s))
	if n < MinNameLength || n > MaxNameLength {
		return lengthErr
	}
	return nil
}
