package common

import "github.com/google/uuid"

// UUID is the identifier type shared by all entities. It is a plain string
// under the hood so it can be used as a map key and bound directly as a
// database/sql parameter.
type UUID string

func NewUUID() UUID {
	return UUID(uuid.NewString())
}

func ParseUUID(value string) (UUID, error) {
	parsed, err := uuid.Parse(value)
	if err != nil {
		return "", err
	}
	return UUID(parsed.String()), nil
}

func (u UUID) String() string {
	return string(u)
}
