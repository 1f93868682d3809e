package database

import "github.com/google/uuid"

// UUIDBytes returns the BINARY(16) form of id stored in MySQL columns.
func UUIDBytes(id uuid.UUID) []byte {
	return id[:]
}

// NullUUIDBytes is UUIDBytes for a nullable column. An invalid id maps to NULL.
func NullUUIDBytes(id uuid.NullUUID) any {
	if !id.Valid {
		return nil
	}
	return id.UUID[:]
}
