package models

// Entity is implemented by every record kept in a repository store.
// IDs are assigned by the store on create when zero.
type Entity interface {
	GetID() int64
	SetID(id int64)
}
